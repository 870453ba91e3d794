package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/moneysaver/offset-calculator/internal/api"
	"github.com/moneysaver/offset-calculator/internal/cache"
	"github.com/moneysaver/offset-calculator/internal/config"
	"github.com/moneysaver/offset-calculator/internal/logging"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var envFile, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `serve starts the JSON API. Settings come from MONEYSAVER_* environment
variables, optionally loaded from an env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if !cmd.Flags().Changed("log-level") {
				if err := a.setupLogger(cmd, cfg.LogLevel); err != nil {
					return err
				}
			}

			var resultCache cache.ResultCache
			if cfg.RedisAddr != "" {
				redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
				defer logging.SafeCloseWithLogging(redisCache, a.logger, "redis_cache")
				if err := redisCache.Ping(cmd.Context()); err != nil {
					logging.LogError(a.logger, "redis unreachable, requests will skip the cache", err,
						slog.String("addr", cfg.RedisAddr))
				}
				resultCache = redisCache
			} else {
				resultCache = cache.NewMemoryCache(cfg.CacheTTL)
			}

			server := api.NewServer(api.Options{
				OpportunityCostPercent: cfg.OpportunityCostPercent,
				Cache:                  resultCache,
				Logger:                 a.logger,
				RateLimit:              cfg.RateLimit,
				RateBurst:              cfg.RateBurst,
			})
			defer server.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "env file loaded before reading the environment")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides MONEYSAVER_ADDR")
	return cmd
}
