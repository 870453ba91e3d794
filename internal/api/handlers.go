package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/moneysaver/offset-calculator/internal/cache"
	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/moneysaver/offset-calculator/internal/logging"
	"github.com/moneysaver/offset-calculator/internal/output"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
)

const maxBodyBytes = 1 << 20

// loanRequest holds the fields shared by the calculate and sweep bodies.
type loanRequest struct {
	Principal              float64  `json:"principal"`
	AnnualRatePercent      float64  `json:"annual_rate_percent"`
	TenureYears            float64  `json:"tenure_years"`
	OpportunityCostPercent *float64 `json:"opportunity_cost_percent,omitempty"`
	Grouping               string   `json:"grouping,omitempty"`
}

type calculateRequest struct {
	loanRequest
	Offset float64 `json:"offset"`
}

type calculateResponse struct {
	Inputs                 domain.LoanInputs        `json:"inputs"`
	OpportunityCostPercent float64                  `json:"opportunity_cost_percent"`
	Result                 domain.CalculationResult `json:"result"`
	Display                output.DisplayResult     `json:"display"`
	Summary                string                   `json:"summary"`
}

type sweepRequest struct {
	loanRequest
	From float64 `json:"from"`
	To   float64 `json:"to"`
	Step float64 `json:"step"`
}

type sweepPointResponse struct {
	Offset  float64                  `json:"offset"`
	Result  domain.CalculationResult `json:"result"`
	Display output.DisplayResult     `json:"display"`
}

type sweepResponse struct {
	Inputs                 domain.LoanInputs    `json:"inputs"`
	OpportunityCostPercent float64              `json:"opportunity_cost_percent"`
	Points                 []sweepPointResponse `json:"points"`
	Best                   *sweepPointResponse  `json:"best"`
}

// decodeJSON reads a single JSON object from the body, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body must not exceed %d bytes", maxErr.Limit)
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return fmt.Errorf("request body contains unknown field %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// resolve applies the request's optional overrides on top of the server defaults.
func (s *Server) resolve(req loanRequest) (float64, money.Grouping, error) {
	opp := s.engine.OpportunityCostPercent
	if req.OpportunityCostPercent != nil {
		opp = *req.OpportunityCostPercent
		if math.IsNaN(opp) || opp < 0 || opp > 100 {
			return 0, "", fmt.Errorf("opportunity_cost_percent must be between 0 and 100, got %g", opp)
		}
	}
	g, err := money.ParseGrouping(req.Grouping)
	if err != nil {
		return 0, "", err
	}
	return opp, g, nil
}

// engineFor returns a copy of the server engine using opp.
func (s *Server) engineFor(opp float64) *calculation.CalculationEngine {
	eng := *s.engine
	eng.OpportunityCostPercent = opp
	return &eng
}

// calculateHandler evaluates one loan. Inputs the calculator cannot use are not
// an HTTP error: the result comes back with null fields and the prompt text.
func (s *Server) calculateHandler(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, r, err.Error())
		return
	}
	opp, grouping, err := s.resolve(req.loanRequest)
	if err != nil {
		s.unprocessableResponse(w, r, err)
		return
	}

	in := domain.LoanInputs{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TenureYears:       req.TenureYears,
		Offset:            req.Offset,
	}

	key := cache.Key("calculate", in, opp)
	var result domain.CalculationResult
	if s.cacheGet(r.Context(), key, &result) {
		w.Header().Set("X-Cache", "HIT")
	} else {
		result = s.engineFor(opp).Calculate(in)
		s.cacheSet(r.Context(), key, result)
		w.Header().Set("X-Cache", "MISS")
	}

	s.sendJSON(w, r, http.StatusOK, calculateResponse{
		Inputs:                 in,
		OpportunityCostPercent: opp,
		Result:                 result,
		Display:                output.Display(result, grouping),
		Summary:                output.Summary(result, grouping),
	})
}

// sweepHandler evaluates the loan for every offset of a range.
func (s *Server) sweepHandler(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, r, err.Error())
		return
	}
	opp, grouping, err := s.resolve(req.loanRequest)
	if err != nil {
		s.unprocessableResponse(w, r, err)
		return
	}

	in := domain.LoanInputs{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TenureYears:       req.TenureYears,
	}
	sr := calculation.SweepRange{From: req.From, To: req.To, Step: req.Step}

	key := cache.Key("sweep", in, opp, sr.From, sr.To, sr.Step)
	var points []domain.SweepPoint
	if s.cacheGet(r.Context(), key, &points) {
		w.Header().Set("X-Cache", "HIT")
	} else {
		points, err = calculation.OffsetSweep(in, sr, opp)
		if err != nil {
			if errors.Is(err, calculation.ErrInvalidSweep) {
				s.unprocessableResponse(w, r, err)
				return
			}
			s.serverErrorResponse(w, r, err)
			return
		}
		s.cacheSet(r.Context(), key, points)
		w.Header().Set("X-Cache", "MISS")
	}

	resp := sweepResponse{
		Inputs:                 in,
		OpportunityCostPercent: opp,
		Points:                 make([]sweepPointResponse, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, sweepPointResponse{
			Offset:  p.Offset,
			Result:  p.Result,
			Display: output.Display(p.Result, grouping),
		})
	}
	if best, ok := calculation.BestSweepPoint(points); ok {
		resp.Best = &sweepPointResponse{
			Offset:  best.Offset,
			Result:  best.Result,
			Display: output.Display(best.Result, grouping),
		}
	}

	logging.FromContext(r.Context()).Debug("sweep evaluated",
		slog.Int("points", len(points)),
		slog.Float64("opportunity_cost_percent", opp))
	s.sendJSON(w, r, http.StatusOK, resp)
}

// reportHandler runs a scenario configuration and renders it with the named
// formatter.
func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	formatter := output.GetFormatterByName(params.ByName("format"))
	if formatter == nil {
		s.notFoundResponse(w, r)
		return
	}

	var cfg domain.Configuration
	if err := decodeJSON(w, r, &cfg); err != nil {
		s.badRequestResponse(w, r, err.Error())
		return
	}
	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		s.unprocessableResponse(w, r, err)
		return
	}

	engine := s.engineFor(s.engine.OpportunityCostPercent)
	if cfg.Assumptions.OpportunityCostPercent != nil {
		engine.OpportunityCostPercent = cfg.Assumptions.OpportunityCost()
	}
	results, err := engine.RunScenarios(r.Context(), &cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		s.serverErrorResponse(w, r, err)
		return
	}
	results.Assumptions = output.GenerateAssumptions(engine.OpportunityCostPercent)

	data, err := formatter.Format(results)
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType(formatter.Name()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.LogError(s.logger, "failed to write report", err,
			slog.String("format", formatter.Name()))
	}
}

func contentType(format string) string {
	switch output.Extension(format) {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "md":
		return "text/markdown; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}
	if p, ok := s.cache.(interface{ Ping(context.Context) error }); ok {
		if err := p.Ping(r.Context()); err != nil {
			body["cache"] = "unavailable"
		} else {
			body["cache"] = "ok"
		}
	}
	s.sendJSON(w, r, http.StatusOK, body)
}

// cacheGet decodes a cached value into dst. Any failure counts as a miss.
func (s *Server) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logging.LogError(logging.FromContext(ctx), "cache read failed", err, slog.String("component", "cache"))
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logging.LogError(logging.FromContext(ctx), "cache entry undecodable", err, slog.String("component", "cache"))
		return false
	}
	return true
}

func (s *Server) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logging.LogError(logging.FromContext(ctx), "cache encode failed", err, slog.String("component", "cache"))
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		logging.LogError(logging.FromContext(ctx), "cache write failed", err, slog.String("component", "cache"))
	}
}
