package main

import (
	"fmt"

	"github.com/moneysaver/offset-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %-14s .%s\n", name, output.Extension(name))
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %-16s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			fmt.Fprintf(w, "\n%d formats, %d aliases\n", len(output.AvailableFormatterNames()), len(output.AvailableFormatAliases()))
		},
	}
}
