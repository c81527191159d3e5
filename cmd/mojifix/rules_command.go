package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mojifix/internal/config"
	"mojifix/internal/repair"
)

func newRulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the active structural rules and marker table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRepairer(func(r *repair.Repairer, _ *config.Config) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				pipeline := r.Pipeline()

				for _, line := range renderSectionHeader("Structural rules", colorize) {
					fmt.Fprintln(out, line)
				}
				ruleRows := make([][]string, 0, len(pipeline.Rules()))
				for i, rule := range pipeline.Rules() {
					ruleRows = append(ruleRows, []string{
						strconv.Itoa(i + 1),
						rule.Name,
						rule.Pattern.String(),
						strconv.Quote(rule.Replacement),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Name", "Pattern", "Replacement"},
					ruleRows,
					[]columnAlignment{alignRight},
				))

				fmt.Fprintln(out)
				for _, line := range renderSectionHeader("Markers", colorize) {
					fmt.Fprintln(out, line)
				}
				markerRows := make([][]string, 0, len(pipeline.Markers()))
				for _, m := range pipeline.Markers() {
					markerRows = append(markerRows, []string{
						m.Name,
						m.Glyph,
						strconv.QuoteToASCII(m.Sequence),
						m.Tag,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Name", "Glyph", "Sequence", "Tag"},
					markerRows,
					nil,
				))
				fmt.Fprintf(out, "Lenient matching: %s\n", yesNo(pipeline.Lenient()))
				return nil
			})
		},
	}
}
