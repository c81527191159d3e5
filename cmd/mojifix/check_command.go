package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"mojifix/internal/config"
	"mojifix/internal/repair"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report corrupted sequences without modifying files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRepairer(func(r *repair.Repairer, cfg *config.Config) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				targets := resolveTargets(args, cfg)
				dirty := 0
				for i, path := range targets {
					report, err := r.Check(cmd.Context(), path)
					if err != nil {
						return err
					}
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintln(out, renderCheckStatus(report, colorize))
					if rows := hitRows(report.Stats); len(rows) > 0 {
						dirty++
						fmt.Fprintln(out, renderTable(
							[]string{"Phase", "Entry", "Matches"},
							rows,
							[]columnAlignment{alignLeft, alignLeft, alignRight},
						))
					}
				}
				if exitCode && dirty > 0 {
					return fmt.Errorf("%d of %d file(s) need repair", dirty, len(targets))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit non-zero when any file needs repair")
	return cmd
}

func renderCheckStatus(report *repair.Report, colorize bool) string {
	label := filepath.Base(report.Path)
	total := report.Stats.Total()
	if total == 0 {
		return renderStatusLine(label, statusOK, "clean", colorize)
	}
	message := fmt.Sprintf("%d structural, %d symbolic replacement(s) pending",
		report.Stats.StructuralTotal(), report.Stats.SymbolicTotal())
	return renderStatusLine(label, statusWarn, message, colorize)
}

func hitRows(stats repair.Stats) [][]string {
	var rows [][]string
	for _, h := range stats.Structural {
		if h.Count > 0 {
			rows = append(rows, []string{"structural", h.Name, strconv.Itoa(h.Count)})
		}
	}
	for _, h := range stats.Symbolic {
		if h.Count > 0 {
			rows = append(rows, []string{"symbolic", h.Name, strconv.Itoa(h.Count)})
		}
	}
	return rows
}
