package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mojifix/internal/config"
	"mojifix/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List repair runs recorded in the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			out := cmd.OutOrStdout()
			return ctx.withJournal(func(store *journal.Store) error {
				entries, err := store.List(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("list journal: %w", err)
				}
				if len(entries) == 0 {
					fmt.Fprintf(out, "No repair runs recorded in %s\n", store.Path())
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						e.CreatedAt.Local().Format(time.DateTime),
						filepath.Base(e.Path),
						e.Encoding,
						strconv.Itoa(e.StructuralHits),
						strconv.Itoa(e.SymbolicHits),
						yesNo(e.Changed()),
						e.RunID,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"When", "File", "Encoding", "Structural", "Symbolic", "Changed", "Run"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			}, func(cfg *config.Config) error {
				fmt.Fprintf(out, "No repair runs recorded in %s\n", cfg.Journal.Path)
				if !cfg.Journal.Enabled {
					fmt.Fprintln(out, "Journal is disabled; set journal.enabled to record runs")
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
