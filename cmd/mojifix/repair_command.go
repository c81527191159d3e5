package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"mojifix/internal/config"
	"mojifix/internal/logging"
	"mojifix/internal/mojibake"
	"mojifix/internal/repair"
)

func newRepairCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "repair [path...]",
		Short: "Repair files in place (defaults to the configured targets)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			return ctx.withRepairer(func(r *repair.Repairer, cfg *config.Config) error {
				out := cmd.OutOrStdout()
				for _, path := range resolveTargets(args, cfg) {
					report, err := r.Repair(cmd.Context(), path)
					if err != nil {
						logRepairFailure(logger, path, err)
						return err
					}
					fmt.Fprintln(out, report.Message())
				}
				return nil
			})
		},
	}
}

func logRepairFailure(logger *slog.Logger, path string, err error) {
	logging.ErrorWithContext(logger, "repair failed", "repair_failed",
		logging.String(logging.FieldPath, path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, repairHint(err)),
	)
}

func repairHint(err error) string {
	switch {
	case errors.Is(err, repair.ErrLocked):
		return "another process holds the file; retry once it finishes"
	case errors.Is(err, mojibake.ErrInvalidText), errors.Is(err, mojibake.ErrUnencodable):
		return "set encoding in the config to match the file"
	case errors.Is(err, fs.ErrNotExist):
		return "check the target path or pass paths explicitly"
	case errors.Is(err, fs.ErrPermission):
		return "the file must be readable and writable by the current user"
	default:
		return "check logs for details"
	}
}
