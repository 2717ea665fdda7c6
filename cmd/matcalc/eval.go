package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/internal/cliconfig"
	"github.com/katalvlaran/lvmat/internal/watch"
	"github.com/katalvlaran/lvmat/internal/workbook"
)

func (a *app) evalCmd() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "eval <workbook.toml>",
		Short: "Evaluate a TOML workbook of named matrices and steps",
		Long:  "Evaluate a TOML workbook. Supported step ops: " + opsHelp() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !watchMode {
				return a.evalFile(cmd.Context(), path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rerun := func() {
				if err := a.evalFile(ctx, path); err != nil {
					a.log.Error().Err(err).Str("file", path).Msg("evaluation failed")
				}
			}
			rerun()
			return watch.Run(ctx, a.log, path, a.cfg.Debounce, rerun)
		},
	}

	cmd.Flags().BoolVar(&watchMode, "watch", false, "re-evaluate whenever the workbook is saved")
	cmd.Flags().StringVar(&a.cfg.Output, "output", a.cfg.Output, "result format (text or toml)")
	cmd.Flags().DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "quiet period before re-evaluating in watch mode")

	return cmd
}

// evalFile loads, evaluates and prints one workbook.
func (a *app) evalFile(ctx context.Context, path string) error {
	doc, err := workbook.Load(path)
	if err != nil {
		return err
	}

	results, err := workbook.NewEvaluator(a.log).Evaluate(ctx, doc)
	if err != nil {
		return err
	}
	a.log.Info().Str("file", path).Int("steps", len(results)).Msg("workbook evaluated")

	switch a.cfg.Output {
	case cliconfig.OutputTOML:
		b, err := workbook.EncodeTOML(results)
		if err != nil {
			return err
		}
		_, err = a.out.Write(b)
		return err
	case cliconfig.OutputText:
		return workbook.WriteText(a.out, results, a.cfg.Precision)
	default:
		return fmt.Errorf("unknown output %q", a.cfg.Output)
	}
}
