package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/lvmat/internal/cliconfig"
	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/katalvlaran/lvmat/internal/workbook"
)

const longHelp = `matcalc evaluates small dense-matrix computations.

Matrices are written row-major. Inline grids separate rows with ';' and
elements with whitespace, e.g. "1 2; 3 4". Determinant and inverse are
available for 1x1 and 2x2 matrices only.

Configuration is read from $HOME/.matcalc/config.toml, then MATCALC_*
environment variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  matcalc calc mul "1 2; 3 4" "5 6; 7 8"
  matcalc calc inv "4 7; 2 6" --precision 3
  matcalc eval workbook.toml --output toml
  matcalc eval workbook.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by all subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string

	log    zerolog.Logger
	out    io.Writer
	errOut io.Writer
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		cfg:    cliconfig.DefaultConfig(),
		log:    zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.RFC3339}).With().Timestamp().Logger(),
		out:    out,
		errOut: errOut,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "matcalc",
		Short:             "Evaluate small dense-matrix computations",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.matcalc/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (console or json)")
	pf.IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimals for float output; -1 prints the shortest exact form")

	root.AddCommand(a.evalCmd(), a.calcCmd())
	return root
}

// setup layers config file, environment and flags, then builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return fmt.Errorf("config file %s not found", cfgFile)
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.cfg.LogLevel, a.cfg.LogFormat, a.errOut)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")

	return nil
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		a.log.Error().Err(err).Msg("matcalc")
		os.Exit(1)
	}
}

// opsHelp lists the supported operations for help text.
func opsHelp() string {
	return strings.Join(workbook.Ops(), ", ")
}
