package cli

import (
	"fmt"
	"io"
	"log/slog"

	corecfg "github.com/idlefit/healthstat/internal/core/config"
	"github.com/spf13/cobra"
)

// App holds state shared by subcommands once the root command has run its
// pre-run hook.
type App struct {
	ConfigPath string
	LogLevel   string

	Config *corecfg.Config
}

// NewRootCmd creates the top-level "healthstat" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "healthstat",
		Short:         "Health statistics query service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := corecfg.Load(app.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if app.LogLevel != "" {
				cfg.Log.Level = app.LogLevel
			}
			app.Config = cfg

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(app),
		newQueryCmd(app),
		newMigrateCmd(app),
	)

	return root
}

func newLogger(w io.Writer, cfg corecfg.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
