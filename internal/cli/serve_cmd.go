package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/idlefit/healthstat/internal/channel"
	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/idlefit/healthstat/internal/core/oracle"
	"github.com/idlefit/healthstat/internal/server"
	"github.com/idlefit/healthstat/internal/statistics"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the statistics channel and REST API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, app)
		},
	}
}

func serve(ctx context.Context, app *App) error {
	cfg := app.Config

	store, err := openStore(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize sample store: %w", err)
	}
	defer store.Close()

	o := oracle.NewStoreOracle(store.SampleStore)
	if err := authorize(ctx, o); err != nil {
		return err
	}

	svc := statistics.NewService(o, cfg.Statistics.SummaryConcurrency)

	registry := channel.NewRegistry()
	if err := registry.Register(cfg.Statistics.ChannelName, svc); err != nil {
		return err
	}
	slog.Info("Channels registered", "channels", registry.Names())

	srv := server.New(cfg.Server.Addr(), store.health, cfg.Server.Mode)
	channel.NewTransport(registry, cfg.Server.MaxBodyBytes()).RegisterRoutes(srv.Engine)
	svc.RegisterRoutes(srv.Engine)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	slog.Info("Shutdown complete")
	return nil
}

// authorize requests read access for every supported category once, before
// any query is served.
func authorize(ctx context.Context, a oracle.Authorizer) error {
	identifiers := make([]string, 0, len(health.Categories))
	for _, c := range health.Categories {
		identifiers = append(identifiers, c.Identifier())
	}
	if err := a.RequestAuthorization(ctx, identifiers); err != nil {
		return fmt.Errorf("failed to authorize sample store: %w", err)
	}
	return nil
}
