package cli

import (
	"fmt"

	"github.com/idlefit/healthstat/internal/core/oracle"
	"github.com/idlefit/healthstat/internal/statistics"
	"github.com/spf13/cobra"
)

func newQueryCmd(app *App) *cobra.Command {
	var metricType string
	var start, end int64

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run one statistics query and print the total",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(app.Config.Database)
			if err != nil {
				return fmt.Errorf("failed to initialize sample store: %w", err)
			}
			defer store.Close()

			o := oracle.NewStoreOracle(store.SampleStore)
			if err := authorize(cmd.Context(), o); err != nil {
				return err
			}

			callArgs := map[string]any{statistics.ArgType: metricType}
			if cmd.Flags().Changed("start") {
				callArgs[statistics.ArgStartTime] = start
			}
			if cmd.Flags().Changed("end") {
				callArgs[statistics.ArgEndTime] = end
			}

			svc := statistics.NewService(o, app.Config.Statistics.SummaryConcurrency)
			value, err := svc.QueryStatistics(cmd.Context(), callArgs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVar(&metricType, "type", "", "Metric label (STEPS, ACTIVE_ENERGY_BURNED, EXERCISE_TIME)")
	cmd.Flags().Int64Var(&start, "start", 0, "Window start, epoch milliseconds (inclusive)")
	cmd.Flags().Int64Var(&end, "end", 0, "Window end, epoch milliseconds (exclusive)")

	return cmd
}
