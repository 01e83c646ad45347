package cli

import (
	"fmt"

	corecfg "github.com/idlefit/healthstat/internal/core/config"
	"github.com/spf13/cobra"
)

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the configured SQL store",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg := app.Config.Database
			if dbCfg.Type == corecfg.DatabaseMemory {
				return fmt.Errorf("database.type %q has no schema to migrate", dbCfg.Type)
			}
			dbCfg.AutoMigrate = true

			store, err := openStore(dbCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", dbCfg.Type)
			return nil
		},
	}
}
