package main

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/tair/product-catalog/internal/catalog"
	"github.com/tair/product-catalog/pkg/database"
	"github.com/tair/product-catalog/pkg/logger"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := database.NewGormConnection(cfg.Database)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := catalog.Migrate(db); err != nil {
				return err
			}
			logger.Logger.Info().Str("db_driver", cfg.Database.Driver).Msg("Migrations applied")
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, envFileFlags())
	return cmd
}
