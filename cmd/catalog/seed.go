package main

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/tair/product-catalog/internal/catalog"
	"github.com/tair/product-catalog/internal/catalog/repository"
	"github.com/tair/product-catalog/internal/catalog/seed"
	"github.com/tair/product-catalog/pkg/database"
)

func newSeedCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample products, each with a detail and an image row",
		Example: `  catalog seed
  catalog seed --count 50 --env-file .env.local`,
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

			_, err = seed.New(repository.NewGormCatalogRepository(db), nil).Run(cmd.Context(), count)
			return err
		},
	}
	cobraflags.RegisterMap(cmd, envFileFlags())
	cmd.Flags().IntVar(&count, "count", seed.DefaultCount, "Number of products to create")
	return cmd
}
