package main

import (
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/tair/product-catalog/internal/config"
	"github.com/tair/product-catalog/pkg/logger"
)

const envFileFlag = "env-file"

func envFileFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		envFileFlag: &cobraflags.StringFlag{
			Name:  envFileFlag,
			Value: ".env",
			Usage: "Optional dotenv file loaded before reading the environment",
		},
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Product catalog service",
		Long: `Product catalog service: products, categories with stock counters,
product details, up to three images per product and a featured sample.

Available subcommands:
  serve    - Run the HTTP API
  migrate  - Create or update the catalog tables
  seed     - Insert sample products`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	return root
}

// loadConfig reads configuration and initializes the global logger from it.
// The env file flag is read from cmd's own flag set because every subcommand
// registers a flag of the same name.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Flags().GetString(envFileFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
