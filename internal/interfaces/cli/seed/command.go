package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/localshop/storefront/internal/infrastructure/config"
	"github.com/localshop/storefront/internal/infrastructure/database"
	"github.com/localshop/storefront/internal/infrastructure/persistence/seeds"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/logger"
)

var (
	configPath string
	seedFile   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load categories, products and promotions",
		Long: `Insert the catalog described by a YAML seed file, or the built-in demo
catalog when --file is not given. Rows whose slug or code already exists are skipped.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to a catalog seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("", configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}
	log := logger.NewLogger()

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	result, err := seeds.SeedCatalog(context.Background(), database.Get(), catalog)
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("catalog seeded",
		"categories", result.Categories,
		"products", result.Products,
		"promotions", result.Promotions,
	)
	return nil
}

func loadCatalog() (*seeds.CatalogFile, error) {
	if seedFile == "" {
		return seeds.DefaultCatalog()
	}

	f, err := os.Open(seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return seeds.ParseCatalog(f)
}
