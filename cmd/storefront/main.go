package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/localshop/storefront/internal/interfaces/cli/migrate"
	"github.com/localshop/storefront/internal/interfaces/cli/seed"
	"github.com/localshop/storefront/internal/interfaces/cli/server"
)

//	@title						LocalShop Storefront API
//	@version					1.0
//	@description				Catalog, checkout and VNPay payments for the LocalShop storefront.
//	@BasePath					/
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "LocalShop storefront backend",
		Long:  `Storefront API server with VNPay payments, database migrations and catalog seeding.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
