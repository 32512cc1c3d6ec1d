package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/stockroom/stockroom/database/migrations"
	_ "github.com/stockroom/stockroom/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Stockroom — inventory and product management backend",
	Long:  "Stockroom is a product catalogue and inventory tracking backend. Use this CLI to run the server, manage the database, and drive the CSV pipelines.",
}

func init() {
	// Server
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// CSV pipelines
	rootCmd.AddCommand(productsExportCmd)
	rootCmd.AddCommand(productsImportCmd)
	rootCmd.AddCommand(inventoryExportCmd)
	rootCmd.AddCommand(inventoryImportCmd)
}
