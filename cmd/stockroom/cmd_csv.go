package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/app/services"
	"github.com/stockroom/stockroom/config"
	"github.com/stockroom/stockroom/pkg/storage"
)

func bootCSV() (*services.CSVService, *services.InventoryService, error) {
	db, err := bootDB()
	if err != nil {
		return nil, nil, err
	}

	products := repositories.NewProductRepository(db)
	alerts := repositories.NewAlertRepository(db)
	settings := repositories.NewSettingRepository(db)
	disk := storage.Default()

	csv := services.NewCSVService(products, disk)
	inventory := services.NewInventoryService(products, alerts, settings, disk)
	return csv, inventory, nil
}

// stockroom products:export
var productsExportCmd = &cobra.Command{
	Use:   "products:export",
	Short: "Export the full product catalogue to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		csv, _, err := bootCSV()
		if err != nil {
			return err
		}
		data, err := csv.Export()
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d bytes to %s\n", len(data), path.Join(config.ExportDir(), services.ProductExportFile))
		return nil
	},
}

// stockroom products:import <file>
var productsImportCmd = &cobra.Command{
	Use:   "products:import <file>",
	Short: "Import products from a 9-column CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csv, _, err := bootCSV()
		if err != nil {
			return err
		}
		result, err := csv.ImportFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d rows, %d failed\n", result.Imported, result.Failed)
		return nil
	},
}

// stockroom inventory:export
var inventoryExportCmd = &cobra.Command{
	Use:   "inventory:export",
	Short: "Export the inventory snapshot to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, inventory, err := bootCSV()
		if err != nil {
			return err
		}
		data, err := inventory.Export()
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d bytes to %s\n", len(data), path.Join(config.ExportDir(), services.InventoryExportFile))
		return nil
	},
}

// stockroom inventory:import <file>
var inventoryImportCmd = &cobra.Command{
	Use:   "inventory:import <file>",
	Short: "Import stock levels from a 4-column CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, inventory, err := bootCSV()
		if err != nil {
			return err
		}
		result, err := inventory.ImportFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d rows, %d failed\n", result.Imported, result.Failed)
		return nil
	},
}
