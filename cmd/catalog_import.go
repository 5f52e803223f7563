package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mobilia.GO/config"
	catalogService "mobilia.GO/service/catalog"
)

var catalogImportFile string

var catalogImportCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products and variants from a JSON file",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(catalogImportFile)
		if err != nil {
			fmt.Printf("Failed to open file: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		start := time.Now()
		res, err := catalogService.ImportCatalogJSON(db, f)
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf(`
=== Import Report ===
Created:    %d
Updated:    %d
Skipped:    %d
Warnings:   %d
Total time: %s
=====================
`, res.Created, res.Updated, res.Skipped, len(res.Warnings), time.Since(start).Round(time.Millisecond))
	},
}

func init() {
	catalogImportCmd.Flags().StringVarP(&catalogImportFile, "file", "f", "", "JSON file path (required)")
	catalogImportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(catalogImportCmd)
}
