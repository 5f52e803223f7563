package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mobilia",
	Short: "Mobilia storefront CLI",
	Long:  "Command line tools for the Mobilia furniture storefront: catalog import, migrations, cron.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// ASCII banner on start (random font each run)
		fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "rectangles"}
		fig := figure.NewFigure("Mobilia CLI", fonts[rand.Intn(len(fonts))], true)
		fig.Print()
		fmt.Println()
	},
}

// Execute runs the root command with all registered subcommands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
