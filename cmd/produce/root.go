package produce

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "produce",
	Short: "produce tracks fruit and vegetable intake from your terminal",
	Long:  "produce is a local-first fruit and vegetable tracker with age and gender based daily targets, weekly progress and nutrient estimates.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $PRODUCE_DB or the user config dir)")
}
