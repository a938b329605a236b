package produce

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorVerbose bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\n", report.Entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid timestamps: %d\n", report.InvalidTimestamps)
			fmt.Fprintf(cmd.OutOrStdout(), "Foods without nutrient data: %d\n", report.UnknownFoods)
			fmt.Fprintf(cmd.OutOrStdout(), "Category mismatches: %d\n", report.CategoryMismatch)
			if report.UnparseableAge {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile age: not a whole number")
			}
			if doctorVerbose {
				for _, n := range report.Notes {
					fmt.Fprintf(cmd.OutOrStdout(), "note: %s\n", n)
				}
			}
			if report.Issues() > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "Print one note per finding")
}
