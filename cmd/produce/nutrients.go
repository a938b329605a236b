package produce

import (
	"fmt"

	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var nutrientsCmd = &cobra.Command{
	Use:   "nutrients",
	Short: "Show estimated vitamin C, vitamin A, fiber and potassium",
}

var nutrientsTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Nutrient totals for the current day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNutrients(cmd, service.TodaySummary)
	},
}

var nutrientsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Nutrient totals for the current Monday-to-Sunday week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNutrients(cmd, service.WeekSummary)
	},
}

type nutrientsReport struct {
	Period    service.PeriodKind       `json:"period"`
	Window    nutrition.Window         `json:"window"`
	Totals    nutrition.NutrientTotals `json:"totals"`
	Compared  []service.NutrientStatus `json:"recommended"`
	Estimated bool                     `json:"estimated"`
}

func runNutrients(cmd *cobra.Command, load summaryFunc) error {
	s, err := loadSummary(load)
	if err != nil {
		return err
	}
	if reportJSON {
		return printJSON(cmd, "nutrients", nutrientsReport{
			Period:    s.Period,
			Window:    s.Window,
			Totals:    s.Nutrients,
			Compared:  s.NutrientStatus,
			Estimated: true,
		})
	}
	w := cmd.OutOrStdout()
	printPeriodHeader(w, s)
	fmt.Fprintln(w, "NUTRIENT\tCURRENT\tRECOMMENDED\tPERCENT")
	for _, n := range s.NutrientStatus {
		fmt.Fprintf(w, "%s\t%.1f%s\t%.0f%s\t%d%%\n", n.Name, n.Current, n.Unit, n.Recommended, n.Unit, n.Percent)
	}
	if s.Nutrients.Unmatched > 0 {
		fmt.Fprintf(w, "%d entries have no nutrient data and count as zero\n", s.Nutrients.Unmatched)
	}
	fmt.Fprintln(w, "Values are estimates per 100g of each food.")
	return nil
}

func init() {
	rootCmd.AddCommand(nutrientsCmd)
	nutrientsCmd.AddCommand(nutrientsTodayCmd, nutrientsWeekCmd)

	for _, c := range []*cobra.Command{progressTodayCmd, progressWeekCmd, nutrientsTodayCmd, nutrientsWeekCmd} {
		c.Flags().StringVar(&reportDate, "date", "", "Any date YYYY-MM-DD inside the period (default today)")
		c.Flags().BoolVar(&reportJSON, "json", false, "Output as JSON")
	}
}
