package produce

import (
	"database/sql"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and list fruit and vegetable entries",
}

var (
	logName         string
	logAmount       float64
	logUnit         string
	logCategory     string
	logDate         string
	logTime         string
	logAllowUnknown bool
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a fruit or vegetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(logName) == "" {
			return fmt.Errorf("--name is required")
		}
		if !(logAmount > 0) || math.IsInf(logAmount, 0) {
			return fmt.Errorf("--amount must be a finite number > 0")
		}
		loggedAt, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			in, err := buildLogAddInput(sqldb, loggedAt)
			if err != nil {
				return err
			}
			e, err := service.RecordEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s of %s (%s, %.0fg)\n", formatAmount(e.Amount, string(e.Unit)), e.Name, e.Category, nutrition.Grams(e))
			return nil
		})
	},
}

func buildLogAddInput(sqldb *sql.DB, loggedAt time.Time) (service.RecordEntryInput, error) {
	unit, err := service.DefaultUnit(sqldb)
	if err != nil {
		return service.RecordEntryInput{}, err
	}
	if strings.TrimSpace(logUnit) != "" {
		if unit, err = service.ParseUnit(logUnit); err != nil {
			return service.RecordEntryInput{}, err
		}
	}
	category, err := service.DefaultCategory(sqldb)
	if err != nil {
		return service.RecordEntryInput{}, err
	}
	if strings.TrimSpace(logCategory) != "" {
		if category, err = service.ParseCategory(logCategory); err != nil {
			return service.RecordEntryInput{}, err
		}
	}
	name := strings.Join(strings.Fields(logName), " ")
	if canonical, ok := reference.CanonicalFoodName(category, name); ok {
		name = canonical
	} else if !logAllowUnknown {
		return service.RecordEntryInput{}, fmt.Errorf("unknown %s %q (see `produce foods --category %s`, or pass --allow-unknown)", category, name, category)
	}
	return service.RecordEntryInput{
		Name:     name,
		Amount:   logAmount,
		Unit:     unit,
		Category: category,
		LoggedAt: loggedAt,
	}, nil
}

var (
	listDate     string
	listFromDate string
	listToDate   string
	listCategory string
	listLimit    int
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListEntriesFilter{
			Date:     listDate,
			FromDate: listFromDate,
			ToDate:   listToDate,
			Category: listCategory,
			Limit:    listLimit,
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListEntries(sqldb, filter)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

var logTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListEntries(sqldb, service.ListEntriesFilter{
				Date:  time.Now().Format("2006-01-02"),
				Limit: 1000,
			})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing logged today")
				return nil
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

func printEntries(w io.Writer, entries []model.FoodEntry) {
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tNAME\tAMOUNT\tGRAMS")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.0f\n", e.ID, e.LoggedAt.Local().Format("2006-01-02 15:04"), e.Category, e.Name, formatAmount(e.Amount, string(e.Unit)), nutrition.Grams(e))
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logListCmd, logTodayCmd)

	logAddCmd.Flags().StringVar(&logName, "name", "", "Food name (e.g. Banana)")
	logAddCmd.Flags().Float64Var(&logAmount, "amount", 0, "Amount in the chosen unit")
	logAddCmd.Flags().StringVar(&logUnit, "unit", "", "pieces|grams (default from config)")
	logAddCmd.Flags().StringVar(&logCategory, "category", "", "fruit|vegetable (default from config)")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default now)")
	logAddCmd.Flags().StringVar(&logTime, "time", "", "Time HH:MM (requires --date)")
	logAddCmd.Flags().BoolVar(&logAllowUnknown, "allow-unknown", false, "Accept names outside the food list (no nutrient data)")

	logListCmd.Flags().StringVar(&listDate, "date", "", "Filter by date YYYY-MM-DD")
	logListCmd.Flags().StringVar(&listFromDate, "from", "", "Start date YYYY-MM-DD")
	logListCmd.Flags().StringVar(&listToDate, "to", "", "End date YYYY-MM-DD (inclusive)")
	logListCmd.Flags().StringVar(&listCategory, "category", "", "fruit|vegetable")
	logListCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum entries to show")
}
