package produce

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	reportDate string
	reportJSON bool
)

type summaryFunc func(*sql.DB, time.Time) (*service.PeriodSummary, error)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show intake against fruit and vegetable targets",
}

var progressTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Progress for the current day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgress(cmd, service.TodaySummary)
	},
}

var progressWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Progress for the current Monday-to-Sunday week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgress(cmd, service.WeekSummary)
	},
}

func loadSummary(load summaryFunc) (*service.PeriodSummary, error) {
	now, err := referenceTime(reportDate)
	if err != nil {
		return nil, err
	}
	var out *service.PeriodSummary
	err = withDB(func(sqldb *sql.DB) error {
		s, err := load(sqldb, now)
		if err != nil {
			return err
		}
		out = s
		return nil
	})
	return out, err
}

func runProgress(cmd *cobra.Command, load summaryFunc) error {
	s, err := loadSummary(load)
	if err != nil {
		return err
	}
	if reportJSON {
		return printJSON(cmd, "progress", s.Progress)
	}
	w := cmd.OutOrStdout()
	printPeriodHeader(w, s)
	p := s.Progress
	fmt.Fprintf(w, "Fruits: %.0fg / %.0fg (%d%%)\n", p.FruitG, p.FruitTargetG, p.Fruits)
	fmt.Fprintf(w, "Vegetables: %.0fg / %.0fg (%d%%)\n", p.VegetableG, p.VegetableTargetG, p.Vegetables)
	fmt.Fprintf(w, "Combined: %d%%\n", p.Combined)
	return nil
}

func printPeriodHeader(w io.Writer, s *service.PeriodSummary) {
	last := s.Window.End.AddDate(0, 0, -1)
	if s.Period == service.PeriodWeek {
		fmt.Fprintf(w, "Week: %s to %s\n", s.Window.Start.Format("2006-01-02"), last.Format("2006-01-02"))
	} else {
		fmt.Fprintf(w, "Date: %s\n", s.Window.Start.Format("2006-01-02"))
	}
	if s.HasProfile {
		fmt.Fprintf(w, "Profile: %s, age group %s\n", s.Gender, s.AgeGroup)
	} else {
		fmt.Fprintln(w, "Profile: not set (default targets)")
	}
	fmt.Fprintf(w, "Entries: %d\n", s.Entries)
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressTodayCmd, progressWeekCmd)
}
