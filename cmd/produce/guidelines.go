package produce

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	guidelinesGender string
	guidelinesAge    string
)

var guidelinesCmd = &cobra.Command{
	Use:   "guidelines",
	Short: "Show dietary guidelines for a gender and age (default: saved profile)",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := guidelinesProfile()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if profile == nil {
			t := reference.DefaultTargets
			fmt.Fprintln(w, "Profile: not set")
			fmt.Fprintf(w, "Default targets: fruit %.0fg/day | vegetables %.0fg/day\n", t.DailyFruitG, t.DailyVegetableG)
			fmt.Fprintln(w, "Run `produce profile set --gender <male|female> --age <years>` for personal guidelines.")
			return nil
		}
		group := nutrition.ResolveAgeGroup(profile.Age)
		text, ok := reference.Guideline(profile.Gender, group)
		if !ok {
			return fmt.Errorf("no guidelines for %s %s", profile.Gender, group)
		}
		t := nutrition.ResolveTargets(profile, reference.Targets, reference.DefaultTargets)
		fmt.Fprintf(w, "Guidelines: %s, %s\n", profile.Gender, text.AgeGroup)
		fmt.Fprintf(w, "Fruits: %s\n", text.DailyFruits)
		fmt.Fprintf(w, "Vegetables: %s\n", text.DailyVegetables)
		fmt.Fprintf(w, "Daily total: %s\n", text.DailyTotal)
		fmt.Fprintf(w, "Weekly total: %s\n", text.WeeklyTotal)
		fmt.Fprintf(w, "Targets: fruit %.0fg/day | vegetables %.0fg/day\n", t.DailyFruitG, t.DailyVegetableG)
		fmt.Fprintf(w, "Notes: %s\n", text.Notes)
		return nil
	},
}

func guidelinesProfile() (*model.UserProfile, error) {
	if strings.TrimSpace(guidelinesGender) != "" {
		gender, err := service.ParseGender(guidelinesGender)
		if err != nil {
			return nil, err
		}
		return &model.UserProfile{Gender: gender, Age: guidelinesAge}, nil
	}
	if strings.TrimSpace(guidelinesAge) != "" {
		return nil, fmt.Errorf("--gender is required when --age is set")
	}
	var out *model.UserProfile
	err := withDB(func(sqldb *sql.DB) error {
		p, err := service.CurrentProfile(sqldb)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func init() {
	rootCmd.AddCommand(guidelinesCmd)
	guidelinesCmd.Flags().StringVar(&guidelinesGender, "gender", "", "male|female")
	guidelinesCmd.Flags().StringVar(&guidelinesAge, "age", "", "Age in years")
}
