package produce

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the gender and age used for targets",
}

var (
	profileGender string
	profileAge    string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the profile, replacing any previous one",
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := service.ParseGender(profileGender)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SaveProfile(sqldb, service.SaveProfileInput{Gender: gender, Age: profileAge}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile: %s, age group %s\n", gender, nutrition.ResolveAgeGroup(profileAge))
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile and resolved targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.CurrentProfile(sqldb)
			if err != nil {
				return err
			}
			summary, err := service.TodaySummary(sqldb, time.Now())
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile: not set")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
				fmt.Fprintf(cmd.OutOrStdout(), "Age: %s (group %s)\n", p.Age, nutrition.ResolveAgeGroup(p.Age))
				fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily targets: fruit %.0fg | vegetables %.0fg\n", summary.DailyTargets.DailyFruitG, summary.DailyTargets.DailyVegetableG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male|female")
	profileSetCmd.Flags().StringVar(&profileAge, "age", "", "Age in years")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("age")
}
