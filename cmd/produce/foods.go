package produce

import (
	"fmt"
	"io"
	"strings"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/reference"
	"github.com/saadjs/produce-cli/internal/service"
	"github.com/spf13/cobra"
)

var foodsCategory string

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List selectable foods with nutrients per 100g",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "CATEGORY\tNAME\tVITAMIN_C_MG\tVITAMIN_A_MCG\tFIBER_G\tPOTASSIUM_MG")
		if strings.TrimSpace(foodsCategory) == "" {
			for _, name := range reference.AllFoods() {
				c, _ := reference.CategoryOf(name)
				printFood(w, c, name)
			}
			return nil
		}
		c, err := service.ParseCategory(foodsCategory)
		if err != nil {
			return err
		}
		for _, name := range reference.Foods(c) {
			printFood(w, c, name)
		}
		return nil
	},
}

func printFood(w io.Writer, c model.Category, name string) {
	n, _ := reference.Nutrients(name)
	fmt.Fprintf(w, "%s\t%s\t%.1f\t%.0f\t%.1f\t%.0f\n", c, name, n.VitaminCMg, n.VitaminAMcg, n.FiberG, n.PotassiumMg)
}

func init() {
	rootCmd.AddCommand(foodsCmd)
	foodsCmd.Flags().StringVar(&foodsCategory, "category", "", "fruit|vegetable (default: every food, sorted by name)")
}
