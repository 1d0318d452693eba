package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/storage"
	"sifu/internal/utils"
)

var exercisesAll bool

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Lists the training catalog, grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer st.Close()

		p, err := st.Load()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		beltLevel := 0
		if p != nil {
			beltLevel = p.UnlockedBeltLevel
		}

		catHeader := color.New(color.FgCyan, color.Bold).SprintFunc()
		title := color.New(color.FgMagenta, color.Bold).SprintFunc()
		locked := color.New(color.FgHiBlack).SprintFunc()

		for _, cat := range catalog.AllCategories() {
			fmt.Println(catHeader(cat.Name))
			for _, ex := range cat.Exercises {
				line := fmt.Sprintf("  %-5s %s  (%s, %d XP, %.0f stamina)",
					ex.ID, title(ex.Title), utils.FormatClock(ex.Duration), ex.XP, ex.StaminaCost)
				if ex.RequiredBelt > beltLevel {
					if !exercisesAll {
						continue
					}
					belt := catalog.BeltByLevel(ex.RequiredBelt)
					line = locked(fmt.Sprintf("  %-5s %s  🔒 requires %s", ex.ID, ex.Title, belt.Name))
				}
				fmt.Println(line)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)

	exercisesCmd.Flags().BoolVarP(&exercisesAll, "all", "a", false, "Include exercises above your belt")
}
