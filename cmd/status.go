package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progression: XP, belt, stamina, streak and next belt distance",
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
		if p == nil {
			return fmt.Errorf("no profile found; run 'sifu init' first")
		}

		belt := catalog.BeltByLevel(p.UnlockedBeltLevel)

		// Print a stylish header.
		printBoxedHeader("STATUS")

		printMetric("Student", fmt.Sprintf("%s (%s)", p.Name, p.StudentID))
		printMetric("Belt", belt.Name)
		printMetric("XP", p.XP)
		if next, ok := catalog.NextBelt(p.UnlockedBeltLevel); ok {
			printMetric("Next belt", fmt.Sprintf("%s in %d XP", next.Name, next.MinXP-p.XP))
		} else {
			printMetric("Next belt", "none, you are at the top")
		}
		printMetric("Stamina", fmt.Sprintf("%.0f/%.0f", p.Stamina, p.MaxStamina))
		printMetric("Streak", fmt.Sprintf("%d days", p.Streak))
		printMetric("IMC", fmt.Sprintf("%.1f", p.IMC))
		fmt.Println()

		// Trainings performed, tallied per exercise.
		header := color.New(color.FgGreen, color.Bold).Sprintf("Completed trainings:")
		fmt.Println(header)
		if len(p.TrainingStats) == 0 {
			fmt.Println("  (none yet)")
		}
		for _, cat := range catalog.AllCategories() {
			for _, ex := range cat.Exercises {
				if count := p.TrainingStats[ex.ID]; count > 0 {
					fmt.Printf("  • %s: %d times\n", color.New(color.FgMagenta, color.Bold).Sprint(ex.Title), count)
				}
			}
		}
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
