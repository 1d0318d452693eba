package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/storage"
	"sifu/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Shows your student profile",
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

		theme := ui.For(p.Theme)
		belt := catalog.BeltByLevel(p.UnlockedBeltLevel)

		fmt.Println(theme.Title.Render(p.Name) + theme.Muted.Render("  ("+p.StudentID+")"))
		fmt.Println(theme.Key.Render("Belt:") + " " + belt.Name)
		fmt.Printf("%s %d\n", theme.Key.Render("XP:"), p.XP)
		fmt.Printf("%s %.0f/%.0f\n", theme.Key.Render("Stamina:"), p.Stamina, p.MaxStamina)
		fmt.Printf("%s %.0f cm   %s %.1f kg   %s %.1f\n",
			theme.Key.Render("Height:"), p.Height,
			theme.Key.Render("Weight:"), p.Weight,
			theme.Key.Render("IMC:"), p.IMC)
		fmt.Printf("%s %d days\n", theme.Key.Render("Streak:"), p.Streak)
		fmt.Printf("%s %d/%d\n", theme.Key.Render("Achievements:"), len(p.Achievements), len(catalog.Achievements))
		fmt.Printf("%s %s\n", theme.Key.Render("Member since:"), p.CreatedAt.Format("02 Jan 2006"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
