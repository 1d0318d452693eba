package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/storage"
	"sifu/internal/ui"
)

var beltsCmd = &cobra.Command{
	Use:   "belts",
	Short: "Shows the belt progression and where you stand",
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

		for _, b := range catalog.BeltSystem {
			marker := "  "
			if b.Level == p.UnlockedBeltLevel {
				marker = "▶ "
			}
			line := fmt.Sprintf("%s%-36s %6d XP", marker, b.Name, b.MinXP)
			switch {
			case b.Level < p.UnlockedBeltLevel:
				fmt.Println(theme.Good.Render(line))
			case b.Level == p.UnlockedBeltLevel:
				fmt.Println(theme.Gold.Render(line))
			default:
				fmt.Println(theme.Muted.Render(line + "  🔒"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(beltsCmd)
}
