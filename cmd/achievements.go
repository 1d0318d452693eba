package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/storage"
	"sifu/internal/ui"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Lists earned and locked achievements",
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
		earned := map[string]bool{}
		for _, id := range p.Achievements {
			earned[id] = true
		}

		for _, a := range catalog.Achievements {
			if earned[a.ID] {
				fmt.Printf("%s %s: %s\n", a.Icon, theme.Gold.Render(a.Title), a.Desc)
			} else {
				fmt.Printf("🔒 %s: %s\n", theme.Muted.Render(a.Title), theme.Muted.Render(a.Desc))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
