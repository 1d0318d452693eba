package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sifu/internal/storage"
	"sifu/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme [key]",
	Short: "Shows or sets the display theme",
	Args:  cobra.MaximumNArgs(1),
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

		if len(args) == 0 {
			fmt.Printf("Current theme: %s (available: %s)\n", p.Theme, strings.Join(ui.Keys(), ", "))
			return nil
		}

		key := args[0]
		if !ui.Known(key) {
			return fmt.Errorf("unknown theme %q (available: %s)", key, strings.Join(ui.Keys(), ", "))
		}
		if err := st.SetTheme(key); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}

		fmt.Println(ui.For(key).Title.Render("✅ Theme set to " + key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
