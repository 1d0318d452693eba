package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Imports a previously exported profile, replacing the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer st.Close()

		// Load whatever exists so a rejected import leaves it untouched.
		if _, err := st.Load(); err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		p, err := st.Import(args[0])
		if err != nil {
			return fmt.Errorf("❌ %w", err)
		}

		fmt.Printf("📤 Profile imported: welcome back, %s (%d XP)\n", p.Name, p.XP)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
