package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/storage"
)

var (
	initName   string
	initHeight float64
	initWeight float64
	initAvatar string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates your student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer st.Close()

		existing, err := st.Load()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("a profile for %s already exists; use 'sifu edit' to change it", existing.Name)
		}

		p, err := st.Create(initName, initHeight, initWeight, initAvatar)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		fmt.Printf("✅ Welcome, %s! Your student id is %s\n", p.Name, p.StudentID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Your name")
	initCmd.Flags().Float64Var(&initHeight, "height", 0, "Height in cm")
	initCmd.Flags().Float64Var(&initWeight, "weight", 0, "Weight in kg")
	initCmd.Flags().StringVar(&initAvatar, "avatar", "crane", "Avatar id")
	initCmd.MarkFlagRequired("name")
	initCmd.MarkFlagRequired("height")
	initCmd.MarkFlagRequired("weight")
}
