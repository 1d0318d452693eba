package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/storage"
)

var (
	editName   string
	editHeight float64
	editWeight float64
	editAvatar string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Updates your profile (name, height, weight, avatar)",
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

		name := p.Name
		if cmd.Flags().Changed("name") {
			name = editName
		}
		height := p.Height
		if cmd.Flags().Changed("height") {
			height = editHeight
		}
		weight := p.Weight
		if cmd.Flags().Changed("weight") {
			weight = editWeight
		}
		avatar := ""
		if cmd.Flags().Changed("avatar") {
			avatar = editAvatar
		}

		if err := st.Update(name, height, weight, avatar); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		fmt.Printf("✅ Profile updated (IMC %.1f)\n", st.Profile().IMC)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editName, "name", "n", "", "Your name")
	editCmd.Flags().Float64Var(&editHeight, "height", 0, "Height in cm")
	editCmd.Flags().Float64Var(&editWeight, "weight", 0, "Weight in kg")
	editCmd.Flags().StringVar(&editAvatar, "avatar", "", "Avatar id")
}
