package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sifu",
	Short: "Gamified Wing Chun practice log with belts, XP and stamina",
}

func Execute() error {
	return rootCmd.Execute()
}
