package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sifu/internal/storage"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports your profile to a JSON file",
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
			return fmt.Errorf("no profile to export; run 'sifu init' first")
		}

		if err := st.Export(exportOut); err != nil {
			return fmt.Errorf("failed to export profile: %w", err)
		}

		fmt.Printf("📥 Profile exported to %s\n", exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", storage.ExportFileName, "Output file")
}
