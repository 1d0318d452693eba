package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/storage"
)

var historyMonth string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows your daily training history",
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

		entries := p.History
		if historyMonth != "" {
			filtered := entries[:0:0]
			for _, h := range entries {
				if strings.HasPrefix(h.Date, historyMonth) {
					filtered = append(filtered, h)
				}
			}
			entries = filtered
		}
		if len(entries) == 0 {
			fmt.Println("No training recorded yet.")
			return nil
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })

		dateStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		xpStyle := color.New(color.FgYellow, color.Bold).SprintFunc()

		for _, h := range entries {
			fmt.Printf("%s  %s\n", dateStyle(h.Date), xpStyle(fmt.Sprintf("+%d XP", h.XPGained)))
			for _, id := range h.Trainings {
				name := id
				if ex, ok := catalog.ExerciseByID(id); ok {
					name = ex.Title
				}
				fmt.Printf("  • %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyMonth, "month", "m", "", "Filter by month (YYYY-MM)")
}
