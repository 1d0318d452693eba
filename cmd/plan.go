package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/models"
	"sifu/internal/storage"
	"sifu/internal/utils"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage and run custom training plans",
}

var planAddCmd = &cobra.Command{
	Use:   "add <file.toml>",
	Short: "Adds a custom plan from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var planTOML models.CustomPlanTOML
		if err := utils.ParseTOMLFile(args[0], &planTOML); err != nil {
			return fmt.Errorf("failed to parse plan file: %w", err)
		}
		if planTOML.Name == "" {
			return fmt.Errorf("plan file must set a name")
		}
		if len(planTOML.Exercises) == 0 {
			return fmt.Errorf("plan file must list at least one exercise")
		}
		for _, id := range planTOML.Exercises {
			if _, ok := catalog.ExerciseByID(id); !ok {
				return fmt.Errorf("unknown exercise %q in plan", id)
			}
		}

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

		plan := models.CustomPlan{
			ID:        uuid.New().String(),
			Name:      planTOML.Name,
			Exercises: planTOML.Exercises,
		}
		if err := st.AddCustomPlan(plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		fmt.Printf("✅ Added plan %q with %d exercises\n", plan.Name, len(plan.Exercises))
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists your custom plans",
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

		if len(p.CustomPlans) == 0 {
			fmt.Println("No custom plans yet. Add one with 'sifu plan add <file.toml>'.")
			return nil
		}
		for _, plan := range p.CustomPlans {
			fmt.Printf("%s  %s (%d exercises)\n", plan.ID[:8], plan.Name, len(plan.Exercises))
		}
		return nil
	},
}

var planRunCmd = &cobra.Command{
	Use:   "run <plan-id-prefix>",
	Short: "Runs a custom plan, one exercise at a time",
	Args:  cobra.ExactArgs(1),
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

		var plan *models.CustomPlan
		for i := range p.CustomPlans {
			if p.CustomPlans[i].ID == args[0] || len(args[0]) >= 4 && strings.HasPrefix(p.CustomPlans[i].ID, args[0]) {
				plan = &p.CustomPlans[i]
				break
			}
		}
		if plan == nil {
			return fmt.Errorf("no plan matches %q; see 'sifu plan list'", args[0])
		}

		fmt.Printf("🥋 Running plan %q\n", plan.Name)
		for i, id := range plan.Exercises {
			ex, ok := catalog.ExerciseByID(id)
			if !ok {
				continue
			}
			if p.UnlockedBeltLevel < ex.RequiredBelt {
				fmt.Printf("⏭  Skipping %s (belt locked)\n", ex.Title)
				continue
			}
			fmt.Printf("\n[%d/%d] ", i+1, len(plan.Exercises))
			if err := runExercise(st, ex); err != nil {
				return err
			}
		}
		fmt.Println("\n✅ Plan finished.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planRunCmd)
}
