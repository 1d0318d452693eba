package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sifu/internal/catalog"
	"sifu/internal/engine"
	"sifu/internal/models"
	"sifu/internal/storage"
	"sifu/internal/tui"
	"sifu/internal/ui"
	"sifu/internal/utils"
)

var trainWatch bool

var trainCmd = &cobra.Command{
	Use:   "train <exercise-id>",
	Short: "Starts the countdown for an exercise; stopping early earns partial XP",
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

		ex, ok := catalog.ExerciseByID(args[0])
		if !ok {
			return fmt.Errorf("unknown exercise %q; see 'sifu exercises'", args[0])
		}
		if p.UnlockedBeltLevel < ex.RequiredBelt {
			belt := catalog.BeltByLevel(ex.RequiredBelt)
			return fmt.Errorf("%s requires %s", ex.Title, belt.Name)
		}

		if trainWatch {
			return tui.RunTimer(st, ex, ui.For(p.Theme))
		}
		return runExercise(st, ex)
	},
}

// runExercise drives one countdown on the plain console presenter, stopping
// early when the user presses Enter.
func runExercise(st *storage.Store, ex models.Exercise) error {
	pres := newConsolePresenter()
	eng := engine.New(st, pres)

	fmt.Printf("🥋 %s (%s, %d XP)\n", ex.Title, utils.FormatClock(ex.Duration), ex.XP)
	if !eng.Start(ex) {
		return nil // refusal was already reported through the presenter
	}

	go func() {
		reader := bufio.NewReader(os.Stdin)
		_, _ = reader.ReadString('\n')
		eng.Stop(ex, true)
	}()

	<-pres.done
	return nil
}

// consolePresenter renders engine callbacks on stdout. The terminal bell in
// Notify doubles as the audio cue.
type consolePresenter struct {
	done chan struct{}
}

func newConsolePresenter() *consolePresenter {
	return &consolePresenter{done: make(chan struct{}, 1)}
}

func (c *consolePresenter) ReportTick(_ string, secondsRemaining int, percentComplete float64) {
	fmt.Printf("\r⏱  %s  %3.0f%% ", utils.FormatClock(secondsRemaining), percentComplete)
}

func (c *consolePresenter) ReportTimerReset(_ string, _ int) {
	select {
	case c.done <- struct{}{}:
	default:
	}
}

func (c *consolePresenter) Notify(message, icon string) {
	fmt.Printf("\n%s %s\a\n", icon, message)
}

func (c *consolePresenter) ShowStopControls(string) {
	fmt.Println("Press Enter to stop early.")
}

func (c *consolePresenter) ShowStartControls(string) {}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().BoolVarP(&trainWatch, "watch", "w", false, "Show a live full-screen countdown")
}
