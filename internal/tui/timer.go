// Package tui renders a live exercise countdown with bubbletea, fed by the
// timer engine through its presenter callbacks.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sifu/internal/engine"
	"sifu/internal/models"
	"sifu/internal/ui"
	"sifu/internal/utils"
)

type tickMsg struct {
	remaining int
	percent   float64
}

type resetMsg struct{}

type notifyMsg struct {
	message string
	icon    string
}

type startedMsg struct {
	ok bool
}

// programPresenter forwards engine callbacks into the bubbletea message loop.
type programPresenter struct {
	p *tea.Program
}

func (pp *programPresenter) ReportTick(_ string, secondsRemaining int, percentComplete float64) {
	pp.p.Send(tickMsg{remaining: secondsRemaining, percent: percentComplete})
}

func (pp *programPresenter) ReportTimerReset(_ string, _ int) {
	pp.p.Send(resetMsg{})
}

func (pp *programPresenter) Notify(message, icon string) {
	pp.p.Send(notifyMsg{message: message, icon: icon})
}

func (pp *programPresenter) ShowStartControls(string) {}
func (pp *programPresenter) ShowStopControls(string)  {}

type timerModel struct {
	eng   *engine.Engine
	ex    models.Exercise
	theme ui.Theme

	remaining int
	percent   float64
	status    string
	done      bool
	started   bool
}

func newTimerModel(eng *engine.Engine, ex models.Exercise, theme ui.Theme) timerModel {
	return timerModel{
		eng:       eng,
		ex:        ex,
		theme:     theme,
		remaining: ex.Duration,
		status:    "Press s to stop, q to abandon.",
	}
}

func (m timerModel) Init() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{ok: m.eng.Start(m.ex)}
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if !msg.ok {
			m.done = true
			return m, tea.Quit
		}
		m.started = true
		return m, nil

	case tickMsg:
		m.remaining = msg.remaining
		m.percent = msg.percent
		return m, nil

	case notifyMsg:
		m.status = fmt.Sprintf("%s %s", msg.icon, msg.message)
		return m, nil

	case resetMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "enter":
			if m.started && !m.done {
				ex := m.ex
				eng := m.eng
				return m, func() tea.Msg {
					eng.Stop(ex, true)
					return nil
				}
			}
		case "q", "ctrl+c":
			if m.started && !m.done {
				m.eng.Stop(m.ex, true)
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	if m.done {
		return m.status + "\n"
	}
	title := m.theme.Title.Render(m.ex.Title)
	clock := m.theme.Gold.Render(utils.FormatClock(m.remaining))
	bar := m.theme.ProgressBar(m.percent, 30)
	return fmt.Sprintf("%s\n\n  %s  %s %3.0f%%\n\n%s\n",
		title, clock, bar, m.percent, m.theme.Muted.Render(m.status))
}

// RunTimer shows a live countdown for one exercise. The engine is built
// around the program's presenter, so ticks stream straight into the view.
func RunTimer(store engine.ProfileStore, ex models.Exercise, theme ui.Theme) error {
	pres := &programPresenter{}
	eng := engine.New(store, pres)
	p := tea.NewProgram(newTimerModel(eng, ex, theme))
	pres.p = p
	_, err := p.Run()
	return err
}
