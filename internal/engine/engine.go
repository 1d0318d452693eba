// Package engine runs per-exercise countdowns and turns them into XP.
//
// Each exercise id has at most one active timer. Distinct exercises may run
// concurrently, each driven by its own ticker goroutine; one mutex orders tick
// handling against user-triggered start/stop calls, so once Stop returns no
// further tick for that id can be observed.
package engine

import (
	"fmt"
	"math"
	"sync"
	"time"

	"sifu/internal/models"
)

// ProfileStore is the slice of the profile store the engine needs.
type ProfileStore interface {
	DebitStamina(cost float64) (bool, error)
	GrantXP(amount int, trainingID string) error
}

// Presenter is the narrow callback contract to whatever renders the timers.
// The engine pushes updates through it and never queries it for state.
type Presenter interface {
	ReportTick(exerciseID string, secondsRemaining int, percentComplete float64)
	ReportTimerReset(exerciseID string, plannedSeconds int)
	Notify(message, icon string)
	ShowStartControls(exerciseID string)
	ShowStopControls(exerciseID string)
}

type activeTimer struct {
	exercise  models.Exercise
	startedAt time.Time
	remaining int
	ticker    *time.Ticker
	done      chan struct{}
}

type Engine struct {
	mu        sync.Mutex
	store     ProfileStore
	presenter Presenter
	clock     Clock
	tickEvery time.Duration
	timers    map[string]*activeTimer
}

func New(store ProfileStore, presenter Presenter) *Engine {
	return &Engine{
		store:     store,
		presenter: presenter,
		clock:     SystemClock{},
		tickEvery: time.Second,
		timers:    map[string]*activeTimer{},
	}
}

// Start debits the exercise's stamina cost and begins its countdown. Starting
// an exercise that is already running is a silent no-op; an insufficient
// stamina balance refuses the start and notifies the presenter. Returns
// whether a timer actually began.
func (e *Engine) Start(ex models.Exercise) bool {
	e.mu.Lock()
	if _, running := e.timers[ex.ID]; running {
		e.mu.Unlock()
		return false
	}

	ok, err := e.store.DebitStamina(ex.StaminaCost)
	if err != nil {
		e.mu.Unlock()
		e.presenter.Notify("Could not save your profile: "+err.Error(), "⚠️")
		return false
	}
	if !ok {
		e.mu.Unlock()
		e.presenter.Notify("Not enough stamina!", "⚡")
		return false
	}

	t := &activeTimer{
		exercise:  ex,
		startedAt: e.clock.Now(),
		remaining: ex.Duration,
		ticker:    time.NewTicker(e.tickEvery),
		done:      make(chan struct{}),
	}
	e.timers[ex.ID] = t
	e.mu.Unlock()

	e.presenter.ShowStopControls(ex.ID)
	e.presenter.ReportTick(ex.ID, ex.Duration, 0)
	go e.run(t)
	return true
}

// Stop ends the countdown for an exercise. Without an active timer it is a
// no-op. The tick schedule is always cancelled before anything else. When the
// user cancelled, elapsed time is measured against the wall clock rather than
// the tick counter, and partial XP is granted per the reward tiers.
func (e *Engine) Stop(ex models.Exercise, userCancelled bool) {
	e.mu.Lock()
	t, ok := e.timers[ex.ID]
	if !ok {
		e.mu.Unlock()
		return
	}
	delete(e.timers, ex.ID)
	t.ticker.Stop()
	close(t.done)
	elapsed := int(math.Round(e.clock.Now().Sub(t.startedAt).Seconds()))
	e.mu.Unlock()

	if userCancelled {
		if xp := PartialXP(ex.XP, elapsed, ex.Duration); xp > 0 {
			if err := e.store.GrantXP(xp, ex.ID); err != nil {
				e.presenter.Notify("Could not save your progress: "+err.Error(), "⚠️")
			} else {
				e.presenter.Notify(fmt.Sprintf("+%d XP! Training interrupted.", xp), "👍")
			}
		} else {
			e.presenter.Notify("Training interrupted.", "❌")
		}
	}

	e.presenter.ReportTimerReset(ex.ID, ex.Duration)
	e.presenter.ShowStartControls(ex.ID)
}

// IsRunning reports whether the exercise has an active timer.
func (e *Engine) IsRunning(exerciseID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.timers[exerciseID]
	return ok
}

// ActiveCount returns how many timers are currently running.
func (e *Engine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.timers)
}

func (e *Engine) run(t *activeTimer) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			if e.tick(t) {
				e.complete(t)
				return
			}
		}
	}
}

// tick advances the countdown by one second and reports progress. It returns
// true when the planned duration has been reached. Holding the mutex across
// the report keeps ticks strictly ordered per exercise.
func (e *Engine) tick(t *activeTimer) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timers[t.exercise.ID] != t {
		return false
	}
	t.remaining--
	elapsed := t.exercise.Duration - t.remaining
	percent := float64(elapsed) / float64(t.exercise.Duration) * 100
	e.presenter.ReportTick(t.exercise.ID, t.remaining, percent)
	return t.remaining <= 0
}

// complete handles natural completion: full XP, then back to idle. A Stop that
// raced in between already released the timer, in which case nothing is owed.
func (e *Engine) complete(t *activeTimer) {
	ex := t.exercise
	if !e.release(ex.ID, t) {
		return
	}

	if err := e.store.GrantXP(ex.XP, ex.ID); err != nil {
		e.presenter.Notify("Could not save your progress: "+err.Error(), "⚠️")
	} else {
		e.presenter.Notify(fmt.Sprintf("+%d XP! Training complete.", ex.XP), "🎉")
	}
	e.presenter.ReportTimerReset(ex.ID, ex.Duration)
	e.presenter.ShowStartControls(ex.ID)
}

func (e *Engine) release(id string, t *activeTimer) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timers[id] != t {
		return false
	}
	delete(e.timers, id)
	t.ticker.Stop()
	close(t.done)
	return true
}
