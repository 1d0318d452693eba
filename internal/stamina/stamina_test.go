package stamina

import (
	"testing"
	"time"

	"sifu/internal/models"
)

func testProfile(staminaPoints float64, lastUpdate time.Time) *models.Profile {
	p := models.NewProfile("Ip Man", 171, 63, "crane", lastUpdate)
	p.Stamina = staminaPoints
	p.LastStaminaUpdate = lastUpdate
	return p
}

func TestRegenerateAddsWholeIntervals(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := testProfile(40, t0)

	if !Regenerate(p, t0.Add(17*time.Minute)) {
		t.Fatalf("expected mutation after 17 minutes")
	}
	if p.Stamina != 43 {
		t.Fatalf("stamina=%v, want 43", p.Stamina)
	}
	// The 2 leftover minutes stay banked toward the next interval.
	if want := t0.Add(15 * time.Minute); !p.LastStaminaUpdate.Equal(want) {
		t.Fatalf("lastStaminaUpdate=%v, want %v", p.LastStaminaUpdate, want)
	}
}

func TestRegenerateNoopBelowOneInterval(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := testProfile(40, t0)

	if Regenerate(p, t0.Add(4*time.Minute+59*time.Second)) {
		t.Fatalf("expected no mutation below one interval")
	}
	if p.Stamina != 40 || !p.LastStaminaUpdate.Equal(t0) {
		t.Fatalf("profile mutated on a sub-interval call")
	}
}

func TestRegenerateNegativeElapsedIsNoop(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := testProfile(40, t0)

	if Regenerate(p, t0.Add(-time.Hour)) {
		t.Fatalf("expected no mutation for a clock that went backwards")
	}
	if p.Stamina != 40 {
		t.Fatalf("stamina=%v, want 40", p.Stamina)
	}
}

func TestRegenerateClampsAtMax(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := testProfile(99, t0)

	Regenerate(p, t0.Add(24*time.Hour))
	if p.Stamina != p.MaxStamina {
		t.Fatalf("stamina=%v, want clamped to %v", p.Stamina, p.MaxStamina)
	}
}

func TestRegenerateMonotonic(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, mins := range []int{0, 1, 5, 12, 61, 500} {
		p := testProfile(30, t0)
		before := p.Stamina
		Regenerate(p, t0.Add(time.Duration(mins)*time.Minute))
		if p.Stamina < before || p.Stamina > p.MaxStamina {
			t.Fatalf("after %d minutes stamina=%v, want within [%v, %v]", mins, p.Stamina, before, p.MaxStamina)
		}
	}
}

// Splitting an elapsed window into two calls must regenerate exactly as much
// as one call over the whole window, for any split point.
func TestRegenerateSplitCallsPreservePartialIntervals(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	total := 20 * time.Minute // exactly 4 intervals

	whole := testProfile(10, t0)
	Regenerate(whole, t0.Add(total))

	for _, split := range []time.Duration{time.Minute, 7 * time.Minute, 13 * time.Minute, 19 * time.Minute} {
		p := testProfile(10, t0)
		Regenerate(p, t0.Add(split))
		Regenerate(p, t0.Add(total))
		if p.Stamina != whole.Stamina {
			t.Fatalf("split at %v: stamina=%v, want %v", split, p.Stamina, whole.Stamina)
		}
	}
}
