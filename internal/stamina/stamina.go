// Package stamina implements passive regeneration of the consumable stamina
// resource that gates exercise starts.
package stamina

import (
	"time"

	"sifu/internal/models"
)

const (
	// RegenRate is how many stamina points come back per interval.
	RegenRate = 1
	// RegenInterval is how long one regeneration interval lasts.
	RegenInterval = 5 * time.Minute
)

// Regenerate applies every whole interval elapsed since the profile's last
// stamina update, clamped to maxStamina. lastStaminaUpdate advances by exactly
// the consumed intervals rather than to now, so partial progress toward the
// next interval is never lost between calls. Returns true if the profile was
// mutated, so callers can skip a redundant persistence write.
func Regenerate(p *models.Profile, now time.Time) bool {
	if p == nil {
		return false
	}

	elapsed := now.Sub(p.LastStaminaUpdate)
	if elapsed < RegenInterval {
		return false
	}

	intervals := int64(elapsed / RegenInterval)
	p.Stamina += float64(intervals * RegenRate)
	if p.Stamina > p.MaxStamina {
		p.Stamina = p.MaxStamina
	}
	p.LastStaminaUpdate = p.LastStaminaUpdate.Add(time.Duration(intervals) * RegenInterval)
	return true
}
