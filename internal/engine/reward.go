package engine

import "math"

// Partial-credit tiers for a cancelled exercise, by fraction of the planned
// duration actually trained.
const (
	halfCreditFraction    = 0.75
	quarterCreditFraction = 0.4
)

// PartialXP maps the elapsed fraction of a countdown to the XP awarded on a
// user cancel: at least 75% trained earns half the full reward, at least 40%
// earns a quarter, anything less earns nothing. Rounding is half-up. The
// result is never negative and never exceeds fullXP.
func PartialXP(fullXP, elapsedSeconds, plannedSeconds int) int {
	if fullXP <= 0 || plannedSeconds <= 0 {
		return 0
	}

	fraction := float64(elapsedSeconds) / float64(plannedSeconds)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	switch {
	case fraction >= halfCreditFraction:
		return int(math.Round(float64(fullXP) * 0.5))
	case fraction >= quarterCreditFraction:
		return int(math.Round(float64(fullXP) * 0.25))
	default:
		return 0
	}
}
