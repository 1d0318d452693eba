// Package ui holds the lipgloss styles shared by the rendering commands. The
// active palette is selected by the profile's theme key.
package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	good    lipgloss.Color
	warn    lipgloss.Color
	bad     lipgloss.Color
	muted   lipgloss.Color
	gold    lipgloss.Color
}

var palettes = map[string]palette{
	"default": {
		primary: lipgloss.Color("63"),  // blue
		accent:  lipgloss.Color("205"), // magenta
		good:    lipgloss.Color("42"),  // green
		warn:    lipgloss.Color("214"), // orange
		bad:     lipgloss.Color("196"), // red
		muted:   lipgloss.Color("244"), // gray
		gold:    lipgloss.Color("220"), // gold
	},
	"jade": {
		primary: lipgloss.Color("35"),
		accent:  lipgloss.Color("42"),
		good:    lipgloss.Color("84"),
		warn:    lipgloss.Color("178"),
		bad:     lipgloss.Color("160"),
		muted:   lipgloss.Color("246"),
		gold:    lipgloss.Color("226"),
	},
	"crimson": {
		primary: lipgloss.Color("160"),
		accent:  lipgloss.Color("203"),
		good:    lipgloss.Color("40"),
		warn:    lipgloss.Color("208"),
		bad:     lipgloss.Color("124"),
		muted:   lipgloss.Color("245"),
		gold:    lipgloss.Color("214"),
	},
	"night": {
		primary: lipgloss.Color("61"),
		accent:  lipgloss.Color("98"),
		good:    lipgloss.Color("71"),
		warn:    lipgloss.Color("179"),
		bad:     lipgloss.Color("167"),
		muted:   lipgloss.Color("240"),
		gold:    lipgloss.Color("186"),
	},
}

// Theme bundles the styles the views render with.
type Theme struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style
	Muted lipgloss.Style
	Gold  lipgloss.Style
}

// For returns the theme for a profile theme key, falling back to default.
func For(key string) Theme {
	p, ok := palettes[key]
	if !ok {
		p = palettes["default"]
	}
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Key:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Good:  lipgloss.NewStyle().Foreground(p.good),
		Warn:  lipgloss.NewStyle().Foreground(p.warn),
		Bad:   lipgloss.NewStyle().Foreground(p.bad),
		Muted: lipgloss.NewStyle().Foreground(p.muted),
		Gold:  lipgloss.NewStyle().Bold(true).Foreground(p.gold),
	}
}

// Known reports whether the theme key exists.
func Known(key string) bool {
	_, ok := palettes[key]
	return ok
}

// Keys lists the available theme keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(palettes))
	for k := range palettes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ProgressBar renders a fixed-width bar for the given completion percentage.
func (t Theme) ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return t.Good.Render(strings.Repeat("█", filled)) + t.Muted.Render(strings.Repeat("░", width-filled))
}
