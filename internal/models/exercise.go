package models

// Exercise describes one timed training item from the catalog. Catalog data is
// read-only reference material; the engine never mutates it.
type Exercise struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     int     `json:"duration"` // planned countdown, seconds
	XP           int     `json:"xp"`       // granted on full completion
	StaminaCost  float64 `json:"stamina_cost"`
	RequiredBelt int     `json:"required_belt"`
	Difficulty   string  `json:"difficulty"`
	VideoPath    string  `json:"video_path,omitempty"`
}

// CustomPlan is a user-authored sequence of exercise ids. The timer engine
// treats the sequence as opaque; plans are run one exercise at a time.
type CustomPlan struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

//
// For TOML parsing only
//

type CustomPlanTOML struct {
	Name      string   `toml:"name"`
	Exercises []string `toml:"exercises"`
}
