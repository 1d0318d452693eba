package catalog

import "sifu/internal/models"

// Achievement is a badge with a predicate over the profile. Predicates are
// pure reads; the store appends newly-passed ids after every XP grant.
type Achievement struct {
	ID    string
	Title string
	Desc  string
	Icon  string
	Check func(p *models.Profile) bool
}

// Achievements is ordered the way the UI lists them.
var Achievements = []Achievement{
	{ID: "BEGINNER", Title: "A New Beginning", Desc: "Start your Wing Chun journey.", Icon: "🌱",
		Check: func(p *models.Profile) bool { return p.XP > 0 }},
	{ID: "YELLOW_BELT", Title: "Yellow Belt", Desc: "Reach the first Wing Chun level.", Icon: "🟡",
		Check: func(p *models.Profile) bool { return BeltForXP(p.XP).Level >= 1 }},
	{ID: "ORANGE_BELT", Title: "Master of Siu Nim Tao", Desc: "Reach the Orange Belt level.", Icon: "🟠",
		Check: func(p *models.Profile) bool { return BeltForXP(p.XP).Level >= 2 }},
	{ID: "RED_BELT", Title: "Master of Cham Kiu", Desc: "Reach the Red Belt level.", Icon: "🔴",
		Check: func(p *models.Profile) bool { return BeltForXP(p.XP).Level >= 3 }},
	{ID: "STREAK_7", Title: "Dedicated Student", Desc: "Complete a 7 day training streak.", Icon: "🔥",
		Check: func(p *models.Profile) bool { return p.Streak >= 7 }},
	{ID: "STREAK_30", Title: "Iron Will", Desc: "Complete a 30 day training streak.", Icon: "❤️‍🔥",
		Check: func(p *models.Profile) bool { return p.Streak >= 30 }},
}

// AchievementByID returns the definition for an earned id, if known.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
