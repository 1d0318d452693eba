package catalog

// Belt is one tier of the ordered progression table, unlocked by XP threshold.
type Belt struct {
	Level          int
	Name           string
	MinXP          int
	Color          string
	SecondaryColor string
}

// BeltSystem is ordered by level; MinXP is strictly increasing.
var BeltSystem = []Belt{
	{Level: 0, Name: "White Belt", MinXP: 0, Color: "#ecf0f1", SecondaryColor: "#bdc3c7"},
	{Level: 1, Name: "Yellow Belt - Wing Chun", MinXP: 250, Color: "#f1c40f", SecondaryColor: "#f39c12"},
	{Level: 2, Name: "Orange Belt - Siu Nim Tao", MinXP: 700, Color: "#e67e22", SecondaryColor: "#d35400"},
	{Level: 3, Name: "Red Belt - Cham Kiu", MinXP: 1500, Color: "#e74c3c", SecondaryColor: "#c0392b"},
	{Level: 4, Name: "Green Belt - Muk Yan Jong", MinXP: 2500, Color: "#2ecc71", SecondaryColor: "#27ae60"},
	{Level: 5, Name: "Brown Belt - Biu Jee", MinXP: 4000, Color: "#a1662f", SecondaryColor: "#6d4c41"},
	{Level: 6, Name: "Black Belt", MinXP: 6000, Color: "#2c3e50", SecondaryColor: "#000000"},
	{Level: 7, Name: "Black Belt I - Luk Dim Boon Kwan", MinXP: 8500, Color: "#000000", SecondaryColor: "#34495e"},
	{Level: 8, Name: "Black Belt II - Baat Jaam Do", MinXP: 12000, Color: "#000000", SecondaryColor: "#e74c3c"},
}

// BeltForXP returns the highest belt whose threshold the given XP meets.
func BeltForXP(xp int) Belt {
	belt := BeltSystem[0]
	for _, b := range BeltSystem {
		if xp >= b.MinXP {
			belt = b
		}
	}
	return belt
}

// BeltByLevel returns the belt at the given level, falling back to white.
func BeltByLevel(level int) Belt {
	for _, b := range BeltSystem {
		if b.Level == level {
			return b
		}
	}
	return BeltSystem[0]
}

// NextBelt returns the belt after the given level, or false at the top.
func NextBelt(level int) (Belt, bool) {
	for _, b := range BeltSystem {
		if b.Level == level+1 {
			return b, true
		}
	}
	return Belt{}, false
}
