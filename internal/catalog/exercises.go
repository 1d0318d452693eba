package catalog

import "sifu/internal/models"

// Category groups exercises the way the training screens present them.
type Category struct {
	Name      string
	Exercises []models.Exercise
}

// WingChunTraining is the technique curriculum, ordered by belt requirement.
var WingChunTraining = []Category{
	{
		Name: "Fundamentals (White Belt)",
		Exercises: []models.Exercise{
			{ID: "wc1", Title: "Yee Jee Kim Yeung Ma", Description: "The base training stance. Focus on structure, relaxation and rooting.", Duration: 120, XP: 5, StaminaCost: 5, RequiredBelt: 0, Difficulty: "Beginner", VideoPath: "videos/Yee_Jee_Kim_Yeung_Ma.mp4"},
			{ID: "wc3", Title: "Straight Punch (Yat Chi Kuen)", Description: "The vertical chain punch. Structure and relaxation over raw strength.", Duration: 120, XP: 5, StaminaCost: 5, RequiredBelt: 0, Difficulty: "Beginner", VideoPath: "videos/Soco_Direto.mp4"},
			{ID: "wc4", Title: "Advancing Horse (Seung Ma)", Description: "Stepping in while keeping structure and the center line, to close distance.", Duration: 180, XP: 10, StaminaCost: 8, RequiredBelt: 0, Difficulty: "Beginner", VideoPath: "videos/Seung_Ma.mp4"},
		},
	},
	{
		Name: "Curriculum (Yellow Belt)",
		Exercises: []models.Exercise{
			{ID: "wc5", Title: "The Little Idea (Siu Nim Tao)", Description: "The first form, base of the whole system. Practice until every movement is memorized.", Duration: 600, XP: 50, StaminaCost: 15, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Siu_Nim_Tao.mp4"},
			{ID: "wc6", Title: "Turning Horse (Juen Ma)", Description: "Practice the turning stance to both sides while keeping stability.", Duration: 180, XP: 15, StaminaCost: 8, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Juen_Ma.mp4"},
			{ID: "wc7", Title: "Punches on Mitts", Description: "Sequences of 1, 2 and 3 punches in YJKYM, then combined with Juen Ma and Seung Ma.", Duration: 240, XP: 20, StaminaCost: 10, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Socos_Mitts.mp4"},
			{ID: "wc8", Title: "Kicks (Gerk)", Description: "Practice the front kick (Jing Gerk) and the side kick (Wang Gerk).", Duration: 240, XP: 20, StaminaCost: 10, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Gerk.mp4"},
			{ID: "wc9", Title: "Punch Blocks Punch (Kuen Siu Kuen)", Description: "Coordination drill of defense and attack, in YJKYM and Juen Ma.", Duration: 300, XP: 25, StaminaCost: 12, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Kuen_Siu_Kuen.mp4"},
			{ID: "wc10", Title: "Pak Sao Drill", Description: "Practice the Pak Da, Tan Da and Kuen Siu Kuen combinations while advancing.", Duration: 300, XP: 30, StaminaCost: 12, RequiredBelt: 1, Difficulty: "Intermediate", VideoPath: "videos/Pak_Sao_Exercicio.mp4"},
			{ID: "wc11", Title: "Four Gates", Description: "Defend the four quadrants with the Tan Da and Gaun Da combinations.", Duration: 300, XP: 30, StaminaCost: 12, RequiredBelt: 1, Difficulty: "Intermediate", VideoPath: "videos/Quatro_Portoes.mp4"},
			{ID: "wc12", Title: "Grabbing Hands (Lap Sao)", Description: "Practice the 3 exchanges: Lap Sao, punch, Gum Da, to build sensitivity and control.", Duration: 360, XP: 35, StaminaCost: 14, RequiredBelt: 1, Difficulty: "Intermediate", VideoPath: "videos/Lap_Sao.mp4"},
			{ID: "wc13", Title: "Sticky Hands (Dan Chi Sao)", Description: "Practice the Tan Sao exchange and attack/defense combinations in motion.", Duration: 420, XP: 40, StaminaCost: 15, RequiredBelt: 1, Difficulty: "Intermediate", VideoPath: "videos/Dan_Chi_Sao.mp4"},
			{ID: "wc14", Title: "Rolling Hands (Look Sao)", Description: "Practice the Tan exchange to develop fluidity and the ability to redirect force.", Duration: 420, XP: 40, StaminaCost: 15, RequiredBelt: 1, Difficulty: "Intermediate", VideoPath: "videos/Look_Sao.mp4"},
		},
	},
	{
		Name: "Advanced Techniques",
		Exercises: []models.Exercise{
			{ID: "wc15", Title: "Cham Kiu (Seeking the Bridge)", Description: "The second form. Body unity, rotation, stepping and kicks.", Duration: 600, XP: 150, StaminaCost: 20, RequiredBelt: 3, Difficulty: "Intermediate", VideoPath: "videos/Cham_Kiu.mp4"},
			{ID: "wc16", Title: "Muk Yan Jong (Wooden Dummy)", Description: "Dummy form training to refine angles, positions and force.", Duration: 900, XP: 200, StaminaCost: 25, RequiredBelt: 4, Difficulty: "Advanced", VideoPath: "videos/Muk_Yan_Jong.mp4"},
			{ID: "wc17", Title: "Biu Jee (Thrusting Fingers)", Description: "The third form, focused on emergency techniques and recovering the center line.", Duration: 600, XP: 250, StaminaCost: 25, RequiredBelt: 5, Difficulty: "Advanced", VideoPath: "videos/Biu_Jee.mp4"},
			{ID: "wc18", Title: "Luk Dim Boon Kwan (Long Pole)", Description: "Six-and-a-half-point pole training for strength and precision.", Duration: 900, XP: 300, StaminaCost: 30, RequiredBelt: 7, Difficulty: "Advanced", VideoPath: "videos/Bastao.mp4"},
			{ID: "wc19", Title: "Baat Jaam Do (Eight Cutting Knives)", Description: "Butterfly knives, the maximum extension of the practitioner's hands.", Duration: 900, XP: 350, StaminaCost: 30, RequiredBelt: 8, Difficulty: "Advanced", VideoPath: "videos/Facas.mp4"},
		},
	},
}

// ConditioningTraining is the physical conditioning curriculum.
var ConditioningTraining = []Category{
	{
		Name: "Conditioning Basics (White Belt)",
		Exercises: []models.Exercise{
			{ID: "c1", Title: "Push-ups (Practice)", Description: "Builds torso and arm strength. Start with a comfortable number and grow it gradually.", Duration: 120, XP: 10, StaminaCost: 10, RequiredBelt: 0, Difficulty: "Beginner", VideoPath: "videos/Flexoes.mp4"},
			{ID: "c2", Title: "Squats (Practice)", Description: "Builds leg strength for a stable stance. Keep the back straight.", Duration: 120, XP: 10, StaminaCost: 10, RequiredBelt: 0, Difficulty: "Beginner", VideoPath: "videos/Agachamentos.mp4"},
			{ID: "c3", Title: "Plank (Practice)", Description: "Strengthens the core that holds the structure. Hold for growing periods.", Duration: 90, XP: 10, StaminaCost: 10, RequiredBelt: 0, Difficulty: "Beginner", VideoPath: "videos/Prancha.mp4"},
		},
	},
	{
		Name: "Conditioning Goals (Yellow Belt)",
		Exercises: []models.Exercise{
			{ID: "c4", Title: "Goal: 30 Push-ups", Description: "Complete this challenge to test your strength.", Duration: 180, XP: 35, StaminaCost: 15, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Flexoes_Teste.mp4"},
			{ID: "c5", Title: "Goal: 1 Minute Plank", Description: "Complete this challenge to test your core endurance.", Duration: 60, XP: 35, StaminaCost: 15, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Prancha_Teste.mp4"},
			{ID: "c6", Title: "Goal: 30 Squats", Description: "Complete this challenge to test leg strength and endurance.", Duration: 180, XP: 35, StaminaCost: 15, RequiredBelt: 1, Difficulty: "Beginner", VideoPath: "videos/Agachamentos_Teste.mp4"},
		},
	},
}

// AllCategories returns every training category, techniques first.
func AllCategories() []Category {
	out := make([]Category, 0, len(WingChunTraining)+len(ConditioningTraining))
	out = append(out, WingChunTraining...)
	out = append(out, ConditioningTraining...)
	return out
}

// ExerciseByID looks an exercise up across every category.
func ExerciseByID(id string) (models.Exercise, bool) {
	for _, cat := range AllCategories() {
		for _, ex := range cat.Exercises {
			if ex.ID == id {
				return ex, true
			}
		}
	}
	return models.Exercise{}, false
}
