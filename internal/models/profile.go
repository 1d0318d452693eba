package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"sifu/internal/utils"
)

// MiscTrainingID is the sentinel id for free-form practice. Unlike regular
// exercises it may be recorded more than once per day.
const MiscTrainingID = "misc"

const (
	DefaultMaxStamina = 100
	DefaultTheme      = "default"
)

// Profile is the single persisted record of one user's progress. There is
// exactly one mutable Profile in memory per session, owned by storage.Store;
// everything else mutates it through the store.
type Profile struct {
	Name              string         `json:"name"`
	Avatar            string         `json:"avatar"`
	Height            float64        `json:"height"` // cm
	Weight            float64        `json:"weight"` // kg
	IMC               float64        `json:"imc"`
	XP                int            `json:"xp"`
	UnlockedBeltLevel int            `json:"unlockedBeltLevel"`
	Streak            int            `json:"streak"`
	Achievements      []string       `json:"achievements"`
	History           []HistoryEntry `json:"history"`
	TrainingStats     map[string]int `json:"trainingStats"`
	CustomPlans       []CustomPlan   `json:"customPlans"`
	CreatedAt         time.Time      `json:"createdAt"`
	StudentID         string         `json:"studentId"`
	NewContent        NewContent     `json:"newContent"`
	Theme             string         `json:"theme"`
	Stamina           float64        `json:"stamina"`
	MaxStamina        float64        `json:"maxStamina"`
	LastStaminaUpdate time.Time      `json:"lastStaminaUpdate"`
}

// HistoryEntry aggregates one calendar day of practice.
type HistoryEntry struct {
	Date      string   `json:"date"` // "2006-01-02"
	XPGained  int      `json:"xpGained"`
	Trainings []string `json:"trainings"`
}

// NewContent flags sections the UI should highlight as unseen.
type NewContent struct {
	Skill bool `json:"skill"`
	Belts bool `json:"belts"`
}

// NewProfile builds a fully-populated record with every default field set.
func NewProfile(name string, height, weight float64, avatar string, now time.Time) *Profile {
	return &Profile{
		Name:              name,
		Avatar:            avatar,
		Height:            height,
		Weight:            weight,
		IMC:               ComputeIMC(height, weight),
		Achievements:      []string{},
		History:           []HistoryEntry{},
		TrainingStats:     map[string]int{},
		CustomPlans:       []CustomPlan{},
		CreatedAt:         now,
		StudentID:         StudentIDFor(now),
		Theme:             DefaultTheme,
		Stamina:           DefaultMaxStamina,
		MaxStamina:        DefaultMaxStamina,
		LastStaminaUpdate: now,
	}
}

// StudentIDFor derives the stable student id from the creation timestamp.
func StudentIDFor(createdAt time.Time) string {
	return "WC-" + strings.ToUpper(strconv.FormatInt(createdAt.UnixMilli(), 36))
}

// ComputeIMC returns the body-mass index rounded to one decimal.
func ComputeIMC(height, weight float64) float64 {
	if height <= 0 {
		return 0
	}
	m := height / 100
	return math.Round(weight/(m*m)*10) / 10
}

// EnsureIntegrity fills fields that are absent on old or imported records with
// their defaults. It is idempotent and never replaces a value that is already
// present. A zero LastStaminaUpdate marks a record that predates the stamina
// system, so only then are the stamina fields seeded.
func EnsureIntegrity(p *Profile, now time.Time) {
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.History == nil {
		p.History = []HistoryEntry{}
	}
	if p.TrainingStats == nil {
		p.TrainingStats = map[string]int{}
	}
	if p.CustomPlans == nil {
		p.CustomPlans = []CustomPlan{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.StudentID == "" {
		p.StudentID = StudentIDFor(p.CreatedAt)
	}
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	if p.LastStaminaUpdate.IsZero() {
		p.Stamina = DefaultMaxStamina
		p.LastStaminaUpdate = now
	}
	if p.MaxStamina <= 0 {
		p.MaxStamina = DefaultMaxStamina
	}
}

// DebitStamina checks and subtracts the cost as one step. It either succeeds
// and leaves stamina reduced by exactly cost, or fails and changes nothing.
func (p *Profile) DebitStamina(cost float64) bool {
	if p.Stamina < cost {
		return false
	}
	p.Stamina -= cost
	return true
}

// AddXP grants a non-negative amount of XP and folds it into today's history
// entry, merging with an existing entry for the same calendar date. Creating a
// new day's entry also advances the streak.
func (p *Profile) AddXP(amount int, trainingID string, now time.Time) {
	if amount <= 0 {
		return
	}
	p.XP += amount
	p.mergeHistory(amount, trainingID, now)
	if trainingID != MiscTrainingID {
		p.TrainingStats[trainingID]++
	}
}

func (p *Profile) mergeHistory(xpGained int, trainingID string, now time.Time) {
	today := utils.DateKey(now)
	for i := range p.History {
		if p.History[i].Date != today {
			continue
		}
		p.History[i].XPGained += xpGained
		if trainingID == MiscTrainingID || !containsString(p.History[i].Trainings, trainingID) {
			p.History[i].Trainings = append(p.History[i].Trainings, trainingID)
		}
		return
	}

	p.History = append(p.History, HistoryEntry{
		Date:      today,
		XPGained:  xpGained,
		Trainings: []string{trainingID},
	})
	if p.trainedOn(utils.DateKey(now.AddDate(0, 0, -1))) {
		p.Streak++
	} else {
		p.Streak = 1
	}
}

func (p *Profile) trainedOn(dateKey string) bool {
	for _, h := range p.History {
		if h.Date == dateKey {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
