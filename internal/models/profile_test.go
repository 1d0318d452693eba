package models

import (
	"encoding/json"
	"testing"
	"time"
)

var noon = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDebitStamina(t *testing.T) {
	p := NewProfile("Ip Man", 171, 63, "crane", noon)
	p.Stamina = 20

	if !p.DebitStamina(15) {
		t.Fatalf("debit of 15 from 20 should succeed")
	}
	if p.Stamina != 5 {
		t.Fatalf("stamina=%v, want 5", p.Stamina)
	}

	if p.DebitStamina(6) {
		t.Fatalf("debit of 6 from 5 should fail")
	}
	if p.Stamina != 5 {
		t.Fatalf("failed debit must leave stamina untouched, got %v", p.Stamina)
	}
}

func TestAddXPMergesSameDay(t *testing.T) {
	p := NewProfile("Ip Man", 171, 63, "crane", noon)

	p.AddXP(50, "wc5", noon)
	p.AddXP(25, "wc5", noon.Add(2*time.Hour))

	if p.XP != 75 {
		t.Fatalf("xp=%d, want 75", p.XP)
	}
	if len(p.History) != 1 {
		t.Fatalf("history entries=%d, want 1", len(p.History))
	}
	h := p.History[0]
	if h.XPGained != 75 {
		t.Fatalf("xpGained=%d, want 75", h.XPGained)
	}
	if len(h.Trainings) != 1 || h.Trainings[0] != "wc5" {
		t.Fatalf("trainings=%v, want exactly one wc5", h.Trainings)
	}
}

func TestAddXPMiscMayRepeat(t *testing.T) {
	p := NewProfile("Ip Man", 171, 63, "crane", noon)

	p.AddXP(5, MiscTrainingID, noon)
	p.AddXP(5, MiscTrainingID, noon)

	if len(p.History) != 1 {
		t.Fatalf("history entries=%d, want 1", len(p.History))
	}
	if got := len(p.History[0].Trainings); got != 2 {
		t.Fatalf("misc trainings recorded %d times, want 2", got)
	}
}

func TestAddXPZeroIsNoop(t *testing.T) {
	p := NewProfile("Ip Man", 171, 63, "crane", noon)
	p.AddXP(0, "wc5", noon)
	if p.XP != 0 || len(p.History) != 0 {
		t.Fatalf("zero grant mutated the profile")
	}
}

func TestStreakAdvancesOnConsecutiveDays(t *testing.T) {
	p := NewProfile("Ip Man", 171, 63, "crane", noon)

	p.AddXP(10, "wc1", noon)
	if p.Streak != 1 {
		t.Fatalf("streak=%d, want 1", p.Streak)
	}
	p.AddXP(10, "wc1", noon.AddDate(0, 0, 1))
	if p.Streak != 2 {
		t.Fatalf("streak=%d, want 2", p.Streak)
	}
	// A gap resets the count.
	p.AddXP(10, "wc1", noon.AddDate(0, 0, 5))
	if p.Streak != 1 {
		t.Fatalf("streak=%d after a gap, want 1", p.Streak)
	}
	// Same-day grants do not touch the streak.
	p.AddXP(10, "wc3", noon.AddDate(0, 0, 5))
	if p.Streak != 1 {
		t.Fatalf("streak=%d after same-day grant, want 1", p.Streak)
	}
}

func TestComputeIMC(t *testing.T) {
	if got := ComputeIMC(171, 63); got != 21.5 {
		t.Fatalf("IMC(171, 63)=%v, want 21.5", got)
	}
	if got := ComputeIMC(0, 63); got != 0 {
		t.Fatalf("IMC with zero height=%v, want 0", got)
	}
}

func TestEnsureIntegrityFillsAbsentFields(t *testing.T) {
	var p Profile
	if err := json.Unmarshal([]byte(`{"name":"Old Timer","xp":500}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	EnsureIntegrity(&p, noon)

	if p.Achievements == nil || p.History == nil || p.TrainingStats == nil || p.CustomPlans == nil {
		t.Fatalf("collections not defaulted: %+v", p)
	}
	if p.StudentID == "" {
		t.Fatalf("studentId not derived")
	}
	if p.Theme != DefaultTheme {
		t.Fatalf("theme=%q, want %q", p.Theme, DefaultTheme)
	}
	if p.Stamina != DefaultMaxStamina || p.MaxStamina != DefaultMaxStamina {
		t.Fatalf("stamina fields not seeded for a pre-stamina record: %v/%v", p.Stamina, p.MaxStamina)
	}
	if p.XP != 500 {
		t.Fatalf("present field overwritten: xp=%d", p.XP)
	}
}

func TestEnsureIntegrityIdempotent(t *testing.T) {
	var p Profile
	if err := json.Unmarshal([]byte(`{"name":"Old Timer","xp":500}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	EnsureIntegrity(&p, noon)
	once, _ := json.Marshal(&p)
	EnsureIntegrity(&p, noon.Add(48*time.Hour))
	twice, _ := json.Marshal(&p)

	if string(once) != string(twice) {
		t.Fatalf("second pass changed the record:\n%s\n%s", once, twice)
	}
}

func TestEnsureIntegrityKeepsPresentValues(t *testing.T) {
	p := NewProfile("Ip Man", 171, 63, "crane", noon)
	p.Stamina = 0 // legitimately exhausted, not absent
	p.Theme = "night"

	EnsureIntegrity(p, noon.Add(time.Hour))

	if p.Stamina != 0 {
		t.Fatalf("stamina=%v, an exhausted balance must survive the repair pass", p.Stamina)
	}
	if p.Theme != "night" {
		t.Fatalf("theme=%q, want night", p.Theme)
	}
	if p.StudentID != StudentIDFor(noon) {
		t.Fatalf("studentId recomputed: %q", p.StudentID)
	}
}
