package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(fmt.Sprintf("file:%s?cache=shared&mode=rwc", path))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoadWithoutProfile(t *testing.T) {
	st := newTestStore(t)

	p, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no profile on a fresh store, got %+v", p)
	}
}

func TestCreateThenLoad(t *testing.T) {
	st := newTestStore(t)

	created, err := st.Create("Ip Man", 171, 63, "crane")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.StudentID == "" || created.Stamina != created.MaxStamina {
		t.Fatalf("defaults not populated: %+v", created)
	}

	st2 := &Store{db: st.db, now: st.now}
	loaded, err := st2.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil || loaded.Name != "Ip Man" || loaded.StudentID != created.StudentID {
		t.Fatalf("loaded profile does not match created one: %+v", loaded)
	}
}

func TestLoadDiscardsCorruptRecord(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.db.Exec(
		`INSERT INTO profile_store (key, data) VALUES (?, ?)`,
		profileKey, "{not json at all",
	); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	p, err := st.Load()
	if err != nil {
		t.Fatalf("load must absorb corruption, got: %v", err)
	}
	if p != nil {
		t.Fatalf("corrupt record should read as no profile")
	}

	// The corrupt row is gone, so a new profile can be created cleanly.
	if _, err := st.Create("Fresh", 180, 80, "snake"); err != nil {
		t.Fatalf("create after corruption: %v", err)
	}
}

func TestGrantXPUnlocksBeltAndAchievements(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create("Ip Man", 171, 63, "crane"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := st.GrantXP(300, "wc5"); err != nil {
		t.Fatalf("grant: %v", err)
	}

	p := st.Profile()
	if p.XP != 300 {
		t.Fatalf("xp=%d, want 300", p.XP)
	}
	if p.UnlockedBeltLevel != 1 {
		t.Fatalf("belt level=%d, want 1", p.UnlockedBeltLevel)
	}
	if !p.NewContent.Belts {
		t.Fatalf("belt unlock did not flag new content")
	}
	if !hasAchievement(p, "BEGINNER") || !hasAchievement(p, "YELLOW_BELT") {
		t.Fatalf("achievements=%v, want BEGINNER and YELLOW_BELT", p.Achievements)
	}
	if len(p.History) != 1 || p.History[0].XPGained != 300 {
		t.Fatalf("history=%+v", p.History)
	}
}

func TestGrantXPRejectsNegative(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create("Ip Man", 171, 63, "crane"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.GrantXP(-5, "wc1"); err == nil {
		t.Fatalf("negative grant must be rejected")
	}
	if st.Profile().XP != 0 {
		t.Fatalf("negative grant mutated xp")
	}
}

func TestDebitStaminaPersistsAtomically(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create("Ip Man", 171, 63, "crane"); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := st.DebitStamina(30)
	if err != nil || !ok {
		t.Fatalf("debit failed: ok=%v err=%v", ok, err)
	}
	if st.Profile().Stamina != 70 {
		t.Fatalf("stamina=%v, want 70", st.Profile().Stamina)
	}

	ok, err = st.DebitStamina(200)
	if err != nil || ok {
		t.Fatalf("overdraft not refused: ok=%v err=%v", ok, err)
	}
	if st.Profile().Stamina != 70 {
		t.Fatalf("refused debit mutated stamina: %v", st.Profile().Stamina)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create("Ip Man", 171, 63, "crane"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.GrantXP(120, "wc1"); err != nil {
		t.Fatalf("grant: %v", err)
	}

	path := filepath.Join(t.TempDir(), ExportFileName)
	if err := st.Export(path); err != nil {
		t.Fatalf("export: %v", err)
	}

	before, err := json.Marshal(st.Profile())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	imported, err := st.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	after, err := json.Marshal(imported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !bytes.Equal(before, after) {
		t.Fatalf("round trip changed the profile:\n%s\n%s", before, after)
	}
}

func TestParseProfileExportRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"malformed json", `{"name": "Ip`},
		{"missing name", `{"xp": 10}`},
		{"empty name", `{"name": "", "xp": 10}`},
		{"missing xp", `{"name": "Ip Man"}`},
		{"non-numeric xp", `{"name": "Ip Man", "xp": "lots"}`},
		{"not an object", `[1, 2, 3]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseProfileExport([]byte(c.data)); err == nil {
				t.Fatalf("payload accepted: %s", c.data)
			}
		})
	}
}

func TestImportRejectionLeavesProfileUntouched(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create("Ip Man", 171, 63, "crane"); err != nil {
		t.Fatalf("create: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"xp": "broken"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := st.Import(path); err == nil {
		t.Fatalf("invalid import accepted")
	}
	if st.Profile() == nil || st.Profile().Name != "Ip Man" {
		t.Fatalf("rejected import replaced the live profile")
	}
}

func TestLoadAppliesStaminaRegeneration(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create("Ip Man", 171, 63, "crane"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if ok, _ := st.DebitStamina(40); !ok {
		t.Fatalf("debit failed")
	}

	// Reopen 26 minutes later: 5 whole intervals, 5 points back.
	later := st.now().Add(26 * time.Minute)
	st2 := &Store{db: st.db, now: func() time.Time { return later }}
	p, err := st2.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Stamina != 65 {
		t.Fatalf("stamina=%v, want 65 after five intervals", p.Stamina)
	}
}
