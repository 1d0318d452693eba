package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"sifu/internal/catalog"
	"sifu/internal/config"
	"sifu/internal/models"
	"sifu/internal/stamina"
)

// profileKey is the well-known storage key the whole profile lives under.
const profileKey = "wingChunProfile"

// Store owns the single mutable Profile for the session. Every other
// component mutates the profile through Store methods; each mutator persists
// before returning, and persistence failures are returned, never swallowed.
type Store struct {
	db      *sql.DB
	profile *models.Profile
	now     func() time.Time
}

// NewStore opens the database from TURSO_DATABASE_URL (via .env if present),
// falling back to the config file, then to a local file database.
func NewStore() (*Store, error) {
	_ = godotenv.Load()

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		url = "file:./sifu.db?cache=shared&mode=rwc"
	}

	return Open(url)
}

// Open connects to the given libsql URL and prepares the schema.
func Open(url string) (*Store, error) {
	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}

	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS profile_store (
            key TEXT PRIMARY KEY,
            data TEXT NOT NULL
        );
    `)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Profile returns the in-memory profile, or nil if none is loaded. Readers
// may inspect it for display; mutations go through Store methods.
func (s *Store) Profile() *models.Profile {
	return s.profile
}

// Load deserializes the persisted profile. A missing record returns
// (nil, nil). A corrupt record is discarded and treated the same as a missing
// one; the parse error never reaches callers. Loading also applies any
// stamina regeneration accrued while the app was closed.
func (s *Store) Load() (*models.Profile, error) {
	var raw string
	err := s.db.QueryRow(
		"SELECT data FROM profile_store WHERE key = ?", profileKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		// Corrupt data: drop it and start over rather than failing forever.
		_, _ = s.db.Exec("DELETE FROM profile_store WHERE key = ?", profileKey)
		return nil, nil
	}

	now := s.now()
	models.EnsureIntegrity(&p, now)
	s.profile = &p

	if stamina.Regenerate(&p, now) {
		if err := s.Save(); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Create builds a fresh default profile, persists it and returns it.
func (s *Store) Create(name string, height, weight float64, avatar string) (*models.Profile, error) {
	p := models.NewProfile(name, height, weight, avatar, s.now())
	s.profile = p
	if err := s.Save(); err != nil {
		s.profile = nil
		return nil, err
	}
	return p, nil
}

// Update mutates the editable identity fields and recomputes the IMC. Without
// a loaded profile it is a no-op.
func (s *Store) Update(name string, height, weight float64, avatar string) error {
	p := s.profile
	if p == nil {
		return nil
	}
	p.Name = name
	p.Height = height
	p.Weight = weight
	if avatar != "" {
		p.Avatar = avatar
	}
	p.IMC = models.ComputeIMC(height, weight)
	return s.Save()
}

// GrantXP adds a non-negative XP amount, merges today's history entry, and
// applies the follow-on progression: belt unlocks and newly-passed
// achievements. A zero amount or an unloaded profile is a no-op.
func (s *Store) GrantXP(amount int, trainingID string) error {
	if amount < 0 {
		return fmt.Errorf("xp grant must be non-negative, got %d", amount)
	}
	p := s.profile
	if p == nil || amount == 0 {
		return nil
	}

	p.AddXP(amount, trainingID, s.now())

	if belt := catalog.BeltForXP(p.XP); belt.Level > p.UnlockedBeltLevel {
		p.UnlockedBeltLevel = belt.Level
		p.NewContent.Belts = true
	}
	for _, a := range catalog.Achievements {
		if !hasAchievement(p, a.ID) && a.Check(p) {
			p.Achievements = append(p.Achievements, a.ID)
			p.NewContent.Skill = true
		}
	}

	return s.Save()
}

// DebitStamina checks, subtracts and persists as one indivisible step. On a
// persistence failure the in-memory balance is restored so memory and disk
// never disagree.
func (s *Store) DebitStamina(cost float64) (bool, error) {
	p := s.profile
	if p == nil {
		return false, nil
	}
	if !p.DebitStamina(cost) {
		return false, nil
	}
	if err := s.Save(); err != nil {
		p.Stamina += cost
		return false, err
	}
	return true, nil
}

// Replace substitutes the whole profile (the import path), running the same
// integrity-defaulting pass as Load before persisting.
func (s *Store) Replace(p *models.Profile) error {
	models.EnsureIntegrity(p, s.now())
	old := s.profile
	s.profile = p
	if err := s.Save(); err != nil {
		s.profile = old
		return err
	}
	return nil
}

// SetTheme records the presentation theme key.
func (s *Store) SetTheme(theme string) error {
	if s.profile == nil {
		return nil
	}
	s.profile.Theme = theme
	return s.Save()
}

// AddCustomPlan appends a user-authored plan to the profile.
func (s *Store) AddCustomPlan(plan models.CustomPlan) error {
	if s.profile == nil {
		return nil
	}
	s.profile.CustomPlans = append(s.profile.CustomPlans, plan)
	return s.Save()
}

// Save serializes the profile under the well-known key.
func (s *Store) Save() error {
	if s.profile == nil {
		return nil
	}
	data, err := json.Marshal(s.profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO profile_store (key, data) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		profileKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

func hasAchievement(p *models.Profile, id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
