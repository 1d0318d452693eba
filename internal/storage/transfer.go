package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sifu/internal/models"
)

// ExportFileName is the default name offered for exported profiles.
const ExportFileName = "wingchun_profile.json"

// Export writes the current profile as pretty-printed JSON.
func (s *Store) Export(path string) error {
	if s.profile == nil {
		return errors.New("no profile to export")
	}
	data, err := json.MarshalIndent(s.profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Import reads a profile export and replaces the live profile with it. An
// invalid payload is rejected before anything is touched, so a bad file can
// never clobber an existing profile.
func (s *Store) Import(path string) (*models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p, err := ParseProfileExport(data)
	if err != nil {
		return nil, err
	}
	if err := s.Replace(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseProfileExport validates a profile payload: it must be a JSON object
// carrying a numeric xp field and a non-empty name. Anything else, malformed
// JSON included, is rejected.
func ParseProfileExport(data []byte) (*models.Profile, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.New("invalid profile file")
	}

	var name string
	if raw, ok := fields["name"]; !ok || json.Unmarshal(raw, &name) != nil || name == "" {
		return nil, errors.New("invalid profile file: missing name")
	}
	var xp float64
	if raw, ok := fields["xp"]; !ok || json.Unmarshal(raw, &xp) != nil {
		return nil, errors.New("invalid profile file: missing xp")
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.New("invalid profile file")
	}
	return &p, nil
}
