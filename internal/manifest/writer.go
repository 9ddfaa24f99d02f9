package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// New creates an empty manifest with a fresh run id.
func New(profileName string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		BuildInfo:   &BuildInfo{RunID: uuid.NewString()},
		Cards:       make(map[string]Card),
	}
}

// ComputeStats recalculates aggregate statistics from cards.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalCards = len(m.Cards)
	for _, c := range m.Cards {
		if !c.Base {
			s.RenderedCards++
		}
		s.TotalBytes += c.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file. encoding/json sorts map
// keys, so output is stable for identical input.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest. Unknown fields are ignored.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
