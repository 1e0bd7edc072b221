// Package fallback holds the project snapshot served when the remote store has no rows.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"archcatalog-backend/internal/domain"
)

//go:embed projects.json
var bundled []byte

// Bundled returns the snapshot compiled into the binary.
func Bundled() ([]domain.FallbackRecord, error) {
	return Parse(bundled)
}

// Load reads the snapshot from path, or the bundled copy when path is empty.
func Load(path string) ([]domain.FallbackRecord, error) {
	if path == "" {
		return Bundled()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback projects: %w", err)
	}
	return Parse(b)
}

// Parse decodes a snapshot and rejects duplicate identifiers.
func Parse(b []byte) ([]domain.FallbackRecord, error) {
	var records []domain.FallbackRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode fallback projects: %w", err)
	}
	seen := make(map[int64]struct{}, len(records))
	for i, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("fallback projects: duplicate id %d", r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.Zoom == 0 {
			records[i].Zoom = domain.DefaultZoom
		}
	}
	return records, nil
}
