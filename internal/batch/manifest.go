package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame  int        `json:"frame"`
	Time   float64    `json:"time"`
	Image  string     `json:"image"`
	Pos    [2]float64 `json:"pos"`
	Dir    [2]float64 `json:"dir"`
	Hits   int        `json:"hits"`
	Misses int        `json:"misses"`
	Error  string     `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every pose and how it rendered,
// creating the parent directory if needed.
// results must be index-aligned with poses, as returned by Run.
func WriteManifest(path string, poses []Pose, results []Result) error {
	entries := make([]ManifestEntry, len(poses))
	for i, p := range poses {
		e := ManifestEntry{
			Frame: p.Frame,
			Time:  p.Time,
			Image: FrameName(p.Frame),
			Pos:   [2]float64{p.Pos.X, p.Pos.Y},
			Dir:   [2]float64{p.Dir.X, p.Dir.Y},
		}
		if i < len(results) {
			r := results[i]
			e.Hits, e.Misses, e.Error = r.Stats.Hits, r.Stats.Misses, r.Error
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: manifest dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
