package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"raycast-renderer/internal/render"
)

// Manifest describes one rendered image. It is written as JSON next to it.
type Manifest struct {
	Image       string       `json:"image"`
	Scene       string       `json:"scene"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Supersample int          `json:"supersample"`
	Samples     int          `json:"samples"`
	Threads     int          `json:"threads"`
	Seed        uint64       `json:"seed,omitempty"`
	Stats       render.Stats `json:"stats"`
	CreatedAt   time.Time    `json:"created_at"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

// ManifestPath returns the manifest location for an image path.
func ManifestPath(imagePath string) string {
	return imagePath + ".json"
}
