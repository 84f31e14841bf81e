package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Wave describes one wave of spawns. Letters is the pool entities draw
// their tags from; spawn counts say how many of each variant appear.
type Wave struct {
	Name      string   `json:"name"`
	Letters   []string `json:"letters"`
	Slimes    int      `json:"slimes"`
	Skeletons int      `json:"skeletons"`
	Undines   int      `json:"undines"`
	Boss      bool     `json:"boss"`
}

// LetterPool returns the wave's letters as runes, first rune of each
// entry, empty entries skipped.
func (w Wave) LetterPool() []rune {
	pool := make([]rune, 0, len(w.Letters))
	for _, s := range w.Letters {
		for _, r := range s {
			pool = append(pool, r)
			break
		}
	}
	return pool
}

// WaveConfig is the ordered wave list for a run.
type WaveConfig struct {
	Waves []Wave `json:"waves"`
}

// DefaultWaves returns the built-in wave progression used when no
// config file is present.
func DefaultWaves() WaveConfig {
	return WaveConfig{Waves: []Wave{
		{Name: "meadow", Letters: []string{"A", "C", "D"}, Slimes: 3},
		{Name: "graveyard", Letters: []string{"A", "C", "D", "E"}, Slimes: 2, Skeletons: 2},
		{Name: "lakeside", Letters: []string{"C", "D", "E", "L"}, Skeletons: 2, Undines: 2},
		{Name: "sanctum", Letters: []string{"C", "D", "L", "V"}, Slimes: 1, Skeletons: 1, Undines: 1, Boss: true},
	}}
}

// LoadWaves reads a wave config from a JSON file. A missing file falls
// back to the defaults; a malformed one is an error.
func LoadWaves(path string) (WaveConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultWaves(), nil
		}
		return WaveConfig{}, fmt.Errorf("read waves config: %w", err)
	}

	var cfg WaveConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return WaveConfig{}, fmt.Errorf("parse waves config: %w", err)
	}
	if len(cfg.Waves) == 0 {
		return WaveConfig{}, fmt.Errorf("waves config %s has no waves", path)
	}
	return cfg, nil
}
