package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWavesReserveBlockLetter(t *testing.T) {
	for _, w := range DefaultWaves().Waves {
		for _, r := range w.LetterPool() {
			if r == BlockLetter {
				t.Fatalf("wave %q pool contains the block letter", w.Name)
			}
		}
	}
}

func TestLoadWavesMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadWaves(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if len(cfg.Waves) != len(DefaultWaves().Waves) {
		t.Fatal("expected the default wave list")
	}
}

func TestLoadWavesParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	data := `{"waves":[{"name":"test","letters":["A","L"],"slimes":2,"undines":1,"boss":true}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWaves(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Waves) != 1 {
		t.Fatalf("waves = %d, want 1", len(cfg.Waves))
	}
	w := cfg.Waves[0]
	if w.Slimes != 2 || w.Undines != 1 || !w.Boss {
		t.Fatalf("unexpected wave: %+v", w)
	}
	if pool := w.LetterPool(); len(pool) != 2 || pool[0] != 'A' || pool[1] != 'L' {
		t.Fatalf("letter pool = %q", string(pool))
	}
}

func TestLoadWavesRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWaves(path); err == nil {
		t.Fatal("malformed config should error")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`{"waves":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWaves(empty); err == nil {
		t.Fatal("empty wave list should error")
	}
}
