package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/spellsign/internal/detector"
)

func TestLoadModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.json")

	saved := []*Template{
		{ID: "A", Letter: 'A', Tolerance: 0.25, Features: detector.FistLandmarks().Features()},
		{ID: "B", Letter: 'B', Tolerance: 0.25, Features: detector.FlatHandLandmarks().Features()},
	}
	if err := SaveModelFile(path, saved); err != nil {
		t.Fatalf("SaveModelFile() error = %v", err)
	}

	templates, err := LoadModelFile(path)
	if err != nil {
		t.Fatalf("LoadModelFile() error = %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("templates = %d, want 2", len(templates))
	}

	c := NewCentroidClassifier()
	for _, tmpl := range templates {
		c.AddTemplate(tmpl)
	}
	if letter, ok := c.Predict(detector.FistLandmarks().Features()); !ok || letter != 'A' {
		t.Fatalf("Predict() = %c, %v, want A, true", letter, ok)
	}
}

func TestLoadModelFileErrors(t *testing.T) {
	if _, err := LoadModelFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing model file should error")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`{"templates":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadModelFile(empty); err == nil {
		t.Fatal("empty model should error")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"templates":[{"letter":"AB","features":[1]}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadModelFile(bad); err == nil {
		t.Fatal("multi-letter template should error")
	}
}
