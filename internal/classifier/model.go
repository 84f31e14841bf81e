package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// modelFile is the on-disk JSON layout for a trained letter model.
type modelFile struct {
	Templates []modelTemplate `json:"templates"`
}

type modelTemplate struct {
	Letter    string    `json:"letter"`
	Tolerance float64   `json:"tolerance"`
	Features  []float64 `json:"features"`
}

// LoadModelFile reads letter templates from a JSON model file. An empty
// or unreadable model is an error; callers decide whether that is fatal.
func LoadModelFile(path string) ([]*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var doc modelFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}

	templates := make([]*Template, 0, len(doc.Templates))
	for _, mt := range doc.Templates {
		if len(mt.Letter) != 1 || len(mt.Features) == 0 {
			return nil, fmt.Errorf("model file %s: bad template %q", path, mt.Letter)
		}
		templates = append(templates, &Template{
			ID:        mt.Letter,
			Letter:    rune(mt.Letter[0]),
			Tolerance: mt.Tolerance,
			Features:  mt.Features,
		})
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("model file %s has no templates", path)
	}
	return templates, nil
}

// SaveModelFile writes letter templates to a JSON model file.
func SaveModelFile(path string, templates []*Template) error {
	doc := modelFile{Templates: make([]modelTemplate, 0, len(templates))}
	for _, t := range templates {
		doc.Templates = append(doc.Templates, modelTemplate{
			Letter:    string(t.Letter),
			Tolerance: t.Tolerance,
			Features:  t.Features,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
