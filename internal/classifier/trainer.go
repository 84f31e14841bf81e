package classifier

import (
	"fmt"

	"github.com/ayusman/spellsign/internal/detector"
)

// Trainer averages recorded samples into letter templates.
type Trainer struct{}

// NewTrainer creates a new Trainer instance.
func NewTrainer() *Trainer {
	return &Trainer{}
}

// Train averages multiple feature-vector samples into a single template
// vector. Every sample must be a full 42-value feature vector.
func (t *Trainer) Train(samples [][]float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples provided")
	}

	for i, sample := range samples {
		if len(sample) != detector.FeatureSize {
			return nil, fmt.Errorf("sample %d has %d values, expected %d",
				i, len(sample), detector.FeatureSize)
		}
	}

	averaged := make([]float64, detector.FeatureSize)
	n := float64(len(samples))

	for _, sample := range samples {
		for i, v := range sample {
			averaged[i] += v
		}
	}
	for i := range averaged {
		averaged[i] /= n
	}

	return averaged, nil
}
