// Package classifier maps hand-landmark feature vectors to letter labels.
package classifier

import (
	"math"
	"unicode"
)

// Classifier defines the interface for letter classification.
// Predict returns the recognized letter (uppercase A-Z) and whether any
// template matched within tolerance.
type Classifier interface {
	Predict(features []float64) (rune, bool)
}

// Template is a trained feature template for one letter.
type Template struct {
	ID        string    // Unique identifier for the template
	Letter    rune      // Uppercase letter label
	Features  []float64 // Averaged wrist-relative feature vector
	Tolerance float64   // Maximum distance for a match
}

// CentroidClassifier classifies by nearest template within tolerance.
type CentroidClassifier struct {
	templates []*Template
}

// NewCentroidClassifier creates an empty CentroidClassifier.
func NewCentroidClassifier() *CentroidClassifier {
	return &CentroidClassifier{
		templates: make([]*Template, 0),
	}
}

// AddTemplate adds a letter template to the classifier.
// The letter label is normalized to uppercase.
func (c *CentroidClassifier) AddTemplate(t *Template) {
	if t == nil {
		return
	}
	t.Letter = unicode.ToUpper(t.Letter)
	c.templates = append(c.templates, t)
}

// RemoveTemplate removes a template by its ID.
func (c *CentroidClassifier) RemoveTemplate(id string) {
	for i, t := range c.templates {
		if t.ID == id {
			c.templates = append(c.templates[:i], c.templates[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered templates.
func (c *CentroidClassifier) Len() int {
	return len(c.templates)
}

// Predict finds the nearest template to the given feature vector.
// Returns the template's letter if its distance is within tolerance.
func (c *CentroidClassifier) Predict(features []float64) (rune, bool) {
	if len(features) == 0 {
		return 0, false
	}

	var best *Template
	bestDist := math.Inf(1)

	for _, template := range c.templates {
		dist := featureDistance(features, template.Features)
		if dist > template.Tolerance {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			best = template
		}
	}

	if best == nil {
		return 0, false
	}
	return best.Letter, true
}

// featureDistance sums the Euclidean distances between corresponding
// (x, y) pairs of two feature vectors.
func featureDistance(a, b []float64) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var totalDist float64
	for i := 0; i+1 < minLen; i += 2 {
		dx := a[i] - b[i]
		dy := a[i+1] - b[i+1]
		totalDist += math.Sqrt(dx*dx + dy*dy)
	}

	return totalDist
}
