package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// DefaultTolerance is the match tolerance used when a template does not
// specify one. Mirrors the schema default.
const DefaultTolerance = 0.25

// SignTemplate represents a trained letter template stored in the database.
type SignTemplate struct {
	ID        string
	Letter    string
	Tolerance float64
	Samples   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TemplateRepository provides CRUD operations for sign templates.
type TemplateRepository struct {
	db *sql.DB
}

// Templates returns the template repository for this store.
func (s *Store) Templates() *TemplateRepository {
	return &TemplateRepository{db: s.db}
}

// Create inserts a new sign template into the database.
func (r *TemplateRepository) Create(t *SignTemplate) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO sign_templates (id, letter, tolerance, samples, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Letter, t.Tolerance, t.Samples, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// GetByLetter retrieves a template by its letter.
func (r *TemplateRepository) GetByLetter(letter string) (*SignTemplate, error) {
	t := &SignTemplate{}

	err := r.db.QueryRow(
		`SELECT id, letter, tolerance, samples, created_at, updated_at
		 FROM sign_templates WHERE letter = ?`,
		letter,
	).Scan(&t.ID, &t.Letter, &t.Tolerance, &t.Samples, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// List retrieves all sign templates, ordered by letter.
func (r *TemplateRepository) List() ([]*SignTemplate, error) {
	rows, err := r.db.Query(
		`SELECT id, letter, tolerance, samples, created_at, updated_at
		 FROM sign_templates ORDER BY letter ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*SignTemplate
	for rows.Next() {
		t := &SignTemplate{}
		err := rows.Scan(&t.ID, &t.Letter, &t.Tolerance, &t.Samples, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// SetFeatures replaces the feature vector for a template.
// Values are stored in feature order inside a transaction.
func (r *TemplateRepository) SetFeatures(templateID string, features []float64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM template_features WHERE template_id = ?`, templateID); err != nil {
		return err
	}

	for i, v := range features {
		_, err := tx.Exec(
			`INSERT INTO template_features (template_id, feature_index, value) VALUES (?, ?, ?)`,
			templateID, i, v,
		)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		`UPDATE sign_templates SET updated_at = ? WHERE id = ?`,
		time.Now(), templateID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetFeatures retrieves the feature vector for a template in feature order.
func (r *TemplateRepository) GetFeatures(templateID string) ([]float64, error) {
	rows, err := r.db.Query(
		`SELECT value FROM template_features
		 WHERE template_id = ? ORDER BY feature_index ASC`,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		features = append(features, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return features, nil
}

// Delete removes a template and its features from the database.
func (r *TemplateRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM sign_templates WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}

	return nil
}
