package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sign templates table - one trained template per letter
		`CREATE TABLE IF NOT EXISTS sign_templates (
			id TEXT PRIMARY KEY,
			letter TEXT NOT NULL UNIQUE CHECK(length(letter) = 1),
			tolerance REAL NOT NULL DEFAULT 0.25,
			samples INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Template features table - the 42 ordered feature values per template
		`CREATE TABLE IF NOT EXISTS template_features (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id TEXT NOT NULL REFERENCES sign_templates(id) ON DELETE CASCADE,
			feature_index INTEGER NOT NULL,
			value REAL NOT NULL
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_template_features_template_id ON template_features(template_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
