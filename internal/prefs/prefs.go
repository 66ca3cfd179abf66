// package prefs persists local client preferences in SQLite.
//
// Preferences survive across invocations, unlike the in-memory session and
// resource state. The only preference today is the display theme.
package prefs

import (
	"database/sql"
	"fmt"
	"time"
)

// Theme is a display theme name.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is a known theme name.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

const themeKey = "theme"

// Repository reads and writes preference rows.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new [Repository] with the given database connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Theme returns the stored theme, defaulting to light when unset.
func (r *Repository) Theme() (Theme, error) {
	value, err := r.get(themeKey)
	if err == sql.ErrNoRows {
		return ThemeLight, nil
	}
	if err != nil {
		return ThemeLight, err
	}

	theme := Theme(value)
	if !theme.Valid() {
		return ThemeLight, nil
	}
	return theme, nil
}

// SetTheme stores the theme, overwriting any previous value.
func (r *Repository) SetTheme(theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	return r.set(themeKey, string(theme))
}

// ToggleTheme flips the stored theme and returns the new value.
func (r *Repository) ToggleTheme() (Theme, error) {
	current, err := r.Theme()
	if err != nil {
		return current, err
	}

	next := current.Toggle()
	if err := r.SetTheme(next); err != nil {
		return current, err
	}
	return next, nil
}

func (r *Repository) get(key string) (string, error) {
	query := `
		SELECT value FROM preferences WHERE key = ?
	`

	var value string
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("failed to query preference %s: %w", key, err)
	}

	return value, nil
}

func (r *Repository) set(key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store preference %s: %w", key, err)
	}

	return nil
}
