// Package store owns the two portfolio collections (lesson goals and
// reflection entries) and their durable copy. Every mutation updates memory
// and writes through to a sqlite-backed key-value table as one logical unit;
// a failed write leaves memory untouched and is returned to the caller.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marcus/blink/internal/models"
	_ "modernc.org/sqlite"
)

const (
	dbFile = ".blink/portfolio.db"

	keyGoals       = "blink_active_goals"
	keyReflections = "blink_reflections"

	// Display-only date layout (day-month-year, no zero padding).
	// Nothing ever sorts on these strings.
	dateLayout = "2-1-2006"
)

var (
	// ErrBlankGoal is returned when a goal's text trims to empty
	ErrBlankGoal = errors.New("goal text is empty")

	// ErrNoRating is returned when a reflection is submitted without a
	// chosen star rating
	ErrNoRating = errors.New("rating must be 1, 2 or 3")

	// ErrIncomplete is returned when a required free-text field is blank
	ErrIncomplete = errors.New("explanation and reflection are required")
)

// Store holds both collections in memory, most-recently-created-first.
// That ordering is an invariant of insertion (new items are prepended),
// not of any sort.
type Store struct {
	conn        *sql.DB
	goals       []models.LessonGoal
	reflections []models.ReflectionEntry

	now func() time.Time
}

// Open opens (creating if needed) the portfolio store under baseDir and
// loads both collections. Absent keys load as empty collections.
func Open(baseDir string) (*Store, error) {
	dbPath := filepath.Join(baseDir, dbFile)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// WAL so a CLI invocation can read while a TUI session holds the file
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{conn: conn, now: time.Now}

	if err := s.load(keyGoals, &s.goals); err != nil {
		conn.Close()
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if err := s.load(keyReflections, &s.reflections); err != nil {
		conn.Close()
		return nil, fmt.Errorf("load reflections: %w", err)
	}

	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.conn.Close()
}

// load reads one key's JSON array into dst; a missing key yields an empty
// collection, never an error
func (s *Store) load(key string, dst interface{}) error {
	var value string
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dst)
}

// save serializes v and writes it under key
func (s *Store) save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.conn.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	return err
}

// today returns the localized display date for new records
func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

// Goals returns a copy of the goals collection, newest first
func (s *Store) Goals() []models.LessonGoal {
	return append([]models.LessonGoal(nil), s.goals...)
}

// Reflections returns a copy of the reflections collection, newest first
func (s *Store) Reflections() []models.ReflectionEntry {
	return append([]models.ReflectionEntry(nil), s.reflections...)
}

// AddGoal creates a new active lesson goal and prepends it to the
// collection. Blank text is rejected with ErrBlankGoal and the collection
// is left unchanged.
func (s *Store) AddGoal(text string, subject models.Subject) (models.LessonGoal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.LessonGoal{}, ErrBlankGoal
	}
	if !subject.IsValid() {
		return models.LessonGoal{}, fmt.Errorf("unknown subject %q", subject)
	}

	goal := models.LessonGoal{
		ID:      newGoalID(),
		Text:    text,
		Subject: subject,
		Active:  true,
		Date:    s.today(),
	}

	updated := append([]models.LessonGoal{goal}, s.goals...)
	if err := s.save(keyGoals, updated); err != nil {
		return models.LessonGoal{}, fmt.Errorf("save goals: %w", err)
	}
	s.goals = updated
	return goal, nil
}

// RemoveGoal removes the goal with the given id. An absent id is a no-op.
func (s *Store) RemoveGoal(id string) error {
	updated := make([]models.LessonGoal, 0, len(s.goals))
	for _, g := range s.goals {
		if g.ID != id {
			updated = append(updated, g)
		}
	}
	if len(updated) == len(s.goals) {
		return nil
	}
	if err := s.save(keyGoals, updated); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	s.goals = updated
	return nil
}

// SubmitReflection validates and prepends a completed entry. The entry's
// goal text and subject must already be copied in by the caller; id and
// lesson date are assigned here when empty. Nothing is written when
// validation fails.
func (s *Store) SubmitReflection(entry models.ReflectionEntry) (models.ReflectionEntry, error) {
	if !entry.Rating.IsValid() {
		return models.ReflectionEntry{}, ErrNoRating
	}
	if strings.TrimSpace(entry.Explanation) == "" || strings.TrimSpace(entry.Reflection) == "" {
		return models.ReflectionEntry{}, ErrIncomplete
	}

	if entry.ID == "" {
		entry.ID = newReflectionID()
	}
	if entry.LessonDate == "" {
		entry.LessonDate = s.today()
	}

	updated := append([]models.ReflectionEntry{entry}, s.reflections...)
	if err := s.save(keyReflections, updated); err != nil {
		return models.ReflectionEntry{}, fmt.Errorf("save reflections: %w", err)
	}
	s.reflections = updated
	return entry, nil
}

// Reset clears both collections and their persisted values. This is the
// only destruction path for reflections.
func (s *Store) Reset() error {
	if _, err := s.conn.Exec(
		"DELETE FROM kv WHERE key IN (?, ?)", keyGoals, keyReflections,
	); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	s.goals = nil
	s.reflections = nil
	return nil
}
