// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/phantasm/pkg/types"
)

const dbFile = "phantasm.db"

// SQLiteStore is the production Store backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at dataDir/phantasm.db and
// creates the schema if it does not exist.
func NewSQLiteStore(cfg types.StoreConfig) (*SQLiteStore, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS checklist (
			course_key TEXT NOT NULL,
			item TEXT NOT NULL,
			PRIMARY KEY (course_key, item)
		)`,
		`CREATE TABLE IF NOT EXISTS syllabi (
			course_key TEXT PRIMARY KEY,
			course_code TEXT NOT NULL,
			university TEXT,
			content TEXT NOT NULL,
			provenance TEXT NOT NULL,
			created_ts INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS plans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			course_key TEXT NOT NULL,
			plan TEXT NOT NULL,
			created_ts INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_course_key ON plans(course_key)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Setting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Checklist(courseCode string) (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT item FROM checklist WHERE course_key = ?`, CourseKey(courseCode))
	if err != nil {
		return nil, fmt.Errorf("reading checklist: %w", err)
	}
	defer rows.Close()

	checked := make(map[string]bool)
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("scanning checklist item: %w", err)
		}
		checked[item] = true
	}
	return checked, rows.Err()
}

// SaveChecklist replaces the stored state; only checked items are persisted.
func (s *SQLiteStore) SaveChecklist(courseCode string, checked map[string]bool) error {
	key := CourseKey(courseCode)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM checklist WHERE course_key = ?`, key); err != nil {
		return fmt.Errorf("clearing checklist: %w", err)
	}
	for item, on := range checked {
		if !on {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO checklist (course_key, item) VALUES (?, ?)`, key, item); err != nil {
			return fmt.Errorf("writing checklist item: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) SaveSyllabus(data types.SyllabusData) error {
	_, err := s.db.Exec(
		`INSERT INTO syllabi (course_key, course_code, university, content, provenance, created_ts)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(course_key) DO UPDATE SET
			course_code = excluded.course_code,
			university = excluded.university,
			content = excluded.content,
			provenance = excluded.provenance,
			created_ts = excluded.created_ts`,
		CourseKey(data.CourseCode), data.CourseCode, data.University,
		data.Content, string(data.Provenance), data.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("archiving syllabus: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LatestSyllabus(courseCode string) (types.SyllabusData, error) {
	var data types.SyllabusData
	var provenance string
	var createdTs int64
	err := s.db.QueryRow(
		`SELECT course_code, university, content, provenance, created_ts
		 FROM syllabi WHERE course_key = ?`, CourseKey(courseCode)).
		Scan(&data.CourseCode, &data.University, &data.Content, &provenance, &createdTs)
	if err == sql.ErrNoRows {
		return types.SyllabusData{}, ErrNotFound
	}
	if err != nil {
		return types.SyllabusData{}, fmt.Errorf("reading syllabus: %w", err)
	}
	data.Provenance = types.Provenance(provenance)
	data.Timestamp = time.Unix(createdTs, 0).UTC()
	return data, nil
}

func (s *SQLiteStore) SavePlan(courseCode string, plan types.CramPlan) (int64, error) {
	createdTs := plan.CreatedTs
	if createdTs == 0 {
		createdTs = time.Now().Unix()
	}

	encoded, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("marshaling plan: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO plans (course_key, plan, created_ts) VALUES (?, ?, ?)`,
		CourseKey(courseCode), string(encoded), createdTs)
	if err != nil {
		return 0, fmt.Errorf("saving plan: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) Plans(courseCode string) ([]types.CramPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, plan, created_ts FROM plans WHERE course_key = ? ORDER BY created_ts DESC, id DESC`,
		CourseKey(courseCode))
	if err != nil {
		return nil, fmt.Errorf("reading plans: %w", err)
	}
	defer rows.Close()

	var plans []types.CramPlan
	for rows.Next() {
		var id, createdTs int64
		var encoded string
		if err := rows.Scan(&id, &encoded, &createdTs); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		var plan types.CramPlan
		if err := json.Unmarshal([]byte(encoded), &plan); err != nil {
			return nil, fmt.Errorf("decoding plan %d: %w", id, err)
		}
		plan.ID = id
		plan.CreatedTs = createdTs
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}
