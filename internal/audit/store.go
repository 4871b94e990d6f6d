package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decision_log (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	cycle_id            TEXT NOT NULL,
	chosen_action       TEXT NOT NULL,
	executed_action     TEXT NOT NULL,
	score               INTEGER NOT NULL,
	outcome             TEXT NOT NULL,
	veto_sources        TEXT,
	reasons             TEXT,
	notes               TEXT,
	ensemble_confidence REAL NOT NULL,
	safe_mode_active    INTEGER NOT NULL,
	safe_mode_reason    TEXT,
	created_at          TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct
// Store persists decision-cycle outcomes in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region log
// Log appends one decision-cycle entry to the log.
func (s *Store) Log(entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	vetoJSON, err := json.Marshal(entry.VetoSources)
	if err != nil {
		return fmt.Errorf("marshal veto sources: %w", err)
	}
	reasonsJSON, err := json.Marshal(entry.Reasons)
	if err != nil {
		return fmt.Errorf("marshal reasons: %w", err)
	}
	notesJSON, err := json.Marshal(entry.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO decision_log (cycle_id, chosen_action, executed_action, score, outcome,
		 veto_sources, reasons, notes, ensemble_confidence, safe_mode_active, safe_mode_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.CycleID,
		entry.ChosenAction,
		entry.ExecutedAction,
		entry.Score,
		entry.Outcome,
		string(vetoJSON),
		string(reasonsJSON),
		string(notesJSON),
		entry.EnsembleConfidence,
		boolToInt(entry.SafeModeActive),
		nullIfEmpty(entry.SafeModeReason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}
// #endregion log

// #region recent
// Recent returns the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, cycle_id, chosen_action, executed_action, score, outcome,
		 veto_sources, reasons, notes, ensemble_confidence, safe_mode_active, safe_mode_reason, created_at
		 FROM decision_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var vetoJSON, reasonsJSON, notesJSON string
		var safeModeActive int
		var safeModeReason sql.NullString
		var createdStr string

		if err := rows.Scan(&e.ID, &e.CycleID, &e.ChosenAction, &e.ExecutedAction, &e.Score, &e.Outcome,
			&vetoJSON, &reasonsJSON, &notesJSON, &e.EnsembleConfidence, &safeModeActive, &safeModeReason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(vetoJSON), &e.VetoSources); err != nil {
			return nil, fmt.Errorf("unmarshal veto sources: %w", err)
		}
		if err := json.Unmarshal([]byte(reasonsJSON), &e.Reasons); err != nil {
			return nil, fmt.Errorf("unmarshal reasons: %w", err)
		}
		if err := json.Unmarshal([]byte(notesJSON), &e.Notes); err != nil {
			return nil, fmt.Errorf("unmarshal notes: %w", err)
		}
		e.SafeModeActive = safeModeActive != 0
		if safeModeReason.Valid {
			e.SafeModeReason = safeModeReason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
// #endregion helpers
