// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mcp-diet-plan/internal/models"
)

// checkpointSlot is the only row the checkpoint table ever holds.
const checkpointSlot = 1

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS checkpoints (
        slot INTEGER PRIMARY KEY CHECK (slot = 1),
        session_id TEXT NOT NULL,
        resume_step TEXT NOT NULL,
        payload TEXT NOT NULL,
        saved_at DATETIME NOT NULL
    );
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveCheckpoint overwrites the single checkpoint slot with cp in one write.
func (s *SQLiteStorage) SaveCheckpoint(ctx context.Context, cp models.Checkpoint) error {
	if cp.SavedAt.IsZero() {
		cp.SavedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO checkpoints (slot, session_id, resume_step, payload, saved_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(slot) DO UPDATE SET
            session_id = excluded.session_id,
            resume_step = excluded.resume_step,
            payload = excluded.payload,
            saved_at = excluded.saved_at
    `
	_, err = tx.ExecContext(ctx, query,
		checkpointSlot, cp.SessionID, string(cp.ResumeStep), string(payload),
		cp.SavedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}

	return tx.Commit()
}

// LoadCheckpoint returns the saved checkpoint, or nil when the slot is empty.
func (s *SQLiteStorage) LoadCheckpoint(ctx context.Context) (*models.Checkpoint, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM checkpoints WHERE slot = ?`, checkpointSlot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoint: %w", err)
	}

	var cp models.Checkpoint
	if err := json.Unmarshal([]byte(payload), &cp); err != nil {
		return nil, fmt.Errorf("failed to parse checkpoint: %w", err)
	}
	if cp.ResumeStep == "" {
		return nil, nil
	}
	return &cp, nil
}

func (s *SQLiteStorage) ClearCheckpoint(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM checkpoints WHERE slot = ?`, checkpointSlot); err != nil {
		return fmt.Errorf("failed to clear checkpoint: %w", err)
	}
	return nil
}
