package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// SQLiteStore persists board documents as JSON in a sqlite database.
// The document stays the unit of persistence: one row per board, loaded and
// saved whole, matching the load-modify-save cycle of the engine.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time verification that *SQLiteStore implements BoardStore
var _ BoardStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and runs migrations
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode and a busy timeout keep concurrent readers out of trouble
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing db", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS boards (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			document     TEXT NOT NULL,
			last_updated TIMESTAMP NOT NULL
		)`); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads and decodes one board document
func (s *SQLiteStore) Load(ctx context.Context, id types.BoardID) (*models.Board, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM boards WHERE id = ?`, string(id),
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrBoardNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load board %s: %w", id, err)
	}

	var board models.Board
	if err := json.Unmarshal([]byte(doc), &board); err != nil {
		return nil, fmt.Errorf("failed to decode board %s: %w", id, err)
	}
	if board.Cards == nil {
		board.Cards = map[types.CardID]*models.Card{}
	}
	return &board, nil
}

// Save upserts the board document in one statement
func (s *SQLiteStore) Save(ctx context.Context, board *models.Board) error {
	doc, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to encode board %s: %w", board.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO boards (id, name, document, last_updated)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   document = excluded.document,
		   last_updated = excluded.last_updated`,
		string(board.ID), board.Name, string(doc), board.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to save board %s: %w", board.ID, err)
	}
	return nil
}

// Delete removes the board row
func (s *SQLiteStore) Delete(ctx context.Context, id types.BoardID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete board %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete board %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", models.ErrBoardNotFound, id)
	}
	return nil
}

// List returns summaries for all boards ordered by name
func (s *SQLiteStore) List(ctx context.Context) ([]*BoardSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, document, last_updated FROM boards ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	summaries := []*BoardSummary{}
	for rows.Next() {
		var summary BoardSummary
		var doc string
		if err := rows.Scan(&summary.ID, &summary.Name, &doc, &summary.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		var board models.Board
		if err := json.Unmarshal([]byte(doc), &board); err != nil {
			return nil, fmt.Errorf("failed to decode board %s: %w", summary.ID, err)
		}
		summary.CardCount = len(board.Cards)
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return summaries, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
