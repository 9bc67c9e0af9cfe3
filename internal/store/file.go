package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// FileStore persists each board as a pretty-printed JSON document under
// <dir>/boards/<id>.json. Writes go through a temp file and rename so a
// crashed save never leaves a truncated board behind.
type FileStore struct {
	dir string
}

// Compile-time verification that *FileStore implements BoardStore
var _ BoardStore = (*FileStore)(nil)

// NewFileStore creates the boards directory if needed and returns a store
func NewFileStore(dataDir string) (*FileStore, error) {
	dir := filepath.Join(dataDir, "boards")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create boards directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id types.BoardID) string {
	return filepath.Join(s.dir, string(id)+".json")
}

// Load reads and decodes one board document
func (s *FileStore) Load(_ context.Context, id types.BoardID) (*models.Board, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrBoardNotFound, id)
		}
		return nil, fmt.Errorf("failed to read board %s: %w", id, err)
	}

	var board models.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to decode board %s: %w", id, err)
	}
	if board.Cards == nil {
		board.Cards = map[types.CardID]*models.Card{}
	}
	return &board, nil
}

// Save writes the board document atomically
func (s *FileStore) Save(_ context.Context, board *models.Board) error {
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode board %s: %w", board.ID, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+string(board.ID)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write board %s: %w", board.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(board.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to save board %s: %w", board.ID, err)
	}
	return nil
}

// Delete removes the board document
func (s *FileStore) Delete(_ context.Context, id types.BoardID) error {
	if err := os.Remove(s.path(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", models.ErrBoardNotFound, id)
		}
		return fmt.Errorf("failed to delete board %s: %w", id, err)
	}
	return nil
}

// List reads every board document and returns summaries sorted by name
func (s *FileStore) List(ctx context.Context) ([]*BoardSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	summaries := []*BoardSummary{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		id := types.BoardID(strings.TrimSuffix(name, ".json"))
		board, err := s.Load(ctx, id)
		if err != nil {
			// one undecodable document must not hide every other board
			slog.Warn("skipping unreadable board file", "file", name, "error", err)
			continue
		}
		summaries = append(summaries, &BoardSummary{
			ID:          board.ID,
			Name:        board.Name,
			CardCount:   len(board.Cards),
			LastUpdated: board.LastUpdated,
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}
