package server

import (
	"context"
	"database/sql"
	"errors"
)

// stateKey is the fixed key the single game-state blob lives under.
const stateKey = "current"

// SQLiteStore persists the serialized game state as one blob row,
// implementing game.Store.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load returns the persisted blob, or nil when no game was ever saved.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM game_state WHERE key = ?
	`, stateKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQLiteStore) Save(ctx context.Context, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_state (key, data)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET
			data = excluded.data,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, stateKey, blob)
	return err
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM game_state WHERE key = ?`, stateKey)
	return err
}
