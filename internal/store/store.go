// Package store persists completed games in BadgerDB so finished sessions
// survive server restarts and can be browsed later.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrGameNotFound indicates no archived game exists under the given ID.
var ErrGameNotFound = errors.New("archived game not found")

const gameKeyPrefix = "game:"

// MoveRecord is one accepted move of an archived game.
type MoveRecord struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Notation string `json:"notation"`
}

// GameRecord is the archived form of a completed game.
type GameRecord struct {
	ID      string       `json:"id"`
	White   string       `json:"white"`
	Black   string       `json:"black"`
	Result  string       `json:"result"`
	Moves   []MoveRecord `json:"moves"`
	SavedAt time.Time    `json:"savedAt"`
}

// Store wraps a BadgerDB instance holding game records as JSON values.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the archive at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open archive at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame writes or overwrites the record for rec.ID.
func (s *Store) SaveGame(rec GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", rec.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
	if err != nil {
		return fmt.Errorf("save game %s: %w", rec.ID, err)
	}
	return nil
}

// GetGame loads one archived game by ID.
func (s *Store) GetGame(id string) (GameRecord, error) {
	var rec GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return GameRecord{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("load game %s: %w", id, err)
	}
	return rec, nil
}

// ListGames returns every archived game, in key order.
func (s *Store) ListGames() ([]GameRecord, error) {
	var out []GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return out, nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}
