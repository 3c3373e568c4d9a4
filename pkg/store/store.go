// Package store persists solved answers in a bbolt database so that unchanged inputs don't have to be solved again.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	bolt "go.etcd.io/bbolt"
)

var resultsBucket = []byte("results")

// Entry is a single cached answer.
type Entry struct {
	Value      int64     `json:"value"`
	DurationNS int64     `json:"duration_ns"`
	SolvedAt   time.Time `json:"solved_at"`
}

// KeyedEntry pairs an entry with its key.
type KeyedEntry struct {
	Key string
	Entry
}

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(path), os.FileMode(0770))
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to create directory for %s", path)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to open cache %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(resultsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, eris.Wrap(err, "Failed to initialise cache")
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the entry for key or nil if there is none.
func (s *Store) Get(key string) (*Entry, error) {
	var entry *Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		item := tx.Bucket(resultsBucket).Get([]byte(key))
		if item == nil {
			return nil
		}

		entry = new(Entry)
		return json.Unmarshal(item, entry)
	})
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to read cache entry %s", key)
	}

	return entry, nil
}

func (s *Store) Put(key string, entry *Entry) error {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return eris.Wrap(err, "Failed to encode cache entry")
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(resultsBucket).Put([]byte(key), encoded)
	})
	if err != nil {
		return eris.Wrapf(err, "Failed to write cache entry %s", key)
	}

	return nil
}

// Entries returns every cached answer ordered by key.
func (s *Store) Entries() ([]KeyedEntry, error) {
	result := make([]KeyedEntry, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(resultsBucket).ForEach(func(k, v []byte) error {
			item := KeyedEntry{Key: string(k)}
			err := json.Unmarshal(v, &item.Entry)
			if err != nil {
				return eris.Wrapf(err, "Failed to decode cache entry %s", k)
			}

			result = append(result, item)
			return nil
		})
	})

	return result, err
}

// Clear removes all entries and returns how many there were.
func (s *Store) Clear() (int, error) {
	count := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		count = tx.Bucket(resultsBucket).Stats().KeyN
		err := tx.DeleteBucket(resultsBucket)
		if err != nil {
			return err
		}

		_, err = tx.CreateBucket(resultsBucket)
		return err
	})
	if err != nil {
		return 0, eris.Wrap(err, "Failed to clear cache")
	}

	return count, nil
}
