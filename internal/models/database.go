package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var seenBucket = []byte("seen")

// ErrNotFound is returned when a ledger key does not exist
var ErrNotFound = errors.New("not found")

// SeenItem records the first time the watcher noticed a media item or issue
type SeenItem struct {
	Key       string    `json:"key"`  // "media:tv:1399", "issue:12"
	Kind      string    `json:"kind"` // "media" or "issue"
	Title     string    `json:"title"`
	FirstSeen time.Time `json:"firstSeen"`
}

// Database wraps the bbolt store holding the watcher ledger
type Database struct {
	db *bbolt.DB
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(seenBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Database{db: db}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.db.Close()
}

// MarkSeen stores the item unless its key is already present.
// It reports whether the item was new.
func (db *Database) MarkSeen(item *SeenItem) (bool, error) {
	created := false
	err := db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(seenBucket)
		if b.Get([]byte(item.Key)) != nil {
			return nil
		}
		if item.FirstSeen.IsZero() {
			item.FirstSeen = time.Now()
		}
		data, err := json.Marshal(item)
		if err != nil {
			return err
		}
		created = true
		return b.Put([]byte(item.Key), data)
	})
	if err != nil {
		return false, fmt.Errorf("failed to mark %s as seen: %w", item.Key, err)
	}
	return created, nil
}

// GetSeen retrieves a ledger entry by key
func (db *Database) GetSeen(key string) (*SeenItem, error) {
	var item SeenItem
	err := db.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(seenBucket).Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAllSeen retrieves every ledger entry in key order
func (db *Database) GetAllSeen() ([]*SeenItem, error) {
	var items []*SeenItem
	err := db.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(seenBucket).ForEach(func(_, v []byte) error {
			var item SeenItem
			if err := json.Unmarshal(v, &item); err != nil {
				return err
			}
			items = append(items, &item)
			return nil
		})
	})
	return items, err
}

// CountByKind returns the number of ledger entries per kind
func (db *Database) CountByKind() (map[string]int, error) {
	items, err := db.GetAllSeen()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Kind]++
	}
	return counts, nil
}
