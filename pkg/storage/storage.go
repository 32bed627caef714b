// Package storage keeps hidden-text drops in a pebble database keyed by KSUID
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned when no drop exists for an id
var ErrNotFound = errors.New("drop not found")

// Drop is a stored piece of text carrying a hidden payload
type Drop struct {
	ID        ksuid.KSUID `json:"id"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

// DropStore is the storage interface used by the API server
type DropStore interface {
	Create(text string) (*Drop, error)
	Read(id ksuid.KSUID) (*Drop, error)
	Delete(id ksuid.KSUID) error
	List(limit int) ([]*Drop, error)
	Close() error
}

// DefaultStorage is a pebble-backed DropStore.
// Ids are strictly increasing, so key order is creation order.
type DefaultStorage struct {
	db *pebble.DB

	mu     sync.Mutex  // serializes writes
	lastID ksuid.KSUID // newest id handed out or found on open
}

// NewDefaultStorage opens (or creates) a drop store at path
func NewDefaultStorage(path string) (*DefaultStorage, error) {
	return open(path, &pebble.Options{})
}

// NewMemStorage opens a drop store that lives only in memory
func NewMemStorage() (*DefaultStorage, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(path string, opts *pebble.Options) (*DefaultStorage, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open drop store: %w", err)
	}
	s := &DefaultStorage{db: db}
	if err := s.loadLastID(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *DefaultStorage) loadLastID() error {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	if iter.Last() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return fmt.Errorf("corrupt drop key: %w", err)
		}
		s.lastID = id
	}
	return iter.Error()
}

// nextID returns a KSUID greater than every id issued before it.
// KSUIDs only carry seconds, so ids within the same second (or after a clock
// step backwards) continue from the previous one. Callers hold s.mu.
func (s *DefaultStorage) nextID() ksuid.KSUID {
	id := ksuid.New()
	if ksuid.Compare(id, s.lastID) <= 0 {
		id = s.lastID.Next()
	}
	s.lastID = id
	return id
}

// Create stores text under a new id
func (s *DefaultStorage) Create(text string) (*Drop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	drop := &Drop{
		ID:        id,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(drop)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal drop: %w", err)
	}
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return nil, fmt.Errorf("failed to write drop: %w", err)
	}

	return drop, nil
}

// Read returns the drop stored under id
func (s *DefaultStorage) Read(id ksuid.KSUID) (*Drop, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read drop: %w", err)
	}
	defer closer.Close()

	// data is only valid until closer is closed; Unmarshal copies it
	var drop Drop
	if err := json.Unmarshal(data, &drop); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drop %s: %w", id, err)
	}
	return &drop, nil
}

// Delete removes the drop stored under id.
// The existence check and the delete run under the write lock, so of two
// concurrent deletes of one id exactly one succeeds.
func (s *DefaultStorage) Delete(id ksuid.KSUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Read(id); err != nil {
		return err
	}
	if err := s.db.Delete(id.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete drop: %w", err)
	}
	return nil
}

// List returns up to limit drops, newest first. A limit <= 0 returns all drops.
func (s *DefaultStorage) List(limit int) ([]*Drop, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	drops := []*Drop{}
	for valid := iter.Last(); valid; valid = iter.Prev() {
		if limit > 0 && len(drops) >= limit {
			break
		}
		var drop Drop
		if err := json.Unmarshal(iter.Value(), &drop); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drop: %w", err)
		}
		drops = append(drops, &drop)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate drops: %w", err)
	}

	return drops, nil
}

// Close closes the underlying database
func (s *DefaultStorage) Close() error {
	return s.db.Close()
}
