// Package store owns the durable collection of saved quotes. The collection
// lives in a single JSON document that is rewritten in full on every change;
// records are ordered most recently created first.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charshithreddy3/basic-finance-calculator/internal/finance"
)

// ErrNotFound reports a delete against an id that matched no saved quote.
var ErrNotFound = errors.New("quote not found")

// SavedQuote is a quote captured at save time: the inputs, the computed
// result, and the identity the store assigned. Saved quotes are immutable;
// the only mutation is whole-record deletion.
type SavedQuote struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	finance.QuoteInput
	finance.QuoteResult
}

// Store persists quotes to a flat JSON document. Every operation runs a full
// read-mutate-write sequence under one mutex, so concurrent callers in the
// same process cannot lose each other's writes.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// Open prepares a store backed by the document at path. The document itself
// is not required to exist yet; only its directory is created.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create quotes directory: %w", err)
		}
	}

	return &Store{path: path, logger: logger}, nil
}

// List returns every saved quote, newest first. It never fails: a missing or
// unreadable document is treated as an empty collection.
func (s *Store) List() []SavedQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Create assigns a fresh id and creation timestamp to record, prepends it to
// the collection, and rewrites the document. Any id or createdAt already on
// the record is overwritten. A write failure leaves the document unchanged
// and is returned to the caller.
func (s *Store) Create(record SavedQuote) (SavedQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	quotes := append([]SavedQuote{record}, s.load()...)
	if err := s.persist(quotes); err != nil {
		return SavedQuote{}, err
	}

	return record, nil
}

// Delete removes the quote with the given id and rewrites the document. It
// returns ErrNotFound when no record matches; that is a normal outcome,
// distinct from a write failure.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := s.load()
	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quotes) {
		return ErrNotFound
	}

	return s.persist(kept)
}

// load reads the whole document. Read problems self-heal to an empty
// collection: they are logged, never surfaced to the caller.
func (s *Store) load() []SavedQuote {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("quotes document unreadable, treating as empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return []SavedQuote{}
	}

	var quotes []SavedQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		s.logger.Warn("quotes document corrupt, treating as empty",
			zap.String("path", s.path), zap.Error(err))
		return []SavedQuote{}
	}

	return quotes
}

// persist rewrites the whole document. The write goes to a temp file in the
// same directory first and is renamed into place, so a reader never observes
// a half-written document.
func (s *Store) persist(quotes []SavedQuote) error {
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quotes document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create quotes temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write quotes document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close quotes temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace quotes document: %w", err)
	}

	return nil
}
