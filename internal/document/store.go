// Package document tracks the current text of every open document. The store
// is the single shared mutable resource of the server; every derivation reads
// a whole-text snapshot from it.
package document

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when an operation references a document the store
// does not know about.
var ErrNotFound = errors.New("document not found")

// Store is a concurrent mapping from document URI to its latest known text.
// A change is always a total replacement: readers observe either the old or
// the new text, never a mixture.
type Store struct {
	mu            sync.RWMutex
	docs          map[string]string
	retainOnClose bool
}

// NewStore creates an empty store. When retainOnClose is set, Close leaves
// the entry in place so late queries against a just-closed document still
// resolve.
func NewStore(retainOnClose bool) *Store {
	return &Store{
		docs:          make(map[string]string),
		retainOnClose: retainOnClose,
	}
}

// Open inserts or overwrites the entry for uri.
func (s *Store) Open(uri string, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

// Update overwrites the entry for uri. It is the same operation as Open: the
// store makes no distinction between first and subsequent writes.
func (s *Store) Update(uri string, text string) {
	s.Open(uri, text)
}

// Get returns the current text for uri, or ErrNotFound.
func (s *Store) Get(uri string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.docs[uri]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

// Close removes the entry for uri unless the store retains closed documents.
// Closing an unknown document is a no-op.
func (s *Store) Close(uri string) {
	if s.retainOnClose {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Len returns the number of tracked documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
