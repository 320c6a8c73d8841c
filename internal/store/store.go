package store

import (
	"fmt"
	"sync"
)

// Provider is the persistence boundary. Load must swallow read failures
// and hand back an empty document; Save replaces the whole document or
// reports an error. The store never sees partial writes.
type Provider interface {
	Load() Document
	Save(Document) error
}

// Store serializes every mutation behind one writer lock so no two
// mutations can decide against the same "before" snapshot (lost-update
// race on stock). Reads run concurrently against the last committed
// document.
type Store struct {
	mu sync.RWMutex
	p  Provider
}

func New(p Provider) *Store { return &Store{p: p} }

// update runs one load-mutate-save cycle. A mutate error aborts before
// Save, so a failed operation never leaves a half-applied document.
func (s *Store) update(mutate func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.p.Load()
	if err := mutate(&doc); err != nil {
		return err
	}
	if err := s.p.Save(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *Store) view(read func(doc Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return read(s.p.Load())
}

// nextID = max(existing)+1, else 1. Dihitung terhadap koleksi yang baru
// di-load, persis sebelum insert, supaya tidak tabrakan dalam satu cycle.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

func userIndex(doc *Document, id int) int {
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func productIndex(doc *Document, id int) int {
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func orderIndex(doc *Document, id int) int {
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			return i
		}
	}
	return -1
}
