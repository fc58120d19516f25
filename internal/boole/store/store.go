// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     store
// Description: Evaluation history storage with in-memory and SQLite backends
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	mdwerror "github.com/msto63/boole/foundation/core/error"
)

// Kind identifies the operation a record describes
type Kind string

const (
	KindEvaluate    Kind = "evaluate"
	KindTable       Kind = "table"
	KindNormalForms Kind = "normalforms"
	KindSolve       Kind = "solve"
)

// Record is one entry of the evaluation history
type Record struct {
	ID          string        `json:"id" yaml:"id"`
	Kind        Kind          `json:"kind" yaml:"kind"`
	Expression  string        `json:"expression" yaml:"expression"`
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Result      string        `json:"result,omitempty" yaml:"result,omitempty"`
	ErrorCode   string        `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at"`
}

// Failed reports whether the recorded operation returned an error
func (r *Record) Failed() bool {
	return r.ErrorCode != ""
}

// Store is the interface for history stores
type Store interface {
	// Save adds a record; the ID must be set
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first; limit <= 0 means all
	List(ctx context.Context, limit int) ([]*Record, error)

	// Count returns the number of stored records
	Count(ctx context.Context) (int64, error)

	// Ping checks that the store is usable
	Ping(ctx context.Context) error

	// Close closes the store
	Close() error
}

// DefaultMemoryCapacity bounds the in-memory history
const DefaultMemoryCapacity = 1000

// MemoryStore keeps the most recent records in a bounded ring
type MemoryStore struct {
	mu       sync.RWMutex
	records  []*Record
	index    map[string]*Record
	capacity int
	next     int
	full     bool
}

// NewMemoryStore creates an in-memory store holding at most capacity records
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{
		records:  make([]*Record, capacity),
		index:    make(map[string]*Record, capacity),
		capacity: capacity,
	}
}

// Save adds a record, dropping the oldest when the ring is full
func (s *MemoryStore) Save(ctx context.Context, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old := s.records[s.next]; old != nil {
		delete(s.index, old.ID)
	}
	stored := *rec
	s.records[s.next] = &stored
	s.index[rec.ID] = &stored

	s.next = (s.next + 1) % s.capacity
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// Get retrieves a record by ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.index[id]
	if !ok {
		return nil, notFound(id)
	}
	out := *rec
	return &out, nil
}

// List returns records newest first
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.next
	if s.full {
		n = s.capacity
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]*Record, 0, limit)
	for i := 1; i <= limit; i++ {
		rec := *s.records[(s.next-i+s.capacity)%s.capacity]
		out = append(out, &rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Count returns the number of stored records
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.index)), nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close releases the records
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]*Record, s.capacity)
	s.index = make(map[string]*Record)
	s.next, s.full = 0, false
	return nil
}

func validate(rec *Record) error {
	if rec == nil || rec.ID == "" {
		return mdwerror.New("record ID is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("store.Save")
	}
	return nil
}

func notFound(id string) error {
	return mdwerror.Newf("history record %s not found", id).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("store.Get").
		WithDetail("id", id)
}
