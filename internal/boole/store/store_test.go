package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/boole/foundation/core/error"
)

var base = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func record(i int) *Record {
	return &Record{
		ID:          fmt.Sprintf("rec-%d", i),
		Kind:        KindEvaluate,
		Expression:  "true ∧ false",
		Fingerprint: "abc",
		Result:      "false",
		Duration:    time.Duration(i) * time.Millisecond,
		CreatedAt:   base.Add(time.Duration(i) * time.Second),
	}
}

func newSQLite(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLiteStore(SQLiteConfig{Path: filepath.Join(t.TempDir(), "history.db")})
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newMemory(t *testing.T) Store {
	t.Helper()
	return NewMemoryStore(100)
}

func TestStores(t *testing.T) {
	stores := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{"memory", newMemory},
		{"sqlite", newSQLite},
	}

	for _, st := range stores {
		t.Run(st.name, func(t *testing.T) {
			t.Run("SaveGet", func(t *testing.T) {
				s := st.open(t)
				ctx := context.Background()

				in := record(1)
				in.ErrorCode = "PARSE_MISSING_BRACKET"
				if err := s.Save(ctx, in); err != nil {
					t.Fatalf("Save() error = %v", err)
				}

				got, err := s.Get(ctx, in.ID)
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				if got.Expression != in.Expression || got.Kind != in.Kind || got.ErrorCode != in.ErrorCode {
					t.Errorf("Get() = %+v, want %+v", got, in)
				}
				if !got.CreatedAt.Equal(in.CreatedAt) || got.Duration != in.Duration {
					t.Errorf("times = %v/%v, want %v/%v", got.CreatedAt, got.Duration, in.CreatedAt, in.Duration)
				}
				if !got.Failed() {
					t.Error("Failed() should be true with an error code")
				}
			})

			t.Run("NotFound", func(t *testing.T) {
				s := st.open(t)
				_, err := s.Get(context.Background(), "missing")
				if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
					t.Errorf("Get() error = %v, want NOT_FOUND", err)
				}
			})

			t.Run("RequiresID", func(t *testing.T) {
				s := st.open(t)
				err := s.Save(context.Background(), &Record{Expression: "true"})
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
					t.Errorf("Save() error = %v, want INVALID_INPUT", err)
				}
			})

			t.Run("ListNewestFirst", func(t *testing.T) {
				s := st.open(t)
				ctx := context.Background()
				for i := 1; i <= 5; i++ {
					if err := s.Save(ctx, record(i)); err != nil {
						t.Fatalf("Save() error = %v", err)
					}
				}

				all, err := s.List(ctx, 0)
				if err != nil {
					t.Fatalf("List() error = %v", err)
				}
				if len(all) != 5 || all[0].ID != "rec-5" || all[4].ID != "rec-1" {
					t.Errorf("List(0) order wrong: %v", ids(all))
				}

				two, err := s.List(ctx, 2)
				if err != nil {
					t.Fatalf("List() error = %v", err)
				}
				if len(two) != 2 || two[0].ID != "rec-5" || two[1].ID != "rec-4" {
					t.Errorf("List(2) = %v", ids(two))
				}

				n, err := s.Count(ctx)
				if err != nil || n != 5 {
					t.Errorf("Count() = %d, %v", n, err)
				}
				if err := s.Ping(ctx); err != nil {
					t.Errorf("Ping() error = %v", err)
				}
			})
		})
	}
}

func TestMemoryStore_Ring(t *testing.T) {
	s := NewMemoryStore(3)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		if err := s.Save(ctx, record(i)); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	if n, _ := s.Count(ctx); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
	if _, err := s.Get(ctx, "rec-1"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("oldest record should be dropped, got %v", err)
	}

	all, _ := s.List(ctx, 0)
	if got := ids(all); len(got) != 3 || got[0] != "rec-5" || got[2] != "rec-3" {
		t.Errorf("List() = %v", got)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()
	s.Save(ctx, record(1))

	got, _ := s.Get(ctx, "rec-1")
	got.Result = "mutated"

	again, _ := s.Get(ctx, "rec-1")
	if again.Result != "false" {
		t.Error("stored record was mutated through a returned copy")
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	if err := s.Save(ctx, record(7)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	s.Close()

	reopened, err := NewSQLiteStore(SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.Get(ctx, "rec-7"); err != nil {
		t.Errorf("record lost after reopen: %v", err)
	}
	if reopened.Path() != path {
		t.Errorf("Path() = %q", reopened.Path())
	}
}

func TestSQLiteStore_DuplicateID(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()
	s.Save(ctx, record(1))

	if err := s.Save(ctx, record(1)); !mdwerror.HasCode(err, mdwerror.CodeDatabaseError) {
		t.Errorf("duplicate Save() error = %v, want DATABASE_ERROR", err)
	}
}

func ids(recs []*Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
