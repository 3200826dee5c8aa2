package review

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"GlowBeauty/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), storage.NewMemStore(), zap.NewNop())
}

func TestStore_SeedsDemoComments(t *testing.T) {
	s := newTestStore(t)

	if got := len(s.ListByProduct(1)); got != 2 {
		t.Fatalf("product 1 comments=%d want=2", got)
	}
	if got := len(s.ListByProduct(2)); got != 1 {
		t.Fatalf("product 2 comments=%d want=1", got)
	}
}

func TestStore_AddPrependsForProduct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.Add(ctx, 1, "Holy grail essence.", 5, "Nina K.")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Date == "" {
		t.Fatalf("empty date")
	}

	got := s.ListByProduct(1)
	if len(got) != 3 {
		t.Fatalf("len=%d want=3", len(got))
	}
	if got[0].ID != c.ID {
		t.Fatalf("newest not first: %d", got[0].ID)
	}
}

func TestStore_AddClampsRating(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	low, _ := s.Add(ctx, 7, "meh", 0, "A")
	if low.Rating != 1 {
		t.Fatalf("rating=%d want=1", low.Rating)
	}

	high, _ := s.Add(ctx, 7, "wow", 11, "B")
	if high.Rating != 5 {
		t.Fatalf("rating=%d want=5", high.Rating)
	}
}

func TestStore_ListUnknownProductIsEmpty(t *testing.T) {
	s := newTestStore(t)

	if got := s.ListByProduct(999999); len(got) != 0 {
		t.Fatalf("got=%v", got)
	}
}

func TestStore_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	port := storage.NewMemStore()

	s1 := NewStore(ctx, port, zap.NewNop())
	added, err := s1.Add(ctx, 4, "Super hydrating!", 5, "Tia")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	s2 := NewStore(ctx, port, zap.NewNop())
	got := s2.ListByProduct(4)
	if len(got) != 1 || got[0].ID != added.ID {
		t.Fatalf("got=%v", got)
	}
}

func TestStore_CorruptBlobFallsBackToDemo(t *testing.T) {
	ctx := context.Background()
	port := storage.NewMemStore()
	_ = port.Save(ctx, storage.KeyComments, []byte("][junk"))

	s := NewStore(ctx, port, zap.NewNop())
	if got := len(s.ListByProduct(1)); got != 2 {
		t.Fatalf("got=%d want demo 2", got)
	}
}
