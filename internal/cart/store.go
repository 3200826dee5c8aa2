package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"GlowBeauty/internal/catalog"
	"GlowBeauty/internal/storage"
)

var ErrEmptyCart = errors.New("cart is empty")

// Store holds every user's cart and persists them together as one JSON
// object under the carts key.
type Store struct {
	log  *zap.Logger
	port storage.Port

	mu    sync.RWMutex
	carts map[string][]Line
}

func NewStore(ctx context.Context, port storage.Port, log *zap.Logger) *Store {
	s := &Store{log: log, port: port, carts: map[string][]Line{}}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, ok, err := s.port.Load(ctx, storage.KeyCarts)
	if err != nil {
		s.log.Warn("load carts failed, starting empty", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	var carts map[string][]Line
	if err := json.Unmarshal(raw, &carts); err != nil {
		s.log.Warn("stored carts unreadable, starting empty")
		return
	}
	s.carts = carts
}

// Add merges the product into the user's cart: an existing line gains one
// unit, otherwise a new line starts at quantity 1.
func (s *Store) Add(ctx context.Context, userID string, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = addLine(s.carts[userID], p)
	return s.persist(ctx)
}

func (s *Store) Remove(ctx context.Context, userID string, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = removeLine(s.carts[userID], productID)
	return s.persist(ctx)
}

func (s *Store) SetQuantity(ctx context.Context, userID string, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = setQuantity(s.carts[userID], productID, qty)
	return s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return s.persist(ctx)
}

func (s *Store) Lines(userID string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Count is the distinct-line count shown on the cart badge.
func (s *Store) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts[userID])
}

func (s *Store) Subtotal(userID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return subtotal(s.carts[userID])
}

// Checkout snapshots the cart into an order summary and empties it. The
// order is returned to the caller only.
func (s *Store) Checkout(ctx context.Context, userID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	o := Order{
		ID:        "o_" + uuid.NewString(),
		UserID:    userID,
		Lines:     lines,
		Subtotal:  subtotal(lines),
		CreatedAt: time.Now().UTC(),
	}

	delete(s.carts, userID)
	if err := s.persist(ctx); err != nil {
		return Order{}, err
	}
	return o, nil
}

// persist is called with s.mu held.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.carts)
	if err != nil {
		return err
	}
	return s.port.Save(ctx, storage.KeyCarts, raw)
}
