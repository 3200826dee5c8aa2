package catalog

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"GlowBeauty/internal/storage"
	"GlowBeauty/pkg/kit"
)

// Store owns the product collection. It is the only writer to the products
// key on the persistence port; every mutation rewrites the whole collection.
// The slice is kept newest-first.
type Store struct {
	log  *zap.Logger
	port storage.Port
	ids  *kit.IDGen

	mu       sync.RWMutex
	products []Product
}

func NewStore(ctx context.Context, port storage.Port, log *zap.Logger) *Store {
	s := &Store{log: log, port: port, ids: &kit.IDGen{}}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, ok, err := s.port.Load(ctx, storage.KeyProducts)
	if err != nil {
		s.log.Warn("load products failed, using seed catalog", zap.Error(err))
	}

	if ok && err == nil {
		var products []Product
		if jsonErr := json.Unmarshal(raw, &products); jsonErr == nil {
			s.products = products
			return
		}
		s.log.Warn("stored products unreadable, using seed catalog")
	}

	s.products = seedCatalog()
	if err := s.persist(ctx); err != nil {
		s.log.Warn("persist seed catalog failed", zap.Error(err))
	}
}

// Add assigns a fresh id and the new-product defaults, then prepends so the
// collection stays newest-first. Field contents are taken as-is; validation
// is the caller's problem.
func (s *Store) Add(ctx context.Context, in Input) (Product, error) {
	p := Product{
		ID:            s.ids.Next(),
		Name:          in.Name,
		Brand:         in.Brand,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Rating:        5.0,
		Reviews:       0,
		Image:         in.Image,
		Description:   in.Description,
		Category:      in.Category,
		IsNew:         true,
		IsSale:        in.IsSale,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]Product{p}, s.products...)
	return p, s.persist(ctx)
}

// Remove deletes by id. Removing an absent id is a no-op and skips the
// persistence write.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.products) {
		return nil
	}

	s.products = kept
	return s.persist(ctx)
}

func (s *Store) GetByID(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// persist is called with s.mu held.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.products)
	if err != nil {
		return err
	}
	return s.port.Save(ctx, storage.KeyProducts, raw)
}
