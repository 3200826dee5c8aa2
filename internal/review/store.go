// Package review holds the product review records. Reviews are append-only:
// the store can create and list them, never edit or delete.
package review

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"GlowBeauty/internal/storage"
	"GlowBeauty/pkg/kit"
)

type Comment struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	UserName  string `json:"userName"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	Date      string `json:"date"`
}

const dateLayout = "1/2/2006"

type Store struct {
	log  *zap.Logger
	port storage.Port
	ids  *kit.IDGen
	now  func() time.Time

	mu       sync.RWMutex
	comments []Comment
}

func NewStore(ctx context.Context, port storage.Port, log *zap.Logger) *Store {
	s := &Store{log: log, port: port, ids: &kit.IDGen{}, now: time.Now}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, ok, err := s.port.Load(ctx, storage.KeyComments)
	if err != nil {
		s.log.Warn("load comments failed, using demo set", zap.Error(err))
	}

	if ok && err == nil {
		var comments []Comment
		if jsonErr := json.Unmarshal(raw, &comments); jsonErr == nil {
			s.comments = comments
			return
		}
		s.log.Warn("stored comments unreadable, using demo set")
	}

	s.comments = s.seed()
	if err := s.persist(ctx); err != nil {
		s.log.Warn("persist demo comments failed", zap.Error(err))
	}
}

func (s *Store) seed() []Comment {
	today := s.now().Format(dateLayout)
	return []Comment{
		{ID: 1, ProductID: 1, UserName: "Sarah J.", Text: "Absolutely love this product! It made my skin so soft.", Rating: 5, Date: today},
		{ID: 2, ProductID: 1, UserName: "Mike T.", Text: "Good value for money, but shipping was a bit slow.", Rating: 4, Date: today},
		{ID: 3, ProductID: 2, UserName: "Emily R.", Text: "Very gentle on the skin. Highly recommend.", Rating: 5, Date: today},
	}
}

// Add prepends a new review so listings come out newest-first. Rating is
// clamped to 1..5; the product id is taken on faith (no foreign key).
func (s *Store) Add(ctx context.Context, productID int64, text string, rating int, userName string) (Comment, error) {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	c := Comment{
		ID:        s.ids.Next(),
		ProductID: productID,
		UserName:  userName,
		Text:      text,
		Rating:    rating,
		Date:      s.now().Format(dateLayout),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments = append([]Comment{c}, s.comments...)
	return c, s.persist(ctx)
}

func (s *Store) ListByProduct(productID int64) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Comment
	for _, c := range s.comments {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out
}

// persist is called with s.mu held.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.comments)
	if err != nil {
		return err
	}
	return s.port.Save(ctx, storage.KeyComments, raw)
}
