package kit

import (
	"sync"
	"time"
)

// IDGen hands out millisecond-timestamp ids that are strictly increasing
// within the process, so back-to-back record creation never collides.
type IDGen struct {
	mu   sync.Mutex
	last int64
}

func (g *IDGen) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
