package cart

import "sync"

// Store keys carts by the sid cookie. Deliberately unpersisted.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// With runs fn against the session's cart under the store lock, creating the
// cart on first touch.
func (s *Store) With(sid string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sid]
	if !ok {
		c = &Cart{}
		s.carts[sid] = c
	}
	fn(c)
}

// Snapshot returns the session's current lines, count and total.
func (s *Store) Snapshot(sid string) (items []Item, count int, total string) {
	s.With(sid, func(c *Cart) {
		items = c.Items()
		count = c.Count()
		total = c.Total().String()
	})
	return
}

func (s *Store) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}
