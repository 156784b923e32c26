package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps one cart per shopper session, keyed by an opaque id handed to
// the client on creation. Nothing is persisted; a restart drops every cart.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Create registers a fresh empty cart and returns its session id.
func (s *Store) Create() (string, *Cart) {
	id := uuid.NewString()
	c := New()

	s.mu.Lock()
	s.carts[id] = c
	s.mu.Unlock()

	return id, c
}

func (s *Store) Get(id string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	return c, ok
}
