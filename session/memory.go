package session

import (
	"context"
	"sync"
	"time"

	"github.com/storely/storefront-api/models"
)

type memoryEntry struct {
	cart      models.Cart
	expiresAt time.Time
}

// MemoryStore is a process-local Store used when no Redis address is
// configured and in tests. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	carts map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:   ttl,
		now:   time.Now,
		carts: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.carts, sessionID)
		return models.NewCart(), nil
	}
	// Copy so callers never mutate the stored cart without a Save.
	cart := models.NewCart()
	for id, qty := range entry.cart {
		cart[id] = qty
	}
	return cart, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := models.NewCart()
	for id, qty := range cart {
		stored[id] = qty
	}
	s.carts[sessionID] = memoryEntry{cart: stored, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
