// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// cartTTL is how long an idle session cart survives.
const cartTTL = 24 * time.Hour

// Store persists session carts.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps carts in Redis as JSON values with a sliding TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new redis cart store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Get returns the session's cart, or a fresh empty cart when none is
// stored yet.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return NewCart(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = make(map[int64]Item)
	}
	return &cart, nil
}

// Save writes the cart back and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.SessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the session's cart.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// MemoryStore keeps carts in process memory. Used in tests and in
// deployments that run without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryStore creates a new in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return NewCart(sessionID), nil
	}
	return copyCart(stored), nil
}

func (s *MemoryStore) Save(_ context.Context, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart.UpdatedAt = time.Now().UTC()
	s.carts[cart.SessionID] = copyCart(cart)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

func copyCart(c *Cart) *Cart {
	out := &Cart{
		SessionID: c.SessionID,
		Items:     make(map[int64]Item, len(c.Items)),
		UpdatedAt: c.UpdatedAt,
	}
	for id, item := range c.Items {
		out.Items[id] = item
	}
	return out
}
