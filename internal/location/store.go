package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"socialup-discovery/internal/types"
)

// storageKey versions the persisted location value.
const storageKey = "socialup:current-location:v1"

// Store persists the resolved location between sessions.
type Store interface {
	// Load returns the stored location, or nil when none has been saved.
	Load(ctx context.Context) (*types.Location, error)
	Save(ctx context.Context, loc types.Location) error
}

// RedisStore keeps the location under a single versioned key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient creates a redis client with the pool settings used across
// the service.
func NewRedisClient(addr string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (*types.Location, error) {
	raw, err := s.client.Get(ctx, storageKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load location: %w", err)
	}

	var loc types.Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, fmt.Errorf("failed to decode stored location: %w", err)
	}
	return &loc, nil
}

func (s *RedisStore) Save(ctx context.Context, loc types.Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	if err := s.client.Set(ctx, storageKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests and redis-less deployments.
type MemoryStore struct {
	mu  sync.Mutex
	loc *types.Location
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*types.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loc == nil {
		return nil, nil
	}
	copied := *s.loc
	return &copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, loc types.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loc = &loc
	return nil
}
