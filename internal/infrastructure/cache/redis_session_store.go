package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pickleworks/backend/internal/domain/shopping"
)

// maxUpdateRetries bounds the optimistic retry loop in Update when a
// concurrent writer keeps invalidating the watched key.
const maxUpdateRetries = 5

// RedisSessionStore implements shopping.SessionStore on Redis.
// Sessions are stored as JSON under a prefixed key with a sliding TTL.
// Update runs under WATCH/MULTI so two requests racing on the same
// session id cannot lose each other's cart writes.
type RedisSessionStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSessionStore creates a session store with its own Redis client
func NewRedisSessionStore(cfg RedisConfig, ttl time.Duration) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSessionStoreWithClient(client, "", ttl), nil
}

// NewRedisSessionStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisSessionStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisSessionStore {
	if keyPrefix == "" {
		keyPrefix = "shop:session:"
	}
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &RedisSessionStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisSessionStore) key(id string) string {
	return s.keyPrefix + id
}

// Get loads the session, returning a fresh empty one when absent
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*shopping.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return shopping.NewSession(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session shopping.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session is unrecoverable; start over rather than
		// locking the shopper out.
		return shopping.NewSession(id), nil
	}
	session.ID = id
	return &session, nil
}

// SetCart replaces the cart stored for the session
func (s *RedisSessionStore) SetCart(ctx context.Context, id string, cart shopping.Cart) error {
	_, err := s.Update(ctx, id, func(session *shopping.Session) error {
		session.Cart = cart
		return nil
	})
	return err
}

// SetIdentity binds an authenticated identity to the session
func (s *RedisSessionStore) SetIdentity(ctx context.Context, id string, username string) error {
	_, err := s.Update(ctx, id, func(session *shopping.Session) error {
		session.Identity = username
		return nil
	})
	return err
}

// Clear removes the session entirely
func (s *RedisSessionStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Update applies fn to the session under optimistic concurrency control
// and persists the result. The key is WATCHed for the read-modify-write;
// if a concurrent writer changes it the transaction aborts and the whole
// cycle retries against the fresh state.
func (s *RedisSessionStore) Update(ctx context.Context, id string, fn func(*shopping.Session) error) (*shopping.Session, error) {
	key := s.key(id)
	var updated *shopping.Session

	txn := func(tx *redis.Tx) error {
		session := shopping.NewSession(id)
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			if jsonErr := json.Unmarshal(data, session); jsonErr != nil {
				session = shopping.NewSession(id)
			}
			session.ID = id
		}

		if err := fn(session); err != nil {
			return err
		}

		payload, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = session
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("session update for %q kept conflicting after %d attempts", id, maxUpdateRetries)
}

// Close closes the Redis client
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// Ensure RedisSessionStore implements SessionStore
var _ shopping.SessionStore = (*RedisSessionStore)(nil)
