package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
)

const (
	cartKeyPrefix         = "cart:"
	confirmationKeyPrefix = "order_confirmed:"

	// Carts expire with the session; markers bridge a single checkout
	cartTTL         = 7 * 24 * time.Hour
	confirmationTTL = 24 * time.Hour
)

// RedisCartStore persists session carts in Redis
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a new Redis-backed cart store
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+sessionID, raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// SetConfirmed records that a completed payment exists for the user
func (s *RedisCartStore) SetConfirmed(ctx context.Context, userID uint, paymentRef string) error {
	key := fmt.Sprintf("%s%d", confirmationKeyPrefix, userID)
	if err := s.client.Set(ctx, key, paymentRef, confirmationTTL).Err(); err != nil {
		return fmt.Errorf("failed to set confirmation marker: %w", err)
	}
	return nil
}

// GetConfirmed returns the pending confirmation marker for the user, if any
func (s *RedisCartStore) GetConfirmed(ctx context.Context, userID uint) (string, bool, error) {
	key := fmt.Sprintf("%s%d", confirmationKeyPrefix, userID)
	ref, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read confirmation marker: %w", err)
	}
	return ref, true, nil
}

// ClearConfirmed removes the confirmation marker for the user
func (s *RedisCartStore) ClearConfirmed(ctx context.Context, userID uint) error {
	key := fmt.Sprintf("%s%d", confirmationKeyPrefix, userID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear confirmation marker: %w", err)
	}
	return nil
}
