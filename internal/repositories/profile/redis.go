package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// profileKey is the single blob key for the device profile
const profileKey = "anointed:profile"

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetProfile retrieves the stored profile. A missing key or a blob that
// fails to parse both yield the default profile; the stale record is left
// in place until the next successful save overwrites it.
func (r *redisRepository) GetProfile(ctx context.Context) (*models.PlayerProfile, error) {
	blob, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewPlayerProfile(), nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var stored models.PlayerProfile
	if err := json.Unmarshal([]byte(blob), &stored); err != nil {
		return models.NewPlayerProfile(), nil
	}

	if stored.Achievements == nil {
		stored.Achievements = make(map[string]time.Time)
	}
	if stored.CategoryProgress == nil {
		stored.CategoryProgress = make(map[string]int)
	}

	return &stored, nil
}

// SaveProfile persists the profile
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	blob, err := json.Marshal(input.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := r.client.Set(ctx, profileKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
