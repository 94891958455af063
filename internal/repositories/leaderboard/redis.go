package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

const (
	// Blob keys
	highScoreKey   = "anointed:highscore"
	leaderboardKey = "anointed:leaderboard"
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

// GetHighScore retrieves the persisted high score, zero when unset or unreadable
func (r *redisRepository) GetHighScore(ctx context.Context) (int, error) {
	raw, err := r.client.Get(ctx, highScoreKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get high score: %w", err)
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	return score, nil
}

// SaveHighScore persists the high score
func (r *redisRepository) SaveHighScore(ctx context.Context, input *SaveHighScoreInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Set(ctx, highScoreKey, strconv.Itoa(input.Score), 0).Err(); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// GetEntries retrieves the leaderboard. A missing key or a blob that fails
// to parse both yield an empty board.
func (r *redisRepository) GetEntries(ctx context.Context) ([]models.LeaderboardEntry, error) {
	blob, err := r.client.Get(ctx, leaderboardKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.LeaderboardEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		return []models.LeaderboardEntry{}, nil
	}
	return entries, nil
}

// SaveEntries persists the leaderboard
func (r *redisRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	blob, err := json.Marshal(input.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := r.client.Set(ctx, leaderboardKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return nil
}
