package tournaments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

const (
	// Key patterns
	tournamentKeyPrefix = "tournament:"
	recentIndexKey      = "tournaments:recent"

	// TTL for stored tournaments (30 days)
	tournamentTTL = 30 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed tournament repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = tournamentTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}
}

// NewRedis creates a repository with the default TTL
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func tournamentKey(id string) string {
	return tournamentKeyPrefix + id
}

// expiredBefore is the exclusive upper score bound of index entries past the TTL
func expiredBefore(completedAt time.Time, ttl time.Duration) string {
	return "(" + strconv.FormatInt(completedAt.Add(-ttl).UnixMilli(), 10)
}

func (r *redisRepository) Create(ctx context.Context, tournament *entities.Tournament) error {
	if tournament == nil {
		return dnderr.InvalidArgument("tournament cannot be nil")
	}
	if tournament.ID == "" {
		return dnderr.InvalidArgument("tournament ID cannot be empty")
	}

	data, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to serialize tournament: %w", err)
	}

	created, err := r.client.SetNX(ctx, tournamentKey(tournament.ID), string(data), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	if !created {
		return dnderr.AlreadyExistsf("tournament with ID %s already exists", tournament.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, recentIndexKey, redis.Z{
		Score:  float64(tournament.CompletedAt.UnixMilli()),
		Member: tournament.ID,
	})
	// Index entries older than the TTL point at expired records
	pipe.ZRemRangeByScore(ctx, recentIndexKey, "-inf", expiredBefore(tournament.CompletedAt, r.ttl))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*entities.Tournament, error) {
	data, err := r.client.Get(ctx, tournamentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("tournament not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	var tournament entities.Tournament
	if err := json.Unmarshal(data, &tournament); err != nil {
		return nil, fmt.Errorf("failed to deserialize tournament: %w", err)
	}

	return &tournament, nil
}

func (r *redisRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Tournament, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, recentIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	if len(ids) == 0 {
		return []*entities.Tournament{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = tournamentKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load tournaments: %w", err)
	}

	out := make([]*entities.Tournament, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired while still indexed
			continue
		}
		var tournament entities.Tournament
		if err := json.Unmarshal([]byte(raw), &tournament); err != nil {
			return nil, fmt.Errorf("failed to deserialize tournament %s: %w", ids[i], err)
		}
		out = append(out, &tournament)
	}

	return out, nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, tournamentKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if deleted == 0 {
		return dnderr.NotFoundf("tournament not found: %s", id)
	}

	if err := r.client.ZRem(ctx, recentIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex tournament: %w", err)
	}

	return nil
}
