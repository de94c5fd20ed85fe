package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const recentKey = "walker:recent_solutions"

var _ i.RecentSolutions = &RedisRecentSolutions{}

// RedisRecentSolutions keeps the IDs of stored solutions in a Redis sorted
// set scored by creation time, trimmed to a fixed capacity.
type RedisRecentSolutions struct {
	client   *redis.Client
	key      string
	ttl      time.Duration
	capacity int64
}

// NewRedisRecentSolutions initializes a RedisRecentSolutions with the provided Redis client, TTL and capacity.
func NewRedisRecentSolutions(client *redis.Client, ttlSeconds int, capacity int64) *RedisRecentSolutions {
	return &RedisRecentSolutions{
		client:   client,
		key:      recentKey,
		ttl:      time.Duration(ttlSeconds) * time.Second,
		capacity: capacity,
	}
}

// Record adds id scored by at, drops the oldest members beyond capacity and
// refreshes the set's expiration.
func (r *RedisRecentSolutions) Record(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, r.key, redis.Z{Score: float64(at.UnixMicro()), Member: id.String()})
		if r.capacity > 0 {
			pipe.ZRemRangeByRank(ctx, r.key, 0, -r.capacity-1)
		}
		if r.ttl > 0 {
			pipe.Expire(ctx, r.key, r.ttl)
		}
		return nil
	})
	return err
}

// Latest returns up to n IDs, newest first. Members that are not IDs are skipped.
func (r *RedisRecentSolutions) Latest(ctx context.Context, n int64) ([]uuid.UUID, error) {
	if n <= 0 {
		return []uuid.UUID{}, nil
	}
	members, err := r.client.ZRevRange(ctx, r.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Count returns the number of IDs held.
func (r *RedisRecentSolutions) Count(ctx context.Context) (int64, error) {
	return r.client.ZCard(ctx, r.key).Result()
}
