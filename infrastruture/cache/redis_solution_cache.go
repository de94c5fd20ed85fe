package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix  = "walker"
	solutionKeyFmt = "%s:solution:%s"
	lockKeyFmt     = "%s:solve_lock:%s"
)

var (
	ErrCacheMiss = errors.New("solution not cached")
)

var _ i.SolutionCache = &RedisSolutionCache{}

// RedisSolutionCache keeps solutions in Redis with a TTL and hands out
// redsync mutexes so only one instance walks a given maze at a time.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) *RedisSolutionCache {
	c := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c
}

// Get returns the cached solution for digest, or ErrCacheMiss.
func (c *RedisSolutionCache) Get(ctx context.Context, digest string) (*dmn.Solution, error) {
	raw, err := c.client.Get(ctx, c.key(solutionKeyFmt, digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var s dmn.Solution
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Set stores s under digest until the TTL runs out.
func (c *RedisSolutionCache) Set(ctx context.Context, digest string, s *dmn.Solution) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(solutionKeyFmt, digest), raw, c.ttl).Err()
}

// Lock obtains the solve mutex for digest.
func (c *RedisSolutionCache) Lock(ctx context.Context, digest string) (func(), error) {
	mutex := c.locker.NewMutex(c.key(lockKeyFmt, digest))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}, nil
}

func (c *RedisSolutionCache) key(format, digest string) string {
	return fmt.Sprintf(format, c.prefix, digest)
}
