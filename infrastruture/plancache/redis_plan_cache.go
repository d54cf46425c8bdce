// Package plancache keeps planning results in Redis so identical maps are
// solved once, and serialises concurrent solves of one map with redsync.
package plancache

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPrefix = "planner"
	planKeyFmt    = "%s:plan:%s"
	lockKeyFmt    = "%s:plan:%s:solve_lock"

	lockExpiry = 30 * time.Second
)

// RedisPlanCache stores bson-encoded plan records under a TTL.
type RedisPlanCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// NewRedisPlanCache initializes a RedisPlanCache with the provided Redis client and TTL.
func NewRedisPlanCache(client *redis.Client, ttlSeconds int) (i.PlanCache, error) {
	if client == nil {
		return nil, errors.New("plancache: nil redis client")
	}
	cache := &RedisPlanCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the cached record for digest.
func (c *RedisPlanCache) Get(ctx context.Context, digest string) (*dmn.PlanRecord, bool, error) {
	raw, err := c.client.Get(ctx, c.planKey(digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	record, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return record, true, nil
}

// Put caches record for digest.
func (c *RedisPlanCache) Put(ctx context.Context, digest string, record *dmn.PlanRecord) error {
	raw, err := encode(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.planKey(digest), raw, c.ttl).Err()
}

// Lock takes the distributed solve lock for digest.
func (c *RedisPlanCache) Lock(ctx context.Context, digest string) (func(), error) {
	mutex := c.locker.NewMutex(c.lockKey(digest), redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisPlanCache) planKey(digest string) string {
	return fmt.Sprintf(planKeyFmt, c.prefix, digest)
}

func (c *RedisPlanCache) lockKey(digest string) string {
	return fmt.Sprintf(lockKeyFmt, c.prefix, digest)
}

func encode(record *dmn.PlanRecord) ([]byte, error) {
	return bson.Marshal(record)
}

func decode(raw []byte) (*dmn.PlanRecord, error) {
	var record dmn.PlanRecord
	if err := bson.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
