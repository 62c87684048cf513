package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tokenfund/crowdfund/internal/port"
)

const (
	busyKeyPrefix = "settlement:busy:"
	busyMarkerTTL = 5 * time.Minute
)

// releaseBusyScript deletes the marker only if this adapter instance set it,
// so a marker that expired and was re-acquired elsewhere is never cleared by
// the stale owner.
var releaseBusyScript = redis.NewScript(`
local key = KEYS[1]
local owner = ARGV[1]

if redis.call('GET', key) == owner then
	return redis.call('DEL', key)
end

return 0
`)

// RedisLock implements the per-campaign busy marker on Redis so multiple
// service instances share it. The TTL bounds how long a crashed operation
// can leave a campaign marked busy.
type RedisLock struct {
	client *redis.Client
	owner  string
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{
		client: client,
		owner:  uuid.New().String(),
	}
}

func (r *RedisLock) Acquire(ctx context.Context, projectID string) (bool, error) {
	key := busyKeyPrefix + projectID

	ok, err := r.client.SetNX(ctx, key, r.owner, busyMarkerTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *RedisLock) Release(ctx context.Context, projectID string) error {
	key := busyKeyPrefix + projectID
	return releaseBusyScript.Run(ctx, r.client, []string{key}, r.owner).Err()
}

var _ port.SettlementLock = (*RedisLock)(nil)
