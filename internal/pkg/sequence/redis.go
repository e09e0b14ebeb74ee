package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const DefaultKey = "kyc:complaint_id"

// nextScript raises the counter to at least the seed, then increments it.
var nextScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local seed = tonumber(ARGV[1])
if cur < seed then
	redis.call('SET', KEYS[1], seed)
end
return redis.call('INCR', KEYS[1])
`)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type redisSequence struct {
	client *redis.Client
	key    string
}

// NewRedis connects to Redis, retrying the first ping, and returns a
// counter shared by every process pointed at the same key.
func NewRedis(ctx context.Context, cfg RedisConfig, maxRetries uint64) (Sequence, error) {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	err := backoff.Retry(
		func() error {
			pingErr := client.Ping(ctx).Err()
			if pingErr != nil {
				logger.Warnf(ctx, "redis ping %s failed: %s", cfg.Addr, pingErr.Error())
			}
			return pingErr
		},
		backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx),
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	logger.Infof(ctx, "complaint ids from redis %s key %s", cfg.Addr, cfg.Key)

	return &redisSequence{client: client, key: cfg.Key}, nil
}

func (s *redisSequence) Next(ctx context.Context, count int) (int64, error) {
	id, err := nextScript.Run(ctx, s.client, []string{s.key}, count).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis next %s: %w", s.key, err)
	}
	return id, nil
}

func (s *redisSequence) Close() error {
	return s.client.Close()
}
