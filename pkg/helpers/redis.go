package helpers

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RedisSessionStore keeps one login session per subject as a redis hash.
type RedisSessionStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, prefix: "coach:session:"}
}

func (s *RedisSessionStore) key(subject string) string { return s.prefix + subject }

func (s *RedisSessionStore) Save(ctx context.Context, subject, sid string, ttl time.Duration) error {
	key := s.key(subject)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"sid":        sid,
		"subject":    subject,
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the current session id, or "" when the subject has none.
func (s *RedisSessionStore) Get(ctx context.Context, subject string) (string, error) {
	sid, err := s.rdb.HGet(ctx, s.key(subject), "sid").Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return sid, err
}

func (s *RedisSessionStore) Delete(ctx context.Context, subject string) error {
	return s.rdb.Del(ctx, s.key(subject)).Err()
}
