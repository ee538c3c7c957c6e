package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tbs/src/lib"
	"tbs/src/models"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore() *RedisStore {
	return &RedisStore{rdb: lib.GetRedisClient()}
}

func NewRedisStoreWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func draftKey(userId string) string {
	return fmt.Sprintf("booking:draft:%s", userId)
}

func sessionKey(userId string) string {
	return fmt.Sprintf("payment:session:%s", userId)
}

func lockKey(userId string) string {
	return fmt.Sprintf("booking:finalize:%s", userId)
}

func (s *RedisStore) Get(ctx context.Context, userId string) (models.BookingDraft, error) {
	var draft models.BookingDraft
	val, err := s.rdb.Get(ctx, draftKey(userId)).Result()
	if err == redis.Nil {
		return draft, nil
	}
	if err != nil {
		return draft, err
	}
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return models.BookingDraft{}, err
	}
	return draft, nil
}

func (s *RedisStore) Save(ctx context.Context, userId string, partial models.BookingDraft) error {
	current, err := s.Get(ctx, userId)
	if err != nil {
		return err
	}
	merged := current.Merge(partial)
	raw, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(userId), raw, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userId string) error {
	return s.rdb.Del(ctx, draftKey(userId)).Err()
}

func (s *RedisStore) GetSession(ctx context.Context, userId string) (*models.PaymentSession, error) {
	val, err := s.rdb.Get(ctx, sessionKey(userId)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.PaymentSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) SaveSession(ctx context.Context, userId string, session models.PaymentSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(userId), raw, 0).Err()
}

func (s *RedisStore) ClearSession(ctx context.Context, userId string) error {
	return s.rdb.Del(ctx, sessionKey(userId)).Err()
}

func (s *RedisStore) TryLock(ctx context.Context, userId string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, lockKey(userId), "1", ttl).Result()
}

func (s *RedisStore) Unlock(ctx context.Context, userId string) error {
	return s.rdb.Del(ctx, lockKey(userId)).Err()
}
