package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
)

const redisKeyPrefix = "shopfront:"

type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(addr, password string, db int) *RedisStorage {
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrStorageKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %q", key)
	}
	return value, nil
}

func (s *RedisStorage) Save(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return errors.Wrapf(s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(), "failed to save %q", key)
}
