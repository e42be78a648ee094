package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisScanCount = 100

type redisPropertyStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisPropertyStore grava cada propriedade em "{prefix}:{userID}:{key}", sem expiração
func NewRedisPropertyStore(client redis.Cmdable, prefix string) PropertyStore {
	return &redisPropertyStore{
		client: client,
		prefix: prefix,
	}
}

func (r *redisPropertyStore) redisKey(userID, key string) string {
	return r.prefix + ":" + userID + ":" + key
}

func (r *redisPropertyStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.redisKey(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "redis: erro ao buscar propriedade")
	}

	return value, true, nil
}

func (r *redisPropertyStore) Set(ctx context.Context, userID, key, value string) error {
	if err := r.client.Set(ctx, r.redisKey(userID, key), value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis: erro ao gravar propriedade")
	}
	return nil
}

func (r *redisPropertyStore) Delete(ctx context.Context, userID, key string) error {
	if err := r.client.Del(ctx, r.redisKey(userID, key)).Err(); err != nil {
		return errors.Wrap(err, "redis: erro ao remover propriedade")
	}
	return nil
}

func (r *redisPropertyStore) List(ctx context.Context, key string) (map[string]string, error) {
	result := make(map[string]string)
	pattern := r.prefix + ":*:" + key

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, redisScanCount).Result()
		if err != nil {
			return nil, errors.Wrap(err, "redis: erro ao listar propriedades")
		}

		for _, k := range keys {
			userID, ok := r.userIDFromKey(k, key)
			if !ok {
				continue
			}

			value, err := r.client.Get(ctx, k).Result()
			if errors.Is(err, redis.Nil) {
				// removida entre o SCAN e o GET
				continue
			}
			if err != nil {
				return nil, errors.Wrap(err, "redis: erro ao buscar propriedade")
			}
			result[userID] = value
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return result, nil
}

func (r *redisPropertyStore) userIDFromKey(redisKey, key string) (string, bool) {
	head := r.prefix + ":"
	tail := ":" + key
	if !strings.HasPrefix(redisKey, head) || !strings.HasSuffix(redisKey, tail) {
		return "", false
	}

	userID := strings.TrimSuffix(strings.TrimPrefix(redisKey, head), tail)
	return userID, userID != ""
}
