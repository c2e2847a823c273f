package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"messages-api/internal/domain"
)

// KEYS[1] = hash id->text, KEYS[2] = lista de ids en orden de inserción.
const redisInsertMessageScript = `
if redis.call("HSETNX", KEYS[1], ARGV[1], ARGV[2]) == 0 then
  return 0
end
redis.call("RPUSH", KEYS[2], ARGV[1])
return 1
`

type redisMessageClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

// RedisMessageRepository guarda los textos en un hash y el orden en una lista.
type RedisMessageRepository struct {
	client  redisMessageClient
	textKey string
	idsKey  string
}

func NewRedisMessageRepository(client *redis.Client) *RedisMessageRepository {
	if client == nil {
		return nil
	}
	return newRedisMessageRepository(client, "messages:")
}

func newRedisMessageRepository(client redisMessageClient, prefix string) *RedisMessageRepository {
	return &RedisMessageRepository{
		client:  client,
		textKey: prefix + "text",
		idsKey:  prefix + "ids",
	}
}

func (r *RedisMessageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	ids, err := r.client.LRange(ctx, r.idsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(ids))
	if len(ids) == 0 {
		return messages, nil
	}

	texts, err := r.client.HMGet(ctx, r.textKey, ids...).Result()
	if err != nil {
		return nil, err
	}
	for i, raw := range texts {
		if raw == nil {
			return nil, fmt.Errorf("%w: %s", ErrInconsistentIndex, ids[i])
		}
		text, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected redis value for message %s: %T", ids[i], raw)
		}
		id := ids[i]
		messages = append(messages, domain.Message{ID: &id, Text: text})
	}
	return messages, nil
}

func (r *RedisMessageRepository) FindByID(ctx context.Context, id string) ([]domain.Message, error) {
	text, err := r.client.HGet(ctx, r.textKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []domain.Message{{ID: &id, Text: text}}, nil
}

func (r *RedisMessageRepository) Insert(ctx context.Context, message domain.Message) error {
	if message.ID == nil {
		return ErrMissingID
	}
	created, err := r.client.Eval(ctx, redisInsertMessageScript,
		[]string{r.textKey, r.idsKey}, *message.ID, message.Text).Int()
	if err != nil {
		return err
	}
	if created == 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, *message.ID)
	}
	return nil
}
