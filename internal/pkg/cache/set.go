package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Set is a redis-backed cache of values of one type, keyed by a string within
// a shared prefix. Values are serialized with msgpack.
func NewSet[T any](client *redis.Client, prefix string) *Set[T] {
	return &Set[T]{
		client: client,
		prefix: prefix + ":",
	}
}

type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	client *redis.Client
	prefix string
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string, dest *T) error {
	key = c.key(key)
	resp, err := c.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")
		}
		return err
	}
	if err := msgpack.Unmarshal(resp, dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal msgpack value from redis")
		return err
	}
	return nil
}

func (c *Set[T]) Set(key string, value T, expire time.Duration) error {
	key = c.key(key)
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	if err := c.client.Set(context.Background(), key, b, expire).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

func (c *Set[T]) Delete(key string) error {
	return c.client.Del(context.Background(), c.key(key)).Err()
}

// MutexGetSet gets the value under key and writes it to dest, or, if the key
// does not exist, executes valueFunc serially among concurrent callers of this
// Set, stores the result and writes it to dest.
func (c *Set[T]) MutexGetSet(key string, dest *T, valueFunc func() (T, error), expire time.Duration) error {
	err := c.Get(key, dest)
	if err == nil {
		return nil
	} else if !errors.Is(err, redis.Nil) {
		return err
	}

	c.m.Lock()
	defer c.m.Unlock()

	err = c.Get(key, dest)
	if err == nil {
		return nil
	} else if !errors.Is(err, redis.Nil) {
		return err
	}

	value, err := valueFunc()
	if err != nil {
		return err
	}
	if err := c.Set(key, value, expire); err != nil {
		return err
	}
	*dest = value
	return nil
}
