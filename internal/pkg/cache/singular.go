package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Singular is a process-local cache holding a single value under a fixed key.
func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

type Singular[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	key string

	c *cache.Cache
}

func (c *Singular[T]) Get(dest *T) error {
	result, ok := c.c.Get(c.key)
	if !ok {
		return ErrNotFound
	}
	*dest = result.(T)
	return nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) error {
	c.c.Set(c.key, value, expire)
	return nil
}

func (c *Singular[T]) Delete() error {
	c.c.Delete(c.key)
	return nil
}

// MutexGetSet gets the value and writes it to dest, or, if the key does not
// exist, executes valueFunc serially among concurrent callers, stores the
// result and writes it to dest.
func (c *Singular[T]) MutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	err := c.Get(dest)
	if err == nil {
		return nil
	}

	c.m.Lock()
	defer c.m.Unlock()

	// re-check after acquiring the lock: another caller may have populated it
	err = c.Get(dest)
	if err == nil {
		return nil
	}

	value, err := valueFunc()
	if err != nil {
		return err
	}
	if err := c.Set(value, expire); err != nil {
		return err
	}
	*dest = value
	return nil
}
