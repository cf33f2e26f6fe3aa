package cache

import "github.com/pkg/errors"

// ErrNotFound is returned when the key does not exist in the cache.
var ErrNotFound = errors.New("cache: key not found")
