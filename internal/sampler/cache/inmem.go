package cache

import (
	"context"
	"sync"
)

// InMem is a process-local Cache backed by a map, guarded by a mutex so
// one InMem can be shared across goroutines.
type InMem struct {
	mu   sync.RWMutex
	rows map[Key][]byte
}

// NewInMem returns an empty in-memory cache.
func NewInMem() *InMem {
	return &InMem{rows: make(map[Key][]byte)}
}

func (c *InMem) Get(ctx context.Context, key Key) (Row, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.rows[key]
	if !ok {
		return Row{}, ErrNotFound
	}
	return Row{Key: key, Value: v}, nil
}

func (c *InMem) Put(ctx context.Context, row Row) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[row.Key] = row.Value
	return nil
}

func (c *InMem) Close() error { return nil }
