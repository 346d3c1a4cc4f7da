// Package cache persists sampler.CountingTable rows so repeated runs over
// the same (alphabet size, T, P) never recompute the arbitrary-precision
// recurrence. It follows server/dao's Store/repository split: a narrow
// interface with an in-memory implementation for tests and CLI one-shots,
// and a SQLite-backed implementation that keeps rows across processes.
package cache

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no row is cached for a key.
var ErrNotFound = errors.New("no cached counting table row for this key")

// Key identifies a single cached row: the alphabet size and the (t, p)
// coordinates within that alphabet size's counting table.
type Key struct {
	AlphabetSize int
	T            int
	P            int
}

func (k Key) String() string {
	return fmt.Sprintf("m=%d/t=%d/p=%d", k.AlphabetSize, k.T, k.P)
}

// Row is a cached C[t][p] value, stored as EncodeBigInt's bytes (a sign
// byte followed by the big-endian magnitude from (*big.Int).Bytes) rather
// than the *big.Int itself, so the cache's wire format never depends on
// math/big's internal representation.
type Row struct {
	Key   Key
	Value []byte
}

// Cache stores and retrieves counting-table rows.
type Cache interface {
	Get(ctx context.Context, key Key) (Row, error)
	Put(ctx context.Context, row Row) error
	Close() error
}
