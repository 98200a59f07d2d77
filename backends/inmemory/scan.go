package inmemory

import (
	"github.com/botirk38/aoc2024/types"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"
)

// ScanCounter counts occurrences by scanning the whole column.
// Recent results are kept in an LRU cache, so repeated lookups of the same
// value scan once. Eviction only costs a rescan.
type ScanCounter[T constraints.Integer] struct {
	column []T
	cache  *lru.Cache[T, int]
	scans  int
}

// NewScanCounter creates a new scanning counter over column
func NewScanCounter[T constraints.Integer](column []T, config types.CounterConfig) (*ScanCounter[T], error) {
	lruCache, err := lru.New[T, int](config.CacheSize)
	if err != nil {
		return nil, err
	}

	return &ScanCounter[T]{
		column: column,
		cache:  lruCache,
	}, nil
}

// Count returns the number of occurrences of v in the column
func (c *ScanCounter[T]) Count(v T) int {
	if n, ok := c.cache.Get(v); ok {
		return n
	}

	c.scans++
	n := 0
	for _, x := range c.column {
		if x == v {
			n++
		}
	}

	c.cache.Add(v, n)
	return n
}

// Len returns the length of the column
func (c *ScanCounter[T]) Len() int {
	return len(c.column)
}

// Scans returns how many full scans of the column Count has performed
func (c *ScanCounter[T]) Scans() int {
	return c.scans
}
