package cache

import (
	"context"
	"sort"
	"sync"
)

// MemoryCache in-memory аналог RedisCache
type MemoryCache struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.values[key]
	return value, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value
	return nil
}

func (c *MemoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

// MemoryRanker in-memory аналог RedisRanker с тем же порядком при равных счетах
type MemoryRanker struct {
	mu   sync.Mutex
	sets map[string]map[string]float64
}

func NewMemoryRanker() *MemoryRanker {
	return &MemoryRanker{sets: make(map[string]map[string]float64)}
}

func (r *MemoryRanker) IncrementScore(_ context.Context, setKey, member string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[setKey]
	if !ok {
		set = make(map[string]float64)
		r.sets[setKey] = set
	}
	set[member]++

	return nil
}

func (r *MemoryRanker) Top(_ context.Context, setKey string, n int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.ascending(setKey)
	// по убыванию, как ZREVRANGE
	for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
		members[i], members[j] = members[j], members[i]
	}

	if n < 0 {
		return []string{}, nil
	}
	if len(members) > n+1 {
		members = members[:n+1]
	}

	return members, nil
}

func (r *MemoryRanker) RemoveLowest(_ context.Context, setKey string, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.ascending(setKey)
	if len(members) > count {
		members = members[:count]
	}

	set := r.sets[setKey]
	for _, member := range members {
		delete(set, member)
	}

	return members, nil
}

func (r *MemoryRanker) RemoveMember(_ context.Context, setKey, member string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sets[setKey], member)
	return nil
}

// ascending вызывается под мьютексом
func (r *MemoryRanker) ascending(setKey string) []string {
	set := r.sets[setKey]
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}

	sort.Slice(members, func(i, j int) bool {
		if set[members[i]] != set[members[j]] {
			return set[members[i]] < set[members[j]]
		}
		return members[i] < members[j]
	})

	return members
}
