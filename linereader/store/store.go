// Package store keeps per-stream state keyed by a stream identifier.
package store

import (
	"sync"
)

type Key interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64
}

type Store[K Key, V any] interface {
	Each(fn func(K, V))
	Set(K, V)
	Get(K) (V, bool)
	GetAndDelete(K) (V, bool)
	Delete(K)
	Len() int
}

type MapUnlocked[K Key, V any] map[K]V

func NewMapUnlocked[K Key, V any](size int) MapUnlocked[K, V] {
	return make(map[K]V, size)
}

func (m MapUnlocked[K, V]) Each(fn func(K, V)) {
	for k, v := range m {
		fn(k, v)
	}
}
func (m MapUnlocked[K, V]) Set(k K, v V) { m[k] = v }

func (m MapUnlocked[K, V]) Get(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m MapUnlocked[K, V]) GetAndDelete(k K) (V, bool) {
	v, ok := m[k]
	if ok {
		delete(m, k)
	}
	return v, ok
}
func (m MapUnlocked[K, V]) Delete(k K) { delete(m, k) }
func (m MapUnlocked[K, V]) Len() int   { return len(m) }

// Map is MapUnlocked guarded by a RWMutex.
type Map[K Key, V any] struct {
	m  MapUnlocked[K, V]
	mu *sync.RWMutex
}

func NewMap[K Key, V any](size int) *Map[K, V] {
	return &Map[K, V]{
		m:  NewMapUnlocked[K, V](size),
		mu: &sync.RWMutex{},
	}
}

func (s *Map[K, V]) Each(fn func(K, V)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.m.Each(fn)
}

func (s *Map[K, V]) Set(k K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.Set(k, v)
}

func (s *Map[K, V]) Get(k K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Get(k)
}

func (s *Map[K, V]) GetAndDelete(k K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.GetAndDelete(k)
}

func (s *Map[K, V]) Delete(k K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.Delete(k)
}

func (s *Map[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Len()
}

// Sharded распределяет ключи по size шардам, size должен быть степенью двойки.
type Sharded[K Key, V any] struct {
	shards []Store[K, V]
	mask   uint64
}

func NewSharded[K Key, V any](size uint64, build func() Store[K, V]) *Sharded[K, V] {
	if size == 0 || size&(size-1) != 0 {
		panic("assertion error: shards count must be a power of two")
	}
	shards := make([]Store[K, V], size)
	for i := range shards {
		shards[i] = build()
	}
	return &Sharded[K, V]{shards, size - 1}
}

func (s *Sharded[K, V]) shard(k K) Store[K, V] {
	return s.shards[uint64(k)&s.mask]
}

func (s *Sharded[K, V]) Each(fn func(K, V)) {
	for _, shard := range s.shards {
		shard.Each(fn)
	}
}

func (s *Sharded[K, V]) Set(k K, v V)               { s.shard(k).Set(k, v) }
func (s *Sharded[K, V]) Get(k K) (V, bool)          { return s.shard(k).Get(k) }
func (s *Sharded[K, V]) GetAndDelete(k K) (V, bool) { return s.shard(k).GetAndDelete(k) }
func (s *Sharded[K, V]) Delete(k K)                 { s.shard(k).Delete(k) }

func (s *Sharded[K, V]) Len() int {
	var n int
	for _, shard := range s.shards {
		n += shard.Len()
	}
	return n
}
