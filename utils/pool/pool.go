package pool

import "sync"

type SlicePool[T any] struct {
	mu sync.Mutex
	s  []T
}

func NewSlicePool[T any]() *SlicePool[T] {
	return new(SlicePool[T])
}

func NewSlicePoolSize[T any](size int) *SlicePool[T] {
	return &SlicePool[T]{s: make([]T, 0, size)}
}

func (p *SlicePool[T]) Acquire() (v T, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l := len(p.s)
	if l == 0 {
		return v, false
	}

	v = p.s[l-1]
	p.s = p.s[:l-1]
	return v, true
}

func (p *SlicePool[T]) Release(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.s = append(p.s, v)
}

func (p *SlicePool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.s)
}

// BytesPool хранит буферы фиксированного размера size.
type BytesPool struct {
	size int
	p    SlicePool[[]byte]
}

func NewBytesPool(size int) *BytesPool {
	if size < 1 {
		panic("assertion error: size < 1")
	}
	return &BytesPool{size: size}
}

func (p *BytesPool) Size() int { return p.size }

// Acquire always returns a slice of exactly Size bytes.
func (p *BytesPool) Acquire() []byte {
	b, ok := p.p.Acquire()
	if !ok {
		return make([]byte, p.size)
	}
	return b[:p.size]
}

// Release drops buffers of a foreign size.
func (p *BytesPool) Release(b []byte) {
	if cap(b) < p.size {
		return
	}
	p.p.Release(b[:p.size])
}
