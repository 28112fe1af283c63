package virtual

import "sync"

// Buffer holds the data of one role of one node. A buffer either holds its
// data from the start, or is lazy and produces its data on first access.
// Materialization happens at most once and is safe for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	data     []byte
	thunk    func() []byte // nil after materialization
	lazy     bool
	onLoaded func()
}

// Materialized creates a buffer holding data. data is not copied.
func Materialized(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Lazy creates a buffer which calls thunk on first access.
func Lazy(thunk func() []byte) *Buffer {
	if thunk == nil {
		panic("virtual: Lazy(nil)")
	}
	return &Buffer{thunk: thunk, lazy: true}
}

// IsLazy reports whether the buffer has been created with a thunk.
func (b *Buffer) IsLazy() bool {
	return b.lazy
}

// IsMaterialized reports whether the buffer's data is available without
// calling a thunk.
func (b *Buffer) IsMaterialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.thunk == nil
}

// Bytes returns the data of the buffer, materializing it if necessary.
// Clients must not modify the returned slice.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	if b.thunk == nil {
		defer b.mu.Unlock()
		return b.data
	}
	b.data = b.thunk()
	b.thunk = nil
	data, notify := b.data, b.onLoaded
	b.mu.Unlock()
	if notify != nil {
		notify()
	}
	return data
}
