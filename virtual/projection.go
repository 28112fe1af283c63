package virtual

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
)

// Projection is a serialized content tree.
type Projection struct {
	Form    *Form
	Length  int
	Buffers map[string]*Buffer

	mu   sync.Mutex
	cast *caster.Caster // broadcasts keys of materialized lazy buffers; created on first Watch
}

// Keys returns the buffer keys in ascending order.
func (p *Projection) Keys() []string {
	keys := make([]string, 0, len(p.Buffers))
	for k := range p.Buffers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lazy returns the keys of lazy buffers in ascending order.
func (p *Projection) Lazy() []string {
	var keys []string
	for _, k := range p.Keys() {
		if p.Buffers[k].IsLazy() {
			keys = append(keys, k)
		}
	}
	return keys
}

// Buffer returns the data of the buffer with the given key, materializing
// it if necessary.
func (p *Projection) Buffer(key string) ([]byte, error) {
	b, ok := p.Buffers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuffer, key)
	}
	return b.Bytes(), nil
}

// Watch subscribes to materializations of lazy buffers of p. Whenever a lazy
// buffer materializes, its key is sent to the returned channel. The
// subscription ends when ctx is done or the projection is closed.
//
// Materialization blocks until every subscriber has room for the key, so
// subscribers have to drain their channel or provide enough capacity.
func (p *Projection) Watch(ctx context.Context, capacity uint) (<-chan string, bool) {
	p.mu.Lock()
	if p.cast == nil {
		p.cast = caster.New(context.Background())
	}
	cast := p.cast
	p.mu.Unlock()
	sub, ok := cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan string, capacity)
	go func() {
		defer close(out)
		for msg := range sub {
			select {
			case out <- msg.(string):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// Close ends all subscriptions of Watch.
func (p *Projection) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cast != nil {
		p.cast.Close()
	}
}

func (p *Projection) loaded(key string) {
	p.mu.Lock()
	cast := p.cast
	p.mu.Unlock()
	tracer().Debugf("buffer %s materialized", key)
	if cast != nil {
		cast.Pub(key)
	}
}

// Virtualize serializes c like ToBuffers and replaces the buffers selected
// by pick with lazy buffers. pick receives the buffer keys in ascending
// order. Form and length do not depend on the selection.
func Virtualize(c content.Content, pick func(keys []string) []string) (*Projection, error) {
	if pick == nil {
		panic("virtual: Virtualize with nil pick")
	}
	p, err := ToBuffers(c)
	if err != nil {
		return nil, err
	}
	if len(p.Buffers) == 0 {
		return p, nil
	}
	for _, key := range pick(p.Keys()) {
		b, ok := p.Buffers[key]
		if !ok {
			return nil, fmt.Errorf("%w: picked %q", ErrUnknownBuffer, key)
		}
		if b.IsLazy() {
			continue
		}
		data := b.Bytes()
		lazy := Lazy(func() []byte { return slices.Clone(data) })
		lazy.onLoaded = func() { p.loaded(key) }
		p.Buffers[key] = lazy
	}
	tracer().Debugf("virtualized %d of %d buffers", len(p.Lazy()), len(p.Buffers))
	return p, nil
}

// PickRandom selects buffer keys by coin flips drawn from s.
func PickRandom(s sampler.Sampler) func(keys []string) []string {
	return func(keys []string) []string {
		var picked []string
		for _, k := range keys {
			if s.Bool() {
				picked = append(picked, k)
			}
		}
		return picked
	}
}

// PickAll selects every buffer key.
func PickAll(keys []string) []string {
	return keys
}
