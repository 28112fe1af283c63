package ragged

import (
	"fmt"

	"github.com/npillmayer/ragged/sampler"
)

// Allocation describes repeated draws against one shared, depleting budget.
type Allocation struct {
	Budget   int // total weight available to all draws
	MinEach  int // minimum weight of every draw
	MaxEach  int // maximum weight of every draw; 0 means no cap beyond the budget
	MinDraws int // number of draws performed regardless of the budget
	MaxDraws int // upper bound of draws
}

// Draw produces one item with a weight in [min, max]. It returns the item
// and its realized weight.
type Draw[T any] func(min, max int) (T, int, error)

// Allocate repeatedly calls draw against the budget of a. After the first
// MinDraws draws, it stops as soon as the budget is exhausted or falls below
// MinEach, MaxDraws items have been drawn, or the sampler decides not to
// continue. It returns the items and their total weight, which never exceeds
// the budget.
//
// Draws are bounded by MaxDraws even if every draw returns weight 0.
// A draw reporting a weight outside its range is a programming error and
// makes Allocate panic.
func Allocate[T any](s sampler.Sampler, a Allocation, draw Draw[T]) ([]T, int, error) {
	remaining := max(a.Budget, 0)
	items := make([]T, 0, max(a.MinDraws, 0))
	for len(items) < a.MaxDraws {
		if len(items) >= a.MinDraws {
			if remaining <= 0 || remaining < a.MinEach || !s.More() {
				break
			}
		}
		hi := remaining
		if a.MaxEach > 0 && a.MaxEach < hi {
			hi = a.MaxEach
		}
		lo := min(a.MinEach, hi)
		item, w, err := draw(lo, hi)
		if err != nil {
			return nil, 0, err
		}
		if w < 0 || w > hi {
			panic(fmt.Sprintf("ragged: draw of weight %d exceeds range [%d,%d]", w, lo, hi))
		}
		remaining -= w
		items = append(items, item)
	}
	used := max(a.Budget, 0) - remaining
	tracer().Debugf("allocated %d items of total weight %d/%d", len(items), used, a.Budget)
	return items, used, nil
}
