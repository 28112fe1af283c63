package content

import "fmt"

// --- FixedList -------------------------------------------------------------

// FixedList is a list of lists where every sublist has the same size.
// Element i spans child[i*size : (i+1)*size].
//
// A size of 0 denotes a list of length empty sublists; the child is not
// referenced in this case.
type FixedList struct {
	child  Content
	size   int
	length int
}

// NewFixedList wraps child into a list of sublists of equal size.
// For size > 0 the length is derived from the child and must not be given
// differently; pass length < 0 to have it derived. For size == 0 the length
// must be given explicitly.
func NewFixedList(child Content, size int, length int) (*FixedList, error) {
	if child == nil {
		return nil, fmt.Errorf("%w: fixed list without child", ErrInvalidLayout)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: fixed list size %d is negative", ErrInvalidLayout, size)
	}
	if size == 0 {
		if length < 0 {
			return nil, fmt.Errorf("%w: fixed list of size 0 needs an explicit length", ErrInvalidLayout)
		}
		return &FixedList{child: child, size: 0, length: length}, nil
	}
	L := child.Len()
	if L%size != 0 {
		return nil, fmt.Errorf("%w: child length %d is not a multiple of fixed list size %d",
			ErrInvalidLayout, L, size)
	}
	if length >= 0 && length != L/size {
		return nil, fmt.Errorf("%w: fixed list length %d, expected %d", ErrInvalidLayout, length, L/size)
	}
	return &FixedList{child: child, size: size, length: L / size}, nil
}

// Kind is part of interface Content.
func (l *FixedList) Kind() Kind { return KindFixedList }

// Len is part of interface Content.
func (l *FixedList) Len() int { return l.length }

func (l *FixedList) isContent() {}

// Child returns the wrapped content.
func (l *FixedList) Child() Content { return l.child }

// Size returns the size of every sublist.
func (l *FixedList) Size() int { return l.size }

// Range returns the child range of element i.
func (l *FixedList) Range(i int) (start, stop int, err error) {
	if i < 0 || i >= l.length {
		return 0, 0, fmt.Errorf("%w: element %d of fixed list of length %d", ErrIndexOutOfBounds, i, l.length)
	}
	return i * l.size, (i + 1) * l.size, nil
}

// --- OffsetList ------------------------------------------------------------

// OffsetList is a list of variable-length sublists delimited by offsets.
// Element i spans child[offsets[i] : offsets[i+1]].
type OffsetList struct {
	child   Content
	offsets []int64
}

// NewOffsetList wraps child into a list of sublists. The offsets are copied.
func NewOffsetList(child Content, offsets []int64) (*OffsetList, error) {
	if child == nil {
		return nil, fmt.Errorf("%w: offset list without child", ErrInvalidLayout)
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: offset list needs at least one offset", ErrInvalidLayout)
	}
	if offsets[0] != 0 {
		return nil, fmt.Errorf("%w: first offset is %d, must be 0", ErrInvalidLayout, offsets[0])
	}
	if err := checkMonotone(offsets); err != nil {
		return nil, err
	}
	if last := offsets[len(offsets)-1]; last > int64(child.Len()) {
		return nil, fmt.Errorf("%w: last offset %d exceeds child length %d",
			ErrInvalidLayout, last, child.Len())
	}
	return &OffsetList{child: child, offsets: append([]int64{}, offsets...)}, nil
}

// Kind is part of interface Content.
func (l *OffsetList) Kind() Kind { return KindOffsetList }

// Len is part of interface Content.
func (l *OffsetList) Len() int { return len(l.offsets) - 1 }

func (l *OffsetList) isContent() {}

// Child returns the wrapped content.
func (l *OffsetList) Child() Content { return l.child }

// Offsets returns a copy of the offsets.
func (l *OffsetList) Offsets() []int64 {
	return append([]int64{}, l.offsets...)
}

// Range returns the child range of element i.
func (l *OffsetList) Range(i int) (start, stop int, err error) {
	if i < 0 || i >= l.Len() {
		return 0, 0, fmt.Errorf("%w: element %d of offset list of length %d", ErrIndexOutOfBounds, i, l.Len())
	}
	return int(l.offsets[i]), int(l.offsets[i+1]), nil
}

// --- StartStopList ---------------------------------------------------------

// StartStopList is a list of sublists given by independent start and stop
// positions. Ranges may overlap, leave gaps or appear out of order.
type StartStopList struct {
	child  Content
	starts []int64
	stops  []int64
}

// NewStartStopList wraps child into a list of sublists child[starts[i]:stops[i]].
// starts and stops are copied.
func NewStartStopList(child Content, starts, stops []int64) (*StartStopList, error) {
	if child == nil {
		return nil, fmt.Errorf("%w: start/stop list without child", ErrInvalidLayout)
	}
	if len(starts) != len(stops) {
		return nil, fmt.Errorf("%w: %d starts but %d stops", ErrInvalidLayout, len(starts), len(stops))
	}
	L := int64(child.Len())
	for i := range starts {
		if starts[i] < 0 || starts[i] > stops[i] || stops[i] > L {
			return nil, fmt.Errorf("%w: range [%d,%d) of element %d invalid for child length %d",
				ErrInvalidLayout, starts[i], stops[i], i, L)
		}
	}
	return &StartStopList{
		child:  child,
		starts: append([]int64{}, starts...),
		stops:  append([]int64{}, stops...),
	}, nil
}

// Kind is part of interface Content.
func (l *StartStopList) Kind() Kind { return KindStartStopList }

// Len is part of interface Content.
func (l *StartStopList) Len() int { return len(l.starts) }

func (l *StartStopList) isContent() {}

// Child returns the wrapped content.
func (l *StartStopList) Child() Content { return l.child }

// Starts returns a copy of the start positions.
func (l *StartStopList) Starts() []int64 {
	return append([]int64{}, l.starts...)
}

// Stops returns a copy of the stop positions.
func (l *StartStopList) Stops() []int64 {
	return append([]int64{}, l.stops...)
}

// Range returns the child range of element i.
func (l *StartStopList) Range(i int) (start, stop int, err error) {
	if i < 0 || i >= l.Len() {
		return 0, 0, fmt.Errorf("%w: element %d of start/stop list of length %d", ErrIndexOutOfBounds, i, l.Len())
	}
	return int(l.starts[i]), int(l.stops[i]), nil
}

func checkMonotone(offsets []int64) error {
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%w: offsets decrease at position %d (%d > %d)",
				ErrInvalidLayout, i, offsets[i-1], offsets[i])
		}
	}
	return nil
}
