package content

import "fmt"

// Check validates the structural invariants of a complete tree.
//
// Constructors already validate every node on creation, so Check is mostly
// useful in tests and for trees decoded from external representations.
func Check(c Content) error {
	if c == nil {
		return fmt.Errorf("%w: nil content", ErrInvalidLayout)
	}
	_, _, err := checkNode(c)
	if err != nil {
		tracer().Debugf("content check: %v", err)
	}
	return err
}

func checkNode(c Content) (weight int, depth int, err error) {
	switch n := c.(type) {
	case *Numeric:
		if _, err = NewNumeric(n.dtype, n.data); err != nil {
			return 0, 0, err
		}
		return n.Len(), 0, nil
	case *Empty:
		return 0, 0, nil
	case *Strings:
		if _, err = NewStringsFromBuffers(n.seg.offsets, n.seg.data); err != nil {
			return 0, 0, err
		}
		return n.Len(), 0, nil
	case *ByteStrings:
		if _, err = segmentsFromBuffers(n.seg.offsets, n.seg.data); err != nil {
			return 0, 0, err
		}
		return n.Len(), 0, nil
	case *FixedList:
		length := n.length
		if n.size > 0 {
			length = -1
		}
		if _, err = NewFixedList(n.child, n.size, length); err != nil {
			return 0, 0, err
		}
		if n.size > 0 && n.length != n.child.Len()/n.size {
			return 0, 0, fmt.Errorf("%w: fixed list length mismatch", ErrInvalidLayout)
		}
	case *OffsetList:
		if _, err = NewOffsetList(n.child, n.offsets); err != nil {
			return 0, 0, err
		}
	case *StartStopList:
		if _, err = NewStartStopList(n.child, n.starts, n.stops); err != nil {
			return 0, 0, err
		}
	case *Record:
		if _, err = NewRecord(n.fields, n.contents, n.length); err != nil {
			return 0, 0, err
		}
	case *Union:
		if _, err = NewUnion(n.tags, n.index, n.contents); err != nil {
			return 0, 0, err
		}
	default:
		panic(fmt.Sprintf("content: unexpected content type %T", c))
	}
	// wrappers: descend
	maxDepth := 0
	for i, child := range Children(c) {
		w, d, err := checkNode(child)
		if err != nil {
			return 0, 0, fmt.Errorf("%s child %d: %w", c.Kind(), i, err)
		}
		weight += w
		maxDepth = max(maxDepth, d)
	}
	return weight, maxDepth + 1, nil
}
