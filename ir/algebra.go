package ir

import (
	"fmt"
	"slices"
)

// Coerce converts external input into a node. A *Node is returned
// unchanged, a string is wrapped into a fresh text leaf, anything else
// is an error wrapping ErrCoerce. All algebra operators funnel their
// input through this single point, so a tree never contains un-typed
// payloads once inserted.
func Coerce(v any) (*Node, error) {
	switch x := v.(type) {
	case *Node:
		return x, nil
	case string:
		return Text(x), nil
	default:
		return nil, fmt.Errorf("%w: %T (%v)", ErrCoerce, v, v)
	}
}

func mustCoerce(v any) *Node {
	n, err := Coerce(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Set coerces v and stores it under key, overwriting any prior entry.
func (n *Node) Set(key string, v any) *Node {
	n.Slots[key] = mustCoerce(v)
	return n
}

// SetByTag coerces v and files it under its own tag: classify by kind.
func (n *Node) SetByTag(v any) *Node {
	c := mustCoerce(v)
	n.Slots[c.Tag()] = c
	return n
}

// SetByVal coerces v and files it under its own value: classify by
// content.
func (n *Node) SetByVal(v any) *Node {
	c := mustCoerce(v)
	n.Slots[c.Val()] = c
	return n
}

// Push coerces v and appends it to the nest.
func (n *Node) Push(v any) *Node {
	n.Nest = append(n.Nest, mustCoerce(v))
	return n
}

// Ins coerces v and inserts it at index i. i must be in [0, Len()].
func (n *Node) Ins(i int, v any) *Node {
	if i < 0 || i > len(n.Nest) {
		panic(fmt.Errorf("%w: ins %d of %d", ErrIndex, i, len(n.Nest)))
	}
	n.Nest = slices.Insert(n.Nest, i, mustCoerce(v))
	return n
}

// Remove rebuilds the nest excluding every element identical to target.
// Identity is pointer equality. No-op when target is absent.
func (n *Node) Remove(target *Node) *Node {
	kept := make([]*Node, 0, len(n.Nest))
	for _, c := range n.Nest {
		if c != target {
			kept = append(kept, c)
		}
	}
	n.Nest = kept
	return n
}

// InsBefore coerces v and inserts it immediately before the first
// occurrence of anchor. No-op when anchor is absent.
func (n *Node) InsBefore(anchor *Node, v any) *Node {
	for i, c := range n.Nest {
		if c == anchor {
			return n.Ins(i, v)
		}
	}
	return n
}

// InsAfter coerces v and inserts it immediately after every occurrence
// of anchor. The inserted node is shared between insertion points.
// No-op when anchor is absent.
func (n *Node) InsAfter(anchor *Node, v any) *Node {
	c := mustCoerce(v)
	kept := make([]*Node, 0, len(n.Nest))
	for _, e := range n.Nest {
		kept = append(kept, e)
		if e == anchor {
			kept = append(kept, c)
		}
	}
	n.Nest = kept
	return n
}

// Clear empties the nest: discard all pending output.
func (n *Node) Clear() *Node {
	n.Nest = nil
	return n
}

// PopN removes count elements from the end of the nest. count must not
// exceed the current length.
func (n *Node) PopN(count int) *Node {
	if count < 0 || count > len(n.Nest) {
		panic(fmt.Errorf("%w: pop %d of %d", ErrIndex, count, len(n.Nest)))
	}
	n.Nest = n.Nest[:len(n.Nest)-count]
	return n
}

// Splice removes count elements starting at index i.
func (n *Node) Splice(i, count int) *Node {
	if i < 0 || count < 0 || i+count > len(n.Nest) {
		panic(fmt.Errorf("%w: splice %d+%d of %d", ErrIndex, i, count, len(n.Nest)))
	}
	n.Nest = slices.Delete(n.Nest, i, i+count)
	return n
}
