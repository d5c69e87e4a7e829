/*
Package quadtree implements a point-region quadtree for range queries.

Items are referenced, not copied: the tree stores whatever the caller inserts and
reads its location through Locator. The tree is meant to be rebuilt from scratch
whenever item locations change; it is not safe for concurrent use.
*/
package quadtree

import "gonum.org/v1/gonum/spatial/r2"

// MaxDepth bounds subdivision. A node at this depth keeps accepting items past
// its capacity, which only happens for many coincident points.
const MaxDepth = 24

// Locator is anything with a position in surface coordinates.
type Locator interface {
	Location() r2.Vec
}

// Tree is one quadtree node. A node either holds up to capacity items directly
// and has no children, or holds nothing directly and has four children.
type Tree[T Locator] struct {
	boundary Region
	capacity int
	depth    int
	items    []T
	children *[4]*Tree[T]
}

// New returns an empty node covering boundary. Capacity below 1 is treated as 1.
func New[T Locator](boundary Region, capacity int) *Tree[T] {
	return newNode[T](boundary, capacity, 0)
}

func newNode[T Locator](boundary Region, capacity, depth int) *Tree[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Tree[T]{
		boundary: boundary,
		capacity: capacity,
		depth:    depth,
		items:    make([]T, 0, capacity),
	}
}

func (q *Tree[T]) Boundary() Region { return q.boundary }

// Len is the number of items held directly by this node.
func (q *Tree[T]) Len() int { return len(q.items) }

func (q *Tree[T]) Divided() bool { return q.children != nil }

// Insert stores item and reports whether it lies within the node's region.
func (q *Tree[T]) Insert(item T) bool {
	if !q.boundary.Contains(item.Location()) {
		return false
	}
	if q.children == nil {
		if len(q.items) < q.capacity || q.depth >= MaxDepth {
			q.items = append(q.items, item)
			return true
		}
		q.subdivide()
	}
	return q.insertChild(item)
}

func (q *Tree[T]) insertChild(item T) bool {
	for _, c := range q.children {
		if c.Insert(item) {
			return true
		}
	}
	return false
}

// subdivide moves every held item into four new children.
func (q *Tree[T]) subdivide() {
	quads := q.boundary.quadrants()
	q.children = &[4]*Tree[T]{}
	for i, r := range quads {
		q.children[i] = newNode[T](r, q.capacity, q.depth+1)
	}
	for _, it := range q.items {
		q.insertChild(it)
	}
	q.items = nil
}

// Query returns every item inside r, in no particular order.
func (q *Tree[T]) Query(r Region) []T {
	return q.QueryInto(r, nil)
}

// QueryInto appends every item inside r to dst and returns the extended slice.
func (q *Tree[T]) QueryInto(r Region, dst []T) []T {
	if !q.boundary.Intersects(r) {
		return dst
	}
	for _, it := range q.items {
		if r.Contains(it.Location()) {
			dst = append(dst, it)
		}
	}
	if q.children == nil {
		return dst
	}
	for _, c := range q.children {
		dst = c.QueryInto(r, dst)
	}
	return dst
}

// Count is the number of items stored in the whole subtree.
func (q *Tree[T]) Count() int {
	n := len(q.items)
	if q.children != nil {
		for _, c := range q.children {
			n += c.Count()
		}
	}
	return n
}

// Depth is 1 for a leaf, plus the deepest child otherwise.
func (q *Tree[T]) Depth() int {
	if q.children == nil {
		return 1
	}
	d := 0
	for _, c := range q.children {
		d = max(d, c.Depth())
	}
	return d + 1
}
