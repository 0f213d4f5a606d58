// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tree implements an in-memory binary search tree that counts
// duplicate values instead of storing them twice.
//
// A Tree can be grown without any rebalancing (Insert/Remove), kept AVL
// balanced on every mutation (InsertBalanced/RemoveBalanced), or balanced
// once after bulk construction (BalanceWholeTree). Nodes have no parent
// pointers; every restructuring returns the new subtree root to its caller.
//
// A Tree is not safe for concurrent use.
package tree

import "cmp"

// Tree is a binary search tree ordered by a three-way comparison.
type Tree[T any] struct {
	root *Node[T]
	cmp  func(a, b T) int

	// mirrored is set by Invert; comparisons are negated while it holds.
	mirrored  bool
	rotations int
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must define a total
// order: negative when a < b, zero when equal, positive when a > b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if compare == nil {
		panic("tree: nil comparison function")
	}
	return &Tree[T]{cmp: compare}
}

func (t *Tree[T]) compare(a, b T) int {
	c := t.cmp(a, b)
	if t.mirrored {
		return -c
	}
	return c
}

// Root exposes the root node for read-only inspection (rendering, tests).
// Callers must not modify the returned nodes.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Insert adds v without rebalancing. It reports whether a new node was
// created; inserting a value that is already present only increments its count.
func (t *Tree[T]) Insert(v T) bool {
	var path []*Node[T]
	link := &t.root
	for *link != nil {
		n := *link
		c := t.compare(v, n.Value)
		if c == 0 {
			n.Count++
			return false
		}
		path = append(path, n)
		if c < 0 {
			link = &n.Left
		} else {
			link = &n.Right
		}
	}
	*link = newNode(v)

	for i := len(path) - 1; i >= 0; i-- {
		h := path[i].height
		path[i].fix()
		if path[i].height == h {
			break
		}
	}
	return true
}

// Contains reports whether v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.find(v) != nil
}

// Count returns how many times v has been inserted and not yet removed.
func (t *Tree[T]) Count(v T) int {
	if n := t.find(v); n != nil {
		return n.Count
	}
	return 0
}

func (t *Tree[T]) find(v T) *Node[T] {
	n := t.root
	for n != nil {
		switch c := t.compare(v, n.Value); {
		case c < 0:
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

// DepthOf returns the number of edges between the root and the node holding v.
// The second result is false, and the depth -1, when v is absent.
func (t *Tree[T]) DepthOf(v T) (int, bool) {
	depth := 0
	for n := t.root; n != nil; depth++ {
		switch c := t.compare(v, n.Value); {
		case c < 0:
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return depth, true
		}
	}
	return -1, false
}

// Remove deletes one occurrence of v without rebalancing. A value inserted
// several times only has its count decremented. Remove reports whether v was
// present; removing an absent value leaves the tree unchanged.
func (t *Tree[T]) Remove(v T) bool {
	var found bool
	t.root, found = t.remove(t.root, v, true, false)
	return found
}

// remove deletes v from the subtree rooted at n and returns the new subtree
// root. With checkCount unset the node is unlinked even when its count is
// above 1; that is how an in-order successor is spliced out after its value
// and count were copied into the node being deleted. With balanced set every
// node on the return path is passed through rebalance.
func (t *Tree[T]) remove(n *Node[T], v T, checkCount, balanced bool) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var found bool
	switch c := t.compare(v, n.Value); {
	case c < 0:
		n.Left, found = t.remove(n.Left, v, checkCount, balanced)
	case c > 0:
		n.Right, found = t.remove(n.Right, v, checkCount, balanced)
	default:
		if checkCount && n.Count > 1 {
			n.Count--
			return n, true
		}
		if n.Left == nil {
			child := n.Right
			n.Right = nil
			return child, true
		}
		if n.Right == nil {
			child := n.Left
			n.Left = nil
			return child, true
		}
		succ := n.Right.min()
		n.Value, n.Count = succ.Value, succ.Count
		n.Right, _ = t.remove(n.Right, succ.Value, false, balanced)
		found = true
	}
	if !found {
		return n, false
	}

	if balanced {
		return t.rebalance(n), true
	}
	n.fix()
	return n, true
}

// Min returns the smallest value in the tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.min().Value, true
}

// Max returns the largest value in the tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.max().Value, true
}

// Size returns the number of distinct values (nodes).
func (t *Tree[T]) Size() int {
	size := 0
	t.WalkIterative(PreOrder, func(Entry[T]) bool {
		size++
		return true
	})
	return size
}

// Len returns the number of values inserted and not removed, duplicates included.
func (t *Tree[T]) Len() int {
	total := 0
	t.WalkIterative(PreOrder, func(e Entry[T]) bool {
		total += e.Count
		return true
	})
	return total
}

// Height returns the height of the tree: -1 when empty, 0 for a single node.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// HeightIterative recomputes the height level by level with an explicit
// queue. It does not trust cached heights and does not recurse, so it is safe
// on arbitrarily skewed trees.
func (t *Tree[T]) HeightIterative() int {
	height := -1
	t.WalkIterative(LevelOrder, func(e Entry[T]) bool {
		height = max(height, e.Depth)
		return true
	})
	return height
}

// Rotations returns the number of single rotations performed on the tree so
// far. A double rotation counts as two.
func (t *Tree[T]) Rotations() int {
	return t.rotations
}

// Clone returns a deep copy of the tree. The copy shares no nodes with t.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:     t.root.clone(),
		cmp:      t.cmp,
		mirrored: t.mirrored,
	}
}

// Clear releases every node and leaves the tree empty.
func (t *Tree[T]) Clear() {
	t.root.release()
	t.root = nil
	t.rotations = 0
}
