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

package tree

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"
)

// Values yields every stored value in order, each repeated as many times as
// it was inserted. The iterator can be ranged over any number of times.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.WalkIterative(InOrder, func(e Entry[T]) bool {
			for i := 0; i < e.Count; i++ {
				if !yield(e.Value) {
					return false
				}
			}
			return true
		})
	}
}

// ToSortedSlice returns every stored value in order, duplicates repeated.
// An empty tree yields an empty, non-nil slice.
func (t *Tree[T]) ToSortedSlice() []T {
	out := make([]T, 0, t.Len())
	for v := range t.Values() {
		out = append(out, v)
	}
	return out
}

// ToSinglyLinkedList builds a sorted list with one link per distinct value.
// The tree is left untouched. An empty tree yields (nil, nil).
func (t *Tree[T]) ToSinglyLinkedList() (head, tail *ListNode[T]) {
	return t.toList(false)
}

// ToDoublyLinkedList is ToSinglyLinkedList with every link also pointing
// back at its predecessor.
func (t *Tree[T]) ToDoublyLinkedList() (head, tail *ListNode[T]) {
	return t.toList(true)
}

// ToCircularSinglyLinkedList builds a singly-linked list whose tail links
// back to its head.
func (t *Tree[T]) ToCircularSinglyLinkedList() (head, tail *ListNode[T]) {
	head, tail = t.toList(false)
	if tail != nil {
		tail.Next = head
	}
	return head, tail
}

// ToCircularDoublyLinkedList builds a doubly-linked list closed in both
// directions.
func (t *Tree[T]) ToCircularDoublyLinkedList() (head, tail *ListNode[T]) {
	head, tail = t.toList(true)
	if tail != nil {
		tail.Next = head
		head.Prev = tail
	}
	return head, tail
}

func (t *Tree[T]) toList(double bool) (head, tail *ListNode[T]) {
	t.WalkIterative(InOrder, func(e Entry[T]) bool {
		link := &ListNode[T]{Value: e.Value, Count: e.Count}
		if tail == nil {
			head = link
		} else {
			tail.Next = link
			if double {
				link.Prev = tail
			}
		}
		tail = link
		return true
	})
	return head, tail
}

// FromSorted builds a height-balanced tree from values sorted in
// non-decreasing order by compare. Runs of equal values collapse into one
// node carrying their count. For d distinct values the tree has height
// ceil(log2(d+1))-1 regardless of how the values were produced.
func FromSorted[T any](values []T, compare func(a, b T) int) (*Tree[T], error) {
	t := NewFunc(compare)

	var runs []Entry[T]
	for i, v := range values {
		if i > 0 {
			c := compare(values[i-1], v)
			if c > 0 {
				return nil, errors.Wrapf(ErrNotSorted, "index %d", i)
			}
			if c == 0 {
				runs[len(runs)-1].Count++
				continue
			}
		}
		runs = append(runs, Entry[T]{Value: v, Count: 1})
	}

	t.root = buildBalanced(runs)
	return t, nil
}

// FromSortedOrdered is FromSorted using cmp.Compare.
func FromSortedOrdered[T cmp.Ordered](values []T) (*Tree[T], error) {
	return FromSorted(values, cmp.Compare[T])
}

// ToBalanced returns a new optimally balanced tree holding the same values
// and counts as t. The receiver is not modified.
func (t *Tree[T]) ToBalanced() *Tree[T] {
	var runs []Entry[T]
	t.WalkIterative(InOrder, func(e Entry[T]) bool {
		runs = append(runs, e)
		return true
	})
	return &Tree[T]{
		root:     buildBalanced(runs),
		cmp:      t.cmp,
		mirrored: t.mirrored,
	}
}

// buildBalanced roots each span at its upper midpoint.
func buildBalanced[T any](runs []Entry[T]) *Node[T] {
	if len(runs) == 0 {
		return nil
	}
	mid := len(runs) / 2
	n := &Node[T]{
		Value: runs[mid].Value,
		Count: runs[mid].Count,
		Left:  buildBalanced(runs[:mid]),
		Right: buildBalanced(runs[mid+1:]),
	}
	n.fix()
	return n
}

// Invert mirrors the whole tree in place by swapping the children of every
// node. The tree's ordering is reversed along with it, so it remains a valid
// search tree: lookups and mutations keep working and an in-order walk now
// yields non-increasing values. Inverting twice restores the previous shape.
func (t *Tree[T]) Invert() {
	invert(t.root)
	t.mirrored = !t.mirrored
}

func invert[T any](n *Node[T]) {
	if n == nil {
		return
	}
	invert(n.Left)
	invert(n.Right)
	n.Left, n.Right = n.Right, n.Left
}

// InvertRoot is the shallow counterpart of Invert: it returns a copy of the
// tree in which only the root's two children have been swapped. The result
// is generally not a search tree, which is why it is handed back as a
// detached node structure instead of replacing the tree's root.
func (t *Tree[T]) InvertRoot() *Node[T] {
	root := t.root.clone()
	if root != nil {
		root.Left, root.Right = root.Right, root.Left
	}
	return root
}
