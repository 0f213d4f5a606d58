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

// Node holds one distinct value of a tree. Count is the number of times the
// value has been inserted; it is always at least 1.
type Node[T any] struct {
	Value T
	Count int
	Left  *Node[T]
	Right *Node[T]

	height int // 0 for a leaf
}

func newNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v, Count: 1}
}

// Height returns the height of the subtree rooted at n. A nil node has height -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// BalanceFactor is height(left) - height(right).
func (n *Node[T]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.Left.Height() - n.Right.Height()
}

// fix recomputes the cached height from the children.
func (n *Node[T]) fix() {
	n.height = max(n.Left.Height(), n.Right.Height()) + 1
}

func (n *Node[T]) min() *Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

func (n *Node[T]) max() *Node[T] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

func (n *Node[T]) entry(depth int) Entry[T] {
	return Entry[T]{Value: n.Value, Count: n.Count, Depth: depth}
}

// clone copies the subtree rooted at n, heights included.
func (n *Node[T]) clone() *Node[T] {
	if n == nil {
		return nil
	}
	return &Node[T]{
		Value:  n.Value,
		Count:  n.Count,
		Left:   n.Left.clone(),
		Right:  n.Right.clone(),
		height: n.height,
	}
}

// release tears the subtree down bottom-up, detaching every child before its
// parent is dropped.
func (n *Node[T]) release() {
	if n == nil {
		return
	}
	n.Left.release()
	n.Right.release()
	n.Left, n.Right = nil, nil
}
