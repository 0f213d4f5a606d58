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

// rotateLeft makes the right child of node the new subtree root.
//
//	  n              p
//	 / \            / \
//	a   p    =>    n   c
//	   / \        / \
//	  b   c      a   b
func (t *Tree[T]) rotateLeft(node *Node[T]) *Node[T] {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	node.fix()
	pivot.fix()
	t.rotations++

	return pivot
}

// rotateRight makes the left child of node the new subtree root.
func (t *Tree[T]) rotateRight(node *Node[T]) *Node[T] {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	node.fix()
	pivot.fix()
	t.rotations++

	return pivot
}

// rebalance refreshes the height of node and, if its subtrees differ in
// height by more than one, applies the single or double rotation that
// corrects it. It returns the root of the subtree, which is node itself when
// nothing had to move. Both children must already carry correct heights.
func (t *Tree[T]) rebalance(node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	node.fix()

	switch bf := node.BalanceFactor(); {
	case bf > 1:
		// Left-Right case
		if node.Left.Left.Height() < node.Left.Right.Height() {
			node.Left = t.rotateLeft(node.Left)
		}
		return t.rotateRight(node)
	case bf < -1:
		// Right-Left case
		if node.Right.Right.Height() < node.Right.Left.Height() {
			node.Right = t.rotateRight(node.Right)
		}
		return t.rotateLeft(node)
	}
	return node
}

// BalanceWholeTree restores the AVL invariant on a tree built without
// balancing. It is meant to run once after bulk construction; the resulting
// shape need not match what InsertBalanced would have produced for the same
// values.
func (t *Tree[T]) BalanceWholeTree() {
	t.root = t.balanceWhole(t.root)
}

// balanceWhole balances both children first, then the node itself. After a
// rotation the new subtree root is balanced again from scratch, because the
// node that moved down may now be out of balance itself.
func (t *Tree[T]) balanceWhole(node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	node.Left = t.balanceWhole(node.Left)
	node.Right = t.balanceWhole(node.Right)

	if root := t.rebalance(node); root != node {
		return t.balanceWhole(root)
	}
	return node
}
