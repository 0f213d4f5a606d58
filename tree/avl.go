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

// InsertBalanced adds v and rebalances every ancestor of the insertion point,
// so the AVL invariant holds when it returns. It reports whether a new node
// was created.
func (t *Tree[T]) InsertBalanced(v T) bool {
	var created bool
	t.root, created = t.insertBalanced(t.root, v)
	return created
}

func (t *Tree[T]) insertBalanced(node *Node[T], v T) (*Node[T], bool) {
	if node == nil {
		return newNode(v), true
	}

	var created bool
	switch c := t.compare(v, node.Value); {
	case c < 0:
		node.Left, created = t.insertBalanced(node.Left, v)
	case c > 0:
		node.Right, created = t.insertBalanced(node.Right, v)
	default:
		node.Count++
		return node, false
	}

	return t.rebalance(node), created
}

// RemoveBalanced deletes one occurrence of v the way Remove does and
// rebalances every node on the way back to the root, including the path
// taken to splice out an in-order successor.
func (t *Tree[T]) RemoveBalanced(v T) bool {
	var found bool
	t.root, found = t.remove(t.root, v, true, true)
	return found
}
