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

import "github.com/cockroachdb/errors"

// Check verifies the search-tree ordering, that every count is at least 1 and
// that cached heights are current. The returned error wraps ErrOrder,
// ErrCount or ErrHeight.
func (t *Tree[T]) Check() error {
	_, err := t.check(t.root, nil, nil, false)
	return err
}

// CheckBalanced is Check plus the AVL invariant; a violation wraps
// ErrUnbalanced.
func (t *Tree[T]) CheckBalanced() error {
	_, err := t.check(t.root, nil, nil, true)
	return err
}

// check returns the recomputed height of n. lo and hi are the exclusive
// bounds inherited from the ancestors, nil when unbounded.
func (t *Tree[T]) check(n *Node[T], lo, hi *T, avl bool) (int, error) {
	if n == nil {
		return -1, nil
	}
	if lo != nil && t.compare(n.Value, *lo) <= 0 {
		return 0, errors.Wrapf(ErrOrder, "value %v is not greater than ancestor %v", n.Value, *lo)
	}
	if hi != nil && t.compare(n.Value, *hi) >= 0 {
		return 0, errors.Wrapf(ErrOrder, "value %v is not less than ancestor %v", n.Value, *hi)
	}
	if n.Count < 1 {
		return 0, errors.Wrapf(ErrCount, "value %v has count %d", n.Value, n.Count)
	}

	lh, err := t.check(n.Left, lo, &n.Value, avl)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.Right, &n.Value, hi, avl)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if h != n.height {
		return 0, errors.Wrapf(ErrHeight, "value %v caches height %d, actual %d", n.Value, n.height, h)
	}
	if avl && (lh-rh > 1 || rh-lh > 1) {
		return 0, errors.Wrapf(ErrUnbalanced, "value %v has subtree heights %d and %d", n.Value, lh, rh)
	}
	return h, nil
}
