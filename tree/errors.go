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

var (
	// ErrNotSorted is returned when a balanced build is handed values that are
	// not in non-decreasing order.
	ErrNotSorted = errors.New("values are not sorted")

	// ErrOrder reports a node that violates the search-tree ordering.
	ErrOrder = errors.New("search tree ordering violated")

	// ErrCount reports a node whose duplicate count is below 1.
	ErrCount = errors.New("invalid duplicate count")

	// ErrHeight reports a node whose cached height disagrees with its children.
	ErrHeight = errors.New("stale subtree height")

	// ErrUnbalanced reports a node whose subtree heights differ by more than 1.
	ErrUnbalanced = errors.New("AVL invariant violated")
)
