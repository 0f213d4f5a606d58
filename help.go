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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Arbor %s**

Explore binary search trees from the terminal: grow them unbalanced, keep them AVL balanced on every change,
or balance them once after the fact, and watch what each discipline does to their shape.

Built with Go %s

# 1. Commands
* **demo** builds an unbalanced and an AVL tree from the same random values and walks through every operation
* **compare** plots tree height after each insertion for both disciplines
* **shell** opens an interactive prompt on a single tree
* **settings** shows (and creates) ~/.arbor.yaml

# 2. Shell commands
* insert|add <v...>, avl-insert <v...>
* remove <v...>, avl-remove <v...>
* find <v>, depth <v>, min, max
* walk <order> [recursive]: pre, in, post, reverse-pre, reverse-in, reverse-post, level, inverted-level, reverse-level, reverse-inverted-level
* print, levels, stats, check
* balance, rebuild, invert, invert-root, list <singly|doubly|circular|circular-doubly>
* clear, help, quit

# 3. Reading the output
* Values inserted more than once print as value(count)
* The sideways print shows the root on the left and larger values above

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// shellHelp is the short, unrendered list printed by the shell's help command.
const shellHelp = `insert|add <v...>     insert without rebalancing
avl-insert <v...>     insert keeping the AVL invariant
remove <v...>         remove without rebalancing
avl-remove <v...>     remove keeping the AVL invariant
find <v>              report whether v is stored and its count
depth <v>             depth of v below the root
min | max             smallest or largest value
walk <order> [recursive]
print                 sideways tree
levels                one row per level
stats                 structural statistics
check                 verify ordering and balance
balance               balance the whole tree in place
rebuild               replace the tree with an optimally balanced copy
invert                mirror the tree
invert-root           show the tree with only the root's children swapped
list <kind>           singly, doubly, circular or circular-doubly
clear                 remove everything
quit                  leave the shell
`
