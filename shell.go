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
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/arbor/tree"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var errUnknownCommand = errors.New("unknown command")

// shell is a line-oriented session on a single integer tree. Rendered views
// are cached until the next mutation.
type shell struct {
	tree   *tree.Tree[int]
	views  *cache.Cache
	out    io.Writer
	pal    palette
	indent int
	prompt string
}

func newShell(out io.Writer, pal palette, indent int) *shell {
	return &shell{
		tree:   tree.New[int](),
		views:  NewViewCache(),
		out:    out,
		pal:    pal,
		indent: indent,
		prompt: "arbor> ",
	}
}

// run reads commands from in until quit, end of input or cancellation.
// Command errors are printed and do not end the session.
func (s *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		quit, err := s.exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			log.Debug().Err(err).Str("line", scanner.Text()).Msg("shell command failed")
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (s *shell) exec(line string) (bool, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, errors.Wrapf(err, "parsing %q", line)
	}
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "insert", "add":
		return false, s.insert(args, s.tree.Insert)
	case "avl-insert":
		return false, s.insert(args, s.tree.InsertBalanced)
	case "remove":
		return false, s.remove(args, s.tree.Remove)
	case "avl-remove":
		return false, s.remove(args, s.tree.RemoveBalanced)
	case "find":
		return false, s.find(args)
	case "depth":
		return false, s.depth(args)
	case "min", "max":
		return false, s.extreme(cmd)
	case "walk":
		return false, s.walk(args)
	case "print":
		s.println(cachedView(s.views, "print", func() string {
			return renderSideways(s.pal, s.tree, s.indent)
		}))
	case "levels":
		s.println(cachedView(s.views, "levels", func() string {
			return renderLevels(s.pal, s.tree, tree.LevelOrder)
		}))
	case "stats":
		s.println(cachedView(s.views, "stats", func() string {
			return statsTable(namedStats{Name: "tree", Stats: s.tree.Stats()}) +
				"depths: " + depthsOf(s.tree).String()
		}))
	case "check":
		return false, s.check()
	case "balance":
		before := s.tree.Rotations()
		s.tree.BalanceWholeTree()
		s.mutated()
		s.printf("balanced: height %d, %d rotations\n", s.tree.Height(), s.tree.Rotations()-before)
	case "rebuild":
		s.tree = s.tree.ToBalanced()
		s.mutated()
		s.printf("rebuilt: height %d\n", s.tree.Height())
	case "invert":
		s.tree.Invert()
		s.mutated()
		s.println("inverted")
	case "invert-root":
		s.println(renderNodeSideways(s.pal, s.tree.InvertRoot(), s.indent))
	case "list":
		if len(args) != 1 {
			return false, errors.Newf("list needs one of %s", strings.Join(listKinds, ", "))
		}
		view, err := renderList(s.pal, s.tree, args[0])
		if err != nil {
			return false, err
		}
		s.println(view)
	case "clear":
		s.tree.Clear()
		s.mutated()
		s.println("cleared")
	case "help":
		s.printf("%s", shellHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.Wrapf(errUnknownCommand, "%q (try help)", cmd)
	}
	return false, nil
}

func (s *shell) insert(args []string, insert func(int) bool) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	for _, v := range values {
		if insert(v) {
			s.printf("inserted %d\n", v)
		} else {
			s.printf("%d now has count %d\n", v, s.tree.Count(v))
		}
	}
	s.mutated()
	return nil
}

func (s *shell) remove(args []string, remove func(int) bool) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	for _, v := range values {
		switch {
		case !remove(v):
			s.printf("%d not found\n", v)
		case s.tree.Contains(v):
			s.printf("%d now has count %d\n", v, s.tree.Count(v))
		default:
			s.printf("removed %d\n", v)
		}
	}
	s.mutated()
	return nil
}

func (s *shell) find(args []string) error {
	v, err := parseValue(args)
	if err != nil {
		return err
	}
	if n := s.tree.Count(v); n > 0 {
		s.printf("%d found, count %d\n", v, n)
	} else {
		s.printf("%d not found\n", v)
	}
	return nil
}

func (s *shell) depth(args []string) error {
	v, err := parseValue(args)
	if err != nil {
		return err
	}
	if d, ok := s.tree.DepthOf(v); ok {
		s.printf("depth of %d is %d\n", v, d)
	} else {
		s.printf("%d not found\n", v)
	}
	return nil
}

func (s *shell) extreme(cmd string) error {
	get := s.tree.Min
	if cmd == "max" {
		get = s.tree.Max
	}
	v, ok := get()
	if !ok {
		s.println(emptyView)
		return nil
	}
	s.printf("%s %d\n", cmd, v)
	return nil
}

func (s *shell) walk(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: walk <order> [recursive]")
	}
	order, err := tree.ParseOrder(args[0])
	if err != nil {
		return err
	}
	recursive := len(args) == 2 && args[1] == "recursive"
	if len(args) == 2 && !recursive {
		return errors.Newf("unknown walk mode %q", args[1])
	}

	key := fmt.Sprintf("walk:%s:%t", order, recursive)
	s.println(cachedView(s.views, key, func() string {
		return renderWalk(s.pal, s.tree, order, recursive)
	}))
	return nil
}

func (s *shell) check() error {
	if err := s.tree.Check(); err != nil {
		return err
	}
	if err := s.tree.CheckBalanced(); err != nil {
		s.printf("ordered, not AVL balanced: %v\n", err)
		return nil
	}
	s.println("ordered, AVL balanced")
	return nil
}

func (s *shell) mutated() {
	s.views.Flush()
}

func (s *shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func parseValues(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("expected at least one value")
	}
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "value %q", a)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseValue(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one value")
	}
	values, err := parseValues(args)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}
