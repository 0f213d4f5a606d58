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
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/arbor/tree"
	"github.com/rs/zerolog/log"
)

type demoOptions struct {
	Count    int
	MaxValue int
	Seed     uint64
	Indent   int
	Palette  palette
	// Progress receives the build progress bar; nil disables it.
	Progress io.Writer
}

func demoOptionsFrom(cfg *Config, pal palette, progress io.Writer) demoOptions {
	opts := demoOptions{
		Count:    cfg.Demo.Count,
		MaxValue: cfg.Demo.MaxValue,
		Seed:     cfg.Demo.Seed,
		Indent:   cfg.Output.Indent,
		Palette:  pal,
	}
	if cfg.Output.Progress {
		opts.Progress = progress
	}
	return opts
}

// prepare draws the values and grows both trees from them.
func prepare(ctx context.Context, w io.Writer, opts demoOptions) ([]int, treePair, error) {
	rng, seed := newRand(opts.Seed)
	values, err := drawDistinct(rng, opts.Count, opts.MaxValue)
	if err != nil {
		return nil, treePair{}, err
	}
	fmt.Fprintf(w, "%d distinct values from [1, %d), seed %d\n\n", len(values), opts.MaxValue, seed)
	log.Debug().Uint64("seed", seed).Ints("values", values).Msg("values drawn")

	var pair treePair
	if opts.Progress != nil && len(values) > 0 {
		bar := newProgressBar(opts.Progress, 2*len(values), "🌱 Growing trees...")
		pair, err = buildPair(ctx, values, bar)
		_ = bar.Finish()
	} else {
		pair, err = buildPair(ctx, values, nil)
	}
	return values, pair, err
}

// runDemo walks through every tree operation on an unbalanced and an AVL
// tree grown from the same random values.
func runDemo(ctx context.Context, w io.Writer, opts demoOptions) error {
	p := opts.Palette
	section := func(title string) {
		fmt.Fprintf(w, "\n%s\n", p.Header("== "+title+" =="))
	}

	values, pair, err := prepare(ctx, w, opts)
	if err != nil {
		return err
	}

	for _, named := range []struct {
		name string
		t    *tree.Tree[int]
	}{{"Unbalanced tree", pair.Plain}, {"AVL tree", pair.AVL}} {
		section(named.name)
		fmt.Fprintln(w, renderSideways(p, named.t, opts.Indent))
		fmt.Fprintf(w, "\nlevel order:\n%s\n", renderLevels(p, named.t, tree.LevelOrder))
		fmt.Fprintf(w, "depths: %s\n", depthsOf(named.t))
	}

	section("Statistics")
	lazy := pair.Plain.Clone()
	lazy.BalanceWholeTree()
	if err := lazy.CheckBalanced(); err != nil {
		return errors.Wrap(err, "whole-tree balancing")
	}
	fmt.Fprint(w, statsTable(
		namedStats{Name: "unbalanced", Stats: pair.Plain.Stats()},
		namedStats{Name: "avl", Stats: pair.AVL.Stats()},
		namedStats{Name: "balanced later", Stats: lazy.Stats()},
	))

	section("Traversals of the AVL tree")
	for _, order := range tree.Orders() {
		rec := renderWalk(p, pair.AVL, order, true)
		it := renderWalk(p, pair.AVL, order, false)
		if rec != it {
			return errors.AssertionFailedf("%s: recursive and iterative walks differ", order)
		}
		fmt.Fprintf(w, "%-24s %s\n", order.String()+":", it)
	}

	section("Conversions")
	sorted := pair.Plain.ToSortedSlice()
	fmt.Fprintf(w, "sorted: %v\n", sorted)
	rebuilt, err := tree.FromSortedOrdered(sorted)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "rebuilt from sorted values: height %d (unbalanced %d, avl %d)\n",
		rebuilt.Height(), pair.Plain.Height(), pair.AVL.Height())
	for _, kind := range listKinds {
		view, err := renderList(p, pair.AVL, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s list:\n%s\n", kind, view)
	}

	section("Inversion")
	fmt.Fprintf(w, "root children swapped:\n%s\n", renderNodeSideways(p, pair.AVL.InvertRoot(), opts.Indent))
	mirror := pair.AVL.Clone()
	mirror.Invert()
	fmt.Fprintf(w, "\nmirrored, in order: %s\n", renderWalk(p, mirror, tree.InOrder, false))

	section("Removal")
	order := slices.Clone(values)
	slices.Reverse(order)
	for _, v := range order {
		if !pair.Plain.Remove(v) || !pair.AVL.RemoveBalanced(v) {
			return errors.AssertionFailedf("value %d missing during removal", v)
		}
		if err := pair.AVL.CheckBalanced(); err != nil {
			return errors.Wrapf(err, "after removing %d", v)
		}
		log.Debug().Int("value", v).Int("avl_height", pair.AVL.Height()).Msg("removed")
	}
	fmt.Fprintf(w, "removed %d values: unbalanced size %d, avl size %d, avl rotations %d\n",
		len(order), pair.Plain.Size(), pair.AVL.Size(), pair.AVL.Rotations())

	pair.Plain.Clear()
	pair.AVL.Clear()
	return nil
}

// runCompare plots how tree height grows under each discipline.
func runCompare(ctx context.Context, w io.Writer, opts demoOptions) error {
	values, pair, err := prepare(ctx, w, opts)
	if err != nil {
		return err
	}
	plain, avl, err := heightSeries(ctx, values)
	if err != nil {
		return err
	}

	p := opts.Palette
	fmt.Fprintf(w, "%s\n%s\n\n", p.Header("Unbalanced"), heightPlot(plain, 12, "height after each insert"))
	fmt.Fprintf(w, "%s\n%s\n\n", p.Header("AVL"), heightPlot(avl, 12, "height after each insert"))
	fmt.Fprint(w, statsTable(
		namedStats{Name: "unbalanced", Stats: pair.Plain.Stats()},
		namedStats{Name: "avl", Stats: pair.AVL.Stats()},
	))
	return nil
}
