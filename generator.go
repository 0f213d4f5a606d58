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
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/arbor/tree"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
	"golang.org/x/sync/errgroup"
)

var errTooManyValues = errors.New("not enough distinct values in range")

// newRand returns a generator and the seed it was built from; seed 0 picks
// one from the clock.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// drawDistinct returns count distinct values from [1, maxValue) in the order
// they were drawn.
func drawDistinct(rng *rand.Rand, count, maxValue int) ([]int, error) {
	if count <= 0 {
		return []int{}, nil
	}
	if count > maxValue-1 {
		return nil, errors.Wrapf(errTooManyValues, "%d values from [1, %d)", count, maxValue)
	}

	// Dense draws would spend most of their time rejecting repeats.
	if 2*count > maxValue-1 {
		perm := rng.Perm(maxValue - 1)[:count]
		for i := range perm {
			perm[i]++
		}
		return perm, nil
	}

	// The filter answers "definitely new" for most draws; only its
	// positives need the exact set.
	filter := bloom.New(uint(20*count), 4)
	seen := make(map[int]struct{}, count)
	values := make([]int, 0, count)
	for len(values) < count {
		v := 1 + rng.IntN(maxValue-1)
		key := strconv.Itoa(v)
		if filter.TestString(key) {
			if _, dup := seen[v]; dup {
				continue
			}
		}
		filter.AddString(key)
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}

func newProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

// treePair holds an unbalanced and an AVL tree grown from the same values.
type treePair struct {
	Plain *tree.Tree[int]
	AVL   *tree.Tree[int]
}

// buildPair grows both trees concurrently, one goroutine per tree. bar may be
// nil.
func buildPair(ctx context.Context, values []int, bar *progressbar.ProgressBar) (treePair, error) {
	pair := treePair{Plain: tree.New[int](), AVL: tree.New[int]()}

	g, ctx := errgroup.WithContext(ctx)
	fill := func(name string, insert func(int) bool) func() error {
		return func() error {
			for _, v := range values {
				if err := ctx.Err(); err != nil {
					return err
				}
				insert(v)
				if bar != nil {
					_ = bar.Add(1)
				}
			}
			log.Debug().Str("tree", name).Int("values", len(values)).Msg("tree built")
			return nil
		}
	}
	g.Go(fill("plain", pair.Plain.Insert))
	g.Go(fill("avl", pair.AVL.InsertBalanced))

	if err := g.Wait(); err != nil {
		return treePair{}, errors.Wrap(err, "building trees")
	}
	return pair, nil
}

// heightSeries records the height of each tree after every insertion.
func heightSeries(ctx context.Context, values []int) (plain, avl []float64, err error) {
	g, ctx := errgroup.WithContext(ctx)
	grow := func(insert func(*tree.Tree[int], int) bool, out *[]float64) func() error {
		return func() error {
			t := tree.New[int]()
			series := make([]float64, 0, len(values))
			for _, v := range values {
				if err := ctx.Err(); err != nil {
					return err
				}
				insert(t, v)
				series = append(series, float64(t.Height()))
			}
			*out = series
			return nil
		}
	}
	g.Go(grow((*tree.Tree[int]).Insert, &plain))
	g.Go(grow((*tree.Tree[int]).InsertBalanced, &avl))

	if err := g.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "recording heights")
	}
	return plain, avl, nil
}
