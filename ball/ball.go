package ball

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/symword/symword/word"
)

// Grow returns every group element of geodesic length at most radius over
// the given generating set, in discovery order (radius by radius). The
// generating words must all belong to one group; the result starts with
// the identity.
//
// Algorithm Outline:
//  1. Validate radius and coerce the generating set to its common group.
//  2. Build the step set (generators, plus inverses unless disabled).
//  3. Repeat radius times: multiply every frontier element by every step,
//     drop everything already seen, and the survivors form the next
//     frontier.
//
// Complexity: O(|ball| · |steps|) multiplications; each multiplication is
// linear in the word lengths involved.
func Grow(gens []*word.Word, radius int, opts *Options) ([]*word.Word, error) {
	if radius < 0 {
		return nil, fmt.Errorf("Grow: radius %d: %w", radius, ErrBadRadius)
	}
	if len(gens) == 0 {
		return nil, fmt.Errorf("Grow: %w", ErrNoGenerators)
	}
	g, err := word.Uniform(gens...)
	if err != nil {
		return nil, fmt.Errorf("Grow: %w", err)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	steps, err := stepSet(gens, o.IncludeInverses)
	if err != nil {
		return nil, fmt.Errorf("Grow: %w", err)
	}

	identity := g.Identity()
	seen := newDedupIndex()
	seen.add(identity)

	elems := []*word.Word{identity}
	sphere := []*word.Word{identity}
	for r := 1; r <= radius && len(sphere) > 0; r++ {
		products, err := expand(o, sphere, steps)
		if err != nil {
			return nil, fmt.Errorf("Grow: sphere %d: %w", r, err)
		}

		// Sequential merge keeps the output order deterministic.
		next := make([]*word.Word, 0, len(products))
		for _, p := range products {
			dup, err := seen.has(p)
			if err != nil {
				return nil, fmt.Errorf("Grow: sphere %d: %w", r, err)
			}
			if dup {
				continue
			}
			seen.add(p)
			next = append(next, p)
		}
		elems = append(elems, next...)
		sphere = next
	}

	return elems, nil
}

// stepSet normalizes private copies of the generators and, when asked,
// closes the set under inversion. Duplicates are harmless: the dedup index
// swallows their products.
func stepSet(gens []*word.Word, includeInverses bool) ([]*word.Word, error) {
	steps := make([]*word.Word, 0, 2*len(gens))
	for _, gen := range gens {
		steps = append(steps, gen.Clone().Normalize())
	}
	if includeInverses {
		for _, gen := range gens {
			inv, err := word.Inv(gen)
			if err != nil {
				return nil, err
			}
			steps = append(steps, inv.Normalize())
		}
	}

	return steps, nil
}

// expand multiplies every sphere element by every step. The slot layout
// (sphere index × step index) is position-stable, so the parallel path
// produces byte-identical output to the sequential one. Every operand is
// normalized up front and every product is a fresh word, so goroutines
// never mutate shared state.
func expand(o Options, sphere, steps []*word.Word) ([]*word.Word, error) {
	products := make([]*word.Word, len(sphere)*len(steps))

	if o.Workers < 2 {
		for i, w := range sphere {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			if err := multiplyRow(w, steps, products[i*len(steps):]); err != nil {
				return nil, err
			}
		}

		return products, nil
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, w := range sphere {
		i, w := i, w
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return multiplyRow(w, steps, products[i*len(steps):])
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return products, nil
}

// multiplyRow fills row[j] = w·steps[j] for one sphere element.
func multiplyRow(w *word.Word, steps []*word.Word, row []*word.Word) error {
	for j, s := range steps {
		p, err := word.Mul(w, s)
		if err != nil {
			return err
		}
		row[j] = p
	}

	return nil
}

// dedupIndex buckets words by memoized hash with full Equal confirmation,
// so colliding hashes can never merge distinct elements.
type dedupIndex struct {
	buckets map[uint64][]*word.Word
}

func newDedupIndex() *dedupIndex {
	return &dedupIndex{buckets: make(map[uint64][]*word.Word)}
}

func (ix *dedupIndex) add(w *word.Word) {
	h := w.Hash()
	ix.buckets[h] = append(ix.buckets[h], w)
}

func (ix *dedupIndex) has(w *word.Word) (bool, error) {
	for _, candidate := range ix.buckets[w.Hash()] {
		eq, err := candidate.Equal(w)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}

	return false, nil
}
