package bitset

import (
	"context"
	"testing"

	"github.com/hupe1980/entindex/internal/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(99)
	a, b := New(), New()
	for _, k := range rng.Uint32s(20_000, 1<<20) {
		a.Set(k, true)
	}
	for _, k := range rng.Uint32s(20_000, 1<<20) {
		b.Set(k, true)
	}
	wantAnd := a.And(b)
	wantCard := a.Cardinality()

	g, ctx := errgroup.WithContext(context.Background())
	for range 8 {
		g.Go(func() error {
			for range 20 {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !a.And(b).Equal(wantAnd) {
					return mismatchError("And result differs")
				}
				a.Or(b)
				b.AndNot(a)
				n := 0
				for range a.Values() {
					n++
				}
				if n != wantCard {
					return mismatchError("iteration count differs")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, a.Validate())
	require.NoError(t, b.Validate())
}

type mismatchError string

func (e mismatchError) Error() string { return string(e) }
