// SPDX-License-Identifier: MIT

package sparse_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// propertyTrials is the number of random instances per property.
const propertyTrials = 50

func TestProperty_AddCommutes(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < propertyTrials; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		a := RandomMatrix(t, rng, r, c, 0.4)
		b := RandomMatrix(t, rng, r, c, 0.4)

		ab, err := sparse.Add(a, b)
		require.NoError(t, err)
		ba, err := sparse.Add(b, a)
		require.NoError(t, err)
		require.True(t, ab.Equal(ba), "trial %d", trial)
		RequireNoZeros(t, ab)
	}
}

func TestProperty_SubThenAddIsIdentity(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < propertyTrials; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		a := RandomMatrix(t, rng, r, c, 0.5)
		b := RandomMatrix(t, rng, r, c, 0.5)

		d, err := a.Sub(b)
		require.NoError(t, err)
		back, err := d.Add(b)
		require.NoError(t, err)
		require.True(t, back.Equal(a), "trial %d", trial)
	}
}

func TestProperty_MulAssociative(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < propertyTrials; trial++ {
		m, n, p, q := 1+rng.Intn(5), 1+rng.Intn(5), 1+rng.Intn(5), 1+rng.Intn(5)
		a := RandomMatrix(t, rng, m, n, 0.5)
		b := RandomMatrix(t, rng, n, p, 0.5)
		c := RandomMatrix(t, rng, p, q, 0.5)

		ab, err := a.Mul(b)
		require.NoError(t, err)
		left, err := ab.Mul(c)
		require.NoError(t, err)

		bc, err := b.Mul(c)
		require.NoError(t, err)
		right, err := a.Mul(bc)
		require.NoError(t, err)

		require.True(t, left.Equal(right), "trial %d", trial)

		// Dense reference: (A·B)·C computed by gonum.
		var refAB, ref mat.Dense
		refAB.Mul(ToDense(a), ToDense(b))
		ref.Mul(&refAB, ToDense(c))
		RequireMatchesDense(t, &ref, left)
		RequireNoZeros(t, left)
	}
}

func TestProperty_AddSubMatchDense(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < propertyTrials; trial++ {
		r, c := 1+rng.Intn(7), 1+rng.Intn(7)
		a := RandomMatrix(t, rng, r, c, 0.3)
		b := RandomMatrix(t, rng, r, c, 0.3)

		sum, err := a.Add(b)
		require.NoError(t, err)
		var refSum mat.Dense
		refSum.Add(ToDense(a), ToDense(b))
		RequireMatchesDense(t, &refSum, sum)

		diff, err := a.Sub(b)
		require.NoError(t, err)
		var refDiff mat.Dense
		refDiff.Sub(ToDense(a), ToDense(b))
		RequireMatchesDense(t, &refDiff, diff)
	}
}

// TestProperty_NoStoredZeros drives a random sequence of Set/Add/Sub/Mul and
// checks the no-zero and in-bounds invariants after every step.
func TestProperty_NoStoredZeros(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(99))
	const n = 5

	cur := MustNew(t, n, n)
	for step := 0; step < 500; step++ {
		switch rng.Intn(4) {
		case 0:
			// Small value range makes explicit zeros frequent.
			require.NoError(t, cur.Set(rng.Intn(n), rng.Intn(n), int64(rng.Intn(3)-1)))
		case 1:
			next, err := cur.Add(RandomMatrix(t, rng, n, n, 0.3))
			require.NoError(t, err)
			cur = next
		case 2:
			next, err := cur.Sub(cur.Clone())
			require.NoError(t, err)
			require.Zero(t, next.NNZ())
			next, err = cur.Sub(RandomMatrix(t, rng, n, n, 0.3))
			require.NoError(t, err)
			cur = next
		case 3:
			next, err := cur.Mul(RandomMatrix(t, rng, n, n, 0.3))
			require.NoError(t, err)
			cur = next
		}
		RequireNoZeros(t, cur)
	}
}

func TestProperty_SerializeRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < propertyTrials; trial++ {
		m := RandomMatrix(t, rng, 1+rng.Intn(8), 1+rng.Intn(8), 0.3)

		again, err := sparse.ParseLines(m.Lines())
		require.NoError(t, err)
		require.True(t, again.Equal(m), "trial %d", trial)

		// Shuffled entry order parses to the same matrix.
		lines := m.Lines()
		body := lines[2:]
		rng.Shuffle(len(body), func(i, j int) { body[i], body[j] = body[j], body[i] })
		shuffled, err := sparse.ParseLines(lines)
		require.NoError(t, err)
		require.True(t, shuffled.Equal(m), "trial %d (shuffled)", trial)
	}
}

// FuzzParse checks that whatever parses never stores zeros and survives a
// serialise/re-parse round trip.
func FuzzParse(f *testing.F) {
	f.Add("rows=2\ncols=2\n(0,0,5)\n(0,1,-3)\n(1,1,2)\n")
	f.Add("rows=1\ncols=1\n\n( 0 , 0 , 0 )\n")
	f.Add("rows=3\ncols=3\n(2,2,1)\n(2,2,-1)\n")
	f.Add("rows=2\ncols=2\n(1, 2, abc)\n")
	f.Add(fmt.Sprintf("rows=1\ncols=1\n(0,0,%d)\n", int64(-1)<<63))

	f.Fuzz(func(t *testing.T, text string) {
		m, err := sparse.Parse(strings.NewReader(text))
		if err != nil {
			return
		}
		RequireNoZeros(t, m)

		var buf bytes.Buffer
		_, err = m.WriteTo(&buf)
		require.NoError(t, err)
		again, err := sparse.Parse(&buf)
		require.NoError(t, err)
		require.True(t, again.Equal(m))
	})
}
