package gf256

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func TestAddMemVector(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	dst := []byte{0x01, 0x02, 0x03}
	c.AddMem(dst, []byte{0x01, 0x01, 0x01})
	require.Equal(t, []byte{0x00, 0x03, 0x02}, dst)
}

func TestAddMemSelfInverse(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	rng := rand.New(rand.NewSource(1))

	src := randBytes(rng, 96)
	dst := append([]byte(nil), src...)

	// Aliasing dst == src zeroes the region.
	c.AddMem(dst, dst)
	require.Equal(t, make([]byte, 96), dst)

	// Adding the same source twice restores the original.
	orig := randBytes(rng, 96)
	dst = append([]byte(nil), orig...)
	c.AddMem(dst, src)
	c.AddMem(dst, src)
	require.Equal(t, orig, dst)
}

func TestAdd2AndAddSet(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	rng := rand.New(rand.NewSource(2))
	a, b := randBytes(rng, 33), randBytes(rng, 33)
	orig := randBytes(rng, 33)

	dst := append([]byte(nil), orig...)
	c.Add2Mem(dst, a, b)
	for i := range dst {
		require.Equal(t, orig[i]^a[i]^b[i], dst[i], "Add2Mem at %d", i)
	}

	c.AddSetMem(dst, a, b)
	for i := range dst {
		require.Equal(t, a[i]^b[i], dst[i], "AddSetMem at %d", i)
	}
}

func TestMulAddMem(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	rng := rand.New(rand.NewSource(3))
	src := randBytes(rng, 64)

	// Identity fast path degenerates to AddMem.
	dst := make([]byte, 3)
	c.MulAddMem(dst, 1, []byte{7, 8, 9})
	require.Equal(t, []byte{7, 8, 9}, dst)

	// Scalar zero leaves the destination untouched.
	dst = append([]byte(nil), src...)
	c.MulAddMem(dst, 0, randBytes(rng, 64))
	require.Equal(t, src, dst)

	// General scalar matches per-element multiply.
	for _, y := range []byte{2, 0x53, 0xff} {
		orig := randBytes(rng, 64)
		dst = append([]byte(nil), orig...)
		c.MulAddMem(dst, y, src)
		for i := range dst {
			require.Equal(t, orig[i]^c.Mul(src[i], y), dst[i], "y=%#x i=%d", y, i)
		}
	}
}

func TestMulMem(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	rng := rand.New(rand.NewSource(4))

	// Scalar zero zero-fills without reading the table.
	dst := []byte{0xaa, 0xbb, 0xcc}
	c.MulMem(dst, []byte{5, 10, 255}, 0)
	require.Equal(t, []byte{0, 0, 0}, dst)

	// Scalar one copies the source in; leaving dst untouched would be
	// inconsistent with the MulAddMem identity fast path.
	src := randBytes(rng, 40)
	dst = randBytes(rng, 40)
	c.MulMem(dst, src, 1)
	require.Equal(t, src, dst)

	for _, y := range []byte{2, 0x1c, 0xf0} {
		dst = make([]byte, len(src))
		c.MulMem(dst, src, y)
		for i := range dst {
			require.Equal(t, c.Mul(src[i], y), dst[i], "y=%#x i=%d", y, i)
		}
	}
}

func TestSwapMemInvolution(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	rng := rand.New(rand.NewSource(5))
	a, b := randBytes(rng, 57), randBytes(rng, 57)
	origA := append([]byte(nil), a...)
	origB := append([]byte(nil), b...)

	c.SwapMem(a, b)
	require.Equal(t, origB, a)
	require.Equal(t, origA, b)

	c.SwapMem(a, b)
	require.Equal(t, origA, a)
	require.Equal(t, origB, b)
}

func TestZeroLengthRegions(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	c.AddMem(nil, nil)
	c.Add2Mem(nil, nil, nil)
	c.AddSetMem(nil, nil, nil)
	c.MulAddMem(nil, 7, nil)
	c.MulMem(nil, nil, 7)
	c.SwapMem(nil, nil)
}

// Operations run over the shorter region when lengths disagree.
func TestShorterRegionWins(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)

	dst := []byte{1, 2, 3, 4}
	c.AddMem(dst, []byte{0xff, 0xff})
	require.Equal(t, []byte{0xfe, 0xfd, 3, 4}, dst)

	dst = []byte{1, 2, 3, 4}
	c.MulMem(dst, []byte{9, 9}, 0)
	require.Equal(t, []byte{0, 0, 3, 4}, dst)
}

// Scaling distributes over region addition, matching the scalar field
// law applied elementwise.
func TestMulAddDistributesOverAdd(t *testing.T) {
	c := NewContext(DefaultPolynomialIndex)
	rng := rand.New(rand.NewSource(6))
	y, z := randBytes(rng, 128), randBytes(rng, 128)

	for _, x := range []byte{3, 0x80, 0xfe} {
		sum := make([]byte, 128)
		c.AddSetMem(sum, y, z)
		lhs := make([]byte, 128)
		c.MulAddMem(lhs, x, sum)

		rhs := make([]byte, 128)
		c.MulAddMem(rhs, x, y)
		c.MulAddMem(rhs, x, z)

		if !bytes.Equal(lhs, rhs) {
			t.Fatalf("x=%#x: x*(y+z) != x*y + x*z", x)
		}
	}
}
