// Package gf256 implements the GF(2^8) arithmetic kernel used by a
// Cauchy-matrix MDS erasure code. It builds discrete log/antilog,
// multiply, divide and inverse lookup tables from one of the 16
// irreducible polynomials for this field size, and exposes bulk
// byte-region operations (XOR-add, scale, scale-and-accumulate, swap)
// that the encoder and decoder run on the hot path.
//
// A Ctx is immutable once built and safe for concurrent readers.
// Division and inversion of zero yield zero by convention; that value is
// a placeholder, not a reciprocal, and must never be relied on as one.
package gf256

import (
	"errors"
	"sync"
	"unsafe"
)

// Version is the interface version callers pass to Init. It changes only
// when the table layout or the bulk-op contract changes incompatibly.
const Version = 2

var (
	// ErrVersionMismatch means the caller was compiled against a
	// different interface version of this package.
	ErrVersionMismatch = errors.New("gf256: interface version mismatch")

	// ErrUnsupportedArchitecture means the runtime is not little-endian.
	// The word-wide kernels assume little-endian byte order.
	ErrUnsupportedArchitecture = errors.New("gf256: runtime is not little-endian")
)

// Ctx bundles the reduction polynomial with every lookup table derived
// from it. All fields are written during construction and never after;
// the external matrix logic reads the tables directly when computing
// Cauchy coefficients.
type Ctx struct {
	// Polynomial is the 9-bit reduction value, seed<<1 | 1.
	Polynomial uint16

	// ExpTable[e] is generator^e for e in 0..254, repeated with period
	// 255 through index 509 so that exponent sums (max 254+254) index
	// without a modulo. Index 510 is the identity again; 511..1019 are a
	// zero dead zone never reached by a correct exponent sum.
	ExpTable [1020]byte

	// LogTable[x] is the exponent e with ExpTable[e] == x for x != 0.
	// LogTable[0] is the out-of-range sentinel 512: log of zero is
	// undefined.
	LogTable [256]uint16

	// MulTable[y][x] = x*y and DivTable[y][x] = x/y. Row 0 of both is
	// all zero by convention.
	MulTable [256][256]byte
	DivTable [256][256]byte

	// InvTable[x] is the multiplicative inverse of x, with InvTable[0]
	// = 0 standing in for the nonexistent inverse of zero.
	InvTable [256]byte

	kern kernel
}

// NewContext builds a fully populated context for the catalog polynomial
// at polyIndex. Out-of-range indices fall back to index 0. The bulk-op
// kernel is selected once here from CPU capabilities.
func NewContext(polyIndex int) *Ctx {
	c := &Ctx{Polynomial: reductionPoly(polyIndex)}
	c.initExpLog()
	c.initMulDiv()
	c.initInv()
	c.kern = pickKernel()
	return c
}

var (
	initOnce   sync.Once
	initErr    error
	defaultCtx *Ctx
)

// Init validates the caller's interface version and the runtime byte
// order, then builds the package default context exactly once. Repeat
// calls after success return nil immediately without rebuilding. The
// version check runs before the once-guard, so a mismatched call never
// consumes the single construction attempt.
func Init(version int) error {
	if version != Version {
		return ErrVersionMismatch
	}
	initOnce.Do(func() {
		if !isLittleEndian() {
			initErr = ErrUnsupportedArchitecture
			return
		}
		defaultCtx = NewContext(DefaultPolynomialIndex)
	})
	return initErr
}

// Default returns the context built by Init, or nil before a successful
// Init.
func Default() *Ctx {
	return defaultCtx
}

func isLittleEndian() bool {
	probe := [4]byte{4, 3, 2, 1}
	return *(*uint32)(unsafe.Pointer(&probe[0])) == 0x01020304
}
