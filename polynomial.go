package gf256

// There are only 16 irreducible polynomials for GF(2^8). The catalog
// stores the high eight coefficient bits; the constant term is implicit.
var genPoly = [16]byte{
	0x8e, 0x95, 0x96, 0xa6, 0xaf, 0xb1, 0xb2, 0xb4,
	0xb8, 0xc3, 0xc6, 0xd4, 0xe1, 0xe7, 0xf3, 0xfa,
}

// DefaultPolynomialIndex selects seed 0xa6, giving the reduction value
// 0x14d. Every table downstream depends on this choice.
const DefaultPolynomialIndex = 3

// reductionPoly expands the catalog seed at index into the full 9-bit
// reduction value. Out-of-range indices fall back to index 0.
func reductionPoly(index int) uint16 {
	if index < 0 || index >= len(genPoly) {
		index = 0
	}
	return uint16(genPoly[index])<<1 | 1
}
