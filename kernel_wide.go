package gf256

import "encoding/binary"

// The wide kernel moves 64-bit words per iteration. Loads and stores go
// through encoding/binary little-endian accessors, which compile to
// single unaligned moves on the targets this kernel is selected for.
// The multiply loops still walk the table per byte (there is no table
// gather without hardware shuffles) but gather eight results into one
// word store.

const wordBytes = 8

var wideKernel = kernel{
	xor:    xorWide,
	xor2:   xor2Wide,
	xorSet: xorSetWide,
	mulXor: mulXorWide,
	mul:    mulWide,
	swap:   swapWide,
}

func xorWide(dst, src []byte) {
	n := len(dst) &^ (wordBytes - 1)
	for i := 0; i < n; i += wordBytes {
		v := binary.LittleEndian.Uint64(dst[i:]) ^ binary.LittleEndian.Uint64(src[i:])
		binary.LittleEndian.PutUint64(dst[i:], v)
	}
	for i := n; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func xor2Wide(dst, a, b []byte) {
	n := len(dst) &^ (wordBytes - 1)
	for i := 0; i < n; i += wordBytes {
		v := binary.LittleEndian.Uint64(dst[i:]) ^
			binary.LittleEndian.Uint64(a[i:]) ^
			binary.LittleEndian.Uint64(b[i:])
		binary.LittleEndian.PutUint64(dst[i:], v)
	}
	for i := n; i < len(dst); i++ {
		dst[i] ^= a[i] ^ b[i]
	}
}

func xorSetWide(dst, a, b []byte) {
	n := len(dst) &^ (wordBytes - 1)
	for i := 0; i < n; i += wordBytes {
		v := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		binary.LittleEndian.PutUint64(dst[i:], v)
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] ^ b[i]
	}
}

func gatherWord(row *[256]byte, src []byte) uint64 {
	return uint64(row[src[0]]) |
		uint64(row[src[1]])<<8 |
		uint64(row[src[2]])<<16 |
		uint64(row[src[3]])<<24 |
		uint64(row[src[4]])<<32 |
		uint64(row[src[5]])<<40 |
		uint64(row[src[6]])<<48 |
		uint64(row[src[7]])<<56
}

func mulXorWide(dst []byte, row *[256]byte, src []byte) {
	n := len(dst) &^ (wordBytes - 1)
	for i := 0; i < n; i += wordBytes {
		v := binary.LittleEndian.Uint64(dst[i:]) ^ gatherWord(row, src[i:i+wordBytes])
		binary.LittleEndian.PutUint64(dst[i:], v)
	}
	for i := n; i < len(dst); i++ {
		dst[i] ^= row[src[i]]
	}
}

func mulWide(dst []byte, row *[256]byte, src []byte) {
	n := len(dst) &^ (wordBytes - 1)
	for i := 0; i < n; i += wordBytes {
		binary.LittleEndian.PutUint64(dst[i:], gatherWord(row, src[i:i+wordBytes]))
	}
	for i := n; i < len(dst); i++ {
		dst[i] = row[src[i]]
	}
}

func swapWide(a, b []byte) {
	n := len(a) &^ (wordBytes - 1)
	for i := 0; i < n; i += wordBytes {
		va := binary.LittleEndian.Uint64(a[i:])
		vb := binary.LittleEndian.Uint64(b[i:])
		binary.LittleEndian.PutUint64(a[i:], vb)
		binary.LittleEndian.PutUint64(b[i:], va)
	}
	for i := n; i < len(a); i++ {
		a[i], b[i] = b[i], a[i]
	}
}
