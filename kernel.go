package gf256

// A kernel is one implementation of the inner region loops. The scalar
// kernel is the byte-at-a-time reference; any alternate kernel must
// produce byte-identical output for every input, which the differential
// tests assert. Kernels receive equal-length slices; length trimming
// happens in the dispatch layer.
type kernel struct {
	xor    func(dst, src []byte)
	xor2   func(dst, a, b []byte)
	xorSet func(dst, a, b []byte)
	mulXor func(dst []byte, row *[256]byte, src []byte)
	mul    func(dst []byte, row *[256]byte, src []byte)
	swap   func(a, b []byte)
}

var scalarKernel = kernel{
	xor:    xorScalar,
	xor2:   xor2Scalar,
	xorSet: xorSetScalar,
	mulXor: mulXorScalar,
	mul:    mulScalar,
	swap:   swapScalar,
}

func xorScalar(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func xor2Scalar(dst, a, b []byte) {
	for i := range dst {
		dst[i] ^= a[i] ^ b[i]
	}
}

func xorSetScalar(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func mulXorScalar(dst []byte, row *[256]byte, src []byte) {
	for i := range dst {
		dst[i] ^= row[src[i]]
	}
}

func mulScalar(dst []byte, row *[256]byte, src []byte) {
	for i := range dst {
		dst[i] = row[src[i]]
	}
}

func swapScalar(a, b []byte) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
