package gf256

// Bulk byte-region operations consumed by the erasure encoder/decoder.
// Each operation runs over the shorter of its slices, so a zero-length
// region is a no-op. Nothing is allocated and nothing blocks; the only
// shared state touched is the read-only context. AddMem tolerates
// dst == src; the remaining operations assume the destination does not
// alias a source.

// AddMem adds src into dst: dst[i] ^= src[i]. Addition and subtraction
// coincide in a characteristic-2 field. Calling with dst == src is well
// defined and zeroes the region.
func (c *Ctx) AddMem(dst, src []byte) {
	n := min(len(dst), len(src))
	c.kern.xor(dst[:n], src[:n])
}

// Add2Mem folds two sources into an accumulating destination in one
// pass: dst[i] ^= a[i] ^ b[i].
func (c *Ctx) Add2Mem(dst, a, b []byte) {
	n := min(len(dst), len(a), len(b))
	c.kern.xor2(dst[:n], a[:n], b[:n])
}

// AddSetMem overwrites the destination with the sum of two sources:
// dst[i] = a[i] ^ b[i].
func (c *Ctx) AddSetMem(dst, a, b []byte) {
	n := min(len(dst), len(a), len(b))
	c.kern.xorSet(dst[:n], a[:n], b[:n])
}

// MulAddMem accumulates a scaled source into dst: dst[i] ^= y*src[i].
// y == 0 is a no-op and y == 1 degenerates to AddMem, skipping the
// table walk for the identity.
func (c *Ctx) MulAddMem(dst []byte, y byte, src []byte) {
	if y <= 1 {
		if y == 1 {
			c.AddMem(dst, src)
		}
		return
	}
	n := min(len(dst), len(src))
	c.kern.mulXor(dst[:n], &c.MulTable[y], src[:n])
}

// MulMem overwrites dst with the scaled source: dst[i] = y*src[i].
// y == 0 zero-fills without consulting the table. y == 1 copies src
// into dst, so scaling by the identity writes the destination like any
// other scalar does.
func (c *Ctx) MulMem(dst, src []byte, y byte) {
	n := min(len(dst), len(src))
	if y <= 1 {
		if y == 0 {
			clear(dst[:n])
		} else {
			copy(dst[:n], src[:n])
		}
		return
	}
	c.kern.mul(dst[:n], &c.MulTable[y], src[:n])
}

// SwapMem exchanges the contents of two regions in place. The decoder
// uses it for row pivoting during elimination.
func (c *Ctx) SwapMem(a, b []byte) {
	n := min(len(a), len(b))
	c.kern.swap(a[:n], b[:n])
}

// Add returns x + y, which in GF(2^8) is XOR and equals x - y.
func (c *Ctx) Add(x, y byte) byte { return x ^ y }

// Mul returns x * y.
func (c *Ctx) Mul(x, y byte) byte { return c.MulTable[y][x] }

// Div returns x / y, or 0 when y == 0 by the zero-row convention.
func (c *Ctx) Div(x, y byte) byte { return c.DivTable[y][x] }

// Inv returns the multiplicative inverse of x. Inv(0) is 0, which is a
// convention and not an inverse.
func (c *Ctx) Inv(x byte) byte { return c.InvTable[x] }

// Sqr returns x * x.
func (c *Ctx) Sqr(x byte) byte { return c.MulTable[x][x] }
