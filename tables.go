package gf256

// initExpLog walks the 255-element multiplicative group by repeated
// doubling with reduction, filling the antilog table and inverting it
// into the log table as it goes. Correct only because every catalog
// polynomial is irreducible; that is not re-verified here.
func (c *Ctx) initExpLog() {
	poly := uint(c.Polynomial)

	c.LogTable[0] = 512 // sentinel: log of zero is undefined
	c.ExpTable[0] = 1
	for e := 1; e < 255; e++ {
		next := uint(c.ExpTable[e-1]) * 2
		if next >= 256 {
			next ^= poly
		}
		c.ExpTable[e] = byte(next)
		c.LogTable[c.ExpTable[e]] = uint16(e)
	}

	// Close the cycle: generator^255 == 1.
	c.ExpTable[255] = c.ExpTable[0]
	c.LogTable[c.ExpTable[255]] = 255

	// Repeat with period 255 so exponent sums (at most 254+254) never
	// need a modulo.
	for e := 256; e < 2*255; e++ {
		c.ExpTable[e] = c.ExpTable[e%255]
	}
	c.ExpTable[2*255] = 1
	for e := 2*255 + 1; e < 4*255; e++ {
		c.ExpTable[e] = 0
	}
}

// initMulDiv expands the log/antilog tables into full 256x256 multiply
// and divide tables, trading 128 KB for O(1) scalar lookups in the bulk
// loops. Row y=0 of both tables stays all zero by convention.
func (c *Ctx) initMulDiv() {
	for y := 1; y < 256; y++ {
		logY := int(c.LogTable[y])
		logYn := 255 - logY // exponent of y's inverse; group order is 255

		m := &c.MulTable[y]
		d := &c.DivTable[y]
		for x := 1; x < 256; x++ {
			logX := int(c.LogTable[x])
			m[x] = c.ExpTable[logX+logY]
			d[x] = c.ExpTable[logX+logYn]
		}
	}
}

// initInv reads the inverse of each element out of the divide table.
// InvTable[0] inherits the zero-row convention.
func (c *Ctx) initInv() {
	for x := 0; x < 256; x++ {
		c.InvTable[x] = c.DivTable[x][1]
	}
}
