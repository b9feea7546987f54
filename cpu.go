package gf256

import "golang.org/x/sys/cpu"

// The wide kernel relies on cheap unaligned 64-bit loads, so it is only
// selected on targets that advertise a vector unit; everything else
// gets the portable scalar kernel.
var useWideKernel = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

func pickKernel() kernel {
	if useWideKernel {
		return wideKernel
	}
	return scalarKernel
}
