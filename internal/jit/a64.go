package jit

import "encoding/binary"

// AArch64 instruction emission. Only the handful of encodings the
// trampoline template needs; every emitted word is position-independent
// or an absolute immediate, so template bytes behave identically after a
// bitwise copy.

const (
	regFP = 29
	regLR = 30
	regSP = 31
	// x16 (IP0) is the intra-procedure-call scratch register; safe to
	// clobber between the frame setup and the final return.
	regScratch = 16
)

// asm accumulates little-endian instruction words.
type asm struct {
	buf []byte
}

func (a *asm) word(w uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], w)
	a.buf = append(a.buf, b[:]...)
}

// stp x29, x30, [sp, #-16]!
func (a *asm) pushFrame() {
	a.word(0xA9BF7BFD)
}

// ldp x29, x30, [sp], #16
func (a *asm) popFrame() {
	a.word(0xA8C17BFD)
}

// mov x29, sp
func (a *asm) movFPSP() {
	a.word(0x910003FD)
}

// sub sp, sp, #imm (imm < 4096)
func (a *asm) subSP(imm uint32) {
	a.word(0xD1000000 | (imm&0xFFF)<<10 | regSP<<5 | regSP)
}

// add sp, sp, #imm (imm < 4096)
func (a *asm) addSP(imm uint32) {
	a.word(0x91000000 | (imm&0xFFF)<<10 | regSP<<5 | regSP)
}

// str xN, [sp, #off] (off multiple of 8)
func (a *asm) strX(n int, off uint32) {
	a.word(0xF9000000 | (off/8)<<10 | regSP<<5 | uint32(n))
}

// ldr xN, [sp, #off]
func (a *asm) ldrX(n int, off uint32) {
	a.word(0xF9400000 | (off/8)<<10 | regSP<<5 | uint32(n))
}

// str dN, [sp, #off]
func (a *asm) strD(n int, off uint32) {
	a.word(0xFD000000 | (off/8)<<10 | regSP<<5 | uint32(n))
}

// ldr dN, [sp, #off]
func (a *asm) ldrD(n int, off uint32) {
	a.word(0xFD400000 | (off/8)<<10 | regSP<<5 | uint32(n))
}

// movImm64 materializes an absolute 64-bit value into xN. Always four
// instructions (movz + movk*3) so template size does not depend on the
// value.
func (a *asm) movImm64(n int, val uint64) {
	a.word(0xD2800000 | uint32(val&0xFFFF)<<5 | uint32(n))
	a.word(0xF2800000 | 1<<21 | uint32(val>>16&0xFFFF)<<5 | uint32(n))
	a.word(0xF2800000 | 2<<21 | uint32(val>>32&0xFFFF)<<5 | uint32(n))
	a.word(0xF2800000 | 3<<21 | uint32(val>>48&0xFFFF)<<5 | uint32(n))
}

// blr xN
func (a *asm) blr(n int) {
	a.word(0xD63F0000 | uint32(n)<<5)
}

// ret
func (a *asm) ret() {
	a.word(0xD65F03C0)
}

// callAbs emits an absolute call through the scratch register.
func (a *asm) callAbs(target uint64) {
	a.movImm64(regScratch, target)
	a.blr(regScratch)
}
