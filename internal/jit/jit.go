// Package jit is the code-emission service behind the trampoline
// synthesizer. It has three operations: emit a template function for a
// signature (calling named runtime helpers at absolute addresses),
// allocate a fresh executable region, and finalize a region's
// protections. The synthesizer composes these; nothing here knows about
// methods or bindings.
package jit

import "fmt"

// CodeBlock is a (start, length) span of executable memory. Once
// published its bytes are immutable and its range is disjoint from every
// other live block.
type CodeBlock struct {
	Start uint64
	Len   uint64
}

// End returns the first address past the block.
func (b CodeBlock) End() uint64 { return b.Start + b.Len }

// Contains reports whether pc lies within the block.
func (b CodeBlock) Contains(pc uint64) bool {
	return pc >= b.Start && pc < b.End()
}

// Helpers holds the absolute addresses of the runtime helpers a template
// calls. They are process-wide globals, so embedding them keeps the
// template copy-safe: copies share the helpers, nothing is per-method.
type Helpers struct {
	WrapRef             uint64
	UnwrapRef           uint64
	EnterUserNativeCode uint64
	LeaveUserNativeCode uint64
	LookupNativeFunc    uint64
}

// Memory is the executable-region store the arena allocates from. The
// emulator satisfies this.
type Memory interface {
	MemWrite(addr uint64, data []byte) error
}

// ErrArenaExhausted is returned when the executable arena is full.
var ErrArenaExhausted = fmt.Errorf("jit: arena exhausted")
