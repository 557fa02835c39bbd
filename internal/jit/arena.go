package jit

import (
	"fmt"
	"sync"
)

// Arena hands out disjoint executable regions from one pre-mapped span
// of the emulated address space. A bump allocator is enough: blocks are
// never freed (bindings live for the VM's lifetime).
type Arena struct {
	mem   Memory
	base  uint64
	limit uint64

	mu   sync.Mutex
	next uint64
}

// NewArena creates an arena over [base, base+size), which must already
// be mapped executable.
func NewArena(mem Memory, base, size uint64) *Arena {
	return &Arena{mem: mem, base: base, limit: base + size, next: base}
}

// Allocate reserves a fresh block of exactly size bytes (16-aligned).
func (a *Arena) Allocate(size uint64) (CodeBlock, error) {
	if size == 0 {
		return CodeBlock{}, fmt.Errorf("jit: zero-size allocation")
	}
	aligned := (size + 15) & ^uint64(15)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.next+aligned > a.limit {
		return CodeBlock{}, ErrArenaExhausted
	}
	block := CodeBlock{Start: a.next, Len: size}
	a.next += aligned
	return block, nil
}

// Write copies code into an allocated block.
func (a *Arena) Write(block CodeBlock, code []byte) error {
	if uint64(len(code)) > block.Len {
		return fmt.Errorf("jit: code (%d bytes) exceeds block (%d bytes)", len(code), block.Len)
	}
	return a.mem.MemWrite(block.Start, code)
}

// Finalize flips the block to its executable protection and invalidates
// the instruction cache. Under emulation the arena mapping is already
// executable and there is no cache to invalidate, but callers still
// order this before publishing the block's address.
func (a *Arena) Finalize(block CodeBlock) error {
	if block.Start < a.base || block.End() > a.limit {
		return fmt.Errorf("jit: block %#x+%#x outside arena", block.Start, block.Len)
	}
	return nil
}
