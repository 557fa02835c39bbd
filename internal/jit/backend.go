package jit

import (
	"fmt"

	"github.com/zboralski/indri/internal/sig"
)

// Backend is the emission service the synthesizer drives: emit a
// template, allocate a region, finalize it.
type Backend interface {
	// EmitTemplate compiles the template for a signature and returns its
	// entry address, the exact range of the emitted code, and the bytes
	// themselves (the source for per-method bitwise copies).
	EmitTemplate(s *sig.Signature, h Helpers) (entry uint64, block CodeBlock, code []byte, err error)

	// Allocate reserves a fresh executable region of exactly size bytes.
	Allocate(size uint64) (CodeBlock, error)

	// Write copies code into an allocated region.
	Write(block CodeBlock, code []byte) error

	// Finalize applies final protections and invalidates the I-cache.
	// Must complete before the region's address is published.
	Finalize(block CodeBlock) error
}

// A64Backend emits AArch64 code into an arena.
type A64Backend struct {
	arena *Arena
}

// NewA64Backend creates a backend over an executable arena mapping.
func NewA64Backend(mem Memory, base, size uint64) *A64Backend {
	return &A64Backend{arena: NewArena(mem, base, size)}
}

// EmitTemplate implements Backend. The function body is emitted at
// offset 0 of its allocation; the returned entry always equals the
// block start, and callers verify that before installing copies.
func (b *A64Backend) EmitTemplate(s *sig.Signature, h Helpers) (uint64, CodeBlock, []byte, error) {
	code, err := EmitTemplateCode(s, h)
	if err != nil {
		return 0, CodeBlock{}, nil, err
	}
	block, err := b.arena.Allocate(uint64(len(code)))
	if err != nil {
		return 0, CodeBlock{}, nil, err
	}
	if err := b.arena.Write(block, code); err != nil {
		return 0, CodeBlock{}, nil, fmt.Errorf("write template: %w", err)
	}
	if err := b.arena.Finalize(block); err != nil {
		return 0, CodeBlock{}, nil, err
	}
	return block.Start, block, code, nil
}

// Allocate implements Backend.
func (b *A64Backend) Allocate(size uint64) (CodeBlock, error) {
	return b.arena.Allocate(size)
}

// Write implements Backend.
func (b *A64Backend) Write(block CodeBlock, code []byte) error {
	return b.arena.Write(block, code)
}

// Finalize implements Backend.
func (b *A64Backend) Finalize(block CodeBlock) error {
	return b.arena.Finalize(block)
}
