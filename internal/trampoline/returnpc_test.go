package trampoline

import (
	"testing"

	"github.com/zboralski/indri/internal/jit"
)

func TestInsertAndResolve(t *testing.T) {
	ix := NewReturnPCIndex()
	a := &MethodBinding{Name: "a"}
	b := &MethodBinding{Name: "b"}
	if err := ix.Insert(jit.CodeBlock{Start: 0x1000, Len: 0x100}, a); err != nil {
		t.Fatal(err)
	}
	if err := ix.Insert(jit.CodeBlock{Start: 0x3000, Len: 0x100}, b); err != nil {
		t.Fatal(err)
	}

	for pc, want := range map[uint64]*MethodBinding{
		0x1000: a, 0x1050: a, 0x10FF: a,
		0x3000: b, 0x30FF: b,
	} {
		got, ok := ix.Resolve(pc)
		if !ok || got != want {
			t.Errorf("Resolve(%#x) = %v, want %s", pc, got, want.Name)
		}
	}

	for _, pc := range []uint64{0x0FFF, 0x1100, 0x2000, 0x3100} {
		if _, ok := ix.Resolve(pc); ok {
			t.Errorf("Resolve(%#x) found a binding outside every interval", pc)
		}
	}
}

func TestInsertRejectsOverlap(t *testing.T) {
	ix := NewReturnPCIndex()
	if err := ix.Insert(jit.CodeBlock{Start: 0x1000, Len: 0x100}, &MethodBinding{}); err != nil {
		t.Fatal(err)
	}
	overlapping := []jit.CodeBlock{
		{Start: 0x1000, Len: 0x100},
		{Start: 0x10F0, Len: 0x20},
		{Start: 0x0FF0, Len: 0x20},
		{Start: 0x1040, Len: 0x10},
	}
	for _, blk := range overlapping {
		if err := ix.Insert(blk, &MethodBinding{}); err == nil {
			t.Errorf("Insert(%#x+%#x) accepted an overlapping interval", blk.Start, blk.Len)
		}
	}
	// Adjacent is fine.
	if err := ix.Insert(jit.CodeBlock{Start: 0x1100, Len: 0x100}, &MethodBinding{}); err != nil {
		t.Errorf("adjacent interval rejected: %v", err)
	}
}

func TestPointCacheMatchesIntervals(t *testing.T) {
	ix := NewReturnPCIndex()
	b := &MethodBinding{Name: "m"}
	ix.Insert(jit.CodeBlock{Start: 0x2000, Len: 0x40}, b)

	// Same PC twice: second hit comes from the point cache and must
	// agree with the interval answer.
	for i := 0; i < 2; i++ {
		got, ok := ix.Resolve(0x2020)
		if !ok || got != b {
			t.Fatalf("lookup %d: got %v", i, got)
		}
	}
}

func TestBlocksDisjoint(t *testing.T) {
	ix := NewReturnPCIndex()
	for i := uint64(0); i < 10; i++ {
		err := ix.Insert(jit.CodeBlock{Start: 0x1000 + i*0x200, Len: 0x100}, &MethodBinding{})
		if err != nil {
			t.Fatal(err)
		}
	}
	blocks := ix.Blocks()
	for i := 1; i < len(blocks); i++ {
		if blocks[i-1].End() > blocks[i].Start {
			t.Errorf("blocks %d and %d overlap", i-1, i)
		}
	}
}
