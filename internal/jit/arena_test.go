package jit

import "testing"

type memSink struct {
	writes map[uint64][]byte
}

func (m *memSink) MemWrite(addr uint64, data []byte) error {
	if m.writes == nil {
		m.writes = make(map[uint64][]byte)
	}
	m.writes[addr] = append([]byte{}, data...)
	return nil
}

func TestArenaDisjointAllocations(t *testing.T) {
	a := NewArena(&memSink{}, 0x1000, 0x1000)
	var blocks []CodeBlock
	for i := 0; i < 8; i++ {
		b, err := a.Allocate(40)
		if err != nil {
			t.Fatal(err)
		}
		blocks = append(blocks, b)
	}
	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			bi, bj := blocks[i], blocks[j]
			if bi.Start < bj.End() && bj.Start < bi.End() {
				t.Errorf("blocks %d and %d overlap", i, j)
			}
		}
	}
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena(&memSink{}, 0x1000, 0x40)
	if _, err := a.Allocate(0x30); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Allocate(0x30); err == nil {
		t.Error("allocation past the limit succeeded")
	}
}

func TestArenaWriteBounds(t *testing.T) {
	m := &memSink{}
	a := NewArena(m, 0x1000, 0x1000)
	b, err := a.Allocate(16)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Write(b, make([]byte, 32)); err == nil {
		t.Error("oversized write accepted")
	}
	if err := a.Write(b, []byte{1, 2, 3, 4}); err != nil {
		t.Error(err)
	}
	if got := m.writes[b.Start]; len(got) != 4 {
		t.Errorf("write did not reach memory: %v", got)
	}
}

func TestFinalizeRejectsForeignBlock(t *testing.T) {
	a := NewArena(&memSink{}, 0x1000, 0x100)
	if err := a.Finalize(CodeBlock{Start: 0x8000, Len: 0x10}); err == nil {
		t.Error("foreign block finalized")
	}
}
