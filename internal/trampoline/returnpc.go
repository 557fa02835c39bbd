package trampoline

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zboralski/indri/internal/jit"
)

// MethodBinding is the per-bound-method record: what the trampoline copy
// stands in for.
type MethodBinding struct {
	Name          string
	Descriptor    string
	OriginalEntry uint64
	Block         jit.CodeBlock // installed trampoline copy
}

// ReturnPCIndex resolves a return PC observed inside a trampoline copy
// back to the copy's MethodBinding. An interval list (sorted, disjoint)
// is the ground truth; an exact-PC point cache accelerates repeat
// lookups, populated on first observation.
type ReturnPCIndex struct {
	mu        sync.Mutex
	intervals []indexEntry // sorted by block start
	points    map[uint64]*MethodBinding
}

type indexEntry struct {
	block   jit.CodeBlock
	binding *MethodBinding
}

// NewReturnPCIndex creates an empty index.
func NewReturnPCIndex() *ReturnPCIndex {
	return &ReturnPCIndex{points: make(map[uint64]*MethodBinding)}
}

// Insert registers a live trampoline copy. The block must be disjoint
// from every registered interval; overlap means the arena handed out
// the same memory twice and is a hard error.
func (ix *ReturnPCIndex) Insert(block jit.CodeBlock, b *MethodBinding) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	i := sort.Search(len(ix.intervals), func(i int) bool {
		return ix.intervals[i].block.Start >= block.Start
	})
	if i > 0 && ix.intervals[i-1].block.End() > block.Start {
		return fmt.Errorf("interval %#x+%#x overlaps %#x", block.Start, block.Len, ix.intervals[i-1].block.Start)
	}
	if i < len(ix.intervals) && block.End() > ix.intervals[i].block.Start {
		return fmt.Errorf("interval %#x+%#x overlaps %#x", block.Start, block.Len, ix.intervals[i].block.Start)
	}

	ix.intervals = append(ix.intervals, indexEntry{})
	copy(ix.intervals[i+1:], ix.intervals[i:])
	ix.intervals[i] = indexEntry{block: block, binding: b}
	return nil
}

// Resolve maps a PC to the binding whose copy contains it. The point
// cache is consulted first; interval hits populate it.
func (ix *ReturnPCIndex) Resolve(pc uint64) (*MethodBinding, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if b, ok := ix.points[pc]; ok {
		return b, true
	}
	i := sort.Search(len(ix.intervals), func(i int) bool {
		return ix.intervals[i].block.End() > pc
	})
	if i < len(ix.intervals) && ix.intervals[i].block.Contains(pc) {
		b := ix.intervals[i].binding
		ix.points[pc] = b
		return b, true
	}
	return nil, false
}

// Blocks returns the registered intervals, in address order.
func (ix *ReturnPCIndex) Blocks() []jit.CodeBlock {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	out := make([]jit.CodeBlock, len(ix.intervals))
	for i, e := range ix.intervals {
		out[i] = e.block
	}
	return out
}
