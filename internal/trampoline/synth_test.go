package trampoline

import (
	"math"
	"testing"

	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/jit"
	"github.com/zboralski/indri/internal/refcodec"
)

// Addresses inside the stub region used as fake original native
// functions and as the run-until sentinel.
const (
	origBase    = emulator.StubBase + 0x1000
	retSentinel = emulator.StubBase + 0xFF00
)

type rig struct {
	emu   *emulator.Emulator
	synth *Synthesizer
}

func newRig(t *testing.T, codec refcodec.Codec) *rig {
	t.Helper()
	emu, err := emulator.New()
	if err != nil {
		t.Fatalf("create emulator: %v", err)
	}
	t.Cleanup(func() { emu.Close() })

	index := NewReturnPCIndex()
	helpers, err := InstallHelpers(emu, codec, index)
	if err != nil {
		t.Fatalf("install helpers: %v", err)
	}
	backend := jit.NewA64Backend(emu, emulator.ArenaBase, emulator.ArenaSize)
	return &rig{emu: emu, synth: New(backend, helpers, index)}
}

// installOriginal places a fake native function at addr: a RET stub
// whose hook runs fn, standing in for real native code.
func (r *rig) installOriginal(t *testing.T, addr uint64, fn func(e *emulator.Emulator)) {
	t.Helper()
	if err := r.emu.MemWrite(addr, emulator.RetInsn); err != nil {
		t.Fatalf("write original stub: %v", err)
	}
	r.emu.HookAddress(addr, func(e *emulator.Emulator) bool {
		fn(e)
		emulator.ReturnFromStub(e)
		return false
	})
}

// call drives a trampoline with the given registers and runs until it
// returns to the sentinel.
func (r *rig) call(t *testing.T, entry uint64, setup func(e *emulator.Emulator)) {
	t.Helper()
	r.emu.SetSP(emulator.StackBase + emulator.StackSize - 0x1000)
	setup(r.emu)
	r.emu.SetLR(retSentinel)
	if err := r.emu.Run(entry, retSentinel); err != nil {
		t.Fatalf("run trampoline at %#x: %v", entry, err)
	}
}

// Two methods with the same descriptor share one template, get disjoint
// copies, and each copy dispatches to its own original entry.
func TestTrampolineSharing(t *testing.T) {
	r := newRig(t, refcodec.Identity)

	origA := uint64(origBase)
	origB := uint64(origBase + 0x10)
	r.installOriginal(t, origA, func(e *emulator.Emulator) {
		e.SetX(0, e.X(2)+100)
	})
	r.installOriginal(t, origB, func(e *emulator.Emulator) {
		e.SetX(0, e.X(2)+200)
	})

	trampA, err := r.synth.MakeTrampoline("addA", "(I)I", origA)
	if err != nil {
		t.Fatal(err)
	}
	trampB, err := r.synth.MakeTrampoline("addB", "(I)I", origB)
	if err != nil {
		t.Fatal(err)
	}

	if n := r.synth.TemplateCount(); n != 1 {
		t.Errorf("emitted %d templates, want 1 shared", n)
	}
	if trampA == trampB {
		t.Fatal("copies share an address")
	}

	// Interval registration: disjoint blocks, each resolving to its
	// own binding over the whole range.
	blocks := r.synth.Index().Blocks()
	if len(blocks) != 2 {
		t.Fatalf("%d intervals registered, want 2", len(blocks))
	}
	for i := 1; i < len(blocks); i++ {
		if blocks[i-1].End() > blocks[i].Start {
			t.Error("trampoline copy intervals overlap")
		}
	}
	for _, tc := range []struct {
		entry uint64
		orig  uint64
	}{{trampA, origA}, {trampB, origB}} {
		b, ok := r.synth.Index().Resolve(tc.entry)
		if !ok || b.OriginalEntry != tc.orig {
			t.Errorf("Resolve(%#x): got %+v, want original %#x", tc.entry, b, tc.orig)
		}
	}
	if _, ok := r.synth.Index().Resolve(retSentinel); ok {
		t.Error("sentinel address resolved to a binding")
	}

	// Each copy reaches its own original: (env, this, 7).
	r.call(t, trampA, func(e *emulator.Emulator) {
		e.SetX(0, 0x1111)
		e.SetX(1, 0x2222)
		e.SetX(2, 7)
	})
	if got := r.emu.X(0); got != 107 {
		t.Errorf("trampoline A returned %d, want 107", got)
	}

	r.call(t, trampB, func(e *emulator.Emulator) {
		e.SetX(0, 0x1111)
		e.SetX(1, 0x2222)
		e.SetX(2, 7)
	})
	if got := r.emu.X(0); got != 207 {
		t.Errorf("trampoline B returned %d, want 207", got)
	}
}

// A pointer argument is wrapped before the original sees it, and a
// pointer result is unwrapped on the way back.
func TestPointerArgumentWrapping(t *testing.T) {
	const mask = 0xA5A5A5A5A5A50000
	r := newRig(t, refcodec.XORCodec{Mask: mask})

	var seenArg, seenRecv uint64
	orig := uint64(origBase)
	r.installOriginal(t, orig, func(e *emulator.Emulator) {
		seenRecv = e.X(1)
		seenArg = e.X(2)
		e.SetX(0, e.X(2)) // echo the argument
	})

	tramp, err := r.synth.MakeTrampoline("echo", "(Ljava/lang/String;)Ljava/lang/String;", orig)
	if err != nil {
		t.Fatal(err)
	}

	const p = 0x0000700000001234
	const recv = 0x0000700000005678
	const env = 0x1111
	r.call(t, tramp, func(e *emulator.Emulator) {
		e.SetX(0, env)
		e.SetX(1, recv)
		e.SetX(2, p)
	})

	if seenArg != p^mask {
		t.Errorf("original saw arg %#x, want wrapped %#x", seenArg, uint64(p^mask))
	}
	if seenRecv != recv^mask {
		t.Errorf("original saw receiver %#x, want wrapped %#x", seenRecv, uint64(recv^mask))
	}
	// The original returned the wrapped token; the trampoline unwraps
	// it back to the caller's value.
	if got := r.emu.X(0); got != p {
		t.Errorf("trampoline returned %#x, want %#x", got, uint64(p))
	}
}

// Float arguments ride the FP registers across the helper calls and the
// FP return value survives.
func TestFloatArguments(t *testing.T) {
	r := newRig(t, refcodec.Identity)

	orig := uint64(origBase)
	r.installOriginal(t, orig, func(e *emulator.Emulator) {
		e.SetD(0, e.D(1)) // return the double argument
	})

	tramp, err := r.synth.MakeTrampoline("pick", "(FD)D", orig)
	if err != nil {
		t.Fatal(err)
	}

	f := uint64(math.Float32bits(1.5))
	d := math.Float64bits(2.5)
	r.call(t, tramp, func(e *emulator.Emulator) {
		e.SetX(0, 0x1111)
		e.SetX(1, 0x2222)
		e.SetD(0, f)
		e.SetD(1, d)
	})

	if got := r.emu.D(0); got != d {
		t.Errorf("double return = %#x, want %#x", got, d)
	}
}

// A void method leaves no result behind and still dispatches.
func TestVoidReturn(t *testing.T) {
	r := newRig(t, refcodec.Identity)

	called := false
	orig := uint64(origBase)
	r.installOriginal(t, orig, func(e *emulator.Emulator) {
		called = true
	})

	tramp, err := r.synth.MakeTrampoline("fire", "()V", orig)
	if err != nil {
		t.Fatal(err)
	}
	r.call(t, tramp, func(e *emulator.Emulator) {
		e.SetX(0, 0x1111)
		e.SetX(1, 0x2222)
	})
	if !called {
		t.Error("original never invoked")
	}
}

// Unparseable descriptors and over-wide signatures fail without
// installing anything.
func TestSynthesisFailures(t *testing.T) {
	r := newRig(t, refcodec.Identity)

	if _, err := r.synth.MakeTrampoline("bad", "(X)V", origBase); err == nil {
		t.Error("unparseable descriptor accepted")
	}
	// 2 synthesized pointers + 7 ints = 9 integer-class arguments.
	if _, err := r.synth.MakeTrampoline("wide", "(IIIIIII)V", origBase); err == nil {
		t.Error("signature needing stack arguments accepted")
	}
	if len(r.synth.Index().Blocks()) != 0 {
		t.Error("failed synthesis left intervals behind")
	}
}
