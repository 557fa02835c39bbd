package hostvm

import (
	"fmt"
	"testing"

	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/jni"
	"github.com/zboralski/indri/internal/sig"
)

// retSentinel is a mapped address runs return to; Run stops there.
const retSentinel = emulator.StubBase + 0xFF40

func newBridgeWorld(t *testing.T) (*emulator.Emulator, *VM, *Bridge, uint64) {
	t.Helper()
	emu, err := emulator.New()
	if err != nil {
		t.Fatalf("create emulator: %v", err)
	}
	t.Cleanup(func() { emu.Close() })

	vm := NewVM()
	b := NewBridge(emu, vm)
	b.Signature = func(id jni.MethodID) (*sig.Signature, error) {
		name, desc, err := vm.MethodName(id)
		if err != nil {
			return nil, err
		}
		s, ok := sig.Parse(desc, 0)
		if !ok {
			return nil, fmt.Errorf("bad descriptor %q", desc)
		}
		s.Name = name
		return &s, nil
	}
	env, err := b.Install()
	if err != nil {
		t.Fatalf("install bridge: %v", err)
	}
	return emu, vm, b, env
}

// slotAddr reads the function pointer for a vtable slot out of emulated
// memory, the way native code would.
func slotAddr(t *testing.T, emu *emulator.Emulator, env uint64, index int) uint64 {
	t.Helper()
	vtable, err := emu.MemReadU64(env)
	if err != nil {
		t.Fatal(err)
	}
	fn, err := emu.MemReadU64(vtable + uint64(index*8))
	if err != nil {
		t.Fatal(err)
	}
	if fn == 0 {
		t.Fatalf("slot %d is null", index)
	}
	return fn
}

func TestBridgeInstallShape(t *testing.T) {
	emu, _, _, env := newBridgeWorld(t)
	if env == 0 {
		t.Fatal("env is 0")
	}
	// Every slot is populated.
	for i := 0; i < slotCount; i++ {
		slotAddr(t, emu, env, i)
	}
}

func TestBridgeGetVersion(t *testing.T) {
	emu, _, _, env := newBridgeWorld(t)
	fn := slotAddr(t, emu, env, slotGetVersion)

	emu.SetX(0, env)
	emu.SetLR(retSentinel)
	if err := emu.Run(fn, retSentinel); err != nil {
		t.Fatal(err)
	}
	if got := emu.X(0); got != jni.Version1_6 {
		t.Errorf("GetVersion = %#x", got)
	}
}

func TestBridgeFindClass(t *testing.T) {
	emu, vm, _, env := newBridgeWorld(t)
	fn := slotAddr(t, emu, env, slotFindClass)

	namePtr := emu.Malloc(64)
	emu.MemWriteString(namePtr, "com/example/Main")

	emu.SetX(0, env)
	emu.SetX(1, namePtr)
	emu.SetLR(retSentinel)
	if err := emu.Run(fn, retSentinel); err != nil {
		t.Fatal(err)
	}
	ref := jni.Class(emu.X(0))
	if ref == 0 {
		t.Fatal("FindClass returned null")
	}
	if desc, err := vm.ClassSignature(ref); err != nil || desc != "Lcom/example/Main;" {
		t.Errorf("class descriptor = (%q, %v)", desc, err)
	}
}

// A variadic CallIntMethod from native code: arguments decoded from
// registers per the method's signature and delivered to the Go body.
func TestBridgeVariadicCall(t *testing.T) {
	emu, vm, _, env := newBridgeWorld(t)
	fn := slotAddr(t, emu, env, slotCallIntMethod)

	mid := vm.DefineMethod("Lcom/example/Calc;", "plus", "(II)I")
	vm.SetMethodBody(mid, func(args []jni.Jvalue) jni.Jvalue {
		return jni.IntValue(args[0].Int() + args[1].Int())
	})

	emu.SetX(0, env)
	emu.SetX(1, 0x2222)            // receiver
	emu.SetX(2, uint64(mid))       // methodID
	emu.SetX(3, 40)                // first int arg
	emu.SetX(4, 2)                 // second int arg
	emu.SetLR(retSentinel)
	if err := emu.Run(fn, retSentinel); err != nil {
		t.Fatal(err)
	}
	if got := int32(uint32(emu.X(0))); got != 42 {
		t.Errorf("CallIntMethod = %d, want 42", got)
	}
}

func TestBridgeRecordsCallerPC(t *testing.T) {
	emu, _, b, env := newBridgeWorld(t)
	fn := slotAddr(t, emu, env, slotGetVersion)

	emu.SetX(0, env)
	emu.SetLR(retSentinel)
	if err := emu.Run(fn, retSentinel); err != nil {
		t.Fatal(err)
	}
	if got := b.CallerPC(); got != retSentinel {
		t.Errorf("caller PC = %#x, want the native call site", got)
	}
}

func TestBridgeRegisterNatives(t *testing.T) {
	emu, vm, _, env := newBridgeWorld(t)
	fn := slotAddr(t, emu, env, slotRegisterNatives)

	clazz := vm.DefineClass("Lcom/example/Dyn;")

	namePtr := emu.Malloc(16)
	emu.MemWriteString(namePtr, "nine")
	sigPtr := emu.Malloc(16)
	emu.MemWriteString(sigPtr, "()I")
	table := emu.Malloc(24)
	emu.MemWriteU64(table, namePtr)
	emu.MemWriteU64(table+8, sigPtr)
	emu.MemWriteU64(table+16, 0x12340)

	emu.SetX(0, env)
	emu.SetX(1, uint64(clazz))
	emu.SetX(2, table)
	emu.SetX(3, 1)
	emu.SetLR(retSentinel)
	if err := emu.Run(fn, retSentinel); err != nil {
		t.Fatal(err)
	}
	if got := int32(uint32(emu.X(0))); got != jni.OK {
		t.Fatalf("RegisterNatives = %d", got)
	}

	mid := vm.DefineMethod("Lcom/example/Dyn;", "nine", "()I")
	if entry, ok := vm.BoundEntry(mid); !ok || entry != 0x12340 {
		t.Errorf("registered entry = (%#x, %v)", entry, ok)
	}
}
