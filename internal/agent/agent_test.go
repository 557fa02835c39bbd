package agent

import (
	"testing"

	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/hostvm"
	"github.com/zboralski/indri/internal/jni"
)

const userLib = "/data/app/libdemo.so"

// origin addresses for fake native code, inside the stub region but
// registered as a user module so the classifier instruments them.
const origBase = emulator.StubBase + 0x8000

func newWorld(t *testing.T, cfg Config) (*Agent, *hostvm.VM, *emulator.Emulator) {
	t.Helper()
	emu, err := emulator.New()
	if err != nil {
		t.Fatalf("create emulator: %v", err)
	}
	t.Cleanup(func() { emu.Close() })
	emu.RegisterModule(userLib, origBase, origBase+0x1000)

	vm := hostvm.NewVM()
	a := New(cfg, vm, emu)
	return a, vm, emu
}

// installOriginal plants a fake native body at addr.
func installOriginal(t *testing.T, emu *emulator.Emulator, addr uint64, fn func(e *emulator.Emulator)) {
	t.Helper()
	if err := emu.MemWrite(addr, emulator.RetInsn); err != nil {
		t.Fatal(err)
	}
	emu.HookAddress(addr, func(e *emulator.Emulator) bool {
		fn(e)
		emulator.ReturnFromStub(e)
		return false
	})
}

func TestAttachSucceeds(t *testing.T) {
	a, vm, _ := newWorld(t, DefaultConfig())
	if status := a.OnLoad(""); status != 0 {
		t.Fatalf("OnLoad = %d, want 0", status)
	}

	// The VM's dispatch table is now the overlay, every slot live.
	for _, s := range vm.Table().Slots() {
		if s.IsNil() {
			t.Errorf("installed overlay slot %s is nil", s.Name)
		}
	}
	if vm.Table() == vm.HostTable() {
		t.Error("table was not replaced")
	}
}

func TestAttachTwiceFails(t *testing.T) {
	a, _, _ := newWorld(t, DefaultConfig())
	if a.OnAttach("") != 0 {
		t.Fatal("first attach failed")
	}
	if a.OnAttach("") == 0 {
		t.Error("second attach should fail")
	}
}

func TestBindInstallsTrampoline(t *testing.T) {
	a, vm, emu := newWorld(t, DefaultConfig())
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	orig := uint64(origBase)
	installOriginal(t, emu, orig, func(e *emulator.Emulator) {
		e.SetX(0, e.X(2)*2)
	})

	mid := vm.DefineMethod("Lcom/example/Calc;", "twice", "(I)I")
	entry := vm.BindNative(mid, orig)
	if entry == orig {
		t.Fatal("binding left untouched; expected a trampoline")
	}

	// The replacement runs the original through the stand-in.
	emu.SetSP(emulator.StackBase + emulator.StackSize - 0x1000)
	emu.SetX(0, 0x1111)
	emu.SetX(1, 0x2222)
	emu.SetX(2, 21)
	sentinel := uint64(emulator.StubBase + 0xFF00)
	emu.SetLR(sentinel)
	if err := emu.Run(entry, sentinel); err != nil {
		t.Fatalf("run trampoline: %v", err)
	}
	if got := emu.X(0); got != 42 {
		t.Errorf("trampoline returned %d, want 42", got)
	}
}

func TestBindSkipsSystemModule(t *testing.T) {
	cfg := DefaultConfig()
	a, vm, emu := newWorld(t, cfg)
	emu.RegisterModule("/system/lib64/libart.so", 0x40000000, 0x40001000)
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	mid := vm.DefineMethod("Lcom/example/Sys;", "id", "(I)I")
	entry := vm.BindNative(mid, 0x40000800)
	if entry != 0x40000800 {
		t.Error("system binding should keep the VM's direct entry")
	}
}

func TestBindSkipsSystemClass(t *testing.T) {
	a, vm, _ := newWorld(t, DefaultConfig())
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	mid := vm.DefineMethod("Ljava/lang/String;", "intern", "()Ljava/lang/String;")
	entry := vm.BindNative(mid, origBase+0x10)
	if entry != origBase+0x10 {
		t.Error("system-class binding should keep the VM's direct entry")
	}
}

func TestInstrumentAllOverridesClassification(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InstrumentAll = true
	a, vm, emu := newWorld(t, cfg)
	emu.RegisterModule("/system/lib64/libart.so", 0x40000000, 0x40001000)
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	mid := vm.DefineMethod("Ljava/lang/String;", "intern", "()Ljava/lang/String;")
	entry := vm.BindNative(mid, 0x40000800)
	if entry == 0x40000800 {
		t.Error("instrument_all should synthesize even for system bindings")
	}
}

func TestUnparseableDescriptorKeepsBinding(t *testing.T) {
	a, vm, _ := newWorld(t, DefaultConfig())
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	mid := vm.DefineMethod("Lcom/example/Bad;", "f", "(X)V")
	entry := vm.BindNative(mid, origBase+0x20)
	if entry != origBase+0x20 {
		t.Error("unparseable descriptor must leave the binding untouched")
	}
}

// Replacement-table callbacks reach the host through the overlay: an
// end-to-end CallIntMethod against a method body registered in the VM.
func TestOverlayCallReachesHost(t *testing.T) {
	a, vm, _ := newWorld(t, DefaultConfig())
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	mid := vm.DefineMethod("Lcom/example/Calc;", "plus", "(II)I")
	vm.SetMethodBody(mid, func(args []jni.Jvalue) jni.Jvalue {
		return jni.IntValue(args[0].Int() + args[1].Int())
	})

	got := vm.Table().CallIntMethod(hostvm.DefaultEnv, 0, mid, 40, 2)
	if got != 42 {
		t.Errorf("CallIntMethod = %d, want 42", got)
	}
}

func TestRegisterNativesSynthesis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegisterNatives = true
	a, vm, emu := newWorld(t, cfg)
	if a.OnAttach("") != 0 {
		t.Fatal("attach failed")
	}

	orig := uint64(origBase + 0x40)
	installOriginal(t, emu, orig, func(e *emulator.Emulator) {
		e.SetX(0, 9)
	})

	clazz := vm.DefineClass("Lcom/example/Dyn;")
	vm.Table().RegisterNatives(hostvm.DefaultEnv, clazz, []jni.NativeMethod{
		{Name: "nine", Signature: "()I", FnPtr: orig},
	})

	mid := vm.DefineMethod("Lcom/example/Dyn;", "nine", "()I")
	entry, ok := vm.BoundEntry(mid)
	if !ok {
		t.Fatal("RegisterNatives did not record a binding")
	}
	if entry == orig {
		t.Error("dynamically registered native was not trampolined")
	}
}
