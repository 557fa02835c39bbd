package emulator

import "testing"

func TestMemoryRoundTrip(t *testing.T) {
	emu, err := New()
	if err != nil {
		t.Fatalf("create emulator: %v", err)
	}
	defer emu.Close()

	if err := emu.MemWriteU64(HeapBase, 0xDEADBEEFCAFEF00D); err != nil {
		t.Fatal(err)
	}
	v, err := emu.MemReadU64(HeapBase)
	if err != nil || v != 0xDEADBEEFCAFEF00D {
		t.Errorf("read back %#x, %v", v, err)
	}

	if err := emu.MemWriteString(HeapBase+0x100, "indri"); err != nil {
		t.Fatal(err)
	}
	s, err := emu.MemReadString(HeapBase+0x100, 32)
	if err != nil || s != "indri" {
		t.Errorf("read back %q, %v", s, err)
	}
}

func TestMallocAligned(t *testing.T) {
	emu, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer emu.Close()

	a := emu.Malloc(1)
	b := emu.Malloc(24)
	if a%16 != 0 || b%16 != 0 {
		t.Errorf("allocations not 16-aligned: %#x, %#x", a, b)
	}
	if b <= a {
		t.Error("allocator not advancing")
	}
}

func TestModuleRegistry(t *testing.T) {
	emu, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer emu.Close()

	emu.RegisterModule("/data/app/liba.so", 0x40000000, 0x40010000)
	emu.RegisterModule("/system/lib64/libc.so", 0x50000000, 0x50010000)
	mods := emu.Modules()
	if len(mods) != 2 {
		t.Fatalf("%d modules", len(mods))
	}
	if mods[0].Path != "/data/app/liba.so" || mods[0].End != 0x40010000 {
		t.Errorf("module 0: %+v", mods[0])
	}
}

func TestRunStubWithHook(t *testing.T) {
	emu, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer emu.Close()

	addr := uint64(StubBase + 0x100)
	if err := emu.MemWrite(addr, RetInsn); err != nil {
		t.Fatal(err)
	}
	emu.HookAddress(addr, func(e *Emulator) bool {
		e.SetX(0, e.X(1)+e.X(2))
		ReturnFromStub(e)
		return false
	})

	sentinel := uint64(StubBase + 0x200)
	emu.SetX(1, 40)
	emu.SetX(2, 2)
	emu.SetLR(sentinel)
	if err := emu.Run(addr, sentinel); err != nil {
		t.Fatal(err)
	}
	if got := emu.X(0); got != 42 {
		t.Errorf("stub returned %d", got)
	}
}
