package hostvm

import (
	"testing"

	"github.com/zboralski/indri/internal/jni"
)

func TestHostTableFullyPopulated(t *testing.T) {
	vm := NewVM()
	for _, s := range vm.HostTable().Slots() {
		if s.IsNil() {
			t.Errorf("host slot %s is nil", s.Name)
		}
	}
}

func TestCapabilitiesGateBindCallback(t *testing.T) {
	vm := NewVM()
	if err := vm.SetNativeMethodBind(func(jni.Env, jni.MethodID, uint64, *uint64) {}); err == nil {
		t.Error("bind callback accepted without capability")
	}
	if err := vm.AddCapabilities(Capabilities{NativeMethodBindEvents: true}); err != nil {
		t.Fatal(err)
	}
	if err := vm.SetNativeMethodBind(func(jni.Env, jni.MethodID, uint64, *uint64) {}); err != nil {
		t.Errorf("bind callback rejected: %v", err)
	}
	if err := vm.EnableNativeMethodBind(true); err != nil {
		t.Errorf("enable rejected: %v", err)
	}
}

func TestTableReplacementValidation(t *testing.T) {
	vm := NewVM()
	if err := vm.AddCapabilities(Capabilities{JNITableReplacement: true}); err != nil {
		t.Fatal(err)
	}

	if err := vm.SetJNIFunctionTable(nil); err == nil {
		t.Error("nil table accepted")
	}
	if err := vm.SetJNIFunctionTable(&jni.Functions{}); err == nil {
		t.Error("table with nil slots accepted")
	}

	replacement, err := vm.GetJNIFunctionTable()
	if err != nil {
		t.Fatal(err)
	}
	if err := vm.SetJNIFunctionTable(replacement); err != nil {
		t.Errorf("valid replacement rejected: %v", err)
	}
	if vm.Table() != replacement {
		t.Error("replacement not installed")
	}
}

func TestGetTableReturnsCopy(t *testing.T) {
	vm := NewVM()
	stash, err := vm.GetJNIFunctionTable()
	if err != nil {
		t.Fatal(err)
	}
	if stash == vm.HostTable() {
		t.Error("stash aliases the live table")
	}
	// Mutating the copy leaves the VM's table alone.
	stash.GetVersion = nil
	if vm.HostTable().GetVersion == nil {
		t.Error("stash mutation reached the live table")
	}
}

func TestBindNativeDeliversEvent(t *testing.T) {
	vm := NewVM()
	vm.AddCapabilities(Capabilities{NativeMethodBindEvents: true})

	var sawMethod jni.MethodID
	var sawAddress uint64
	vm.SetNativeMethodBind(func(env jni.Env, m jni.MethodID, addr uint64, out *uint64) {
		sawMethod = m
		sawAddress = addr
		*out = 0xCAFE
	})
	vm.EnableNativeMethodBind(true)

	mid := vm.DefineMethod("Lcom/example/T;", "f", "(I)I")
	entry := vm.BindNative(mid, 0x1234)
	if sawMethod != mid || sawAddress != 0x1234 {
		t.Errorf("event saw (%#x, %#x)", uint64(sawMethod), sawAddress)
	}
	if entry != 0xCAFE {
		t.Errorf("effective entry %#x, want replacement", entry)
	}
	if got, _ := vm.BoundEntry(mid); got != 0xCAFE {
		t.Errorf("recorded entry %#x", got)
	}
}

func TestBindNativeDisabledKeepsEntry(t *testing.T) {
	vm := NewVM()
	vm.AddCapabilities(Capabilities{NativeMethodBindEvents: true})
	vm.SetNativeMethodBind(func(env jni.Env, m jni.MethodID, addr uint64, out *uint64) {
		*out = 0xCAFE
	})
	// Never enabled: binding stays direct.
	mid := vm.DefineMethod("Lcom/example/T;", "g", "()V")
	if entry := vm.BindNative(mid, 0x5678); entry != 0x5678 {
		t.Errorf("disabled event still replaced the entry: %#x", entry)
	}
}

func TestMethodMetadata(t *testing.T) {
	vm := NewVM()
	mid := vm.DefineMethod("Lcom/example/Calc;", "plus", "(II)I")

	name, desc, err := vm.MethodName(mid)
	if err != nil || name != "plus" || desc != "(II)I" {
		t.Errorf("MethodName = (%q, %q, %v)", name, desc, err)
	}
	c, err := vm.MethodDeclaringClass(mid)
	if err != nil {
		t.Fatal(err)
	}
	if sig, err := vm.ClassSignature(c); err != nil || sig != "Lcom/example/Calc;" {
		t.Errorf("ClassSignature = (%q, %v)", sig, err)
	}
	if _, _, err := vm.MethodName(jni.MethodID(0xBAD)); err == nil {
		t.Error("unknown method id resolved")
	}
}

func TestHostCallDispatchesBody(t *testing.T) {
	vm := NewVM()
	mid := vm.DefineMethod("Lcom/example/Calc;", "plus", "(II)I")
	vm.SetMethodBody(mid, func(args []jni.Jvalue) jni.Jvalue {
		return jni.IntValue(args[0].Int() + args[1].Int())
	})
	got := vm.HostTable().CallIntMethodA(DefaultEnv, 0, mid, []jni.Jvalue{jni.IntValue(2), jni.IntValue(3)})
	if got != 5 {
		t.Errorf("CallIntMethodA = %d, want 5", got)
	}
}
