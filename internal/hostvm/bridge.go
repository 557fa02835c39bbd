package hostvm

import (
	"fmt"
	"math"

	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/jni"
	glog "github.com/zboralski/indri/internal/log"
	"github.com/zboralski/indri/internal/sig"
)

// JNI function indices (offset / 8 in the native interface struct).
const (
	slotGetVersion           = 4
	slotFindClass            = 6
	slotNewGlobalRef         = 21
	slotDeleteGlobalRef      = 22
	slotDeleteLocalRef       = 23
	slotIsSameObject         = 24
	slotNewLocalRef          = 25
	slotGetObjectClass       = 31
	slotGetMethodID          = 33
	slotCallObjectMethod     = 34
	slotCallIntMethod        = 49
	slotCallLongMethod       = 52
	slotCallVoidMethod       = 61
	slotGetFieldID           = 94
	slotGetStaticMethodID    = 113
	slotCallStaticIntMethod  = 129
	slotCallStaticVoidMethod = 141
	slotNewStringUTF         = 167
	slotGetStringUTFLength   = 168
	slotGetArrayLength       = 171
	slotRegisterNatives      = 215
	slotMonitorEnter         = 217
	slotMonitorExit          = 218
	slotExceptionCheck       = 228

	slotCount = 233
)

// bridgePage is where the env struct, vtable, and slot stubs live
// inside the stub region (the helper page owns the first bytes).
const bridgePage = emulator.StubBase + 0x10000

// Bridge exposes the VM's current JNI table to emulated native code: a
// JNIEnv* whose vtable slots are RET stubs with hooks that decode the
// C calling convention and dispatch into the Go table. The hot slots
// are decoded explicitly; everything else logs and returns zero.
type Bridge struct {
	emu *emulator.Emulator
	vm  *VM

	// Signature resolver for variadic decodes; the agent wires the
	// interposer's cache in here.
	Signature func(id jni.MethodID) (*sig.Signature, error)

	envBase    uint64
	vtableBase uint64
	stubBase   uint64

	lastCaller uint64
}

// NewBridge creates a bridge for a VM over an emulator.
func NewBridge(emu *emulator.Emulator, vm *VM) *Bridge {
	return &Bridge{emu: emu, vm: vm}
}

// Env returns the JNIEnv* value native code receives.
func (b *Bridge) Env() jni.Env { return jni.Env(b.envBase) }

// CallerPC reports the native call site of the JNI callback currently
// being serviced. The interposer classifies with this.
func (b *Bridge) CallerPC() uint64 { return b.lastCaller }

// Install writes the env struct, vtable, and slot stubs into emulator
// memory and hooks every slot. Returns the JNIEnv* address.
func (b *Bridge) Install() (uint64, error) {
	b.envBase = bridgePage
	b.vtableBase = bridgePage + 0x1000
	b.stubBase = bridgePage + 0x2000

	for i := 0; i < slotCount; i++ {
		stubAddr := b.stubBase + uint64(i*4)
		if err := b.emu.MemWrite(stubAddr, emulator.RetInsn); err != nil {
			return 0, fmt.Errorf("write slot stub %d: %w", i, err)
		}
		if err := b.emu.MemWriteU64(b.vtableBase+uint64(i*8), stubAddr); err != nil {
			return 0, fmt.Errorf("write vtable entry %d: %w", i, err)
		}
		b.installHandler(i, stubAddr)
	}

	if err := b.emu.MemWriteU64(b.envBase, b.vtableBase); err != nil {
		return 0, fmt.Errorf("write env struct: %w", err)
	}
	return b.envBase, nil
}

func (b *Bridge) installHandler(index int, stubAddr uint64) {
	switch index {
	case slotGetVersion:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(uint32(b.table().GetVersion(b.Env()))))
		})
	case slotFindClass:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			name, _ := e.MemReadString(e.X(1), 256)
			e.SetX(0, uint64(b.table().FindClass(b.Env(), name)))
		})
	case slotGetMethodID:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			name, _ := e.MemReadString(e.X(2), 256)
			sigStr, _ := e.MemReadString(e.X(3), 256)
			e.SetX(0, uint64(b.table().GetMethodID(b.Env(), jni.Class(e.X(1)), name, sigStr)))
		})
	case slotGetStaticMethodID:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			name, _ := e.MemReadString(e.X(2), 256)
			sigStr, _ := e.MemReadString(e.X(3), 256)
			e.SetX(0, uint64(b.table().GetStaticMethodID(b.Env(), jni.Class(e.X(1)), name, sigStr)))
		})
	case slotGetFieldID:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			name, _ := e.MemReadString(e.X(2), 256)
			sigStr, _ := e.MemReadString(e.X(3), 256)
			e.SetX(0, uint64(b.table().GetFieldID(b.Env(), jni.Class(e.X(1)), name, sigStr)))
		})
	case slotGetObjectClass:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(b.table().GetObjectClass(b.Env(), jni.Ref(e.X(1)))))
		})
	case slotNewStringUTF:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			s, _ := e.MemReadString(e.X(1), 4096)
			e.SetX(0, uint64(b.table().NewStringUTF(b.Env(), s)))
		})
	case slotGetStringUTFLength:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(uint32(b.table().GetStringUTFLength(b.Env(), jni.Ref(e.X(1))))))
		})
	case slotNewGlobalRef:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(b.table().NewGlobalRef(b.Env(), jni.Ref(e.X(1)))))
		})
	case slotNewLocalRef:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(b.table().NewLocalRef(b.Env(), jni.Ref(e.X(1)))))
		})
	case slotDeleteGlobalRef:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			b.table().DeleteGlobalRef(b.Env(), jni.Ref(e.X(1)))
		})
	case slotDeleteLocalRef:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			b.table().DeleteLocalRef(b.Env(), jni.Ref(e.X(1)))
		})
	case slotIsSameObject:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(b.table().IsSameObject(b.Env(), jni.Ref(e.X(1)), jni.Ref(e.X(2)))))
		})
	case slotCallIntMethod:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			mid := jni.MethodID(e.X(2))
			args := b.decodeVariadic(e, mid)
			e.SetX(0, uint64(uint32(b.table().CallIntMethodV(b.Env(), jni.Ref(e.X(1)), mid, args))))
		})
	case slotCallLongMethod:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			mid := jni.MethodID(e.X(2))
			args := b.decodeVariadic(e, mid)
			e.SetX(0, uint64(b.table().CallLongMethodV(b.Env(), jni.Ref(e.X(1)), mid, args)))
		})
	case slotCallObjectMethod:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			mid := jni.MethodID(e.X(2))
			args := b.decodeVariadic(e, mid)
			e.SetX(0, uint64(b.table().CallObjectMethodV(b.Env(), jni.Ref(e.X(1)), mid, args)))
		})
	case slotCallVoidMethod:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			mid := jni.MethodID(e.X(2))
			args := b.decodeVariadic(e, mid)
			b.table().CallVoidMethodV(b.Env(), jni.Ref(e.X(1)), mid, args)
		})
	case slotCallStaticIntMethod:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			mid := jni.MethodID(e.X(2))
			args := b.decodeVariadic(e, mid)
			e.SetX(0, uint64(uint32(b.table().CallStaticIntMethodV(b.Env(), jni.Ref(e.X(1)), mid, args))))
		})
	case slotCallStaticVoidMethod:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			mid := jni.MethodID(e.X(2))
			args := b.decodeVariadic(e, mid)
			b.table().CallStaticVoidMethodV(b.Env(), jni.Ref(e.X(1)), mid, args)
		})
	case slotGetArrayLength:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(uint32(b.table().GetArrayLength(b.Env(), jni.Ref(e.X(1))))))
		})
	case slotRegisterNatives:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			methods := b.readNativeMethods(e, e.X(2), int(int32(e.X(3))))
			e.SetX(0, uint64(uint32(b.table().RegisterNatives(b.Env(), jni.Class(e.X(1)), methods))))
		})
	case slotMonitorEnter:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(uint32(b.table().MonitorEnter(b.Env(), jni.Ref(e.X(1))))))
		})
	case slotMonitorExit:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(uint32(b.table().MonitorExit(b.Env(), jni.Ref(e.X(1))))))
		})
	case slotExceptionCheck:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			e.SetX(0, uint64(b.table().ExceptionCheck(b.Env())))
		})
	default:
		b.hook(stubAddr, func(e *emulator.Emulator) {
			if glog.L != nil {
				glog.L.Trace(e.LR(), "jni-bridge", fmt.Sprintf("slot%d", index), "generic")
			}
			e.SetX(0, 0)
		})
	}
}

// hook wraps a slot handler with the shared entry bookkeeping: record
// the native caller, run, return to it.
func (b *Bridge) hook(stubAddr uint64, fn func(e *emulator.Emulator)) {
	b.emu.HookAddress(stubAddr, func(e *emulator.Emulator) bool {
		b.lastCaller = e.LR()
		fn(e)
		emulator.ReturnFromStub(e)
		return false
	})
}

func (b *Bridge) table() *jni.Functions {
	return b.vm.Table()
}

// decodeVariadic reads a variadic call's arguments out of the registers
// per the method's signature: integer-class from x3 up, floating-point
// from d0 up, with C promotions applied.
func (b *Bridge) decodeVariadic(e *emulator.Emulator, mid jni.MethodID) jni.VaList {
	if b.Signature == nil {
		return nil
	}
	s, err := b.Signature(mid)
	if err != nil {
		if glog.L != nil {
			glog.L.Error("variadic decode without signature", glog.Err(err))
		}
		return nil
	}
	var out jni.VaList
	intReg, fpReg := 3, 0
	for _, t := range s.Args {
		switch {
		case t.IsFloat():
			// Already promoted to double on the variadic path.
			out = append(out, math.Float64frombits(e.D(fpReg)))
			fpReg++
		case t == sig.Object:
			out = append(out, jni.Ref(e.X(intReg)))
			intReg++
		case t == sig.Long:
			out = append(out, int64(e.X(intReg)))
			intReg++
		default:
			out = append(out, int32(uint32(e.X(intReg))))
			intReg++
		}
	}
	return out
}

// readNativeMethods reads a JNINativeMethod[] (three pointers per entry)
// out of emulated memory.
func (b *Bridge) readNativeMethods(e *emulator.Emulator, addr uint64, n int) []jni.NativeMethod {
	out := make([]jni.NativeMethod, 0, n)
	for i := 0; i < n; i++ {
		base := addr + uint64(i*24)
		namePtr, _ := e.MemReadU64(base)
		sigPtr, _ := e.MemReadU64(base + 8)
		fnPtr, _ := e.MemReadU64(base + 16)
		name, _ := e.MemReadString(namePtr, 256)
		sigStr, _ := e.MemReadString(sigPtr, 256)
		out = append(out, jni.NativeMethod{Name: name, Signature: sigStr, FnPtr: fnPtr})
	}
	return out
}
