package trampoline

import (
	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/jit"
	glog "github.com/zboralski/indri/internal/log"
	"github.com/zboralski/indri/internal/refcodec"
)

// Runtime helpers exported to emitted code. Each is a RET stub in the
// emulator's stub region with an address hook that does the work in Go,
// the same mechanism the host-VM stubs use. The emitted template calls
// them by absolute address.

// Stub slot offsets within the helper page.
const (
	helperWrapRef = iota * 4
	helperUnwrapRef
	helperEnterUserNativeCode
	helperLeaveUserNativeCode
	helperLookupNativeFunc
)

// helperPage is where the five helper stubs live inside the stub region.
const helperPage = emulator.StubBase + 0x0

// InstallHelpers writes the helper stubs and wires their hooks. codec is
// consulted by wrap/unwrap; index by lookup_native_func. The returned
// addresses are what templates embed.
func InstallHelpers(emu *emulator.Emulator, codec refcodec.Codec, index *ReturnPCIndex) (jit.Helpers, error) {
	h := jit.Helpers{
		WrapRef:             helperPage + helperWrapRef,
		UnwrapRef:           helperPage + helperUnwrapRef,
		EnterUserNativeCode: helperPage + helperEnterUserNativeCode,
		LeaveUserNativeCode: helperPage + helperLeaveUserNativeCode,
		LookupNativeFunc:    helperPage + helperLookupNativeFunc,
	}

	stubs := []uint64{h.WrapRef, h.UnwrapRef, h.EnterUserNativeCode, h.LeaveUserNativeCode, h.LookupNativeFunc}
	for _, addr := range stubs {
		if err := emu.MemWrite(addr, emulator.RetInsn); err != nil {
			return jit.Helpers{}, err
		}
	}

	emu.HookAddress(h.WrapRef, func(e *emulator.Emulator) bool {
		e.SetX(0, codec.Wrap(e.X(0)))
		emulator.ReturnFromStub(e)
		return false
	})

	emu.HookAddress(h.UnwrapRef, func(e *emulator.Emulator) bool {
		e.SetX(0, codec.Unwrap(e.X(0)))
		emulator.ReturnFromStub(e)
		return false
	})

	emu.HookAddress(h.EnterUserNativeCode, func(e *emulator.Emulator) bool {
		emulator.ReturnFromStub(e)
		return false
	})

	emu.HookAddress(h.LeaveUserNativeCode, func(e *emulator.Emulator) bool {
		emulator.ReturnFromStub(e)
		return false
	})

	// lookup_native_func reads its caller's return PC, which lies inside
	// the trampoline copy that called it, and answers with that copy's
	// original native entry point.
	emu.HookAddress(h.LookupNativeFunc, func(e *emulator.Emulator) bool {
		pc := e.LR()
		if b, ok := index.Resolve(pc); ok {
			e.SetX(0, b.OriginalEntry)
		} else {
			if glog.L != nil {
				glog.L.Error("no binding for return PC", glog.Addr(pc))
			}
			e.SetX(0, 0)
		}
		emulator.ReturnFromStub(e)
		return false
	})

	return h, nil
}
