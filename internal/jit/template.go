package jit

import (
	"fmt"

	"github.com/zboralski/indri/internal/sig"
)

// Template code shape, per signature:
//
//	prologue, spill every argument register to the frame
//	enter_user_native_code(env)
//	each pointer argument except env = wrap_ref(arg)
//	target = lookup_native_func()        // resolves via caller return PC
//	result = target(args...)
//	reference result = unwrap_ref(result)
//	leave_user_native_code(env)
//	return result
//
// Arguments follow AAPCS64: integer and pointer arguments in x0-x7,
// floating-point in d0-d7. Signatures needing stack arguments are a
// codegen failure and the caller keeps the VM's direct binding.

const maxIntArgs = 8
const maxFloatArgs = 8

// EmitTemplateCode assembles the template body for a signature. The
// returned bytes are position-independent under bitwise copy: helper
// addresses are absolute immediates and nothing is PC-relative.
func EmitTemplateCode(s *sig.Signature, h Helpers) ([]byte, error) {
	if len(s.Args) == 0 || s.Args[0] != sig.Object {
		return nil, fmt.Errorf("template signature must start with the env pointer")
	}

	// Assign argument registers in declaration order.
	type slot struct {
		arg   int  // index into s.Args
		reg   int  // xN or dN
		float bool // register file
		off   uint32
	}
	var slots []slot
	nInt, nFloat := 0, 0
	for k, t := range s.Args {
		if t.IsFloat() {
			slots = append(slots, slot{arg: k, reg: nFloat, float: true})
			nFloat++
		} else {
			slots = append(slots, slot{arg: k, reg: nInt})
			nInt++
		}
	}
	if nInt > maxIntArgs {
		return nil, fmt.Errorf("%d integer arguments exceed the %d register slots", nInt, maxIntArgs)
	}
	if nFloat > maxFloatArgs {
		return nil, fmt.Errorf("%d float arguments exceed the %d register slots", nFloat, maxFloatArgs)
	}

	// Frame: one 8-byte slot per argument plus target and result.
	for i := range slots {
		slots[i].off = uint32(8 * i)
	}
	targetOff := uint32(8 * len(slots))
	resultOff := targetOff + 8
	frame := (resultOff + 8 + 15) & ^uint32(15)

	envOff := slots[0].off

	var a asm
	a.pushFrame()
	a.movFPSP()
	a.subSP(frame)

	// Spill arguments before any helper can clobber their registers.
	for _, sl := range slots {
		if sl.float {
			a.strD(sl.reg, sl.off)
		} else {
			a.strX(sl.reg, sl.off)
		}
	}

	// enter_user_native_code(env)
	a.ldrX(0, envOff)
	a.callAbs(h.EnterUserNativeCode)

	// Wrap every pointer argument other than env.
	for _, sl := range slots {
		if sl.arg == 0 || s.Args[sl.arg] != sig.Object {
			continue
		}
		a.ldrX(0, sl.off)
		a.callAbs(h.WrapRef)
		a.strX(0, sl.off)
	}

	// target = lookup_native_func(); the helper reads our return PC to
	// identify which copy of this template is running.
	a.callAbs(h.LookupNativeFunc)
	a.strX(0, targetOff)

	// Reload arguments and call the original native function.
	for _, sl := range slots {
		if sl.float {
			a.ldrD(sl.reg, sl.off)
		} else {
			a.ldrX(sl.reg, sl.off)
		}
	}
	a.ldrX(regScratch, targetOff)
	a.blr(regScratch)

	// Park the result across the remaining helper calls.
	hasResult := s.Return != sig.Void
	floatResult := s.Return.IsFloat()
	if hasResult {
		if floatResult {
			a.strD(0, resultOff)
		} else {
			a.strX(0, resultOff)
		}
	}

	if s.Return == sig.Object {
		a.ldrX(0, resultOff)
		a.callAbs(h.UnwrapRef)
		a.strX(0, resultOff)
	}

	// leave_user_native_code(env)
	a.ldrX(0, envOff)
	a.callAbs(h.LeaveUserNativeCode)

	if hasResult {
		if floatResult {
			a.ldrD(0, resultOff)
		} else {
			a.ldrX(0, resultOff)
		}
	}

	a.addSP(frame)
	a.popFrame()
	a.ret()

	return a.buf, nil
}
