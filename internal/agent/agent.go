// Package agent wires the pieces together: attach to the host VM,
// replace the JNI table, and answer native-method-bind events with
// synthesized trampolines.
package agent

import (
	"fmt"

	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/hostvm"
	"github.com/zboralski/indri/internal/interpose"
	"github.com/zboralski/indri/internal/jit"
	"github.com/zboralski/indri/internal/jni"
	glog "github.com/zboralski/indri/internal/log"
	"github.com/zboralski/indri/internal/modmap"
	"github.com/zboralski/indri/internal/refcodec"
	"github.com/zboralski/indri/internal/trace"
	"github.com/zboralski/indri/internal/trampoline"
)

// Agent holds the installed machinery for one VM.
type Agent struct {
	cfg  Config
	tool hostvm.Tool
	emu  *emulator.Emulator

	classifier *modmap.Classifier
	codec      refcodec.Codec
	interposer *interpose.Interposer
	synth      *trampoline.Synthesizer
	collector  *trace.Collector

	attached bool
}

// New creates an unattached agent.
func New(cfg Config, tool hostvm.Tool, emu *emulator.Emulator) *Agent {
	return &Agent{cfg: cfg, tool: tool, emu: emu, collector: trace.NewCollector()}
}

// Collector returns the agent's trace collector.
func (a *Agent) Collector() *trace.Collector { return a.collector }

// Interposer returns the installed table interposer (nil before attach).
func (a *Agent) Interposer() *interpose.Interposer { return a.interposer }

// Synthesizer returns the trampoline synthesizer (nil before attach).
func (a *Agent) Synthesizer() *trampoline.Synthesizer { return a.synth }

// Classifier returns the module classifier (nil before attach).
func (a *Agent) Classifier() *modmap.Classifier { return a.classifier }

// OnLoad is the load-time attach entry point; it delegates to OnAttach.
// Returns 0 on success, non-zero on failure. The options string is
// accepted for interface compatibility and ignored.
func (a *Agent) OnLoad(options string) int {
	return a.OnAttach(options)
}

// OnAttach is the dynamic attach entry point. Returns 0 on success,
// non-zero on failure, leaving no partial install behind.
func (a *Agent) OnAttach(options string) int {
	_ = options
	if err := a.Attach(); err != nil {
		if glog.L != nil {
			glog.L.Error("attach failed", glog.Err(err))
		}
		return 1
	}
	return 0
}

// Attach negotiates capabilities, replaces the JNI table, and installs
// the bind handler. Any failure unwinds what was installed.
func (a *Agent) Attach() error {
	if a.attached {
		return fmt.Errorf("already attached")
	}

	mask, err := a.cfg.Mask()
	if err != nil {
		return err
	}
	a.codec = refcodec.XORCodec{Mask: mask}

	err = a.tool.AddCapabilities(hostvm.Capabilities{
		NativeMethodBindEvents: true,
		JNITableReplacement:    true,
	})
	if err != nil {
		return fmt.Errorf("capabilities: %w", err)
	}

	a.classifier = modmap.New(&modmap.EmulatorProvider{Emu: a.emu}, a.cfg.SystemPrefixes, "")

	// Stash the original table, then install the overlay.
	host, err := a.tool.GetJNIFunctionTable()
	if err != nil {
		return fmt.Errorf("read JNI table: %w", err)
	}
	a.interposer = interpose.New(host, toolMeta{a.tool}, a.codec)
	a.interposer.Collector = a.collector
	a.interposer.IsSystem = a.classifier.IsSystem

	if err := a.tool.SetJNIFunctionTable(a.interposer.Table(a.cfg.Passthrough...)); err != nil {
		return fmt.Errorf("replace JNI table: %w", err)
	}

	// Trampoline machinery: helpers, backend, synthesizer.
	index := trampoline.NewReturnPCIndex()
	helpers, err := trampoline.InstallHelpers(a.emu, a.codec, index)
	if err != nil {
		a.restoreTable(host)
		return fmt.Errorf("install helpers: %w", err)
	}
	backend := jit.NewA64Backend(a.emu, emulator.ArenaBase, emulator.ArenaSize)
	a.synth = trampoline.New(backend, helpers, index)
	a.synth.Collector = a.collector

	if err := a.tool.SetNativeMethodBind(a.onBind); err != nil {
		a.restoreTable(host)
		return fmt.Errorf("bind callback: %w", err)
	}
	if err := a.tool.EnableNativeMethodBind(true); err != nil {
		a.restoreTable(host)
		return fmt.Errorf("enable bind event: %w", err)
	}

	if a.cfg.RegisterNatives {
		a.interposer.OnRegisterNatives = a.onRegisterNatives
	}

	a.attached = true
	if glog.L != nil {
		glog.L.Info("agent attached")
	}
	return nil
}

func (a *Agent) restoreTable(host *jni.Functions) {
	if err := a.tool.SetJNIFunctionTable(host); err != nil && glog.L != nil {
		glog.L.Error("restore JNI table", glog.Err(err))
	}
}

// onBind answers a native-method-bind event: classify the VM-chosen
// entry, synthesize, and publish the trampoline through the
// out-parameter. Every failure path leaves the binding untouched.
func (a *Agent) onBind(env jni.Env, method jni.MethodID, address uint64, newAddress *uint64) {
	name, descriptor, err := a.tool.MethodName(method)
	if err != nil {
		return
	}
	classDesc := ""
	if c, err := a.tool.MethodDeclaringClass(method); err == nil {
		classDesc, _ = a.tool.ClassSignature(c)
	}

	if !a.cfg.InstrumentAll {
		if a.classifier.IsSystem(address) {
			a.collector.Record(address, name, classDesc, trace.Bind, trace.JniSystem)
			return
		}
		if classDesc != "" && a.cfg.IsSystemClass(classDesc) {
			a.collector.Record(address, name, classDesc, trace.Bind, trace.JniSystem)
			return
		}
	}

	tramp, err := a.synth.MakeTrampoline(name, descriptor, address)
	if err != nil {
		return
	}
	*newAddress = tramp
	a.collector.Record(address, name, classDesc+"."+name+descriptor, trace.Bind)
}

// onRegisterNatives synthesizes trampolines for dynamically registered
// natives whose function pointer is not in a system module (or for all of
// them under InstrumentAll). Unlike onBind it does not apply the
// system-class prefix check and records no bind event.
func (a *Agent) onRegisterNatives(env jni.Env, clazz jni.Class, methods []jni.NativeMethod) []jni.NativeMethod {
	out := make([]jni.NativeMethod, len(methods))
	copy(out, methods)
	for i, m := range out {
		if !a.cfg.InstrumentAll && a.classifier.IsSystem(m.FnPtr) {
			continue
		}
		tramp, err := a.synth.MakeTrampoline(m.Name, m.Signature, m.FnPtr)
		if err != nil {
			continue
		}
		out[i].FnPtr = tramp
	}
	return out
}

// toolMeta adapts the tool interface to the interposer's metadata
// queries, the way the signature cache resolves a live method id.
type toolMeta struct {
	tool hostvm.Tool
}

func (m toolMeta) MethodInfo(id jni.MethodID) (string, string, string, error) {
	name, descriptor, err := m.tool.MethodName(id)
	if err != nil {
		return "", "", "", err
	}
	class := ""
	if c, err := m.tool.MethodDeclaringClass(id); err == nil {
		class, _ = m.tool.ClassSignature(c)
	}
	return name, descriptor, class, nil
}
