// Package interpose builds the replacement JNI function table. Every
// wrapper unwraps reference-typed arguments, forwards to the stashed
// host table, and wraps reference-typed results. Variadic call forms are
// walked against the method's parsed signature and forwarded to the
// host's A-suffixed slot, bypassing the variadic path entirely.
package interpose

import (
	"fmt"
	"sync"

	glog "github.com/zboralski/indri/internal/log"
	"github.com/zboralski/indri/internal/jni"
	"github.com/zboralski/indri/internal/refcodec"
	"github.com/zboralski/indri/internal/sig"
	"github.com/zboralski/indri/internal/trace"
)

// MethodMeta resolves a method id to its metadata. Backed by the tool
// interface in production and by fixtures in tests. An error here is an
// assertion failure for the affected call: a live method id must have
// retrievable metadata.
type MethodMeta interface {
	MethodInfo(id jni.MethodID) (name, descriptor, class string, err error)
}

// Interposer holds the stashed host table and the state shared by all
// wrappers: the reference codec, the caller classifier, and the
// methodID signature cache.
type Interposer struct {
	host  *jni.Functions
	meta  MethodMeta
	codec refcodec.Codec

	// IsSystem classifies a caller PC; system callers bypass the codec.
	// Nil means every caller is user code.
	IsSystem func(pc uint64) bool

	// CallerPC reports the native caller's return PC for the current
	// call. Wired to the env bridge under emulation; nil means unknown.
	CallerPC func() uint64

	// Collector receives one event per boundary crossing when set.
	Collector *trace.Collector

	// OnRegisterNatives, when set, may rewrite the method table of a
	// RegisterNatives call before it reaches the VM. The agent uses it
	// to synthesize trampolines for dynamically registered natives.
	OnRegisterNatives func(env jni.Env, clazz jni.Class, methods []jni.NativeMethod) []jni.NativeMethod

	mu   sync.Mutex // guards sigs only; never held across a host upcall
	sigs map[jni.MethodID]*sig.Signature
}

// New creates an interposer over the stashed host table.
func New(host *jni.Functions, meta MethodMeta, codec refcodec.Codec) *Interposer {
	if codec == nil {
		codec = refcodec.Identity
	}
	return &Interposer{
		host:  host,
		meta:  meta,
		codec: codec,
		sigs:  make(map[jni.MethodID]*sig.Signature),
	}
}

// Host returns the stashed original table.
func (ip *Interposer) Host() *jni.Functions { return ip.host }

// Table builds the replacement table: every slot starts as the host's
// (identity contract), then the intercepted slots are overwritten.
// passthrough lists slot names to revert to the host afterwards.
func (ip *Interposer) Table(passthrough ...string) *jni.Functions {
	t := *ip.host
	ip.install(&t)
	for _, name := range passthrough {
		t.SetSlot(name, ip.host.SlotValue(name))
	}
	return &t
}

// Signature returns the parsed signature for a method id, consulting the
// cache first. Parsing happens on first sight; entries live forever
// because the VM does not recycle method ids.
func (ip *Interposer) Signature(id jni.MethodID) (*sig.Signature, error) {
	if id == 0 {
		return nil, fmt.Errorf("nil methodID")
	}
	ip.mu.Lock()
	s, ok := ip.sigs[id]
	ip.mu.Unlock()
	if ok {
		return s, nil
	}

	name, desc, class, err := ip.meta.MethodInfo(id)
	if err != nil {
		return nil, fmt.Errorf("method metadata for %#x: %w", uint64(id), err)
	}
	parsed, ok := sig.Parse(desc, 0)
	if !ok {
		return nil, fmt.Errorf("unparseable descriptor %q", desc)
	}
	parsed.Name = name
	parsed.Class = class
	s = &parsed

	ip.mu.Lock()
	if prev, ok := ip.sigs[id]; ok {
		s = prev
	} else {
		ip.sigs[id] = s
	}
	ip.mu.Unlock()
	return s, nil
}

// refWrapper applies the codec unless the caller was classified system.
// One is built at the top of every wrapper, from the caller PC observed
// at entry.
type refWrapper struct {
	system bool
	codec  refcodec.Codec
}

func (w refWrapper) unwrap(r jni.Ref) jni.Ref {
	if w.system {
		return r
	}
	return jni.Ref(w.codec.Unwrap(uint64(r)))
}

func (w refWrapper) wrap(r jni.Ref) jni.Ref {
	if w.system {
		return r
	}
	return jni.Ref(w.codec.Wrap(uint64(r)))
}

// begin classifies the caller and records the boundary event. mid is 0
// for wrappers that have no method id.
func (ip *Interposer) begin(name string, mid jni.MethodID) refWrapper {
	var pc uint64
	if ip.CallerPC != nil {
		pc = ip.CallerPC()
	}
	w := refWrapper{codec: ip.codec}
	if ip.IsSystem != nil {
		w.system = ip.IsSystem(pc)
	}

	detail := ""
	if mid != 0 {
		if s, err := ip.Signature(mid); err == nil {
			detail = s.String()
		}
	}
	if ip.Collector != nil {
		tag := trace.JniCall
		if w.system {
			tag = trace.JniSystem
		}
		ip.Collector.Record(pc, name, detail, tag)
	}
	if glog.L != nil {
		glog.L.Trace(pc, "jni", name, detail)
	}
	return w
}

// pack walks the variadic argument list against the method's signature,
// applying C promotion rules, and produces the packed jvalue array the
// host's A-form expects. Reference arguments go through unwrap.
func (ip *Interposer) pack(w refWrapper, mid jni.MethodID, args []any) []jni.Jvalue {
	s, err := ip.Signature(mid)
	if err != nil {
		ip.assertFail("pack", err)
		return nil
	}
	out := make([]jni.Jvalue, 0, len(s.Args))
	for i, t := range s.Args {
		if i >= len(args) {
			ip.assertFail("pack", fmt.Errorf("%s: %d args, signature wants %d",
				s, len(args), len(s.Args)))
			break
		}
		out = append(out, ip.promote(w, t, args[i]))
	}
	return out
}

// unwrapPacked rewrites a caller-supplied jvalue array, unwrapping the
// reference entries per the signature. Primitive entries copy through.
func (ip *Interposer) unwrapPacked(w refWrapper, mid jni.MethodID, args []jni.Jvalue) []jni.Jvalue {
	s, err := ip.Signature(mid)
	if err != nil {
		ip.assertFail("unwrapPacked", err)
		return args
	}
	out := make([]jni.Jvalue, len(args))
	copy(out, args)
	for i, t := range s.Args {
		if i >= len(out) {
			break
		}
		if t.IsReference() {
			out[i] = jni.RefValue(w.unwrap(out[i].Obj()))
		}
	}
	return out
}

// promote converts one variadic argument to its jvalue slot. The
// accepted Go types mirror what the C variadic ABI delivers: integers
// arrive at least int-wide, floats arrive as double.
func (ip *Interposer) promote(w refWrapper, t sig.JavaType, a any) jni.Jvalue {
	switch t {
	case sig.Boolean:
		switch v := a.(type) {
		case bool:
			if v {
				return jni.BoolValue(1)
			}
			return jni.BoolValue(0)
		case uint8:
			return jni.BoolValue(v)
		case int:
			return jni.BoolValue(uint8(v))
		case int32:
			return jni.BoolValue(uint8(v))
		}
	case sig.Byte:
		switch v := a.(type) {
		case int8:
			return jni.ByteValue(v)
		case int:
			return jni.ByteValue(int8(v))
		case int32:
			return jni.ByteValue(int8(v))
		}
	case sig.Char:
		switch v := a.(type) {
		case uint16:
			return jni.CharValue(v)
		case int:
			return jni.CharValue(uint16(v))
		case int32:
			return jni.CharValue(uint16(v))
		}
	case sig.Short:
		switch v := a.(type) {
		case int16:
			return jni.ShortValue(v)
		case int:
			return jni.ShortValue(int16(v))
		case int32:
			return jni.ShortValue(int16(v))
		}
	case sig.Int:
		switch v := a.(type) {
		case int32:
			return jni.IntValue(v)
		case int:
			return jni.IntValue(int32(v))
		}
	case sig.Long:
		switch v := a.(type) {
		case int64:
			return jni.LongValue(v)
		case int:
			return jni.LongValue(int64(v))
		}
	case sig.Float:
		switch v := a.(type) {
		case float64:
			return jni.FloatValue(float32(v))
		case float32:
			return jni.FloatValue(v)
		}
	case sig.Double:
		switch v := a.(type) {
		case float64:
			return jni.DoubleValue(v)
		case float32:
			return jni.DoubleValue(float64(v))
		}
	case sig.Object:
		switch v := a.(type) {
		case jni.Ref:
			return jni.RefValue(w.unwrap(v))
		case uint64:
			return jni.RefValue(w.unwrap(jni.Ref(v)))
		}
	}
	ip.assertFail("promote", fmt.Errorf("argument %T does not fit %v", a, t))
	return 0
}

// assertFail reports a broken per-call invariant (the original treats
// these as fatal assertions for the affected call).
func (ip *Interposer) assertFail(where string, err error) {
	if glog.L != nil {
		glog.L.Error("jni wrapper assertion", glog.Fn(where), glog.Err(err))
	}
}
