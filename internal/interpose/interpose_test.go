package interpose

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/zboralski/indri/internal/jni"
	"github.com/zboralski/indri/internal/refcodec"
)

type fakeMeta struct {
	methods map[jni.MethodID][3]string // name, descriptor, class
	lookups int
}

func (m *fakeMeta) MethodInfo(id jni.MethodID) (string, string, string, error) {
	m.lookups++
	info, ok := m.methods[id]
	if !ok {
		return "", "", "", fmt.Errorf("unknown method %#x", uint64(id))
	}
	return info[0], info[1], info[2], nil
}

// newFakeHost builds a host table with every slot populated by a
// zero-returning function, so the identity contract can be checked
// against a fully live table.
func newFakeHost() *jni.Functions {
	t := &jni.Functions{}
	v := reflect.ValueOf(t).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Func {
			continue
		}
		ft := f.Type()
		f.Set(reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
			out := make([]reflect.Value, ft.NumOut())
			for j := range out {
				out[j] = reflect.Zero(ft.Out(j))
			}
			return out
		}))
	}
	return t
}

const mask = 0xA5A5A5A5A5A5A5A5

func testInterposer(host *jni.Functions, meta MethodMeta) *Interposer {
	return New(host, meta, refcodec.XORCodec{Mask: mask})
}

func wrap(r jni.Ref) jni.Ref   { return jni.Ref(uint64(r) ^ mask) }
func unwrap(r jni.Ref) jni.Ref { return jni.Ref(uint64(r) ^ mask) }

// Every slot in the installed overlay is non-null.
func TestOverlayComplete(t *testing.T) {
	ip := testInterposer(newFakeHost(), &fakeMeta{})
	table := ip.Table()
	slots := table.Slots()
	if len(slots) != jni.SlotCount {
		t.Fatalf("got %d slots, want %d", len(slots), jni.SlotCount)
	}
	for _, s := range slots {
		if s.IsNil() {
			t.Errorf("slot %s is nil", s.Name)
		}
	}
}

// Slots listed as passthrough keep the host's function values.
func TestPassthroughKeepsHostSlots(t *testing.T) {
	host := newFakeHost()
	ip := testInterposer(host, &fakeMeta{})
	table := ip.Table("ExceptionCheck", "IsSameObject")

	for _, name := range []string{"ExceptionCheck", "IsSameObject"} {
		got := table.SlotValue(name).Pointer()
		want := host.SlotValue(name).Pointer()
		if got != want {
			t.Errorf("%s not reverted to host slot", name)
		}
	}
	if table.SlotValue("FindClass").Pointer() == host.SlotValue("FindClass").Pointer() {
		t.Error("FindClass should be intercepted")
	}
}

// CallIntMethod walks the variadic list against the parsed signature and
// forwards the unwrapped receiver plus a packed jvalue array to the
// host's A-form.
func TestCallIntMethodVariadic(t *testing.T) {
	host := newFakeHost()
	var gotObj jni.Object
	var gotArgs []jni.Jvalue
	host.CallIntMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int32 {
		gotObj = obj
		gotArgs = args
		return 7
	}
	meta := &fakeMeta{methods: map[jni.MethodID][3]string{
		100: {"plus", "(I)I", "Lcom/example/Calc;"},
	}}
	ip := testInterposer(host, meta)
	table := ip.Table()

	obj := wrap(jni.Ref(0x1000))
	if got := table.CallIntMethod(1, obj, 100, 42); got != 7 {
		t.Errorf("result = %d, want 7", got)
	}
	if gotObj != jni.Ref(0x1000) {
		t.Errorf("receiver = %#x, want unwrapped %#x", uint64(gotObj), 0x1000)
	}
	if len(gotArgs) != 1 || gotArgs[0].Int() != 42 {
		t.Errorf("packed args = %v, want single jvalue 42", gotArgs)
	}
}

// Reference arguments in the variadic list are unwrapped, and reference
// results are wrapped.
func TestCallObjectMethodRefs(t *testing.T) {
	host := newFakeHost()
	var gotArg jni.Ref
	host.CallObjectMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) jni.Object {
		gotArg = args[0].Obj()
		return jni.Ref(0x3000)
	}
	meta := &fakeMeta{methods: map[jni.MethodID][3]string{
		200: {"id", "(Ljava/lang/Object;)Ljava/lang/Object;", "Lcom/example/Echo;"},
	}}
	ip := testInterposer(host, meta)
	table := ip.Table()

	arg := wrap(jni.Ref(0x2000))
	got := table.CallObjectMethod(1, wrap(jni.Ref(0x1000)), 200, arg)
	if gotArg != jni.Ref(0x2000) {
		t.Errorf("object arg = %#x, want unwrapped %#x", uint64(gotArg), 0x2000)
	}
	if got != wrap(jni.Ref(0x3000)) {
		t.Errorf("result = %#x, want wrapped %#x", uint64(got), uint64(wrap(jni.Ref(0x3000))))
	}
}

// The A-form rewrites only the reference entries of the packed array.
func TestAFormUnwrapsPacked(t *testing.T) {
	host := newFakeHost()
	var gotArgs []jni.Jvalue
	host.CallVoidMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) {
		gotArgs = args
	}
	meta := &fakeMeta{methods: map[jni.MethodID][3]string{
		300: {"mix", "(ILjava/lang/String;)V", "Lcom/example/T;"},
	}}
	ip := testInterposer(host, meta)
	table := ip.Table()

	in := []jni.Jvalue{jni.IntValue(5), jni.RefValue(wrap(jni.Ref(0x4000)))}
	table.CallVoidMethodA(1, wrap(jni.Ref(0x1000)), 300, in)
	if gotArgs[0].Int() != 5 {
		t.Errorf("primitive entry changed: %v", gotArgs[0])
	}
	if gotArgs[1].Obj() != jni.Ref(0x4000) {
		t.Errorf("reference entry = %#x, want unwrapped %#x", uint64(gotArgs[1].Obj()), 0x4000)
	}
	if in[1].Obj() != wrap(jni.Ref(0x4000)) {
		t.Error("caller's array must not be mutated")
	}
}

// The V-form walks the promoted va_list the same way as the dots form.
func TestVFormWalksVaList(t *testing.T) {
	host := newFakeHost()
	var gotArgs []jni.Jvalue
	host.CallLongMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int64 {
		gotArgs = args
		return 0
	}
	meta := &fakeMeta{methods: map[jni.MethodID][3]string{
		400: {"f", "(JFD)J", "Lcom/example/T;"},
	}}
	ip := testInterposer(host, meta)
	table := ip.Table()

	// float promoted to double on the va_list, per the C ABI
	table.CallLongMethodV(1, wrap(jni.Ref(0x1000)), 400, jni.VaList{int64(9), float64(1.5), float64(2.5)})
	if len(gotArgs) != 3 {
		t.Fatalf("packed %d args, want 3", len(gotArgs))
	}
	if gotArgs[0].Long() != 9 {
		t.Errorf("long = %d", gotArgs[0].Long())
	}
	if gotArgs[1].Float() != 1.5 {
		t.Errorf("float = %v", gotArgs[1].Float())
	}
	if gotArgs[2].Double() != 2.5 {
		t.Errorf("double = %v", gotArgs[2].Double())
	}
}

// NewObject unwraps the class and wraps the constructed object.
func TestNewObject(t *testing.T) {
	host := newFakeHost()
	var gotClazz jni.Class
	host.NewObjectA = func(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) jni.Object {
		gotClazz = clazz
		return jni.Ref(0x7000)
	}
	meta := &fakeMeta{methods: map[jni.MethodID][3]string{
		500: {"<init>", "()V", "Lcom/example/T;"},
	}}
	ip := testInterposer(host, meta)
	table := ip.Table()

	got := table.NewObject(1, wrap(jni.Ref(0x6000)), 500)
	if gotClazz != jni.Ref(0x6000) {
		t.Errorf("class = %#x, want unwrapped", uint64(gotClazz))
	}
	if got != wrap(jni.Ref(0x7000)) {
		t.Errorf("result = %#x, want wrapped", uint64(got))
	}
}

// A system caller bypasses the codec entirely.
func TestSystemCallerBypass(t *testing.T) {
	host := newFakeHost()
	var gotObj jni.Object
	host.MonitorEnter = func(env jni.Env, obj jni.Object) int32 {
		gotObj = obj
		return 0
	}
	ip := testInterposer(host, &fakeMeta{})
	ip.CallerPC = func() uint64 { return 0xBEEF }
	ip.IsSystem = func(pc uint64) bool { return pc == 0xBEEF }
	table := ip.Table()

	table.MonitorEnter(1, jni.Ref(0x1234))
	if gotObj != jni.Ref(0x1234) {
		t.Errorf("system caller's ref transformed: %#x", uint64(gotObj))
	}
}

// Field accessors wrap on get and unwrap on set for the object slot only.
func TestObjectFieldWrapping(t *testing.T) {
	host := newFakeHost()
	var setVal jni.Object
	host.GetObjectField = func(env jni.Env, obj jni.Object, f jni.FieldID) jni.Object {
		return jni.Ref(0x9000)
	}
	host.SetObjectField = func(env jni.Env, obj jni.Object, f jni.FieldID, val jni.Object) {
		setVal = val
	}
	ip := testInterposer(host, &fakeMeta{})
	table := ip.Table()

	if got := table.GetObjectField(1, wrap(jni.Ref(0x1000)), 1); got != wrap(jni.Ref(0x9000)) {
		t.Errorf("get: %#x not wrapped", uint64(got))
	}
	table.SetObjectField(1, wrap(jni.Ref(0x1000)), 1, wrap(jni.Ref(0xA000)))
	if setVal != jni.Ref(0xA000) {
		t.Errorf("set: %#x not unwrapped", uint64(setVal))
	}
}

// ExceptionOccurred's result passes through untouched.
func TestExceptionOccurredPassesThrough(t *testing.T) {
	host := newFakeHost()
	host.ExceptionOccurred = func(env jni.Env) jni.Throwable { return jni.Ref(0xE000) }
	ip := testInterposer(host, &fakeMeta{})
	table := ip.Table()
	if got := table.ExceptionOccurred(1); got != jni.Ref(0xE000) {
		t.Errorf("result = %#x, want passthrough", uint64(got))
	}
}

// Method metadata is resolved once per method id.
func TestSignatureCachedForever(t *testing.T) {
	host := newFakeHost()
	host.CallIntMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int32 { return 0 }
	meta := &fakeMeta{methods: map[jni.MethodID][3]string{
		600: {"f", "(I)I", "LT;"},
	}}
	ip := testInterposer(host, meta)
	table := ip.Table()

	for i := 0; i < 5; i++ {
		table.CallIntMethod(1, 0, 600, i)
	}
	if meta.lookups != 1 {
		t.Errorf("metadata resolved %d times, want 1", meta.lookups)
	}
}

// RegisterNatives rewrites the method table through the hook and still
// unwraps the class.
func TestRegisterNativesHook(t *testing.T) {
	host := newFakeHost()
	var gotClazz jni.Class
	var gotMethods []jni.NativeMethod
	host.RegisterNatives = func(env jni.Env, clazz jni.Class, methods []jni.NativeMethod) int32 {
		gotClazz = clazz
		gotMethods = methods
		return 0
	}
	ip := testInterposer(host, &fakeMeta{})
	ip.OnRegisterNatives = func(env jni.Env, clazz jni.Class, methods []jni.NativeMethod) []jni.NativeMethod {
		out := append([]jni.NativeMethod{}, methods...)
		out[0].FnPtr = 0xCAFE
		return out
	}
	table := ip.Table()

	table.RegisterNatives(1, wrap(jni.Ref(0x1000)), []jni.NativeMethod{
		{Name: "f", Signature: "(I)I", FnPtr: 0x1234},
	})
	if gotClazz != jni.Ref(0x1000) {
		t.Error("class not unwrapped")
	}
	if len(gotMethods) != 1 || gotMethods[0].FnPtr != 0xCAFE {
		t.Errorf("hook rewrite lost: %+v", gotMethods)
	}
}
