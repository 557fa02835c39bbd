package hostvm

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/zboralski/indri/internal/jni"
	glog "github.com/zboralski/indri/internal/log"
)

// Ref-token counter bases; keeping the spaces apart makes traces easy
// to read, exactly like the mock env's class/method/string counters.
const (
	classRefBase  = 0x2000
	methodIDBase  = 0x3000
	fieldIDBase   = 0x4000
	stringRefBase = 0x5000
	objectRefBase = 0x6000
	globalRefBase = 0x7000
)

// DefaultEnv is the JNIEnv* value the simulated VM hands to native code
// when no bridge is installed.
const DefaultEnv jni.Env = 0xE0B0

type methodRecord struct {
	name       string
	descriptor string
	class      jni.Class
	static     bool
	body       func(args []jni.Jvalue) jni.Jvalue
}

// VM is the simulated host: it owns the canonical JNI table, method and
// class registries, and the bind event. It implements Tool.
type VM struct {
	mu sync.Mutex

	caps        Capabilities
	bind        BindFunc
	bindEnabled bool

	hostTable *jni.Functions // the VM's own implementation
	current   *jni.Functions // what natives dispatch through (replaceable)

	classes    map[string]jni.Class
	classDescs map[jni.Class]string
	methods    map[jni.MethodID]*methodRecord
	methodIDs  map[string]jni.MethodID
	fieldIDs   map[string]jni.FieldID
	strings    map[jni.String]string
	bound      map[jni.MethodID]uint64

	nextClass  uint64
	nextMethod uint64
	nextField  uint64
	nextString uint64
	nextObject uint64
	nextGlobal uint64
}

// NewVM creates a simulated VM with a fully populated host JNI table.
func NewVM() *VM {
	vm := &VM{
		classes:    make(map[string]jni.Class),
		classDescs: make(map[jni.Class]string),
		methods:    make(map[jni.MethodID]*methodRecord),
		methodIDs:  make(map[string]jni.MethodID),
		fieldIDs:   make(map[string]jni.FieldID),
		strings:    make(map[jni.String]string),
		bound:      make(map[jni.MethodID]uint64),
		nextClass:  classRefBase,
		nextMethod: methodIDBase,
		nextField:  fieldIDBase,
		nextString: stringRefBase,
		nextObject: objectRefBase,
		nextGlobal: globalRefBase,
	}
	vm.hostTable = vm.buildHostTable()
	vm.current = vm.hostTable
	return vm
}

// Table returns the table natives currently dispatch through.
func (vm *VM) Table() *jni.Functions {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.current
}

// HostTable returns the VM's own implementation, regardless of any
// installed replacement.
func (vm *VM) HostTable() *jni.Functions { return vm.hostTable }

// Registry setup, used by tests and the CLI driver.

// DefineClass registers a class by descriptor and returns its token.
func (vm *VM) DefineClass(desc string) jni.Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.defineClassLocked(desc)
}

func (vm *VM) defineClassLocked(desc string) jni.Class {
	if c, ok := vm.classes[desc]; ok {
		return c
	}
	c := jni.Class(vm.nextClass)
	vm.nextClass += 8
	vm.classes[desc] = c
	vm.classDescs[c] = desc
	return c
}

// DefineMethod registers a method and returns its id.
func (vm *VM) DefineMethod(classDesc, name, descriptor string) jni.MethodID {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	key := classDesc + "." + name + descriptor
	if id, ok := vm.methodIDs[key]; ok {
		return id
	}
	c := vm.defineClassLocked(classDesc)
	id := jni.MethodID(vm.nextMethod)
	vm.nextMethod += 8
	vm.methods[id] = &methodRecord{name: name, descriptor: descriptor, class: c}
	vm.methodIDs[key] = id
	return id
}

// SetMethodBody installs a Go body invoked by the host's Call*MethodA
// slots for that method id.
func (vm *VM) SetMethodBody(id jni.MethodID, body func(args []jni.Jvalue) jni.Jvalue) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if m, ok := vm.methods[id]; ok {
		m.body = body
	}
}

// BindNative delivers the native-method-bind event for a method whose
// VM-chosen entry is address, and records the effective entry (the
// agent's replacement when one was written). Returns the address
// natives will actually run.
func (vm *VM) BindNative(id jni.MethodID, address uint64) uint64 {
	vm.mu.Lock()
	bind := vm.bind
	enabled := vm.bindEnabled
	vm.mu.Unlock()

	entry := address
	if bind != nil && enabled {
		bind(DefaultEnv, id, address, &entry)
	}

	vm.mu.Lock()
	vm.bound[id] = entry
	vm.mu.Unlock()
	if glog.L != nil {
		glog.L.Install("bind", vm.methodLabel(id), entry, glog.Hex(address))
	}
	return entry
}

// BoundEntry returns the effective entry recorded for a bound method.
func (vm *VM) BoundEntry(id jni.MethodID) (uint64, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	entry, ok := vm.bound[id]
	return entry, ok
}

// InternString registers a Java string token for tests.
func (vm *VM) InternString(s string) jni.String {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	ref := jni.String(vm.nextString)
	vm.nextString += 8
	vm.strings[ref] = s
	return ref
}

// StringValue returns the Go value behind a string token.
func (vm *VM) StringValue(ref jni.String) (string, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	s, ok := vm.strings[ref]
	return s, ok
}

func (vm *VM) methodLabel(id jni.MethodID) string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if m, ok := vm.methods[id]; ok {
		return m.name
	}
	return fmt.Sprintf("mid:%#x", uint64(id))
}

// Tool implementation.

// AddCapabilities implements Tool. The simulated VM can grant both
// capabilities; a zero request is rejected to mirror the negotiation
// failing.
func (vm *VM) AddCapabilities(caps Capabilities) error {
	if !caps.NativeMethodBindEvents && !caps.JNITableReplacement {
		return fmt.Errorf("no capabilities requested")
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.caps = caps
	return nil
}

// SetNativeMethodBind implements Tool.
func (vm *VM) SetNativeMethodBind(fn BindFunc) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.caps.NativeMethodBindEvents {
		return fmt.Errorf("native-method-bind capability not held")
	}
	vm.bind = fn
	return nil
}

// EnableNativeMethodBind implements Tool.
func (vm *VM) EnableNativeMethodBind(enabled bool) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.bind == nil && enabled {
		return fmt.Errorf("no bind callback installed")
	}
	vm.bindEnabled = enabled
	return nil
}

// MethodName implements Tool.
func (vm *VM) MethodName(id jni.MethodID) (string, string, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	m, ok := vm.methods[id]
	if !ok {
		return "", "", fmt.Errorf("unknown method id %#x", uint64(id))
	}
	return m.name, m.descriptor, nil
}

// MethodDeclaringClass implements Tool.
func (vm *VM) MethodDeclaringClass(id jni.MethodID) (jni.Class, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	m, ok := vm.methods[id]
	if !ok {
		return 0, fmt.Errorf("unknown method id %#x", uint64(id))
	}
	return m.class, nil
}

// ClassSignature implements Tool.
func (vm *VM) ClassSignature(c jni.Class) (string, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	desc, ok := vm.classDescs[c]
	if !ok {
		return "", fmt.Errorf("unknown class %#x", uint64(c))
	}
	return desc, nil
}

// GetJNIFunctionTable implements Tool: a copy of the current table, so
// the caller's stash survives later replacement.
func (vm *VM) GetJNIFunctionTable() (*jni.Functions, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t := *vm.current
	return &t, nil
}

// SetJNIFunctionTable implements Tool.
func (vm *VM) SetJNIFunctionTable(t *jni.Functions) error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.caps.JNITableReplacement {
		return fmt.Errorf("table-replacement capability not held")
	}
	for _, s := range t.Slots() {
		if s.IsNil() {
			return fmt.Errorf("table slot %s is nil", s.Name)
		}
	}
	vm.current = t
	return nil
}

// buildHostTable populates every slot. Slots without interesting
// simulated behavior get a zero-returning default (the mock env's
// generic stub); the registry-backed ones are overridden below.
func (vm *VM) buildHostTable() *jni.Functions {
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

	t.GetVersion = func(env jni.Env) int32 { return jni.Version1_6 }

	t.FindClass = func(env jni.Env, name string) jni.Class {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		return vm.defineClassLocked("L" + name + ";")
	}

	t.GetObjectClass = func(env jni.Env, obj jni.Object) jni.Class {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		return vm.defineClassLocked("Ljava/lang/Object;")
	}

	t.GetMethodID = func(env jni.Env, clazz jni.Class, name, sig string) jni.MethodID {
		return vm.lookupMethodID(clazz, name, sig)
	}
	t.GetStaticMethodID = func(env jni.Env, clazz jni.Class, name, sig string) jni.MethodID {
		return vm.lookupMethodID(clazz, name, sig)
	}

	t.GetFieldID = func(env jni.Env, clazz jni.Class, name, sig string) jni.FieldID {
		return vm.lookupFieldID(clazz, name, sig)
	}
	t.GetStaticFieldID = func(env jni.Env, clazz jni.Class, name, sig string) jni.FieldID {
		return vm.lookupFieldID(clazz, name, sig)
	}

	t.NewStringUTF = func(env jni.Env, utf string) jni.String {
		return vm.InternString(utf)
	}
	t.GetStringUTFLength = func(env jni.Env, str jni.String) int32 {
		if s, ok := vm.StringValue(str); ok {
			return int32(len(s))
		}
		return 0
	}

	t.NewGlobalRef = func(env jni.Env, obj jni.Object) jni.Object {
		if obj == 0 {
			return 0
		}
		vm.mu.Lock()
		defer vm.mu.Unlock()
		ref := jni.Object(vm.nextGlobal)
		vm.nextGlobal += 8
		return ref
	}
	t.NewLocalRef = func(env jni.Env, ref jni.Object) jni.Object { return ref }
	t.IsSameObject = func(env jni.Env, a, b jni.Object) uint8 {
		if a == b {
			return 1
		}
		return 0
	}
	t.PopLocalFrame = func(env jni.Env, result jni.Object) jni.Object { return result }

	t.AllocObject = func(env jni.Env, clazz jni.Class) jni.Object {
		return vm.newObject()
	}
	t.NewObjectA = func(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) jni.Object {
		return vm.newObject()
	}

	// The packed (A) call forms below consult the method's Go body when
	// one is registered. The variadic and va_list forms of this table keep
	// their zero-value defaults and do not reach the body; the interposer's
	// overlay reaches it by packing those forms into these A forms.
	t.CallObjectMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) jni.Object {
		return vm.invoke(mid, args).Obj()
	}
	t.CallBooleanMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) uint8 {
		return vm.invoke(mid, args).Bool()
	}
	t.CallByteMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int8 {
		return vm.invoke(mid, args).Byte()
	}
	t.CallCharMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) uint16 {
		return vm.invoke(mid, args).Char()
	}
	t.CallShortMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int16 {
		return vm.invoke(mid, args).Short()
	}
	t.CallIntMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int32 {
		return vm.invoke(mid, args).Int()
	}
	t.CallLongMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int64 {
		return vm.invoke(mid, args).Long()
	}
	t.CallFloatMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) float32 {
		return vm.invoke(mid, args).Float()
	}
	t.CallDoubleMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) float64 {
		return vm.invoke(mid, args).Double()
	}
	t.CallVoidMethodA = func(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) {
		vm.invoke(mid, args)
	}
	t.CallStaticObjectMethodA = func(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) jni.Object {
		return vm.invoke(mid, args).Obj()
	}
	t.CallStaticIntMethodA = func(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int32 {
		return vm.invoke(mid, args).Int()
	}
	t.CallStaticLongMethodA = func(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int64 {
		return vm.invoke(mid, args).Long()
	}
	t.CallStaticVoidMethodA = func(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) {
		vm.invoke(mid, args)
	}

	t.RegisterNatives = func(env jni.Env, clazz jni.Class, methods []jni.NativeMethod) int32 {
		vm.mu.Lock()
		desc, ok := vm.classDescs[clazz]
		vm.mu.Unlock()
		if !ok {
			return jni.Err
		}
		for _, m := range methods {
			id := vm.DefineMethod(desc, m.Name, m.Signature)
			vm.mu.Lock()
			vm.bound[id] = m.FnPtr
			vm.mu.Unlock()
		}
		return jni.OK
	}

	t.MonitorEnter = func(env jni.Env, obj jni.Object) int32 { return jni.OK }
	t.MonitorExit = func(env jni.Env, obj jni.Object) int32 { return jni.OK }
	t.PushLocalFrame = func(env jni.Env, capacity int32) int32 { return jni.OK }
	t.EnsureLocalCapacity = func(env jni.Env, capacity int32) int32 { return jni.OK }
	t.GetObjectRefType = func(env jni.Env, obj jni.Object) jni.RefType {
		if obj == 0 {
			return jni.InvalidRefType
		}
		return jni.LocalRefType
	}

	return t
}

func (vm *VM) lookupMethodID(clazz jni.Class, name, sig string) jni.MethodID {
	vm.mu.Lock()
	desc := vm.classDescs[clazz]
	vm.mu.Unlock()
	if desc == "" {
		return 0
	}
	return vm.DefineMethod(desc, name, sig)
}

func (vm *VM) lookupFieldID(clazz jni.Class, name, sig string) jni.FieldID {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	desc := vm.classDescs[clazz]
	if desc == "" {
		return 0
	}
	key := desc + "." + name + sig
	if id, ok := vm.fieldIDs[key]; ok {
		return id
	}
	id := jni.FieldID(vm.nextField)
	vm.nextField += 8
	vm.fieldIDs[key] = id
	return id
}

func (vm *VM) newObject() jni.Object {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	ref := jni.Object(vm.nextObject)
	vm.nextObject += 8
	return ref
}

func (vm *VM) invoke(mid jni.MethodID, args []jni.Jvalue) jni.Jvalue {
	vm.mu.Lock()
	m, ok := vm.methods[mid]
	vm.mu.Unlock()
	if !ok || m.body == nil {
		return 0
	}
	return m.body(args)
}
