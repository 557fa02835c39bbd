package interpose

import "github.com/zboralski/indri/internal/jni"

// Remaining groups: version, class and id lookup, reflection, exceptions,
// reference lifecycle, monitors, registration, direct buffers.

func (ip *Interposer) install(t *jni.Functions) {
	t.GetVersion = ip.wGetVersion
	t.DefineClass = ip.wDefineClass
	t.FindClass = ip.wFindClass
	t.FromReflectedMethod = ip.wFromReflectedMethod
	t.FromReflectedField = ip.wFromReflectedField
	t.ToReflectedMethod = ip.wToReflectedMethod
	t.GetSuperclass = ip.wGetSuperclass
	t.IsAssignableFrom = ip.wIsAssignableFrom
	t.ToReflectedField = ip.wToReflectedField

	t.Throw = ip.wThrow
	t.ThrowNew = ip.wThrowNew
	t.ExceptionOccurred = ip.wExceptionOccurred
	t.ExceptionDescribe = ip.wExceptionDescribe
	t.ExceptionClear = ip.wExceptionClear
	t.FatalError = ip.wFatalError

	t.PushLocalFrame = ip.wPushLocalFrame
	t.PopLocalFrame = ip.wPopLocalFrame
	t.NewGlobalRef = ip.wNewGlobalRef
	t.DeleteGlobalRef = ip.wDeleteGlobalRef
	t.DeleteLocalRef = ip.wDeleteLocalRef
	t.IsSameObject = ip.wIsSameObject
	t.NewLocalRef = ip.wNewLocalRef
	t.EnsureLocalCapacity = ip.wEnsureLocalCapacity

	t.AllocObject = ip.wAllocObject
	t.GetObjectClass = ip.wGetObjectClass
	t.IsInstanceOf = ip.wIsInstanceOf
	t.GetMethodID = ip.wGetMethodID
	t.GetStaticMethodID = ip.wGetStaticMethodID

	t.RegisterNatives = ip.wRegisterNatives
	t.UnregisterNatives = ip.wUnregisterNatives
	t.MonitorEnter = ip.wMonitorEnter
	t.MonitorExit = ip.wMonitorExit
	t.GetJavaVM = ip.wGetJavaVM

	t.NewWeakGlobalRef = ip.wNewWeakGlobalRef
	t.DeleteWeakGlobalRef = ip.wDeleteWeakGlobalRef
	t.ExceptionCheck = ip.wExceptionCheck

	t.NewDirectByteBuffer = ip.wNewDirectByteBuffer
	t.GetDirectBufferAddress = ip.wGetDirectBufferAddress
	t.GetDirectBufferCapacity = ip.wGetDirectBufferCapacity
	t.GetObjectRefType = ip.wGetObjectRefType

	ip.installCalls(t)
	ip.installFields(t)
	ip.installArrays(t)
	ip.installStrings(t)
}

func (ip *Interposer) wGetVersion(env jni.Env) int32 {
	ip.begin("GetVersion", 0)
	return ip.host.GetVersion(env)
}

func (ip *Interposer) wDefineClass(env jni.Env, name string, loader jni.Object, buf jni.Ptr, length int32) jni.Class {
	w := ip.begin("DefineClass", 0)
	return w.wrap(ip.host.DefineClass(env, name, w.unwrap(loader), buf, length))
}

func (ip *Interposer) wFindClass(env jni.Env, name string) jni.Class {
	w := ip.begin("FindClass", 0)
	return w.wrap(ip.host.FindClass(env, name))
}

func (ip *Interposer) wFromReflectedMethod(env jni.Env, method jni.Object) jni.MethodID {
	w := ip.begin("FromReflectedMethod", 0)
	return ip.host.FromReflectedMethod(env, w.unwrap(method))
}

func (ip *Interposer) wFromReflectedField(env jni.Env, field jni.Object) jni.FieldID {
	w := ip.begin("FromReflectedField", 0)
	return ip.host.FromReflectedField(env, w.unwrap(field))
}

func (ip *Interposer) wToReflectedMethod(env jni.Env, cls jni.Class, mid jni.MethodID, isStatic uint8) jni.Object {
	w := ip.begin("ToReflectedMethod", 0)
	return w.wrap(ip.host.ToReflectedMethod(env, w.unwrap(cls), mid, isStatic))
}

func (ip *Interposer) wGetSuperclass(env jni.Env, sub jni.Class) jni.Class {
	w := ip.begin("GetSuperclass", 0)
	return w.wrap(ip.host.GetSuperclass(env, w.unwrap(sub)))
}

func (ip *Interposer) wIsAssignableFrom(env jni.Env, sub, sup jni.Class) uint8 {
	w := ip.begin("IsAssignableFrom", 0)
	return ip.host.IsAssignableFrom(env, w.unwrap(sub), w.unwrap(sup))
}

func (ip *Interposer) wToReflectedField(env jni.Env, cls jni.Class, fid jni.FieldID, isStatic uint8) jni.Object {
	w := ip.begin("ToReflectedField", 0)
	return w.wrap(ip.host.ToReflectedField(env, w.unwrap(cls), fid, isStatic))
}

// Exceptions.

func (ip *Interposer) wThrow(env jni.Env, obj jni.Throwable) int32 {
	w := ip.begin("Throw", 0)
	return ip.host.Throw(env, w.unwrap(obj))
}

func (ip *Interposer) wThrowNew(env jni.Env, clazz jni.Class, msg string) int32 {
	w := ip.begin("ThrowNew", 0)
	return ip.host.ThrowNew(env, w.unwrap(clazz), msg)
}

// ExceptionOccurred's result is already a VM-local reference the caller
// must treat opaquely; it passes through unwrapped.
func (ip *Interposer) wExceptionOccurred(env jni.Env) jni.Throwable {
	ip.begin("ExceptionOccurred", 0)
	return ip.host.ExceptionOccurred(env)
}

func (ip *Interposer) wExceptionDescribe(env jni.Env) {
	ip.begin("ExceptionDescribe", 0)
	ip.host.ExceptionDescribe(env)
}

func (ip *Interposer) wExceptionClear(env jni.Env) {
	ip.begin("ExceptionClear", 0)
	ip.host.ExceptionClear(env)
}

func (ip *Interposer) wFatalError(env jni.Env, msg string) {
	ip.begin("FatalError", 0)
	ip.host.FatalError(env, msg)
}

func (ip *Interposer) wExceptionCheck(env jni.Env) uint8 {
	ip.begin("ExceptionCheck", 0)
	return ip.host.ExceptionCheck(env)
}

// Reference lifecycle.

func (ip *Interposer) wPushLocalFrame(env jni.Env, capacity int32) int32 {
	ip.begin("PushLocalFrame", 0)
	return ip.host.PushLocalFrame(env, capacity)
}

func (ip *Interposer) wPopLocalFrame(env jni.Env, result jni.Object) jni.Object {
	w := ip.begin("PopLocalFrame", 0)
	return w.wrap(ip.host.PopLocalFrame(env, w.unwrap(result)))
}

func (ip *Interposer) wNewGlobalRef(env jni.Env, obj jni.Object) jni.Object {
	w := ip.begin("NewGlobalRef", 0)
	return w.wrap(ip.host.NewGlobalRef(env, w.unwrap(obj)))
}

func (ip *Interposer) wDeleteGlobalRef(env jni.Env, gref jni.Object) {
	w := ip.begin("DeleteGlobalRef", 0)
	ip.host.DeleteGlobalRef(env, w.unwrap(gref))
}

func (ip *Interposer) wDeleteLocalRef(env jni.Env, obj jni.Object) {
	w := ip.begin("DeleteLocalRef", 0)
	ip.host.DeleteLocalRef(env, w.unwrap(obj))
}

func (ip *Interposer) wIsSameObject(env jni.Env, a, b jni.Object) uint8 {
	w := ip.begin("IsSameObject", 0)
	return ip.host.IsSameObject(env, w.unwrap(a), w.unwrap(b))
}

func (ip *Interposer) wNewLocalRef(env jni.Env, ref jni.Object) jni.Object {
	w := ip.begin("NewLocalRef", 0)
	return w.wrap(ip.host.NewLocalRef(env, w.unwrap(ref)))
}

func (ip *Interposer) wEnsureLocalCapacity(env jni.Env, capacity int32) int32 {
	ip.begin("EnsureLocalCapacity", 0)
	return ip.host.EnsureLocalCapacity(env, capacity)
}

func (ip *Interposer) wNewWeakGlobalRef(env jni.Env, obj jni.Object) jni.Weak {
	w := ip.begin("NewWeakGlobalRef", 0)
	return w.wrap(ip.host.NewWeakGlobalRef(env, w.unwrap(obj)))
}

func (ip *Interposer) wDeleteWeakGlobalRef(env jni.Env, ref jni.Weak) {
	w := ip.begin("DeleteWeakGlobalRef", 0)
	ip.host.DeleteWeakGlobalRef(env, w.unwrap(ref))
}

// Object and id lookup.

func (ip *Interposer) wAllocObject(env jni.Env, clazz jni.Class) jni.Object {
	w := ip.begin("AllocObject", 0)
	return w.wrap(ip.host.AllocObject(env, w.unwrap(clazz)))
}

func (ip *Interposer) wGetObjectClass(env jni.Env, obj jni.Object) jni.Class {
	w := ip.begin("GetObjectClass", 0)
	return w.wrap(ip.host.GetObjectClass(env, w.unwrap(obj)))
}

func (ip *Interposer) wIsInstanceOf(env jni.Env, obj jni.Object, clazz jni.Class) uint8 {
	w := ip.begin("IsInstanceOf", 0)
	return ip.host.IsInstanceOf(env, w.unwrap(obj), w.unwrap(clazz))
}

func (ip *Interposer) wGetMethodID(env jni.Env, clazz jni.Class, name, sig string) jni.MethodID {
	w := ip.begin("GetMethodID", 0)
	return ip.host.GetMethodID(env, w.unwrap(clazz), name, sig)
}

func (ip *Interposer) wGetStaticMethodID(env jni.Env, clazz jni.Class, name, sig string) jni.MethodID {
	w := ip.begin("GetStaticMethodID", 0)
	return ip.host.GetStaticMethodID(env, w.unwrap(clazz), name, sig)
}

// Registration and monitors.

func (ip *Interposer) wRegisterNatives(env jni.Env, clazz jni.Class, methods []jni.NativeMethod) int32 {
	w := ip.begin("RegisterNatives", 0)
	if ip.OnRegisterNatives != nil {
		methods = ip.OnRegisterNatives(env, clazz, methods)
	}
	return ip.host.RegisterNatives(env, w.unwrap(clazz), methods)
}

func (ip *Interposer) wUnregisterNatives(env jni.Env, clazz jni.Class) int32 {
	w := ip.begin("UnregisterNatives", 0)
	return ip.host.UnregisterNatives(env, w.unwrap(clazz))
}

func (ip *Interposer) wMonitorEnter(env jni.Env, obj jni.Object) int32 {
	w := ip.begin("MonitorEnter", 0)
	return ip.host.MonitorEnter(env, w.unwrap(obj))
}

func (ip *Interposer) wMonitorExit(env jni.Env, obj jni.Object) int32 {
	w := ip.begin("MonitorExit", 0)
	return ip.host.MonitorExit(env, w.unwrap(obj))
}

func (ip *Interposer) wGetJavaVM(env jni.Env, vm jni.Ptr) int32 {
	ip.begin("GetJavaVM", 0)
	return ip.host.GetJavaVM(env, vm)
}

// Direct buffers.

func (ip *Interposer) wNewDirectByteBuffer(env jni.Env, address jni.Ptr, capacity int64) jni.Object {
	w := ip.begin("NewDirectByteBuffer", 0)
	return w.wrap(ip.host.NewDirectByteBuffer(env, address, capacity))
}

func (ip *Interposer) wGetDirectBufferAddress(env jni.Env, buf jni.Object) jni.Ptr {
	w := ip.begin("GetDirectBufferAddress", 0)
	return ip.host.GetDirectBufferAddress(env, w.unwrap(buf))
}

func (ip *Interposer) wGetDirectBufferCapacity(env jni.Env, buf jni.Object) int64 {
	w := ip.begin("GetDirectBufferCapacity", 0)
	return ip.host.GetDirectBufferCapacity(env, w.unwrap(buf))
}

func (ip *Interposer) wGetObjectRefType(env jni.Env, obj jni.Object) jni.RefType {
	w := ip.begin("GetObjectRefType", 0)
	return ip.host.GetObjectRefType(env, w.unwrap(obj))
}
