package interpose

import "github.com/zboralski/indri/internal/jni"

// Method-call wrappers. Shape is uniform across the thirty families:
// unwrap the receiver and class, walk the argument list when variadic,
// forward to the host's A-form, wrap reference results. The bodies are
// the expansion of one pattern per (shape, return type, variant).

func (ip *Interposer) installCalls(t *jni.Functions) {
	t.NewObject = ip.wNewObject
	t.NewObjectV = ip.wNewObjectV
	t.NewObjectA = ip.wNewObjectA

	t.CallObjectMethod = ip.wCallObjectMethod
	t.CallObjectMethodV = ip.wCallObjectMethodV
	t.CallObjectMethodA = ip.wCallObjectMethodA
	t.CallBooleanMethod = ip.wCallBooleanMethod
	t.CallBooleanMethodV = ip.wCallBooleanMethodV
	t.CallBooleanMethodA = ip.wCallBooleanMethodA
	t.CallByteMethod = ip.wCallByteMethod
	t.CallByteMethodV = ip.wCallByteMethodV
	t.CallByteMethodA = ip.wCallByteMethodA
	t.CallCharMethod = ip.wCallCharMethod
	t.CallCharMethodV = ip.wCallCharMethodV
	t.CallCharMethodA = ip.wCallCharMethodA
	t.CallShortMethod = ip.wCallShortMethod
	t.CallShortMethodV = ip.wCallShortMethodV
	t.CallShortMethodA = ip.wCallShortMethodA
	t.CallIntMethod = ip.wCallIntMethod
	t.CallIntMethodV = ip.wCallIntMethodV
	t.CallIntMethodA = ip.wCallIntMethodA
	t.CallLongMethod = ip.wCallLongMethod
	t.CallLongMethodV = ip.wCallLongMethodV
	t.CallLongMethodA = ip.wCallLongMethodA
	t.CallFloatMethod = ip.wCallFloatMethod
	t.CallFloatMethodV = ip.wCallFloatMethodV
	t.CallFloatMethodA = ip.wCallFloatMethodA
	t.CallDoubleMethod = ip.wCallDoubleMethod
	t.CallDoubleMethodV = ip.wCallDoubleMethodV
	t.CallDoubleMethodA = ip.wCallDoubleMethodA
	t.CallVoidMethod = ip.wCallVoidMethod
	t.CallVoidMethodV = ip.wCallVoidMethodV
	t.CallVoidMethodA = ip.wCallVoidMethodA

	t.CallNonvirtualObjectMethod = ip.wCallNonvirtualObjectMethod
	t.CallNonvirtualObjectMethodV = ip.wCallNonvirtualObjectMethodV
	t.CallNonvirtualObjectMethodA = ip.wCallNonvirtualObjectMethodA
	t.CallNonvirtualBooleanMethod = ip.wCallNonvirtualBooleanMethod
	t.CallNonvirtualBooleanMethodV = ip.wCallNonvirtualBooleanMethodV
	t.CallNonvirtualBooleanMethodA = ip.wCallNonvirtualBooleanMethodA
	t.CallNonvirtualByteMethod = ip.wCallNonvirtualByteMethod
	t.CallNonvirtualByteMethodV = ip.wCallNonvirtualByteMethodV
	t.CallNonvirtualByteMethodA = ip.wCallNonvirtualByteMethodA
	t.CallNonvirtualCharMethod = ip.wCallNonvirtualCharMethod
	t.CallNonvirtualCharMethodV = ip.wCallNonvirtualCharMethodV
	t.CallNonvirtualCharMethodA = ip.wCallNonvirtualCharMethodA
	t.CallNonvirtualShortMethod = ip.wCallNonvirtualShortMethod
	t.CallNonvirtualShortMethodV = ip.wCallNonvirtualShortMethodV
	t.CallNonvirtualShortMethodA = ip.wCallNonvirtualShortMethodA
	t.CallNonvirtualIntMethod = ip.wCallNonvirtualIntMethod
	t.CallNonvirtualIntMethodV = ip.wCallNonvirtualIntMethodV
	t.CallNonvirtualIntMethodA = ip.wCallNonvirtualIntMethodA
	t.CallNonvirtualLongMethod = ip.wCallNonvirtualLongMethod
	t.CallNonvirtualLongMethodV = ip.wCallNonvirtualLongMethodV
	t.CallNonvirtualLongMethodA = ip.wCallNonvirtualLongMethodA
	t.CallNonvirtualFloatMethod = ip.wCallNonvirtualFloatMethod
	t.CallNonvirtualFloatMethodV = ip.wCallNonvirtualFloatMethodV
	t.CallNonvirtualFloatMethodA = ip.wCallNonvirtualFloatMethodA
	t.CallNonvirtualDoubleMethod = ip.wCallNonvirtualDoubleMethod
	t.CallNonvirtualDoubleMethodV = ip.wCallNonvirtualDoubleMethodV
	t.CallNonvirtualDoubleMethodA = ip.wCallNonvirtualDoubleMethodA
	t.CallNonvirtualVoidMethod = ip.wCallNonvirtualVoidMethod
	t.CallNonvirtualVoidMethodV = ip.wCallNonvirtualVoidMethodV
	t.CallNonvirtualVoidMethodA = ip.wCallNonvirtualVoidMethodA

	t.CallStaticObjectMethod = ip.wCallStaticObjectMethod
	t.CallStaticObjectMethodV = ip.wCallStaticObjectMethodV
	t.CallStaticObjectMethodA = ip.wCallStaticObjectMethodA
	t.CallStaticBooleanMethod = ip.wCallStaticBooleanMethod
	t.CallStaticBooleanMethodV = ip.wCallStaticBooleanMethodV
	t.CallStaticBooleanMethodA = ip.wCallStaticBooleanMethodA
	t.CallStaticByteMethod = ip.wCallStaticByteMethod
	t.CallStaticByteMethodV = ip.wCallStaticByteMethodV
	t.CallStaticByteMethodA = ip.wCallStaticByteMethodA
	t.CallStaticCharMethod = ip.wCallStaticCharMethod
	t.CallStaticCharMethodV = ip.wCallStaticCharMethodV
	t.CallStaticCharMethodA = ip.wCallStaticCharMethodA
	t.CallStaticShortMethod = ip.wCallStaticShortMethod
	t.CallStaticShortMethodV = ip.wCallStaticShortMethodV
	t.CallStaticShortMethodA = ip.wCallStaticShortMethodA
	t.CallStaticIntMethod = ip.wCallStaticIntMethod
	t.CallStaticIntMethodV = ip.wCallStaticIntMethodV
	t.CallStaticIntMethodA = ip.wCallStaticIntMethodA
	t.CallStaticLongMethod = ip.wCallStaticLongMethod
	t.CallStaticLongMethodV = ip.wCallStaticLongMethodV
	t.CallStaticLongMethodA = ip.wCallStaticLongMethodA
	t.CallStaticFloatMethod = ip.wCallStaticFloatMethod
	t.CallStaticFloatMethodV = ip.wCallStaticFloatMethodV
	t.CallStaticFloatMethodA = ip.wCallStaticFloatMethodA
	t.CallStaticDoubleMethod = ip.wCallStaticDoubleMethod
	t.CallStaticDoubleMethodV = ip.wCallStaticDoubleMethodV
	t.CallStaticDoubleMethodA = ip.wCallStaticDoubleMethodA
	t.CallStaticVoidMethod = ip.wCallStaticVoidMethod
	t.CallStaticVoidMethodV = ip.wCallStaticVoidMethodV
	t.CallStaticVoidMethodA = ip.wCallStaticVoidMethodA
}

// Object construction.

func (ip *Interposer) wNewObject(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) jni.Object {
	w := ip.begin("NewObject", mid)
	return w.wrap(ip.host.NewObjectA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wNewObjectV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) jni.Object {
	w := ip.begin("NewObjectV", mid)
	return w.wrap(ip.host.NewObjectA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wNewObjectA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) jni.Object {
	w := ip.begin("NewObjectA", mid)
	return w.wrap(ip.host.NewObjectA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args)))
}

// Virtual calls.

func (ip *Interposer) wCallObjectMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) jni.Object {
	w := ip.begin("CallObjectMethod", mid)
	return w.wrap(ip.host.CallObjectMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wCallObjectMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) jni.Object {
	w := ip.begin("CallObjectMethodV", mid)
	return w.wrap(ip.host.CallObjectMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wCallObjectMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) jni.Object {
	w := ip.begin("CallObjectMethodA", mid)
	return w.wrap(ip.host.CallObjectMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args)))
}

func (ip *Interposer) wCallBooleanMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) uint8 {
	w := ip.begin("CallBooleanMethod", mid)
	return ip.host.CallBooleanMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallBooleanMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) uint8 {
	w := ip.begin("CallBooleanMethodV", mid)
	return ip.host.CallBooleanMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallBooleanMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) uint8 {
	w := ip.begin("CallBooleanMethodA", mid)
	return ip.host.CallBooleanMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallByteMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) int8 {
	w := ip.begin("CallByteMethod", mid)
	return ip.host.CallByteMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallByteMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) int8 {
	w := ip.begin("CallByteMethodV", mid)
	return ip.host.CallByteMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallByteMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int8 {
	w := ip.begin("CallByteMethodA", mid)
	return ip.host.CallByteMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallCharMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) uint16 {
	w := ip.begin("CallCharMethod", mid)
	return ip.host.CallCharMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallCharMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) uint16 {
	w := ip.begin("CallCharMethodV", mid)
	return ip.host.CallCharMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallCharMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) uint16 {
	w := ip.begin("CallCharMethodA", mid)
	return ip.host.CallCharMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallShortMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) int16 {
	w := ip.begin("CallShortMethod", mid)
	return ip.host.CallShortMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallShortMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) int16 {
	w := ip.begin("CallShortMethodV", mid)
	return ip.host.CallShortMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallShortMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int16 {
	w := ip.begin("CallShortMethodA", mid)
	return ip.host.CallShortMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallIntMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) int32 {
	w := ip.begin("CallIntMethod", mid)
	return ip.host.CallIntMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallIntMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) int32 {
	w := ip.begin("CallIntMethodV", mid)
	return ip.host.CallIntMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallIntMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int32 {
	w := ip.begin("CallIntMethodA", mid)
	return ip.host.CallIntMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallLongMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) int64 {
	w := ip.begin("CallLongMethod", mid)
	return ip.host.CallLongMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallLongMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) int64 {
	w := ip.begin("CallLongMethodV", mid)
	return ip.host.CallLongMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallLongMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) int64 {
	w := ip.begin("CallLongMethodA", mid)
	return ip.host.CallLongMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallFloatMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) float32 {
	w := ip.begin("CallFloatMethod", mid)
	return ip.host.CallFloatMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallFloatMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) float32 {
	w := ip.begin("CallFloatMethodV", mid)
	return ip.host.CallFloatMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallFloatMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) float32 {
	w := ip.begin("CallFloatMethodA", mid)
	return ip.host.CallFloatMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallDoubleMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) float64 {
	w := ip.begin("CallDoubleMethod", mid)
	return ip.host.CallDoubleMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallDoubleMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) float64 {
	w := ip.begin("CallDoubleMethodV", mid)
	return ip.host.CallDoubleMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallDoubleMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) float64 {
	w := ip.begin("CallDoubleMethodA", mid)
	return ip.host.CallDoubleMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallVoidMethod(env jni.Env, obj jni.Object, mid jni.MethodID, args ...any) {
	w := ip.begin("CallVoidMethod", mid)
	ip.host.CallVoidMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallVoidMethodV(env jni.Env, obj jni.Object, mid jni.MethodID, args jni.VaList) {
	w := ip.begin("CallVoidMethodV", mid)
	ip.host.CallVoidMethodA(env, w.unwrap(obj), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallVoidMethodA(env jni.Env, obj jni.Object, mid jni.MethodID, args []jni.Jvalue) {
	w := ip.begin("CallVoidMethodA", mid)
	ip.host.CallVoidMethodA(env, w.unwrap(obj), mid, ip.unwrapPacked(w, mid, args))
}

// Non-virtual calls.

func (ip *Interposer) wCallNonvirtualObjectMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) jni.Object {
	w := ip.begin("CallNonvirtualObjectMethod", mid)
	return w.wrap(ip.host.CallNonvirtualObjectMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wCallNonvirtualObjectMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) jni.Object {
	w := ip.begin("CallNonvirtualObjectMethodV", mid)
	return w.wrap(ip.host.CallNonvirtualObjectMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wCallNonvirtualObjectMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) jni.Object {
	w := ip.begin("CallNonvirtualObjectMethodA", mid)
	return w.wrap(ip.host.CallNonvirtualObjectMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args)))
}

func (ip *Interposer) wCallNonvirtualBooleanMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) uint8 {
	w := ip.begin("CallNonvirtualBooleanMethod", mid)
	return ip.host.CallNonvirtualBooleanMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualBooleanMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) uint8 {
	w := ip.begin("CallNonvirtualBooleanMethodV", mid)
	return ip.host.CallNonvirtualBooleanMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualBooleanMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) uint8 {
	w := ip.begin("CallNonvirtualBooleanMethodA", mid)
	return ip.host.CallNonvirtualBooleanMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualByteMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) int8 {
	w := ip.begin("CallNonvirtualByteMethod", mid)
	return ip.host.CallNonvirtualByteMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualByteMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) int8 {
	w := ip.begin("CallNonvirtualByteMethodV", mid)
	return ip.host.CallNonvirtualByteMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualByteMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int8 {
	w := ip.begin("CallNonvirtualByteMethodA", mid)
	return ip.host.CallNonvirtualByteMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualCharMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) uint16 {
	w := ip.begin("CallNonvirtualCharMethod", mid)
	return ip.host.CallNonvirtualCharMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualCharMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) uint16 {
	w := ip.begin("CallNonvirtualCharMethodV", mid)
	return ip.host.CallNonvirtualCharMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualCharMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) uint16 {
	w := ip.begin("CallNonvirtualCharMethodA", mid)
	return ip.host.CallNonvirtualCharMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualShortMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) int16 {
	w := ip.begin("CallNonvirtualShortMethod", mid)
	return ip.host.CallNonvirtualShortMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualShortMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) int16 {
	w := ip.begin("CallNonvirtualShortMethodV", mid)
	return ip.host.CallNonvirtualShortMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualShortMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int16 {
	w := ip.begin("CallNonvirtualShortMethodA", mid)
	return ip.host.CallNonvirtualShortMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualIntMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) int32 {
	w := ip.begin("CallNonvirtualIntMethod", mid)
	return ip.host.CallNonvirtualIntMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualIntMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) int32 {
	w := ip.begin("CallNonvirtualIntMethodV", mid)
	return ip.host.CallNonvirtualIntMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualIntMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int32 {
	w := ip.begin("CallNonvirtualIntMethodA", mid)
	return ip.host.CallNonvirtualIntMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualLongMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) int64 {
	w := ip.begin("CallNonvirtualLongMethod", mid)
	return ip.host.CallNonvirtualLongMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualLongMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) int64 {
	w := ip.begin("CallNonvirtualLongMethodV", mid)
	return ip.host.CallNonvirtualLongMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualLongMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int64 {
	w := ip.begin("CallNonvirtualLongMethodA", mid)
	return ip.host.CallNonvirtualLongMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualFloatMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) float32 {
	w := ip.begin("CallNonvirtualFloatMethod", mid)
	return ip.host.CallNonvirtualFloatMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualFloatMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) float32 {
	w := ip.begin("CallNonvirtualFloatMethodV", mid)
	return ip.host.CallNonvirtualFloatMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualFloatMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) float32 {
	w := ip.begin("CallNonvirtualFloatMethodA", mid)
	return ip.host.CallNonvirtualFloatMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualDoubleMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) float64 {
	w := ip.begin("CallNonvirtualDoubleMethod", mid)
	return ip.host.CallNonvirtualDoubleMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualDoubleMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) float64 {
	w := ip.begin("CallNonvirtualDoubleMethodV", mid)
	return ip.host.CallNonvirtualDoubleMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualDoubleMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) float64 {
	w := ip.begin("CallNonvirtualDoubleMethodA", mid)
	return ip.host.CallNonvirtualDoubleMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualVoidMethod(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args ...any) {
	w := ip.begin("CallNonvirtualVoidMethod", mid)
	ip.host.CallNonvirtualVoidMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualVoidMethodV(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args jni.VaList) {
	w := ip.begin("CallNonvirtualVoidMethodV", mid)
	ip.host.CallNonvirtualVoidMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallNonvirtualVoidMethodA(env jni.Env, obj jni.Object, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) {
	w := ip.begin("CallNonvirtualVoidMethodA", mid)
	ip.host.CallNonvirtualVoidMethodA(env, w.unwrap(obj), w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

// Static calls.

func (ip *Interposer) wCallStaticObjectMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) jni.Object {
	w := ip.begin("CallStaticObjectMethod", mid)
	return w.wrap(ip.host.CallStaticObjectMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wCallStaticObjectMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) jni.Object {
	w := ip.begin("CallStaticObjectMethodV", mid)
	return w.wrap(ip.host.CallStaticObjectMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args)))
}

func (ip *Interposer) wCallStaticObjectMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) jni.Object {
	w := ip.begin("CallStaticObjectMethodA", mid)
	return w.wrap(ip.host.CallStaticObjectMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args)))
}

func (ip *Interposer) wCallStaticBooleanMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) uint8 {
	w := ip.begin("CallStaticBooleanMethod", mid)
	return ip.host.CallStaticBooleanMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticBooleanMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) uint8 {
	w := ip.begin("CallStaticBooleanMethodV", mid)
	return ip.host.CallStaticBooleanMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticBooleanMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) uint8 {
	w := ip.begin("CallStaticBooleanMethodA", mid)
	return ip.host.CallStaticBooleanMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticByteMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) int8 {
	w := ip.begin("CallStaticByteMethod", mid)
	return ip.host.CallStaticByteMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticByteMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) int8 {
	w := ip.begin("CallStaticByteMethodV", mid)
	return ip.host.CallStaticByteMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticByteMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int8 {
	w := ip.begin("CallStaticByteMethodA", mid)
	return ip.host.CallStaticByteMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticCharMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) uint16 {
	w := ip.begin("CallStaticCharMethod", mid)
	return ip.host.CallStaticCharMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticCharMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) uint16 {
	w := ip.begin("CallStaticCharMethodV", mid)
	return ip.host.CallStaticCharMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticCharMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) uint16 {
	w := ip.begin("CallStaticCharMethodA", mid)
	return ip.host.CallStaticCharMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticShortMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) int16 {
	w := ip.begin("CallStaticShortMethod", mid)
	return ip.host.CallStaticShortMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticShortMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) int16 {
	w := ip.begin("CallStaticShortMethodV", mid)
	return ip.host.CallStaticShortMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticShortMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int16 {
	w := ip.begin("CallStaticShortMethodA", mid)
	return ip.host.CallStaticShortMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticIntMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) int32 {
	w := ip.begin("CallStaticIntMethod", mid)
	return ip.host.CallStaticIntMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticIntMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) int32 {
	w := ip.begin("CallStaticIntMethodV", mid)
	return ip.host.CallStaticIntMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticIntMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int32 {
	w := ip.begin("CallStaticIntMethodA", mid)
	return ip.host.CallStaticIntMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticLongMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) int64 {
	w := ip.begin("CallStaticLongMethod", mid)
	return ip.host.CallStaticLongMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticLongMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) int64 {
	w := ip.begin("CallStaticLongMethodV", mid)
	return ip.host.CallStaticLongMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticLongMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) int64 {
	w := ip.begin("CallStaticLongMethodA", mid)
	return ip.host.CallStaticLongMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticFloatMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) float32 {
	w := ip.begin("CallStaticFloatMethod", mid)
	return ip.host.CallStaticFloatMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticFloatMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) float32 {
	w := ip.begin("CallStaticFloatMethodV", mid)
	return ip.host.CallStaticFloatMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticFloatMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) float32 {
	w := ip.begin("CallStaticFloatMethodA", mid)
	return ip.host.CallStaticFloatMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticDoubleMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) float64 {
	w := ip.begin("CallStaticDoubleMethod", mid)
	return ip.host.CallStaticDoubleMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticDoubleMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) float64 {
	w := ip.begin("CallStaticDoubleMethodV", mid)
	return ip.host.CallStaticDoubleMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticDoubleMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) float64 {
	w := ip.begin("CallStaticDoubleMethodA", mid)
	return ip.host.CallStaticDoubleMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}

func (ip *Interposer) wCallStaticVoidMethod(env jni.Env, clazz jni.Class, mid jni.MethodID, args ...any) {
	w := ip.begin("CallStaticVoidMethod", mid)
	ip.host.CallStaticVoidMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticVoidMethodV(env jni.Env, clazz jni.Class, mid jni.MethodID, args jni.VaList) {
	w := ip.begin("CallStaticVoidMethodV", mid)
	ip.host.CallStaticVoidMethodA(env, w.unwrap(clazz), mid, ip.pack(w, mid, args))
}

func (ip *Interposer) wCallStaticVoidMethodA(env jni.Env, clazz jni.Class, mid jni.MethodID, args []jni.Jvalue) {
	w := ip.begin("CallStaticVoidMethodA", mid)
	ip.host.CallStaticVoidMethodA(env, w.unwrap(clazz), mid, ip.unwrapPacked(w, mid, args))
}
