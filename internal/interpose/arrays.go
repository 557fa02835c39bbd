package interpose

import "github.com/zboralski/indri/internal/jni"

// Array wrappers: the array handle is unwrapped on the way in and array
// results are wrapped; element and region buffers are raw native memory
// and pass through opaquely. The critical accessors pin memory, so they
// forward right after begin's classification and trace record (which
// take the classifier's and the collector's mutexes) and do no other work.

func (ip *Interposer) installArrays(t *jni.Functions) {
	t.GetArrayLength = ip.wGetArrayLength
	t.NewObjectArray = ip.wNewObjectArray
	t.GetObjectArrayElement = ip.wGetObjectArrayElement
	t.SetObjectArrayElement = ip.wSetObjectArrayElement

	t.NewBooleanArray = ip.wNewBooleanArray
	t.NewByteArray = ip.wNewByteArray
	t.NewCharArray = ip.wNewCharArray
	t.NewShortArray = ip.wNewShortArray
	t.NewIntArray = ip.wNewIntArray
	t.NewLongArray = ip.wNewLongArray
	t.NewFloatArray = ip.wNewFloatArray
	t.NewDoubleArray = ip.wNewDoubleArray

	t.GetBooleanArrayElements = ip.wGetBooleanArrayElements
	t.GetByteArrayElements = ip.wGetByteArrayElements
	t.GetCharArrayElements = ip.wGetCharArrayElements
	t.GetShortArrayElements = ip.wGetShortArrayElements
	t.GetIntArrayElements = ip.wGetIntArrayElements
	t.GetLongArrayElements = ip.wGetLongArrayElements
	t.GetFloatArrayElements = ip.wGetFloatArrayElements
	t.GetDoubleArrayElements = ip.wGetDoubleArrayElements

	t.ReleaseBooleanArrayElements = ip.wReleaseBooleanArrayElements
	t.ReleaseByteArrayElements = ip.wReleaseByteArrayElements
	t.ReleaseCharArrayElements = ip.wReleaseCharArrayElements
	t.ReleaseShortArrayElements = ip.wReleaseShortArrayElements
	t.ReleaseIntArrayElements = ip.wReleaseIntArrayElements
	t.ReleaseLongArrayElements = ip.wReleaseLongArrayElements
	t.ReleaseFloatArrayElements = ip.wReleaseFloatArrayElements
	t.ReleaseDoubleArrayElements = ip.wReleaseDoubleArrayElements

	t.GetBooleanArrayRegion = ip.wGetBooleanArrayRegion
	t.GetByteArrayRegion = ip.wGetByteArrayRegion
	t.GetCharArrayRegion = ip.wGetCharArrayRegion
	t.GetShortArrayRegion = ip.wGetShortArrayRegion
	t.GetIntArrayRegion = ip.wGetIntArrayRegion
	t.GetLongArrayRegion = ip.wGetLongArrayRegion
	t.GetFloatArrayRegion = ip.wGetFloatArrayRegion
	t.GetDoubleArrayRegion = ip.wGetDoubleArrayRegion

	t.SetBooleanArrayRegion = ip.wSetBooleanArrayRegion
	t.SetByteArrayRegion = ip.wSetByteArrayRegion
	t.SetCharArrayRegion = ip.wSetCharArrayRegion
	t.SetShortArrayRegion = ip.wSetShortArrayRegion
	t.SetIntArrayRegion = ip.wSetIntArrayRegion
	t.SetLongArrayRegion = ip.wSetLongArrayRegion
	t.SetFloatArrayRegion = ip.wSetFloatArrayRegion
	t.SetDoubleArrayRegion = ip.wSetDoubleArrayRegion

	t.GetPrimitiveArrayCritical = ip.wGetPrimitiveArrayCritical
	t.ReleasePrimitiveArrayCritical = ip.wReleasePrimitiveArrayCritical
}

func (ip *Interposer) wGetArrayLength(env jni.Env, array jni.Array) int32 {
	w := ip.begin("GetArrayLength", 0)
	return ip.host.GetArrayLength(env, w.unwrap(array))
}

func (ip *Interposer) wNewObjectArray(env jni.Env, length int32, clazz jni.Class, init jni.Object) jni.Array {
	w := ip.begin("NewObjectArray", 0)
	return w.wrap(ip.host.NewObjectArray(env, length, w.unwrap(clazz), w.unwrap(init)))
}

func (ip *Interposer) wGetObjectArrayElement(env jni.Env, array jni.Array, index int32) jni.Object {
	w := ip.begin("GetObjectArrayElement", 0)
	return w.wrap(ip.host.GetObjectArrayElement(env, w.unwrap(array), index))
}

func (ip *Interposer) wSetObjectArrayElement(env jni.Env, array jni.Array, index int32, val jni.Object) {
	w := ip.begin("SetObjectArrayElement", 0)
	ip.host.SetObjectArrayElement(env, w.unwrap(array), index, w.unwrap(val))
}

// Construction.

func (ip *Interposer) wNewBooleanArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewBooleanArray", 0)
	return w.wrap(ip.host.NewBooleanArray(env, length))
}

func (ip *Interposer) wNewByteArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewByteArray", 0)
	return w.wrap(ip.host.NewByteArray(env, length))
}

func (ip *Interposer) wNewCharArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewCharArray", 0)
	return w.wrap(ip.host.NewCharArray(env, length))
}

func (ip *Interposer) wNewShortArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewShortArray", 0)
	return w.wrap(ip.host.NewShortArray(env, length))
}

func (ip *Interposer) wNewIntArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewIntArray", 0)
	return w.wrap(ip.host.NewIntArray(env, length))
}

func (ip *Interposer) wNewLongArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewLongArray", 0)
	return w.wrap(ip.host.NewLongArray(env, length))
}

func (ip *Interposer) wNewFloatArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewFloatArray", 0)
	return w.wrap(ip.host.NewFloatArray(env, length))
}

func (ip *Interposer) wNewDoubleArray(env jni.Env, length int32) jni.Array {
	w := ip.begin("NewDoubleArray", 0)
	return w.wrap(ip.host.NewDoubleArray(env, length))
}

// Element access.

func (ip *Interposer) wGetBooleanArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetBooleanArrayElements", 0)
	return ip.host.GetBooleanArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetByteArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetByteArrayElements", 0)
	return ip.host.GetByteArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetCharArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetCharArrayElements", 0)
	return ip.host.GetCharArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetShortArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetShortArrayElements", 0)
	return ip.host.GetShortArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetIntArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetIntArrayElements", 0)
	return ip.host.GetIntArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetLongArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetLongArrayElements", 0)
	return ip.host.GetLongArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetFloatArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetFloatArrayElements", 0)
	return ip.host.GetFloatArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wGetDoubleArrayElements(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetDoubleArrayElements", 0)
	return ip.host.GetDoubleArrayElements(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wReleaseBooleanArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseBooleanArrayElements", 0)
	ip.host.ReleaseBooleanArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseByteArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseByteArrayElements", 0)
	ip.host.ReleaseByteArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseCharArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseCharArrayElements", 0)
	ip.host.ReleaseCharArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseShortArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseShortArrayElements", 0)
	ip.host.ReleaseShortArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseIntArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseIntArrayElements", 0)
	ip.host.ReleaseIntArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseLongArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseLongArrayElements", 0)
	ip.host.ReleaseLongArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseFloatArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseFloatArrayElements", 0)
	ip.host.ReleaseFloatArrayElements(env, w.unwrap(array), elems, mode)
}

func (ip *Interposer) wReleaseDoubleArrayElements(env jni.Env, array jni.Array, elems jni.Ptr, mode int32) {
	w := ip.begin("ReleaseDoubleArrayElements", 0)
	ip.host.ReleaseDoubleArrayElements(env, w.unwrap(array), elems, mode)
}

// Regions.

func (ip *Interposer) wGetBooleanArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetBooleanArrayRegion", 0)
	ip.host.GetBooleanArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetByteArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetByteArrayRegion", 0)
	ip.host.GetByteArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetCharArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetCharArrayRegion", 0)
	ip.host.GetCharArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetShortArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetShortArrayRegion", 0)
	ip.host.GetShortArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetIntArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetIntArrayRegion", 0)
	ip.host.GetIntArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetLongArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetLongArrayRegion", 0)
	ip.host.GetLongArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetFloatArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetFloatArrayRegion", 0)
	ip.host.GetFloatArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wGetDoubleArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetDoubleArrayRegion", 0)
	ip.host.GetDoubleArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetBooleanArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetBooleanArrayRegion", 0)
	ip.host.SetBooleanArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetByteArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetByteArrayRegion", 0)
	ip.host.SetByteArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetCharArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetCharArrayRegion", 0)
	ip.host.SetCharArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetShortArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetShortArrayRegion", 0)
	ip.host.SetShortArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetIntArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetIntArrayRegion", 0)
	ip.host.SetIntArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetLongArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetLongArrayRegion", 0)
	ip.host.SetLongArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetFloatArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetFloatArrayRegion", 0)
	ip.host.SetFloatArrayRegion(env, w.unwrap(array), start, length, buf)
}

func (ip *Interposer) wSetDoubleArrayRegion(env jni.Env, array jni.Array, start, length int32, buf jni.Ptr) {
	w := ip.begin("SetDoubleArrayRegion", 0)
	ip.host.SetDoubleArrayRegion(env, w.unwrap(array), start, length, buf)
}

// Critical access pins memory; forward right after begin, no other work.

func (ip *Interposer) wGetPrimitiveArrayCritical(env jni.Env, array jni.Array, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetPrimitiveArrayCritical", 0)
	return ip.host.GetPrimitiveArrayCritical(env, w.unwrap(array), isCopy)
}

func (ip *Interposer) wReleasePrimitiveArrayCritical(env jni.Env, array jni.Array, carray jni.Ptr, mode int32) {
	w := ip.begin("ReleasePrimitiveArrayCritical", 0)
	ip.host.ReleasePrimitiveArrayCritical(env, w.unwrap(array), carray, mode)
}
