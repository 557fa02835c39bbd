package interpose

import "github.com/zboralski/indri/internal/jni"

// String wrappers follow the array policy: handles unwrapped, handle
// results wrapped, character buffers opaque.

func (ip *Interposer) installStrings(t *jni.Functions) {
	t.NewString = ip.wNewString
	t.GetStringLength = ip.wGetStringLength
	t.GetStringChars = ip.wGetStringChars
	t.ReleaseStringChars = ip.wReleaseStringChars
	t.NewStringUTF = ip.wNewStringUTF
	t.GetStringUTFLength = ip.wGetStringUTFLength
	t.GetStringUTFChars = ip.wGetStringUTFChars
	t.ReleaseStringUTFChars = ip.wReleaseStringUTFChars
	t.GetStringRegion = ip.wGetStringRegion
	t.GetStringUTFRegion = ip.wGetStringUTFRegion
	t.GetStringCritical = ip.wGetStringCritical
	t.ReleaseStringCritical = ip.wReleaseStringCritical
}

func (ip *Interposer) wNewString(env jni.Env, unicode jni.Ptr, length int32) jni.String {
	w := ip.begin("NewString", 0)
	return w.wrap(ip.host.NewString(env, unicode, length))
}

func (ip *Interposer) wGetStringLength(env jni.Env, str jni.String) int32 {
	w := ip.begin("GetStringLength", 0)
	return ip.host.GetStringLength(env, w.unwrap(str))
}

func (ip *Interposer) wGetStringChars(env jni.Env, str jni.String, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetStringChars", 0)
	return ip.host.GetStringChars(env, w.unwrap(str), isCopy)
}

func (ip *Interposer) wReleaseStringChars(env jni.Env, str jni.String, chars jni.Ptr) {
	w := ip.begin("ReleaseStringChars", 0)
	ip.host.ReleaseStringChars(env, w.unwrap(str), chars)
}

func (ip *Interposer) wNewStringUTF(env jni.Env, utf string) jni.String {
	w := ip.begin("NewStringUTF", 0)
	return w.wrap(ip.host.NewStringUTF(env, utf))
}

func (ip *Interposer) wGetStringUTFLength(env jni.Env, str jni.String) int32 {
	w := ip.begin("GetStringUTFLength", 0)
	return ip.host.GetStringUTFLength(env, w.unwrap(str))
}

func (ip *Interposer) wGetStringUTFChars(env jni.Env, str jni.String, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetStringUTFChars", 0)
	return ip.host.GetStringUTFChars(env, w.unwrap(str), isCopy)
}

func (ip *Interposer) wReleaseStringUTFChars(env jni.Env, str jni.String, chars jni.Ptr) {
	w := ip.begin("ReleaseStringUTFChars", 0)
	ip.host.ReleaseStringUTFChars(env, w.unwrap(str), chars)
}

func (ip *Interposer) wGetStringRegion(env jni.Env, str jni.String, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetStringRegion", 0)
	ip.host.GetStringRegion(env, w.unwrap(str), start, length, buf)
}

func (ip *Interposer) wGetStringUTFRegion(env jni.Env, str jni.String, start, length int32, buf jni.Ptr) {
	w := ip.begin("GetStringUTFRegion", 0)
	ip.host.GetStringUTFRegion(env, w.unwrap(str), start, length, buf)
}

func (ip *Interposer) wGetStringCritical(env jni.Env, str jni.String, isCopy jni.Ptr) jni.Ptr {
	w := ip.begin("GetStringCritical", 0)
	return ip.host.GetStringCritical(env, w.unwrap(str), isCopy)
}

func (ip *Interposer) wReleaseStringCritical(env jni.Env, str jni.String, cstring jni.Ptr) {
	w := ip.begin("ReleaseStringCritical", 0)
	ip.host.ReleaseStringCritical(env, w.unwrap(str), cstring)
}
