package interpose

import "github.com/zboralski/indri/internal/jni"

// Field access wrappers: receiver or class unwrapped; reference values
// wrapped on get and unwrapped on set; field ids pass through.

func (ip *Interposer) installFields(t *jni.Functions) {
	t.GetFieldID = ip.wGetFieldID
	t.GetStaticFieldID = ip.wGetStaticFieldID

	t.GetObjectField = ip.wGetObjectField
	t.GetBooleanField = ip.wGetBooleanField
	t.GetByteField = ip.wGetByteField
	t.GetCharField = ip.wGetCharField
	t.GetShortField = ip.wGetShortField
	t.GetIntField = ip.wGetIntField
	t.GetLongField = ip.wGetLongField
	t.GetFloatField = ip.wGetFloatField
	t.GetDoubleField = ip.wGetDoubleField

	t.SetObjectField = ip.wSetObjectField
	t.SetBooleanField = ip.wSetBooleanField
	t.SetByteField = ip.wSetByteField
	t.SetCharField = ip.wSetCharField
	t.SetShortField = ip.wSetShortField
	t.SetIntField = ip.wSetIntField
	t.SetLongField = ip.wSetLongField
	t.SetFloatField = ip.wSetFloatField
	t.SetDoubleField = ip.wSetDoubleField

	t.GetStaticObjectField = ip.wGetStaticObjectField
	t.GetStaticBooleanField = ip.wGetStaticBooleanField
	t.GetStaticByteField = ip.wGetStaticByteField
	t.GetStaticCharField = ip.wGetStaticCharField
	t.GetStaticShortField = ip.wGetStaticShortField
	t.GetStaticIntField = ip.wGetStaticIntField
	t.GetStaticLongField = ip.wGetStaticLongField
	t.GetStaticFloatField = ip.wGetStaticFloatField
	t.GetStaticDoubleField = ip.wGetStaticDoubleField

	t.SetStaticObjectField = ip.wSetStaticObjectField
	t.SetStaticBooleanField = ip.wSetStaticBooleanField
	t.SetStaticByteField = ip.wSetStaticByteField
	t.SetStaticCharField = ip.wSetStaticCharField
	t.SetStaticShortField = ip.wSetStaticShortField
	t.SetStaticIntField = ip.wSetStaticIntField
	t.SetStaticLongField = ip.wSetStaticLongField
	t.SetStaticFloatField = ip.wSetStaticFloatField
	t.SetStaticDoubleField = ip.wSetStaticDoubleField
}

func (ip *Interposer) wGetFieldID(env jni.Env, clazz jni.Class, name, sig string) jni.FieldID {
	w := ip.begin("GetFieldID", 0)
	return ip.host.GetFieldID(env, w.unwrap(clazz), name, sig)
}

func (ip *Interposer) wGetStaticFieldID(env jni.Env, clazz jni.Class, name, sig string) jni.FieldID {
	w := ip.begin("GetStaticFieldID", 0)
	return ip.host.GetStaticFieldID(env, w.unwrap(clazz), name, sig)
}

// Instance field getters.

func (ip *Interposer) wGetObjectField(env jni.Env, obj jni.Object, f jni.FieldID) jni.Object {
	w := ip.begin("GetObjectField", 0)
	return w.wrap(ip.host.GetObjectField(env, w.unwrap(obj), f))
}

func (ip *Interposer) wGetBooleanField(env jni.Env, obj jni.Object, f jni.FieldID) uint8 {
	w := ip.begin("GetBooleanField", 0)
	return ip.host.GetBooleanField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetByteField(env jni.Env, obj jni.Object, f jni.FieldID) int8 {
	w := ip.begin("GetByteField", 0)
	return ip.host.GetByteField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetCharField(env jni.Env, obj jni.Object, f jni.FieldID) uint16 {
	w := ip.begin("GetCharField", 0)
	return ip.host.GetCharField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetShortField(env jni.Env, obj jni.Object, f jni.FieldID) int16 {
	w := ip.begin("GetShortField", 0)
	return ip.host.GetShortField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetIntField(env jni.Env, obj jni.Object, f jni.FieldID) int32 {
	w := ip.begin("GetIntField", 0)
	return ip.host.GetIntField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetLongField(env jni.Env, obj jni.Object, f jni.FieldID) int64 {
	w := ip.begin("GetLongField", 0)
	return ip.host.GetLongField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetFloatField(env jni.Env, obj jni.Object, f jni.FieldID) float32 {
	w := ip.begin("GetFloatField", 0)
	return ip.host.GetFloatField(env, w.unwrap(obj), f)
}

func (ip *Interposer) wGetDoubleField(env jni.Env, obj jni.Object, f jni.FieldID) float64 {
	w := ip.begin("GetDoubleField", 0)
	return ip.host.GetDoubleField(env, w.unwrap(obj), f)
}

// Instance field setters.

func (ip *Interposer) wSetObjectField(env jni.Env, obj jni.Object, f jni.FieldID, val jni.Object) {
	w := ip.begin("SetObjectField", 0)
	ip.host.SetObjectField(env, w.unwrap(obj), f, w.unwrap(val))
}

func (ip *Interposer) wSetBooleanField(env jni.Env, obj jni.Object, f jni.FieldID, val uint8) {
	w := ip.begin("SetBooleanField", 0)
	ip.host.SetBooleanField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetByteField(env jni.Env, obj jni.Object, f jni.FieldID, val int8) {
	w := ip.begin("SetByteField", 0)
	ip.host.SetByteField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetCharField(env jni.Env, obj jni.Object, f jni.FieldID, val uint16) {
	w := ip.begin("SetCharField", 0)
	ip.host.SetCharField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetShortField(env jni.Env, obj jni.Object, f jni.FieldID, val int16) {
	w := ip.begin("SetShortField", 0)
	ip.host.SetShortField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetIntField(env jni.Env, obj jni.Object, f jni.FieldID, val int32) {
	w := ip.begin("SetIntField", 0)
	ip.host.SetIntField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetLongField(env jni.Env, obj jni.Object, f jni.FieldID, val int64) {
	w := ip.begin("SetLongField", 0)
	ip.host.SetLongField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetFloatField(env jni.Env, obj jni.Object, f jni.FieldID, val float32) {
	w := ip.begin("SetFloatField", 0)
	ip.host.SetFloatField(env, w.unwrap(obj), f, val)
}

func (ip *Interposer) wSetDoubleField(env jni.Env, obj jni.Object, f jni.FieldID, val float64) {
	w := ip.begin("SetDoubleField", 0)
	ip.host.SetDoubleField(env, w.unwrap(obj), f, val)
}

// Static field getters.

func (ip *Interposer) wGetStaticObjectField(env jni.Env, clazz jni.Class, f jni.FieldID) jni.Object {
	w := ip.begin("GetStaticObjectField", 0)
	return w.wrap(ip.host.GetStaticObjectField(env, w.unwrap(clazz), f))
}

func (ip *Interposer) wGetStaticBooleanField(env jni.Env, clazz jni.Class, f jni.FieldID) uint8 {
	w := ip.begin("GetStaticBooleanField", 0)
	return ip.host.GetStaticBooleanField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticByteField(env jni.Env, clazz jni.Class, f jni.FieldID) int8 {
	w := ip.begin("GetStaticByteField", 0)
	return ip.host.GetStaticByteField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticCharField(env jni.Env, clazz jni.Class, f jni.FieldID) uint16 {
	w := ip.begin("GetStaticCharField", 0)
	return ip.host.GetStaticCharField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticShortField(env jni.Env, clazz jni.Class, f jni.FieldID) int16 {
	w := ip.begin("GetStaticShortField", 0)
	return ip.host.GetStaticShortField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticIntField(env jni.Env, clazz jni.Class, f jni.FieldID) int32 {
	w := ip.begin("GetStaticIntField", 0)
	return ip.host.GetStaticIntField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticLongField(env jni.Env, clazz jni.Class, f jni.FieldID) int64 {
	w := ip.begin("GetStaticLongField", 0)
	return ip.host.GetStaticLongField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticFloatField(env jni.Env, clazz jni.Class, f jni.FieldID) float32 {
	w := ip.begin("GetStaticFloatField", 0)
	return ip.host.GetStaticFloatField(env, w.unwrap(clazz), f)
}

func (ip *Interposer) wGetStaticDoubleField(env jni.Env, clazz jni.Class, f jni.FieldID) float64 {
	w := ip.begin("GetStaticDoubleField", 0)
	return ip.host.GetStaticDoubleField(env, w.unwrap(clazz), f)
}

// Static field setters.

func (ip *Interposer) wSetStaticObjectField(env jni.Env, clazz jni.Class, f jni.FieldID, val jni.Object) {
	w := ip.begin("SetStaticObjectField", 0)
	ip.host.SetStaticObjectField(env, w.unwrap(clazz), f, w.unwrap(val))
}

func (ip *Interposer) wSetStaticBooleanField(env jni.Env, clazz jni.Class, f jni.FieldID, val uint8) {
	w := ip.begin("SetStaticBooleanField", 0)
	ip.host.SetStaticBooleanField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticByteField(env jni.Env, clazz jni.Class, f jni.FieldID, val int8) {
	w := ip.begin("SetStaticByteField", 0)
	ip.host.SetStaticByteField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticCharField(env jni.Env, clazz jni.Class, f jni.FieldID, val uint16) {
	w := ip.begin("SetStaticCharField", 0)
	ip.host.SetStaticCharField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticShortField(env jni.Env, clazz jni.Class, f jni.FieldID, val int16) {
	w := ip.begin("SetStaticShortField", 0)
	ip.host.SetStaticShortField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticIntField(env jni.Env, clazz jni.Class, f jni.FieldID, val int32) {
	w := ip.begin("SetStaticIntField", 0)
	ip.host.SetStaticIntField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticLongField(env jni.Env, clazz jni.Class, f jni.FieldID, val int64) {
	w := ip.begin("SetStaticLongField", 0)
	ip.host.SetStaticLongField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticFloatField(env jni.Env, clazz jni.Class, f jni.FieldID, val float32) {
	w := ip.begin("SetStaticFloatField", 0)
	ip.host.SetStaticFloatField(env, w.unwrap(clazz), f, val)
}

func (ip *Interposer) wSetStaticDoubleField(env jni.Env, clazz jni.Class, f jni.FieldID, val float64) {
	w := ip.begin("SetStaticDoubleField", 0)
	ip.host.SetStaticDoubleField(env, w.unwrap(clazz), f, val)
}
