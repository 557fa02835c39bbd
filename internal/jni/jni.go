// Package jni models the host VM's JNI interface: the reference and id
// token types, the raw jvalue union, and the function table in the
// published slot order. The table is plain data; behavior lives in the
// host VM's implementation and in the interposer's replacement slots.
package jni

import "math"

// Env is an opaque JNIEnv* value in the native address space.
type Env uint64

// Ref is a reference token for a Java heap object. Its bit pattern is
// meaningful only to the VM (or, once wrapped, to the reference codec).
type Ref uint64

// Aliases for readability; all reference kinds share one representation,
// which is what lets wrap/unwrap treat them uniformly.
type (
	Class     = Ref
	Object    = Ref
	String    = Ref
	Throwable = Ref
	Array     = Ref
	Weak      = Ref
)

// MethodID and FieldID are opaque VM tokens; they pass through the
// interposer untouched.
type (
	MethodID uint64
	FieldID  uint64
)

// Ptr is a raw pointer into the native address space (element buffers,
// region buffers, va_list storage). The interposer forwards these
// opaquely.
type Ptr uint64

// RefType is the GetObjectRefType result.
type RefType int32

const (
	InvalidRefType RefType = iota
	LocalRefType
	GlobalRefType
	WeakGlobalRefType
)

// Status codes shared with the tool interface.
const (
	OK   = 0
	Err  = -1
	VErr = -3 // version error
)

// JNI interface versions.
const (
	Version1_6 = 0x00010006
	Version1_8 = 0x00010008
)

// Jvalue is the raw 64-bit union slot of the JNI jvalue. Floats are
// stored as IEEE bit patterns; narrower integers occupy the low bits.
type Jvalue uint64

// Constructors.

func BoolValue(v uint8) Jvalue     { return Jvalue(v) }
func ByteValue(v int8) Jvalue      { return Jvalue(uint8(v)) }
func CharValue(v uint16) Jvalue    { return Jvalue(v) }
func ShortValue(v int16) Jvalue    { return Jvalue(uint16(v)) }
func IntValue(v int32) Jvalue      { return Jvalue(uint32(v)) }
func LongValue(v int64) Jvalue     { return Jvalue(uint64(v)) }
func FloatValue(v float32) Jvalue  { return Jvalue(math.Float32bits(v)) }
func DoubleValue(v float64) Jvalue { return Jvalue(math.Float64bits(v)) }
func RefValue(v Ref) Jvalue        { return Jvalue(v) }

// Accessors.

func (j Jvalue) Bool() uint8      { return uint8(j) }
func (j Jvalue) Byte() int8       { return int8(j) }
func (j Jvalue) Char() uint16     { return uint16(j) }
func (j Jvalue) Short() int16     { return int16(j) }
func (j Jvalue) Int() int32       { return int32(j) }
func (j Jvalue) Long() int64      { return int64(j) }
func (j Jvalue) Float() float32   { return math.Float32frombits(uint32(j)) }
func (j Jvalue) Double() float64  { return math.Float64frombits(uint64(j)) }
func (j Jvalue) Obj() Ref         { return Ref(j) }

// VaList is the walked form of a C va_list: one entry per declared
// argument, already promoted per the C variadic ABI (integers widened to
// at least int, floats to double).
type VaList []any

// NativeMethod describes one entry of a RegisterNatives table.
type NativeMethod struct {
	Name      string
	Signature string
	FnPtr     uint64
}
