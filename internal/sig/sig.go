// Package sig parses JVM method descriptors into abstract signatures.
// A descriptor like "(Ljava/lang/String;I)[B" becomes an ordered list of
// JavaType arguments plus a return type; every reference type, including
// arrays at any nesting depth, collapses to Object.
package sig

import "strings"

// JavaType is one of the ten JVM value kinds.
type JavaType uint8

const (
	Void JavaType = iota
	Boolean
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
	Object
)

// Char codes match the JVM descriptor alphabet; Object covers both
// L-classes and arrays.
var typeChars = [...]byte{
	Void:    'V',
	Boolean: 'Z',
	Byte:    'B',
	Char:    'C',
	Short:   'S',
	Int:     'I',
	Long:    'J',
	Float:   'F',
	Double:  'D',
	Object:  'L',
}

// Code returns the single-character descriptor code for t.
func (t JavaType) Code() byte {
	return typeChars[t]
}

// IsReference reports whether t is a reference (pointer-sized token) type.
func (t JavaType) IsReference() bool {
	return t == Object
}

// IsFloat reports whether t is passed in a floating-point register.
func (t JavaType) IsFloat() bool {
	return t == Float || t == Double
}

func (t JavaType) String() string {
	switch t {
	case Void:
		return "void"
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Object:
		return "object"
	}
	return "unknown"
}

// Signature is the parsed form of a method descriptor. Arguments are in
// declaration order; synthesized leading pointer arguments (JNIEnv*, the
// receiver or class) come first when requested at parse time.
type Signature struct {
	Args   []JavaType
	Return JavaType

	// Annotations for trace output. Empty unless set by the caller.
	Name       string
	Descriptor string
	Class      string
}

// Equal reports whether two signatures have identical argument lists and
// return types. Annotations do not participate.
func (s *Signature) Equal(o *Signature) bool {
	if s.Return != o.Return || len(s.Args) != len(o.Args) {
		return false
	}
	for i, t := range s.Args {
		if t != o.Args[i] {
			return false
		}
	}
	return true
}

// ShortKey encodes the signature as <return-code><arg-codes...>. The
// mapping is injective over (Return, Args), so it is safe as a cache key.
func (s *Signature) ShortKey() string {
	var b strings.Builder
	b.Grow(1 + len(s.Args))
	b.WriteByte(s.Return.Code())
	for _, t := range s.Args {
		b.WriteByte(t.Code())
	}
	return b.String()
}

func (s *Signature) String() string {
	if s.Class != "" || s.Name != "" {
		return s.Class + "." + s.Name + s.Descriptor
	}
	return s.Descriptor
}

// Parse converts a JVM method descriptor "(args)ret" into a Signature.
// extraPtrArgs leading Object arguments are prepended to model the JNIEnv*
// and receiver/class parameters that exist in the C ABI but not in the
// descriptor. Returns ok=false on any deviation from the grammar.
func Parse(desc string, extraPtrArgs int) (Signature, bool) {
	var s Signature
	if len(desc) == 0 || desc[0] != '(' {
		return s, false
	}
	for i := 0; i < extraPtrArgs; i++ {
		s.Args = append(s.Args, Object)
	}
	rest := desc[1:]
	for len(rest) > 0 && rest[0] != ')' {
		t, rem, ok := consumeType(rest)
		if !ok {
			return Signature{}, false
		}
		s.Args = append(s.Args, t)
		rest = rem
	}
	if len(rest) == 0 || rest[0] != ')' {
		return Signature{}, false
	}
	rest = rest[1:]
	ret, rem, ok := consumeType(rest)
	if !ok || rem != "" {
		return Signature{}, false
	}
	s.Return = ret
	s.Descriptor = desc
	return s, true
}

// consumeType eats one type from the front of desc. Arrays recurse on the
// element type but always yield Object.
func consumeType(desc string) (JavaType, string, bool) {
	if len(desc) == 0 {
		return Void, "", false
	}
	switch desc[0] {
	case 'V':
		return Void, desc[1:], true
	case 'Z':
		return Boolean, desc[1:], true
	case 'B':
		return Byte, desc[1:], true
	case 'C':
		return Char, desc[1:], true
	case 'S':
		return Short, desc[1:], true
	case 'I':
		return Int, desc[1:], true
	case 'J':
		return Long, desc[1:], true
	case 'F':
		return Float, desc[1:], true
	case 'D':
		return Double, desc[1:], true
	case 'L':
		end := strings.IndexByte(desc, ';')
		if end < 0 {
			return Void, "", false
		}
		return Object, desc[end+1:], true
	case '[':
		if _, rem, ok := consumeType(desc[1:]); ok {
			return Object, rem, true
		}
		return Void, "", false
	}
	return Void, "", false
}
