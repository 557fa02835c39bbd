// Package refcodec encodes and decodes reference tokens crossing the
// Java/native boundary. The codec is an interposition point: the default
// is a reversible XOR mask, but callers can install any policy (tagging,
// shadow maps) as long as wrap and unwrap stay inverses and preserve null.
//
// Both operations must be allocation-free; they run on every boundary
// crossing and are invoked from emitted trampoline code.
package refcodec

// Codec transforms reference tokens. Unwrap(Wrap(p)) == p for all p,
// and both directions map 0 to 0.
type Codec interface {
	Wrap(ref uint64) uint64
	Unwrap(ref uint64) uint64
}

// XORCodec masks the token bits with a fixed value. A zero mask is the
// identity transform.
type XORCodec struct {
	Mask uint64
}

// Wrap applies the mask. Null is preserved regardless of mask.
func (c XORCodec) Wrap(ref uint64) uint64 {
	if ref == 0 {
		return 0
	}
	return ref ^ c.Mask
}

// Unwrap removes the mask. XOR is its own inverse.
func (c XORCodec) Unwrap(ref uint64) uint64 {
	if ref == 0 {
		return 0
	}
	return ref ^ c.Mask
}

// Identity passes tokens through untouched.
var Identity Codec = XORCodec{}
