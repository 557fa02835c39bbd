package refcodec

import "testing"

func TestRoundTrip(t *testing.T) {
	codecs := []Codec{
		Identity,
		XORCodec{Mask: 0xA5A5A5A5A5A5A5A5},
		XORCodec{Mask: 1 << 62},
	}
	values := []uint64{0, 1, 0xDEADBEEF, 0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}
	for _, c := range codecs {
		for _, v := range values {
			if got := c.Unwrap(c.Wrap(v)); got != v {
				t.Errorf("unwrap(wrap(%#x)) = %#x", v, got)
			}
			if got := c.Wrap(c.Unwrap(v)); got != v {
				t.Errorf("wrap(unwrap(%#x)) = %#x", v, got)
			}
		}
	}
}

func TestNullPreserved(t *testing.T) {
	c := XORCodec{Mask: 0xA5A5A5A5A5A5A5A5}
	if c.Wrap(0) != 0 || c.Unwrap(0) != 0 {
		t.Error("null not preserved")
	}
}

func TestMaskApplied(t *testing.T) {
	c := XORCodec{Mask: 0xFF00}
	if got := c.Wrap(0x1234); got != 0x1234^0xFF00 {
		t.Errorf("wrap(0x1234) = %#x", got)
	}
}
