package jit

import (
	"bytes"
	"testing"

	"github.com/zboralski/indri/internal/sig"
)

var testHelpers = Helpers{
	WrapRef:             0xF0000000,
	UnwrapRef:           0xF0000004,
	EnterUserNativeCode: 0xF0000008,
	LeaveUserNativeCode: 0xF000000C,
	LookupNativeFunc:    0xF0000010,
}

func parse(t *testing.T, desc string) *sig.Signature {
	t.Helper()
	s, ok := sig.Parse(desc, 2)
	if !ok {
		t.Fatalf("parse %q failed", desc)
	}
	return &s
}

func TestTemplateDeterministic(t *testing.T) {
	s := parse(t, "(I)I")
	a, err := EmitTemplateCode(s, testHelpers)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EmitTemplateCode(s, testHelpers)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same signature emitted different bytes")
	}
	if len(a)%4 != 0 {
		t.Errorf("template length %d not instruction-aligned", len(a))
	}
}

// Template size depends only on the signature shape, never on helper
// addresses; immediate materialization is fixed-width.
func TestTemplateSizeIndependentOfAddresses(t *testing.T) {
	s := parse(t, "(Ljava/lang/String;)Ljava/lang/String;")
	a, err := EmitTemplateCode(s, testHelpers)
	if err != nil {
		t.Fatal(err)
	}
	other := Helpers{
		WrapRef:             0x123456789ABC,
		UnwrapRef:           0xFFFFFFFFFFFF,
		EnterUserNativeCode: 0x1,
		LeaveUserNativeCode: 0x2,
		LookupNativeFunc:    0x3,
	}
	b, err := EmitTemplateCode(s, other)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Errorf("template size varies with helper addresses: %d vs %d", len(a), len(b))
	}
}

func TestTemplateRejectsWideSignatures(t *testing.T) {
	// 2 synthesized pointers + 7 ints = 9 integer-class arguments.
	if _, err := EmitTemplateCode(parse(t, "(IIIIIII)V"), testHelpers); err == nil {
		t.Error("9 integer args accepted")
	}
	// 9 float-class arguments.
	if _, err := EmitTemplateCode(parse(t, "(DDDDDDDDD)V"), testHelpers); err == nil {
		t.Error("9 float args accepted")
	}
	// 8 of each is fine.
	if _, err := EmitTemplateCode(parse(t, "(IIIIIIDDDDDDDD)V"), testHelpers); err != nil {
		t.Errorf("8+8 args rejected: %v", err)
	}
}

func TestTemplateRequiresEnvPointer(t *testing.T) {
	s, ok := sig.Parse("(I)I", 0)
	if !ok {
		t.Fatal("parse failed")
	}
	if _, err := EmitTemplateCode(&s, testHelpers); err == nil {
		t.Error("signature without env pointer accepted")
	}
}

func TestBackendEntryAtAllocationStart(t *testing.T) {
	b := NewA64Backend(&memSink{}, 0x10000, 0x10000)
	entry, block, code, err := b.EmitTemplate(parse(t, "(I)I"), testHelpers)
	if err != nil {
		t.Fatal(err)
	}
	if entry != block.Start {
		t.Errorf("entry %#x not at block start %#x", entry, block.Start)
	}
	if uint64(len(code)) != block.Len {
		t.Errorf("block length %d does not match code %d", block.Len, len(code))
	}
}
