package modmap

import (
	"strings"
	"testing"
)

type staticProvider struct {
	mods  []Module
	calls int
}

func (p *staticProvider) Modules() ([]Module, error) {
	p.calls++
	return p.mods, nil
}

func TestClassifyByPrefix(t *testing.T) {
	p := &staticProvider{mods: []Module{
		{Start: 0x1000, End: 0x2000, Path: "/system/lib64/libart.so"},
		{Start: 0x3000, End: 0x4000, Path: "/data/app/libgame.so"},
	}}
	c := New(p, []string{"/system/", "/apex/"}, "")

	if !c.IsSystem(0x1800) {
		t.Error("system library classified as user")
	}
	if c.IsSystem(0x3800) {
		t.Error("user library classified as system")
	}
}

func TestUnknownDefaultsToSystem(t *testing.T) {
	p := &staticProvider{}
	c := New(p, nil, "")
	if !c.IsSystem(0xDEAD0000) {
		t.Error("unknown address should default to system")
	}
}

func TestOwnObjectAlwaysSystem(t *testing.T) {
	p := &staticProvider{mods: []Module{
		{Start: 0x5000, End: 0x6000, Path: "/data/local/libindri.so"},
	}}
	c := New(p, nil, "/data/local/libindri.so")
	if !c.IsSystem(0x5800) {
		t.Error("agent's own object must be system")
	}
}

// Boundary addresses are shrunk out of the interval set and fall back to
// the conservative default.
func TestBoundaryAddressesMiss(t *testing.T) {
	p := &staticProvider{mods: []Module{
		{Start: 0x1000, End: 0x2000, Path: "/data/app/libgame.so"},
	}}
	c := New(p, nil, "")
	if c.IsSystem(0x1001) {
		t.Error("interior address should be user")
	}
	if !c.IsSystem(0x1000) {
		t.Error("start boundary should miss and default to system")
	}
	if !c.IsSystem(0x1FFF) {
		t.Error("end boundary should miss and default to system")
	}
}

func TestRebuildOnMiss(t *testing.T) {
	p := &staticProvider{mods: []Module{
		{Start: 0x1000, End: 0x2000, Path: "/data/app/liba.so"},
	}}
	c := New(p, nil, "")
	c.IsSystem(0x1800)
	before := p.calls

	// New module appears; first lookup misses, rebuild picks it up.
	p.mods = append(p.mods, Module{Start: 0x9000, End: 0xA000, Path: "/data/app/libb.so"})
	if c.IsSystem(0x9800) {
		t.Error("new user module classified as system")
	}
	if p.calls != before+1 {
		t.Errorf("expected exactly one rebuild, got %d", p.calls-before)
	}

	// Hits do not rebuild.
	c.IsSystem(0x9800)
	if p.calls != before+1 {
		t.Error("hit triggered a rebuild")
	}
}

func TestParseMaps(t *testing.T) {
	const maps = `7f3c8e000000-7f3c8e021000 r-xp 00000000 08:01 131 /usr/lib/libfoo.so
7f3c8e021000-7f3c8e040000 r--p 00021000 08:01 131 /usr/lib/libfoo.so
7f3c8e100000-7f3c8e200000 rw-p 00000000 00:00 0
7f3c8e300000-7f3c8e340000 r-xp 00000000 08:01 200 /system/lib64/libart.so
7f3c8e400000-7f3c8e440000 r-xp 00000000 00:00 0 [vdso]
`
	mods, err := ParseMaps(strings.NewReader(maps))
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 2 {
		t.Fatalf("got %d modules, want 2: %+v", len(mods), mods)
	}
	if mods[0].Path != "/usr/lib/libfoo.so" || mods[0].Start != 0x7f3c8e000000 {
		t.Errorf("module 0 wrong: %+v", mods[0])
	}
	if mods[1].Path != "/system/lib64/libart.so" {
		t.Errorf("module 1 wrong: %+v", mods[1])
	}
}
