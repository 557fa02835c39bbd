package modmap

import "github.com/zboralski/indri/internal/emulator"

// EmulatorProvider enumerates the modules the ELF loader has mapped
// into the emulated address space.
type EmulatorProvider struct {
	Emu *emulator.Emulator
}

// Modules implements Provider.
func (p *EmulatorProvider) Modules() ([]Module, error) {
	mods := p.Emu.Modules()
	out := make([]Module, len(mods))
	for i, m := range mods {
		out[i] = Module{Start: m.Start, End: m.End, Path: m.Path}
	}
	return out, nil
}
