package emulator

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	glog "github.com/zboralski/indri/internal/log"
)

// ARM64 relocation types
const (
	R_AARCH64_ABS64     = 257  // Absolute 64-bit symbol reference
	R_AARCH64_GLOB_DAT  = 1025 // GOT entry for global data symbol
	R_AARCH64_JUMP_SLOT = 1026 // PLT GOT entry for function call
	R_AARCH64_RELATIVE  = 1027 // Position-independent data reference
)

// ELFInfo contains parsed ELF metadata.
type ELFInfo struct {
	Path     string
	Machine  elf.Machine
	Entry    uint64
	Symbols  map[string]uint64 // symbol name -> virtual address (all symbols)
	Imports  map[string]uint64 // symbol name -> PLT stub address (external imports only)
	Segments []Segment
	BaseAddr uint64 // Load base address
	EndAddr  uint64 // End of loaded memory
}

// Segment represents a loadable ELF segment.
type Segment struct {
	VAddr  uint64
	PAddr  uint64
	Offset uint64
	Size   uint64 // File size
	MemSz  uint64 // Memory size (may be larger due to .bss)
	Flags  elf.ProgFlag
	Data   []byte
}

// LoadELFBase is the default base address for position-independent
// libraries; a low fixed base keeps emulated addresses readable.
const LoadELFBase = 0x40000000

// LoadELF loads an ELF file, maps it into the emulator, and registers it
// in the module registry. Position-independent libraries (base addr 0)
// are relocated to LoadELFBase.
func (e *Emulator) LoadELF(path string) (*ELFInfo, error) {
	return e.LoadELFAt(path, 0)
}

// LoadELFAt loads an ELF file at a specific base address. A loadBase of
// 0 auto-selects: executables keep their vaddr, shared libraries go to
// LoadELFBase.
func (e *Emulator) LoadELFAt(path string, loadBase uint64) (*ELFInfo, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ELF: %w", err)
	}
	defer f.Close()

	if f.Machine != elf.EM_AARCH64 {
		return nil, fmt.Errorf("expected ARM64 (EM_AARCH64), got %v", f.Machine)
	}

	// Find file base address (lowest PT_LOAD vaddr)
	fileBase := uint64(0xFFFFFFFFFFFFFFFF)
	fileEnd := uint64(0)
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		if prog.Vaddr < fileBase {
			fileBase = prog.Vaddr
		}
		segEnd := prog.Vaddr + prog.Memsz
		if segEnd > fileEnd {
			fileEnd = segEnd
		}
	}
	if fileBase == 0xFFFFFFFFFFFFFFFF {
		return nil, fmt.Errorf("no PT_LOAD segments found")
	}

	var relocOffset uint64
	if loadBase != 0 {
		relocOffset = loadBase - fileBase
	} else if fileBase < 0x10000 {
		relocOffset = LoadELFBase - fileBase
	}

	info := &ELFInfo{
		Path:     path,
		Machine:  f.Machine,
		Entry:    f.Entry + relocOffset,
		Symbols:  make(map[string]uint64),
		Imports:  make(map[string]uint64),
		BaseAddr: fileBase + relocOffset,
		EndAddr:  fileEnd + relocOffset,
	}

	// Load symbols from .dynsym and .symtab (with relocation).
	// Strip version suffixes (@@VERSION or @VERSION) for consistent lookup.
	syms, err := f.DynamicSymbols()
	if err == nil {
		for _, sym := range syms {
			if sym.Value != 0 && sym.Name != "" {
				addr := sym.Value + relocOffset
				info.Symbols[sym.Name] = addr
				if idx := strings.Index(sym.Name, "@@"); idx != -1 {
					info.Symbols[sym.Name[:idx]] = addr
				} else if idx := strings.Index(sym.Name, "@"); idx != -1 {
					info.Symbols[sym.Name[:idx]] = addr
				}
			}
		}
	}
	syms, err = f.Symbols()
	if err == nil {
		for _, sym := range syms {
			if sym.Value != 0 && sym.Name != "" {
				info.Symbols[sym.Name] = sym.Value + relocOffset
			}
		}
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// Load PT_LOAD segments
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}

		loadVAddr := prog.Vaddr + relocOffset
		seg := Segment{
			VAddr:  loadVAddr,
			PAddr:  prog.Paddr + relocOffset,
			Offset: prog.Off,
			Size:   prog.Filesz,
			MemSz:  prog.Memsz,
			Flags:  prog.Flags,
		}
		if prog.Filesz > 0 && prog.Off+prog.Filesz <= uint64(len(fileData)) {
			seg.Data = fileData[prog.Off : prog.Off+prog.Filesz]
		}
		info.Segments = append(info.Segments, seg)

		// Map segment memory page-aligned (ignore error if already mapped)
		pageSize := uint64(0x1000)
		alignedAddr := loadVAddr & ^(pageSize - 1)
		alignedEnd := (loadVAddr + prog.Memsz + pageSize - 1) & ^(pageSize - 1)
		_ = e.MapRegion(alignedAddr, alignedEnd-alignedAddr)

		if len(seg.Data) > 0 {
			if err := e.MemWrite(loadVAddr, seg.Data); err != nil {
				return nil, fmt.Errorf("write segment at 0x%x: %w", loadVAddr, err)
			}
		}

		// Zero out .bss portion (memory size > file size)
		if prog.Memsz > prog.Filesz {
			zeros := make([]byte, prog.Memsz-prog.Filesz)
			_ = e.MemWrite(loadVAddr+prog.Filesz, zeros)
		}
	}

	// PLT stub addresses first; the relocation second pass needs them.
	addPLTSymbols(f, relocOffset, info.Symbols, info.Imports)

	if err := e.applyRelocations(f, relocOffset, info.Imports); err != nil {
		return nil, fmt.Errorf("apply relocations: %w", err)
	}

	e.RegisterModule(path, info.BaseAddr, info.EndAddr)

	return info, nil
}

// addPLTSymbols adds PLT stub addresses for external symbols so hooks can
// intercept external calls via their PLT entry.
func addPLTSymbols(f *elf.File, relocOffset uint64, symbols, imports map[string]uint64) {
	pltSec := f.Section(".plt")
	if pltSec == nil {
		return
	}
	relaPlt := f.Section(".rela.plt")
	if relaPlt == nil {
		return
	}
	dynSyms, err := f.DynamicSymbols()
	if err != nil {
		return
	}
	relaData, err := relaPlt.Data()
	if err != nil {
		return
	}

	// ARM64 PLT: 32-byte header, 16 bytes per entry
	pltBase := pltSec.Addr + relocOffset
	const pltHeaderSize = 32
	const pltEntrySize = 16

	entryIdx := 0
	for i := 0; i+24 <= len(relaData); i += 24 {
		rInfo := binary.LittleEndian.Uint64(relaData[i+8:])
		symIdx := int(rInfo >> 32)

		// Go's DynamicSymbols skips STN_UNDEF, so ELF indices are 1-based
		arrayIdx := symIdx - 1
		if arrayIdx < 0 || arrayIdx >= len(dynSyms) {
			entryIdx++
			continue
		}
		sym := dynSyms[arrayIdx]
		if sym.Name == "" || sym.Value != 0 {
			entryIdx++
			continue
		}

		pltAddr := pltBase + pltHeaderSize + uint64(entryIdx)*pltEntrySize
		symbols[sym.Name] = pltAddr
		imports[sym.Name] = pltAddr
		if idx := strings.Index(sym.Name, "@@"); idx != -1 {
			symbols[sym.Name[:idx]] = pltAddr
			imports[sym.Name[:idx]] = pltAddr
		} else if idx := strings.Index(sym.Name, "@"); idx != -1 {
			symbols[sym.Name[:idx]] = pltAddr
			imports[sym.Name[:idx]] = pltAddr
		}
		entryIdx++
	}
}

// applyRelocations processes ELF relocations to fix GOT entries. The
// imports map provides PLT stub addresses for external symbols.
func (e *Emulator) applyRelocations(f *elf.File, relocOffset uint64, imports map[string]uint64) error {
	dynSyms, _ := f.DynamicSymbols()
	symByIndex := make(map[int]elf.Symbol)
	for i, sym := range dynSyms {
		symByIndex[i+1] = sym
	}

	buf := make([]byte, 8)
	writePtr := func(addr, val uint64) {
		binary.LittleEndian.PutUint64(buf, val)
		_ = e.MemWrite(addr, buf)
	}

	for _, sec := range f.Sections {
		if sec.Type != elf.SHT_RELA {
			continue
		}
		if sec.Name != ".rela.dyn" && sec.Name != ".rela.plt" {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			continue
		}

		// Each RELA entry is 24 bytes: r_offset, r_info, r_addend
		for i := 0; i+24 <= len(data); i += 24 {
			rOffset := binary.LittleEndian.Uint64(data[i:])
			rInfo := binary.LittleEndian.Uint64(data[i+8:])
			rAddend := int64(binary.LittleEndian.Uint64(data[i+16:]))

			relType := uint32(rInfo & 0xFFFFFFFF)
			symIdx := int(rInfo >> 32)
			targetAddr := rOffset + relocOffset

			switch relType {
			case R_AARCH64_RELATIVE:
				writePtr(targetAddr, relocOffset+uint64(rAddend))

			case R_AARCH64_GLOB_DAT, R_AARCH64_JUMP_SLOT:
				if sym, ok := symByIndex[symIdx]; ok {
					if sym.Value != 0 {
						writePtr(targetAddr, sym.Value+relocOffset)
					} else if sym.Name == "__stack_chk_guard" {
						// External libc symbol; point at the TLS canary
						writePtr(targetAddr, TLSBase+0x28)
					}
				}

			case R_AARCH64_ABS64:
				if sym, ok := symByIndex[symIdx]; ok {
					if sym.Value != 0 {
						writePtr(targetAddr, sym.Value+relocOffset+uint64(rAddend))
					} else if sym.Name != "" {
						symName := sym.Name
						if idx := strings.Index(symName, "@@"); idx != -1 {
							symName = symName[:idx]
						} else if idx := strings.Index(symName, "@"); idx != -1 {
							symName = symName[:idx]
						}
						if stubAddr, ok := imports[symName]; ok {
							writePtr(targetAddr, stubAddr+uint64(rAddend))
						}
					}
				} else if rAddend > 0 {
					writePtr(targetAddr, relocOffset+uint64(rAddend))
				}
			}
		}
	}

	return nil
}

// InstallImportFallbacks hooks every unresolved import with a logged
// return-zero stub, so user code that calls into libraries we do not
// model keeps running instead of faulting.
func (e *Emulator) InstallImportFallbacks(imports map[string]uint64) int {
	installed := 0
	seen := make(map[uint64]bool)
	for name, addr := range imports {
		if addr == 0 || seen[addr] {
			continue
		}
		seen[addr] = true

		symName := name
		e.HookAddress(addr, func(emu *Emulator) bool {
			if glog.L != nil {
				glog.L.Trace(emu.LR(), "fallback", symName, "ret=0")
			}
			emu.SetX(0, 0)
			ReturnFromStub(emu)
			return false
		})
		installed++
	}
	return installed
}

// FindSymbol looks up a symbol by name, returns 0 if not found.
func (info *ELFInfo) FindSymbol(name string) uint64 {
	return info.Symbols[name]
}

// FindJNIOnLoad returns the address of JNI_OnLoad or 0.
func (info *ELFInfo) FindJNIOnLoad() uint64 {
	if addr := info.Symbols["JNI_OnLoad"]; addr != 0 {
		return addr
	}
	for name, addr := range info.Symbols {
		if strings.EqualFold(name, "JNI_OnLoad") {
			return addr
		}
	}
	return 0
}

// NativeExports returns the Java_* symbols: the statically exported
// native method implementations the VM will bind.
func (info *ELFInfo) NativeExports() map[string]uint64 {
	return info.FindSymbolsMatching(func(name string) bool {
		return strings.HasPrefix(name, "Java_")
	})
}

// FindSymbolsMatching returns all symbols matching a predicate.
func (info *ELFInfo) FindSymbolsMatching(predicate func(name string) bool) map[string]uint64 {
	result := make(map[string]uint64)
	for name, addr := range info.Symbols {
		if predicate(name) {
			result[name] = addr
		}
	}
	return result
}

// IsExecutable returns true if the segment is executable.
func (s *Segment) IsExecutable() bool {
	return s.Flags&elf.PF_X != 0
}

// IsWritable returns true if the segment is writable.
func (s *Segment) IsWritable() bool {
	return s.Flags&elf.PF_W != 0
}

// IsReadable returns true if the segment is readable.
func (s *Segment) IsReadable() bool {
	return s.Flags&elf.PF_R != 0
}
