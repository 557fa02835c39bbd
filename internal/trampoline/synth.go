// Package trampoline synthesizes the per-method stand-in functions the
// agent installs at native-method-bind time. One template is emitted per
// distinct signature shape; each bound method gets a bitwise copy at a
// fresh executable address, and the copy's address range is what lets
// lookup_native_func demultiplex the shared code back to the method.
package trampoline

import (
	"fmt"
	"sync"

	"github.com/zboralski/indri/internal/jit"
	glog "github.com/zboralski/indri/internal/log"
	"github.com/zboralski/indri/internal/sig"
	"github.com/zboralski/indri/internal/trace"
)

// envExtraPtrArgs is how many leading pointer arguments the C ABI adds
// over the Java descriptor: JNIEnv* and the receiver or class.
const envExtraPtrArgs = 2

// Synthesizer owns the template cache and the ReturnPCIndex.
type Synthesizer struct {
	backend jit.Backend
	helpers jit.Helpers
	index   *ReturnPCIndex

	// Collector receives codegen events when set.
	Collector *trace.Collector

	mu        sync.Mutex
	templates map[string]templateEntry
	failed    map[string]bool // log codegen failures once per (name, descriptor)
}

type templateEntry struct {
	block jit.CodeBlock
	code  []byte
}

// New creates a synthesizer over a backend and the shared index.
func New(backend jit.Backend, helpers jit.Helpers, index *ReturnPCIndex) *Synthesizer {
	return &Synthesizer{
		backend:   backend,
		helpers:   helpers,
		index:     index,
		templates: make(map[string]templateEntry),
		failed:    make(map[string]bool),
	}
}

// Index returns the shared ReturnPCIndex.
func (s *Synthesizer) Index() *ReturnPCIndex { return s.index }

// MakeTrampoline synthesizes the stand-in for one bound method and
// returns its entry address. On any failure it returns an error and the
// caller leaves the VM's direct binding in place.
func (s *Synthesizer) MakeTrampoline(name, descriptor string, originalEntry uint64) (uint64, error) {
	parsed, ok := sig.Parse(descriptor, envExtraPtrArgs)
	if !ok {
		return 0, s.fail(name, descriptor, fmt.Errorf("unparseable descriptor"))
	}

	tmpl, err := s.template(&parsed)
	if err != nil {
		return 0, s.fail(name, descriptor, err)
	}

	// Fresh region of exactly the template's size, bitwise copy,
	// finalize, then publish through the index. The index insertion must
	// be visible before the VM sees the new address.
	block, err := s.backend.Allocate(tmpl.block.Len)
	if err != nil {
		return 0, s.fail(name, descriptor, err)
	}
	if err := s.backend.Write(block, tmpl.code); err != nil {
		return 0, s.fail(name, descriptor, err)
	}
	if err := s.backend.Finalize(block); err != nil {
		return 0, s.fail(name, descriptor, err)
	}

	binding := &MethodBinding{
		Name:          name,
		Descriptor:    descriptor,
		OriginalEntry: originalEntry,
		Block:         block,
	}
	if err := s.index.Insert(block, binding); err != nil {
		return 0, s.fail(name, descriptor, err)
	}

	if s.Collector != nil {
		s.Collector.Record(block.Start, name, descriptor, trace.Trampoline)
	}
	if glog.L != nil {
		glog.L.Install("trampoline", name, block.Start, descriptor)
	}
	return block.Start, nil
}

// template returns the shared template for a signature, emitting it on
// first need. Templates are never evicted.
func (s *Synthesizer) template(parsed *sig.Signature) (templateEntry, error) {
	key := parsed.ShortKey()

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.templates[key]; ok {
		return t, nil
	}

	entry, block, code, err := s.backend.EmitTemplate(parsed, s.helpers)
	if err != nil {
		return templateEntry{}, err
	}
	// The emitted body must sit at offset 0 of its allocation, or copies
	// would not start at their block start.
	if entry != block.Start {
		return templateEntry{}, fmt.Errorf("template entry %#x not at allocation start %#x", entry, block.Start)
	}
	if uint64(len(code)) != block.Len {
		return templateEntry{}, fmt.Errorf("template size mismatch: %d code bytes vs %d block bytes", len(code), block.Len)
	}

	t := templateEntry{block: block, code: code}
	s.templates[key] = t
	if s.Collector != nil {
		s.Collector.Record(block.Start, key, "", trace.Codegen)
	}
	return t, nil
}

// TemplateCount reports how many distinct templates have been emitted.
func (s *Synthesizer) TemplateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.templates)
}

// fail logs a codegen failure once per (name, descriptor) and wraps the
// error for the caller.
func (s *Synthesizer) fail(name, descriptor string, err error) error {
	key := name + descriptor
	s.mu.Lock()
	first := !s.failed[key]
	s.failed[key] = true
	s.mu.Unlock()
	if first && glog.L != nil {
		glog.L.CodegenFailure(name, descriptor, err)
	}
	if first && s.Collector != nil {
		s.Collector.Record(0, name, err.Error(), trace.CodegenErr)
	}
	return fmt.Errorf("trampoline %s%s: %w", name, descriptor, err)
}
