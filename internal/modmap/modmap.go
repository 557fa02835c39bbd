// Package modmap classifies code addresses as belonging to system or user
// modules. A sorted interval set maps address ranges to loaded modules;
// lookups that miss trigger a rebuild from the provider (the OS memory map
// or the emulator's module registry) and one retry. Addresses that still
// resolve nowhere are treated as system, so the agent never transforms a
// call it cannot attribute.
package modmap

import (
	"sort"
	"strings"
	"sync"

	glog "github.com/zboralski/indri/internal/log"
)

// Module is one loaded object with its mapped address range.
type Module struct {
	Start uint64
	End   uint64 // exclusive
	Path  string
}

// Provider enumerates the currently loaded modules. Rebuilds call it each
// time; it must be safe for repeated invocation.
type Provider interface {
	Modules() ([]Module, error)
}

// Classifier answers system-vs-user for code addresses.
type Classifier struct {
	mu       sync.Mutex
	provider Provider
	prefixes []string // path prefixes marking a module as system
	self     string   // the agent's own object path, always system

	intervals []interval // sorted by start, disjoint
}

type interval struct {
	start, end uint64 // half-open, already shrunk by one byte per side
	system     bool
	path       string
}

// New creates a classifier over the given provider. prefixes are path
// prefixes whose modules count as system; selfPath (may be empty) names
// the agent's own object.
func New(p Provider, prefixes []string, selfPath string) *Classifier {
	return &Classifier{provider: p, prefixes: prefixes, self: selfPath}
}

// IsSystem reports whether addr lies in a system module. Unknown
// addresses are system.
func (c *Classifier) IsSystem(addr uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if iv, ok := c.find(addr); ok {
		return iv.system
	}
	if err := c.rebuild(); err != nil {
		if glog.L != nil {
			glog.L.Warn("module map rebuild failed", glog.Err(err))
		}
		return true
	}
	if iv, ok := c.find(addr); ok {
		return iv.system
	}
	return true
}

// Lookup returns the module path for addr, if known. Does not rebuild.
func (c *Classifier) Lookup(addr uint64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if iv, ok := c.find(addr); ok {
		return iv.path, true
	}
	return "", false
}

// Invalidate drops the interval set; the next lookup rebuilds.
func (c *Classifier) Invalidate() {
	c.mu.Lock()
	c.intervals = nil
	c.mu.Unlock()
}

func (c *Classifier) find(addr uint64) (interval, bool) {
	ivs := c.intervals
	i := sort.Search(len(ivs), func(i int) bool { return ivs[i].end > addr })
	if i < len(ivs) && addr >= ivs[i].start {
		return ivs[i], true
	}
	return interval{}, false
}

func (c *Classifier) rebuild() error {
	mods, err := c.provider.Modules()
	if err != nil {
		return err
	}
	ivs := make([]interval, 0, len(mods))
	for _, m := range mods {
		// Shrink each range by one byte per side so reported ranges that
		// abut never produce adjacent intervals; exact boundary addresses
		// fall through to the conservative default.
		if m.End-m.Start <= 2 {
			continue
		}
		ivs = append(ivs, interval{
			start:  m.Start + 1,
			end:    m.End - 1,
			system: c.classify(m.Path),
			path:   m.Path,
		})
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].start < ivs[j].start })
	// Overlapping reports keep the first; a module map with true overlaps
	// is already inconsistent and the safe answer wins either way.
	out := ivs[:0]
	var prevEnd uint64
	for _, iv := range ivs {
		if iv.start < prevEnd {
			continue
		}
		out = append(out, iv)
		prevEnd = iv.end
	}
	c.intervals = out
	return nil
}

func (c *Classifier) classify(path string) bool {
	if path == "" {
		return true
	}
	if c.self != "" && path == c.self {
		return true
	}
	for _, p := range c.prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
