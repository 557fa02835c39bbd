package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collector accumulates events for one agent session. Safe for concurrent
// use; wrappers append from whatever thread the VM dispatched on.
type Collector struct {
	SessionID uuid.UUID

	mu     sync.Mutex
	events []*Event
	counts map[string]int
}

// NewCollector creates a collector with a fresh session id.
func NewCollector() *Collector {
	return &Collector{
		SessionID: uuid.New(),
		counts:    make(map[string]int),
	}
}

// Add records an event, stamping time and the per-name counter.
func (c *Collector) Add(e *Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	c.counts[e.Name]++
	e.Counter = c.counts[e.Name]
	c.events = append(c.events, e)
}

// Record is the convenience form used by wrappers.
func (c *Collector) Record(pc uint64, name, detail string, tags ...Tag) {
	c.Add(&Event{PC: pc, Name: name, Detail: detail, Tags: Tags(tags)})
}

// Events returns a snapshot of collected events.
func (c *Collector) Events() []*Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Event{}, c.events...)
}

// Count returns how many times name was recorded.
func (c *Collector) Count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}

// Clear drops collected events but keeps the session id.
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
	c.counts = make(map[string]int)
}
