// Package status holds live simulation metrics shared by systems, the HUD and the Prometheus exporter
// The simulation loop writes; the HUD and the exporter goroutine read
package status

import (
	"fmt"
	"sort"
	"sync"
)

// Sample is a point-in-time read of one metric
type Sample struct {
	Name  string
	Help  string
	Kind  Kind
	Value float64 // Flag: 0 or 1, Label: always 1
	Text  string  // Label only
}

type entry struct {
	kind   Kind
	help   string
	metric any
}

// Registry maps dotted names to typed metrics
// Lookups take the mutex; systems cache the returned pointer and write lock-free
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// lookup returns the metric under name, creating it on first use
// Help is taken from the first registration; a kind mismatch is a programming error and panics
func lookup[T any](r *Registry, name, help string, kind Kind) *T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		m, ok := e.metric.(*T)
		if !ok {
			panic(fmt.Sprintf("status: %q is a %s, requested as %s", name, e.kind, kind))
		}
		if e.help == "" {
			e.help = help
		}
		return m
	}

	m := new(T)
	r.entries[name] = &entry{kind: kind, help: help, metric: m}
	return m
}

func (r *Registry) Counter(name, help string) *Counter {
	return lookup[Counter](r, name, help, KindCounter)
}

func (r *Registry) Gauge(name, help string) *Gauge {
	return lookup[Gauge](r, name, help, KindGauge)
}

func (r *Registry) Flag(name, help string) *Flag {
	return lookup[Flag](r, name, help, KindFlag)
}

func (r *Registry) Label(name, help string) *Label {
	return lookup[Label](r, name, help, KindLabel)
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Snapshot reads every metric, sorted by name
func (r *Registry) Snapshot() []Sample {
	r.mu.Lock()
	out := make([]Sample, 0, len(r.entries))
	for name, e := range r.entries {
		out = append(out, e.sample(name))
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (e *entry) sample(name string) Sample {
	s := Sample{Name: name, Help: e.help, Kind: e.kind}
	switch m := e.metric.(type) {
	case *Counter:
		s.Value = float64(m.Value())
	case *Gauge:
		s.Value = m.Value()
	case *Flag:
		if m.Value() {
			s.Value = 1
		}
	case *Label:
		s.Value = 1
		s.Text = m.Value()
	}
	return s
}
