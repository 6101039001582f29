package status

import (
	"math"
	"sync/atomic"
)

// Kind classifies a metric for the HUD and the exporter
type Kind uint8

const (
	KindCounter Kind = iota
	KindGauge
	KindFlag
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindFlag:
		return "flag"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Counter is monotonic for the lifetime of the process; scene resets do not rewind it
type Counter struct {
	v atomic.Int64
}

// Add ignores non-positive deltas
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.v.Add(n)
	}
}

func (c *Counter) Inc() { c.v.Add(1) }

func (c *Counter) Value() int64 { return c.v.Load() }

// Gauge holds the latest sampled value
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

// SetInt stores a count
func (g *Gauge) SetInt(n int) { g.Set(float64(n)) }

func (g *Gauge) Value() float64 { return math.Float64frombits(g.bits.Load()) }

// Flag is an on/off state
type Flag struct {
	v atomic.Bool
}

func (f *Flag) Set(on bool) { f.v.Store(on) }

func (f *Flag) Value() bool { return f.v.Load() }

// MaxLabelLen bounds label text, longer values are cut
const MaxLabelLen = 32

// Label is a short text state such as the active pointer tool
type Label struct {
	p atomic.Pointer[string]
}

func (l *Label) Set(s string) {
	if len(s) > MaxLabelLen {
		s = s[:MaxLabelLen]
	}
	l.p.Store(&s)
}

func (l *Label) Value() string {
	if p := l.p.Load(); p != nil {
		return *p
	}
	return ""
}
