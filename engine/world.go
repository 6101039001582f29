package engine

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/status"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// Pointer is the sampled pointer state for one tick
type Pointer struct {
	Pos     vmath.Vec2 // World coordinates
	Attract bool       // Primary button held
	Repel   bool       // Secondary button held
}

// World is the simulation state: body registry, particle and effect lists
// Single mutator: only the simulation loop goroutine touches it
type World struct {
	Config *Config

	// Bodies is the registry; order is irrelevant to physics but drives draw layering
	Bodies []*component.Body

	// Effective is the per-tick gravity source set: registry plus pointer pseudo bodies
	Effective []*component.Body

	Particles []component.Particle
	Effects   []component.Effect

	Pointer Pointer
	Tool    string // Active pointer tool label

	Frame int64

	Rand   *rand.Rand
	Events *event.Queue
	Status *status.Registry

	nextID  component.BodyID
	pending Batch
}

// NewWorld creates an empty world
func NewWorld(cfg *Config, rng *rand.Rand) *World {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{
		Config:  cfg,
		Rand:    rng,
		Events:  event.NewQueue(),
		Status:  status.NewRegistry(),
		Tool:    parameter.ToolNone,
		nextID:  1,
		pending: newBatch(),
	}
}

func (w *World) assignID(b *component.Body) {
	b.ID = w.nextID
	w.nextID++
}

// Add registers a body immediately; not for use during a registry scan
func (w *World) Add(b *component.Body) component.BodyID {
	w.assignID(b)
	w.Bodies = append(w.Bodies, b)
	return b.ID
}

// AddAll registers bodies immediately
func (w *World) AddAll(bodies []*component.Body) {
	for _, b := range bodies {
		w.Add(b)
	}
}

// Get returns the resident body with id
func (w *World) Get(id component.BodyID) (*component.Body, bool) {
	for _, b := range w.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Len returns the registry size
func (w *World) Len() int { return len(w.Bodies) }

// AtCap reports whether the registry has reached the population cap
func (w *World) AtCap() bool { return len(w.Bodies) >= w.Config.MaxBodies }

// Pending returns the deferred mutation batch of the current tick
func (w *World) Pending() *Batch { return &w.pending }

// MarkRemoved defers removal of a resident body, returns false if already marked
func (w *World) MarkRemoved(id component.BodyID) bool { return w.pending.MarkRemoved(id) }

// IsMarked reports whether id is pending removal this tick
func (w *World) IsMarked(id component.BodyID) bool { return w.pending.IsMarked(id) }

// Queue defers an addition; the ID is assigned now so events can reference it
func (w *World) Queue(b *component.Body) component.BodyID {
	w.assignID(b)
	w.pending.additions = append(w.pending.additions, b)
	return b.ID
}

// Commit applies pending removals then additions and clears the batch
func (w *World) Commit() (removed, added int) {
	if w.pending.Empty() {
		return 0, 0
	}

	if len(w.pending.removed) > 0 {
		kept := w.Bodies[:0]
		for _, b := range w.Bodies {
			if w.pending.IsMarked(b.ID) {
				removed++
				continue
			}
			kept = append(kept, b)
		}
		// Release dropped tail pointers
		for i := len(kept); i < len(w.Bodies); i++ {
			w.Bodies[i] = nil
		}
		w.Bodies = kept
	}

	added = len(w.pending.additions)
	w.Bodies = append(w.Bodies, w.pending.additions...)

	w.pending.reset()
	return removed, added
}

// EnforceCap keeps only the MaxBodies heaviest bodies, returns the number evicted
// Sorts ascending by mass (stable) and retains the highest-mass suffix
func (w *World) EnforceCap() int {
	limit := w.Config.MaxBodies
	if limit <= 0 || len(w.Bodies) <= limit {
		return 0
	}

	sort.SliceStable(w.Bodies, func(i, j int) bool {
		return w.Bodies[i].Mass < w.Bodies[j].Mass
	})

	evicted := len(w.Bodies) - limit
	kept := make([]*component.Body, limit)
	copy(kept, w.Bodies[evicted:])
	w.Bodies = kept
	return evicted
}

// AddParticle appends to the particle list
func (w *World) AddParticle(p component.Particle) {
	w.Particles = append(w.Particles, p)
}

// AddEffect appends to the effect list
func (w *World) AddEffect(e component.Effect) {
	w.Effects = append(w.Effects, e)
}

// ClearTransient drops particles, effects and any pending batch
func (w *World) ClearTransient() {
	w.Particles = w.Particles[:0]
	w.Effects = w.Effects[:0]
	w.pending.reset()
}

// Reset replaces the registry with bodies and clears particles and effects
// IDs keep increasing across resets
func (w *World) Reset(bodies []*component.Body) {
	w.Bodies = nil
	w.Effective = nil
	w.ClearTransient()
	w.AddAll(bodies)
}

// Emit pushes an event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Emit(t, payload, w.Frame)
}

// Center returns the world center
func (w *World) Center() vmath.Vec2 {
	return vmath.V(w.Config.Width/2, w.Config.Height/2)
}
