// Package input turns terminal events into simulation commands and pointer state
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
	"golang.org/x/time/rate"
)

// CellMapper converts screen cells to world coordinates
type CellMapper interface {
	ToWorld(x, y int) vmath.Vec2
}

// Router holds pointer state between frames and resolves key events
// Single consumer: the main loop
type Router struct {
	keys    *KeyTable
	mapper  CellMapper
	limiter *rate.Limiter
	now     func() time.Time
	full    func() bool

	pointer engine.Pointer
}

// NewRouter creates a router with the default key table and spawn limiter
func NewRouter(mapper CellMapper) *Router {
	return &Router{
		keys:    DefaultKeyTable(),
		mapper:  mapper,
		limiter: rate.NewLimiter(rate.Limit(parameter.SpawnRateLimit), parameter.SpawnBurst),
		now:     time.Now,
	}
}

// SetMapper replaces the cell mapping after a resize
func (r *Router) SetMapper(m CellMapper) {
	r.mapper = m
}

// SetFullCheck installs the registry capacity check
// Spawn keys are refused without spending a limiter token while full reports true
func (r *Router) SetFullCheck(full func() bool) {
	r.full = full
}

// Pointer returns the latest pointer state
func (r *Router) Pointer() engine.Pointer {
	return r.pointer
}

// Process consumes one terminal event
// Returns a command and true when the event resolves to one; mouse events only update the pointer
func (r *Router) Process(ev tcell.Event) (engine.Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.processKey(ev)
	case *tcell.EventMouse:
		r.processMouse(ev)
	}
	return engine.Command{}, false
}

func (r *Router) processKey(ev *tcell.EventKey) (engine.Command, bool) {
	typ := r.keys.Lookup(ev)
	if typ == engine.CommandNone {
		return engine.Command{}, false
	}

	cmd := engine.Command{Type: typ}
	if typ.IsSpawn() {
		if r.full != nil && r.full() {
			return engine.Command{}, false
		}
		// Key auto-repeat must not flood the registry
		if !r.limiter.AllowN(r.now(), 1) {
			return engine.Command{}, false
		}
		cmd.Pos = r.pointer.Pos
	}
	return cmd, true
}

func (r *Router) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if r.mapper != nil {
		r.pointer.Pos = r.mapper.ToWorld(x, y)
	}
	buttons := ev.Buttons()
	r.pointer.Attract = buttons&tcell.ButtonPrimary != 0
	r.pointer.Repel = buttons&tcell.ButtonSecondary != 0
}
