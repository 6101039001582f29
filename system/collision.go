package system

import (
	"log"
	"math"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/physics"
	"github.com/lixenwraith/gravity-sandbox/status"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// CollisionSystem resolves star-star contacts into merges or supernovae
// Runs after ConsumeSystem on the same pending batch
type CollisionSystem struct {
	world *engine.World

	statMerged    *status.Counter
	statSupernova *status.Counter
}

func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{
		world:         world,
		statMerged:    world.Status.Counter("merge.total", "Star merges"),
		statSupernova: world.Status.Counter("supernova.total", "Supernova detonations"),
	}
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update scans unordered pairs (i<j), a body merges at most once per tick
func (s *CollisionSystem) Update() {
	w := s.world
	bodies := w.Bodies
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		if a.Kind != component.KindStar || w.IsMarked(a.ID) {
			continue
		}

		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if b.Kind != component.KindStar || w.IsMarked(b.ID) {
				continue
			}
			if !physics.Overlaps(a, b) {
				continue
			}

			s.resolve(a, b)
			break
		}
	}
}

func (s *CollisionSystem) resolve(a, b *component.Body) {
	w := s.world
	site := physics.MergeSite(a, b)
	total := a.Mass + b.Mass

	w.MarkRemoved(a.ID)
	w.MarkRemoved(b.ID)

	if total > parameter.SupernovaMassLimit {
		s.supernova(a, b, site, total)
		return
	}

	merged := component.NewStar(site, physics.MergeVelocity(a, b), total)
	id := w.Queue(merged)
	s.statMerged.Inc()

	w.Emit(event.EventStarMerged, &event.MergePayload{
		Site:   site,
		Mass:   total,
		Result: id,
	})
}

// supernova spawns the flash, debris and remnant, and pushes surviving bodies outward
func (s *CollisionSystem) supernova(a, b *component.Body, site vmath.Vec2, total float64) {
	w := s.world
	w.AddEffect(component.NewFlash(site, parameter.FlashMaxRadius, parameter.FlashDuration))

	palette := [3]component.RGB{component.RGBNearWhite, a.Color, b.Color}
	for range parameter.SupernovaParticleCount {
		angle := w.Rand.Float64() * 2 * math.Pi
		speed := parameter.SupernovaParticleSpeedMin +
			w.Rand.Float64()*(parameter.SupernovaParticleSpeedMax-parameter.SupernovaParticleSpeedMin)
		color := palette[w.Rand.Intn(len(palette))]
		w.AddParticle(component.NewParticle(site, vmath.FromAngle(angle, speed), color, parameter.SupernovaParticleLife, true))
	}

	// Shockwave reaches resident bodies only, queued additions are excluded
	shocked := 0
	for _, body := range w.Bodies {
		if body.Static || w.IsMarked(body.ID) {
			continue
		}
		physics.ApplyImpulse(body, physics.ShockwaveImpulse(site, body.Pos))
		shocked++
	}

	var remnant *component.Body
	if total > parameter.PulsarMassLimit {
		remnant = component.NewBlackHole(site, vmath.Zero, total, w.Rand.Float64())
	} else {
		remnant = component.NewPulsar(site, vmath.Zero, total, w.Rand.Float64()*2*math.Pi)
	}
	id := w.Queue(remnant)
	s.statSupernova.Inc()

	log.Printf("supernova: mass=%.2f site=(%.1f,%.1f) remnant=%s shocked=%d", total, site.X, site.Y, remnant.Kind, shocked)

	w.Emit(event.EventSupernova, &event.SupernovaPayload{
		Site:       site,
		Mass:       total,
		Remnant:    remnant.Kind,
		RemnantID:  id,
		Particles:  parameter.SupernovaParticleCount,
		ShockedIDs: shocked,
	})
}
