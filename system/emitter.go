package system

import (
	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// EmitterSystem spins pulsar and quasar jets, emits jet particle pairs and animates accretion disks
type EmitterSystem struct {
	world *engine.World
}

func NewEmitterSystem(world *engine.World) engine.System {
	return &EmitterSystem{world: world}
}

func (s *EmitterSystem) Priority() int {
	return parameter.PriorityEmitter
}

func (s *EmitterSystem) Update() {
	rng := s.world.Rand

	for _, b := range s.world.Bodies {
		switch b.Kind {
		case component.KindPulsar:
			b.Spin.Angle = vmath.WrapAngle(b.Spin.Angle + b.Spin.Speed)
			if rng.Float64() < parameter.PulsarEmitChance {
				s.emitPair(b, parameter.PulsarJetSpeed, b.Color, parameter.PulsarJetLife, false)
			}

		case component.KindQuasar:
			b.DiskHue = vmath.WrapUnit(b.DiskHue + parameter.QuasarDiskHueStep)
			b.Spin.Angle = vmath.WrapAngle(b.Spin.Angle + b.Spin.Speed)
			if rng.Float64() < parameter.QuasarEmitChance {
				color := component.HSV(vmath.WrapUnit(b.DiskHue+parameter.QuasarJetHueShift), 0.9, 1)
				s.emitPair(b, parameter.QuasarJetSpeed, color, parameter.QuasarJetLife, true)
			}

		case component.KindBlackHole:
			b.DiskHue = vmath.WrapUnit(b.DiskHue + parameter.BlackHoleDiskHueStep)
		}
	}
}

// emitPair spawns two opposed particles along the spin axis
func (s *EmitterSystem) emitPair(b *component.Body, speed float64, color component.RGB, life int, gravity bool) {
	v := vmath.FromAngle(b.Spin.Angle, speed)
	s.world.AddParticle(component.NewParticle(b.Pos, v, color, life, gravity))
	s.world.AddParticle(component.NewParticle(b.Pos, v.Neg(), color, life, gravity))
}
