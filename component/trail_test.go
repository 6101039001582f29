package component

import (
	"testing"

	"github.com/lixenwraith/gravity-sandbox/vmath"
)

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(vmath.V(float64(i), 0))
	}

	if tr.Len() != 3 {
		t.Fatalf("Expected 3 points, got %d", tr.Len())
	}

	for i, want := range []float64{2, 3, 4} {
		if got := tr.At(i).X; got != want {
			t.Errorf("Point %d: expected X=%.0f, got %.0f", i, want, got)
		}
	}
}

func TestTrailPartialAndClear(t *testing.T) {
	tr := NewTrail(10)
	tr.Push(vmath.V(1, 1))
	tr.Push(vmath.V(2, 2))

	var seen []float64
	tr.Each(func(_ int, p vmath.Vec2) { seen = append(seen, p.X) })
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("Expected [1 2], got %v", seen)
	}

	tr.Clear()
	if tr.Len() != 0 || tr.Cap() != 10 {
		t.Errorf("Expected empty trail with capacity 10, got len=%d cap=%d", tr.Len(), tr.Cap())
	}
}

func TestParticleFade(t *testing.T) {
	p := NewParticle(vmath.Zero, vmath.Zero, RGBWhite, 60, false)
	if p.Fade() != 1 {
		t.Errorf("Expected full fade ratio, got %f", p.Fade())
	}
	p.Life = 15
	if p.Fade() != 0.25 {
		t.Errorf("Expected 0.25, got %f", p.Fade())
	}
	p.Life = -1
	if p.Alive() || p.Fade() != 0 {
		t.Error("Expected dead particle with zero fade")
	}
}

func TestEffectProgress(t *testing.T) {
	e := NewFlash(vmath.Zero, 300, 40)
	if e.Progress() != 0 || e.CurrentRadius() != 0 || e.Alpha() != 1 {
		t.Errorf("Expected fresh flash at zero progress, got p=%f r=%f a=%f", e.Progress(), e.CurrentRadius(), e.Alpha())
	}

	e.Life = 20
	if e.CurrentRadius() != 150 {
		t.Errorf("Expected radius 150 at half life, got %f", e.CurrentRadius())
	}
	if e.Alpha() != 0.75 {
		t.Errorf("Expected alpha 0.75, got %f", e.Alpha())
	}
}
