package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/gravity-sandbox/vmath"
)

func TestRadiusDerivedPerKind(t *testing.T) {
	tests := []struct {
		kind Kind
		mass float64
		want float64
	}{
		{KindPlanet, 1.0, 3},     // round(1 * 2.5)
		{KindStar, 30, 16},       // round(5.477 * 3)
		{KindBlackHole, 500, 34}, // round(22.36 * 1.5)
		{KindQuasar, 2000, 54},   // round(44.72 * 1.2)
		{KindPulsar, 15, 5},      // round(3.873 * 1.2)
		{KindAttractor, -800, 71},
		{KindPlanet, 0.01, 1}, // floored to 1
	}

	for _, tt := range tests {
		if got := RadiusFor(tt.kind, tt.mass); got != tt.want {
			t.Errorf("%s mass %.2f: expected radius %.0f, got %.0f", tt.kind, tt.mass, tt.want, got)
		}
	}
}

func TestSetMassRederivesRadius(t *testing.T) {
	b := NewBlackHole(vmath.Zero, vmath.Zero, 100, 0)
	if b.Radius != 15 {
		t.Fatalf("Expected initial radius 15, got %.0f", b.Radius)
	}

	b.SetMass(400)
	if b.Radius != 30 {
		t.Errorf("Expected radius 30 after SetMass, got %.0f", b.Radius)
	}
}

func TestConstructorsSetVariantState(t *testing.T) {
	star := NewStar(vmath.Zero, vmath.Zero, 5)
	if star.Trail == nil || star.Trail.Cap() != 100 {
		t.Error("Expected star trail with capacity 100")
	}
	if star.Color != RGBYellow {
		t.Errorf("Expected star colored by mass, got %v", star.Color)
	}

	planet := NewPlanet(vmath.Zero, vmath.Zero, 1, RGBWhite, "Earth")
	if planet.Trail == nil || planet.Trail.Cap() != 500 {
		t.Error("Expected planet trail with capacity 500")
	}
	if planet.Name != "Earth" {
		t.Errorf("Expected name Earth, got %q", planet.Name)
	}

	pulsar := NewPulsar(vmath.Zero, vmath.Zero, 15, 7)
	if pulsar.Trail != nil {
		t.Error("Expected pulsar without trail")
	}
	if pulsar.Spin.Speed != 0.1 {
		t.Errorf("Expected pulsar spin 0.1, got %f", pulsar.Spin.Speed)
	}
	if pulsar.Spin.Angle < 0 || pulsar.Spin.Angle >= 2*math.Pi {
		t.Errorf("Expected wrapped angle, got %f", pulsar.Spin.Angle)
	}

	quasar := NewQuasar(vmath.Zero, vmath.Zero, 2000, 1.5, 0)
	if !quasar.Kind.IsBlackHoleClass() || !quasar.Kind.IsEmitter() {
		t.Error("Expected quasar to be black-hole class and emitter")
	}
	if quasar.DiskHue != 0.5 {
		t.Errorf("Expected wrapped hue 0.5, got %f", quasar.DiskHue)
	}

	if NewAttractor(vmath.Zero, 800).IsResident() {
		t.Error("Expected attractor to be non-resident")
	}
}

func TestKindClasses(t *testing.T) {
	for _, k := range []Kind{KindStar, KindPlanet, KindPulsar, KindAttractor} {
		if k.IsBlackHoleClass() {
			t.Errorf("Expected %s not to be black-hole class", k)
		}
	}
	if KindBlackHole.IsEmitter() {
		t.Error("Expected plain black hole not to emit")
	}
	if Kind(42).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Kind(42))
	}
}

func TestColorForMass(t *testing.T) {
	tests := []struct {
		mass float64
		want RGB
	}{
		{1, RGBRedDwarf},
		{3.99, RGBRedDwarf},
		{4, RGBYellow},
		{9.99, RGBYellow},
		{10, RGBBlueGiant},
		{24.9, RGBBlueGiant},
		{25, RGBBlueWhite},
		{5000, RGBBlueWhite},
	}
	for _, tt := range tests {
		if got := ColorForMass(tt.mass); got != tt.want {
			t.Errorf("Mass %.2f: expected %v, got %v", tt.mass, tt.want, got)
		}
	}
}

func TestHSVPrimaries(t *testing.T) {
	if got := HSV(0, 1, 1); got != (RGB{255, 0, 0}) {
		t.Errorf("Expected red, got %v", got)
	}
	if got := HSV(1.0/3, 1, 1); got != (RGB{0, 255, 0}) {
		t.Errorf("Expected green, got %v", got)
	}
	if got := HSV(0.5, 0, 0); got != RGBBlack {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestRGBOps(t *testing.T) {
	if got := RGBWhite.Scale(0); got != RGBBlack {
		t.Errorf("Expected black, got %v", got)
	}
	if got := (RGB{200, 10, 0}).Add(RGB{100, 10, 0}); got != (RGB{255, 20, 0}) {
		t.Errorf("Expected saturated add, got %v", got)
	}
	if got := RGBBlack.Lerp(RGBWhite, 1); got != RGBWhite {
		t.Errorf("Expected full lerp to reach target, got %v", got)
	}
	if got := RGBBlack.Lerp(RGBWhite, 0); got != RGBBlack {
		t.Errorf("Expected zero lerp to keep source, got %v", got)
	}
}
