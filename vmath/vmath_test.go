package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeZeroSafe(t *testing.T) {
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Expected zero vector, got %v", got)
	}

	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("Expected unit length, got %f", n.Len())
	}
	if math.Abs(n.X-0.6) > eps || math.Abs(n.Y-0.8) > eps {
		t.Errorf("Expected (0.6, 0.8), got %v", n)
	}
}

func TestPerpendicularIsOrthogonal(t *testing.T) {
	v := V(2, -7)
	if d := v.Dot(v.Perpendicular()); math.Abs(d) > eps {
		t.Errorf("Expected zero dot product, got %f", d)
	}
}

func TestClampLen(t *testing.T) {
	v := V(30, 40).ClampLen(5)
	if math.Abs(v.Len()-5) > eps {
		t.Errorf("Expected length 5, got %f", v.Len())
	}

	short := V(1, 1)
	if got := short.ClampLen(5); got != short {
		t.Errorf("Expected unchanged vector, got %v", got)
	}
}

func TestWeightedAverage(t *testing.T) {
	got := WeightedAverage(V(0, 0), 10, V(22, 11), 12)
	want := V(12, 6)
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := WeightedAverage(V(1, 1), 5, V(2, 2), -5); got != Zero {
		t.Errorf("Expected zero vector for cancelling weights, got %v", got)
	}
}

func TestWrap(t *testing.T) {
	if a := WrapAngle(-math.Pi / 2); math.Abs(a-1.5*math.Pi) > eps {
		t.Errorf("Expected 3π/2, got %f", a)
	}
	if h := WrapUnit(1.25); math.Abs(h-0.25) > eps {
		t.Errorf("Expected 0.25, got %f", h)
	}
	if h := WrapUnit(-0.25); math.Abs(h-0.75) > eps {
		t.Errorf("Expected 0.75, got %f", h)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 8)
	if math.Abs(v.X) > eps || math.Abs(v.Y-8) > eps {
		t.Errorf("Expected (0, 8), got %v", v)
	}
}
