package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestWithLengthPreservesDirection(t *testing.T) {
	v := Vector2{3, 4}
	scaled := v.WithLength(10)
	if !almostEqual(scaled.Length(), 10) {
		t.Fatalf("length after WithLength(10) = %f, want 10", scaled.Length())
	}
	if !almostEqual(scaled.X, 6) || !almostEqual(scaled.Y, 8) {
		t.Fatalf("direction changed: got (%f, %f), want (6, 8)", scaled.X, scaled.Y)
	}
}

func TestWithLengthZeroVector(t *testing.T) {
	v := Vector2{}
	scaled := v.WithLength(5)
	if scaled.X != 0 || scaled.Y != 0 {
		t.Fatalf("zero vector rescaled to (%f, %f), want (0, 0)", scaled.X, scaled.Y)
	}
}

func TestAngle(t *testing.T) {
	cases := []struct {
		v    Vector2
		want float64
	}{
		{Vector2{1, 0}, 0},
		{Vector2{0, 1}, math.Pi / 2},
		{Vector2{-1, 0}, math.Pi},
		{Vector2{0, -1}, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := c.v.Angle(); !almostEqual(got, c.want) {
			t.Errorf("Angle(%v) = %f, want %f", c.v, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5, 0, 1) = %f, want 1", got)
	}
	if got := Clamp(-0.2, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.2, 0, 1) = %f, want 0", got)
	}
	if got := Clamp(0.7, 0, 1); got != 0.7 {
		t.Errorf("Clamp(0.7, 0, 1) = %f, want 0.7", got)
	}
}
