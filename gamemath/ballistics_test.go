package gamemath

import (
	"math"
	"testing"
)

func TestLineIntersection(t *testing.T) {
	// A line going right from (0, 0) and a line going up from (5, 10)
	// meet at (5, 0).
	p := LineIntersection(
		Vector2{0, 0}, Vector2{1, 0},
		Vector2{5, 10}, Vector2{0, -1},
	)
	if !almostEqual(p.X, 5) || !almostEqual(p.Y, 0) {
		t.Fatalf("intersection = (%f, %f), want (5, 0)", p.X, p.Y)
	}
}

func TestLineIntersectionDiagonal(t *testing.T) {
	p := LineIntersection(
		Vector2{0, 0}, Vector2{1, 1},
		Vector2{4, 0}, Vector2{-1, 1},
	)
	if !almostEqual(p.X, 2) || !almostEqual(p.Y, 2) {
		t.Fatalf("intersection = (%f, %f), want (2, 2)", p.X, p.Y)
	}
}

func TestDragZeroVelocity(t *testing.T) {
	d := Drag(1, 1.2, 0.47, Vector2{})
	if d.X != 0 || d.Y != 0 {
		t.Fatalf("drag at rest = (%f, %f), want (0, 0)", d.X, d.Y)
	}
}

func TestDragOpposesVelocity(t *testing.T) {
	d := Drag(1, 1.2, 0.47, Vector2{10, 0})
	if d.X >= 0 || d.Y != 0 {
		t.Fatalf("drag for +x velocity = (%f, %f), want -x direction", d.X, d.Y)
	}

	// Quadratic: doubling speed quadruples the magnitude.
	d2 := Drag(1, 1.2, 0.47, Vector2{20, 0})
	if !almostEqual(d2.Length()/d.Length(), 4) {
		t.Fatalf("drag ratio for doubled speed = %f, want 4", d2.Length()/d.Length())
	}
}

func TestFlightTime(t *testing.T) {
	// Free fall from rest: d = 0.5*g*t^2 -> t = sqrt(2d/g).
	got := FlightTime(0, 0, 98, 100)
	want := math.Sqrt(2 * 100 / 98.0)
	if !almostEqual(got, want) {
		t.Fatalf("FlightTime free fall = %f, want %f", got, want)
	}
}

func TestFlightTimeAlreadyGrounded(t *testing.T) {
	if got := FlightTime(100, -50, 98, 100); got != 0 {
		t.Fatalf("FlightTime at floor = %f, want 0", got)
	}
	if got := FlightTime(150, 0, 98, 100); got != 0 {
		t.Fatalf("FlightTime below floor = %f, want 0", got)
	}
}

func TestFlightTimeUpwardLaunch(t *testing.T) {
	// Launching upward takes longer than dropping from rest.
	up := FlightTime(0, -50, 98, 100)
	rest := FlightTime(0, 0, 98, 100)
	if up <= rest {
		t.Fatalf("upward launch time %f not greater than free fall %f", up, rest)
	}
}
