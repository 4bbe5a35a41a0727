package gamemath

import "math"

// LineIntersection returns the intersection point of two infinite lines,
// each given by a point and a direction. Parallel directions are a caller
// precondition; the result degenerates to non-finite coordinates.
func LineIntersection(p1, dir1, p2, dir2 Vector2) Vector2 {
	d := p2.Sub(p1)
	cross := dir1.X*dir2.Y - dir1.Y*dir2.X
	t := (d.X*dir2.Y - d.Y*dir2.X) / cross
	return p1.Add(dir1.Scale(t))
}

// Drag returns the quadratic air-drag force on a sphere of the given radius
// moving at velocity: -0.5 * rho * cd * pi * r^2 * |v| * v.
func Drag(radius, airDensity, dragCoeff float64, velocity Vector2) Vector2 {
	k := 0.5 * airDensity * dragCoeff * math.Pi * radius * radius
	return velocity.Scale(velocity.Length()).Scale(-k)
}

// FlightTime predicts the seconds until a body launched at startY with
// vertical speed velocityY under constant gravity reaches floorY
// (y grows downward, gravity is positive). Returns 0 when already at or
// below the floor.
func FlightTime(startY, velocityY, gravity, floorY float64) float64 {
	drop := floorY - startY
	if drop <= 0 {
		return 0
	}
	// drop = v*t + 0.5*g*t^2, keep the positive root.
	disc := velocityY*velocityY + 2*gravity*drop
	if disc < 0 {
		return 0
	}
	return (-velocityY + math.Sqrt(disc)) / gravity
}
