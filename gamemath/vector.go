package gamemath

import "math"

// Vector2 is a 2D vector in screen space (y grows downward).
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{v.X * o.X, v.Y * o.Y}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// WithLength rescales the vector to the given magnitude, preserving
// direction. The zero vector is returned unchanged.
func (v Vector2) WithLength(length float64) Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(length / l)
}

func (v Vector2) Normalized() Vector2 {
	return v.WithLength(1)
}

// Angle returns the vector's angle in radians, in [-pi, pi].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing at the given angle.
func FromAngle(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{X: cos, Y: sin}
}

// Clamp limits x to [min, max].
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Lerp interpolates linearly from a to b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
