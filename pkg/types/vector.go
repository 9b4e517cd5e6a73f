package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is a two-dimensional float vector.
type Vector struct {
	X, Y float64
}

// ParseVector parses the "x,y" notation, e.g. "1.5,-2".
func ParseVector(s string) (Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Vector{}, fmt.Errorf("vector %q must have the form \"x,y\"", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("invalid vector %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("invalid vector %q: %w", s, err)
	}
	return Vector{X: x, Y: y}, nil
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale multiplies both components by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and w.
func (v Vector) Distance(w Vector) float64 {
	return v.Sub(w).Length()
}

// Normalize returns the unit vector pointing in v's direction. The zero
// vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return v.Scale(1 / l)
}

// String renders the vector in the "x,y" notation accepted by ParseVector.
func (v Vector) String() string {
	return strconv.FormatFloat(v.X, 'f', -1, 64) + "," + strconv.FormatFloat(v.Y, 'f', -1, 64)
}
