package kdtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the coordinate domain of a tree: any fixed-width integer or
// floating-point type. One tree instance uses a single coordinate type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a 2D coordinate. Points are plain values; equality is exact
// component-wise equality, so == can be used directly.
type Point[T Number] struct {
	X, Y T
}

// Pt returns the point (x, y).
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Coord returns the coordinate on the given axis: X for 0, Y for 1.
func (p Point[T]) Coord(axis int) T {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// Less orders points lexicographically by (X, Y).
func (p Point[T]) Less(q Point[T]) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// valid reports whether p can be stored as a key. A NaN coordinate never
// compares equal to itself, so such a point could be inserted but never
// found again.
func (p Point[T]) valid() bool {
	return p.X == p.X && p.Y == p.Y
}

func (p Point[T]) String() string {
	return fmt.Sprintf("{%v, %v}", p.X, p.Y)
}

// Item is a stored (value, point) pair.
type Item[T Number, V any] struct {
	Value V
	Point Point[T]
}

func (it Item[T, V]) String() string {
	return fmt.Sprintf("Item(%v, %v)", it.Value, it.Point)
}

// numKind classifies the coordinate type so that distance arithmetic can be
// exact for integers and plain float64 for floating point.
type numKind uint8

const (
	kindSigned numKind = iota
	kindUnsigned
	kindFloat
)

func kindOf[T Number]() numKind {
	one := T(1)
	if one/2 != 0 {
		return kindFloat
	}
	zero := T(0)
	if zero-one > zero {
		return kindUnsigned
	}
	return kindSigned
}
