package kdtree

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/cznic/mathutil"
)

// Metric selects the distance used by nearest-neighbor queries. The set is
// closed: only the L1, L2 and L∞ norms decompose along the split axes the
// way branch-and-bound pruning needs.
type Metric interface {
	// Name returns the canonical metric name: "l1", "l2" or "linf".
	Name() string

	// reduce combines per-axis gaps into a comparable distance. Integer L2
	// distances stay squared so they remain exact.
	reduce(dx, dy magnitude) distance

	// value combines per-axis gaps into the true distance.
	value(dx, dy float64) float64
}

// The three supported norms.
var (
	L1   Metric = ManhattanMetric{}
	L2   Metric = EuclideanMetric{}
	LInf Metric = ChebyshevMetric{}
)

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Name() string   { return "l1" }
func (ManhattanMetric) String() string { return "l1" }

func (ManhattanMetric) reduce(dx, dy magnitude) distance {
	hi, lo := mathutil.AddUint128_64(dx.u, dy.u)
	return distance{hi: hi, lo: lo, f: dx.f + dy.f}
}

func (ManhattanMetric) value(dx, dy float64) float64 { return dx + dy }

// EuclideanMetric computes the Euclidean (L2) distance.
// Integer comparisons use the exact squared distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Name() string   { return "l2" }
func (EuclideanMetric) String() string { return "l2" }

func (EuclideanMetric) reduce(dx, dy magnitude) distance {
	// Each square needs 128 bits and their sum one more.
	h1, l1 := mathutil.MulUint128_64(dx.u, dx.u)
	h2, l2 := mathutil.MulUint128_64(dy.u, dy.u)
	lo, carry := bits.Add64(l1, l2, 0)
	hi, top := bits.Add64(h1, h2, carry)
	// Squaring float gaps overflows past 1e154; Hypot orders the same way
	// and does not.
	return distance{top: top, hi: hi, lo: lo, f: math.Hypot(dx.f, dy.f)}
}

func (EuclideanMetric) value(dx, dy float64) float64 { return math.Hypot(dx, dy) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Name() string   { return "linf" }
func (ChebyshevMetric) String() string { return "linf" }

func (ChebyshevMetric) reduce(dx, dy magnitude) distance {
	return distance{lo: max(dx.u, dy.u), f: max(dx.f, dy.f)}
}

func (ChebyshevMetric) value(dx, dy float64) float64 { return math.Max(dx, dy) }

// ParseMetric resolves a metric by name. Accepted names are case-insensitive:
// "l1"/"manhattan", "l2"/"euclidean", "linf"/"chebyshev".
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "l1", "manhattan", "cityblock":
		return ManhattanMetric{}, nil
	case "l2", "euclidean":
		return EuclideanMetric{}, nil
	case "linf", "l∞", "chebyshev", "max":
		return ChebyshevMetric{}, nil
	default:
		return nil, fmt.Errorf("kdtree: unknown metric %q", name)
	}
}

// Distance returns the distance between a and b under m as a float64.
// Integer gaps are exact before the conversion; only the final value is
// rounded.
func Distance[T Number](a, b Point[T], m Metric) float64 {
	k := kindOf[T]()
	dx, dy := span(k, a.X, b.X), span(k, a.Y, b.Y)
	return m.value(dx.float(), dy.float())
}

// magnitude is the absolute gap between two coordinates. Integer gaps live
// in u and are exact for every supported integer type; floating-point gaps
// live in f. The unused field is always zero.
type magnitude struct {
	u uint64
	f float64
}

func (m magnitude) float() float64 { return float64(m.u) + m.f }

// span returns |a-b|. For signed integers the two's-complement difference
// of the ordered pair is the true difference, since it is below 2^64.
func span[T Number](k numKind, a, b T) magnitude {
	if a == b {
		// Inf - Inf is NaN.
		return magnitude{}
	}
	if a < b {
		a, b = b, a
	}
	switch k {
	case kindFloat:
		return magnitude{f: float64(a) - float64(b)}
	case kindUnsigned:
		return magnitude{u: uint64(a) - uint64(b)}
	default:
		return magnitude{u: uint64(int64(a)) - uint64(int64(b))}
	}
}

// distance is a comparable metric value. Integer distances use the 129-bit
// (top, hi, lo) word triple; floating-point distances use f. Since exactly
// one representation is populated per tree, lexicographic comparison of all
// four fields orders both correctly.
type distance struct {
	top, hi, lo uint64
	f           float64
}

func (d distance) less(e distance) bool {
	if d.top != e.top {
		return d.top < e.top
	}
	if d.hi != e.hi {
		return d.hi < e.hi
	}
	if d.lo != e.lo {
		return d.lo < e.lo
	}
	return d.f < e.f
}
