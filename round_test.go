package spquad

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
)

func TestRoundExact(t *testing.T) {
	for _, d := range []float64{0, 1, -1, 1.5, -2.25, 1 << 20, math.Inf(1), math.Inf(-1)} {
		if got := RoundDown(d); float64(got) != d {
			t.Errorf("RoundDown(%g) = %g, want unchanged", d, got)
		}
		if got := RoundUp(d); float64(got) != d {
			t.Errorf("RoundUp(%g) = %g, want unchanged", d, got)
		}
	}
}

func TestRoundOverflow(t *testing.T) {
	inf := float32(math.Inf(1))
	for _, tc := range []struct {
		got, want float32
	}{
		{RoundDown(1e300), math.MaxFloat32},
		{RoundUp(1e300), inf},
		{RoundDown(-1e300), -inf},
		{RoundUp(-1e300), -math.MaxFloat32},
	} {
		if tc.got != tc.want {
			t.Errorf("got %g want %g", tc.got, tc.want)
		}
	}
}

func TestRoundIsTight(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	inf := float32(math.Inf(1))
	for i := 0; i < 10000; i++ {
		d := rnd.NormFloat64() * math.Pow(10, float64(rnd.Intn(12)-6))

		lo := RoundDown(d)
		if float64(lo) > d {
			t.Fatalf("RoundDown(%v) = %v is above the input", d, lo)
		}
		if next := math.Nextafter32(lo, inf); float64(next) <= d {
			t.Fatalf("RoundDown(%v) = %v but %v is closer", d, lo, next)
		}

		hi := RoundUp(d)
		if float64(hi) < d {
			t.Fatalf("RoundUp(%v) = %v is below the input", d, hi)
		}
		if prev := math.Nextafter32(hi, -inf); float64(prev) >= d {
			t.Fatalf("RoundUp(%v) = %v but %v is closer", d, hi, prev)
		}
	}
}

func TestBBoxFromBoundCovers(t *testing.T) {
	b := orb.Bound{Min: orb.Point{0.1, -0.3}, Max: orb.Point{0.7, 1e-9}}
	bb := BBoxFromBound(b)
	if float64(bb.MinX) > 0.1 || float64(bb.MinY) > -0.3 || float64(bb.MaxX) < 0.7 || float64(bb.MaxY) < 1e-9 {
		t.Errorf("%v does not cover %v", bb, b)
	}
	if bb.IsAbsent() {
		t.Error("converted box should not be absent")
	}
}
