package spquad

import (
	"math/rand"
	"testing"
)

func randomBox(rnd *rand.Rand, maxStart, maxWidth float32) BBox {
	bb := BBox{
		MinX: rnd.Float32() * maxStart,
		MinY: rnd.Float32() * maxStart,
	}
	bb.MaxX = bb.MinX + rnd.Float32()*maxWidth
	bb.MaxY = bb.MinY + rnd.Float32()*maxWidth
	return bb
}

func TestPredicates(t *testing.T) {
	unit := BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	for _, tc := range []struct {
		name string
		fn   func(a, b BBox) bool
		a, b BBox
		want bool
	}{
		{"contains inner", Contains, unit, BBox{MinX: 0.25, MinY: 0.25, MaxX: 0.75, MaxY: 0.75}, true},
		{"contains self", Contains, unit, unit, true},
		{"contains overhang", Contains, unit, BBox{MinX: 0.5, MinY: 0.5, MaxX: 1.5, MaxY: 0.75}, false},
		{"left", Left, unit, BBox{MinX: 2, MinY: 0, MaxX: 3, MaxY: 1}, true},
		{"left touching", Left, unit, BBox{MinX: 1, MinY: 0, MaxX: 3, MaxY: 1}, false},
		{"right", Right, BBox{MinX: 2, MinY: 0, MaxX: 3, MaxY: 1}, unit, true},
		{"right touching", Right, BBox{MinX: 1, MinY: 0, MaxX: 3, MaxY: 1}, unit, false},
		{"below", Below, unit, BBox{MinX: 0, MinY: 2, MaxX: 1, MaxY: 3}, true},
		{"below touching", Below, unit, BBox{MinX: 0, MinY: 1, MaxX: 1, MaxY: 3}, false},
		{"above", Above, BBox{MinX: 0, MinY: 2, MaxX: 1, MaxY: 3}, unit, true},
		{"above overlapping", Above, BBox{MinX: 0, MinY: 0.5, MaxX: 1, MaxY: 3}, unit, false},
		{"overleft", OverLeft, unit, BBox{MinX: 0.5, MinY: 0, MaxX: 1, MaxY: 1}, true},
		{"overleft past", OverLeft, BBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}, unit, false},
		{"overright", OverRight, BBox{MinX: 0, MinY: 5, MaxX: 9, MaxY: 9}, unit, true},
		{"overright past", OverRight, BBox{MinX: -1, MinY: 0, MaxX: 1, MaxY: 1}, unit, false},
		{"overbelow", OverBelow, BBox{MinX: 5, MinY: -9, MaxX: 9, MaxY: 1}, unit, true},
		{"overbelow past", OverBelow, BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 2}, unit, false},
		{"overabove", OverAbove, BBox{MinX: 5, MinY: 0, MaxX: 9, MaxY: 9}, unit, true},
		{"overabove past", OverAbove, BBox{MinX: 0, MinY: -1, MaxX: 1, MaxY: 1}, unit, false},
		{"equals", Equals, unit, BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, true},
		{"equals differs", Equals, unit, BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 2}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.a, tc.b); got != tc.want {
				t.Errorf("got %t want %t for a=%v b=%v", got, tc.want, tc.a, tc.b)
			}
		})
	}
}

func TestAbsentPolicy(t *testing.T) {
	unit := BBox{MaxX: 1, MaxY: 1}
	preds := map[string]func(a, b BBox) bool{
		"contains":  Contains,
		"left":      Left,
		"right":     Right,
		"below":     Below,
		"above":     Above,
		"overleft":  OverLeft,
		"overright": OverRight,
		"overbelow": OverBelow,
		"overabove": OverAbove,
	}
	for name, fn := range preds {
		for _, pair := range [][2]BBox{{NoBBox, unit}, {unit, NoBBox}, {NoBBox, NoBBox}} {
			if fn(pair[0], pair[1]) {
				t.Errorf("%s(%v, %v) should be false", name, pair[0], pair[1])
			}
		}
	}

	if !Equals(NoBBox, NoBBox) {
		t.Error("absent boxes should equal each other")
	}
	if Equals(NoBBox, unit) || Equals(unit, NoBBox) {
		t.Error("absent box should not equal a defined box")
	}
	if Equals(NoBBox, BBox{}) {
		t.Error("absent box should not equal the zero box")
	}
	if !NoBBox.IsAbsent() || (BBox{}).IsAbsent() {
		t.Error("IsAbsent is wrong")
	}
}

func TestDirectionalSymmetry(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		a := randomBox(rnd, 0.9, 0.1)
		b := randomBox(rnd, 0.9, 0.1)
		if Left(a, b) != Right(b, a) {
			t.Fatalf("left/right asymmetric for a=%v b=%v", a, b)
		}
		if Below(a, b) != Above(b, a) {
			t.Fatalf("below/above asymmetric for a=%v b=%v", a, b)
		}
		if a.MaxX < b.MinX {
			if !Left(a, b) || !Right(b, a) || Right(a, b) || Left(b, a) {
				t.Fatalf("wrong horizontal relations for a=%v b=%v", a, b)
			}
		}
		if !Equals(a, a) {
			t.Fatalf("box not equal to itself: %v", a)
		}
		if !Contains(a, a) {
			t.Fatalf("box does not contain itself: %v", a)
		}
	}
}
