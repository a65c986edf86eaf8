// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package noding

import "testing"

func TestLineIntersectorNoIntersection(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(1, 0), NewCoordinate(0, 5), NewCoordinate(1, 5))
	if li.HasIntersection() {
		t.Fatalf("parallel disjoint segments: HasIntersection() = true")
	}
	if li.Result() != NoIntersection {
		t.Errorf("Result() = %v, want NoIntersection", li.Result())
	}
}

func TestLineIntersectorProperCross(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(10, 10), NewCoordinate(0, 10), NewCoordinate(10, 0))
	if !li.HasIntersection() {
		t.Fatalf("crossing segments: HasIntersection() = false")
	}
	if li.Result() != PointIntersection {
		t.Fatalf("Result() = %v, want PointIntersection", li.Result())
	}
	if !li.IsProper() {
		t.Errorf("IsProper() = false, want true")
	}
	got := li.Intersection(0)
	want := NewCoordinate(5, 5)
	if !got.Equal2D(want) {
		t.Errorf("Intersection(0) = %v, want %v", got, want)
	}
}

func TestLineIntersectorTJunction(t *testing.T) {
	li := NewLineIntersector()
	// (5,0) is an endpoint of the second segment and an interior point
	// of the first.
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(5, 0), NewCoordinate(5, 5))
	if !li.HasIntersection() || li.Result() != PointIntersection {
		t.Fatalf("T-junction: HasIntersection=%v Result=%v", li.HasIntersection(), li.Result())
	}
	if li.IsProper() {
		t.Errorf("IsProper() = true, want false (endpoint touch)")
	}
	if !li.IsInteriorIntersection() {
		t.Errorf("IsInteriorIntersection() = false, want true")
	}
	want := NewCoordinate(5, 0)
	if got := li.Intersection(0); !got.Equal2D(want) {
		t.Errorf("Intersection(0) = %v, want %v", got, want)
	}
}

func TestLineIntersectorSharedVertexIsNotInterior(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(10, 0), NewCoordinate(10, 10))
	if !li.HasIntersection() {
		t.Fatalf("shared endpoint: HasIntersection() = false")
	}
	if li.IsInteriorIntersection() {
		t.Errorf("IsInteriorIntersection() = true, want false for a pure shared-vertex touch")
	}
}

func TestLineIntersectorCollinearOverlap(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(5, 0), NewCoordinate(15, 0))
	if li.Result() != CollinearIntersection {
		t.Fatalf("Result() = %v, want CollinearIntersection", li.Result())
	}
	if li.IntersectionNum() != 2 {
		t.Fatalf("IntersectionNum() = %d, want 2", li.IntersectionNum())
	}
	p0, p1 := li.Intersection(0), li.Intersection(1)
	if !((p0.Equal2D(NewCoordinate(5, 0)) && p1.Equal2D(NewCoordinate(10, 0))) ||
		(p1.Equal2D(NewCoordinate(5, 0)) && p0.Equal2D(NewCoordinate(10, 0)))) {
		t.Errorf("collinear overlap points = (%v, %v), want {(5,0),(10,0)}", p0, p1)
	}
}

func TestLineIntersectorCollinearDisjoint(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(20, 0), NewCoordinate(30, 0))
	if li.Result() != NoIntersection {
		t.Fatalf("Result() = %v, want NoIntersection", li.Result())
	}
}

func TestLineIntersectorCollinearTouchingAtPoint(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(10, 0), NewCoordinate(20, 0))
	if li.Result() != PointIntersection {
		t.Fatalf("Result() = %v, want PointIntersection (collinear segments touching at one point)", li.Result())
	}
}

// TestLineIntersectorSymmetry verifies spec.md §8 property 6: compute(a,b)
// and compute(b,a) must agree on result kind and on the set of reported
// intersection points.
func TestLineIntersectorSymmetry(t *testing.T) {
	cases := [][4]Coordinate{
		{NewCoordinate(0, 0), NewCoordinate(10, 10), NewCoordinate(0, 10), NewCoordinate(10, 0)},
		{NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(5, 0), NewCoordinate(5, 5)},
		{NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(5, 0), NewCoordinate(15, 0)},
		{NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(20, 0), NewCoordinate(30, 0)},
		{NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(0, 5), NewCoordinate(10, 5)},
	}
	for _, c := range cases {
		a0, a1, b0, b1 := c[0], c[1], c[2], c[3]

		li1 := NewLineIntersector()
		li1.ComputeIntersection(a0, a1, b0, b1)

		li2 := NewLineIntersector()
		li2.ComputeIntersection(b0, b1, a0, a1)

		if li1.Result() != li2.Result() {
			t.Errorf("compute(a,b)=%v compute(b,a)=%v for %v; want equal result kind", li1.Result(), li2.Result(), c)
			continue
		}
		if li1.IntersectionNum() != li2.IntersectionNum() {
			t.Errorf("compute(a,b) and compute(b,a) disagree on intersection count for %v", c)
			continue
		}
		for k := 0; k < li1.IntersectionNum(); k++ {
			if !pointInSet(li1.Intersection(k), li2) {
				t.Errorf("compute(a,b) point %v not reported by compute(b,a) for %v", li1.Intersection(k), c)
			}
		}
	}
}

func pointInSet(p Coordinate, li *LineIntersector) bool {
	for k := 0; k < li.IntersectionNum(); k++ {
		if li.Intersection(k).Equal2D(p) {
			return true
		}
	}
	return false
}

func TestLineIntersectorEnvelopeReject(t *testing.T) {
	li := NewLineIntersector()
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(1, 1), NewCoordinate(100, 100), NewCoordinate(200, 200))
	if li.HasIntersection() {
		t.Errorf("disjoint envelopes: HasIntersection() = true")
	}
}

func TestLineIntersectorPrecisionRounding(t *testing.T) {
	pm, err := NewFixedPrecisionModel(1)
	if err != nil {
		t.Fatalf("NewFixedPrecisionModel(1): %v", err)
	}
	li := NewLineIntersector()
	li.SetPrecisionModel(pm)
	// A near-crossing at (4.6, 4.6) should round to the integer grid.
	li.ComputeIntersection(NewCoordinate(0, 0), NewCoordinate(9.2, 9.2), NewCoordinate(0, 9.2), NewCoordinate(9.2, 0))
	if !li.HasIntersection() {
		t.Fatalf("HasIntersection() = false")
	}
	got := li.Intersection(0)
	if got.X != 5 || got.Y != 5 {
		t.Errorf("Intersection(0) = %v, want rounded to (5,5)", got)
	}
}
