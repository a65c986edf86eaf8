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

func TestQuadrant(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   int
	}{
		{1, 1, 0},
		{1, 0, 0},
		{0, 1, 0},
		{-1, 1, 1},
		{-1, -1, 2},
		{-1, 0, 1},
		{1, -1, 3},
		{0, -1, 3},
	}
	for _, tt := range tests {
		if got := quadrant(tt.dx, tt.dy); got != tt.want {
			t.Errorf("quadrant(%v, %v) = %d, want %d", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestBuildMonotoneChainsSingleChainForStraightLine(t *testing.T) {
	ss, err := NewSegmentString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(5, 5), NewCoordinate(10, 10)}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString: %v", err)
	}
	chains := BuildMonotoneChains(ss)
	if len(chains) != 1 {
		t.Fatalf("len(chains) = %d, want 1 (both segments stay in quadrant 0)", len(chains))
	}
	if chains[0].SegmentCount() != 2 {
		t.Errorf("SegmentCount() = %d, want 2", chains[0].SegmentCount())
	}
}

// TestBuildMonotoneChainsSplitsOnQuadrantChange covers the S4 scenario
// from spec.md §8: the self-intersecting polyline [(0,0),(10,10),(10,0),(0,10)]
// changes direction quadrant at every vertex, so it must decompose into
// three single-segment chains.
func TestBuildMonotoneChainsSplitsOnQuadrantChange(t *testing.T) {
	ss, err := NewSegmentString([]Coordinate{
		NewCoordinate(0, 0), NewCoordinate(10, 10), NewCoordinate(10, 0), NewCoordinate(0, 10),
	}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString: %v", err)
	}
	chains := BuildMonotoneChains(ss)
	if len(chains) != 3 {
		t.Fatalf("len(chains) = %d, want 3", len(chains))
	}
	for _, c := range chains {
		if c.SegmentCount() != 1 {
			t.Errorf("chain segment count = %d, want 1", c.SegmentCount())
		}
	}
}

func TestMonotoneChainEnvelope(t *testing.T) {
	ss, err := NewSegmentString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(10, 5), NewCoordinate(20, 1)}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString: %v", err)
	}
	chains := BuildMonotoneChains(ss)
	if len(chains) != 2 {
		t.Fatalf("len(chains) = %d, want 2", len(chains))
	}
	env := chains[0].Envelope()
	if env.minX != 0 || env.maxX != 10 || env.minY != 0 || env.maxY != 5 {
		t.Errorf("chains[0].Envelope() = %+v, want {0,0,10,5}", env)
	}
}

func TestComputeOverlapsFindsCrossingSegmentPair(t *testing.T) {
	a, err := NewSegmentString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(10, 10)}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString a: %v", err)
	}
	b, err := NewSegmentString([]Coordinate{NewCoordinate(0, 10), NewCoordinate(10, 0)}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString b: %v", err)
	}
	ca := BuildMonotoneChains(a)[0]
	cb := BuildMonotoneChains(b)[0]

	var got [][2]int
	ca.computeOverlaps(cb, func(i, j int) {
		got = append(got, [2]int{i, j})
	})
	if len(got) != 1 || got[0] != [2]int{0, 0} {
		t.Errorf("computeOverlaps pairs = %v, want [[0 0]]", got)
	}
}

func TestComputeOverlapsRejectsDisjointChains(t *testing.T) {
	a, _ := NewSegmentString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(1, 1)}, nil)
	b, _ := NewSegmentString([]Coordinate{NewCoordinate(100, 100), NewCoordinate(101, 101)}, nil)
	ca := BuildMonotoneChains(a)[0]
	cb := BuildMonotoneChains(b)[0]

	called := false
	ca.computeOverlaps(cb, func(i, j int) { called = true })
	if called {
		t.Error("computeOverlaps invoked action for envelope-disjoint chains")
	}
}

// TestSeparatesFromLineBatchPathRejectsFiveSegmentChain builds a
// single-segment chain against a 5-segment chain (n=6 vertices) whose
// points all fall strictly on one side of the single segment's line, so
// separatesFromLine's crossProductConstBatch path (only entered once a
// range has collapsed to a single segment and the other side still
// spans n >= 5 vertices) rejects the pair outright and computeOverlaps
// never reaches action.
func TestSeparatesFromLineBatchPathRejectsFiveSegmentChain(t *testing.T) {
	a, err := NewSegmentString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(10, 10)}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString a: %v", err)
	}
	b, err := NewSegmentString([]Coordinate{
		NewCoordinate(2, 0), NewCoordinate(3, 0), NewCoordinate(4, 0),
		NewCoordinate(5, 0), NewCoordinate(6, 0), NewCoordinate(7, 0),
	}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString b: %v", err)
	}
	ca := BuildMonotoneChains(a)[0]
	cb := BuildMonotoneChains(b)[0]
	if cb.SegmentCount() != 5 {
		t.Fatalf("cb.SegmentCount() = %d, want 5 (need n >= 5 vertices to reach the batch path)", cb.SegmentCount())
	}

	if !separatesFromLine(NewCoordinate(0, 0), NewCoordinate(10, 10), cb, cb.start, cb.end) {
		t.Fatal("separatesFromLine = false, want true: every vertex of b lies strictly below the line y=x")
	}

	called := false
	ca.computeOverlaps(cb, func(i, j int) { called = true })
	if called {
		t.Error("computeOverlaps invoked action for a chain the batch pre-reject should have discarded")
	}
}

// TestSeparatesFromLineBatchPathAdmitsCrossingFiveSegmentChain mirrors
// the rejection case above but with a 5-segment chain that straddles
// the single segment's line, so the batch cross-product pass hits a
// sign flip partway through and reports "not separable" rather than
// rejecting — letting computeOverlaps recurse down to the actual
// crossing segment pair instead of discarding it.
func TestSeparatesFromLineBatchPathAdmitsCrossingFiveSegmentChain(t *testing.T) {
	a, err := NewSegmentString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(10, 10)}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString a: %v", err)
	}
	b, err := NewSegmentString([]Coordinate{
		NewCoordinate(2, 0), NewCoordinate(3, 1), NewCoordinate(4, 5),
		NewCoordinate(5, 9), NewCoordinate(6, 10), NewCoordinate(7, 11),
	}, nil)
	if err != nil {
		t.Fatalf("NewSegmentString b: %v", err)
	}
	ca := BuildMonotoneChains(a)[0]
	cb := BuildMonotoneChains(b)[0]
	if cb.SegmentCount() != 5 {
		t.Fatalf("cb.SegmentCount() = %d, want 5 (need n >= 5 vertices to reach the batch path)", cb.SegmentCount())
	}

	if separatesFromLine(NewCoordinate(0, 0), NewCoordinate(10, 10), cb, cb.start, cb.end) {
		t.Fatal("separatesFromLine = true, want false: b's vertices straddle the line y=x")
	}

	var got [][2]int
	ca.computeOverlaps(cb, func(i, j int) {
		got = append(got, [2]int{i, j})
	})
	if len(got) == 0 {
		t.Error("computeOverlaps found no pairs for a chain that crosses the line")
	}
}
