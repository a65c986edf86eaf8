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

// SegmentIntersector is the strategy plug-in point the single-pass
// monotone-chain noder (C5) calls for every candidate segment pair that
// survives chain-envelope subdivision.
type SegmentIntersector interface {
	// ProcessIntersections observes segment i of ss0 against segment j
	// of ss1.
	ProcessIntersections(ss0 *SegmentString, i int, ss1 *SegmentString, j int)
	// IsDone reports whether the noder may stop visiting further pairs.
	IsDone() bool
}

// IntersectionFinderAdder runs a robust line intersector on every
// candidate pair and, for every interior intersection found, records the
// intersection point on both participating segment strings. This is the
// intersector C7 uses during Phase 1 to discover the initial set of
// snap points.
type IntersectionFinderAdder struct {
	li *LineIntersector

	interiorIntersections []Coordinate
}

// NewIntersectionFinderAdder returns an adder using li to classify
// candidate pairs. li's precision model controls the precision of
// recorded intersection points.
func NewIntersectionFinderAdder(li *LineIntersector) *IntersectionFinderAdder {
	return &IntersectionFinderAdder{li: li}
}

// ProcessIntersections implements SegmentIntersector.
func (f *IntersectionFinderAdder) ProcessIntersections(ss0 *SegmentString, i int, ss1 *SegmentString, j int) {
	if ss0 == ss1 && i == j {
		return
	}
	f.li.ComputeIntersection(ss0.Coordinate(i), ss0.Coordinate(i+1), ss1.Coordinate(j), ss1.Coordinate(j+1))
	if !f.li.HasIntersection() || !f.li.IsInteriorIntersection() {
		return
	}
	for k := 0; k < f.li.IntersectionNum(); k++ {
		ss0.AddIntersectionFromIntersector(f.li, i, k)
		ss1.AddIntersectionFromIntersector(f.li, j, k)
		f.addInteriorIntersection(f.li.Intersection(k))
	}
}

// addInteriorIntersection records p in the deduplicated set of interior
// intersection points this adder has observed, which the snap-round
// engine's Phase 1 (spec.md §4.5) returns as the centres of its hot
// pixels.
func (f *IntersectionFinderAdder) addInteriorIntersection(p Coordinate) {
	for _, q := range f.interiorIntersections {
		if q.Equal2D(p) {
			return
		}
	}
	f.interiorIntersections = append(f.interiorIntersections, p)
}

// InteriorIntersections returns every distinct interior intersection
// point discovered so far.
func (f *IntersectionFinderAdder) InteriorIntersections() []Coordinate {
	return f.interiorIntersections
}

// IsDone always reports false: IntersectionFinderAdder collects every
// interior intersection rather than stopping at the first.
func (f *IntersectionFinderAdder) IsDone() bool { return false }

// InteriorIntersectionFinder stops at the first interior intersection it
// finds, for use in validity checks (C9) where only existence matters.
// CheckEndSegmentsOnly restricts the search to each string's first and
// last segment, for callers that have already guaranteed interior
// nodedness elsewhere and only need to re-check the boundary.
type InteriorIntersectionFinder struct {
	li                   *LineIntersector
	CheckEndSegmentsOnly bool

	found         bool
	interiorPoint Coordinate
}

// NewInteriorIntersectionFinder returns a finder using li to classify
// candidate pairs.
func NewInteriorIntersectionFinder(li *LineIntersector) *InteriorIntersectionFinder {
	return &InteriorIntersectionFinder{li: li}
}

// ProcessIntersections implements SegmentIntersector.
func (f *InteriorIntersectionFinder) ProcessIntersections(ss0 *SegmentString, i int, ss1 *SegmentString, j int) {
	if f.found || (ss0 == ss1 && i == j) {
		return
	}
	if f.CheckEndSegmentsOnly && !isEndSegment(ss0, i) && !isEndSegment(ss1, j) {
		return
	}
	f.li.ComputeIntersection(ss0.Coordinate(i), ss0.Coordinate(i+1), ss1.Coordinate(j), ss1.Coordinate(j+1))
	if f.li.HasIntersection() && f.li.IsInteriorIntersection() {
		f.found = true
		f.interiorPoint = f.li.Intersection(0)
	}
}

func isEndSegment(ss *SegmentString, segIndex int) bool {
	return segIndex == 0 || segIndex == ss.Size()-2
}

// IsDone implements SegmentIntersector.
func (f *InteriorIntersectionFinder) IsDone() bool { return f.found }

// HasInteriorIntersection reports whether an interior intersection was
// found.
func (f *InteriorIntersectionFinder) HasInteriorIntersection() bool { return f.found }

// InteriorIntersection returns the first interior intersection point
// found. Valid only after HasInteriorIntersection reports true.
func (f *InteriorIntersectionFinder) InteriorIntersection() Coordinate { return f.interiorPoint }
