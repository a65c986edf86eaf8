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

// Validate is the noding validator (C9): a postcondition checker for a
// collection of already-noded substrings (a single-segment
// SegmentString each, as produced by GetNodedSubstrings). It is not
// itself a noder and performs no mutation; callers — tests, asserts, or
// SnapRounder.Validate — invoke it explicitly after noding.
//
// It reports the first violation found, in the order spec.md §4.7 lists
// them: collinear overlaps, interior-interior intersections, duplicate
// substrings.
func Validate(substrings []*SegmentString) error {
	if err := checkNoCollinearOverlaps(substrings); err != nil {
		return err
	}
	if err := checkNoInteriorIntersections(substrings); err != nil {
		return err
	}
	if err := checkNoDuplicates(substrings); err != nil {
		return err
	}
	return nil
}

// checkNoCollinearOverlaps verifies that no two distinct substrings
// share an infinite set of points (a collinear overlap), which would
// mean the noder failed to cut at a shared endpoint.
func checkNoCollinearOverlaps(substrings []*SegmentString) error {
	li := NewLineIntersector()
	for a := 0; a < len(substrings); a++ {
		for b := a + 1; b < len(substrings); b++ {
			p0, p1 := endpoints(substrings[a])
			q0, q1 := endpoints(substrings[b])
			li.ComputeIntersection(p0, p1, q0, q1)
			if li.Result() == CollinearIntersection {
				return newSegError(TopologyCollapse, li.Intersection(0), a, "collinear overlap between distinct substrings")
			}
		}
	}
	return nil
}

// checkNoInteriorIntersections verifies that any point shared by two
// distinct substrings is a vertex of both — i.e. no proper or otherwise
// interior crossing survived noding.
func checkNoInteriorIntersections(substrings []*SegmentString) error {
	li := NewLineIntersector()
	for a := 0; a < len(substrings); a++ {
		for b := a + 1; b < len(substrings); b++ {
			p0, p1 := endpoints(substrings[a])
			q0, q1 := endpoints(substrings[b])
			li.ComputeIntersection(p0, p1, q0, q1)
			if li.HasIntersection() && li.IsInteriorIntersection() {
				return newSegError(TopologyCollapse, li.Intersection(0), a, "interior intersection between distinct substrings")
			}
		}
	}
	return nil
}

// checkNoDuplicates verifies that no two substrings share the exact same
// vertex sequence, counting a substring and its reverse as the same
// undirected edge.
func checkNoDuplicates(substrings []*SegmentString) error {
	for a := 0; a < len(substrings); a++ {
		for b := a + 1; b < len(substrings); b++ {
			if sameUndirectedEdge(substrings[a], substrings[b]) {
				return newSegError(TopologyCollapse, substrings[a].Coordinate(0), a, "duplicate substring")
			}
		}
	}
	return nil
}

// ValidateEndSegmentsOnly is the fast-path companion to Validate, for a
// caller that has already established full nodedness elsewhere (for
// example, substrings just produced by a SnapRounder) and only needs to
// re-check the first and last segment of each input string — e.g. after
// appending new geometry to an already-verified arrangement. It runs the
// single-pass monotone-chain noder (C5) with an
// InteriorIntersectionFinder restricted via CheckEndSegmentsOnly rather
// than the full O(n^2) pairwise scan Validate performs.
func ValidateEndSegmentsOnly(segStrings []*SegmentString) error {
	li := NewLineIntersector()
	finder := NewInteriorIntersectionFinder(li)
	finder.CheckEndSegmentsOnly = true
	noder := NewMCIndexNoder(finder)
	if err := noder.ComputeNodes(segStrings); err != nil {
		return err
	}
	if finder.HasInteriorIntersection() {
		return newError(TopologyCollapse, finder.InteriorIntersection(), "interior intersection on an end segment")
	}
	return nil
}

func endpoints(ss *SegmentString) (Coordinate, Coordinate) {
	return ss.Coordinate(0), ss.Coordinate(ss.Size() - 1)
}

func sameUndirectedEdge(a, b *SegmentString) bool {
	if a.Size() != b.Size() {
		return false
	}
	ac := a.Coordinates()
	bc := b.Coordinates()
	forward, backward := true, true
	for i := range ac {
		if !ac[i].Equal2D(bc[i]) {
			forward = false
		}
		if !ac[i].Equal2D(bc[len(bc)-1-i]) {
			backward = false
		}
	}
	return forward || backward
}
