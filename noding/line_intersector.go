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

// IntersectionType classifies the result of intersecting two closed
// segments.
type IntersectionType int

const (
	// NoIntersection means the segments share no point.
	NoIntersection IntersectionType = iota
	// PointIntersection means the segments share exactly one point.
	PointIntersection
	// CollinearIntersection means the segments are collinear and share an
	// infinite set of points; the two reported coordinates are the
	// endpoints of the shared sub-segment.
	CollinearIntersection
)

// LineIntersector determines the intersection type and location(s) of two
// closed segments, per spec.md §4.1 and §6. It is the sole
// implementation: per the design notes, this package collapses the
// source's strategy hierarchy into one intersector with a single robust
// orientation backend (orientationIndex), rather than exposing a
// swappable robust/non-robust strategy interface.
type LineIntersector struct {
	pm PrecisionModel

	result       IntersectionType
	points       [2]Coordinate
	isProperFlag bool

	inputLines [2][2]Coordinate
}

// NewLineIntersector returns an intersector using the floating precision
// model. Call SetPrecisionModel to round reported intersection points to
// a different grid.
func NewLineIntersector() *LineIntersector {
	return &LineIntersector{pm: NewFloatingPrecisionModel()}
}

// SetPrecisionModel installs the precision model that every reported
// single-point intersection coordinate is passed through via
// MakePrecise. The two endpoints reported for a collinear overlap are
// input endpoints and are returned unrounded.
func (li *LineIntersector) SetPrecisionModel(pm PrecisionModel) {
	li.pm = pm
}

// ComputeIntersection classifies the intersection of closed segments
// [a0,a1] and [b0,b1] following the five-step algorithm in spec.md §4.1:
// envelope reject, orientation test, collinear branch, proper-point
// branch, improper branch.
func (li *LineIntersector) ComputeIntersection(a0, a1, b0, b1 Coordinate) {
	li.inputLines[0] = [2]Coordinate{a0, a1}
	li.inputLines[1] = [2]Coordinate{b0, b1}
	li.isProperFlag = false

	// Step 1: envelope reject.
	if !envelopeOf(a0, a1).intersects(envelopeOf(b0, b1)) {
		li.result = NoIntersection
		return
	}

	// Step 2: orientation test.
	b0Side := orientationIndex(a0, a1, b0)
	b1Side := orientationIndex(a0, a1, b1)
	if sameNonzeroSide(b0Side, b1Side) {
		li.result = NoIntersection
		return
	}

	a0Side := orientationIndex(b0, b1, a0)
	a1Side := orientationIndex(b0, b1, a1)
	if sameNonzeroSide(a0Side, a1Side) {
		li.result = NoIntersection
		return
	}

	collinear := b0Side == Collinear && b1Side == Collinear && a0Side == Collinear && a1Side == Collinear
	if collinear {
		li.computeCollinear(a0, a1, b0, b1)
		return
	}

	// At this point exactly one intersection point exists. If any
	// orientation test came back exactly zero, that endpoint lies on the
	// other line: copy it exactly rather than recomputing it, for
	// robustness (step 5, improper branch).
	switch {
	case b0Side == Collinear:
		li.points[0] = b0
	case b1Side == Collinear:
		li.points[0] = b1
	case a0Side == Collinear:
		li.points[0] = a0
	case a1Side == Collinear:
		li.points[0] = a1
	default:
		// Step 4: proper-point branch.
		li.points[0] = li.intersection(a0, a1, b0, b1)
		li.isProperFlag = true
	}

	li.points[0] = li.pm.MakePrecise(li.points[0])
	li.result = PointIntersection
}

func sameNonzeroSide(a, b Orientation) bool {
	return (a > Collinear && b > Collinear) || (a < Collinear && b < Collinear)
}

// computeCollinear implements step 3: find the overlap interval of two
// collinear segments by testing each endpoint for membership in the
// other segment's bounds.
func (li *LineIntersector) computeCollinear(a0, a1, b0, b1 Coordinate) {
	b0InA := isPointWithinLineBounds(b0, a0, a1)
	b1InA := isPointWithinLineBounds(b1, a0, a1)
	a0InB := isPointWithinLineBounds(a0, b0, b1)
	a1InB := isPointWithinLineBounds(a1, b0, b1)

	switch {
	case a0InB && a1InB:
		li.points[0], li.points[1] = a0, a1
		li.result = CollinearIntersection
	case b0InA && b1InA:
		li.points[0], li.points[1] = b0, b1
		li.result = CollinearIntersection
	case b0InA && a0InB:
		li.finishPartialOverlap(b0, a0, b1InA, a1InB)
	case b0InA && a1InB:
		li.finishPartialOverlap(b0, a1, b1InA, a0InB)
	case b1InA && a0InB:
		li.finishPartialOverlap(b1, a0, b0InA, a1InB)
	case b1InA && a1InB:
		li.finishPartialOverlap(b1, a1, b0InA, a0InB)
	default:
		li.result = NoIntersection
	}
}

func (li *LineIntersector) finishPartialOverlap(p, q Coordinate, otherEndA, otherEndB bool) {
	li.points[0], li.points[1] = p, q
	if p.Equal2D(q) && !otherEndA && !otherEndB {
		li.result = PointIntersection
		li.points[0] = li.pm.MakePrecise(li.points[0])
		return
	}
	li.result = CollinearIntersection
}

// isPointWithinLineBounds reports whether p's coordinates fall within the
// axis-aligned envelope of [a, b]. It is a necessary (not sufficient)
// condition for p lying on the segment; callers pair it with an
// orientation test that has already established collinearity.
func isPointWithinLineBounds(p, a, b Coordinate) bool {
	return envelopeOf(a, b).containsCoord(p)
}

// intersection computes the proper intersection point of two
// non-collinear segments that are known to cross. To obtain the maximum
// precision, the coordinates are normalized by subtracting the midpoint
// of their combined envelope before solving, which removes common
// significant digits from the calculation (grounded on the reference
// robust line intersector's intersectionWithNormalization/
// normalizeToEnvCentre).
func (li *LineIntersector) intersection(a0, a1, b0, b1 Coordinate) Coordinate {
	intPt := li.intersectionWithNormalization(a0, a1, b0, b1)

	// Due to rounding, the computed intersection can fall outside the
	// envelopes of the input segments. That is inconsistent with the
	// orientation test establishing that they do cross, so fall back to
	// the nearest real endpoint.
	if !isInSegmentEnvelopes(a0, a1, b0, b1, intPt) {
		intPt = centralEndpointIntersection(a0, a1, b0, b1, intPt)
	}
	return intPt
}

func isInSegmentEnvelopes(a0, a1, b0, b1, p Coordinate) bool {
	return isPointWithinLineBounds(p, a0, a1) && isPointWithinLineBounds(p, b0, b1)
}

func (li *LineIntersector) intersectionWithNormalization(a0, a1, b0, b1 Coordinate) Coordinate {
	n0, n1, n2, n3, normPt := normalizeToEnvCentre(a0, a1, b0, b1)

	intPt, ok := hcoordsIntersection(n0, n1, n2, n3)
	if !ok {
		intPt = centralEndpointIntersection(n0, n1, n2, n3, Coordinate{})
	}

	return Coordinate{X: intPt.X + normPt.X, Y: intPt.Y + normPt.Y}
}

// normalizeToEnvCentre translates all four endpoints so that the midpoint
// of their combined envelope lies at the origin, and returns the
// translated points plus the translation applied (so callers can
// translate the result back).
func normalizeToEnvCentre(a0, a1, b0, b1 Coordinate) (n0, n1, n2, n3, normPt Coordinate) {
	env := envelopeOf(a0, a1).expandedBy(envelopeOf(b0, b1))
	normPt = Coordinate{X: env.centreX(), Y: env.centreY()}

	shift := func(c Coordinate) Coordinate {
		return Coordinate{X: c.X - normPt.X, Y: c.Y - normPt.Y}
	}
	return shift(a0), shift(a1), shift(b0), shift(b1), normPt
}

// HasIntersection reports whether any intersection was found by the most
// recent ComputeIntersection call.
func (li *LineIntersector) HasIntersection() bool {
	return li.result != NoIntersection
}

// Result returns the classification of the most recent
// ComputeIntersection call.
func (li *LineIntersector) Result() IntersectionType {
	return li.result
}

// IntersectionNum returns 0, 1, or 2 depending on the result kind.
func (li *LineIntersector) IntersectionNum() int {
	switch li.result {
	case NoIntersection:
		return 0
	case PointIntersection:
		return 1
	default:
		return 2
	}
}

// Intersection returns the k-th reported intersection coordinate. k must
// be less than IntersectionNum().
func (li *LineIntersector) Intersection(k int) Coordinate {
	return li.points[k]
}

// IsProper reports whether the intersection is interior to both segments
// (a single point that is not an endpoint of either).
func (li *LineIntersector) IsProper() bool {
	return li.HasIntersection() && li.isProperFlag
}

// IsInteriorIntersection reports whether the intersection point lies in
// the interior of at least one of the two input segments — i.e. it is
// not simultaneously an endpoint of segment A and an endpoint of segment
// B (a pure shared-vertex touch).
func (li *LineIntersector) IsInteriorIntersection() bool {
	if !li.HasIntersection() {
		return false
	}
	for i := 0; i < li.IntersectionNum(); i++ {
		if li.isInteriorIntersectionOfLine(0, i) || li.isInteriorIntersectionOfLine(1, i) {
			return true
		}
	}
	return false
}

// isInteriorIntersectionOfLine reports whether the k-th intersection
// point is strictly interior to input line lineIndex (0 or 1) — i.e. not
// equal to either of that line's two endpoints.
func (li *LineIntersector) isInteriorIntersectionOfLine(lineIndex, k int) bool {
	p := li.points[k]
	ends := li.inputLines[lineIndex]
	return !p.Equal2D(ends[0]) && !p.Equal2D(ends[1])
}
