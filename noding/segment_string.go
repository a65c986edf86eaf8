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

import (
	"math"
	"sort"
)

// SegmentString is an ordered vertex sequence plus an accumulator of
// intersection points to be inserted when the string is noded. The
// noders treat its vertex array as read-only and mutate a SegmentString
// only by appending to its intersection list via AddIntersection; the
// one exception is ScaledNoder.GetNodedSubstrings, which rescales the
// vertices of the substrings it returns in place.
type SegmentString struct {
	coords []Coordinate
	data   interface{}

	nodes []segmentNode
}

// segmentNode is one entry in a segment string's intersection list: "insert
// vertex Point on the segment [SegIndex, SegIndex+1]".
type segmentNode struct {
	segIndex int
	point    Coordinate
	order    int // insertion order, used to break parameter ties
}

// NewSegmentString constructs a SegmentString from coords and an opaque
// user-data payload that this package never inspects. coords must contain
// at least two points that are not all coincident.
func NewSegmentString(coords []Coordinate, data interface{}) (*SegmentString, error) {
	if len(coords) < 2 {
		return nil, newError(InvalidInput, Coordinate{}, "segment string requires at least 2 coordinates")
	}
	for _, c := range coords {
		if !c.IsFinite() {
			return nil, newError(InvalidInput, c, "segment string contains a non-finite ordinate")
		}
	}
	allSame := true
	for _, c := range coords[1:] {
		if !c.Equal2D(coords[0]) {
			allSame = false
			break
		}
	}
	if allSame {
		return nil, newError(InvalidInput, coords[0], "segment string requires at least 2 distinct points")
	}

	cp := make([]Coordinate, len(coords))
	copy(cp, coords)
	return &SegmentString{coords: cp, data: data}, nil
}

// Size returns the number of vertices, matching the external interface's
// size() (spec.md §6); it is one more than the number of segments.
func (ss *SegmentString) Size() int { return len(ss.coords) }

// Coordinates returns the string's vertex sequence. The returned slice
// must not be mutated by the caller.
func (ss *SegmentString) Coordinates() []Coordinate { return ss.coords }

// Coordinate returns the i-th vertex.
func (ss *SegmentString) Coordinate(i int) Coordinate { return ss.coords[i] }

// Data returns the opaque user-data payload supplied at construction.
func (ss *SegmentString) Data() interface{} { return ss.data }

// AddIntersection records that point p should become a vertex on the
// segment [segIndex, segIndex+1]. Duplicate (segIndex, p) entries
// (compared by exact equality) are collapsed to one.
func (ss *SegmentString) AddIntersection(p Coordinate, segIndex int) {
	for _, n := range ss.nodes {
		if n.segIndex == segIndex && n.point.Equal2D(p) {
			return
		}
	}
	ss.nodes = append(ss.nodes, segmentNode{segIndex: segIndex, point: p, order: len(ss.nodes)})
}

// AddIntersectionFromIntersector pulls intersection point intIndex from a
// LineIntersector that has already been run on segment segIndex of ss
// against some other segment, and records it — unless it is a pure vertex
// intersection (equal to one of segIndex's own endpoints), since those are
// implicit in every segment string already.
func (ss *SegmentString) AddIntersectionFromIntersector(li *LineIntersector, segIndex, intIndex int) {
	p := li.Intersection(intIndex)
	if p.Equal2D(ss.coords[segIndex]) || p.Equal2D(ss.coords[segIndex+1]) {
		return
	}
	ss.AddIntersection(p, segIndex)
}

// segmentParam returns the parameter t in [0,1] of point p along segment
// [segIndex, segIndex+1], clamped to that range.
func (ss *SegmentString) segmentParam(segIndex int, p Coordinate) float64 {
	a := ss.coords[segIndex]
	b := ss.coords[segIndex+1]
	dx := b.X - a.X
	dy := b.Y - a.Y

	var t float64
	if math.Abs(dx) > math.Abs(dy) {
		if dx == 0 {
			return 0
		}
		t = (p.X - a.X) / dx
	} else {
		if dy == 0 {
			return 0
		}
		t = (p.Y - a.Y) / dy
	}
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// nodedVertices returns the full, ordered list of vertices this string
// produces once noded: the original endpoints of every segment plus every
// recorded intersection, sorted within each segment by parameter t (ties
// broken by insertion order), with consecutive duplicates collapsed.
func (ss *SegmentString) nodedVertices() []Coordinate {
	type tagged struct {
		point Coordinate
		t     float64
		order int
	}

	bySeg := make(map[int][]tagged, len(ss.coords))
	for _, n := range ss.nodes {
		bySeg[n.segIndex] = append(bySeg[n.segIndex], tagged{point: n.point, t: ss.segmentParam(n.segIndex, n.point), order: n.order})
	}

	var out []Coordinate
	for i := 0; i < len(ss.coords)-1; i++ {
		entries := append([]tagged{
			{point: ss.coords[i], t: 0, order: -1},
			{point: ss.coords[i+1], t: 1, order: math.MaxInt32},
		}, bySeg[i]...)

		sort.SliceStable(entries, func(a, b int) bool {
			if entries[a].t != entries[b].t {
				return entries[a].t < entries[b].t
			}
			return entries[a].order < entries[b].order
		})

		for _, e := range entries {
			if len(out) == 0 || !out[len(out)-1].Equal2D(e.point) {
				out = append(out, e.point)
			}
		}
	}
	return out
}

// GetNodedSubstrings is the static aggregator from spec.md §4.2: it cuts
// every segment string in the collection at each of its vertices and at
// its accumulated intersection points, and returns one two-point
// substring per resulting piece, in the same relative order as their
// parents, each carrying its parent's user-data payload.
func GetNodedSubstrings(strings []*SegmentString) []*SegmentString {
	var out []*SegmentString
	for _, ss := range strings {
		vertices := ss.nodedVertices()
		for i := 1; i < len(vertices); i++ {
			sub, err := NewSegmentString(vertices[i-1:i+1], ss.data)
			if err == nil {
				out = append(out, sub)
			}
		}
	}
	return out
}
