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

// HotPixel is the ephemeral, half-open square cell the snap-round engine
// (C7) builds around one snap point — an interior intersection or a
// vertex — to decide which segments must be pulled onto that point.
type HotPixel struct {
	p   Coordinate
	env envelope
}

// NewHotPixel builds the pixel of width 1/scale centred at p. scale must
// be positive.
func NewHotPixel(p Coordinate, scale float64) HotPixel {
	w := 0.5 / scale
	return HotPixel{
		p: p,
		env: envelope{
			minX: p.X - w, maxX: p.X + w,
			minY: p.Y - w, maxY: p.Y + w,
		},
	}
}

// Coordinate returns the pixel's centre, the point every segment
// snapped to this pixel is moved to.
func (h HotPixel) Coordinate() Coordinate { return h.p }

// Contains reports whether q lies in the pixel, which owns its bottom
// and left edges and its interior but not its top or right edges — the
// half-open rule that partitions the plane into disjoint pixels.
func (h HotPixel) Contains(q Coordinate) bool {
	return q.X >= h.env.minX && q.X < h.env.maxX &&
		q.Y >= h.env.minY && q.Y < h.env.maxY
}

// Intersects reports whether the closed segment [p0,p1] meets the pixel,
// per spec.md §4.4: envelope reject, then endpoint containment, then the
// Hobby-style corner-crossing test.
func (h HotPixel) Intersects(p0, p1 Coordinate) bool {
	if !envelopeOf(p0, p1).intersects(h.env) {
		return false
	}
	if h.Contains(p0) || h.Contains(p1) {
		return true
	}
	// Neither endpoint lies in the pixel, so any overlap with the closed
	// pixel is confined to its boundary. If the whole segment runs along
	// the top or right edge (both ordinates equal that edge's value), it
	// can never reach the half-open interior or the owned bottom/left
	// edges, so the pixel does not own any point of it.
	if p0.Y == h.env.maxY && p1.Y == h.env.maxY {
		return false
	}
	if p0.X == h.env.maxX && p1.X == h.env.maxX {
		return false
	}

	corners := [4]Coordinate{
		{X: h.env.minX, Y: h.env.minY},
		{X: h.env.maxX, Y: h.env.minY},
		{X: h.env.maxX, Y: h.env.maxY},
		{X: h.env.minX, Y: h.env.maxY},
	}

	first := orientationIndex(p0, p1, corners[0])
	for _, c := range corners[1:] {
		if orientationIndex(p0, p1, c) != first {
			return true
		}
	}
	return false
}
