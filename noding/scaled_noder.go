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

import "math"

// ScaledNoder lifts floating-point input into the integer domain a
// delegate noder (typically a SnapRounder) is robust in, then rescales
// the delegate's output back. It holds only configuration — scaleFactor
// and an optional (offsetX, offsetY) — and the delegate; it mutates
// neither at construction.
type ScaledNoder struct {
	delegate    Noder
	scaleFactor float64
	offsetX     float64
	offsetY     float64

	isScaled bool

	// scaled holds the segment strings last passed to the delegate.
	// GetNodedSubstrings does not read it; it takes the delegate's output.
	scaled []*SegmentString
}

// NewScaledNoder returns a noder that scales its input by scaleFactor
// with zero offset before handing it to delegate.
func NewScaledNoder(delegate Noder, scaleFactor float64) *ScaledNoder {
	return NewScaledNoderWithOffset(delegate, scaleFactor, 0, 0)
}

// NewScaledNoderWithOffset returns a noder that translates its input by
// (-offsetX, -offsetY) and then scales by scaleFactor before handing it
// to delegate. Offsets let a caller reclaim extra digits of integer
// precision around a region of interest away from the origin (spec.md
// §4.6, §9 open question (c)).
func NewScaledNoderWithOffset(delegate Noder, scaleFactor, offsetX, offsetY float64) *ScaledNoder {
	return &ScaledNoder{
		delegate:    delegate,
		scaleFactor: scaleFactor,
		offsetX:     offsetX,
		offsetY:     offsetY,
		// No need to scale if the input is already on the integer grid
		// with no offset: scaleFactor == 1 and offsets zero is the
		// identity transform (spec.md §4.6 step 1).
		isScaled: scaleFactor != 1 || offsetX != 0 || offsetY != 0,
	}
}

// ComputeNodes implements Noder. When scaling is in effect it produces
// scaled copies of segStrings — dropping consecutive duplicate vertices,
// which collapses degenerate zero-length segments that scaling can
// introduce (spec.md §8 boundary behaviours) — and forwards those
// copies, not the originals, to the delegate. If input validation
// rejects a segment string (invalid before scaling, or collapsed below
// two distinct points after scaling) it is dropped rather than treated
// as a hard failure, matching the reference ScaledNoder's silent
// CoordinateArrays.removeRepeatedPoints behaviour.
func (s *ScaledNoder) ComputeNodes(segStrings []*SegmentString) error {
	if !s.isScaled {
		s.scaled = segStrings
		return s.delegate.ComputeNodes(segStrings)
	}

	s.scaled = make([]*SegmentString, 0, len(segStrings))
	for _, ss := range segStrings {
		scaled, ok := s.scale(ss)
		if ok {
			s.scaled = append(s.scaled, scaled)
		}
	}
	return s.delegate.ComputeNodes(s.scaled)
}

// scale returns a copy of ss with every ordinate transformed to
// round((v - offset) * scaleFactor), consecutive duplicate vertices
// removed, and ok=false if fewer than two distinct points remain.
func (s *ScaledNoder) scale(ss *SegmentString) (*SegmentString, bool) {
	src := ss.Coordinates()
	out := make([]Coordinate, 0, len(src))
	for _, c := range src {
		scaled := Coordinate{
			X: math.Round((c.X - s.offsetX) * s.scaleFactor),
			Y: math.Round((c.Y - s.offsetY) * s.scaleFactor),
			Z: c.Z,
		}
		if len(out) > 0 && out[len(out)-1].Equal2D(scaled) {
			continue
		}
		out = append(out, scaled)
	}
	if len(out) < 2 {
		return nil, false
	}
	scaled, err := NewSegmentString(out, ss.Data())
	if err != nil {
		return nil, false
	}
	return scaled, true
}

// GetNodedSubstrings implements Noder: it takes the delegate's noded
// substrings and, if scaling is in effect, rescales every ordinate back
// to the original domain in place via x = x'/scaleFactor + offsetX
// (spec.md §4.6 step 4).
func (s *ScaledNoder) GetNodedSubstrings() []*SegmentString {
	out := s.delegate.GetNodedSubstrings()
	if !s.isScaled {
		return out
	}
	for _, ss := range out {
		for i, c := range ss.coords {
			ss.coords[i] = Coordinate{
				X: c.X/s.scaleFactor + s.offsetX,
				Y: c.Y/s.scaleFactor + s.offsetY,
				Z: c.Z,
			}
		}
	}
	return out
}
