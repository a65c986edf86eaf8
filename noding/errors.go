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

import "fmt"

// Kind classifies the ways a noding operation can fail. Every fallible
// entry point in this package returns an error value; none of them panics
// on caller-supplied geometry.
type Kind int

const (
	// InvalidInput reports a segment string with fewer than two distinct
	// points, a non-finite ordinate, or a negative precision scale.
	InvalidInput Kind = iota
	// PrecisionMismatch reports non-integer vertices fed to a snap-round
	// noder without an intervening ScaledNoder.
	PrecisionMismatch
	// TopologyCollapse reports that rounding merged independent input
	// components; the validator (or a downstream consumer) detected two
	// substrings sharing an interior point.
	TopologyCollapse
	// RobustnessFailure reports that the line intersector produced
	// inconsistent orientation signs for the same pair of segments. This
	// should never happen with a correct robust predicate; it exists as a
	// defensive diagnostic.
	RobustnessFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case PrecisionMismatch:
		return "PrecisionMismatch"
	case TopologyCollapse:
		return "TopologyCollapse"
	case RobustnessFailure:
		return "RobustnessFailure"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by this package's noders and
// validators. It carries enough context (kind, offending coordinate,
// offending segment string index) to let a caller log or recover without
// re-deriving the failure.
type Error struct {
	Kind Kind
	// Coord is the offending coordinate, when the failure kind has one.
	Coord Coordinate
	// SegmentStringIndex is the index of the failing segment string within
	// the collection passed to the noder, or -1 if not applicable.
	SegmentStringIndex int
	// Msg is a short human-readable detail string.
	Msg string
}

func (e *Error) Error() string {
	if e.SegmentStringIndex >= 0 {
		return fmt.Sprintf("noding: %s at %v (segment string %d): %s", e.Kind, e.Coord, e.SegmentStringIndex, e.Msg)
	}
	return fmt.Sprintf("noding: %s at %v: %s", e.Kind, e.Coord, e.Msg)
}

// newError constructs an Error with no associated segment string.
func newError(kind Kind, coord Coordinate, msg string) *Error {
	return &Error{Kind: kind, Coord: coord, SegmentStringIndex: -1, Msg: msg}
}

// newSegError constructs an Error tied to a specific segment string index.
func newSegError(kind Kind, coord Coordinate, segIndex int, msg string) *Error {
	return &Error{Kind: kind, Coord: coord, SegmentStringIndex: segIndex, Msg: msg}
}
