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

// Noder is the contract every noding strategy in this package satisfies:
// compute intersection nodes across a set of segment strings, then
// return the resulting noded substrings. MCIndexNoder, SnapRounder, and
// ScaledNoder all implement it; ScaledNoder wraps a delegate Noder, and
// SnapRounder runs an MCIndexNoder internally for its first phase rather
// than reimplementing it.
//
// ComputeNodes returns an error rather than panicking on bad input or a
// detected precision mismatch (spec.md §7); per §5 it is otherwise a
// synchronous, single-threaded, side-effecting-only-on-its-own-input
// computation with no cancellation protocol.
type Noder interface {
	ComputeNodes(segStrings []*SegmentString) error
	GetNodedSubstrings() []*SegmentString
}
