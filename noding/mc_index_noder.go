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

// MCIndexNoder is the single-pass noder (C5) driven by the monotone
// chain + STR-tree spatial index (C4): every chain is queried against
// the index once, candidate chain pairs are narrowed to individual
// segment pairs by alternating midpoint subdivision, and each surviving
// pair is handed to a configured SegmentIntersector.
type MCIndexNoder struct {
	intersector SegmentIntersector

	segStrings []*SegmentString
}

// NewMCIndexNoder returns a noder that reports every candidate segment
// pair to intersector.
func NewMCIndexNoder(intersector SegmentIntersector) *MCIndexNoder {
	return &MCIndexNoder{intersector: intersector}
}

// ComputeNodes implements Noder. MCIndexNoder has no input validation of
// its own beyond what NewSegmentString already enforced at construction,
// so it always returns a nil error.
func (n *MCIndexNoder) ComputeNodes(segStrings []*SegmentString) error {
	n.segStrings = segStrings

	var chains []MonotoneChain
	for _, ss := range segStrings {
		chains = append(chains, BuildMonotoneChains(ss)...)
	}
	for i := range chains {
		chains[i].id = i
	}

	tree := NewSTRTree(chains)
	for _, c := range chains {
		if n.intersector.IsDone() {
			return nil
		}
		c := c
		tree.Query(c.Envelope(), func(d MonotoneChain) {
			if n.intersector.IsDone() || d.id < c.id {
				return
			}
			c.computeOverlaps(d, func(i, j int) {
				if n.intersector.IsDone() {
					return
				}
				n.intersector.ProcessIntersections(c.SegmentString(), i, d.SegmentString(), j)
			})
		})
	}
	return nil
}

// GetNodedSubstrings implements Noder.
func (n *MCIndexNoder) GetNodedSubstrings() []*SegmentString {
	return GetNodedSubstrings(n.segStrings)
}
