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

// centralEndpointIntersection returns whichever of the four segment
// endpoints lies closest to the (possibly inconsistent) candidate
// intersection computed by the homogeneous-coordinate solver. It is the
// fallback used when that solver fails or its raw output falls outside
// the envelope of either input segment — a condition that indicates
// near-parallel segments have amplified floating-point error past the
// point of usefulness, and picking the nearest real endpoint is a more
// defensible answer than trusting the computed point.
func centralEndpointIntersection(line1Start, line1End, line2Start, line2End, candidate Coordinate) Coordinate {
	endpoints := [4]Coordinate{line1Start, line1End, line2Start, line2End}

	best := endpoints[0]
	bestDist := candidate.Distance(best)
	for _, p := range endpoints[1:] {
		d := candidate.Distance(p)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}
