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

// hcoordsIntersection computes the (approximate) intersection point
// between two line segments using homogeneous coordinates.
//
// This algorithm is not numerically stable on its own: it can produce a
// point outside the envelope of either input segment. Callers are
// expected to normalize the inputs first (see intersectionWithNormalization
// in line_intersector.go) and to fall back to centralEndpointIntersection
// when the result fails an envelope sanity check.
func hcoordsIntersection(line1End1, line1End2, line2End1, line2End2 Coordinate) (Coordinate, bool) {
	line1Xdiff := line1End1.Y - line1End2.Y
	line1Ydiff := line1End2.X - line1End1.X
	line1W := line1End1.X*line1End2.Y - line1End2.X*line1End1.Y

	line2X := line2End1.Y - line2End2.Y
	line2Y := line2End2.X - line2End1.X
	line2W := line2End1.X*line2End2.Y - line2End2.X*line2End1.Y

	x := line1Ydiff*line2W - line2Y*line1W
	y := line2X*line1W - line1Xdiff*line2W
	w := line1Xdiff*line2Y - line2X*line1Ydiff

	xIntersection := x / w
	yIntersection := y / w

	if math.IsNaN(xIntersection) || math.IsNaN(yIntersection) {
		return Coordinate{}, false
	}
	if math.IsInf(xIntersection, 0) || math.IsInf(yIntersection, 0) {
		return Coordinate{}, false
	}

	return Coordinate{X: xIntersection, Y: yIntersection}, true
}
