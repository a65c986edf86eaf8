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

// Batch cross product (candidate-pair triage).
//
// The monotone-chain driver (C5) spends most of its time asking "which
// side of this edge do these candidate points fall on" while narrowing
// overlapping chain halves down to individual segments. That reduces to
// a 2D cross product per candidate, which vectorizes the same way a
// batch dot product does: one constant vector against a stream of
// candidate vectors in struct-of-arrays layout.
//
// crossProductConstBatch is a coarse, non-robust pre-filter only: it
// classifies candidates in bulk by sign of the naive float64 cross
// product so obviously-disjoint pairs can be skipped before paying for
// the exact orientationIndex predicate (orientation.go) on the survivors.
// It must never be used as the final word on orientation near
// collinearity — that robustness guarantee is orientationIndex's job
// alone.

// crossProductConstBatch computes dst[i] = ax*by[i] - ay*bx[i], the 2D
// cross product of the constant vector (ax, ay) against each vector
// (bx[i], by[i]).
func crossProductConstBatch[T hwy.Floats](ax, ay T, bx, by []T, dst []T) {
	size := min(len(bx), len(by), len(dst))

	vAx := hwy.Set(ax)
	vAy := hwy.Set(ay)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])

			// ax*by - ay*bx, via FMA for the subtraction term's product.
			prod := hwy.Mul(vAx, vBy)
			sum := hwy.FMA(hwy.Neg(vAy), vBx, prod)

			hwy.Store(sum, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])

			prod := hwy.Mul(vAx, vBy)
			sum := hwy.FMA(hwy.Neg(vAy), vBx, prod)

			hwy.MaskStore(mask, sum, dst[offset:])
		},
	)
}
