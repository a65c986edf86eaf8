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

// PrecisionType distinguishes the three grids a PrecisionModel can
// represent.
type PrecisionType int

const (
	// Floating leaves ordinates at full double precision.
	Floating PrecisionType = iota
	// FloatingSingle rounds ordinates to single (float32) precision.
	FloatingSingle
	// Fixed rounds ordinates to a uniform integer grid at the model's
	// Scale. This is the only mode under which the snap-round core (C7)
	// is contracted to produce a fully noded result.
	Fixed
)

// PrecisionModel is the grid onto which every coordinate produced by this
// package is rounded. It plays the same role here that SnapFunction plays
// in a builder pipeline: a small, value-typed strategy supplied once per
// run and never mutated afterward.
//
// A PrecisionModel is a plain value — copying it copies the grid, so no
// Clone method is needed.
type PrecisionModel struct {
	typ   PrecisionType
	scale float64
}

// NewFloatingPrecisionModel returns a model that performs no rounding.
func NewFloatingPrecisionModel() PrecisionModel {
	return PrecisionModel{typ: Floating}
}

// NewFloatingSinglePrecisionModel returns a model that rounds to float32
// precision.
func NewFloatingSinglePrecisionModel() PrecisionModel {
	return PrecisionModel{typ: FloatingSingle}
}

// NewFixedPrecisionModel returns a model that rounds every ordinate to the
// grid 1/scale units wide. scale must be positive; the snap-round engine
// additionally requires scale >= 1 for its robustness guarantee to hold
// (see HotPixel and SnapRounder).
func NewFixedPrecisionModel(scale float64) (PrecisionModel, error) {
	if !(scale > 0) || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return PrecisionModel{}, newError(InvalidInput, Coordinate{}, "fixed precision model requires a positive finite scale")
	}
	return PrecisionModel{typ: Fixed, scale: scale}, nil
}

// Type reports which of the three precision regimes this model uses.
func (pm PrecisionModel) Type() PrecisionType { return pm.typ }

// Scale returns the model's grid scale. It is 1 for floating and
// floating-single models (they define no grid) and the configured scale
// for fixed models.
func (pm PrecisionModel) Scale() float64 {
	if pm.typ == Fixed {
		return pm.scale
	}
	return 1
}

// MakePreciseValue rounds a single ordinate to this model's grid.
func (pm PrecisionModel) MakePreciseValue(v float64) float64 {
	switch pm.typ {
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		return math.Round(v*pm.scale) / pm.scale
	default:
		return v
	}
}

// MakePrecise rounds both ordinates of c to this model's grid, leaving Z
// untouched.
func (pm PrecisionModel) MakePrecise(c Coordinate) Coordinate {
	return Coordinate{X: pm.MakePreciseValue(c.X), Y: pm.MakePreciseValue(c.Y), Z: c.Z}
}

// IsIntegerGrid reports whether this model rounds onto a uniform integer
// grid with scale >= 1 — the regime in which the snap-round core is
// contracted to be robust.
func (pm PrecisionModel) IsIntegerGrid() bool {
	return pm.typ == Fixed && pm.scale >= 1
}
