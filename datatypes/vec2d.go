// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package datatypes holds value layouts shared by multiple component
// kinds. A datatype carries no logical identity of its own; components
// reference a datatype's storage layout and coercion rule instead of
// re-declaring them.
package datatypes

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/yutiansut/rerun"
)

// Vec2D is a vector in 2D space, stored as a fixed-width pair of 32-bit
// floats.
type Vec2D struct {
	rerun.ValueBase
	X, Y float32
}

func NewVec2D(x, y float32) Vec2D { return Vec2D{X: x, Y: y} }

// Vec2 returns the value itself. Component types embedding Vec2D inherit
// it, which is how the coercion below recognizes them.
func (v Vec2D) Vec2() Vec2D { return v }

func (v Vec2D) String() string { return fmt.Sprintf("[%v %v]", v.X, v.Y) }

// Vec2DArrow is the storage layout shared by every Vec2D-backed
// component: FixedSizeList<float32>[2].
var Vec2DArrow = arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Float32)

// CoerceVec2D interprets one element of the ArrayLike union as a single
// 2-vector. Accepted inputs: Vec2D values (or components embedding one),
// two-element numeric slices, and two-element sequences of numerics.
// Pairs of the wrong width fail with ErrShape.
func CoerceVec2D(v rerun.ArrayLike) (Vec2D, error) {
	switch x := v.(type) {
	case interface{ Vec2() Vec2D }:
		return x.Vec2(), nil
	case rerun.Float32s:
		if len(x) != 2 {
			return Vec2D{}, widthErr(len(x))
		}
		return Vec2D{X: x[0], Y: x[1]}, nil
	case rerun.Float64s:
		if len(x) != 2 {
			return Vec2D{}, widthErr(len(x))
		}
		return Vec2D{X: float32(x[0]), Y: float32(x[1])}, nil
	case rerun.Seq:
		if len(x) != 2 {
			return Vec2D{}, widthErr(len(x))
		}
		px, err := rerun.CoerceFloat32(x[0])
		if err != nil {
			return Vec2D{}, err
		}
		py, err := rerun.CoerceFloat32(x[1])
		if err != nil {
			return Vec2D{}, err
		}
		return Vec2D{X: px, Y: py}, nil
	default:
		return Vec2D{}, fmt.Errorf("%w: cannot interpret %T as a 2-vector", rerun.ErrTypeCoercion, v)
	}
}

// AppendVec2D appends one 2-vector to a builder of the Vec2DArrow layout.
func AppendVec2D(b *array.FixedSizeListBuilder, v Vec2D) {
	b.Append(true)
	vb := b.ValueBuilder().(*array.Float32Builder)
	vb.Append(v.X)
	vb.Append(v.Y)
}

func widthErr(n int) error {
	return fmt.Errorf("%w: fixed-width 2 layout given %d values", rerun.ErrShape, n)
}
