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

package components

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/yutiansut/rerun"
	"github.com/yutiansut/rerun/datatypes"
)

const ExtensionNamePosition2D = "rerun.components.Position2D"

// Position2D is a position in 2D space. It delegates storage and
// coercion to datatypes.Vec2D rather than declaring its own.
type Position2D struct {
	datatypes.Vec2D
}

func NewPosition2D(x, y float32) Position2D {
	return Position2D{Vec2D: datatypes.NewVec2D(x, y)}
}

func (p Position2D) Type() rerun.ComponentType { return position2DType }

// Position2DType tags a FixedSizeList<float32>[2] column with the
// Position2D identity.
type Position2DType struct {
	arrow.ExtensionBase
}

func NewPosition2DType() *Position2DType {
	return &Position2DType{ExtensionBase: arrow.ExtensionBase{Storage: datatypes.Vec2DArrow}}
}

func (*Position2DType) ArrayType() reflect.Type { return reflect.TypeOf(Position2DArray{}) }

func (*Position2DType) ExtensionName() string { return ExtensionNamePosition2D }

func (*Position2DType) Serialize() string { return "" }

func (t *Position2DType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, datatypes.Vec2DArrow) {
		return nil, fmt.Errorf("invalid storage type for Position2DType: %s", storageType.Name())
	}
	return NewPosition2DType(), nil
}

func (t *Position2DType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *Position2DType) String() string {
	return fmt.Sprintf("Position2D<storage=%s>", t.Storage)
}

func (t *Position2DType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	vec, err := datatypes.CoerceVec2D(v)
	if err != nil {
		return err
	}
	datatypes.AppendVec2D(b.(*array.FixedSizeListBuilder), vec)
	return nil
}

func (*Position2DType) NewBuilder(bldr *array.ExtensionBuilder) array.Builder {
	return newPosition2DBuilder(bldr)
}

// Position2DArray is a FixedSizeList<float32>[2] array tagged with the
// Position2D identity.
type Position2DArray struct {
	array.ExtensionArrayBase
}

func (a *Position2DArray) Value(i int) datatypes.Vec2D {
	list := a.Storage().(*array.FixedSizeList)
	values := list.ListValues().(*array.Float32)
	off := (list.Data().Offset() + i) * 2
	return datatypes.NewVec2D(values.Value(off), values.Value(off+1))
}

func (a *Position2DArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return a.Value(i).String()
}

func (a *Position2DArray) String() string {
	var o strings.Builder
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		o.WriteString(a.ValueStr(i))
	}
	o.WriteString("]")
	return o.String()
}

// Position2DBuilder builds Position2D batches from Vec2D values.
type Position2DBuilder struct {
	*array.ExtensionBuilder
}

func NewPosition2DBuilder(mem memory.Allocator) *Position2DBuilder {
	return newPosition2DBuilder(array.NewExtensionBuilder(mem, position2DType))
}

func newPosition2DBuilder(bldr *array.ExtensionBuilder) *Position2DBuilder {
	return &Position2DBuilder{ExtensionBuilder: bldr}
}

func (b *Position2DBuilder) Append(v datatypes.Vec2D) {
	datatypes.AppendVec2D(b.ExtensionBuilder.Builder.(*array.FixedSizeListBuilder), v)
}

func (b *Position2DBuilder) AppendValues(vs []datatypes.Vec2D) {
	for _, v := range vs {
		b.Append(v)
	}
}

var (
	_ rerun.Component               = Position2D{}
	_ rerun.ComponentType           = (*Position2DType)(nil)
	_ array.ExtensionBuilderWrapper = (*Position2DType)(nil)
	_ array.ExtensionArray          = (*Position2DArray)(nil)
	_ array.Builder                 = (*Position2DBuilder)(nil)
)
