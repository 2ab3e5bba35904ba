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

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/yutiansut/rerun"
)

const ExtensionNameDrawOrder = "rerun.components.DrawOrder"

// DrawOrder determines 2D draw ordering: higher values are drawn on top
// of lower ones. It shares the float32 storage and coercion rule with
// every other float-like component, so radii, draw orders and plain
// numbers convert interchangeably.
type DrawOrder struct {
	rerun.ValueBase
	Value float32
}

func NewDrawOrder(v float64) DrawOrder { return DrawOrder{Value: float32(v)} }

func (d DrawOrder) Type() rerun.ComponentType { return drawOrderType }

func (d DrawOrder) Float32() float32 { return d.Value }

// DrawOrderType tags a float32 column with the DrawOrder identity.
type DrawOrderType struct {
	arrow.ExtensionBase
}

func NewDrawOrderType() *DrawOrderType {
	return &DrawOrderType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Float32}}
}

func (*DrawOrderType) ArrayType() reflect.Type { return reflect.TypeOf(DrawOrderArray{}) }

func (*DrawOrderType) ExtensionName() string { return ExtensionNameDrawOrder }

func (*DrawOrderType) Serialize() string { return "" }

func (t *DrawOrderType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Float32) {
		return nil, fmt.Errorf("invalid storage type for DrawOrderType: %s", storageType.Name())
	}
	return NewDrawOrderType(), nil
}

func (t *DrawOrderType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *DrawOrderType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	f, err := rerun.CoerceFloat32(v)
	if err != nil {
		return err
	}
	b.(*array.Float32Builder).Append(f)
	return nil
}

// DrawOrderArray is a float32 array tagged with the DrawOrder identity.
type DrawOrderArray struct {
	array.ExtensionArrayBase
}

func (a *DrawOrderArray) Value(i int) float32 {
	return a.Storage().(*array.Float32).Value(i)
}

func (a *DrawOrderArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return fmt.Sprint(a.Value(i))
}

func (a *DrawOrderArray) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

var (
	_ rerun.Component      = DrawOrder{}
	_ rerun.ComponentType  = (*DrawOrderType)(nil)
	_ array.ExtensionArray = (*DrawOrderArray)(nil)
)
