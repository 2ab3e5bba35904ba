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

const ExtensionNameColor = "rerun.components.Color"

// Color is an RGBA color tuple packed into a uint32 as 0xRRGGBBAA.
type Color struct {
	rerun.ValueBase
	RGBA uint32
}

func NewColor(rgba uint32) Color { return Color{RGBA: rgba} }

// NewColorFromRGBA packs the four channel bytes.
func NewColorFromRGBA(r, g, b, a uint8) Color {
	return Color{RGBA: uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)}
}

func (c Color) Type() rerun.ComponentType { return colorType }

func (c Color) R() uint8 { return uint8(c.RGBA >> 24) }
func (c Color) G() uint8 { return uint8(c.RGBA >> 16) }
func (c Color) B() uint8 { return uint8(c.RGBA >> 8) }
func (c Color) A() uint8 { return uint8(c.RGBA) }

// ColorType tags a uint32 column with the Color identity.
type ColorType struct {
	arrow.ExtensionBase
}

func NewColorType() *ColorType {
	return &ColorType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Uint32}}
}

func (*ColorType) ArrayType() reflect.Type { return reflect.TypeOf(ColorArray{}) }

func (*ColorType) ExtensionName() string { return ExtensionNameColor }

func (*ColorType) Serialize() string { return "" }

func (t *ColorType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Uint32) {
		return nil, fmt.Errorf("invalid storage type for ColorType: %s", storageType.Name())
	}
	return NewColorType(), nil
}

func (t *ColorType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *ColorType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	if c, ok := v.(Color); ok {
		b.(*array.Uint32Builder).Append(c.RGBA)
		return nil
	}
	u, err := rerun.CoerceUint[uint32](v)
	if err != nil {
		return err
	}
	b.(*array.Uint32Builder).Append(u)
	return nil
}

// ColorArray is a uint32 array tagged with the Color identity.
type ColorArray struct {
	array.ExtensionArrayBase
}

func (a *ColorArray) Value(i int) Color {
	return Color{RGBA: a.Storage().(*array.Uint32).Value(i)}
}

func (a *ColorArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return fmt.Sprintf("0x%08X", a.Value(i).RGBA)
}

var (
	_ rerun.Component      = Color{}
	_ rerun.ComponentType  = (*ColorType)(nil)
	_ array.ExtensionArray = (*ColorArray)(nil)
)
