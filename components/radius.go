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
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/goccy/go-json"

	"github.com/yutiansut/rerun"
)

const ExtensionNameRadius = "rerun.components.Radius"

// Radius is the radius of something, e.g. a point, in units of the
// containing space.
type Radius struct {
	rerun.ValueBase
	Value float32
}

func NewRadius(v float64) Radius { return Radius{Value: float32(v)} }

func (r Radius) Type() rerun.ComponentType { return radiusType }

func (r Radius) Float32() float32 { return r.Value }

// RadiusType tags a float32 column with the Radius identity.
type RadiusType struct {
	arrow.ExtensionBase
}

func NewRadiusType() *RadiusType {
	return &RadiusType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Float32}}
}

func (*RadiusType) ArrayType() reflect.Type { return reflect.TypeOf(RadiusArray{}) }

func (*RadiusType) ExtensionName() string { return ExtensionNameRadius }

func (*RadiusType) Serialize() string { return "" }

func (t *RadiusType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Float32) {
		return nil, fmt.Errorf("invalid storage type for RadiusType: %s", storageType.Name())
	}
	return NewRadiusType(), nil
}

func (t *RadiusType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *RadiusType) String() string { return fmt.Sprintf("Radius<storage=%s>", t.Storage) }

func (t *RadiusType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	f, err := rerun.CoerceFloat32(v)
	if err != nil {
		return err
	}
	b.(*array.Float32Builder).Append(f)
	return nil
}

func (*RadiusType) NewBuilder(bldr *array.ExtensionBuilder) array.Builder {
	return newRadiusBuilder(bldr)
}

// RadiusArray is a float32 array tagged with the Radius identity.
type RadiusArray struct {
	array.ExtensionArrayBase
}

func (a *RadiusArray) Value(i int) float32 {
	return a.Storage().(*array.Float32).Value(i)
}

func (a *RadiusArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return strconv.FormatFloat(float64(a.Value(i)), 'g', -1, 32)
}

func (a *RadiusArray) String() string {
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

func (a *RadiusArray) MarshalJSON() ([]byte, error) {
	values := make([]interface{}, a.Len())
	for i := 0; i < a.Len(); i++ {
		values[i] = a.GetOneForMarshal(i)
	}
	return json.Marshal(values)
}

func (a *RadiusArray) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

// RadiusBuilder builds Radius batches value by value, accepting floats
// rather than the underlying storage type.
type RadiusBuilder struct {
	*array.ExtensionBuilder
}

func NewRadiusBuilder(mem memory.Allocator) *RadiusBuilder {
	return newRadiusBuilder(array.NewExtensionBuilder(mem, radiusType))
}

func newRadiusBuilder(bldr *array.ExtensionBuilder) *RadiusBuilder {
	return &RadiusBuilder{ExtensionBuilder: bldr}
}

func (b *RadiusBuilder) Append(v float32) {
	b.ExtensionBuilder.Builder.(*array.Float32Builder).Append(v)
}

func (b *RadiusBuilder) UnsafeAppend(v float32) {
	b.ExtensionBuilder.Builder.(*array.Float32Builder).UnsafeAppend(v)
}

func (b *RadiusBuilder) AppendValues(v []float32, valid []bool) {
	b.ExtensionBuilder.Builder.(*array.Float32Builder).AppendValues(v, valid)
}

func (b *RadiusBuilder) AppendValueFromString(s string) error {
	if s == array.NullValueStr {
		b.AppendNull()
		return nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	b.Append(float32(f))
	return nil
}

func (b *RadiusBuilder) UnmarshalOne(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := t.(type) {
	case float64:
		b.Append(float32(v))
		return nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return err
		}
		b.Append(float32(f))
		return nil
	case string:
		return b.AppendValueFromString(v)
	case nil:
		b.AppendNull()
		return nil
	default:
		return &json.UnmarshalTypeError{
			Value:  fmt.Sprint(t),
			Type:   reflect.TypeOf(float32(0)),
			Offset: dec.InputOffset(),
		}
	}
}

func (b *RadiusBuilder) Unmarshal(dec *json.Decoder) error {
	for dec.More() {
		if err := b.UnmarshalOne(dec); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ rerun.Component               = Radius{}
	_ rerun.ComponentType           = (*RadiusType)(nil)
	_ array.ExtensionBuilderWrapper = (*RadiusType)(nil)
	_ array.ExtensionArray          = (*RadiusArray)(nil)
	_ array.Builder                 = (*RadiusBuilder)(nil)
)
