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

const ExtensionNameScalarScattering = "rerun.components.ScalarScattering"

// ScalarScattering marks a scalar to be shown as an individual point in a
// scatter plot rather than as part of a line.
type ScalarScattering struct {
	rerun.ValueBase
	Scattered bool
}

func NewScalarScattering(scattered bool) ScalarScattering {
	return ScalarScattering{Scattered: scattered}
}

func (s ScalarScattering) Type() rerun.ComponentType { return scalarScatteringType }

// ScalarScatteringType tags a boolean column with the ScalarScattering
// identity.
type ScalarScatteringType struct {
	arrow.ExtensionBase
}

func NewScalarScatteringType() *ScalarScatteringType {
	return &ScalarScatteringType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.FixedWidthTypes.Boolean}}
}

func (*ScalarScatteringType) ArrayType() reflect.Type {
	return reflect.TypeOf(ScalarScatteringArray{})
}

func (*ScalarScatteringType) ExtensionName() string { return ExtensionNameScalarScattering }

func (*ScalarScatteringType) Serialize() string { return "" }

func (t *ScalarScatteringType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.FixedWidthTypes.Boolean) {
		return nil, fmt.Errorf("invalid storage type for ScalarScatteringType: %s", storageType.Name())
	}
	return NewScalarScatteringType(), nil
}

func (t *ScalarScatteringType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *ScalarScatteringType) String() string {
	return fmt.Sprintf("ScalarScattering<storage=%s>", t.Storage)
}

func (t *ScalarScatteringType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	if s, ok := v.(ScalarScattering); ok {
		b.(*array.BooleanBuilder).Append(s.Scattered)
		return nil
	}
	val, err := rerun.CoerceBool(v)
	if err != nil {
		return err
	}
	b.(*array.BooleanBuilder).Append(val)
	return nil
}

func (*ScalarScatteringType) NewBuilder(bldr *array.ExtensionBuilder) array.Builder {
	return newScalarScatteringBuilder(bldr)
}

// ScalarScatteringArray is a boolean array tagged with the
// ScalarScattering identity.
type ScalarScatteringArray struct {
	array.ExtensionArrayBase
}

func (a *ScalarScatteringArray) Value(i int) bool {
	return a.Storage().(*array.Boolean).Value(i)
}

func (a *ScalarScatteringArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return strconv.FormatBool(a.Value(i))
}

func (a *ScalarScatteringArray) String() string {
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

func (a *ScalarScatteringArray) MarshalJSON() ([]byte, error) {
	values := make([]interface{}, a.Len())
	for i := 0; i < a.Len(); i++ {
		values[i] = a.GetOneForMarshal(i)
	}
	return json.Marshal(values)
}

func (a *ScalarScatteringArray) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

// ScalarScatteringBuilder builds ScalarScattering batches from plain
// booleans.
type ScalarScatteringBuilder struct {
	*array.ExtensionBuilder
}

func NewScalarScatteringBuilder(mem memory.Allocator) *ScalarScatteringBuilder {
	return newScalarScatteringBuilder(array.NewExtensionBuilder(mem, scalarScatteringType))
}

func newScalarScatteringBuilder(bldr *array.ExtensionBuilder) *ScalarScatteringBuilder {
	return &ScalarScatteringBuilder{ExtensionBuilder: bldr}
}

func (b *ScalarScatteringBuilder) Append(v bool) {
	b.ExtensionBuilder.Builder.(*array.BooleanBuilder).Append(v)
}

func (b *ScalarScatteringBuilder) AppendValues(v []bool, valid []bool) {
	b.ExtensionBuilder.Builder.(*array.BooleanBuilder).AppendValues(v, valid)
}

func (b *ScalarScatteringBuilder) AppendValueFromString(s string) error {
	if s == array.NullValueStr {
		b.AppendNull()
		return nil
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.Append(val)
	return nil
}

func (b *ScalarScatteringBuilder) UnmarshalOne(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := t.(type) {
	case bool:
		b.Append(v)
		return nil
	case string:
		return b.AppendValueFromString(v)
	case nil:
		b.AppendNull()
		return nil
	default:
		return &json.UnmarshalTypeError{
			Value:  fmt.Sprint(t),
			Type:   reflect.TypeOf(false),
			Offset: dec.InputOffset(),
		}
	}
}

func (b *ScalarScatteringBuilder) Unmarshal(dec *json.Decoder) error {
	for dec.More() {
		if err := b.UnmarshalOne(dec); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ rerun.Component               = ScalarScattering{}
	_ rerun.ComponentType           = (*ScalarScatteringType)(nil)
	_ array.ExtensionBuilderWrapper = (*ScalarScatteringType)(nil)
	_ array.ExtensionArray          = (*ScalarScatteringArray)(nil)
	_ array.Builder                 = (*ScalarScatteringBuilder)(nil)
)
