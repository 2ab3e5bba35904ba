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

const ExtensionNameLabel = "rerun.components.Label"

// Label is a UTF-8 text label shown next to an entity.
type Label struct {
	rerun.ValueBase
	Text string
}

func NewLabel(text string) Label { return Label{Text: text} }

func (l Label) Type() rerun.ComponentType { return labelType }

// LabelType tags a UTF-8 string column with the Label identity.
type LabelType struct {
	arrow.ExtensionBase
}

func NewLabelType() *LabelType {
	return &LabelType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.BinaryTypes.String}}
}

func (*LabelType) ArrayType() reflect.Type { return reflect.TypeOf(LabelArray{}) }

func (*LabelType) ExtensionName() string { return ExtensionNameLabel }

func (*LabelType) Serialize() string { return "" }

func (t *LabelType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.BinaryTypes.String) {
		return nil, fmt.Errorf("invalid storage type for LabelType: %s", storageType.Name())
	}
	return NewLabelType(), nil
}

func (t *LabelType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *LabelType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	if l, ok := v.(Label); ok {
		b.(*array.StringBuilder).Append(l.Text)
		return nil
	}
	s, err := rerun.CoerceString(v)
	if err != nil {
		return err
	}
	b.(*array.StringBuilder).Append(s)
	return nil
}

// LabelArray is a string array tagged with the Label identity.
type LabelArray struct {
	array.ExtensionArrayBase
}

func (a *LabelArray) Value(i int) string {
	return a.Storage().(*array.String).Value(i)
}

var (
	_ rerun.Component      = Label{}
	_ rerun.ComponentType  = (*LabelType)(nil)
	_ array.ExtensionArray = (*LabelArray)(nil)
)
