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

const ExtensionNameInstanceKey = "rerun.components.InstanceKey"

// InstanceKey is a unique numeric identifier for one instance within an
// entity, e.g. one point in a point cloud.
type InstanceKey struct {
	rerun.ValueBase
	Value uint64
}

func NewInstanceKey(v uint64) InstanceKey { return InstanceKey{Value: v} }

func (k InstanceKey) Type() rerun.ComponentType { return instanceKeyType }

// InstanceKeyType tags a uint64 column with the InstanceKey identity.
type InstanceKeyType struct {
	arrow.ExtensionBase
}

func NewInstanceKeyType() *InstanceKeyType {
	return &InstanceKeyType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Uint64}}
}

func (*InstanceKeyType) ArrayType() reflect.Type { return reflect.TypeOf(InstanceKeyArray{}) }

func (*InstanceKeyType) ExtensionName() string { return ExtensionNameInstanceKey }

func (*InstanceKeyType) Serialize() string { return "" }

func (t *InstanceKeyType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != "" {
		return nil, fmt.Errorf("type metadata did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Uint64) {
		return nil, fmt.Errorf("invalid storage type for InstanceKeyType: %s", storageType.Name())
	}
	return NewInstanceKeyType(), nil
}

func (t *InstanceKeyType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *InstanceKeyType) AppendLike(b array.Builder, v rerun.ArrayLike) error {
	if k, ok := v.(InstanceKey); ok {
		b.(*array.Uint64Builder).Append(k.Value)
		return nil
	}
	u, err := rerun.CoerceUint[uint64](v)
	if err != nil {
		return err
	}
	b.(*array.Uint64Builder).Append(u)
	return nil
}

// InstanceKeyArray is a uint64 array tagged with the InstanceKey
// identity.
type InstanceKeyArray struct {
	array.ExtensionArrayBase
}

func (a *InstanceKeyArray) Value(i int) uint64 {
	return a.Storage().(*array.Uint64).Value(i)
}

var (
	_ rerun.Component      = InstanceKey{}
	_ rerun.ComponentType  = (*InstanceKeyType)(nil)
	_ array.ExtensionArray = (*InstanceKeyArray)(nil)
)
