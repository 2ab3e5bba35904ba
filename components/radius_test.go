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

package components_test

import (
	"strings"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutiansut/rerun"
	"github.com/yutiansut/rerun/components"
)

func TestRadiusBuilder(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	bldr := components.NewRadiusBuilder(mem)
	defer bldr.Release()

	bldr.Append(1.5)
	bldr.AppendNull()
	bldr.AppendValues([]float32{2, 3}, nil)

	arr := bldr.NewArray()
	defer arr.Release()

	radii, ok := arr.(*components.RadiusArray)
	require.True(t, ok)
	require.Equal(t, 4, radii.Len())
	require.Equal(t, 1, radii.NullN())
	assert.Equal(t, float32(1.5), radii.Value(0))
	assert.Equal(t, float32(3), radii.Value(3))
	assert.Equal(t, "[1.5 (null) 2 3]", radii.String())
}

func TestRadiusBuilderStringRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	bldr := components.NewRadiusBuilder(mem)
	defer bldr.Release()

	bldr.Append(0.25)
	bldr.AppendNull()
	bldr.Append(4)
	arr := bldr.NewArray()
	defer arr.Release()

	b1 := components.NewRadiusBuilder(mem)
	defer b1.Release()
	for i := 0; i < arr.Len(); i++ {
		require.NoError(t, b1.AppendValueFromString(arr.ValueStr(i)))
	}
	arr1 := b1.NewArray()
	defer arr1.Release()

	assert.True(t, array.Equal(arr, arr1))
}

func TestRadiusFromJSON(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	arr, _, err := array.FromJSON(mem, components.NewRadiusType(), strings.NewReader(`[1, "2.5", null]`))
	require.NoError(t, err)
	defer arr.Release()

	radii := arr.(*components.RadiusArray)
	require.Equal(t, 3, radii.Len())
	assert.Equal(t, float32(1), radii.Value(0))
	assert.Equal(t, float32(2.5), radii.Value(1))
	assert.True(t, radii.IsNull(2))

	jsonStr, err := json.Marshal(arr)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2.5, null]`, string(jsonStr))
}

func TestRadiusTypeIdentity(t *testing.T) {
	ct := components.Radius{}.Type()
	require.Equal(t, components.ExtensionNameRadius, ct.ExtensionName())
	require.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float32, ct.StorageType()))

	registered, err := rerun.GetComponentType(components.ExtensionNameRadius)
	require.NoError(t, err)
	require.Same(t, ct, registered)

	deserialized, err := components.NewRadiusType().Deserialize(arrow.PrimitiveTypes.Float32, "")
	require.NoError(t, err)
	require.True(t, ct.(*components.RadiusType).ExtensionEquals(deserialized))
}

func TestRadiusValueNormalization(t *testing.T) {
	r := components.NewRadius(2.5)
	assert.Equal(t, float32(2.5), r.Value)
	assert.Equal(t, float32(2.5), r.Float32())
}
