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

package rerun_test

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutiansut/rerun"
	"github.com/yutiansut/rerun/components"
)

func TestBatchField(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	b, err := rerun.ToArrow(mem, rerun.Float32s{1, 2}, radiusType(t))
	require.NoError(t, err)
	defer b.Release()

	field := b.Field()
	assert.Equal(t, components.ExtensionNameRadius, field.Name)
	assert.True(t, arrow.TypeEqual(b.Type(), field.Type))
	assert.True(t, field.Nullable)
}

func TestBatchMarshalJSON(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	b, err := rerun.ToArrow(mem, rerun.Float32s{1, 2.5}, radiusType(t))
	require.NoError(t, err)
	defer b.Release()

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"component":"rerun.components.Radius","values":[1,2.5]}`, string(data))
}

func TestBatchStorageUntagged(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	b, err := rerun.ToArrow(mem, rerun.Float32s{1}, radiusType(t))
	require.NoError(t, err)
	defer b.Release()

	assert.Equal(t, arrow.FLOAT32, b.Storage().DataType().ID())
	assert.Equal(t, arrow.EXTENSION, b.Data().DataType().ID())
}
