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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutiansut/rerun"
	"github.com/yutiansut/rerun/components"
)

func TestCoerceFloat32(t *testing.T) {
	tests := []struct {
		name string
		in   rerun.ArrayLike
		want float32
	}{
		{"float", rerun.Float64(1.5), 1.5},
		{"int", rerun.Int(-2), -2},
		{"uint", rerun.Uint(3), 3},
		{"numeric string", rerun.String("4.5"), 4.5},
		{"single-element float32s", rerun.Float32s{5}, 5},
		{"single-element float64s", rerun.Float64s{6.5}, 6.5},
		{"single-element seq", rerun.Seq{rerun.Int(7)}, 7},
		{"component value", components.NewRadius(8), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rerun.CoerceFloat32(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFloat32Errors(t *testing.T) {
	_, err := rerun.CoerceFloat32(rerun.String("not-a-number"))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)

	_, err = rerun.CoerceFloat32(rerun.Bool(true))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)

	_, err = rerun.CoerceFloat32(rerun.Float32s{1, 2})
	require.ErrorIs(t, err, rerun.ErrShape)
}

func TestCoerceBool(t *testing.T) {
	for _, tt := range []struct {
		in   rerun.ArrayLike
		want bool
	}{
		{rerun.Bool(true), true},
		{rerun.Bool(false), false},
		{rerun.Int(0), false},
		{rerun.Int(-1), true},
		{rerun.Float64(0.5), true},
		{rerun.String("true"), true},
		{rerun.Bools{false}, false},
		{rerun.Seq{rerun.Bool(true)}, true},
	} {
		got, err := rerun.CoerceBool(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}

	_, err := rerun.CoerceBool(rerun.String("maybe"))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)
}

func TestCoerceUint(t *testing.T) {
	u32, err := rerun.CoerceUint[uint32](rerun.Int(7))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), u32)

	u32, err = rerun.CoerceUint[uint32](rerun.String("0xFF0000FF"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF0000FF), u32)

	_, err = rerun.CoerceUint[uint32](rerun.Int(-1))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)

	_, err = rerun.CoerceUint[uint32](rerun.Uint(1 << 40))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)

	_, err = rerun.CoerceUint[uint32](rerun.Float64(1.5))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)

	u64, err := rerun.CoerceUint[uint64](rerun.Uint(1 << 40))
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<40, u64)
}

func TestCoerceString(t *testing.T) {
	s, err := rerun.CoerceString(rerun.String("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	_, err = rerun.CoerceString(rerun.Float64(1))
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)
}

func TestAsArrayLike(t *testing.T) {
	al, err := rerun.AsArrayLike(3.5)
	require.NoError(t, err)
	assert.Equal(t, rerun.Float64(3.5), al)

	al, err = rerun.AsArrayLike([]float32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, rerun.Float32s{1, 2}, al)

	al, err = rerun.AsArrayLike([]any{1.0, true, "x"})
	require.NoError(t, err)
	assert.Equal(t, rerun.Seq{rerun.Float64(1), rerun.Bool(true), rerun.String("x")}, al)

	radius := components.NewRadius(1)
	al, err = rerun.AsArrayLike(radius)
	require.NoError(t, err)
	assert.Equal(t, rerun.ArrayLike(radius), al)

	_, err = rerun.AsArrayLike(struct{}{})
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)

	_, err = rerun.AsArrayLike(nil)
	require.ErrorIs(t, err, rerun.ErrTypeCoercion)
}
