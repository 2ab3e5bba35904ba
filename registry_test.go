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
	"fmt"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/suite"

	"github.com/yutiansut/rerun"
	"github.com/yutiansut/rerun/components"
)

// a registrable kind with a name not taken by the built-in catalog
type testOnlyType struct {
	components.RadiusType
}

func newTestOnlyType() *testOnlyType {
	return &testOnlyType{RadiusType: *components.NewRadiusType()}
}

func (*testOnlyType) ExtensionName() string { return "rerun.components.TestOnly" }

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestRegisterAndResolve() {
	ct := newTestOnlyType()
	s.NoError(rerun.RegisterComponentType(ct))

	got, err := rerun.GetComponentType("rerun.components.TestOnly")
	s.NoError(err)
	s.Same(ct, got)

	s.NotNil(arrow.GetExtensionType("rerun.components.TestOnly"))
}

func (s *RegistryTestSuite) TestRegisterDuplicate() {
	s.Error(rerun.RegisterComponentType(components.NewRadiusType()))
}

func (s *RegistryTestSuite) TestGetUnknown() {
	_, err := rerun.GetComponentType("rerun.components.Missing")
	s.ErrorIs(err, rerun.ErrUnknownComponent)
}

func (s *RegistryTestSuite) TestRegisterHookUnknownComponent() {
	err := rerun.RegisterHook("rerun.components.Missing", nil)
	s.ErrorIs(err, rerun.ErrUnknownComponent)
}

func (s *RegistryTestSuite) TestHookReplacesConversion() {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(s.T(), 0)

	// ignores the input values entirely, proving full delegation
	hook := func(mem memory.Allocator, input rerun.ArrayLike, target rerun.ComponentType) (arrow.Array, error) {
		bldr := array.NewFloat32Builder(mem)
		defer bldr.Release()
		bldr.Append(42)
		return bldr.NewArray(), nil
	}
	s.NoError(rerun.RegisterHook(components.ExtensionNameDrawOrder, hook))
	defer rerun.UnregisterHook(components.ExtensionNameDrawOrder)

	ct, err := rerun.GetComponentType(components.ExtensionNameDrawOrder)
	s.NoError(err)

	b, err := rerun.ToArrow(mem, rerun.Float64(7), ct)
	s.NoError(err)
	defer b.Release()

	s.Equal(1, b.Len())
	s.Equal(components.ExtensionNameDrawOrder, b.Name())
	s.Equal(float32(42), b.Data().(*components.DrawOrderArray).Value(0))
}

func (s *RegistryTestSuite) TestHookContractLength() {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(s.T(), 0)

	hook := func(mem memory.Allocator, input rerun.ArrayLike, target rerun.ComponentType) (arrow.Array, error) {
		bldr := array.NewFloat32Builder(mem)
		defer bldr.Release()
		bldr.AppendValues([]float32{1, 2}, nil)
		return bldr.NewArray(), nil
	}
	s.NoError(rerun.RegisterHook(components.ExtensionNameDrawOrder, hook))
	defer rerun.UnregisterHook(components.ExtensionNameDrawOrder)

	ct, err := rerun.GetComponentType(components.ExtensionNameDrawOrder)
	s.NoError(err)

	_, err = rerun.ToArrow(mem, rerun.Float64(7), ct)
	s.ErrorIs(err, rerun.ErrHookContract)
}

func (s *RegistryTestSuite) TestHookContractStorageType() {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(s.T(), 0)

	hook := func(mem memory.Allocator, input rerun.ArrayLike, target rerun.ComponentType) (arrow.Array, error) {
		bldr := array.NewStringBuilder(mem)
		defer bldr.Release()
		bldr.Append("oops")
		return bldr.NewArray(), nil
	}
	s.NoError(rerun.RegisterHook(components.ExtensionNameDrawOrder, hook))
	defer rerun.UnregisterHook(components.ExtensionNameDrawOrder)

	ct, err := rerun.GetComponentType(components.ExtensionNameDrawOrder)
	s.NoError(err)

	_, err = rerun.ToArrow(mem, rerun.Float64(7), ct)
	s.ErrorIs(err, rerun.ErrHookContract)
}

func (s *RegistryTestSuite) TestHookErrorPropagates() {
	hook := func(mem memory.Allocator, input rerun.ArrayLike, target rerun.ComponentType) (arrow.Array, error) {
		return nil, fmt.Errorf("backend unavailable")
	}
	s.NoError(rerun.RegisterHook(components.ExtensionNameDrawOrder, hook))
	defer rerun.UnregisterHook(components.ExtensionNameDrawOrder)

	ct, err := rerun.GetComponentType(components.ExtensionNameDrawOrder)
	s.NoError(err)

	_, err = rerun.ToArrow(nil, rerun.Float64(7), ct)
	s.ErrorContains(err, "backend unavailable")
}
