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

package rerun

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
)

// ComponentType describes one component kind: an Arrow extension type
// whose ExtensionName is the component's stable logical name and whose
// StorageType is its physical layout. Descriptors are immutable after
// construction and shared by reference across every batch of their kind.
//
// AppendLike is the per-kind element coercion rule: it interprets one
// logical element of the ArrayLike union and appends it to a builder of
// the descriptor's storage type. ToArrow supplies the shape handling
// (scalars, slices, sequences, pass-through) and delegates each element
// here, so a component kind only ever defines how a single value is read.
type ComponentType interface {
	arrow.ExtensionType

	AppendLike(b array.Builder, v ArrayLike) error
}

// Component is one logical value of a component kind, normalized to the
// kind's canonical primitive representation at construction. Component
// values are members of the ArrayLike union: a single value converts to a
// length-1 batch and a Seq of values converts element-wise with no
// reinterpretation.
type Component interface {
	ArrayLike

	// Type returns the shared descriptor for this component's kind.
	Type() ComponentType
}
