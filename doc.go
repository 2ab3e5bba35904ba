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

// Package rerun converts typed component values into Arrow arrays tagged
// with a stable extension-type identity, for hand-off to columnar storage.
//
// A component is a single named, typed field of domain data, such as a
// radius or a boolean flag. Each component kind is described once by a
// ComponentType: an arrow.ExtensionType pairing the component's logical
// name (for example "rerun.components.Radius") with its physical storage
// layout. The logical name is the wire-level contract consumed by
// downstream systems; two batches carrying the same name are always
// layout compatible.
//
// ToArrow is the conversion entry point. It accepts the closed ArrayLike
// union of input shapes (raw scalars, component values, native slices,
// heterogeneous sequences, existing batches) and produces a Batch: one
// extension-typed columnar array paired with its descriptor. Conversion
// is pure and stateless, so concurrent calls are safe as long as the
// shared ComponentType descriptors are treated as read only, which they
// are after registration.
//
// The built-in component catalog lives in the components subpackage and
// registers itself on import:
//
//	import (
//		"github.com/yutiansut/rerun"
//		_ "github.com/yutiansut/rerun/components"
//	)
//
// Per-kind conversion overrides may be installed with RegisterHook; an
// installed hook fully replaces the default coercion for its component.
package rerun
