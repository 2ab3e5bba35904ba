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
	"github.com/goccy/go-json"
)

// Batch is an ordered sequence of component values materialized as a
// single extension-typed columnar array, paired with the descriptor that
// produced it. A batch is created once per conversion and never mutated;
// the caller owns it and releases it when done. Batches are themselves
// members of the ArrayLike union, so re-converting a batch to its own
// kind is the identity.
type Batch struct {
	ct  ComponentType
	arr arrow.Array
}

func newBatch(ct ComponentType, arr arrow.Array) *Batch {
	return &Batch{ct: ct, arr: arr}
}

func (*Batch) isArrayLike() {}

// Type returns the batch's shared descriptor.
func (b *Batch) Type() ComponentType { return b.ct }

// Name returns the logical name the batch is tagged with, e.g.
// "rerun.components.Radius".
func (b *Batch) Name() string { return b.ct.ExtensionName() }

// Len returns the number of logical values in the batch.
func (b *Batch) Len() int { return b.arr.Len() }

// Data returns the extension-typed array holding the batch's values.
// The array remains owned by the batch; retain it to outlive the batch.
func (b *Batch) Data() arrow.Array { return b.arr }

// Storage returns the underlying storage array, untagged.
func (b *Batch) Storage() arrow.Array {
	return b.arr.(array.ExtensionArray).Storage()
}

// Field describes the batch as a record field, named by its logical name.
func (b *Batch) Field() arrow.Field {
	return arrow.Field{Name: b.Name(), Type: b.ct, Nullable: true}
}

// Retain increases the reference count of the underlying array by 1.
func (b *Batch) Retain() { b.arr.Retain() }

// Release decreases the reference count of the underlying array by 1,
// freeing its buffers when no references remain.
func (b *Batch) Release() { b.arr.Release() }

func (b *Batch) String() string { return b.Name() + b.arr.String() }

// MarshalJSON renders the batch as {"component": name, "values": [...]},
// with values encoded by the underlying array.
func (b *Batch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Component string      `json:"component"`
		Values    arrow.Array `json:"values"`
	}{b.Name(), b.arr})
}
