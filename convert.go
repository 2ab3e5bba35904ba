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
	"fmt"
	"sort"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"golang.org/x/sync/errgroup"
)

// ToArrow converts input into one columnar array of target's kind. The
// accepted input shapes are handled in priority order:
//
//  1. a registered hook for the kind replaces the whole conversion
//  2. an existing *Batch passes through (same kind) or is retagged
//     (same storage layout, different kind)
//  3. an existing arrow array is wrapped zero-copy when its type matches
//     the target's storage layout
//  4. a native homogeneous slice is wrapped zero-copy when its element
//     type is bit-compatible with the storage layout, else cast
//     element-wise
//  5. a Seq is coerced element by element, preserving order; a failing
//     element reports its index
//  6. anything else is a single logical value producing a length-1 batch
//
// The result always has one array element per logical input value, the
// target's storage layout, and the target's logical name as its extension
// identity. On error no batch is returned; there are no partial results.
//
// A nil mem defaults to memory.DefaultAllocator.
func ToArrow(mem memory.Allocator, input ArrayLike, target ComponentType) (*Batch, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if target == nil {
		return nil, fmt.Errorf("%w: nil component type", ErrUnknownComponent)
	}
	if input == nil {
		return nil, fmt.Errorf("%w: nil input", ErrTypeCoercion)
	}

	if hook := LookupHook(target.ExtensionName()); hook != nil {
		return runHook(mem, hook, input, target)
	}

	switch v := input.(type) {
	case *Batch:
		return convertBatch(v, target)
	case ArrowArray:
		return convertArray(v.Array, target)
	}

	if storage, ok := sliceStorage(mem, input, target.StorageType()); ok {
		defer storage.Release()
		return wrapStorage(target, storage), nil
	}
	if seq, ok := expandSlice(input, target.StorageType()); ok {
		// mismatched native slice over a flat layout, cast element-wise
		input = seq
	}

	bldr := array.NewBuilder(mem, target.StorageType())
	defer bldr.Release()

	switch v := input.(type) {
	case Seq:
		bldr.Reserve(len(v))
		for i, el := range v {
			if err := target.AppendLike(bldr, el); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
	default:
		if err := target.AppendLike(bldr, input); err != nil {
			return nil, err
		}
	}

	storage := bldr.NewArray()
	defer storage.Release()
	return wrapStorage(target, storage), nil
}

// ToArrowRecord converts several named columns concurrently and assembles
// them into one record with extension-typed fields, the unit handed to
// downstream storage. Every logical name must resolve in the catalog and
// every column must convert to the same length.
func ToArrowRecord(mem memory.Allocator, columns map[string]ArrayLike) (arrow.Record, error) {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	batches := make([]*Batch, len(names))
	defer func() {
		for _, b := range batches {
			if b != nil {
				b.Release()
			}
		}
	}()

	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			ct, err := GetComponentType(name)
			if err != nil {
				return err
			}
			b, err := ToArrow(mem, columns[name], ct)
			if err != nil {
				return fmt.Errorf("column %q: %w", name, err)
			}
			batches[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := 0
	fields := make([]arrow.Field, len(batches))
	cols := make([]arrow.Array, len(batches))
	for i, b := range batches {
		if i == 0 {
			rows = b.Len()
		} else if b.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				ErrShape, b.Name(), b.Len(), rows)
		}
		fields[i] = b.Field()
		cols[i] = b.Data()
	}

	return array.NewRecord(arrow.NewSchema(fields, nil), cols, int64(rows)), nil
}

func runHook(mem memory.Allocator, hook Hook, input ArrayLike, target ComponentType) (*Batch, error) {
	arr, err := hook(mem, input, target)
	if err != nil {
		return nil, err
	}
	defer arr.Release()

	if n, known := logicalLen(input, target); known && arr.Len() != n {
		return nil, fmt.Errorf("%w: hook for %q returned %d elements, want %d",
			ErrHookContract, target.ExtensionName(), arr.Len(), n)
	}
	switch {
	case arrow.TypeEqual(arr.DataType(), target):
		arr.Retain()
		return newBatch(target, arr), nil
	case arrow.TypeEqual(arr.DataType(), target.StorageType()):
		return wrapStorage(target, arr), nil
	default:
		return nil, fmt.Errorf("%w: hook for %q returned %s, want %s",
			ErrHookContract, target.ExtensionName(), arr.DataType(), target.StorageType())
	}
}

func convertBatch(b *Batch, target ComponentType) (*Batch, error) {
	if b.Name() == target.ExtensionName() {
		b.Retain()
		return b, nil
	}
	// A batch of a layout-compatible kind keeps its storage and only the
	// identity changes, e.g. reusing radii as draw order.
	if arrow.TypeEqual(b.Type().StorageType(), target.StorageType()) {
		return wrapStorage(target, b.Storage()), nil
	}
	return nil, fmt.Errorf("%w: batch of %q is not layout-compatible with %q",
		ErrTypeCoercion, b.Name(), target.ExtensionName())
}

func convertArray(arr arrow.Array, target ComponentType) (*Batch, error) {
	if arrow.TypeEqual(arr.DataType(), target) {
		arr.Retain()
		return newBatch(target, arr), nil
	}
	if ext, ok := arr.(array.ExtensionArray); ok {
		arr = ext.Storage()
	}
	if arrow.TypeEqual(arr.DataType(), target.StorageType()) {
		return wrapStorage(target, arr), nil
	}
	if nested(arr.DataType()) && !nested(target.StorageType()) {
		return nil, fmt.Errorf("%w: rank-2 array given to scalar layout %s",
			ErrShape, target.StorageType())
	}
	return nil, fmt.Errorf("%w: array of %s is not layout-compatible with %q",
		ErrTypeCoercion, arr.DataType(), target.ExtensionName())
}

func nested(dt arrow.DataType) bool {
	_, ok := dt.(arrow.NestedType)
	return ok
}

// wrapStorage tags a storage array with the target's extension identity.
// The storage is retained by the new array, not consumed.
func wrapStorage(target ComponentType, storage arrow.Array) *Batch {
	return newBatch(target, array.NewExtensionArrayWithStorage(target, storage))
}

// sliceStorage builds the storage array for a native slice whose element
// type already matches the target layout: zero-copy buffer wraps for
// fixed-width numerics, builder appends for booleans and strings. The
// second return reports whether the fast path applied.
func sliceStorage(mem memory.Allocator, input ArrayLike, storage arrow.DataType) (arrow.Array, bool) {
	switch v := input.(type) {
	case Float32s:
		if storage.ID() == arrow.FLOAT32 {
			return zeroCopy(storage, len(v), arrow.Float32Traits.CastToBytes(v)), true
		}
	case Uint32s:
		if storage.ID() == arrow.UINT32 {
			return zeroCopy(storage, len(v), arrow.Uint32Traits.CastToBytes(v)), true
		}
	case Uint64s:
		if storage.ID() == arrow.UINT64 {
			return zeroCopy(storage, len(v), arrow.Uint64Traits.CastToBytes(v)), true
		}
	case Float64s:
		if storage.ID() == arrow.FLOAT32 {
			// float64 input narrows to float32 storage, cast per element
			bldr := array.NewFloat32Builder(mem)
			defer bldr.Release()
			bldr.Reserve(len(v))
			for _, f := range v {
				bldr.UnsafeAppend(float32(f))
			}
			return bldr.NewArray(), true
		}
	case Bools:
		if storage.ID() == arrow.BOOL {
			bldr := array.NewBooleanBuilder(mem)
			defer bldr.Release()
			bldr.AppendValues(v, nil)
			return bldr.NewArray(), true
		}
	case Strings:
		if storage.ID() == arrow.STRING {
			bldr := array.NewStringBuilder(mem)
			defer bldr.Release()
			bldr.AppendValues(v, nil)
			return bldr.NewArray(), true
		}
	}
	return nil, false
}

// expandSlice turns a native slice whose element type does not match a
// flat storage layout into a Seq of scalars so the element-wise coercion
// rules apply. Slices over nested layouts are left alone: there the whole
// slice is a single logical element (one point, one fixed-width vector)
// handled by the component's AppendLike.
func expandSlice(input ArrayLike, storage arrow.DataType) (Seq, bool) {
	switch storage.ID() {
	case arrow.BOOL, arrow.FLOAT32, arrow.UINT32, arrow.UINT64, arrow.STRING:
	default:
		return nil, false
	}
	switch v := input.(type) {
	case Float32s:
		return seqMap(v, func(f float32) ArrayLike { return Float64(f) }), true
	case Float64s:
		return seqMap(v, func(f float64) ArrayLike { return Float64(f) }), true
	case Uint32s:
		return seqMap(v, func(u uint32) ArrayLike { return Uint(u) }), true
	case Uint64s:
		return seqMap(v, func(u uint64) ArrayLike { return Uint(u) }), true
	case Bools:
		return seqMap(v, func(b bool) ArrayLike { return Bool(b) }), true
	case Strings:
		return seqMap(v, func(s string) ArrayLike { return String(s) }), true
	}
	return nil, false
}

func seqMap[T any](vals []T, f func(T) ArrayLike) Seq {
	seq := make(Seq, len(vals))
	for i, v := range vals {
		seq[i] = f(v)
	}
	return seq
}

func zeroCopy(dt arrow.DataType, length int, b []byte) arrow.Array {
	buf := memory.NewBufferBytes(b)
	data := array.NewData(dt, length, []*memory.Buffer{nil, buf}, nil, 0, 0)
	defer data.Release()
	return array.MakeFromData(data)
}

// logicalLen reports how many logical elements input holds, when that is
// unambiguous. A flat native slice over a nested layout is one logical
// element (a bare pair is one point), so its length is unknown here.
func logicalLen(input ArrayLike, target ComponentType) (int, bool) {
	flat := !nested(target.StorageType())
	switch v := input.(type) {
	case Seq:
		return len(v), true
	case Float32s:
		return len(v), flat
	case Float64s:
		return len(v), flat
	case Bools:
		return len(v), flat
	case Uint32s:
		return len(v), flat
	case Uint64s:
		return len(v), flat
	case Strings:
		return len(v), flat
	case *Batch:
		return v.Len(), true
	case ArrowArray:
		return v.Len(), true
	case Float64, Int, Uint, Bool, String:
		return 1, true
	case Component:
		return 1, true
	}
	return 0, false
}
