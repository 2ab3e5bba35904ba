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

	"github.com/apache/arrow/go/v17/arrow"
)

// ArrayLike is the closed union of input shapes accepted by ToArrow:
//
//   - a raw scalar: Float64, Int, Uint, Bool, String
//   - a native homogeneous slice: Float32s, Float64s, Bools, Uint32s,
//     Uint64s, Strings
//   - a component value (any type embedding ValueBase, see Component)
//   - an existing arrow array: ArrowArray
//   - an existing *Batch
//   - an ordered heterogeneous sequence of any of the above: Seq
//
// The union is deliberately closed so every conversion path is an explicit
// branch. Arbitrary Go values can be admitted through AsArrayLike, which
// maps them onto the union or fails.
type ArrayLike interface {
	isArrayLike()
}

// ValueBase is embedded by component and datatype value structs to make
// them members of the ArrayLike union.
type ValueBase struct{}

func (ValueBase) isArrayLike() {}

// Scalar variants.
type (
	Float64 float64
	Int     int64
	Uint    uint64
	Bool    bool
	String  string
)

func (Float64) isArrayLike() {}
func (Int) isArrayLike()     {}
func (Uint) isArrayLike()    {}
func (Bool) isArrayLike()    {}
func (String) isArrayLike()  {}

// Native homogeneous slice variants. Where the element type is
// bit-compatible with the target storage layout the converter wraps these
// zero-copy; otherwise elements are cast one by one.
type (
	Float32s []float32
	Float64s []float64
	Bools    []bool
	Uint32s  []uint32
	Uint64s  []uint64
	Strings  []string
)

func (Float32s) isArrayLike() {}
func (Float64s) isArrayLike() {}
func (Bools) isArrayLike()    {}
func (Uint32s) isArrayLike()  {}
func (Uint64s) isArrayLike()  {}
func (Strings) isArrayLike()  {}

// Seq is an ordered sequence of mixed representations. Each element is
// coerced independently, preserving order.
type Seq []ArrayLike

func (Seq) isArrayLike() {}

// ArrowArray adapts an existing arrow.Array. The wrapped array must have
// the target's storage type (or already carry the target extension type);
// the converter does not reinterpret arrow data element-wise.
type ArrowArray struct {
	arrow.Array
}

func (ArrowArray) isArrayLike() {}

// AsArrayLike maps an arbitrary Go value onto the ArrayLike union. It
// accepts the naturally corresponding Go kinds plus []any sequences,
// which are converted recursively. Values outside the union fail with
// ErrTypeCoercion.
func AsArrayLike(v any) (ArrayLike, error) {
	switch x := v.(type) {
	case ArrayLike:
		return x, nil
	case float64:
		return Float64(x), nil
	case float32:
		return Float64(x), nil
	case int:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(x), nil
	case uint32:
		return Uint(x), nil
	case uint64:
		return Uint(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []float32:
		return Float32s(x), nil
	case []float64:
		return Float64s(x), nil
	case []bool:
		return Bools(x), nil
	case []uint32:
		return Uint32s(x), nil
	case []uint64:
		return Uint64s(x), nil
	case []string:
		return Strings(x), nil
	case arrow.Array:
		return ArrowArray{x}, nil
	case []any:
		seq := make(Seq, len(x))
		for i, e := range x {
			el, err := AsArrayLike(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			seq[i] = el
		}
		return seq, nil
	case nil:
		return nil, fmt.Errorf("%w: nil input", ErrTypeCoercion)
	default:
		return nil, fmt.Errorf("%w: %T is not an accepted input shape", ErrTypeCoercion, v)
	}
}
