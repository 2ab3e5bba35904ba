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
	"math"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Coercion rules shared by the component catalog. Each function is total
// over its accepted subset of the ArrayLike union and fails with
// ErrTypeCoercion (or ErrShape for mis-sized nested input) on everything
// else. Component kinds compose these instead of re-stating the rules;
// a kind that stores float32 delegates to CoerceFloat32 no matter which
// logical component it is.

// Float32er is implemented by component values whose canonical
// representation is a 32-bit float, letting one float-like component be
// coerced where another is expected.
type Float32er interface {
	Float32() float32
}

// CoerceFloat32 interprets v as a single 32-bit float. Accepted inputs:
// numeric scalars, numeric strings, float-like component values, and
// single-element numeric slices or sequences.
func CoerceFloat32(v ArrayLike) (float32, error) {
	switch x := v.(type) {
	case Float64:
		return float32(x), nil
	case Int:
		return float32(x), nil
	case Uint:
		return float32(x), nil
	case String:
		f, err := strconv.ParseFloat(string(x), 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrTypeCoercion, string(x))
		}
		return float32(f), nil
	case Float32s:
		if len(x) != 1 {
			return 0, scalarRankErr(len(x))
		}
		return x[0], nil
	case Float64s:
		if len(x) != 1 {
			return 0, scalarRankErr(len(x))
		}
		return float32(x[0]), nil
	case Seq:
		if len(x) != 1 {
			return 0, scalarRankErr(len(x))
		}
		return CoerceFloat32(x[0])
	case Float32er:
		return x.Float32(), nil
	default:
		return 0, fmt.Errorf("%w: cannot interpret %T as float32", ErrTypeCoercion, v)
	}
}

// CoerceBool interprets v as a truth value: booleans directly, numerics
// by comparison with zero, strings via strconv.ParseBool, plus
// single-element slices or sequences of the same.
func CoerceBool(v ArrayLike) (bool, error) {
	switch x := v.(type) {
	case Bool:
		return bool(x), nil
	case Float64:
		return x != 0, nil
	case Int:
		return x != 0, nil
	case Uint:
		return x != 0, nil
	case String:
		b, err := strconv.ParseBool(string(x))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", ErrTypeCoercion, string(x))
		}
		return b, nil
	case Bools:
		if len(x) != 1 {
			return false, scalarRankErr(len(x))
		}
		return x[0], nil
	case Seq:
		if len(x) != 1 {
			return false, scalarRankErr(len(x))
		}
		return CoerceBool(x[0])
	default:
		return false, fmt.Errorf("%w: cannot interpret %T as bool", ErrTypeCoercion, v)
	}
}

// CoerceUint interprets v as an unsigned integer of width T, rejecting
// negative values, fractional floats and out-of-range magnitudes.
func CoerceUint[T constraints.Unsigned](v ArrayLike) (T, error) {
	max := uint64(^T(0))
	width := 64 - bits.LeadingZeros64(max)
	switch x := v.(type) {
	case Int:
		if x < 0 || uint64(x) > max {
			return 0, rangeErr(int64(x), max)
		}
		return T(x), nil
	case Uint:
		if uint64(x) > max {
			return 0, fmt.Errorf("%w: %d overflows %d-bit unsigned storage", ErrTypeCoercion, x, width)
		}
		return T(x), nil
	case Float64:
		f := float64(x)
		if f != math.Trunc(f) || f < 0 || f > float64(max) {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer", ErrTypeCoercion, f)
		}
		return T(f), nil
	case String:
		u, err := strconv.ParseUint(string(x), 0, width)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrTypeCoercion, string(x))
		}
		return T(u), nil
	case Uint32s:
		if len(x) != 1 {
			return 0, scalarRankErr(len(x))
		}
		return CoerceUint[T](Uint(x[0]))
	case Uint64s:
		if len(x) != 1 {
			return 0, scalarRankErr(len(x))
		}
		return CoerceUint[T](Uint(x[0]))
	case Seq:
		if len(x) != 1 {
			return 0, scalarRankErr(len(x))
		}
		return CoerceUint[T](x[0])
	default:
		return 0, fmt.Errorf("%w: cannot interpret %T as unsigned integer", ErrTypeCoercion, v)
	}
}

// CoerceString interprets v as a UTF-8 string. Only strings and
// single-element containers of strings are accepted; there is no
// stringification of other kinds.
func CoerceString(v ArrayLike) (string, error) {
	switch x := v.(type) {
	case String:
		return string(x), nil
	case Strings:
		if len(x) != 1 {
			return "", scalarRankErr(len(x))
		}
		return x[0], nil
	case Seq:
		if len(x) != 1 {
			return "", scalarRankErr(len(x))
		}
		return CoerceString(x[0])
	default:
		return "", fmt.Errorf("%w: cannot interpret %T as string", ErrTypeCoercion, v)
	}
}

func scalarRankErr(n int) error {
	return fmt.Errorf("%w: scalar layout requires a single element, got %d", ErrShape, n)
}

func rangeErr(v int64, max uint64) error {
	return fmt.Errorf("%w: %d out of range [0, %d]", ErrTypeCoercion, v, max)
}
