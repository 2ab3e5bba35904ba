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

import "errors"

var (
	// ErrTypeCoercion indicates an input element could not be interpreted
	// as the target component's primitive kind.
	ErrTypeCoercion = errors.New("type coercion")
	// ErrShape indicates a rank or nested-length mismatch, such as a ragged
	// sequence handed to a fixed-width layout.
	ErrShape = errors.New("shape mismatch")
	// ErrUnknownComponent indicates no descriptor is registered for the
	// requested logical name.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrHookContract indicates a conversion hook returned an array that
	// does not satisfy the converter's postconditions.
	ErrHookContract = errors.New("hook contract violation")
)
