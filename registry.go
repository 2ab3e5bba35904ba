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
	"sync"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/rs/zerolog/log"
)

// Hook fully replaces the default coercion for one component kind. It
// receives the same (input, target) pair as ToArrow and must return an
// array satisfying the same postconditions: one element per logical input
// value, storage matching the target layout. The returned array may carry
// the extension type already or be a bare storage array, which the
// converter wraps.
type Hook func(mem memory.Allocator, input ArrayLike, target ComponentType) (arrow.Array, error)

var (
	registryMu sync.RWMutex
	catalog    = make(map[string]ComponentType)
	hooks      = make(map[string]Hook)
)

// RegisterComponentType adds a descriptor to the catalog under its logical
// name and registers it with Arrow's extension-type registry so the name
// survives IPC round trips. Registering the same name twice is an error.
func RegisterComponentType(ct ComponentType) error {
	name := ct.ExtensionName()

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := catalog[name]; ok {
		return fmt.Errorf("component type %q already registered", name)
	}
	if arrow.GetExtensionType(name) == nil {
		if err := arrow.RegisterExtensionType(ct); err != nil {
			return err
		}
	}
	catalog[name] = ct

	log.Debug().Str("component", name).
		Str("storage", ct.StorageType().String()).
		Msg("registered component type")
	return nil
}

// MustRegisterComponentType registers ct and panics on failure. It returns
// ct so catalog packages can register descriptors in var initializers.
func MustRegisterComponentType[T ComponentType](ct T) T {
	if err := RegisterComponentType(ct); err != nil {
		panic(err)
	}
	return ct
}

// GetComponentType resolves a logical name to its registered descriptor,
// failing with ErrUnknownComponent if the name was never registered. The
// returned descriptor is the identical shared instance used to produce
// every batch of that kind.
func GetComponentType(name string) (ComponentType, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ct, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return ct, nil
}

// RegisterHook installs a conversion override for the named component
// kind, replacing any previous hook. The component must already be in the
// catalog. Hooks are meant to be installed once at startup; installing
// them concurrently with conversions is safe but the winner is undefined.
func RegisterHook(name string, h Hook) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := catalog[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	hooks[name] = h

	log.Debug().Str("component", name).Msg("installed conversion hook")
	return nil
}

// UnregisterHook removes the override for name, restoring the default
// coercion. Removing a hook that was never installed is a no-op.
func UnregisterHook(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(hooks, name)
}

// LookupHook returns the override for name, or nil when the default
// coercion applies.
func LookupHook(name string) Hook {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return hooks[name]
}
