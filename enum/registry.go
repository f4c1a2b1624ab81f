// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enum

import (
	"sort"
	"sync"

	"github.com/dolthub/enumset/d"
)

// Registry tracks family definitions by name so that each enumeration is
// defined exactly once. Registration is insert-if-absent under a lock; a
// registered family is never replaced or removed.
type Registry struct {
	mu       sync.Mutex
	families map[string]*Family
}

func NewRegistry() *Registry {
	return &Registry{families: make(map[string]*Family)}
}

// DefaultRegistry is the process-wide registry used by the package-level
// Define functions.
var DefaultRegistry = NewRegistry()

// Register records f under its name. Defining the same family name twice is
// a schema defect and fails with ErrInvalidDefinition.
func (r *Registry) Register(f *Family) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.families[f.Name()]; ok {
		return ErrInvalidDefinition.New(f.Name(), "family is already defined")
	}
	r.families[f.Name()] = f
	return nil
}

// Lookup returns the registered family for name, if any.
func (r *Registry) Lookup(name string) (*Family, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.families[name]
	return f, ok
}

// Names returns the registered family names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Define constructs a family and registers it in one step.
func (r *Registry) Define(name string, defs ...Def) (*Family, error) {
	f, err := NewFamily(name, defs...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Define constructs a family and registers it with the DefaultRegistry.
func Define(name string, defs ...Def) (*Family, error) {
	return DefaultRegistry.Define(name, defs...)
}

// MustDefine is Define for definitions known good at compile time.
func MustDefine(name string, defs ...Def) *Family {
	f, err := Define(name, defs...)
	d.PanicIfError(err)
	return f
}
