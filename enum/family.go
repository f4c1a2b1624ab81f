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
	"fmt"

	"github.com/dolthub/enumset/d"
)

// Def is one entry in a family definition: a case-significant name bound to
// a scalar value.
type Def struct {
	Name  string
	Value interface{}
}

// Family is the closed definition of one enumeration: an ordered mapping
// from unique names to unique scalar values of a single Kind. A Family is
// immutable once constructed; its canonical instances are minted lazily
// through the family's cache and live for the life of the process.
type Family struct {
	name    string
	kind    Kind
	keys    []string               // definition order
	defs    map[string]interface{} // name → normalized scalar
	byValue map[interface{}]string
	cache   instanceCache
}

// NewFamily validates defs and builds the closed definition. Schema defects
// (empty or duplicate names, non-scalar values, mixed kinds, duplicate
// values) fail here with ErrInvalidDefinition, never later.
func NewFamily(name string, defs ...Def) (*Family, error) {
	if name == "" {
		return nil, ErrInvalidDefinition.New("(unnamed)", "family name is empty")
	}
	f := &Family{
		name:    name,
		keys:    make([]string, 0, len(defs)),
		defs:    make(map[string]interface{}, len(defs)),
		byValue: make(map[interface{}]string, len(defs)),
	}
	for _, def := range defs {
		if def.Name == "" {
			return nil, ErrInvalidDefinition.New(name, "member name is empty")
		}
		if _, ok := f.defs[def.Name]; ok {
			return nil, ErrInvalidDefinition.New(name, fmt.Sprintf("duplicate member name %s", def.Name))
		}
		kind, norm := KindOf(def.Value)
		if kind == UnknownKind {
			return nil, ErrInvalidDefinition.New(name, fmt.Sprintf("member %s has non-scalar value of type %T", def.Name, def.Value))
		}
		if f.kind == UnknownKind {
			f.kind = kind
		} else if kind != f.kind {
			return nil, ErrInvalidDefinition.New(name, fmt.Sprintf("member %s is %s, family is %s", def.Name, kind, f.kind))
		}
		if prev, ok := f.byValue[norm]; ok {
			return nil, ErrInvalidDefinition.New(name, fmt.Sprintf("members %s and %s share value %v", prev, def.Name, norm))
		}
		f.keys = append(f.keys, def.Name)
		f.defs[def.Name] = norm
		f.byValue[norm] = def.Name
	}
	return f, nil
}

// MustNewFamily is NewFamily for definitions known good at compile time.
func MustNewFamily(name string, defs ...Def) *Family {
	f, err := NewFamily(name, defs...)
	d.PanicIfError(err)
	return f
}

func (f *Family) Name() string {
	return f.name
}

func (f *Family) Kind() Kind {
	return f.kind
}

// Len returns the number of members the family defines.
func (f *Family) Len() int {
	return len(f.keys)
}

// Keys returns the member names in definition order.
func (f *Family) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Values returns the name→scalar mapping of the definition. The scalars are
// in normalized form (int64, float64, bool, string).
func (f *Family) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(f.keys))
	for name, value := range f.defs {
		out[name] = value
	}
	return out
}

// Defs returns the definition entries in definition order.
func (f *Family) Defs() []Def {
	out := make([]Def, len(f.keys))
	for i, name := range f.keys {
		out[i] = Def{Name: name, Value: f.defs[name]}
	}
	return out
}

// IsValidKey reports whether name is defined by the family. Names are
// case-significant.
func (f *Family) IsValidKey(name string) bool {
	_, ok := f.defs[name]
	return ok
}

// IsValidValue reports whether some member maps to v. Strict demands an
// identity-level match (same kind, same value); loose coerces, so "2" is a
// valid loose value for an int-kinded family defining 2.
func (f *Family) IsValidValue(v interface{}, strict bool) bool {
	if strict {
		kind, norm := KindOf(v)
		if kind != f.kind {
			return false
		}
		_, ok := f.byValue[norm]
		return ok
	}
	for _, name := range f.keys {
		if scalarsLooselyEqual(f.defs[name], v) {
			return true
		}
	}
	return false
}

// Instance returns the canonical instance for name. Two calls with the same
// name return the same object.
func (f *Family) Instance(name string) (*Instance, error) {
	value, ok := f.defs[name]
	if !ok {
		return nil, ErrInvalidKey.New(f.name, name)
	}
	return f.cache.getOrCreate(f, name, value), nil
}

// MustInstance is Instance for names known good at compile time.
func (f *Family) MustInstance(name string) *Instance {
	in, err := f.Instance(name)
	d.PanicIfError(err)
	return in
}

// InstanceByValue performs the reverse lookup by identity-level scalar
// match and returns the same canonical instance Instance would.
func (f *Family) InstanceByValue(v interface{}) (*Instance, error) {
	kind, norm := KindOf(v)
	if kind == f.kind {
		if name, ok := f.byValue[norm]; ok {
			return f.Instance(name)
		}
	}
	return nil, ErrInvalidValue.New(f.name, v)
}

// Enumerate returns every canonical instance of the family, keyed by name.
func (f *Family) Enumerate() map[string]*Instance {
	out := make(map[string]*Instance, len(f.keys))
	for _, name := range f.keys {
		out[name] = f.cache.getOrCreate(f, name, f.defs[name])
	}
	return out
}

// All returns the set containing every member of the family, in definition
// order.
func (f *Family) All() *Set {
	names := f.Keys()
	members := make(map[string]*Instance, len(names))
	for _, name := range names {
		members[name] = f.cache.getOrCreate(f, name, f.defs[name])
	}
	return derive(f, names, members)
}

func (f *Family) String() string {
	return fmt.Sprintf("Family<%s, %s>", f.name, f.kind)
}
