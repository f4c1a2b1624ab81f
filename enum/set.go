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
	"strings"

	"github.com/dolthub/enumset/d"
)

// Set is an immutable, insertion-ordered collection of instances from a
// single family. Every operation that would change membership returns a new
// Set and leaves the receiver untouched. One Set type serves every family;
// the binding happens at construction.
type Set struct {
	family  *Family
	names   []string // insertion order, fixed at construction
	members map[string]*Instance
	sealed  bool
}

// NewSet builds a set over f containing the given members. Duplicates
// collapse by name, which is observably idempotent since instances are
// canonical. A member of another family fails with ErrFamilyMismatch.
func NewSet(f *Family, members ...*Instance) (*Set, error) {
	s := &Set{}
	if err := s.Init(f, members...); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNewSet is NewSet for memberships known good at compile time.
func MustNewSet(f *Family, members ...*Instance) *Set {
	s, err := NewSet(f, members...)
	d.PanicIfError(err)
	return s
}

// Init constructs a zero-valued Set in place. Re-running construction on a
// set that is already built fails with ErrImmutableViolation and leaves the
// set unchanged.
func (s *Set) Init(f *Family, members ...*Instance) error {
	if s.sealed {
		return ErrImmutableViolation.New(s.String())
	}
	d.Chk.NotNil(f, "a set requires a family binding")
	names := make([]string, 0, len(members))
	index := make(map[string]*Instance, len(members))
	for _, in := range members {
		if in == nil || in.family != f {
			return ErrFamilyMismatch.New(memberName(in), memberFamily(in), f.name)
		}
		if _, ok := index[in.name]; !ok {
			names = append(names, in.name)
		}
		index[in.name] = in
	}
	s.family = f
	s.names = names
	s.members = index
	s.sealed = true
	return nil
}

// derive builds an already-validated set without re-checking membership.
// Callers own names and members exclusively from here on.
func derive(f *Family, names []string, members map[string]*Instance) *Set {
	return &Set{family: f, names: names, members: members, sealed: true}
}

func (s *Set) Family() *Family {
	return s.family
}

// Members returns the membership keyed by name. The map is a copy.
func (s *Set) Members() map[string]*Instance {
	out := make(map[string]*Instance, len(s.members))
	for name, in := range s.members {
		out[name] = in
	}
	return out
}

// Values returns the members' scalars keyed by name. This is the mapping
// collaborators serialize; the set defines no encoding of its own.
func (s *Set) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(s.members))
	for name, in := range s.members {
		out[name] = in.value
	}
	return out
}

// Names returns the member names in the set's fixed insertion order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Set) Len() int {
	return len(s.names)
}

func (s *Set) Empty() bool {
	return len(s.names) == 0
}

func (s *Set) NotEmpty() bool {
	return len(s.names) > 0
}

// Has reports whether every given instance belongs to the set's family and
// is present. A foreign-family instance makes the answer false, never an
// error.
func (s *Set) Has(members ...*Instance) bool {
	for _, in := range members {
		if in == nil || in.family != s.family {
			return false
		}
		got, ok := s.members[in.name]
		if !ok || !got.Equals(in) {
			return false
		}
	}
	return true
}

// Insert returns a new set holding the receiver's members plus the given
// instances. A member of another family fails with ErrFamilyMismatch.
func (s *Set) Insert(members ...*Instance) (*Set, error) {
	names := append(make([]string, 0, len(s.names)+len(members)), s.names...)
	index := make(map[string]*Instance, len(s.members)+len(members))
	for name, in := range s.members {
		index[name] = in
	}
	for _, in := range members {
		if in == nil || in.family != s.family {
			return nil, ErrFamilyMismatch.New(memberName(in), memberFamily(in), s.family.name)
		}
		if _, ok := index[in.name]; !ok {
			names = append(names, in.name)
		}
		index[in.name] = in
	}
	return derive(s.family, names, index), nil
}

// Remove returns a new set holding the receiver's members minus the given
// instances. Absent or foreign-family instances are no-ops.
func (s *Set) Remove(members ...*Instance) *Set {
	drop := make(map[string]bool, len(members))
	for _, in := range members {
		if in == nil || in.family != s.family {
			continue
		}
		if got, ok := s.members[in.name]; ok && got.Equals(in) {
			drop[in.name] = true
		}
	}
	names := make([]string, 0, len(s.names)-len(drop))
	index := make(map[string]*Instance, len(s.names)-len(drop))
	for _, name := range s.names {
		if drop[name] {
			continue
		}
		names = append(names, name)
		index[name] = s.members[name]
	}
	return derive(s.family, names, index)
}

// Equals reports set equality: same family, same cardinality, same members
// by name. Sets of differing families are never equal, regardless of
// content.
func (s *Set) Equals(t *Set) bool {
	if t == nil {
		return false
	}
	if s == t {
		return true
	}
	if s.family != t.family || len(s.names) != len(t.names) {
		return false
	}
	for name := range t.members {
		if _, ok := s.members[name]; !ok {
			return false
		}
	}
	return true
}

func (s *Set) NotEquals(t *Set) bool {
	return !s.Equals(t)
}

// SubsetOf reports whether every member of s is contained in t. It is
// defined as Intersect(t).Equals(s), so an empty set is a subset of any
// set, across families too, while nonempty cross-family sets never are.
func (s *Set) SubsetOf(t *Set) bool {
	return s.Intersect(t).Equals(s)
}

func (s *Set) StrictSubsetOf(t *Set) bool {
	return t != nil && s.Len() < t.Len() && s.SubsetOf(t)
}

// SupersetOf reports whether s contains every same-family member of t. It
// is defined as Union(t).Equals(s) with an explicit non-empty guard: an
// empty set is never a superset, not even of another empty set. The
// asymmetry with SubsetOf's empty-set leniency is deliberate.
func (s *Set) SupersetOf(t *Set) bool {
	return s.NotEmpty() && s.Union(t).Equals(s)
}

func (s *Set) StrictSupersetOf(t *Set) bool {
	return t != nil && s.Len() > t.Len() && s.SupersetOf(t)
}

// Intersect returns the members of s that t also contains, bound to s's
// family. Since containment is family-sensitive, intersecting with a
// foreign-family set yields s's empty set. A nil peer behaves as empty.
func (s *Set) Intersect(t *Set) *Set {
	names := make([]string, 0, len(s.names))
	index := make(map[string]*Instance, len(s.names))
	if t != nil {
		for _, name := range s.names {
			in := s.members[name]
			if t.Has(in) {
				names = append(names, name)
				index[name] = in
			}
		}
	}
	return derive(s.family, names, index)
}

// Union returns s's members plus every member of t that belongs to s's
// family. Foreign-family members of t are silently dropped. Order is s's
// insertion order followed by t's new names in t's order.
func (s *Set) Union(t *Set) *Set {
	names := append(make([]string, 0, len(s.names)), s.names...)
	index := make(map[string]*Instance, len(s.members))
	for name, in := range s.members {
		index[name] = in
	}
	if t != nil {
		for _, name := range t.names {
			in := t.members[name]
			if in.family != s.family {
				continue
			}
			if _, ok := index[name]; !ok {
				names = append(names, name)
			}
			index[name] = in
		}
	}
	return derive(s.family, names, index)
}

// Diff returns the members of s that t does not contain, by the same
// containment rule as Intersect.
func (s *Set) Diff(t *Set) *Set {
	names := make([]string, 0, len(s.names))
	index := make(map[string]*Instance, len(s.names))
	for _, name := range s.names {
		in := s.members[name]
		if t != nil && t.Has(in) {
			continue
		}
		names = append(names, name)
		index[name] = in
	}
	return derive(s.family, names, index)
}

// Clone returns a distinct set equal to the receiver. Derivation sequences
// that must not alias an existing set start here.
func (s *Set) Clone() *Set {
	names := append([]string(nil), s.names...)
	index := make(map[string]*Instance, len(s.members))
	for name, in := range s.members {
		index[name] = in
	}
	return derive(s.family, names, index)
}

// Iter calls cb for each member in insertion order until cb returns true.
func (s *Set) Iter(cb func(in *Instance) (stop bool)) {
	for _, name := range s.names {
		if cb(s.members[name]) {
			break
		}
	}
}

// Iterator returns a fresh cursor over the set. The order is fixed at
// construction time and identical on every pass; restarting means asking
// the set for a new iterator.
func (s *Set) Iterator() *SetIterator {
	return &SetIterator{s: s}
}

func (s *Set) String() string {
	return fmt.Sprintf("Set<%s>{%s}", familyName(s.family), strings.Join(s.names, ", "))
}

func memberName(in *Instance) string {
	if in == nil {
		return "<nil>"
	}
	return in.name
}

func memberFamily(in *Instance) string {
	if in == nil || in.family == nil {
		return "<nil>"
	}
	return in.family.name
}

func familyName(f *Family) string {
	if f == nil {
		return "<nil>"
	}
	return f.name
}
