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
)

// Instance is one canonical member of a Family: an immutable (family, name,
// value) triple. The family's cache publishes exactly one Instance per
// member name for the life of the process, so identity comparison is a
// pointer check in practice.
type Instance struct {
	family *Family
	name   string
	value  interface{}
}

func (in *Instance) Family() *Family {
	return in.family
}

func (in *Instance) Name() string {
	return in.name
}

// Value returns the member's scalar in normalized form (int64, float64,
// bool, string).
func (in *Instance) Value() interface{} {
	return in.value
}

func (in *Instance) Kind() Kind {
	return in.family.kind
}

// Equals reports identity equality: same family, same name, and an
// identity-level value match. Canonical instances make this a pointer
// comparison, but the check does not assume other came through the cache.
func (in *Instance) Equals(other *Instance) bool {
	if other == nil {
		return false
	}
	if in == other {
		return true
	}
	return in.family == other.family &&
		in.name == other.name &&
		scalarsEqual(in.value, other.value)
}

// ValueEquals compares the held scalar against other, which may be another
// Instance or a raw scalar. Identity-equal instances always compare true;
// beyond that, strict demands an exact-type match while loose coerces.
func (in *Instance) ValueEquals(other interface{}, strict bool) bool {
	if o, ok := other.(*Instance); ok {
		if in.Equals(o) {
			return true
		}
		if o == nil {
			return false
		}
		other = o.value
	}
	if strict {
		return scalarsEqual(in.value, other)
	}
	return scalarsLooselyEqual(in.value, other)
}

func (in *Instance) String() string {
	return fmt.Sprintf("%s.%s", in.family.name, in.name)
}

// HumanReadableString renders the member together with its value.
func (in *Instance) HumanReadableString() string {
	return fmt.Sprintf("%s.%s=%v", in.family.name, in.name, in.value)
}
