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

// Package enum models closed, scalar-backed enumerations as canonical value
// objects, plus an immutable set type over them with full set algebra.
//
// A Family is the closed definition of one enumeration: an ordered mapping
// from unique names to unique scalar values of a single Kind. Instances are
// canonical: the family publishes exactly one Instance per member name for
// the life of the process, so identity comparison is cheap and safe. Sets
// are bound to one family at construction; union, intersection, difference
// and the subset/superset comparisons all use the family-sensitive
// containment rule, and every operation that looks like a mutation returns
// a new Set.
//
// All values in this package are immutable after construction, so they are
// safe for concurrent use; the instance caches and the family registry
// handle their own locking.
package enum
