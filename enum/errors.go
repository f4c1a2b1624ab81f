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
	"gopkg.in/src-d/go-errors.v1"
)

// Every failure in this package is a local precondition violation: it
// signals a defect in the calling code or in a family definition, never a
// transient condition, and nothing is retryable. Callers match with
// ErrX.Is(err).
var (
	// ErrInvalidDefinition reports a malformed family definition: a
	// non-scalar or duplicate value, a duplicate or empty name, mixed
	// scalar kinds, or an attempt to define the same family twice.
	ErrInvalidDefinition = errors.NewKind("enum: invalid definition for family %s: %s")

	// ErrInvalidKey reports a lookup by a name the family does not define.
	ErrInvalidKey = errors.NewKind("enum: family %s has no member named %s")

	// ErrInvalidValue reports a lookup by a scalar no member maps to.
	ErrInvalidValue = errors.NewKind("enum: family %s has no member with value %v")

	// ErrFamilyMismatch reports a member handed to a set bound to a
	// different family.
	ErrFamilyMismatch = errors.NewKind("enum: member %s belongs to family %s, not %s")

	// ErrImmutableViolation reports an attempt to re-run construction on an
	// already-constructed value.
	ErrImmutableViolation = errors.NewKind("enum: %s cannot be modified once constructed")
)
