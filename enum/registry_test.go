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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefineOnce(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()

	f, err := r.Define("Suit", Def{"HEARTS", "h"}, Def{"SPADES", "s"})
	require.NoError(t, err)

	got, ok := r.Lookup("Suit")
	assert.True(ok)
	assert.Same(f, got)

	_, ok = r.Lookup("NoSuchFamily")
	assert.False(ok)

	// Second definition of the same family is a schema defect.
	_, err = r.Define("Suit", Def{"CLUBS", "c"})
	assert.True(ErrInvalidDefinition.Is(err), "got %v", err)

	// The registered definition is untouched.
	got, _ = r.Lookup("Suit")
	assert.Same(f, got)
	assert.Equal([]string{"HEARTS", "SPADES"}, got.Keys())
}

func TestRegistryRejectsBadDefinition(t *testing.T) {
	r := NewRegistry()
	_, err := r.Define("Bad", Def{"A", 1}, Def{"B", 1})
	assert.True(t, ErrInvalidDefinition.Is(err))

	_, ok := r.Lookup("Bad")
	assert.False(t, ok, "failed definitions must not register")
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	_, err := r.Define("Zeta", Def{"A", 1})
	require.NoError(t, err)
	_, err = r.Define("Alpha", Def{"A", 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "Zeta"}, r.Names())
}

func TestRegistriesAreIndependent(t *testing.T) {
	assert := assert.New(t)
	r1, r2 := NewRegistry(), NewRegistry()

	f1, err := r1.Define("Shared", Def{"A", 1})
	assert.NoError(err)
	f2, err := r2.Define("Shared", Def{"A", 1})
	assert.NoError(err)
	assert.NotSame(f1, f2)
}

func TestDefaultRegistryDefine(t *testing.T) {
	assert := assert.New(t)

	f := MustDefine("registry_test.Weekday",
		Def{"MON", 1}, Def{"TUE", 2}, Def{"WED", 3},
	)
	got, ok := DefaultRegistry.Lookup("registry_test.Weekday")
	assert.True(ok)
	assert.Same(f, got)

	_, err := Define("registry_test.Weekday", Def{"MON", 1})
	assert.True(ErrInvalidDefinition.Is(err))
}
