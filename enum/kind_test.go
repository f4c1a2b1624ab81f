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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfNormalizes(t *testing.T) {
	assert := assert.New(t)

	k, v := KindOf(42)
	assert.Equal(IntKind, k)
	assert.Equal(int64(42), v)

	k, v = KindOf(uint8(7))
	assert.Equal(IntKind, k)
	assert.Equal(int64(7), v)

	k, v = KindOf(int32(-3))
	assert.Equal(IntKind, k)
	assert.Equal(int64(-3), v)

	k, v = KindOf(float32(1.5))
	assert.Equal(FloatKind, k)
	assert.Equal(float64(1.5), v)

	k, v = KindOf(true)
	assert.Equal(BoolKind, k)
	assert.Equal(true, v)

	k, v = KindOf("hi")
	assert.Equal(StringKind, k)
	assert.Equal("hi", v)
}

func TestKindOfRejectsNonScalars(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []interface{}{
		nil,
		[]int{1},
		map[string]int{"a": 1},
		struct{ X int }{1},
		uint64(math.MaxUint64),
	} {
		k, norm := KindOf(v)
		assert.Equal(UnknownKind, k, "%v should not classify", v)
		assert.Nil(norm)
	}
}

func TestScalarsEqualIsTypeExact(t *testing.T) {
	assert := assert.New(t)

	assert.True(scalarsEqual(1, int64(1)))
	assert.True(scalarsEqual(uint16(2), 2))
	assert.True(scalarsEqual("a", "a"))
	assert.True(scalarsEqual(float32(0.5), 0.5))

	assert.False(scalarsEqual(1, 1.0))
	assert.False(scalarsEqual(1, "1"))
	assert.False(scalarsEqual(1, true))
	assert.False(scalarsEqual("a", "A"))
	assert.False(scalarsEqual(nil, nil))
}

func TestScalarsLooselyEqualCoerces(t *testing.T) {
	assert := assert.New(t)

	assert.True(scalarsLooselyEqual("8192", 8192))
	assert.True(scalarsLooselyEqual(1.0, 1))
	assert.True(scalarsLooselyEqual(true, 1))
	assert.True(scalarsLooselyEqual("abc", "abc"))

	assert.False(scalarsLooselyEqual("abc", 1))
	assert.False(scalarsLooselyEqual("a", "A"))
	assert.False(scalarsLooselyEqual(2, 3))
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Int", IntKind.String())
	assert.Equal("Float", FloatKind.String())
	assert.Equal("Bool", BoolKind.String())
	assert.Equal("String", StringKind.String())
	assert.Equal("Unknown", UnknownKind.String())
}
