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

	"github.com/spf13/cast"
)

// Kind classifies the scalar payload carried by enum members. Every member
// of a family shares one Kind, fixed when the family is defined.
type Kind uint8

const (
	UnknownKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "Bool"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case StringKind:
		return "String"
	}
	return "Unknown"
}

// KindOf classifies v and returns its normalized form: signed and unsigned
// integers collapse to int64 and floats to float64, so identity comparison
// after normalization is plain ==. UnknownKind means v is not a supported
// scalar.
func KindOf(v interface{}) (Kind, interface{}) {
	switch v := v.(type) {
	case bool:
		return BoolKind, v
	case string:
		return StringKind, v
	case int:
		return IntKind, int64(v)
	case int8:
		return IntKind, int64(v)
	case int16:
		return IntKind, int64(v)
	case int32:
		return IntKind, int64(v)
	case int64:
		return IntKind, v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return UnknownKind, nil
		}
		return IntKind, int64(v)
	case uint8:
		return IntKind, int64(v)
	case uint16:
		return IntKind, int64(v)
	case uint32:
		return IntKind, int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return UnknownKind, nil
		}
		return IntKind, int64(v)
	case float32:
		return FloatKind, float64(v)
	case float64:
		return FloatKind, v
	}
	return UnknownKind, nil
}

// scalarsEqual is the identity-level comparison: the kinds must match
// exactly and the normalized values must be ==.
func scalarsEqual(a, b interface{}) bool {
	ka, na := KindOf(a)
	kb, nb := KindOf(b)
	if ka == UnknownKind || ka != kb {
		return false
	}
	return na == nb
}

// scalarsLooselyEqual coerces before comparing: when both sides coerce to a
// number they compare numerically, otherwise they compare by their string
// rendering. So "8192" loosely equals 8192, and true loosely equals 1.
func scalarsLooselyEqual(a, b interface{}) bool {
	fa, errA := cast.ToFloat64E(a)
	fb, errB := cast.ToFloat64E(b)
	if errA == nil && errB == nil {
		return fa == fb
	}
	return cast.ToString(a) == cast.ToString(b)
}
