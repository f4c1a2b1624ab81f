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

package d

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryRecoversPanicIfError(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	assert.Equal(boom, Try(func() { PanicIfError(boom) }))
	assert.NoError(Try(func() { PanicIfError(nil) }))
	assert.NoError(Try(func() {}))
}

func TestTryRecoversExp(t *testing.T) {
	assert := assert.New(t)

	err := Try(func() { Exp.True(false, "expected truth") })
	assert.Error(err)
	assert.Contains(err.Error(), "expected truth")
}

func TestChkIsNotRecoverable(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { _ = Try(func() { Chk.True(false, "hard failure") }) })
	assert.Panics(func() { _ = Try(func() { panic("unrelated") }) })
}
