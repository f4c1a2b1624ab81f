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

type recoverableError struct {
	err error
}

func (e recoverableError) Error() string {
	return e.err.Error()
}

// PanicIfError panics when err is non-nil. The panic unwinds to the nearest
// Try, which hands back the original error.
func PanicIfError(err error) {
	if err != nil {
		panic(recoverableError{err})
	}
}

// Try runs f and converts panics raised through Exp or PanicIfError back
// into errors. Panics from any other source are not intercepted.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(recoverableError)
			if !ok {
				panic(r)
			}
			err = re.err
		}
	}()
	f()
	return
}
