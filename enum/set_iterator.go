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

// SetIterator walks a set's members in the set's fixed insertion order.
type SetIterator struct {
	s   *Set
	idx int
}

// Next returns subsequent members of the set. It returns nil when no
// members remain.
func (si *SetIterator) Next() *Instance {
	if si.idx >= len(si.s.names) {
		return nil
	}
	in := si.s.members[si.s.names[si.idx]]
	si.idx++
	return in
}
