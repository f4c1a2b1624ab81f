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
	"sync"

	"github.com/dolthub/enumset/d"
)

// instanceCache is the canonical store for one family's instances. Entries
// are created lazily on first lookup, never evicted, and at most one
// *Instance is ever published per member name, even when first access races
// across goroutines.
type instanceCache struct {
	mu        sync.Mutex
	instances map[string]*Instance
}

func (c *instanceCache) getOrCreate(f *Family, name string, value interface{}) *Instance {
	d.Chk.NotEmpty(name, "instance cache lookups require a member name")
	c.mu.Lock()
	defer c.mu.Unlock()
	if in, ok := c.instances[name]; ok {
		return in
	}
	if c.instances == nil {
		c.instances = make(map[string]*Instance, f.Len())
	}
	in := &Instance{family: f, name: name, value: value}
	c.instances[name] = in
	return in
}
