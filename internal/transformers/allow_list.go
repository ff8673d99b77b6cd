// Copyright 2025 Greenmask
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

package transformers

// AllowList - immutable set of digests. It is built once and safe for concurrent reads
type AllowList struct {
	m map[string]struct{}
}

func NewAllowList(digests ...string) *AllowList {
	m := make(map[string]struct{}, len(digests))
	for _, d := range digests {
		m[d] = struct{}{}
	}
	return &AllowList{m: m}
}

// Contains - exact match of the digest. No case folding is performed
func (al *AllowList) Contains(digest string) bool {
	_, ok := al.m[digest]
	return ok
}

func (al *AllowList) Len() int {
	return len(al.m)
}
