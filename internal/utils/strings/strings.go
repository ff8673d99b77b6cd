// Copyright 2023 Greenmask
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

package strings

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// WrapString - wrap by words and split the words that are longer than maxLength
func WrapString(v string, maxLength int) string {
	strs := strings.Split(wordwrap.WrapString(v, uint(maxLength)), "\n")
	res := make([]string, 0, len(strs))
	for _, s := range strs {
		if len(s) <= maxLength {
			res = append(res, s)
			continue
		}
		for idx := 0; idx < len(s); idx += maxLength {
			res = append(res, s[idx:min(idx+maxLength, len(s))])
		}
	}
	return strings.Join(res, "\n")
}
