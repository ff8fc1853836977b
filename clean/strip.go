// Copyright 2025 Poiesic Systems
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

package clean

import (
	"strings"

	"github.com/poiesic/jsonmend/jsonvalue"
)

// StripField removes every rune in chars from the string value of each
// object member named field, at any depth. Members whose value is not a
// string are searched like any other value. It returns the number of
// strings that changed.
func StripField(v *jsonvalue.Value, field, chars string) int {
	if chars == "" {
		return 0
	}

	changed := 0
	jsonvalue.Walk(v, func(n *jsonvalue.Value) bool {
		if n.Kind != jsonvalue.KindObject {
			return true
		}
		for _, m := range n.Members {
			if m.Key != field || m.Value == nil || m.Value.Kind != jsonvalue.KindString {
				continue
			}
			if stripped := removeRunes(m.Value.Str, chars); stripped != m.Value.Str {
				m.Value.Str = stripped
				changed++
			}
		}
		return true
	})
	return changed
}

func removeRunes(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}
