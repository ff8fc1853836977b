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

package repair

import (
	"strings"
	"unicode"
)

const keySeparator = `": "`

// lineMatch holds the pieces of a `<ws>"<key>": "<content>"<comma>` line.
type lineMatch struct {
	indent  string
	key     string
	content string
	suffix  string
}

// matchLine recognizes a single-line string member whose key is one of
// fields. The rightmost quote on the line closes the value, optionally
// followed by one comma; any quotes before it belong to the content.
func matchLine(line string, fields map[string]struct{}) (lineMatch, bool) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := line[:len(line)-len(rest)]

	// Opening quote of the key
	if !strings.HasPrefix(rest, `"`) {
		return lineMatch{}, false
	}
	rest = rest[1:]

	keyEnd := strings.IndexByte(rest, '"')
	if keyEnd < 0 {
		return lineMatch{}, false
	}
	key := rest[:keyEnd]
	if _, ok := fields[key]; !ok {
		return lineMatch{}, false
	}

	rest = rest[keyEnd:]
	if !strings.HasPrefix(rest, keySeparator) {
		return lineMatch{}, false
	}
	rest = rest[len(keySeparator):]

	suffix := ""
	if strings.HasSuffix(rest, ",") {
		suffix = ","
		rest = rest[:len(rest)-1]
	}

	// Closing quote must end the line
	if !strings.HasSuffix(rest, `"`) {
		return lineMatch{}, false
	}

	return lineMatch{
		indent:  indent,
		key:     key,
		content: rest[:len(rest)-1],
		suffix:  suffix,
	}, true
}

func (m lineMatch) String() string {
	return m.indent + `"` + m.key + keySeparator + escapeQuotes(m.content) + `"` + m.suffix
}

// escapeQuotes escapes every quote in content that is not already preceded
// by a backslash. Content that ends in a backslash meant literally cannot be
// told apart from an escaped closing quote and is left as is.
func escapeQuotes(content string) string {
	if !strings.Contains(content, `"`) {
		return content
	}

	fixed := make([]byte, 0, len(content)+8)
	for i := 0; i < len(content); i++ {
		ch := content[i]
		if ch == '"' && (i == 0 || content[i-1] != '\\') {
			fixed = append(fixed, '\\', '"')
			continue
		}
		fixed = append(fixed, ch)
	}
	return string(fixed)
}
