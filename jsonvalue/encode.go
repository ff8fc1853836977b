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

package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Marshal renders v as JSON. With a non-empty indent every array element and
// object member goes on its own line, prefixed by indent once per nesting
// level, and keys are separated from values by ": ". An empty indent renders
// compact JSON. HTML characters and non-ASCII text are written unescaped.
// No trailing newline is added.
func Marshal(v *Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	e := &encoder{buf: &buf, indent: indent}
	e.str = json.NewEncoder(&e.scratch)
	e.str.SetEscapeHTML(false)

	if err := e.write(v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is Marshal with an indent of n spaces.
func MarshalIndent(v *Value, n int) ([]byte, error) {
	return Marshal(v, strings.Repeat(" ", max(n, 0)))
}

type encoder struct {
	buf     *bytes.Buffer
	indent  string
	scratch bytes.Buffer
	str     *json.Encoder
}

func (e *encoder) write(v *Value, depth int) error {
	if v == nil {
		e.buf.WriteString("null")
		return nil
	}

	switch v.Kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.Bool {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		if !isNumberLiteral(string(v.Num)) {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, v.Num)
		}
		e.buf.WriteString(string(v.Num))
	case KindString:
		return e.writeString(v.Str)
	case KindArray:
		if len(v.Items) == 0 {
			e.buf.WriteString("[]")
			return nil
		}
		e.buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.write(item, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	case KindObject:
		if len(v.Members) == 0 {
			e.buf.WriteString("{}")
			return nil
		}
		e.buf.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.writeString(m.Key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if e.indent != "" {
				e.buf.WriteByte(' ')
			}
			if err := e.write(m.Value, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, v.Kind)
	}
	return nil
}

func (e *encoder) writeString(s string) error {
	e.scratch.Reset()
	if err := e.str.Encode(s); err != nil {
		return err
	}
	e.buf.Write(bytes.TrimSuffix(e.scratch.Bytes(), []byte("\n")))
	return nil
}

func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	for range depth {
		e.buf.WriteString(e.indent)
	}
}

func isNumberLiteral(lit string) bool {
	if lit == "" {
		return false
	}
	if c := lit[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(lit))
}
