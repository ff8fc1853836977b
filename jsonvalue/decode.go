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
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jtree"
)

// Parse decodes a single JSON document. Syntax errors, including trailing
// data after the document, are reported as *SyntaxError.
func Parse(data []byte) (*Value, error) {
	s := jtree.NewStream(bytes.NewReader(data))

	b := &treeBuilder{}
	if err := s.ParseOne(b); err != nil {
		if err == io.EOF {
			return nil, newSyntaxError(data, "expecting value", len(data))
		}
		return nil, syntaxError(data, err)
	}

	// A second value, or anything that fails to scan, is trailing data.
	extra := &treeBuilder{}
	switch err := s.ParseOne(extra); {
	case err == io.EOF:
		return b.root, nil
	case err != nil:
		return nil, syntaxError(data, err)
	default:
		return nil, newSyntaxError(data, "extra data", extra.start)
	}
}

func syntaxError(data []byte, err error) error {
	var serr *jtree.SyntaxError
	if errors.As(err, &serr) {
		return newSyntaxError(data, serr.Message, serr.Location.Pos)
	}
	return err
}

// treeBuilder assembles a Value tree from the parser's events. Containers
// being filled sit on stack; keys holds the pending key of each open member.
type treeBuilder struct {
	root  *Value
	stack []*Value
	keys  []string
	start int
	seen  bool
}

func (b *treeBuilder) mark(loc jtree.Anchor) {
	if !b.seen {
		b.seen = true
		b.start = loc.Location().Pos
	}
}

func (b *treeBuilder) add(v *Value) {
	if len(b.stack) == 0 {
		b.root = v
		return
	}
	top := b.stack[len(b.stack)-1]
	if top.Kind == KindArray {
		top.Items = append(top.Items, v)
		return
	}
	key := b.keys[len(b.keys)-1]
	b.keys = b.keys[:len(b.keys)-1]
	// A repeated key keeps its first position and takes the last value.
	top.Set(key, v)
}

func (b *treeBuilder) pop() *Value {
	v := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return v
}

func (b *treeBuilder) BeginObject(loc jtree.Anchor) error {
	b.mark(loc)
	b.stack = append(b.stack, Object())
	return nil
}

func (b *treeBuilder) EndObject(jtree.Anchor) error {
	b.add(b.pop())
	return nil
}

func (b *treeBuilder) BeginArray(loc jtree.Anchor) error {
	b.mark(loc)
	b.stack = append(b.stack, Array())
	return nil
}

func (b *treeBuilder) EndArray(jtree.Anchor) error {
	b.add(b.pop())
	return nil
}

func (b *treeBuilder) BeginMember(loc jtree.Anchor) error {
	key, err := unquote(loc.Text())
	if err != nil {
		return err
	}
	b.keys = append(b.keys, key)
	return nil
}

func (b *treeBuilder) EndMember(jtree.Anchor) error { return nil }

func (b *treeBuilder) Value(loc jtree.Anchor) error {
	b.mark(loc)
	text := loc.Text()
	switch {
	case len(text) == 0:
		return errors.New("empty value token")
	case text[0] == '"':
		s, err := unquote(text)
		if err != nil {
			return err
		}
		b.add(String(s))
	case string(text) == "true":
		b.add(Bool(true))
	case string(text) == "false":
		b.add(Bool(false))
	case string(text) == "null":
		b.add(Null())
	default:
		b.add(Number(string(text)))
	}
	return nil
}

func (b *treeBuilder) EndOfInput(jtree.Anchor) {}

// unquote decodes a quoted string token, escapes included.
func unquote(text []byte) (string, error) {
	var s string
	if err := json.Unmarshal(text, &s); err != nil {
		return "", fmt.Errorf("invalid string %s: %w", text, err)
	}
	return s, nil
}
