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

import "encoding/json"

// Kind identifies which variant of a JSON value a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value entry of a JSON object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a decoded JSON value. Only the payload field matching Kind is
// meaningful.
type Value struct {
	Kind    Kind
	Bool    bool
	Num     json.Number // literal text, kept verbatim
	Str     string
	Items   []*Value
	Members []Member // source order
}

// Null returns a JSON null.
func Null() *Value {
	return &Value{Kind: KindNull}
}

// Bool returns a JSON boolean.
func Bool(b bool) *Value {
	return &Value{Kind: KindBool, Bool: b}
}

// Number returns a JSON number holding the given literal.
func Number(lit string) *Value {
	return &Value{Kind: KindNumber, Num: json.Number(lit)}
}

// String returns a JSON string.
func String(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

// Array returns a JSON array of the given items.
func Array(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{Kind: KindArray, Items: items}
}

// Object returns a JSON object with the given members, in order.
func Object(members ...Member) *Value {
	if members == nil {
		members = []Member{}
	}
	return &Value{Kind: KindObject, Members: members}
}

// Get returns the value stored under key when v is an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key, or appends a new member when the key is
// not present. The original position of an existing key is kept.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.Kind != KindObject {
		return
	}
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}

// Walk calls fn for v and every value nested below it, depth first. When fn
// returns false the children of that value are skipped.
func Walk(v *Value, fn func(*Value) bool) {
	if v == nil || !fn(v) {
		return
	}
	switch v.Kind {
	case KindArray:
		for _, item := range v.Items {
			Walk(item, fn)
		}
	case KindObject:
		for _, m := range v.Members {
			Walk(m.Value, fn)
		}
	}
}
