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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Kinds(t *testing.T) {
	doc, err := Parse([]byte(`{"s": "text", "n": 1.50, "t": true, "f": false, "z": null, "a": [1, "two"], "o": {}}`))
	require.NoError(t, err)

	want := Object(
		Member{Key: "s", Value: String("text")},
		Member{Key: "n", Value: Number("1.50")},
		Member{Key: "t", Value: Bool(true)},
		Member{Key: "f", Value: Bool(false)},
		Member{Key: "z", Value: Null()},
		Member{Key: "a", Value: Array(Number("1"), String("two"))},
		Member{Key: "o", Value: Object()},
	)
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_KeepsMemberOrder(t *testing.T) {
	doc, err := Parse([]byte(`{"zeta": 1, "alpha": 2, "mid": 3}`))
	require.NoError(t, err)

	keys := make([]string, 0, len(doc.Members))
	for _, m := range doc.Members {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestParse_DuplicateKeyTakesLastValue(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	require.Len(t, doc.Members, 2)
	assert.Equal(t, "a", doc.Members[0].Key)
	assert.Equal(t, Number("3"), doc.Members[0].Value)
}

func TestParse_DecodesEscapes(t *testing.T) {
	doc, err := Parse([]byte(`{"k\u00e9y": "tab\there \"quoted\" \ud83d\ude00", "n": -0.5e3}`))
	require.NoError(t, err)

	v, ok := doc.Get("kéy")
	require.True(t, ok)
	assert.Equal(t, "tab\there \"quoted\" \U0001F600", v.Str)

	n, ok := doc.Get("n")
	require.True(t, ok)
	assert.Equal(t, Number("-0.5e3"), n, "number literal should be kept verbatim")
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLn  int
		wantCol int
	}{
		{
			name:    "trailing comma",
			input:   `{"a": 1,}`,
			wantLn:  1,
			wantCol: 9,
		},
		{
			name:    "bad value on second line",
			input:   "{\n  \"a\": x\n}",
			wantLn:  2,
			wantCol: 8,
		},
		{
			name:    "unescaped quote in string",
			input:   "[\n  \"say \"hi\"\"\n]",
			wantLn:  2,
			wantCol: 9,
		},
		{
			name:    "truncated document",
			input:   `{"a": [1, 2`,
			wantLn:  1,
			wantCol: 12,
		},
		{
			name:    "empty input",
			input:   "",
			wantLn:  1,
			wantCol: 1,
		},
		{
			name:    "trailing data",
			input:   `{} {}`,
			wantLn:  1,
			wantCol: 4,
		},
		{
			name:    "column counts characters",
			input:   `["héllo" x]`,
			wantLn:  1,
			wantCol: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr), "expected *SyntaxError, got %T", err)
			assert.Equal(t, tt.wantLn, synErr.Line, "line")
			assert.Equal(t, tt.wantCol, synErr.Column, "column")
			assert.Contains(t, synErr.Error(), "line")
		})
	}
}

func TestLocate(t *testing.T) {
	data := []byte("ab\ncd\n\nef")

	tests := []struct {
		pos      int
		wantLine int
		wantCol  int
	}{
		{pos: 0, wantLine: 1, wantCol: 1},
		{pos: 1, wantLine: 1, wantCol: 2},
		{pos: 3, wantLine: 2, wantCol: 1},
		{pos: 6, wantLine: 3, wantCol: 1},
		{pos: 8, wantLine: 4, wantCol: 2},
		{pos: 100, wantLine: 4, wantCol: 3},
		{pos: -5, wantLine: 1, wantCol: 1},
	}

	for _, tt := range tests {
		line, col := Locate(data, tt.pos)
		assert.Equal(t, tt.wantLine, line, "line for pos %d", tt.pos)
		assert.Equal(t, tt.wantCol, col, "column for pos %d", tt.pos)
	}
}

func TestGetAndSet(t *testing.T) {
	obj := Object(Member{Key: "a", Value: Number("1")})

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Number("1"), v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)

	obj.Set("a", String("replaced"))
	obj.Set("b", Null())
	require.Len(t, obj.Members, 2)
	assert.Equal(t, String("replaced"), obj.Members[0].Value)
	assert.Equal(t, "b", obj.Members[1].Key)

	_, ok = String("x").Get("a")
	assert.False(t, ok, "Get on non-object should report missing")
}

func TestWalk(t *testing.T) {
	doc := Array(
		Object(Member{Key: "a", Value: Array(String("x"), String("y"))}),
		Number("2"),
	)

	var kinds []Kind
	Walk(doc, func(v *Value) bool {
		kinds = append(kinds, v.Kind)
		return true
	})
	assert.Equal(t, []Kind{KindArray, KindObject, KindArray, KindString, KindString, KindNumber}, kinds)

	visited := 0
	Walk(doc, func(v *Value) bool {
		visited++
		return v.Kind != KindObject
	})
	assert.Equal(t, 3, visited, "children of skipped object should not be visited")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
