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

func TestMarshal_Indented(t *testing.T) {
	doc := Object(
		Member{Key: "name", Value: String("quiz")},
		Member{Key: "items", Value: Array(
			Object(
				Member{Key: "f", Value: String("front")},
				Member{Key: "b", Value: String("back")},
			),
			Number("3"),
		)},
		Member{Key: "empty", Value: Array()},
		Member{Key: "none", Value: Object()},
		Member{Key: "ok", Value: Bool(true)},
		Member{Key: "nil", Value: Null()},
	)

	out, err := MarshalIndent(doc, 4)
	require.NoError(t, err)

	want := `{
    "name": "quiz",
    "items": [
        {
            "f": "front",
            "b": "back"
        },
        3
    ],
    "empty": [],
    "none": {},
    "ok": true,
    "nil": null
}`
	assert.Equal(t, want, string(out))
}

func TestMarshal_Compact(t *testing.T) {
	doc := Object(
		Member{Key: "a", Value: Array(Number("1"), Number("2"))},
		Member{Key: "b", Value: Null()},
	)

	out, err := Marshal(doc, "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":null}`, string(out))
}

func TestMarshal_PreservesNonASCIIAndHTML(t *testing.T) {
	doc := Object(Member{Key: "hint", Value: String(`Größe <b> & "ü" 日本`)})

	out, err := MarshalIndent(doc, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"hint\": \"Größe <b> & \\\"ü\\\" 日本\"\n}", string(out))
}

func TestMarshal_NumberLiteralKept(t *testing.T) {
	out, err := Marshal(Array(Number("1.0"), Number("-2e10"), Number("12345678901234567890")), "")
	require.NoError(t, err)
	assert.Equal(t, `[1.0,-2e10,12345678901234567890]`, string(out))
}

func TestMarshal_Errors(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		for _, lit := range []string{"", "abc", `"1"`, "1 2", "true"} {
			_, err := Marshal(Number(lit), "")
			assert.True(t, errors.Is(err, ErrInvalidNumber), "literal %q", lit)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Marshal(Array(&Value{Kind: Kind(99)}), "  ")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestMarshal_NilValue(t *testing.T) {
	out, err := Marshal(Object(Member{Key: "a", Value: nil}), "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":null}`, string(out))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`{"a": [{"hint": "Use x carefully"}, {"other": "keep` + "`" + `this"}]}`,
		`[1, 2.5, -0, 1e100, "é", "line\nbreak", {"nested": {"deep": [[[]]]}}]`,
		`"just a string"`,
		`null`,
		`{"z": 1, "a": {"y": true, "b": false}}`,
	}

	for _, input := range inputs {
		first, err := Parse([]byte(input))
		require.NoError(t, err, input)

		for _, indent := range []string{"", "  ", "    "} {
			out, err := Marshal(first, indent)
			require.NoError(t, err)

			second, err := Parse(out)
			require.NoError(t, err, string(out))

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip of %s with indent %q mismatch (-first +second):\n%s", input, indent, diff)
			}
		}
	}
}
