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
	"fmt"
	"unicode/utf8"
)

var (
	// ErrUnknownKind is returned when encoding a Value with an invalid Kind.
	ErrUnknownKind = errors.New("unknown value kind")

	// ErrInvalidNumber is returned when a number Value holds text that is not
	// a JSON number literal.
	ErrInvalidNumber = errors.New("invalid number literal")
)

// SyntaxError describes where a document stopped being valid JSON.
// Line and Column are 1-based; Column counts characters, not bytes.
type SyntaxError struct {
	Msg    string
	Offset int64
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Offset)
}

// newSyntaxError records where the parser stopped. jtree reports columns in
// bytes, so the character column is recomputed from the byte position.
func newSyntaxError(data []byte, msg string, pos int) *SyntaxError {
	pos = max(0, min(pos, len(data)))
	line, col := Locate(data, pos)
	return &SyntaxError{
		Msg:    msg,
		Offset: int64(pos),
		Line:   line,
		Column: col,
	}
}

// Locate converts a byte position in data to a 1-based line and column.
func Locate(data []byte, pos int) (line, col int) {
	pos = max(0, min(pos, len(data)))
	line = 1
	lineStart := 0
	for i := 0; i < pos; i++ {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, utf8.RuneCount(data[lineStart:pos]) + 1
}
