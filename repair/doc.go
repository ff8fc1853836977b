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

// Package repair escapes stray quote characters in near-JSON text files.
//
// The input is expected to keep every value of a designated field on a
// single line, formatted as
//
//	<indent>"<key>": "<content>"<optional comma>
//
// Because the rightmost quote on the line closes the value, any quote inside
// the content is taken to be part of the text. Each such quote that is not
// already preceded by a backslash is escaped. Every other line is copied
// unchanged. After all lines are repaired the text is parsed as a whole; a
// valid document is written out re-indented, an invalid one is saved as is
// next to a report of where parsing failed.
//
// Multi-line string values are not recognized.
package repair
