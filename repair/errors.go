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

import "errors"

var (
	// ErrNoFields is returned when a Repairer is configured without fields.
	ErrNoFields = errors.New("at least one field is required")

	// ErrInvalidField is returned for an empty field name or one that cannot
	// appear between quotes on a single line.
	ErrInvalidField = errors.New("invalid field name")

	// ErrInvalidIndent is returned for a negative indentation width.
	ErrInvalidIndent = errors.New("indent must not be negative")
)
