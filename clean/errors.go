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

import "errors"

var (
	// ErrFileNotFound is returned when the file to clean does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidDocument is returned when the file is not valid JSON.
	ErrInvalidDocument = errors.New("invalid JSON document")

	// ErrFieldRequired is returned when a Cleaner is configured without a field.
	ErrFieldRequired = errors.New("field name is required")

	// ErrCharsRequired is returned when a Cleaner has nothing to strip.
	ErrCharsRequired = errors.New("characters to strip are required")

	// ErrInvalidIndent is returned for a negative indentation width.
	ErrInvalidIndent = errors.New("indent must not be negative")

	// ErrInvalidWorkers is returned when a Batch is given fewer than one worker.
	ErrInvalidWorkers = errors.New("workers must be greater than 0")
)
