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

// Package jsonmend repairs and cleans JSON question files.
//
// The work is done by two packages: repair escapes stray quotes in the
// values of designated fields, and clean strips characters from a named
// field throughout a parsed document. This package wires them together for
// callers that only need the defaults.
package jsonmend

import (
	"context"

	"github.com/poiesic/jsonmend/clean"
	"github.com/poiesic/jsonmend/repair"
)

// RepairFile runs a single quote repair pass over paths.Input.
func RepairFile(ctx context.Context, paths repair.Paths, opts ...repair.Option) (*repair.Result, error) {
	r, err := repair.New(opts...)
	if err != nil {
		return nil, err
	}
	return r.ProcessFile(ctx, paths)
}

// CleanHints strips backticks from every "hint" field of the JSON file at
// path and rewrites it. Options override the field, characters or indent.
func CleanHints(ctx context.Context, path string, opts ...clean.Option) (*clean.FileResult, error) {
	c, err := clean.NewCleaner(opts...)
	if err != nil {
		return nil, err
	}
	return c.CleanFile(ctx, path)
}
