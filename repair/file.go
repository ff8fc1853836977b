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

import (
	"context"
	"errors"
	"fmt"

	"github.com/poiesic/jsonmend/jsonvalue"
	"github.com/poiesic/jsonmend/textio"
)

// Status is the outcome of ProcessFile.
type Status int

const (
	// StatusOK means the repaired text parsed and the output was written.
	StatusOK Status = iota
	// StatusParseError means the repaired text is still invalid JSON; it was
	// written to the debug path instead.
	StatusParseError
	// StatusFileNotFound means the input file does not exist.
	StatusFileNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusParseError:
		return "parse error"
	case StatusFileNotFound:
		return "file not found"
	default:
		return "unknown"
	}
}

// Paths names the files ProcessFile reads and writes.
type Paths struct {
	Input  string // near-JSON text to repair
	Output string // re-serialized document on success
	Debug  string // repaired but still invalid text on parse failure
}

// Result describes what ProcessFile did.
type Result struct {
	Status Status
	Stats  Stats

	// ParseErr locates the first syntax error when Status is StatusParseError.
	ParseErr *jsonvalue.SyntaxError

	// Written is the path of the file that was written, if any.
	Written string
}

// ProcessFile repairs the input file line by line and parses the result.
// A missing input or a document that is still invalid are reported through
// Result.Status; only unexpected I/O failures are returned as errors.
func (r *Repairer) ProcessFile(ctx context.Context, paths Paths) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Info("reading input", "path", paths.Input)
	text, err := textio.ReadFile(paths.Input)
	if err != nil {
		if errors.Is(err, textio.ErrNotFound) {
			return &Result{Status: StatusFileNotFound}, nil
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	fixed, stats := r.RepairText(text)
	r.logger.Info("repair pass finished", "lines", stats.Lines, "matched", stats.Matched, "repaired", stats.Repaired)

	doc, err := jsonvalue.Parse([]byte(fixed))
	if err != nil {
		var synErr *jsonvalue.SyntaxError
		if !errors.As(err, &synErr) {
			return nil, fmt.Errorf("failed to parse repaired text: %w", err)
		}

		r.logger.Warn("repaired text is still invalid", "line", synErr.Line, "column", synErr.Column, "error", synErr.Msg)
		if err := textio.WriteFile(paths.Debug, []byte(fixed), 0644); err != nil {
			return nil, fmt.Errorf("failed to write debug output: %w", err)
		}
		return &Result{
			Status:   StatusParseError,
			Stats:    stats,
			ParseErr: synErr,
			Written:  paths.Debug,
		}, nil
	}

	out, err := jsonvalue.MarshalIndent(doc, r.indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := textio.WriteFile(paths.Output, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	r.logger.Info("wrote repaired document", "path", paths.Output)

	return &Result{
		Status:  StatusOK,
		Stats:   stats,
		Written: paths.Output,
	}, nil
}
