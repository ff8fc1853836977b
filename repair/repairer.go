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
	"fmt"
	"log/slog"
	"strings"
)

// DefaultFields are the keys whose values are repaired when no fields are
// configured: the front and back text of a question card.
var DefaultFields = []string{"f", "b"}

// DefaultIndent is the indentation width of the repaired output document.
const DefaultIndent = 4

// Config holds the settings of a Repairer.
type Config struct {
	// Fields are the object keys whose single-line string values get their
	// inner quotes escaped. Lines for any other key pass through untouched.
	Fields []string

	// Indent is the number of spaces per nesting level in the output file.
	Indent int

	// Logger receives progress and per-line debug output.
	// Default: slog.Default()
	Logger *slog.Logger
}

// Option is a functional option for configuring a Repairer.
type Option func(*Config)

// WithFields sets the keys to repair.
func WithFields(fields ...string) Option {
	return func(c *Config) {
		c.Fields = fields
	}
}

// WithIndent sets the output indentation width.
func WithIndent(n int) Option {
	return func(c *Config) {
		c.Indent = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// DefaultConfig returns the configuration used for question files.
func DefaultConfig() *Config {
	return &Config{
		Fields: append([]string(nil), DefaultFields...),
		Indent: DefaultIndent,
		Logger: slog.Default(),
	}
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return ErrNoFields
	}
	for _, f := range c.Fields {
		if f == "" || strings.ContainsAny(f, "\"\n") {
			return fmt.Errorf("%w: %q", ErrInvalidField, f)
		}
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, c.Indent)
	}
	return nil
}

// Repairer escapes stray quotes in the values of a fixed set of fields.
// A Repairer holds no mutable state and may be shared.
type Repairer struct {
	fields map[string]struct{}
	indent int
	logger *slog.Logger
}

// New creates a Repairer from the default configuration and the provided
// options.
func New(opts ...Option) (*Repairer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fields := make(map[string]struct{}, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fields[f] = struct{}{}
	}

	return &Repairer{
		fields: fields,
		indent: cfg.Indent,
		logger: logger,
	}, nil
}

// RepairLine returns line with the unescaped quotes inside a designated
// field's value escaped. Lines that are not a single-line string member of
// a designated field are returned unchanged.
func (r *Repairer) RepairLine(line string) string {
	m, ok := matchLine(line, r.fields)
	if !ok {
		return line
	}
	return m.String()
}

// Stats counts what RepairText did.
type Stats struct {
	Lines    int // lines read
	Matched  int // lines recognized as a designated field
	Repaired int // lines whose text changed
}

// RepairText repairs every line of text independently and joins them with
// "\n". Lines are split on "\n" only; ProcessFile normalizes other line
// endings on read. As with reading a file line by line, a final newline does
// not start an extra empty line.
func (r *Repairer) RepairText(text string) (string, Stats) {
	var stats Stats
	if text == "" {
		return "", stats
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	stats.Lines = len(lines)

	for i, line := range lines {
		m, ok := matchLine(line, r.fields)
		if !ok {
			continue
		}
		stats.Matched++

		fixed := m.String()
		if fixed == line {
			continue
		}
		stats.Repaired++
		lines[i] = fixed
		r.logger.Debug("repaired line", "line", i+1, "field", m.key)
	}

	return strings.Join(lines, "\n"), stats
}
