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

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/jsonmend/jsonvalue"
	"github.com/poiesic/jsonmend/textio"
)

const (
	// DefaultField is the member whose text is cleaned.
	DefaultField = "hint"

	// DefaultChars are the characters removed from it.
	DefaultChars = "`"

	// DefaultIndent is the indentation width used when rewriting a file.
	DefaultIndent = 2
)

// Config holds the settings of a Cleaner.
type Config struct {
	Field  string
	Chars  string
	Indent int
	Logger *slog.Logger
}

// Option is a functional option for configuring a Cleaner.
type Option func(*Config)

// WithField sets the member name to clean.
func WithField(field string) Option {
	return func(c *Config) {
		c.Field = field
	}
}

// WithChars sets the characters to remove.
func WithChars(chars string) Option {
	return func(c *Config) {
		c.Chars = chars
	}
}

// WithIndent sets the indentation width of rewritten files.
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

// DefaultConfig returns a Config that strips backticks from hints.
func DefaultConfig() *Config {
	return &Config{
		Field:  DefaultField,
		Chars:  DefaultChars,
		Indent: DefaultIndent,
		Logger: slog.Default(),
	}
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if c.Field == "" {
		return ErrFieldRequired
	}
	if c.Chars == "" {
		return ErrCharsRequired
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, c.Indent)
	}
	return nil
}

// Cleaner rewrites JSON files with a field's text cleaned.
type Cleaner struct {
	field  string
	chars  string
	indent int
	logger *slog.Logger
}

// NewCleaner creates a Cleaner from the default configuration and the
// provided options.
func NewCleaner(opts ...Option) (*Cleaner, error) {
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

	return &Cleaner{
		field:  cfg.Field,
		chars:  cfg.Chars,
		indent: cfg.Indent,
		logger: logger,
	}, nil
}

// Clean strips the configured characters from doc in place.
func (c *Cleaner) Clean(doc *jsonvalue.Value) int {
	return StripField(doc, c.field, c.chars)
}

// FileResult describes a cleaned file.
type FileResult struct {
	Path    string
	Changed int // number of field values that changed
}

// CleanFile reads the JSON document at path, cleans it and writes it back
// to the same path.
func (c *Cleaner) CleanFile(ctx context.Context, path string) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := textio.ReadFile(path)
	if err != nil {
		if errors.Is(err, textio.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	doc, err := jsonvalue.Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
	}

	changed := c.Clean(doc)

	out, err := jsonvalue.MarshalIndent(doc, c.indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := textio.WriteFile(path, out, 0644); err != nil {
		return nil, err
	}

	c.logger.Debug("cleaned file", "path", path, "field", c.field, "changed", changed)
	return &FileResult{Path: path, Changed: changed}, nil
}
