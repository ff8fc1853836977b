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

package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/renameio/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNotFound indicates that the file to read does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidEncoding indicates that the file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid text encoding")
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadFile reads the whole file at path as text. Input is UTF-8; a leading
// byte order mark is stripped, and UTF-16 input marked by a BOM is
// transcoded to UTF-8. Bytes that are not valid UTF-8 fail with
// ErrInvalidEncoding rather than being replaced.
//
// Line endings are normalized: "\r\n" and a lone "\r" both become "\n".
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}

	if !isUTF16(raw) && !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s is not UTF-8", ErrInvalidEncoding, path)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return newlines.Replace(string(data)), nil
}

func isUTF16(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) || bytes.HasPrefix(raw, []byte{0xFE, 0xFF})
}

// WriteFile replaces the file at path with data. The data is written to a
// temporary file in the same directory and renamed into place, so readers
// never observe a partially written file. An existing file keeps its
// permission bits; new files get perm.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := renameio.WriteFile(path, data, perm, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
