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

// Package clean removes unwanted characters from a named field throughout a
// JSON document.
//
// The document is walked recursively. Every object member whose key matches
// the configured field and whose value is a string has the configured
// characters removed; every other value, including members of the right name
// holding a non-string value, is searched further. Values of any other shape
// are left exactly as they were.
//
// A Cleaner applies this to files, rewriting each file in place. A Batch runs
// a Cleaner over many files on a worker pool.
package clean
