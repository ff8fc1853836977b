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

// Package jsonvalue provides an explicit, order-preserving JSON value tree.
//
// A Value is a tagged variant: its Kind says whether it is null, a boolean,
// a number, a string, an array or an object, and only the matching payload
// field is used. Object members keep the order in which they appeared in the
// source document and numbers keep their literal text, so a document that is
// parsed and marshaled again differs only in whitespace.
//
// # Usage
//
//	doc, err := jsonvalue.Parse(data)
//	if err != nil {
//	    var synErr *jsonvalue.SyntaxError
//	    if errors.As(err, &synErr) {
//	        log.Printf("invalid JSON at %d:%d", synErr.Line, synErr.Column)
//	    }
//	    return err
//	}
//
//	out, err := jsonvalue.MarshalIndent(doc, 4)
package jsonvalue
