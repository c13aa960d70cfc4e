// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package wellknown is the read-only registry of member names the rules key on.
//
// Rules never compare raw strings; they go through the typed names declared
// here, so the full set of recognized identifiers is visible in one place.
package wellknown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name identifies a well-known member name.
type Name string

const (
	// Where is the filtering combinator of a sequence family.
	Where Name = "Where"

	// Any is the existence-test combinator of a sequence family.
	Any Name = "Any"

	// Select is the package-level projection combinator.
	Select Name = "Select"

	// Cast is the package-level element-cast combinator.
	Cast Name = "Cast"

	// Len is an exported nullary size accessor.
	Len Name = "Len"

	// Count is an exported nullary size accessor.
	Count Name = "Count"
)

// BuiltinLen is the replacement spelling for types measurable with the len builtin.
const BuiltinLen = "len"

// Matches reports whether name is this well-known member.
func (n Name) Matches(name string) bool {
	return string(n) == name
}

// String returns the member name.
func (n Name) String() string {
	return string(n)
}

// SizeAccessors lists the recognized cheap size accessors, in preference order.
func SizeAccessors() []Name {
	return []Name{Len, Count}
}

// setterPrefix pairs a getter X with its setter SetX.
const setterPrefix = "Set"

// SetterFor returns the setter name paired with a getter name.
func SetterFor(getter string) string {
	return setterPrefix + getter
}

// GetterFor returns the getter name paired with a setter name and whether
// the name has the exported setter form.
func GetterFor(setter string) (string, bool) {
	rest, ok := strings.CutPrefix(setter, setterPrefix)
	if !ok || rest == "" {
		return "", false
	}

	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}

	return rest, true
}
