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

// Package diag defines the diagnostic record produced by the rules.
//
// The record carries everything the decoupled fix and refactoring layers need
// to act on a finding without re-deriving it, and converts to an
// [analysis.Diagnostic] at the host boundary.
package diag

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Severity classifies how a finding should be surfaced.
type Severity uint8

const (
	// Hidden findings are only surfaced through code actions.
	Hidden Severity = iota

	// Info findings are stylistic improvement opportunities.
	Info

	// Warning findings indicate probable defects.
	Warning

	// Error findings indicate definite defects.
	Error
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case Hidden:
		return []byte("hidden"), nil

	case Info:
		return []byte("info"), nil

	case Warning:
		return []byte("warning"), nil

	case Error:
		return []byte("error"), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hidden":
		*s = Hidden

	case "", "info":
		*s = Info

	case "warning", "warn":
		*s = Warning

	case "error":
		*s = Error

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}

// String returns the lower-case severity name.
func (s Severity) String() string {
	text, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("severity(%d)", uint8(s))
	}

	return string(text)
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	// ID is the stable rule identifier, e.g. SS1001.
	ID string

	// Severity classifies the finding.
	Severity Severity

	// Pos and End delimit the primary span.
	Pos, End token.Pos

	// Message is the human-readable finding text.
	Message string

	// Properties is a small bag of named metadata correlating the finding
	// with its fix, e.g. the chosen size accessor.
	Properties map[string]string

	// Fixes are the suggested text edits resolving the finding.
	Fixes []analysis.SuggestedFix

	// Related points at secondary locations.
	Related []analysis.RelatedInformation
}

// Analysis converts the record for reporting through an [analysis.Pass].
// The rule ID becomes the diagnostic category; severity and properties are
// engine-internal and do not cross this boundary.
func (d Diagnostic) Analysis() analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:            d.Pos,
		End:            d.End,
		Category:       d.ID,
		Message:        d.Message,
		SuggestedFixes: d.Fixes,
		Related:        d.Related,
	}
}

// Sort orders diagnostics by position, then rule ID. The order is a pure
// function of the diagnostic set, independent of evaluation scheduling.
func Sort(ds []Diagnostic) {
	slices.SortFunc(ds, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Pos, b.Pos),
			cmp.Compare(a.End, b.End),
			cmp.Compare(a.ID, b.ID),
			cmp.Compare(a.Message, b.Message),
		)
	})
}

// Compact drops duplicates from a sorted diagnostic list, keeping one
// diagnostic per (rule, span).
func Compact(ds []Diagnostic) []Diagnostic {
	return slices.CompactFunc(ds, func(a, b Diagnostic) bool {
		return a.ID == b.ID && a.Pos == b.Pos && a.End == b.End
	})
}
