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

package report_test

import (
	"testing"

	"fillmore-labs.com/seqsimp/internal/diag"
	"fillmore-labs.com/seqsimp/internal/match"
	. "fillmore-labs.com/seqsimp/internal/report"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mt   match.Match
		want string
	}{
		{
			name: "AnyWhere",
			mt:   match.Match{Rule: match.AnyWhereID},
			want: "'Where' followed by 'Any' can be combined into a single 'Any' call",
		},
		{
			name: "AnyCountAccessor",
			mt: match.Match{
				Rule:       match.AnyCountID,
				Properties: map[string]string{match.PropAccessor: "Len", match.PropNegated: "false"},
			},
			want: "Call to 'Any' can be replaced with 'Len() > 0'",
		},
		{
			name: "AnyCountNegated",
			mt: match.Match{
				Rule:       match.AnyCountID,
				Properties: map[string]string{match.PropAccessor: "Count", match.PropNegated: "true"},
			},
			want: "Call to 'Any' can be replaced with 'Count() == 0'",
		},
		{
			name: "AnyCountBuiltin",
			mt: match.Match{
				Rule:       match.AnyCountID,
				Properties: map[string]string{match.PropAccessor: "len", match.PropNegated: "false"},
			},
			want: "Call to 'Any' can be replaced with 'len(…) > 0'",
		},
		{
			name: "Forward",
			mt: match.Match{
				Rule:       match.ForwardID,
				Properties: map[string]string{match.PropField: "Logger"},
			},
			want: "Method only forwards to embedded 'Logger' and can be removed",
		},
		{
			name: "CastSelect",
			mt: match.Match{
				Rule:       match.CastSelectID,
				Properties: map[string]string{match.PropType: "Shape"},
			},
			want: "'Select' projecting a cast can be replaced with 'Cast[Shape]'",
		},
		{
			name: "Unknown",
			mt:   match.Match{Rule: "SS9999"},
			want: "Simplifiable expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Message(tt.mt); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	rule := match.Rule{ID: match.AnyWhereID, Severity: diag.Info}
	mt := match.Match{
		Rule:       match.AnyWhereID,
		Pos:        10,
		End:        20,
		Properties: map[string]string{"k": "v"},
	}

	d := Diagnostic(rule, mt)

	if d.ID != rule.ID || d.Severity != rule.Severity {
		t.Errorf("Diagnostic identity = %s/%v, want %s/%v", d.ID, d.Severity, rule.ID, rule.Severity)
	}

	if d.Pos != mt.Pos || d.End != mt.End {
		t.Errorf("Diagnostic span = [%v, %v), want [%v, %v)", d.Pos, d.End, mt.Pos, mt.End)
	}

	if d.Message == "" || d.Properties["k"] != "v" {
		t.Error("Diagnostic should carry message and properties")
	}
}
