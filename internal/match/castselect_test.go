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

package match_test

import (
	"testing"

	. "fillmore-labs.com/seqsimp/internal/match"
)

const castPrelude = `
type Stringer interface{ String() string }

type Word string

func (w Word) String() string { return string(w) }
`

func TestCastSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		want     int
		typeName string
	}{
		{
			name: "Assertion",
			src: castPrelude + `
func f(s Seq[any]) Seq[Stringer] {
	return Select(s, func(v any) Stringer { return v.(Stringer) })
}
`,
			want:     1,
			typeName: "Stringer",
		},
		{
			name: "AssertionToConcrete",
			src: castPrelude + `
func f(s Seq[any]) Seq[Word] {
	return Select(s, func(v any) Word { return v.(Word) })
}
`,
			want:     1,
			typeName: "Word",
		},
		{
			name: "InterfaceConversion",
			src: castPrelude + `
func f(s Seq[Word]) Seq[Stringer] {
	return Select(s, func(v Word) Stringer { return Stringer(v) })
}
`,
			want:     1,
			typeName: "Stringer",
		},
		{
			name: "ConcreteConversion",
			src: castPrelude + `
func f(s Seq[string]) Seq[Word] {
	return Select(s, func(v string) Word { return Word(v) })
}
`,
			want: 0,
		},
		{
			name: "RealProjection",
			src: castPrelude + `
func f(s Seq[Word]) Seq[string] {
	return Select(s, func(v Word) string { return v.String() })
}
`,
			want: 0,
		},
		{
			name: "BlankParameter",
			src: castPrelude + `
func f(s Seq[any]) Seq[int] {
	return Select(s, func(_ any) int { return 0 })
}
`,
			want: 0,
		},
		{
			name: "CommentInSpan",
			src: castPrelude + `
func f(s Seq[any]) Seq[Stringer] {
	return Select(s, /* narrow */ func(v any) Stringer { return v.(Stringer) })
}
`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches := byRule(evaluate(t, tt.src), CastSelectID)
			if len(matches) != tt.want {
				t.Fatalf("Got %d matches, want %d", len(matches), tt.want)
			}

			if tt.typeName != "" && len(matches) > 0 {
				if got := matches[0].Properties[PropType]; got != tt.typeName {
					t.Errorf("Type property = %q, want %q", got, tt.typeName)
				}
			}
		})
	}
}
