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

package fix

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrOverlappingEdits is returned when two edits touch the same span.
var ErrOverlappingEdits = errors.New("fix: overlapping edits")

// ErrEditOutOfRange is returned when an edit lies outside the document.
var ErrEditOutOfRange = errors.New("fix: edit out of range")

// ApplyEdits renders text edits onto a document's source, returning the new
// content. The input is never modified; an error leaves no partial result.
func ApplyEdits(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: no file handle", ErrEditOutOfRange)
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b analysis.TextEdit) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End))
	})

	base, size := token.Pos(file.Base()), file.Size()

	var out []byte

	last := 0

	for _, edit := range sorted {
		end := edit.End
		if !end.IsValid() {
			end = edit.Pos
		}

		if edit.Pos < base || end < edit.Pos || int(end-base) > size {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrEditOutOfRange, edit.Pos, end)
		}

		start := file.Offset(edit.Pos)
		if start < last {
			return nil, fmt.Errorf("%w: at offset %d", ErrOverlappingEdits, start)
		}

		out = append(out, src[last:start]...)
		out = append(out, edit.NewText...)
		last = file.Offset(end)
	}

	out = append(out, src[last:]...)

	return out, nil
}
