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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// seqsimp is the name of the linter.
const seqsimp = "seqsimp"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// File returns the underlying syntax file.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// CommentsIn reports whether any comment group overlaps the half-open span
// [pos, end). This is the trivia-safety gate: rewrites that would collapse a
// region containing comments are suppressed rather than silently dropping them.
func (c CurrentFile) CommentsIn(pos, end token.Pos) bool {
	if c.file == nil {
		return false
	}

	// file.Comments is sorted by position; find the first group ending after pos.
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(cg *ast.CommentGroup, p token.Pos) int {
			if cg.End() <= p {
				return -1
			}

			return 1
		})

	return i < len(c.file.Comments) && c.file.Comments[i].Pos() < end
}

// DirectivesIn reports whether a compiler directive comment lies within the
// half-open span [pos, end). Rewriting regions guarded by directives is unsafe
// without directive-aware reconstruction, so such matches are suppressed.
func (c CurrentFile) DirectivesIn(pos, end token.Pos) bool {
	if c.file == nil {
		return false
	}

	for _, cg := range c.file.Comments {
		if cg.End() <= pos {
			continue
		}

		if cg.Pos() >= end {
			break
		}

		for _, comment := range cg.List {
			if IsDirective(comment.Text) {
				return true
			}
		}
	}

	return false
}

// IsDirective reports whether the comment text is a compiler directive
// such as //go:noinline or //line.
func IsDirective(text string) bool {
	if !strings.HasPrefix(text, "//") {
		return false
	}

	rest := text[2:]

	return strings.HasPrefix(rest, "line ") || strings.HasPrefix(rest, "extern ") ||
		isColonDirective(rest)
}

// isColonDirective matches the //tool:directive form, e.g. go:generate.
func isColonDirective(rest string) bool {
	colon := strings.IndexByte(rest, ':')
	if colon <= 0 {
		return false
	}

	for _, r := range rest[:colon] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}

	return true
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(node ast.Node) int {
	return c.line(node.End()) - c.line(node.Pos()) + 1
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if a line is followed by a //nolint:seqsimp comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(cg *ast.CommentGroup, p token.Pos) int { return int(cg.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:seqsimp` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == seqsimp || l == "all" {
			return true
		}
	}

	return false
}
