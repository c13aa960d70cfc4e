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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the seqsimp analyzer by handling common
// boilerplate code for parsing and type-checking Go source files.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Combinators is a minimal sequence-combinator fixture shared by tests.
// Seq is a lazy sequence family, Vec a fixed-size one. Prepend it to test
// sources with [ParseDecls].
const Combinators = `
type Seq[T any] func(yield func(T) bool)

func (s Seq[T]) Where(pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		s(func(v T) bool {
			if !pred(v) {
				return true
			}

			return yield(v)
		})
	}
}

func (s Seq[T]) Any(preds ...func(T) bool) bool {
	found := false
	s(func(v T) bool {
		for _, pred := range preds {
			if !pred(v) {
				return true
			}
		}
		found = true

		return false
	})

	return found
}

type Vec[T any] []T

func (v Vec[T]) Where(pred func(T) bool) Vec[T] {
	var out Vec[T]
	for _, e := range v {
		if pred(e) {
			out = append(out, e)
		}
	}

	return out
}

func (v Vec[T]) Any(preds ...func(T) bool) bool {
next:
	for _, e := range v {
		for _, pred := range preds {
			if !pred(e) {
				continue next
			}
		}

		return true
	}

	return false
}

func (v Vec[T]) Len() int { return len(v) }

func Select[F, T any](s Seq[F], project func(F) T) Seq[T] {
	return func(yield func(T) bool) {
		s(func(v F) bool { return yield(project(v)) })
	}
}

func Cast[T, F any](s Seq[F]) Seq[T] {
	return Select(s, func(v F) T { return any(v).(T) })
}
`

// Parse parses a complete Go source file into an AST.
// The source must start with a package clause.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, in *inspector.Inspector) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	return fset, f, inspector.New([]*ast.File{f})
}

// ParseDecls parses a source fragment of top-level declarations, prepending
// the package clause and the [Combinators] fixture.
func ParseDecls(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, in *inspector.Inspector) {
	tb.Helper()

	var srcFile strings.Builder
	srcFile.WriteString("package " + testpkg + "\n")
	srcFile.WriteString(Combinators)
	srcFile.WriteString(src)

	return Parse(tb, srcFile.String())
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info
// with all maps populated, including Instances for generic call resolution.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}
