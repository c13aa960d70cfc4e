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

// Package refactor offers the analyzer's rewrites as interactive code actions.
//
// A [Document] is an immutable snapshot of one source file together with its
// parse and semantic model. Applying a [CodeAction] never mutates the
// snapshot; it produces a new Document with a fresh parse and a fresh model.
package refactor

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/fix"
	"fillmore-labs.com/seqsimp/internal/symfacts"
)

// ErrNoSource is returned when a document is loaded without content.
var ErrNoSource = errors.New("refactor: no source")

// Document is an immutable snapshot of one parsed and type-checked file.
// All derived views (tree, cursors, semantic model) belong to this exact
// version; an edit produces a new Document rather than updating this one.
type Document struct {
	filename string
	src      []byte
	fset     *token.FileSet
	file     *ast.File
	in       *inspector.Inspector
	facts    symfacts.Facts
}

// Load parses and type-checks a source file into a [Document].
// Type errors referring to missing imports are tolerated; the semantic model
// still answers queries for the parts that resolved.
func Load(filename string, src []byte) (*Document, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, filename)
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("refactor: parsing %s: %w", filename, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(error) {}, // collect partial information
	}

	pkg, _ := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	if pkg == nil {
		pkg = types.NewPackage(file.Name.Name, file.Name.Name)
	}

	facts, err := symfacts.New(pkg, info)
	if err != nil {
		return nil, err
	}

	return &Document{
		filename: filename,
		src:      src,
		fset:     fset,
		file:     file,
		in:       inspector.New([]*ast.File{file}),
		facts:    facts,
	}, nil
}

// Filename returns the name the document was loaded under.
func (d *Document) Filename() string { return d.filename }

// Source returns the document's content. The caller must not modify it.
func (d *Document) Source() []byte { return d.src }

// Fset returns the file set of this parse.
func (d *Document) Fset() *token.FileSet { return d.fset }

// File returns the parsed tree of this snapshot.
func (d *Document) File() *ast.File { return d.file }

// Inspector returns the node index over this snapshot.
func (d *Document) Inspector() *inspector.Inspector { return d.in }

// Facts returns the semantic model of this snapshot.
func (d *Document) Facts() symfacts.Facts { return d.facts }

// WithEdits renders text edits onto the snapshot and loads the result.
// The receiver stays valid and unchanged.
func (d *Document) WithEdits(edits []analysis.TextEdit) (*Document, error) {
	handle := d.fset.File(d.file.Pos())

	out, err := fix.ApplyEdits(handle, d.src, edits)
	if err != nil {
		return nil, err
	}

	return Load(d.filename, out)
}
