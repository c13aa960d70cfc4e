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

// Package fix constructs the text edits resolving a match.
//
// Replacements are built structurally: a new syntax node is assembled and
// rendered, never spliced out of the original text. Edit construction is a
// pure function of (tree, match); either a complete edit list is produced or
// none at all.
package fix

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/match"
	"fillmore-labs.com/seqsimp/internal/wellknown"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Edits builds the text edits for a match. An empty result means the finding
// is reported without a suggested fix.
func Edits(fset *token.FileSet, in *inspector.Inspector, mt match.Match) []analysis.TextEdit {
	if !mt.Anchor.Valid() {
		return nil
	}

	node := mt.Anchor.Node(in)

	switch mt.Rule {
	case match.AnyWhereID:
		return anyWhereEdits(fset, node, mt)

	case match.AnyCountID:
		return anyCountEdits(fset, node, mt)

	case match.ForwardID:
		return forwardEdits(node)

	case match.CastSelectID:
		return castSelectEdits(fset, node, mt)

	default:
		return nil
	}
}

// anyWhereEdits collapses x.Where(pred).Any() into x.Any(pred).
func anyWhereEdits(fset *token.FileSet, node ast.Node, mt match.Match) []analysis.TextEdit {
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return nil
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	inner, ok := sel.X.(*ast.CallExpr)
	if !ok || len(inner.Args) != 1 {
		return nil
	}

	innerSel, ok := inner.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	replacement := &ast.CallExpr{
		Fun: &ast.SelectorExpr{
			X:   innerSel.X,
			Sel: ast.NewIdent(wellknown.Any.String()),
		},
		Args: inner.Args,
	}

	return replace(fset, mt, replacement)
}

// anyCountEdits replaces an existence check with a size comparison.
func anyCountEdits(fset *token.FileSet, node ast.Node, mt match.Match) []analysis.TextEdit {
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return nil
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	accessor := mt.Properties[match.PropAccessor]
	if accessor == "" {
		return nil
	}

	var size ast.Expr
	if accessor == wellknown.BuiltinLen {
		size = &ast.CallExpr{Fun: ast.NewIdent(wellknown.BuiltinLen), Args: []ast.Expr{sel.X}}
	} else {
		size = &ast.CallExpr{Fun: &ast.SelectorExpr{X: sel.X, Sel: ast.NewIdent(accessor)}}
	}

	op := token.GTR
	if negated, _ := strconv.ParseBool(mt.Properties[match.PropNegated]); negated {
		op = token.EQL
	}

	var comparison ast.Expr = &ast.BinaryExpr{
		X:  size,
		Op: op,
		Y:  &ast.BasicLit{Kind: token.INT, Value: "0"},
	}

	if paren, _ := strconv.ParseBool(mt.Properties[match.PropParen]); paren {
		comparison = &ast.ParenExpr{X: comparison}
	}

	return replace(fset, mt, comparison)
}

// forwardEdits removes a redundant forwarding method, doc comment included.
func forwardEdits(node ast.Node) []analysis.TextEdit {
	fun, ok := node.(*ast.FuncDecl)
	if !ok {
		return nil
	}

	pos, end := astutil.DeclBounds(fun)

	return []analysis.TextEdit{{Pos: pos, End: end}}
}

// castSelectEdits replaces a cast-only projection with a Cast call,
// keeping the callee's qualification.
func castSelectEdits(fset *token.FileSet, node ast.Node, mt match.Match) []analysis.TextEdit {
	call, ok := node.(*ast.CallExpr)
	if !ok || len(call.Args) != 2 {
		return nil
	}

	target := mt.Properties[match.PropType]
	if target == "" {
		return nil
	}

	castFun, ok := renamedCallee(call.Fun, wellknown.Cast.String())
	if !ok {
		return nil
	}

	replacement := &ast.CallExpr{
		Fun: &ast.IndexExpr{
			X:     castFun,
			Index: ast.NewIdent(target),
		},
		Args: []ast.Expr{call.Args[0]},
	}

	return replace(fset, mt, replacement)
}

// renamedCallee rebuilds a callee expression with a new name, dropping any
// explicit instantiation but keeping package qualification.
func renamedCallee(fun ast.Expr, name string) (ast.Expr, bool) {
	switch e := fun.(type) {
	case *ast.Ident:
		return ast.NewIdent(name), true

	case *ast.SelectorExpr:
		return &ast.SelectorExpr{X: e.X, Sel: ast.NewIdent(name)}, true

	case *ast.IndexExpr:
		return renamedCallee(e.X, name)

	case *ast.IndexListExpr:
		return renamedCallee(e.X, name)

	default:
		return nil, false
	}
}

// replace renders a replacement node over the match span.
func replace(fset *token.FileSet, mt match.Match, node ast.Node) []analysis.TextEdit {
	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, fset, node); err != nil {
		return nil
	}

	return []analysis.TextEdit{{Pos: mt.Pos, End: mt.End, NewText: buf.Bytes()}}
}
