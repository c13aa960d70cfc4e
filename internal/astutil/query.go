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

	"golang.org/x/tools/go/ast/inspector"
)

// SoleStatement returns the single statement of a block, if the block
// consists of exactly one statement.
func SoleStatement(block *ast.BlockStmt) (ast.Stmt, bool) {
	if block == nil || len(block.List) != 1 {
		return nil, false
	}

	return block.List[0], true
}

// MethodCall decomposes a call of the form recv.Name(args...).
// It returns false for any other call shape, including parenthesized
// or index-instantiated callees.
func MethodCall(call *ast.CallExpr) (recv ast.Expr, sel *ast.SelectorExpr, ok bool) {
	sel, ok = call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, nil, false
	}

	return sel.X, sel, true
}

// MemberAccessed reports whether the node at the cursor is itself the
// receiver of a selector, i.e. part of a longer member-access chain.
func MemberAccessed(c inspector.Cursor) bool {
	parent := c.Parent()
	if parent.Node() == nil {
		return false
	}

	sel, ok := parent.Node().(*ast.SelectorExpr)

	return ok && sel.X == c.Node()
}

// NegationOf returns the enclosing logical-not expression when the node at
// the cursor is its direct operand, without intervening parentheses.
func NegationOf(c inspector.Cursor) (*ast.UnaryExpr, bool) {
	parent := c.Parent()
	if parent.Node() == nil {
		return nil, false
	}

	not, ok := parent.Node().(*ast.UnaryExpr)
	if !ok || not.Op != token.NOT || not.X != c.Node() {
		return nil, false
	}

	return not, true
}

// DeclBounds returns the span of a declaration including its doc comment.
func DeclBounds(fun *ast.FuncDecl) (pos, end token.Pos) {
	pos, end = fun.Pos(), fun.End()
	if fun.Doc != nil && fun.Doc.Pos() < pos {
		pos = fun.Doc.Pos()
	}

	return pos, end
}
