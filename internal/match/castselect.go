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

package match

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/symfacts"
)

// matchCastSelect detects Select(x, func(v F) T { return v.(T) }), a
// projection that only casts its own parameter, replaceable with Cast[T](x).
// The literal's function type must match the Select instantiation exactly,
// and the combinator package must expose a Cast of the expected shape.
func (m *Matcher) matchCastSelect(file astutil.CurrentFile, c inspector.Cursor) (Match, bool) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok || len(call.Args) != 2 {
		return Match{}, false
	}

	lit, ok := call.Args[1].(*ast.FuncLit)
	if !ok {
		return Match{}, false
	}

	selectFn, from, to, ok := m.facts.SelectCall(call)
	if !ok {
		return Match{}, false
	}

	if !m.facts.ProjectionMatches(lit, from, to) {
		return Match{}, false
	}

	param, ok := soleParameter(lit)
	if !ok {
		return Match{}, false
	}

	if !m.castsParameter(lit, param, to) {
		return Match{}, false
	}

	if !symfacts.CastAvailable(selectFn) {
		return Match{}, false
	}

	// The projection argument is rebuilt from scratch; comments anywhere in
	// the call would be dropped.
	if file.CommentsIn(call.Pos(), call.End()) {
		return Match{}, false
	}

	return Match{
		Rule:   CastSelectID,
		Anchor: astutil.NodeIndexOf(c),
		Pos:    call.Pos(),
		End:    call.End(),
		Properties: map[string]string{
			PropType: types.TypeString(to, types.RelativeTo(m.facts.Package())),
		},
	}, true
}

// soleParameter returns the single named parameter of a function literal.
func soleParameter(lit *ast.FuncLit) (*ast.Ident, bool) {
	params := lit.Type.Params
	if params == nil || len(params.List) != 1 || len(params.List[0].Names) != 1 {
		return nil, false
	}

	id := params.List[0].Names[0]
	if id.Name == "_" {
		return nil, false
	}

	return id, true
}

// castsParameter checks that the literal's body is exactly one return of a
// cast of the literal's own parameter: a type assertion, or a conversion to
// an interface type (which the Cast combinator performs equivalently).
func (m *Matcher) castsParameter(lit *ast.FuncLit, param *ast.Ident, to types.Type) bool {
	stmt, ok := astutil.SoleStatement(lit.Body)
	if !ok {
		return false
	}

	ret, ok := stmt.(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return false
	}

	paramObj := m.facts.ObjectOf(param)
	if paramObj == nil {
		return false
	}

	switch e := ret.Results[0].(type) {
	case *ast.TypeAssertExpr:
		if e.Type == nil {
			return false
		}

		id, ok := e.X.(*ast.Ident)

		return ok && m.facts.ObjectOf(id) == paramObj &&
			typeIs(m.facts.TypeOf(e.Type), to)

	case *ast.CallExpr:
		if !m.facts.IsConversion(e) || len(e.Args) != 1 {
			return false
		}

		// Only interface conversions keep their meaning under Cast's
		// runtime assertion.
		if !symfacts.IsInterface(to) {
			return false
		}

		id, ok := e.Args[0].(*ast.Ident)

		return ok && m.facts.ObjectOf(id) == paramObj &&
			typeIs(m.facts.TypeOf(e.Fun), to)

	default:
		return false
	}
}

// typeIs reports whether t is resolved and identical to want.
func typeIs(t, want types.Type) bool {
	return t != nil && types.Identical(t, want)
}
