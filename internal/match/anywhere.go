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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/symfacts"
	"fillmore-labs.com/seqsimp/internal/wellknown"
)

// matchAnyWhere detects x.Where(pred).Any(), which can be collapsed to
// x.Any(pred). Both methods must come from the same combinator family, the
// outer call must not continue a member-access chain, and no comment may sit
// inside the span the rewrite collapses.
func (m *Matcher) matchAnyWhere(file astutil.CurrentFile, c inspector.Cursor) (Match, bool) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return Match{}, false
	}

	recv, sel, ok := astutil.MethodCall(call)
	if !ok || !wellknown.Any.Matches(sel.Sel.Name) {
		return Match{}, false
	}

	inner, ok := recv.(*ast.CallExpr)
	if !ok || len(inner.Args) != 1 {
		return Match{}, false
	}

	innerRecv, innerSel, ok := astutil.MethodCall(inner)
	if !ok || !wellknown.Where.Matches(innerSel.Sel.Name) {
		return Match{}, false
	}

	// The rewritten form would regroup a longer chain.
	if astutil.MemberAccessed(c) {
		return Match{}, false
	}

	anyFn, ok := m.facts.ResolvedMethod(sel)
	if !ok {
		return Match{}, false
	}

	whereFn, ok := m.facts.ResolvedMethod(innerSel)
	if !ok || !symfacts.SameOrigin(anyFn, whereFn) {
		return Match{}, false
	}

	named, ok := m.facts.ReceiverNamed(innerRecv)
	if !ok || m.facts.FamilyOf(named) == symfacts.NoFamily {
		return Match{}, false
	}

	elem, ok := m.facts.ElementOf(named)
	if !ok || !symfacts.AnyShape(anyFn, elem) {
		return Match{}, false
	}

	// Collapsing the calls would drop any comment in between.
	if file.CommentsIn(call.Pos(), call.End()) {
		return Match{}, false
	}

	return Match{
		Rule:   AnyWhereID,
		Anchor: astutil.NodeIndexOf(c),
		Pos:    call.Pos(),
		End:    call.End(),
	}, true
}
