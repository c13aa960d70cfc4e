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
	"strconv"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/symfacts"
	"fillmore-labs.com/seqsimp/internal/wellknown"
)

// matchAnyCount detects x.Any() on a fixed-size receiver, replaceable with a
// size comparison: x.Len() > 0, len(x) > 0, or the == 0 forms under negation.
// Lazy sequence receivers never match; their size is not cheaply observable
// and the rewritten form could recurse into the combinator itself.
func (m *Matcher) matchAnyCount(file astutil.CurrentFile, c inspector.Cursor) (Match, bool) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return Match{}, false
	}

	recv, sel, ok := astutil.MethodCall(call)
	if !ok || !wellknown.Any.Matches(sel.Sel.Name) {
		return Match{}, false
	}

	// Part of a longer member-access chain.
	if astutil.MemberAccessed(c) {
		return Match{}, false
	}

	// A receiver produced by a family combinator belongs to the chained-call
	// rule; rewriting here would drop the combinator's effect.
	if m.combinatorResult(recv) {
		return Match{}, false
	}

	named, ok := m.facts.ReceiverNamed(recv)
	if !ok || m.facts.FamilyOf(named) != symfacts.FixedFamily {
		return Match{}, false
	}

	accessor, ok := m.facts.SizeAccessor(named)
	if !ok {
		return Match{}, false
	}

	anyFn, ok := m.facts.ResolvedMethod(sel)
	if !ok {
		return Match{}, false
	}

	elem, ok := m.facts.ElementOf(named)
	if !ok || !symfacts.AnyShape(anyFn, elem) {
		return Match{}, false
	}

	// This rule's trivia gate only covers the span from the method name to
	// the end of the call, narrower than the chained-call rule's.
	if file.CommentsIn(sel.Sel.Pos(), call.End()) {
		return Match{}, false
	}

	pos, end := call.Pos(), call.End()

	paren := false

	not, negated := astutil.NegationOf(c)
	if negated {
		if file.CommentsIn(not.OpPos, call.Pos()) {
			// Intervening trivia: fall back to the non-negated form. The
			// replacement must stay grouped under the surviving operator.
			negated, paren = false, true
		} else {
			pos = not.Pos()
		}
	}

	properties := map[string]string{
		PropAccessor: accessor,
		PropNegated:  strconv.FormatBool(negated),
	}
	if paren {
		properties[PropParen] = strconv.FormatBool(paren)
	}

	return Match{
		Rule:       AnyCountID,
		Anchor:     astutil.NodeIndexOf(c),
		Pos:        pos,
		End:        end,
		Properties: properties,
	}, true
}

// combinatorResult reports whether an expression is a direct call to a
// combinator-family method.
func (m *Matcher) combinatorResult(expr ast.Expr) bool {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return false
	}

	_, sel, ok := astutil.MethodCall(call)
	if !ok {
		return false
	}

	if _, ok := m.facts.ResolvedMethod(sel); !ok {
		return false
	}

	named, ok := m.facts.ReceiverNamed(sel.X)

	return ok && m.facts.FamilyOf(named) != symfacts.NoFamily
}
