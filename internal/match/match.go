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

// Package match implements the rule predicates of the analyzer.
//
// Each rule is a pure function from a cursor position to an optional [Match].
// Rules narrow by syntactic shape first and query type information only
// afterwards; a failed check is a normal negative result, never an error.
package match

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/config"
	"fillmore-labs.com/seqsimp/internal/diag"
	"fillmore-labs.com/seqsimp/internal/symfacts"
)

// Rule identifiers, stable across releases.
const (
	AnyWhereID   = "SS1001"
	AnyCountID   = "SS1002"
	ForwardID    = "SS1003"
	CastSelectID = "SS1004"
)

// Property bag keys shared between matching and fix construction.
const (
	// PropAccessor is the chosen size accessor spelling: Len, Count or len.
	PropAccessor = "accessor"

	// PropNegated marks an existence check under a logical not.
	PropNegated = "negated"

	// PropParen requests a parenthesized replacement. Set when a negation
	// could not be folded into the span and the operand must stay grouped.
	PropParen = "paren"

	// PropField is the embedded field a redundant wrapper forwards to.
	PropField = "field"

	// PropType is the rendered target element type of a cast projection.
	PropType = "type"
)

// Kind is the closed set of syntax-node kinds rules register for.
type Kind uint8

const (
	// KindCall dispatches on *[ast.CallExpr] nodes.
	KindCall Kind = iota + 1

	// KindFuncDecl dispatches on *[ast.FuncDecl] nodes.
	KindFuncDecl
)

// KindOf classifies a node into the dispatch kinds. Nodes outside the closed
// set are reported as unrecognized rather than silently accepted.
func KindOf(node ast.Node) (Kind, bool) {
	switch node.(type) {
	case *ast.CallExpr:
		return KindCall, true

	case *ast.FuncDecl:
		return KindFuncDecl, true

	default:
		return 0, false
	}
}

// NodeFilter returns the node types covering all dispatch kinds,
// in the form the inspector's traversal expects.
func NodeFilter() []ast.Node {
	return []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.FuncDecl)(nil),
	}
}

// Match is a rule's positive result: the anchor node plus the named metadata
// that parameterizes both the diagnostic message and the fix.
type Match struct {
	// Rule is the diagnostic ID of the matching rule.
	Rule string

	// Anchor identifies the matched node.
	Anchor astutil.NodeIndex

	// Pos and End delimit the span the rewrite replaces. The span lies within
	// the inspected node's lexical extent, except when a negation is folded
	// into the rewrite: then Pos starts at the enclosing not operator.
	Pos, End token.Pos

	// Properties carries rule-specific metadata, e.g. the chosen accessor.
	Properties map[string]string
}

// A Func evaluates one rule at a cursor position.
type Func func(m *Matcher, file astutil.CurrentFile, c inspector.Cursor) (Match, bool)

// Rule describes one registered rule: the diagnostic ID it produces, the node
// kinds it wants to be invoked on, and its predicate. This registration
// surface is the only integration point the dispatch loop relies on.
type Rule struct {
	// ID is the diagnostic identifier the rule produces.
	ID string

	// Severity classifies the rule's findings.
	Severity diag.Severity

	// Flag is the configuration bit enabling the rule.
	Flag config.RuleFlags

	// Kinds are the node kinds the rule is invoked on.
	Kinds []Kind

	// Match is the rule predicate.
	Match Func
}

// All returns the full rule registry in declaration order.
func All() []Rule {
	return []Rule{
		{
			ID:       AnyWhereID,
			Severity: diag.Info,
			Flag:     config.AnyWhereRule,
			Kinds:    []Kind{KindCall},
			Match:    (*Matcher).matchAnyWhere,
		},
		{
			ID:       AnyCountID,
			Severity: diag.Info,
			Flag:     config.AnyCountRule,
			Kinds:    []Kind{KindCall},
			Match:    (*Matcher).matchAnyCount,
		},
		{
			ID:       ForwardID,
			Severity: diag.Info,
			Flag:     config.ForwardRule,
			Kinds:    []Kind{KindFuncDecl},
			Match:    (*Matcher).matchForward,
		},
		{
			ID:       CastSelectID,
			Severity: diag.Info,
			Flag:     config.CastSelectRule,
			Kinds:    []Kind{KindCall},
			Match:    (*Matcher).matchCastSelect,
		},
	}
}

// Enabled returns the registered rules enabled by the configuration.
func Enabled(rules config.Rules) []Rule {
	var enabled []Rule

	for _, r := range All() {
		if rules.Enabled(r.Flag) {
			enabled = append(enabled, r)
		}
	}

	return enabled
}

// Matcher bundles the semantic model and node index for one analysis pass.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	facts symfacts.Facts
	in    *inspector.Inspector
	decls map[*types.Func]*ast.FuncDecl
}

// NewMatcher creates a [Matcher] for one pass. The method declaration index
// is built eagerly so the value can be shared across worker goroutines.
func NewMatcher(facts symfacts.Facts, in *inspector.Inspector) *Matcher {
	decls := make(map[*types.Func]*ast.FuncDecl)

	for c := range in.Root().Preorder((*ast.FuncDecl)(nil)) {
		fun := c.Node().(*ast.FuncDecl)
		if fun.Recv == nil {
			continue
		}

		if fn, ok := facts.MethodObject(fun); ok {
			decls[fn] = fun
		}
	}

	return &Matcher{facts: facts, in: in, decls: decls}
}

// Facts exposes the semantic queries of the pass.
func (m *Matcher) Facts() symfacts.Facts {
	return m.facts
}

// Inspector returns the node index the matcher was built over.
func (m *Matcher) Inspector() *inspector.Inspector {
	return m.in
}

// declOf returns the declaration of a method defined in this package.
func (m *Matcher) declOf(fn *types.Func) (*ast.FuncDecl, bool) {
	fun, ok := m.decls[fn]

	return fun, ok
}
