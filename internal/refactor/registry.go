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

package refactor

import (
	"context"
	"go/token"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/fix"
	"fillmore-labs.com/seqsimp/internal/match"
	"fillmore-labs.com/seqsimp/internal/report"
)

// Span is a position range inside a document.
type Span struct {
	Pos, End token.Pos
}

// Contains reports whether the span covers the range [pos, end).
// An invalid span covers the whole document.
func (s Span) Contains(pos, end token.Pos) bool {
	if !s.Pos.IsValid() {
		return true
	}

	return s.Pos <= pos && end <= s.End
}

// CodeAction is one offered rewrite. Apply never mutates the document it was
// computed for; recomputing actions for the same snapshot and span yields the
// same list, so an action can be displayed now and applied later.
type CodeAction struct {
	// Title is the user-visible description of the rewrite.
	Title string

	// EquivalenceKey groups actions of the same kind across positions.
	EquivalenceKey string

	// Apply renders the rewrite and returns the resulting new document.
	Apply func() (*Document, error)
}

// A Provider computes the code actions of one rule over a document span.
type Provider interface {
	// ID returns the provider's stable identifier.
	ID() string

	// Actions returns the rewrites offered in the span, in document order.
	Actions(doc *Document, span Span) []CodeAction
}

// Registry holds providers in registration order.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a [Registry] offering the fixes of all registered rules.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, rule := range match.All() {
		r.Register(ruleProvider{rule: rule})
	}

	return r
}

// Register appends a provider. Actions are computed in registration order.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Actions collects the code actions of all providers for a document span.
// Providers run in registration order against the single snapshot. The
// context is checked between providers; on cancellation the actions computed
// so far are returned together with the context's error, and they stay valid.
// No offered actions is a normal empty result.
func (r *Registry) Actions(ctx context.Context, doc *Document, span Span) ([]CodeAction, error) {
	var actions []CodeAction

	for _, p := range r.providers {
		if err := ctx.Err(); err != nil {
			return actions, err
		}

		actions = append(actions, p.Actions(doc, span)...)
	}

	return actions, nil
}

// ruleProvider adapts one analysis rule to the [Provider] interface.
type ruleProvider struct {
	rule match.Rule
}

// ID returns the rule's diagnostic identifier.
func (p ruleProvider) ID() string { return p.rule.ID }

// Actions evaluates the rule over every dispatchable node in the span.
func (p ruleProvider) Actions(doc *Document, span Span) []CodeAction {
	file := astutil.NewCurrentFile(doc.Fset(), doc.File())
	if !file.Valid() {
		return nil
	}

	matcher := match.NewMatcher(doc.Facts(), doc.Inspector())

	kinds := make(map[match.Kind]bool, len(p.rule.Kinds))
	for _, k := range p.rule.Kinds {
		kinds[k] = true
	}

	var actions []CodeAction

	for c := range doc.Inspector().Root().Preorder(match.NodeFilter()...) {
		node := c.Node()

		kind, ok := match.KindOf(node)
		if !ok || !kinds[kind] {
			continue
		}

		if !span.Contains(node.Pos(), node.End()) {
			continue
		}

		mt, ok := p.rule.Match(matcher, file, c)
		if !ok {
			continue
		}

		edits := fix.Edits(doc.Fset(), doc.Inspector(), mt)
		if len(edits) == 0 {
			continue
		}

		actions = append(actions, CodeAction{
			Title:          report.Message(mt),
			EquivalenceKey: p.rule.ID,
			Apply: func() (*Document, error) {
				return doc.WithEdits(edits)
			},
		})
	}

	return actions
}
