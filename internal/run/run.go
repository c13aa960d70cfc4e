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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqsimp/internal/astutil"
	"fillmore-labs.com/seqsimp/internal/config"
	"fillmore-labs.com/seqsimp/internal/diag"
	"fillmore-labs.com/seqsimp/internal/fix"
	"fillmore-labs.com/seqsimp/internal/match"
	"fillmore-labs.com/seqsimp/internal/report"
	"fillmore-labs.com/seqsimp/internal/symfacts"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// fileWork is one file scheduled for rule evaluation.
type fileWork struct {
	cursor inspector.Cursor
	file   astutil.CurrentFile
}

// fileResult is the outcome of evaluating one file. Unexpected nodes are
// carried back to the sequential phase, since reporting must not happen on
// worker goroutines.
type fileResult struct {
	diags      []diag.Diagnostic
	unexpected []ast.Node
}

// Run executes the seqsimp analyzer's pipeline.
//
// Rule evaluation is side-effect free over an immutable tree and semantic
// model, so files are analyzed concurrently. Each worker appends findings to
// its own buffer; the buffers are merged, sorted and deduplicated before
// reporting, making the final diagnostic set independent of scheduling.
// All reporting, internal errors included, happens on the calling goroutine.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("seqsimp: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if o.Rules.None() {
		return nil, nil
	}

	rules := match.Enabled(o.Rules)

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "SeqSimp")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	facts, err := symfacts.New(p.Pkg, p.TypesInfo)
	if err != nil {
		return nil, err
	}

	matcher := match.NewMatcher(facts, in)
	dispatch := byKind(rules)

	var files []fileWork

	for fc := range in.Root().Children() {
		file, ok := fc.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		files = append(files, fileWork{cursor: fc, file: currentFile})
	}

	// Per-worker buffers; the only shared state is read-only.
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)

	for i, w := range files {
		g.Go(func() error {
			results[i] = analyzeFile(gctx, p, matcher, dispatch, w)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []diag.Diagnostic

	for _, res := range results {
		for _, node := range res.unexpected {
			astutil.InternalError(p, node, "Unexpected node type: %T", node)
		}

		merged = append(merged, res.diags...)
	}

	diag.Sort(merged)
	merged = diag.Compact(merged)

	for _, d := range merged {
		p.Report(d.Analysis())
	}

	return nil, nil
}

// analyzeFile evaluates all registered rules over one file, checking for
// cancellation between node visits.
func analyzeFile(
	ctx context.Context,
	p *analysis.Pass,
	matcher *match.Matcher,
	dispatch map[match.Kind][]match.Rule,
	w fileWork,
) fileResult {
	var res fileResult

	for c := range w.cursor.Preorder(match.NodeFilter()...) {
		// Abandon remaining work on cancellation; findings collected for
		// fully evaluated nodes stay valid.
		if ctx.Err() != nil {
			break
		}

		node := c.Node()

		kind, ok := match.KindOf(node)
		if !ok {
			res.unexpected = append(res.unexpected, node)

			continue
		}

		if skipNode(w.file, node) {
			continue
		}

		for _, r := range dispatch[kind] {
			mt, ok := r.Match(matcher, w.file, c)
			if !ok {
				continue
			}

			d := report.Diagnostic(r, mt)
			if edits := fix.Edits(p.Fset, matcher.Inspector(), mt); len(edits) > 0 {
				d.Fixes = []analysis.SuggestedFix{{Message: d.Message, TextEdits: edits}}
			}

			res.diags = append(res.diags, d)
		}
	}

	return res
}

// skipNode honors nolint comments: a doc comment on declarations,
// an end-of-line comment on expressions.
func skipNode(currentFile astutil.CurrentFile, node ast.Node) bool {
	if fun, ok := node.(*ast.FuncDecl); ok {
		return fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1])
	}

	return currentFile.NoLintComment(node.Pos())
}

// byKind indexes the registered rules by the node kinds they declared.
func byKind(rules []match.Rule) map[match.Kind][]match.Rule {
	dispatch := make(map[match.Kind][]match.Rule)

	for _, r := range rules {
		for _, k := range r.Kinds {
			dispatch[k] = append(dispatch[k], r)
		}
	}

	return dispatch
}
