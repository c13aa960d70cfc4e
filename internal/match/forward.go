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
	"fillmore-labs.com/seqsimp/internal/wellknown"
)

// matchForward detects a method whose entire body forwards to the same-named
// method of an embedded field with unchanged arguments. Removing such a
// wrapper leaves behavior intact: Go promotes the embedded method in its
// place. Getter/setter accessor pairs are only flagged when both members
// qualify, and compiler directives on or inside the member suppress the match.
func (m *Matcher) matchForward(file astutil.CurrentFile, c inspector.Cursor) (Match, bool) {
	fun, ok := c.Node().(*ast.FuncDecl)
	if !ok {
		return Match{}, false
	}

	fieldName, ok := m.forwards(fun)
	if !ok {
		return Match{}, false
	}

	pos, end := astutil.DeclBounds(fun)
	if file.DirectivesIn(pos, end) {
		return Match{}, false
	}

	if !m.counterpartQualifies(fun) {
		return Match{}, false
	}

	return Match{
		Rule:       ForwardID,
		Anchor:     astutil.NodeIndexOf(c),
		Pos:        fun.Pos(),
		End:        fun.End(),
		Properties: map[string]string{PropField: fieldName},
	}, true
}

// forwards checks the forwarding shape of a method declaration and returns
// the embedded field it forwards to.
func (m *Matcher) forwards(fun *ast.FuncDecl) (string, bool) {
	if fun.Recv == nil || fun.Body == nil {
		return "", false
	}

	recvObj, ok := m.receiverObject(fun)
	if !ok {
		return "", false
	}

	wrapper, ok := m.facts.MethodObject(fun)
	if !ok {
		return "", false
	}

	stmt, ok := astutil.SoleStatement(fun.Body)
	if !ok {
		return "", false
	}

	sig := wrapper.Type().(*types.Signature)

	var call *ast.CallExpr

	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		// Result-returning wrappers forward through a single return.
		if sig.Results().Len() == 0 || len(s.Results) != 1 {
			return "", false
		}

		call, ok = s.Results[0].(*ast.CallExpr)

	case *ast.ExprStmt:
		// Void wrappers forward through a bare call.
		if sig.Results().Len() != 0 {
			return "", false
		}

		call, ok = s.X.(*ast.CallExpr)

	default:
		return "", false
	}

	if !ok {
		return "", false
	}

	fieldName, ok := m.forwardedField(call, recvObj, fun.Name.Name, sig)
	if !ok {
		return "", false
	}

	if _, ok := m.facts.ForwardTargetOf(wrapper, fieldName); !ok {
		return "", false
	}

	return fieldName, true
}

// forwardedField checks that a call has the shape recv.Field.Name(params...)
// with the wrapper's parameters passed unchanged in declared order, and
// returns the field name.
func (m *Matcher) forwardedField(
	call *ast.CallExpr, recvObj types.Object, name string, sig *types.Signature,
) (string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return "", false
	}

	base, ok := sel.X.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	recvIdent, ok := base.X.(*ast.Ident)
	if !ok || m.facts.ObjectOf(recvIdent) != recvObj {
		return "", false
	}

	params := sig.Params()
	if len(call.Args) != params.Len() {
		return "", false
	}

	// Variadic wrappers must spread, non-variadic ones must not.
	if sig.Variadic() != call.Ellipsis.IsValid() {
		return "", false
	}

	for i, arg := range call.Args {
		id, ok := arg.(*ast.Ident)
		if !ok || m.facts.ObjectOf(id) != params.At(i) {
			return "", false
		}
	}

	return base.Sel.Name, true
}

// receiverObject returns the object of the named receiver of a method.
func (m *Matcher) receiverObject(fun *ast.FuncDecl) (types.Object, bool) {
	if len(fun.Recv.List) != 1 || len(fun.Recv.List[0].Names) != 1 {
		return nil, false
	}

	id := fun.Recv.List[0].Names[0]
	if id.Name == "_" {
		return nil, false
	}

	obj := m.facts.ObjectOf(id)

	return obj, obj != nil
}

// counterpartQualifies enforces the accessor-pair policy: when a getter X has
// a declared setter SetX (or vice versa) following the accessor shape, both
// must be redundant forwarders before either is flagged.
func (m *Matcher) counterpartQualifies(fun *ast.FuncDecl) bool {
	wrapper, ok := m.facts.MethodObject(fun)
	if !ok {
		return false
	}

	sig := wrapper.Type().(*types.Signature)

	named, ok := receiverNamedOf(sig)
	if !ok {
		return false
	}

	name := fun.Name.Name

	counterName, isSetter := wellknown.GetterFor(name)
	if isSetter {
		// Setter shape: at least the forwarded value, no results.
		if sig.Params().Len() == 0 || sig.Results().Len() != 0 {
			return true // not accessor-shaped, treat as plain method
		}
	} else {
		counterName = wellknown.SetterFor(name)
		if sig.Results().Len() == 0 {
			return true // not accessor-shaped, treat as plain method
		}
	}

	counter, ok := declaredOn(named, counterName)
	if !ok {
		return true // no counterpart declared
	}

	counterDecl, ok := m.declOf(counter)
	if !ok {
		// Declared outside this package's sources; be conservative.
		return false
	}

	if !accessorShape(counter, isSetter) {
		return true // counterpart is not the paired accessor
	}

	_, ok = m.forwards(counterDecl)

	return ok
}

// accessorShape checks the counterpart's accessor form: a getter when the
// flagged member is a setter, a setter otherwise.
func accessorShape(fn *types.Func, counterIsGetter bool) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	if counterIsGetter {
		return sig.Results().Len() > 0
	}

	return sig.Params().Len() > 0 && sig.Results().Len() == 0
}

// receiverNamedOf returns the origin named type of a method signature.
func receiverNamedOf(sig *types.Signature) (*types.Named, bool) {
	if sig.Recv() == nil {
		return nil, false
	}

	t := types.Unalias(sig.Recv().Type())
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil, false
	}

	return named.Origin(), true
}

// declaredOn finds a method declared directly on a named type.
func declaredOn(named *types.Named, name string) (*types.Func, bool) {
	for i := range named.NumMethods() {
		if fn := named.Method(i); fn.Name() == name {
			return fn, true
		}
	}

	return nil, false
}
