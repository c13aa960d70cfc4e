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

// Package symfacts answers semantic questions over type-checker results.
//
// All queries resolve the origin (generic-defining) symbol before comparing,
// so instantiations match their open definition. Queries are read-only and
// deterministic: calling twice with the same inputs yields the same answer.
package symfacts

import (
	"errors"
	"go/ast"
	"go/types"

	"fillmore-labs.com/seqsimp/internal/wellknown"
)

// ErrNilSemanticModel is returned when [New] is called without type information.
var ErrNilSemanticModel = errors.New("symfacts: nil semantic model")

// Facts provides read-only semantic queries for one type-checked tree.
// A Facts value is only valid for the exact parse it was created from.
type Facts struct {
	pkg  *types.Package
	info *types.Info
}

// New creates a [Facts] value for one type-checked package.
func New(pkg *types.Package, info *types.Info) (Facts, error) {
	if pkg == nil || info == nil {
		return Facts{}, ErrNilSemanticModel
	}

	return Facts{pkg: pkg, info: info}, nil
}

// Package returns the package the facts were created for.
func (f Facts) Package() *types.Package {
	return f.pkg
}

// TypeOf returns the type of an expression, or nil when unresolved.
func (f Facts) TypeOf(expr ast.Expr) types.Type {
	return f.info.TypeOf(expr)
}

// ReceiverNamed resolves the named type of a receiver expression,
// unwrapping aliases and one level of pointer indirection.
func (f Facts) ReceiverNamed(expr ast.Expr) (*types.Named, bool) {
	t := f.TypeOf(expr)
	if t == nil {
		return nil, false
	}

	return namedOf(t)
}

// ObjectOf returns the object an identifier denotes, or nil.
func (f Facts) ObjectOf(id *ast.Ident) types.Object {
	return f.info.ObjectOf(id)
}

// ResolvedMethod returns the method a selector resolves to.
func (f Facts) ResolvedMethod(sel *ast.SelectorExpr) (*types.Func, bool) {
	fn, ok := f.info.Uses[sel.Sel].(*types.Func)

	return fn, ok
}

// SameOrigin reports whether two methods are declared on the same
// generic-defining (origin) named type.
func SameOrigin(a, b *types.Func) bool {
	an, ok := receiverOrigin(a)
	if !ok {
		return false
	}

	bn, ok := receiverOrigin(b)
	if !ok {
		return false
	}

	return an.Obj() == bn.Obj()
}

// Family classifies a named type's combinator family.
type Family uint8

const (
	// NoFamily means the type has no recognized combinator shape.
	NoFamily Family = iota

	// SequenceFamily is the lazy sequence shape: a generic named type whose
	// Where method returns the type itself, not backed by a slice or array.
	SequenceFamily

	// FixedFamily is the same combinator shape backed by a slice or array,
	// making its size cheaply observable.
	FixedFamily
)

// String returns the family name.
func (fam Family) String() string {
	switch fam {
	case NoFamily:
		return "none"

	case SequenceFamily:
		return "sequence"

	case FixedFamily:
		return "fixed"

	default:
		return "unknown"
	}
}

// FamilyOf classifies a named type by structural shape: the type must be a
// single-parameter generic whose Where method has the signature
// func(func(T) bool) Self. A slice- or array-backed type is in the
// [FixedFamily], any other backing in the [SequenceFamily].
func (f Facts) FamilyOf(named *types.Named) Family {
	if named == nil {
		return NoFamily
	}

	origin := named.Origin()
	if origin.TypeParams().Len() != 1 {
		return NoFamily
	}

	elem, ok := elementType(named)
	if !ok {
		return NoFamily
	}

	where, ok := methodNamed(named, wellknown.Where)
	if !ok || !whereShape(where, elem, origin) {
		return NoFamily
	}

	switch types.Unalias(named.Underlying()).(type) {
	case *types.Slice, *types.Array:
		return FixedFamily

	default:
		return SequenceFamily
	}
}

// SizeAccessor returns the spelling of the cheapest size accessor of a type:
// an exported nullary int method named Len or Count when present, or the
// builtin len for slice- or array-backed types. The boolean result is false
// when the size is not cheaply observable.
func (f Facts) SizeAccessor(named *types.Named) (string, bool) {
	if named == nil {
		return "", false
	}

	ms := types.NewMethodSet(types.NewPointer(named))
	for _, name := range wellknown.SizeAccessors() {
		sel := ms.Lookup(nil, name.String())
		if sel == nil {
			continue
		}

		fn, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}

		if sizeShape(fn) {
			return name.String(), true
		}
	}

	switch types.Unalias(named.Underlying()).(type) {
	case *types.Slice, *types.Array:
		return wellknown.BuiltinLen, true
	}

	return "", false
}

// AnyShape checks the existence combinator signature
// func(...func(elem) bool) bool.
func AnyShape(fn *types.Func, elem types.Type) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || !sig.Variadic() || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	preds, ok := types.Unalias(sig.Params().At(0).Type()).(*types.Slice)
	if !ok || !IsPredicate(preds.Elem(), elem) {
		return false
	}

	basic, ok := types.Unalias(sig.Results().At(0).Type()).(*types.Basic)

	return ok && basic.Kind() == types.Bool
}

// IsPredicate reports whether t is a predicate func(elem) bool.
func IsPredicate(t, elem types.Type) bool {
	sig, ok := types.Unalias(t).(*types.Signature)
	if !ok || sig.Variadic() {
		return false
	}

	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	if !types.Identical(sig.Params().At(0).Type(), elem) {
		return false
	}

	basic, ok := types.Unalias(sig.Results().At(0).Type()).(*types.Basic)

	return ok && basic.Kind() == types.Bool
}

// ElementOf returns the element type of a single-parameter generic named type.
func (f Facts) ElementOf(named *types.Named) (types.Type, bool) {
	if named == nil {
		return nil, false
	}

	return elementType(named)
}

// elementType returns the element type of a single-parameter generic named
// type: the type argument when instantiated, the type parameter otherwise.
func elementType(named *types.Named) (types.Type, bool) {
	if args := named.TypeArgs(); args.Len() == 1 {
		return args.At(0), true
	}

	if params := named.TypeParams(); params.Len() == 1 {
		return params.At(0), true
	}

	return nil, false
}

// methodNamed finds a declared method by well-known name.
func methodNamed(named *types.Named, name wellknown.Name) (*types.Func, bool) {
	for i := range named.NumMethods() {
		if m := named.Method(i); name.Matches(m.Name()) {
			return m, true
		}
	}

	return nil, false
}

// whereShape checks the filtering combinator signature func(func(elem) bool) Self.
func whereShape(fn *types.Func, elem types.Type, origin *types.Named) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Variadic() {
		return false
	}

	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	if !IsPredicate(sig.Params().At(0).Type(), elem) {
		return false
	}

	result, ok := namedOf(sig.Results().At(0).Type())

	return ok && result.Obj() == origin.Obj()
}

// sizeShape checks the accessor signature func() int.
func sizeShape(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	basic, ok := types.Unalias(sig.Results().At(0).Type()).(*types.Basic)

	return ok && basic.Kind() == types.Int
}

// namedOf unwraps aliases and one pointer level to a named type.
func namedOf(t types.Type) (*types.Named, bool) {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, ok := t.(*types.Named)

	return named, ok
}

// receiverOrigin returns the origin named type a method is declared on.
func receiverOrigin(fn *types.Func) (*types.Named, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil, false
	}

	named, ok := namedOf(sig.Recv().Type())
	if !ok {
		return nil, false
	}

	return named.Origin(), true
}
