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

package symfacts

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/seqsimp/internal/wellknown"
)

// SelectCall resolves a call to a package-level generic Select combinator.
// It returns the resolved function and the instantiated input and output
// element types. The callee may be a plain identifier, a package-qualified
// selector or an explicit instantiation.
func (f Facts) SelectCall(call *ast.CallExpr) (fn *types.Func, from, to types.Type, ok bool) {
	id, ok := calleeIdent(call.Fun)
	if !ok {
		return nil, nil, nil, false
	}

	fn, ok = f.info.Uses[id].(*types.Func)
	if !ok || !wellknown.Select.Matches(fn.Name()) {
		return nil, nil, nil, false
	}

	origin := fn.Origin()

	sig, ok := origin.Type().(*types.Signature)
	if !ok || sig.Recv() != nil || sig.TypeParams().Len() != 2 || sig.Params().Len() != 2 {
		return nil, nil, nil, false
	}

	inst, ok := f.info.Instances[id]
	if !ok || inst.TypeArgs.Len() != 2 {
		return nil, nil, nil, false
	}

	return fn, inst.TypeArgs.At(0), inst.TypeArgs.At(1), true
}

// ProjectionMatches reports whether a projection literal has exactly the
// declared function type func(from) to of the Select instantiation.
func (f Facts) ProjectionMatches(lit *ast.FuncLit, from, to types.Type) bool {
	sig, ok := types.Unalias(f.TypeOf(lit)).(*types.Signature)
	if !ok || sig.Variadic() {
		return false
	}

	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Params().At(0).Type(), from) &&
		types.Identical(sig.Results().At(0).Type(), to)
}

// CastAvailable reports whether the package declaring a resolved Select also
// exposes a Cast combinator of the shape func[T, F](seq) seq.
func CastAvailable(selectFn *types.Func) bool {
	pkg := selectFn.Pkg()
	if pkg == nil {
		return false
	}

	cast, ok := pkg.Scope().Lookup(wellknown.Cast.String()).(*types.Func)
	if !ok {
		return false
	}

	sig, ok := cast.Type().(*types.Signature)

	return ok && sig.Recv() == nil && sig.TypeParams().Len() == 2 &&
		sig.Params().Len() == 1 && sig.Results().Len() == 1
}

// IsConversion reports whether a call expression is a type conversion.
func (f Facts) IsConversion(call *ast.CallExpr) bool {
	tv, ok := f.info.Types[call.Fun]

	return ok && tv.IsType()
}

// IsInterface reports whether t is an interface type.
func IsInterface(t types.Type) bool {
	return types.IsInterface(types.Unalias(t))
}

// calleeIdent unwraps the identifier a callee resolves through, looking
// through package qualification and explicit instantiation.
func calleeIdent(fun ast.Expr) (*ast.Ident, bool) {
	switch e := fun.(type) {
	case *ast.Ident:
		return e, true

	case *ast.SelectorExpr:
		return e.Sel, true

	case *ast.IndexExpr:
		return calleeIdent(e.X)

	case *ast.IndexListExpr:
		return calleeIdent(e.X)

	default:
		return nil, false
	}
}
