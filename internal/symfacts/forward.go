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
)

// MethodObject returns the method object a declaration defines.
func (f Facts) MethodObject(fun *ast.FuncDecl) (*types.Func, bool) {
	fn, ok := f.info.Defs[fun.Name].(*types.Func)
	if !ok {
		return nil, false
	}

	sig, ok := fn.Type().(*types.Signature)

	return fn, ok && sig.Recv() != nil
}

// ForwardTarget describes the embedded field a wrapper method forwards to.
type ForwardTarget struct {
	// Field is the embedded struct field providing the method.
	Field *types.Var

	// Method is the promoted method the field provides.
	Method *types.Func
}

// ForwardTargetOf verifies that removing the wrapper method leaves an
// equivalent promoted method behind. The named field must be embedded in the
// wrapper's receiver struct, must be the only embedded field providing a
// method of this name, the promoted method must be visible from the wrapper's
// receiver form, and its signature must be identical to the wrapper's.
func (f Facts) ForwardTargetOf(wrapper *types.Func, fieldName string) (ForwardTarget, bool) {
	sig, ok := wrapper.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return ForwardTarget{}, false
	}

	recv := types.Unalias(sig.Recv().Type())
	_, addressable := recv.(*types.Pointer)

	named, ok := namedOf(recv)
	if !ok {
		return ForwardTarget{}, false
	}

	st, ok := types.Unalias(named.Underlying()).(*types.Struct)
	if !ok {
		return ForwardTarget{}, false
	}

	var target ForwardTarget

	providers := 0

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		method, ok := f.promotedMethod(field.Type(), wrapper.Name(), addressable)
		if !ok {
			continue
		}

		providers++

		if field.Name() == fieldName {
			target = ForwardTarget{Field: field, Method: method}
		}
	}

	// Ambiguous promotion after removal would not compile.
	if providers != 1 || target.Field == nil {
		return ForwardTarget{}, false
	}

	if !identicalSignatures(sig, target.Method.Type()) {
		return ForwardTarget{}, false
	}

	return target, true
}

// promotedMethod looks up a method in the method set an embedded field
// contributes. When the wrapper's receiver is a pointer, the embedded field is
// addressable and pointer-receiver methods are promoted as well.
func (f Facts) promotedMethod(fieldType types.Type, name string, addressable bool) (*types.Func, bool) {
	t := types.Unalias(fieldType)
	if _, isPtr := t.(*types.Pointer); !isPtr && addressable {
		t = types.NewPointer(t)
	}

	sel := types.NewMethodSet(t).Lookup(f.pkg, name)
	if sel == nil {
		return nil, false
	}

	fn, ok := sel.Obj().(*types.Func)

	return fn, ok
}

// identicalSignatures compares parameters and results, ignoring receivers.
func identicalSignatures(a *types.Signature, b types.Type) bool {
	bs, ok := types.Unalias(b).(*types.Signature)
	if !ok || a.Variadic() != bs.Variadic() {
		return false
	}

	bare := func(sig *types.Signature) *types.Signature {
		return types.NewSignatureType(nil, nil, nil, sig.Params(), sig.Results(), sig.Variadic())
	}

	return types.Identical(bare(a), bare(bs))
}
