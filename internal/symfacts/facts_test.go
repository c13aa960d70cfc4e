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

package symfacts_test

import (
	"errors"
	"go/types"
	"testing"

	. "fillmore-labs.com/seqsimp/internal/symfacts"
	"fillmore-labs.com/seqsimp/internal/testsource"
)

const factsSrc = `
type Counted[T any] struct{ items []T }

func (c Counted[T]) Where(pred func(T) bool) Counted[T] {
	var out Counted[T]
	for _, e := range c.items {
		if pred(e) {
			out.items = append(out.items, e)
		}
	}

	return out
}

func (c Counted[T]) Any(preds ...func(T) bool) bool {
next:
	for _, e := range c.items {
		for _, pred := range preds {
			if !pred(e) {
				continue next
			}
		}

		return true
	}

	return false
}

func (c Counted[T]) Count() int { return len(c.items) }

type Plain struct{ n int }

type Mapping[K comparable, V any] map[K]V

type Odd[T any] []T

func (o Odd[T]) Where(pred func(T) bool) []T { return o }

var (
	seqVar     Seq[int]
	vecVar     Vec[string]
	countedVar Counted[int]
)
`

func load(t *testing.T) (Facts, *types.Package) {
	t.Helper()

	fset, f, _ := testsource.ParseDecls(t, factsSrc)
	pkg, info := testsource.Check(t, fset, f)

	facts, err := New(pkg, info)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return facts, pkg
}

func namedType(t *testing.T, pkg *types.Package, name string) *types.Named {
	t.Helper()

	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		t.Fatalf("Type %s not found", name)
	}

	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		t.Fatalf("%s is not a named type", name)
	}

	return named
}

func TestNewNilModel(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, nil); !errors.Is(err, ErrNilSemanticModel) {
		t.Errorf("New(nil, nil) error = %v, want ErrNilSemanticModel", err)
	}
}

func TestFamilyOf(t *testing.T) {
	t.Parallel()

	facts, pkg := load(t)

	tests := []struct {
		typeName string
		want     Family
	}{
		{"Seq", SequenceFamily},
		{"Vec", FixedFamily},
		{"Counted", SequenceFamily}, // struct-backed, size not in the underlying
		{"Plain", NoFamily},         // no combinators
		{"Mapping", NoFamily},       // two type parameters
		{"Odd", NoFamily},           // Where does not return the type itself
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()

			named := namedType(t, pkg, tt.typeName)

			if got := facts.FamilyOf(named); got != tt.want {
				t.Errorf("FamilyOf(%s) = %v, want %v", tt.typeName, got, tt.want)
			}
		})
	}
}

func TestFamilyOfInstantiated(t *testing.T) {
	t.Parallel()

	facts, pkg := load(t)

	inst, ok := types.Unalias(pkg.Scope().Lookup("seqVar").Type()).(*types.Named)
	if !ok {
		t.Fatal("seqVar should have a named type")
	}

	if got := facts.FamilyOf(inst); got != SequenceFamily {
		t.Errorf("FamilyOf(Seq[int]) = %v, want SequenceFamily", got)
	}

	elem, ok := facts.ElementOf(inst)
	if !ok || !types.Identical(elem, types.Typ[types.Int]) {
		t.Errorf("ElementOf(Seq[int]) = %v, want int", elem)
	}
}

func TestSizeAccessor(t *testing.T) {
	t.Parallel()

	facts, pkg := load(t)

	tests := []struct {
		typeName string
		accessor string
		ok       bool
	}{
		{"Vec", "Len", true},
		{"Counted", "Count", true},
		{"Odd", "len", true}, // slice-backed, no declared accessor
		{"Plain", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()

			named := namedType(t, pkg, tt.typeName)

			accessor, ok := facts.SizeAccessor(named)
			if ok != tt.ok || accessor != tt.accessor {
				t.Errorf("SizeAccessor(%s) = %q, %v, want %q, %v",
					tt.typeName, accessor, ok, tt.accessor, tt.ok)
			}
		})
	}
}

func TestAnyShape(t *testing.T) {
	t.Parallel()

	facts, pkg := load(t)

	named := namedType(t, pkg, "Vec")

	elem, ok := facts.ElementOf(named)
	if !ok {
		t.Fatal("ElementOf(Vec) failed")
	}

	anyFn := methodByName(t, named, "Any")
	if !AnyShape(anyFn, elem) {
		t.Error("Vec.Any should have the existence combinator shape")
	}

	whereFn := methodByName(t, named, "Where")
	if AnyShape(whereFn, elem) {
		t.Error("Vec.Where should not have the existence combinator shape")
	}
}

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	_, pkg := load(t)

	vec := namedType(t, pkg, "Vec")
	seq := namedType(t, pkg, "Seq")

	if !SameOrigin(methodByName(t, vec, "Any"), methodByName(t, vec, "Where")) {
		t.Error("Methods of one type share an origin")
	}

	if SameOrigin(methodByName(t, vec, "Any"), methodByName(t, seq, "Any")) {
		t.Error("Methods of different types have different origins")
	}
}

func methodByName(t *testing.T, named *types.Named, name string) *types.Func {
	t.Helper()

	for i := range named.NumMethods() {
		if m := named.Method(i); m.Name() == name {
			return m
		}
	}

	t.Fatalf("Method %s not found on %s", name, named.Obj().Name())

	return nil
}
