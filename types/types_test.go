// The MIT License (MIT)
//
// Copyright (c) 2026 The rowan Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"testing"
)

func TestEqual(t *testing.T) {
	intT := &Const{Name: "int"}
	listInt := &App{Name: "list", Args: []Type{intT}}

	if !Equal(listInt, &App{Name: "list", Args: []Type{&Const{Name: "int"}}}) {
		t.Fatalf("structurally equal applications compared unequal")
	}
	if Equal(listInt, &App{Name: "option", Args: []Type{intT}}) {
		t.Fatalf("differing applications compared equal")
	}
	if Equal(NewVar(0), NewVar(1)) {
		t.Fatalf("variables with differing ids compared equal")
	}
	if !Equal(
		&Arrow{Args: []Type{intT}, Return: listInt},
		&Arrow{Args: []Type{intT}, Return: listInt},
	) {
		t.Fatalf("structurally equal arrows compared unequal")
	}
	if Equal(&Arrow{Args: []Type{intT}, Return: intT}, intT) {
		t.Fatalf("arrow compared equal to a constant")
	}
}

func TestSubstApply(t *testing.T) {
	a, b := NewVar(0), NewVar(1)
	intT := &Const{Name: "int"}

	sub := EmptySubst.Bind(0, b).Bind(1, intT)

	// Resolve chases the full chain of bindings
	if r := sub.Resolve(a); !Equal(r, intT) {
		t.Fatalf("resolved: %s", TypeString(r))
	}

	applied := sub.Apply(&App{Name: "list", Args: []Type{a}})
	if !Equal(applied, &App{Name: "list", Args: []Type{intT}}) {
		t.Fatalf("applied: %s", TypeString(applied))
	}

	// applying twice yields the same result as applying once
	if !Equal(sub.Apply(applied), applied) {
		t.Fatalf("apply is not idempotent")
	}

	// the original substitution is unaffected by further bindings
	ext := sub.Bind(2, intT)
	if sub.Len() != 2 || ext.Len() != 3 {
		t.Fatalf("lengths: %d, %d", sub.Len(), ext.Len())
	}
}

func TestSubstRange(t *testing.T) {
	sub := EmptySubst.Bind(3, &Const{Name: "int"}).Bind(1, &Const{Name: "bool"})

	var ids []int
	sub.Range(func(id int, _ Type) bool {
		ids = append(ids, id)
		return true
	})
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("ids: %v", ids)
	}
}

func TestTypeStringCanonicalNames(t *testing.T) {
	// variables are named in order of first occurrence, so ids do not
	// leak into the printed form
	a, b := NewVar(100), NewVar(7)
	arrow := &Arrow{Args: []Type{a, b}, Return: a}

	if s := TypeString(arrow); s != "('a, 'b) -> 'a" {
		t.Fatalf("type: %s", s)
	}

	single := &Arrow{Args: []Type{&App{Name: "list", Args: []Type{b}}}, Return: b}
	if s := TypeString(single); s != "list['a] -> 'a" {
		t.Fatalf("type: %s", s)
	}

	nested := &Arrow{
		Args:   []Type{&Arrow{Args: []Type{a}, Return: b}},
		Return: b,
	}
	if s := TypeString(nested); s != "('a -> 'b) -> 'b" {
		t.Fatalf("type: %s", s)
	}
}

func TestScheme(t *testing.T) {
	a, b := NewVar(0), NewVar(1)
	arrow := &Arrow{Args: []Type{a}, Return: b}

	scheme := NewScheme([]int{1, 0, 1}, arrow)
	if len(scheme.Vars) != 2 {
		t.Fatalf("quantified ids: %v", scheme.Vars)
	}
	if !scheme.Quantifies(0) || !scheme.Quantifies(1) || scheme.Quantifies(2) {
		t.Fatalf("quantified ids: %v", scheme.Vars)
	}
	if MonoScheme(arrow).IsMono() != true || scheme.IsMono() {
		t.Fatalf("monomorphism misreported")
	}

	gen := Generalize(arrow)
	if len(gen.Vars) != 2 {
		t.Fatalf("generalized ids: %v", gen.Vars)
	}
}

func TestRangeFreeVars(t *testing.T) {
	a, b := NewVar(0), NewVar(1)
	arrow := &Arrow{
		Args:   []Type{&App{Name: "list", Args: []Type{a}}},
		Return: b,
	}

	var ids []int
	RangeFreeVars(arrow, func(id int) bool {
		ids = append(ids, id)
		return true
	})
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		t.Fatalf("ids: %v", ids)
	}

	// early termination
	count := 0
	RangeFreeVars(arrow, func(id int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("visited %d ids after stopping", count)
	}
}
