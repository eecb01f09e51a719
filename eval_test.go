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

package rowan_test

import (
	"reflect"
	"testing"

	"github.com/kr/pretty"
	"github.com/sanity-io/litter"

	"github.com/rowanlang/rowan"
	"github.com/rowanlang/rowan/ast"
	. "github.com/rowanlang/rowan/construct"
)

// checkedEval infers the type of expr, then evaluates it.
func checkedEval(t *testing.T, expr ast.Expr) rowan.Value {
	t.Helper()
	scheme, err := rowan.NewContext().Infer(expr, rowan.Builtins())
	if err != nil {
		t.Fatalf("infer %s: %v", ast.ExprString(expr), err)
	}
	t.Logf("%s : %s", ast.ExprString(expr), scheme)
	v, err := rowan.Eval(expr, rowan.BuiltinEnv())
	if err != nil {
		t.Fatalf("eval %s: %v", ast.ExprString(expr), err)
	}
	return v
}

func TestFoldRight(t *testing.T) {
	// foldr(pair, 0, [1, 2]) exposes the association of the fold:
	// f a (f b init) = pair(1, pair(2, 0)). The expression is not
	// well-typed (the accumulator type grows per step), so it is
	// evaluated without inference.
	v, err := rowan.Eval(Call(Var("foldr"), Var("pair"), Int(0), List(Int(1), Int(2))), rowan.BuiltinEnv())
	if err != nil {
		t.Fatal(err)
	}
	if s := rowan.ValueString(v); s != "pair(1, pair(2, 0))" {
		t.Fatalf("value: %s", s)
	}

	// folding cons over nil rebuilds the list unchanged; a left fold
	// over the same arguments would reverse it
	v = checkedEval(t, Call(Var("foldr"), Var("cons"), New("nil"), List(Int(1), Int(2), Int(3))))
	if s := rowan.ValueString(v); s != "[1, 2, 3]" {
		t.Fatalf("value: %s", s)
	}

	v = checkedEval(t, Call(Var("foldr"), Var("add"), Int(0), List(Int(1), Int(2), Int(3))))
	if v != rowan.Int(6) {
		t.Fatalf("value: %s", rowan.ValueString(v))
	}

	// empty list returns the initial value untouched
	v = checkedEval(t, Call(Var("foldr"), Var("add"), Int(42), New("nil")))
	if v != rowan.Int(42) {
		t.Fatalf("value: %s", rowan.ValueString(v))
	}
}

func TestFoldFlatten(t *testing.T) {
	// foldr(append, [], [[1], [], [2, 3], [4]]) is the right-fold
	// [1] ++ ([] ++ ([2, 3] ++ ([4] ++ [])))
	lists := List(
		List(Int(1)),
		List(),
		List(Int(2), Int(3)),
		List(Int(4)))

	v := checkedEval(t, Call(Var("foldr"), Var("append"), New("nil"), lists))
	if s := rowan.ValueString(v); s != "[1, 2, 3, 4]" {
		t.Fatalf("value: %s", s)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	v := checkedEval(t, Call(Var("mapList"), Var("odd"), List(Int(2), Int(1), Int(2), Int(5))))
	if s := rowan.ValueString(v); s != "[false, true, false, true]" {
		t.Fatalf("value: %s", s)
	}
}

func TestFilterIsStable(t *testing.T) {
	v := checkedEval(t, Call(Var("filter"), Var("odd"), List(Int(2), Int(1), Int(3), Int(4), Int(5))))
	if s := rowan.ValueString(v); s != "[1, 3, 5]" {
		t.Fatalf("value: %s", s)
	}

	v = checkedEval(t, Call(Var("filter"), Var("odd"), List(Int(2), Int(4))))
	if s := rowan.ValueString(v); s != "[]" {
		t.Fatalf("value: %s", s)
	}

	// filter([[1,2],[3],[4],[5,6,7],[],[8]]) by single-element lists
	// keeps input order
	lengthOne := Func1("l", Call(Var("eq"), Call(Var("length"), Var("l")), Int(1)))
	lists := List(
		List(Int(1), Int(2)),
		List(Int(3)),
		List(Int(4)),
		List(Int(5), Int(6), Int(7)),
		List(),
		List(Int(8)))

	v = checkedEval(t, Call(Var("filter"), lengthOne, lists))
	if s := rowan.ValueString(v); s != "[[3], [4], [8]]" {
		t.Fatalf("value: %s", s)
	}
}

func TestMatchEval(t *testing.T) {
	// match Some(41) { Some(x) -> add(x, 1) | None() -> 0 }
	expr := Match(New("Some", Int(41)),
		MatchCase("Some", []string{"x"}, Call(Var("add"), Var("x"), Int(1))),
		MatchCase("None", nil, Int(0)))

	v := checkedEval(t, expr)
	if v != rowan.Int(42) {
		t.Fatalf("value: %s", rowan.ValueString(v))
	}

	expr = Match(New("None"),
		MatchCase("Some", []string{"x"}, Call(Var("add"), Var("x"), Int(1))),
		MatchCase("None", nil, Int(0)))

	v = checkedEval(t, expr)
	if v != rowan.Int(0) {
		t.Fatalf("value: %s", rowan.ValueString(v))
	}
}

func TestMatchMissingCase(t *testing.T) {
	// well-typed for inference purposes requires all used constructors
	// declared; a non-exhaustive match is only detected at runtime
	expr := Match(New("Some", Int(1)),
		MatchCase("None", nil, Int(0)))

	_, err := rowan.Eval(expr, rowan.BuiltinEnv())
	if _, ok := err.(*rowan.EvalError); !ok {
		t.Fatalf("expected EvalError, got %v", err)
	}
	t.Logf("error: %v", err)
}

func TestClosureCapture(t *testing.T) {
	// let y = 10 in let f = fun x -> add(x, y) in let y = 0 in f(1)
	//
	// f must see the y captured at the point of abstraction, not the
	// shadowing binding installed afterwards.
	expr := Let("y", Int(10),
		Let("f", Func1("x", Call(Var("add"), Var("x"), Var("y"))),
			Let("y", Int(0),
				Call(Var("f"), Int(1)))))

	v := checkedEval(t, expr)
	if v != rowan.Int(11) {
		t.Fatalf("value: %s", rowan.ValueString(v))
	}
}

func TestPairProjections(t *testing.T) {
	v := checkedEval(t, Call(Var("fst"), New("pair", Int(1), Bool(true))))
	if v != rowan.Int(1) {
		t.Fatalf("fst: %s", rowan.ValueString(v))
	}
	v = checkedEval(t, Call(Var("snd"), New("pair", Int(1), Bool(true))))
	if v != rowan.Bool(true) {
		t.Fatalf("snd: %s", rowan.ValueString(v))
	}
}

func TestLength(t *testing.T) {
	v := checkedEval(t, Call(Var("length"), List(Int(5), Int(6), Int(7))))
	if v != rowan.Int(3) {
		t.Fatalf("value: %s", rowan.ValueString(v))
	}
}

func TestConstructorsAreFirstClass(t *testing.T) {
	// mapList(Some, [1, 2]) applies the constructor as a function
	v := checkedEval(t, Call(Var("mapList"), Var("Some"), List(Int(1), Int(2))))
	if s := rowan.ValueString(v); s != "[Some(1), Some(2)]" {
		t.Fatalf("value: %s", s)
	}
}

func TestListHelpers(t *testing.T) {
	want := []rowan.Value{rowan.Int(1), rowan.Int(2), rowan.Int(3)}

	got, err := rowan.ListElems(rowan.ListValue(want...))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		pretty.Ldiff(t, want, got)
		t.Fatalf("round-tripped list: %s", litter.Sdump(got))
	}

	if _, err := rowan.ListElems(rowan.Int(1)); err == nil {
		t.Fatalf("expected an error flattening a non-list value")
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	_, err := rowan.Eval(Var("ghost"), rowan.BuiltinEnv())
	if _, ok := err.(*rowan.EvalError); !ok {
		t.Fatalf("expected EvalError, got %v", err)
	}
}

func TestInferAll(t *testing.T) {
	env := rowan.Builtins()
	exprs := []ast.Expr{
		Func1("x", Var("x")),
		Call(Var("add"), Int(1), Bool(true)),
		List(Int(1), Int(2)),
	}

	results := rowan.InferAll(exprs, env)
	if len(results) != len(exprs) {
		t.Fatalf("expected %d results, got %d", len(exprs), len(results))
	}

	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}
	if s := results[0].Type.String(); s != "'a -> 'a" {
		t.Fatalf("type: %s", s)
	}

	if code, ok := rowan.ErrorCodeOf(results[1].Err); !ok || code != rowan.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", results[1].Err)
	}

	if results[2].Err != nil {
		t.Fatal(results[2].Err)
	}
	if s := results[2].Type.String(); s != "list[int]" {
		t.Fatalf("type: %s", s)
	}
}

func TestEvalAll(t *testing.T) {
	env := rowan.BuiltinEnv()
	exprs := []ast.Expr{
		Call(Var("add"), Int(1), Int(2)),
		Var("ghost"),
	}

	results := rowan.EvalAll(exprs, env)
	if len(results) != len(exprs) {
		t.Fatalf("expected %d results, got %d", len(exprs), len(results))
	}
	if results[0].Err != nil || results[0].Value != rowan.Int(3) {
		t.Fatalf("result: %# v (%v)", pretty.Formatter(results[0].Value), results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatalf("expected an error for the unbound variable")
	}
}
