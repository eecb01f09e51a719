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
	"testing"

	"github.com/rowanlang/rowan"
	. "github.com/rowanlang/rowan/construct"
)

func BenchmarkLetPolymorphism(b *testing.B) {
	env := rowan.Builtins()
	ctx := rowan.NewContext()

	expr := Let("id", Func1("x", Var("x")),
		New("pair",
			Call(Var("id"), Int(1)),
			Call(Var("id"), Bool(true))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		scheme, err := ctx.Infer(expr, env)
		if err != nil || scheme == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatchInference(b *testing.B) {
	env := rowan.Builtins()
	ctx := rowan.NewContext()

	expr := Func1("xs",
		Match(Var("xs"),
			MatchCase("cons", []string{"x", "rest"}, New("Some", Var("x"))),
			MatchCase("nil", nil, New("None"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		scheme, err := ctx.Infer(expr, env)
		if err != nil || scheme == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFoldEval(b *testing.B) {
	env := rowan.BuiltinEnv()

	expr := Call(Var("foldr"), Var("add"), Int(0),
		List(Int(1), Int(2), Int(3), Int(4), Int(5), Int(6), Int(7), Int(8)))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		v, err := rowan.Eval(expr, env)
		if err != nil || v == nil {
			b.Fatal(err)
		}
	}
}
