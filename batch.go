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

package rowan

import (
	lop "github.com/samber/lo/parallel"

	"github.com/rowanlang/rowan/ast"
	"github.com/rowanlang/rowan/types"
)

// InferResult is the outcome of inferring one expression of a batch.
type InferResult struct {
	Type *types.Scheme
	Err  error
}

// InferAll infers each expression independently against env, in
// parallel. Each expression gets its own context, so results match
// what a fresh NewContext().Infer would return, in input order.
func InferAll(exprs []ast.Expr, env *TypeEnv) []InferResult {
	return lop.Map(exprs, func(expr ast.Expr, _ int) InferResult {
		scheme, err := NewContext().Infer(expr, env)
		return InferResult{Type: scheme, Err: err}
	})
}

// EvalResult is the outcome of evaluating one expression of a batch.
type EvalResult struct {
	Value Value
	Err   error
}

// EvalAll evaluates each expression independently within env, in
// parallel. The environment is persistent and never mutated, so the
// expressions cannot observe each other.
func EvalAll(exprs []ast.Expr, env Env) []EvalResult {
	return lop.Map(exprs, func(expr ast.Expr, _ int) EvalResult {
		v, err := Eval(expr, env)
		return EvalResult{Value: v, Err: err}
	})
}
