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

// construct provides shorthand builders for types and expressions,
// mainly for tests and embedders.
package construct

import (
	"github.com/rowanlang/rowan/ast"
	"github.com/rowanlang/rowan/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id)
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Type application: `list[int]`
func TApp(name string, args ...types.Type) *types.App {
	return &types.App{Name: name, Args: args}
}

// Function type: `(int, int) -> int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret}
}

// Function type: `int -> int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(int, int) -> int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Function type: `(int, int, int) -> int`
func TArrow3(arg1, arg2, arg3 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2, arg3}, Return: ret}
}

// Expressions:

// Integer literal: `1`
func Int(value int64) *ast.IntLit {
	return &ast.IntLit{Value: value}
}

// Boolean literal: `true`
func Bool(value bool) *ast.BoolLit {
	return &ast.BoolLit{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Abstraction: `fun x y -> x`
func Func(args []string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: args, Body: body}
}

// Abstraction: `fun x -> x`
func Func1(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg}, Body: body}
}

// Abstraction: `fun x y -> x`
func Func2(arg1, arg2 string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg1, arg2}, Body: body}
}

// Abstraction: `fun x y z -> x`
func Func3(arg1, arg2, arg3 string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg1, arg2, arg3}, Body: body}
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Constructor application: `cons(x, xs)`
func New(ctor string, args ...ast.Expr) *ast.Construct {
	return &ast.Construct{Ctor: ctor, Args: args}
}

// List literal built from cons cells: `cons(1, cons(2, nil()))`
func List(elems ...ast.Expr) ast.Expr {
	var list ast.Expr = New("nil")
	for i := len(elems) - 1; i >= 0; i-- {
		list = New("cons", elems[i], list)
	}
	return list
}

// Pattern-matching over constructed values:
//
//	match e { cons(x, xs) -> expr1 | nil() -> expr2 }
func Match(value ast.Expr, cases ...ast.MatchCase) *ast.Match {
	return &ast.Match{Value: value, Cases: cases}
}

// Case expression within Match: `cons(x, xs) -> expr1`
func MatchCase(ctor string, vars []string, value ast.Expr) ast.MatchCase {
	return ast.MatchCase{Ctor: ctor, Vars: vars, Value: value}
}
