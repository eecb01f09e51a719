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

package ast

import (
	"github.com/rowanlang/rowan/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are only available after type-inference.
	Type() types.Type
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Construct)(nil)
	_ Expr = (*Match)(nil)
)

// Integer literal: `1`
type IntLit struct {
	Value    int64
	inferred types.Type
}

// "IntLit"
func (e *IntLit) ExprName() string { return "IntLit" }

// Get the inferred (or assigned) type of e.
func (e *IntLit) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *IntLit) SetType(t types.Type) { e.inferred = t }

// Boolean literal: `true`
type BoolLit struct {
	Value    bool
	inferred types.Type
}

// "BoolLit"
func (e *BoolLit) ExprName() string { return "BoolLit" }

// Get the inferred (or assigned) type of e.
func (e *BoolLit) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *BoolLit) SetType(t types.Type) { e.inferred = t }

// Variable
type Var struct {
	Name     string
	inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Get the inferred (or assigned) type of e.
func (e *Var) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Var) SetType(t types.Type) { e.inferred = t }

// Application: `f(x)`
type Call struct {
	Func     Expr
	Args     []Expr
	inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Call) SetType(t types.Type) { e.inferred = t }

// Abstraction: `fun x y -> x`
type Func struct {
	ArgNames []string
	Body     Expr
	inferred *types.Arrow
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Get the inferred (or assigned) type of e.
func (e *Func) Type() types.Type {
	if e.inferred == nil {
		return nil
	}
	return e.inferred
}

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Func) SetType(ft *types.Arrow) { e.inferred = ft }

// Get the inferred (or assigned) type of an argument of e.
func (e *Func) ArgType(index int) types.Type { return e.inferred.Args[index] }

// Get the inferred (or assigned) return type of e.
func (e *Func) RetType() types.Type { return e.inferred.Return }

// Let-binding: `let a = 1 in e`
//
// The bound value is generalized at the binding, so the body may use
// the binding at several distinct types.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Get the inferred (or assigned) type of e.
func (e *Let) Type() types.Type { return e.Body.Type() }

// Constructor application: `cons(x, xs)`
type Construct struct {
	Ctor     string
	Args     []Expr
	inferred types.Type
}

// "Construct"
func (e *Construct) ExprName() string { return "Construct" }

// Get the inferred (or assigned) type of e.
func (e *Construct) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Construct) SetType(t types.Type) { e.inferred = t }

// Structural match over a constructed value:
//
//	match e {
//	    cons(x, xs) -> expr1
//	  | nil() -> expr2
//	}
type Match struct {
	Value    Expr
	Cases    []MatchCase
	inferred types.Type
}

// "Match"
func (e *Match) ExprName() string { return "Match" }

// Get the inferred (or assigned) type of e.
func (e *Match) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Match) SetType(t types.Type) { e.inferred = t }

// Case expression within Match: `cons(x, xs) -> expr1`
type MatchCase struct {
	Ctor  string
	Vars  []string
	Value Expr
}

// Get the inferred (or assigned) type of e.
func (e *MatchCase) Type() types.Type { return e.Value.Type() }
