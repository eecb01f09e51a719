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
	"github.com/rowanlang/rowan/ast"
)

// Eval evaluates a type-checked expression within env, call-by-value.
// Evaluation is strict, synchronous and pure, and terminates for every
// well-typed expression (recursion is structural only). Failures are
// *EvalError defects: evaluation assumes the expression already passed
// inference.
func Eval(expr ast.Expr, env Env) (Value, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return Int(e.Value), nil

	case *ast.BoolLit:
		return Bool(e.Value), nil

	case *ast.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, evalErrorf("variable %s not found at runtime", e.Name)
		}
		return v, nil

	case *ast.Func:
		return &Closure{ArgNames: e.ArgNames, Body: e.Body, Env: env}, nil

	case *ast.Call:
		fn, err := Eval(e.Func, env)
		if err != nil {
			return nil, err
		}
		args := make([]Value, len(e.Args))
		for i, arg := range e.Args {
			if args[i], err = Eval(arg, env); err != nil {
				return nil, err
			}
		}
		return Apply(fn, args)

	case *ast.Let:
		v, err := Eval(e.Value, env)
		if err != nil {
			return nil, err
		}
		return Eval(e.Body, env.Bind(e.Var, v))

	case *ast.Construct:
		args := make([]Value, len(e.Args))
		var err error
		for i, arg := range e.Args {
			if args[i], err = Eval(arg, env); err != nil {
				return nil, err
			}
		}
		return &Data{Ctor: e.Ctor, Args: args}, nil

	case *ast.Match:
		v, err := Eval(e.Value, env)
		if err != nil {
			return nil, err
		}
		data, ok := v.(*Data)
		if !ok {
			return nil, evalErrorf("match on non-constructed value %s", v.ValueName())
		}
		for i := range e.Cases {
			c := &e.Cases[i]
			if c.Ctor != data.Ctor {
				continue
			}
			if len(c.Vars) != len(data.Args) {
				return nil, evalErrorf("pattern %s binds %d variables, value has %d arguments",
					c.Ctor, len(c.Vars), len(data.Args))
			}
			child := env
			for j, name := range c.Vars {
				child = child.Bind(name, data.Args[j])
			}
			return Eval(c.Value, child)
		}
		return nil, evalErrorf("no case for constructor %s", data.Ctor)
	}
	return nil, evalErrorf("unhandled expression (%s)", expr.ExprName())
}

// Apply calls a function value with already-evaluated arguments.
func Apply(fn Value, args []Value) (Value, error) {
	switch fn := fn.(type) {
	case *Closure:
		if len(args) != len(fn.ArgNames) {
			return nil, evalErrorf("function of %d parameters applied to %d arguments",
				len(fn.ArgNames), len(args))
		}
		env := fn.Env
		for i, name := range fn.ArgNames {
			env = env.Bind(name, args[i])
		}
		return Eval(fn.Body, env)

	case *Builtin:
		if len(args) != fn.Arity {
			return nil, evalErrorf("builtin %s of %d parameters applied to %d arguments",
				fn.Name, fn.Arity, len(args))
		}
		return fn.Fn(args)
	}
	return nil, evalErrorf("applied non-function value %s", fn.ValueName())
}
