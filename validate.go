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

// ValidateConstructors checks every constructor application and match
// pattern within expr against the declarations in env, without running
// inference. The first undeclared constructor or arity mismatch is
// returned as a *TypeError.
func ValidateConstructors(expr ast.Expr, env *TypeEnv) error {
	var firstErr error
	check := func(e ast.Expr, name string, argc int) {
		if firstErr != nil {
			return
		}
		ctor, ok := env.LookupConstructor(name)
		if !ok {
			firstErr = typeErrorf(UnboundVariable, "constructor %s not declared", name)
			return
		}
		if ctor.Arity != argc {
			firstErr = typeErrorf(ConstructorMismatch,
				"constructor %s expects %d arguments, got %d", name, ctor.Arity, argc)
		}
	}
	ast.WalkExpr(expr, func(e ast.Expr) {
		switch e := e.(type) {
		case *ast.Construct:
			check(e, e.Ctor, len(e.Args))
		case *ast.Match:
			for i := range e.Cases {
				c := &e.Cases[i]
				check(e, c.Ctor, len(c.Vars))
			}
		}
	})
	return firstErr
}
