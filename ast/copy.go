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

// CopyExpr returns a deep copy of e. Sub-expressions in the copy have
// unique addresses, so the copy is safe to annotate in place.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *IntLit:
		return &IntLit{e.Value, e.inferred}

	case *BoolLit:
		return &BoolLit{e.Value, e.inferred}

	case *Var:
		return &Var{e.Name, e.inferred}

	case *Call:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &Call{CopyExpr(e.Func), args, e.inferred}

	case *Func:
		return &Func{e.ArgNames, CopyExpr(e.Body), e.inferred}

	case *Let:
		return &Let{e.Var, CopyExpr(e.Value), CopyExpr(e.Body)}

	case *Construct:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &Construct{e.Ctor, args, e.inferred}

	case *Match:
		cases := make([]MatchCase, len(e.Cases))
		for i, c := range e.Cases {
			cases[i] = MatchCase{c.Ctor, c.Vars, CopyExpr(c.Value)}
		}
		return &Match{CopyExpr(e.Value), cases, e.inferred}
	}
	panic("unknown expression type: " + e.ExprName())
}
