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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *App) TypeName() string   { return "App" }
func (t *Arrow) TypeName() string { return "Arrow" }

// Type-variable with a unique id. Variables are immutable; bindings
// live in a Subst rather than in the variable itself.
type Var struct {
	Id int
}

// Create a new type-variable with the given id.
func NewVar(id int) *Var { return &Var{Id: id} }

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Type application: `list[int]`
//
// Arity is fixed per constructor name; the unifier rejects
// applications of the same name with differing argument counts.
type App struct {
	Name string
	Args []Type
}

// Function type: `(int, int) -> int`
type Arrow struct {
	Args   []Type
	Return Type
}

// Equal reports deep structural equality for a pair of types.
// Type-variables are equal iff their ids are equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id

	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name

	case *App:
		b, ok := b.(*App)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true

	case *Arrow:
		b, ok := b.(*Arrow)
		if !ok || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return Equal(a.Return, b.Return)
	}
	return false
}

// RangeFreeVars visits the id of each type-variable occurring in t,
// left to right. If f returns false, the walk stops.
func RangeFreeVars(t Type, f func(id int) bool) bool {
	switch t := t.(type) {
	case *Var:
		return f(t.Id)
	case *App:
		for _, arg := range t.Args {
			if !RangeFreeVars(arg, f) {
				return false
			}
		}
	case *Arrow:
		for _, arg := range t.Args {
			if !RangeFreeVars(arg, f) {
				return false
			}
		}
		return RangeFreeVars(t.Return, f)
	}
	return true
}
