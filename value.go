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
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/rowanlang/rowan/ast"
	"github.com/samber/lo"
)

// Value is the base for all runtime values.
type Value interface {
	ValueName() string
}

func (Int) ValueName() string      { return "int" }
func (Bool) ValueName() string     { return "bool" }
func (*Closure) ValueName() string { return "closure" }
func (*Data) ValueName() string    { return "data" }
func (*Builtin) ValueName() string { return "builtin" }

// Integer value
type Int int64

// Boolean value
type Bool bool

// Closure pairs a function body with the environment captured at the
// point of abstraction. The environment is shared by reference and
// never mutated after capture.
type Closure struct {
	ArgNames []string
	Body     ast.Expr
	Env      Env
}

// Data is a constructed value: a constructor tag with an ordered
// sequence of argument values.
type Data struct {
	Ctor string
	Args []Value
}

// Builtin is a host function value.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

// Env maps variable names to values. Environments are persistent:
// Bind returns a new environment sharing structure with the old one,
// so closure capture is a pointer copy and bindings installed in one
// scope are invisible to its siblings.
type Env struct {
	m *immutable.Map
}

var emptyEnv = immutable.NewMap(nil)

// Create an empty value environment.
func NewEnv() Env { return Env{m: emptyEnv} }

// Bind returns a new environment extended with name ↦ v, shadowing any
// existing binding for name.
func (e Env) Bind(name string, v Value) Env {
	if e.m == nil {
		return Env{m: emptyEnv.Set(name, v)}
	}
	return Env{m: e.m.Set(name, v)}
}

// Lookup the value bound to name.
func (e Env) Lookup(name string) (Value, bool) {
	if e.m == nil {
		return nil, false
	}
	v, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// ValueString returns a printable representation of a runtime value.
// List values print in bracket form: `[1, 2, 3]`.
func ValueString(v Value) string {
	switch v := v.(type) {
	case Int:
		return strconv.FormatInt(int64(v), 10)

	case Bool:
		return strconv.FormatBool(bool(v))

	case *Closure:
		return "<fun>"

	case *Builtin:
		return "<builtin " + v.Name + ">"

	case *Data:
		if v.Ctor == "nil" || v.Ctor == "cons" {
			elems, err := ListElems(v)
			if err == nil {
				names := lo.Map(elems, func(e Value, _ int) string { return ValueString(e) })
				return "[" + strings.Join(names, ", ") + "]"
			}
		}
		if len(v.Args) == 0 {
			return v.Ctor + "()"
		}
		args := lo.Map(v.Args, func(a Value, _ int) string { return ValueString(a) })
		return v.Ctor + "(" + strings.Join(args, ", ") + ")"
	}
	return "<unknown>"
}

// ListValue builds a list value (a chain of cons cells) from elems.
func ListValue(elems ...Value) Value {
	var list Value = &Data{Ctor: "nil"}
	for i := len(elems) - 1; i >= 0; i-- {
		list = &Data{Ctor: "cons", Args: []Value{elems[i], list}}
	}
	return list
}

// ListElems flattens a chain of cons cells into a slice, preserving
// element order.
func ListElems(v Value) ([]Value, error) {
	var elems []Value
	for {
		data, ok := v.(*Data)
		if !ok {
			return nil, evalErrorf("expected a list value, got %s", v.ValueName())
		}
		switch data.Ctor {
		case "nil":
			return elems, nil
		case "cons":
			if len(data.Args) != 2 {
				return nil, evalErrorf("malformed cons cell with %d arguments", len(data.Args))
			}
			elems = append(elems, data.Args[0])
			v = data.Args[1]
		default:
			return nil, evalErrorf("expected a list value, got constructor %s", data.Ctor)
		}
	}
}
