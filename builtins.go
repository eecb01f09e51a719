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
	"github.com/rowanlang/rowan/types"
)

// Base types
var (
	IntType  = &types.Const{Name: "int"}
	BoolType = &types.Const{Name: "bool"}
)

// Builtins returns a type environment declaring the standard
// constructors and functions:
//
//	nil  : list['a]
//	cons : ('a, list['a]) -> list['a]
//	None : option['a]
//	Some : 'a -> option['a]
//	pair : ('a, 'b) -> pair['a, 'b]
//
//	mapList : ('a -> 'b, list['a]) -> list['b]
//	filter  : ('a -> bool, list['a]) -> list['a]
//	foldr   : (('a, 'b) -> 'b, 'b, list['a]) -> 'b
//	fst     : pair['a, 'b] -> 'a
//	snd     : pair['a, 'b] -> 'b
//	append  : (list['a], list['a]) -> list['a]
//	length  : list['a] -> int
//	add, eq : (int, int) -> ...
//	odd     : int -> bool
//
// Callers extend the environment with further constructed types via
// DeclareConstructor; there is no global registry.
func Builtins() *TypeEnv {
	env := NewTypeEnv(nil)

	listOf := func(t types.Type) *types.App {
		return &types.App{Name: "list", Args: []types.Type{t}}
	}

	A := env.NewGenericVar()
	env.DeclareConstructor("nil", "list", nil, listOf(A))
	A = env.NewGenericVar()
	env.DeclareConstructor("cons", "list", []types.Type{A, listOf(A)}, listOf(A))

	A = env.NewGenericVar()
	env.DeclareConstructor("None", "option", nil, &types.App{Name: "option", Args: []types.Type{A}})
	A = env.NewGenericVar()
	env.DeclareConstructor("Some", "option", []types.Type{A}, &types.App{Name: "option", Args: []types.Type{A}})

	A = env.NewGenericVar()
	B := env.NewGenericVar()
	env.DeclareConstructor("pair", "pair", []types.Type{A, B},
		&types.App{Name: "pair", Args: []types.Type{A, B}})

	A, B = env.NewGenericVar(), env.NewGenericVar()
	env.Declare("mapList", &types.Arrow{
		Args:   []types.Type{&types.Arrow{Args: []types.Type{A}, Return: B}, listOf(A)},
		Return: listOf(B),
	})
	A = env.NewGenericVar()
	env.Declare("filter", &types.Arrow{
		Args:   []types.Type{&types.Arrow{Args: []types.Type{A}, Return: BoolType}, listOf(A)},
		Return: listOf(A),
	})
	A, B = env.NewGenericVar(), env.NewGenericVar()
	env.Declare("foldr", &types.Arrow{
		Args:   []types.Type{&types.Arrow{Args: []types.Type{A, B}, Return: B}, B, listOf(A)},
		Return: B,
	})
	A, B = env.NewGenericVar(), env.NewGenericVar()
	env.Declare("fst", &types.Arrow{
		Args:   []types.Type{&types.App{Name: "pair", Args: []types.Type{A, B}}},
		Return: A,
	})
	A, B = env.NewGenericVar(), env.NewGenericVar()
	env.Declare("snd", &types.Arrow{
		Args:   []types.Type{&types.App{Name: "pair", Args: []types.Type{A, B}}},
		Return: B,
	})
	A = env.NewGenericVar()
	env.Declare("append", &types.Arrow{Args: []types.Type{listOf(A), listOf(A)}, Return: listOf(A)})
	A = env.NewGenericVar()
	env.Declare("length", &types.Arrow{Args: []types.Type{listOf(A)}, Return: IntType})
	env.Declare("add", &types.Arrow{Args: []types.Type{IntType, IntType}, Return: IntType})
	env.Declare("eq", &types.Arrow{Args: []types.Type{IntType, IntType}, Return: BoolType})
	env.Declare("odd", &types.Arrow{Args: []types.Type{IntType}, Return: BoolType})

	return env
}

// BuiltinEnv returns the value environment matching Builtins().
func BuiltinEnv() Env {
	env := NewEnv()
	env = env.Bind("nil", &Data{Ctor: "nil"})
	env = env.Bind("cons", ctorValue("cons", 2))
	env = env.Bind("None", &Data{Ctor: "None"})
	env = env.Bind("Some", ctorValue("Some", 1))
	env = env.Bind("pair", ctorValue("pair", 2))

	env = env.Bind("mapList", &Builtin{Name: "mapList", Arity: 2, Fn: func(args []Value) (Value, error) {
		return mapValues(args[0], args[1])
	}})
	env = env.Bind("filter", &Builtin{Name: "filter", Arity: 2, Fn: func(args []Value) (Value, error) {
		return filterValues(args[0], args[1])
	}})
	env = env.Bind("foldr", &Builtin{Name: "foldr", Arity: 3, Fn: func(args []Value) (Value, error) {
		return foldRight(args[0], args[1], args[2])
	}})
	env = env.Bind("fst", &Builtin{Name: "fst", Arity: 1, Fn: func(args []Value) (Value, error) {
		return pairArg(args[0], 0)
	}})
	env = env.Bind("snd", &Builtin{Name: "snd", Arity: 1, Fn: func(args []Value) (Value, error) {
		return pairArg(args[0], 1)
	}})
	env = env.Bind("append", &Builtin{Name: "append", Arity: 2, Fn: func(args []Value) (Value, error) {
		front, err := ListElems(args[0])
		if err != nil {
			return nil, err
		}
		back, err := ListElems(args[1])
		if err != nil {
			return nil, err
		}
		return ListValue(append(front[:len(front):len(front)], back...)...), nil
	}})
	env = env.Bind("length", &Builtin{Name: "length", Arity: 1, Fn: func(args []Value) (Value, error) {
		elems, err := ListElems(args[0])
		if err != nil {
			return nil, err
		}
		return Int(len(elems)), nil
	}})
	env = env.Bind("add", intBuiltin("add", func(a, b Int) Value { return a + b }))
	env = env.Bind("eq", intBuiltin("eq", func(a, b Int) Value { return Bool(a == b) }))
	env = env.Bind("odd", &Builtin{Name: "odd", Arity: 1, Fn: func(args []Value) (Value, error) {
		n, ok := args[0].(Int)
		if !ok {
			return nil, evalErrorf("odd applied to %s", args[0].ValueName())
		}
		return Bool(n%2 != 0), nil
	}})
	return env
}

// ctorValue makes a constructor usable as a first-class function.
func ctorValue(name string, arity int) *Builtin {
	return &Builtin{Name: name, Arity: arity, Fn: func(args []Value) (Value, error) {
		return &Data{Ctor: name, Args: args}, nil
	}}
}

func intBuiltin(name string, f func(a, b Int) Value) *Builtin {
	return &Builtin{Name: name, Arity: 2, Fn: func(args []Value) (Value, error) {
		a, ok := args[0].(Int)
		if !ok {
			return nil, evalErrorf("%s applied to %s", name, args[0].ValueName())
		}
		b, ok := args[1].(Int)
		if !ok {
			return nil, evalErrorf("%s applied to %s", name, args[1].ValueName())
		}
		return f(a, b), nil
	}}
}

// mapValues applies f to each element, preserving order.
func mapValues(f, list Value) (Value, error) {
	data, err := listCell(list)
	if err != nil {
		return nil, err
	}
	if data.Ctor == "nil" {
		return &Data{Ctor: "nil"}, nil
	}
	head, err := Apply(f, []Value{data.Args[0]})
	if err != nil {
		return nil, err
	}
	tail, err := mapValues(f, data.Args[1])
	if err != nil {
		return nil, err
	}
	return &Data{Ctor: "cons", Args: []Value{head, tail}}, nil
}

// filterValues keeps elements satisfying pred, preserving order
// (stable).
func filterValues(pred, list Value) (Value, error) {
	data, err := listCell(list)
	if err != nil {
		return nil, err
	}
	if data.Ctor == "nil" {
		return &Data{Ctor: "nil"}, nil
	}
	keep, err := Apply(pred, []Value{data.Args[0]})
	if err != nil {
		return nil, err
	}
	tail, err := filterValues(pred, data.Args[1])
	if err != nil {
		return nil, err
	}
	if b, ok := keep.(Bool); ok && bool(b) {
		return &Data{Ctor: "cons", Args: []Value{data.Args[0], tail}}, nil
	}
	return tail, nil
}

// foldRight recurses into the tail before applying f to the head and
// the recursive result:
//
//	foldr f init [a; b; c] = f a (f b (f c init))
func foldRight(f, init, list Value) (Value, error) {
	data, err := listCell(list)
	if err != nil {
		return nil, err
	}
	if data.Ctor == "nil" {
		return init, nil
	}
	rest, err := foldRight(f, init, data.Args[1])
	if err != nil {
		return nil, err
	}
	return Apply(f, []Value{data.Args[0], rest})
}

func listCell(v Value) (*Data, error) {
	data, ok := v.(*Data)
	if !ok || (data.Ctor != "nil" && data.Ctor != "cons") {
		return nil, evalErrorf("expected a list value, got %s", v.ValueName())
	}
	if data.Ctor == "cons" && len(data.Args) != 2 {
		return nil, evalErrorf("malformed cons cell with %d arguments", len(data.Args))
	}
	return data, nil
}

func pairArg(v Value, index int) (Value, error) {
	data, ok := v.(*Data)
	if !ok || data.Ctor != "pair" || len(data.Args) != 2 {
		return nil, evalErrorf("expected a pair value, got %s", ValueString(v))
	}
	return data.Args[index], nil
}
