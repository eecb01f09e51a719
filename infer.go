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
	"fmt"

	"github.com/rowanlang/rowan/ast"
	"github.com/rowanlang/rowan/internal/util"
	"github.com/rowanlang/rowan/types"
)

func (ti *InferenceContext) fresh() *types.Var {
	tv := types.NewVar(ti.nextId)
	ti.nextId++
	return tv
}

// instantiate replaces each quantified variable of the scheme with a
// fresh type-variable, so every use site gets its own copy of a
// generic type.
func (ti *InferenceContext) instantiate(s *types.Scheme) types.Type {
	if s.IsMono() {
		return s.Type
	}
	ti.clearInstLookup()
	for _, id := range s.Vars {
		ti.instLookup[id] = ti.fresh()
	}
	return instantiateType(s.Type, ti.instLookup)
}

func instantiateType(t types.Type, lookup map[int]*types.Var) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if tv, ok := lookup[t.Id]; ok {
			return tv
		}
		return t

	case *types.Const:
		return t

	case *types.App:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = instantiateType(arg, lookup)
		}
		return &types.App{Name: t.Name, Args: args}

	case *types.Arrow:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = instantiateType(arg, lookup)
		}
		return &types.Arrow{Args: args, Return: instantiateType(t.Return, lookup)}
	}
	panic("unexpected type " + t.TypeName())
}

// generalize quantifies every type-variable which appears in t but not
// free in env, after applying the accumulated substitution to both.
// This is what allows a let-bound generic value to be used at several
// distinct types within the body.
func (ti *InferenceContext) generalize(env *TypeEnv, t types.Type) *types.Scheme {
	t = ti.sub.Apply(t)
	envFree := util.NewIntDedupeMap()
	ti.freeEnvVars(env, envFree)
	var vars []int
	types.RangeFreeVars(t, func(id int) bool {
		if !envFree[id] {
			vars = append(vars, id)
		}
		return true
	})
	envFree.Release()
	return types.NewScheme(vars, t)
}

func (ti *InferenceContext) freeEnvVars(env *TypeEnv, seen util.IntDedupeMap) {
	for ; env != nil; env = env.Parent {
		for _, scheme := range env.Types {
			sc := scheme
			types.RangeFreeVars(ti.sub.Apply(sc.Type), func(id int) bool {
				if !sc.Quantifies(id) {
					seen[id] = true
				}
				return true
			})
		}
	}
}

func (ti *InferenceContext) unify(e ast.Expr, a, b types.Type) error {
	sub, err := Unify(a, b, ti.sub)
	ti.sub = sub
	if err != nil {
		ti.invalid, ti.err = e, err
	}
	return err
}

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		if ti.annotate {
			e.SetType(IntType)
		}
		return IntType, nil

	case *ast.BoolLit:
		if ti.annotate {
			e.SetType(BoolType)
		}
		return BoolType, nil

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			ti.invalid, ti.err = e, typeErrorf(UnboundVariable, "variable %s not found", e.Name)
			return nil, ti.err
		}
		t := ti.instantiate(scheme)
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Func:
		child := NewTypeEnv(env)
		args := make([]types.Type, len(e.ArgNames))
		for i, name := range e.ArgNames {
			// parameters are monomorphic within the body
			tv := ti.fresh()
			args[i] = tv
			child.Types[name] = types.MonoScheme(tv)
		}
		ret, err := ti.infer(child, e.Body)
		if err != nil {
			return nil, err
		}
		t := &types.Arrow{Args: args, Return: ret}
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Call:
		ft, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			if args[i], err = ti.infer(env, arg); err != nil {
				return nil, err
			}
		}
		ret := ti.fresh()
		if err := ti.unify(e, ft, &types.Arrow{Args: args, Return: ret}); err != nil {
			return nil, err
		}
		if ti.annotate {
			e.SetType(ret)
		}
		return ret, nil

	case *ast.Let:
		vt, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		child := NewTypeEnv(env)
		child.Types[e.Var] = ti.generalize(env, vt)
		return ti.infer(child, e.Body)

	case *ast.Construct:
		arrow, err := ti.inferConstructor(env, e, e.Ctor, len(e.Args))
		if err != nil {
			return nil, err
		}
		for i, arg := range e.Args {
			at, err := ti.infer(env, arg)
			if err != nil {
				return nil, err
			}
			if err := ti.unify(e, arrow.Args[i], at); err != nil {
				return nil, err
			}
		}
		if ti.annotate {
			e.SetType(arrow.Return)
		}
		return arrow.Return, nil

	case *ast.Match:
		mt, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		if len(e.Cases) == 0 {
			ti.invalid, ti.err = e, typeErrorf(TypeMismatch, "match expression has no cases")
			return nil, ti.err
		}
		ret := ti.fresh()
		for i := range e.Cases {
			c := &e.Cases[i]
			arrow, err := ti.inferConstructor(env, e, c.Ctor, len(c.Vars))
			if err != nil {
				return nil, err
			}
			// the scrutinee must be the constructed type the pattern implies
			if err := ti.unify(e, mt, arrow.Return); err != nil {
				return nil, err
			}
			child := NewTypeEnv(env)
			for j, name := range c.Vars {
				child.Types[name] = types.MonoScheme(arrow.Args[j])
			}
			bt, err := ti.infer(child, c.Value)
			if err != nil {
				return nil, err
			}
			sub, uerr := Unify(ret, bt, ti.sub)
			ti.sub = sub
			if uerr != nil {
				// ret is fresh, so a failure here means the branches disagree
				ti.invalid, ti.err = e, typeErrorf(BranchTypeMismatch,
					"branch %s returns a conflicting type: %s", c.Ctor, uerr)
				return nil, ti.err
			}
		}
		if ti.annotate {
			e.SetType(ret)
		}
		return ret, nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	ti.invalid, ti.err = e, fmt.Errorf("unhandled expression %s", exprName)
	return nil, ti.err
}

// inferConstructor looks up and instantiates the declared scheme for a
// constructor, normalized to arrow form. argc must match the declared
// arity.
func (ti *InferenceContext) inferConstructor(env *TypeEnv, e ast.Expr, name string, argc int) (*types.Arrow, error) {
	ctor, ok := env.LookupConstructor(name)
	if !ok {
		ti.invalid, ti.err = e, typeErrorf(UnboundVariable, "constructor %s not declared", name)
		return nil, ti.err
	}
	if ctor.Arity != argc {
		ti.invalid, ti.err = e, typeErrorf(ConstructorMismatch,
			"constructor %s expects %d arguments, got %d", name, ctor.Arity, argc)
		return nil, ti.err
	}
	switch inst := ti.instantiate(ctor.Scheme).(type) {
	case *types.Arrow:
		return inst, nil
	case *types.App:
		return &types.Arrow{Return: inst}, nil
	}
	ti.invalid, ti.err = e, fmt.Errorf("malformed scheme declared for constructor %s", name)
	return nil, ti.err
}
