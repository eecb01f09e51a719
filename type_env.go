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

// TypeEnv is a type-environment containing mappings from identifiers
// to declared type schemes and from constructor names to constructor
// declarations. Child environments shadow parent bindings; bindings
// are add-only within a scope.
//
// A type-environment cannot be used concurrently for inference; to
// share a type-environment across threads, create a new
// type-environment for each thread which inherits from the shared
// environment.
type TypeEnv struct {
	// Next unused type-variable id
	NextVarId int
	// Predeclared schemes in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to declared schemes in the current type-environment
	Types map[string]*types.Scheme
	// Constructors declared in the current type-environment
	Constructors map[string]*Constructor
}

// Constructor is a declared data constructor for a constructed type.
// Its scheme instantiates to an arrow from the argument shapes to the
// constructed type, or to the bare constructed type when the arity is
// zero.
type Constructor struct {
	// Constructor name, e.g. "cons"
	Name string
	// Constructed type name, e.g. "list"
	TypeName string
	// Declared type scheme, e.g. `('a, list['a]) -> list['a]`
	Scheme *types.Scheme
	// Number of arguments
	Arity int
}

// Create a type-environment. The new environment will inherit bindings
// from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	env := &TypeEnv{
		Parent: parent,
		Types:  make(map[string]*types.Scheme),
	}
	if parent != nil {
		env.NextVarId = parent.NextVarId
	}
	return env
}

func (e *TypeEnv) freshId() int {
	id := e.NextVarId
	e.NextVarId++
	return id
}

// Create a generic type-variable with a unique id, for use in declared
// schemes.
func (e *TypeEnv) NewGenericVar() *types.Var { return types.NewVar(e.freshId()) }

// Declare a type for an identifier within the type environment. All
// type-variables occurring in t are generalized.
func (e *TypeEnv) Declare(name string, t types.Type) {
	e.Types[name] = types.Generalize(t)
}

// Declare a monomorphic type for an identifier within the type
// environment. Type-variables will not be generalized.
func (e *TypeEnv) DeclareInvariant(name string, t types.Type) {
	e.Types[name] = types.MonoScheme(t)
}

// Remove the assigned scheme for an identifier within the type
// environment. Parent environment(s) will not be affected, and the
// identifier's scheme will still be visible if declared in a parent
// environment.
func (e *TypeEnv) Remove(name string) { delete(e.Types, name) }

// Lookup the scheme for an identifier in the environment or its parent
// environment(s).
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	if s, ok := e.Types[name]; ok {
		return s, true
	}
	if e.Parent == nil {
		return nil, false
	}
	return e.Parent.Lookup(name)
}

// Declare a data constructor for a constructed type within the type
// environment. args holds the argument type shapes and result the
// constructed type they build; free type-variables in both are
// generalized. The constructor is also declared as a first-class
// function value under the same name.
//
// Constructor declarations are scoped to the environment: there is no
// process-wide constructor registry.
func (e *TypeEnv) DeclareConstructor(name, typeName string, args []types.Type, result *types.App) *Constructor {
	var t types.Type = result
	if len(args) > 0 {
		t = &types.Arrow{Args: args, Return: result}
	}
	scheme := types.Generalize(t)
	ctor := &Constructor{Name: name, TypeName: typeName, Scheme: scheme, Arity: len(args)}
	if e.Constructors == nil {
		e.Constructors = make(map[string]*Constructor)
	}
	e.Constructors[name] = ctor
	e.Types[name] = scheme
	return ctor
}

// Lookup a declared constructor in the environment or its parent
// environment(s).
func (e *TypeEnv) LookupConstructor(name string) (*Constructor, bool) {
	if e.Constructors != nil {
		if ctor, ok := e.Constructors[name]; ok {
			return ctor, true
		}
	}
	if e.Parent == nil {
		return nil, false
	}
	return e.Parent.LookupConstructor(name)
}
