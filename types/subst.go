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

import (
	"github.com/benbjohnson/immutable"
)

var emptySubst = immutable.NewSortedMap(nil)

// EmptySubst is the substitution with no bindings.
var EmptySubst = Subst{emptySubst}

// Subst contains immutable mappings from type-variable ids to types.
// Substitutions are built incrementally by unification; extending a
// substitution returns a new value sharing structure with the old one,
// so callers own all state. A substitution never contains a cycle
// (the unifier's occurs check rejects them before binding).
type Subst struct {
	m *immutable.SortedMap
}

// Get the number of bindings in the substitution.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Bind extends the substitution with id ↦ t.
func (s Subst) Bind(id int, t Type) Subst {
	if s.m == nil {
		return Subst{emptySubst.Set(id, t)}
	}
	return Subst{s.m.Set(id, t)}
}

// Lookup the binding for a type-variable id.
func (s Subst) Lookup(id int) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Resolve chases bindings for a chain of type-variables, returning the
// first type which is not a bound variable.
func (s Subst) Resolve(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, ok := s.Lookup(tv.Id)
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply replaces every bound type-variable in t with its fully-resolved
// binding. Applying a substitution twice yields the same result as
// applying it once.
func (s Subst) Apply(t Type) Type {
	switch t := s.Resolve(t).(type) {
	case *Var:
		return t
	case *Const:
		return t
	case *App:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &App{Name: t.Name, Args: args}
	case *Arrow:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &Arrow{Args: args, Return: s.Apply(t.Return)}
	}
	return t
}

// Iterate over bindings in the substitution, ordered by id.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(id int, t Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}
