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

// Unify computes the most general extension of sub which makes a and b
// syntactically equal. Unify is referentially transparent: the input
// substitution is never modified, and callers own all state. On
// failure the input substitution is returned unchanged along with a
// *TypeError classifying the mismatch.
func Unify(a, b types.Type, sub types.Subst) (types.Subst, error) {
	a, b = sub.Resolve(a), sub.Resolve(b)
	if a == b {
		return sub, nil
	}

	// unify type-variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return Unify(b, a, sub)

	case avar != nil:
		if bvar != nil && avar.Id == bvar.Id {
			return sub, nil
		}
		if occursIn(avar.Id, b, sub) {
			return sub, typeErrorf(OccursCheckFailure,
				"type-variable %s occurs in %s", types.TypeString(avar), types.TypeString(sub.Apply(b)))
		}
		return sub.Bind(avar.Id, b), nil
	}

	// unify types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok {
			if a.Name == b.Name {
				return sub, nil
			}
			return sub, typeErrorf(TypeMismatch, "failed to unify %s with %s", a.Name, b.Name)
		}

	case *types.App:
		b, ok := b.(*types.App)
		if !ok {
			break
		}
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return sub, typeErrorf(ConstructorMismatch,
				"failed to unify %s with %s", types.TypeString(sub.Apply(a)), types.TypeString(sub.Apply(b)))
		}
		var err error
		for i := range a.Args {
			if sub, err = Unify(a.Args[i], b.Args[i], sub); err != nil {
				return sub, err
			}
		}
		return sub, nil

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		if len(a.Args) != len(b.Args) {
			return sub, typeErrorf(TypeMismatch, "cannot unify functions with differing arity")
		}
		var err error
		for i := range a.Args {
			if sub, err = Unify(a.Args[i], b.Args[i], sub); err != nil {
				return sub, err
			}
		}
		return Unify(a.Return, b.Return, sub)
	}

	return sub, typeErrorf(TypeMismatch,
		"failed to unify %s with %s", types.TypeString(sub.Apply(a)), types.TypeString(sub.Apply(b)))
}

// occursIn reports whether the type-variable id occurs in t, resolving
// bound variables through sub. Binding a variable to a type containing
// itself would produce an infinite type.
func occursIn(id int, t types.Type, sub types.Subst) bool {
	switch t := sub.Resolve(t).(type) {
	case *types.Var:
		return t.Id == id
	case *types.App:
		for _, arg := range t.Args {
			if occursIn(id, arg, sub) {
				return true
			}
		}
	case *types.Arrow:
		for _, arg := range t.Args {
			if occursIn(id, arg, sub) {
				return true
			}
		}
		return occursIn(id, t.Return, sub)
	}
	return false
}
