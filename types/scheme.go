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
	"golang.org/x/exp/slices"
)

// Scheme pairs a type with the set of type-variable ids which are
// universally quantified ("generic") relative to it. Schemes are
// produced by generalization at let/definition boundaries and
// instantiated with fresh variables at each use site.
type Scheme struct {
	// Quantified type-variable ids, sorted and deduplicated.
	Vars []int
	Type Type
}

// Create a scheme quantifying the given variable ids over t.
func NewScheme(vars []int, t Type) *Scheme {
	slices.Sort(vars)
	return &Scheme{Vars: slices.Compact(vars), Type: t}
}

// Create a scheme with no quantified variables.
func MonoScheme(t Type) *Scheme { return &Scheme{Type: t} }

// IsMono reports whether the scheme quantifies no variables.
func (s *Scheme) IsMono() bool { return len(s.Vars) == 0 }

// Quantifies reports whether id is quantified by the scheme.
func (s *Scheme) Quantifies(id int) bool {
	_, found := slices.BinarySearch(s.Vars, id)
	return found
}

func (s *Scheme) String() string { return TypeString(s.Type) }

// Generalize quantifies every type-variable occurring in t.
// Declared (built-in) types are closed over the environment, so all
// of their variables are generic.
func Generalize(t Type) *Scheme {
	var vars []int
	RangeFreeVars(t, func(id int) bool {
		vars = append(vars, id)
		return true
	})
	return NewScheme(vars, t)
}
