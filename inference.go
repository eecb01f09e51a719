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
	"errors"

	"github.com/rowanlang/rowan/ast"
	"github.com/rowanlang/rowan/types"
)

// InferenceContext is a re-usable context for type inference. Types
// and substitutions are created fresh per inference pass; nothing is
// cached across calls.
type InferenceContext struct {
	sub         types.Subst
	instLookup  map[int]*types.Var // instantiation lookup for quantified variables
	nextId      int
	err         error
	invalid     ast.Expr
	initialized bool
	needsReset  bool
	annotate    bool
}

// Create a new type-inference context. A context may be re-used across
// calls of Infer.
func NewContext() *InferenceContext {
	ti := &InferenceContext{}
	ti.init()
	return ti
}

// Infer the principal type scheme of expr within env. The environment
// is never modified; fresh variable ids restart from env.NextVarId, so
// re-running yields a structurally equal scheme.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (*types.Scheme, error) {
	nocopy := false
	_, scheme, err := ti.inferRoot(expr, env, nocopy)
	return scheme, err
}

// Infer the type of expr within env. The type-annotated copy of expr
// will be returned.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, error) {
	nocopy := false
	ti.annotate = true
	root, _, err := ti.inferRoot(expr, env, nocopy)
	ti.annotate = false
	return root, err
}

// Infer the type of expr within env. Type-annotations will be added
// directly to expr. All sub-expressions of expr must have unique
// addresses.
func (ti *InferenceContext) AnnotateDirect(expr ast.Expr, env *TypeEnv) error {
	nocopy := true
	ti.annotate = true
	_, _, err := ti.inferRoot(expr, env, nocopy)
	ti.annotate = false
	return err
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Reset the state of the context. The context will be reset
// automatically between calls of Infer.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

func (ti *InferenceContext) init() {
	ti.sub, ti.instLookup, ti.initialized = types.EmptySubst, make(map[int]*types.Var, 16), true
}

func (ti *InferenceContext) reset() {
	ti.clearInstLookup()
	ti.sub, ti.err, ti.invalid, ti.needsReset = types.EmptySubst, nil, nil, false
}

func (ti *InferenceContext) clearInstLookup() {
	for id := range ti.instLookup {
		delete(ti.instLookup, id)
	}
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv, nocopy bool) (ast.Expr, *types.Scheme, error) {
	if root == nil {
		return nil, nil, errors.New("empty expression")
	}
	if env == nil {
		env = NewTypeEnv(nil)
	}
	if !nocopy && ti.annotate {
		root = ast.CopyExpr(root)
	}
	if ti.needsReset {
		ti.reset()
	} else if !ti.initialized {
		ti.init()
	}
	ti.nextId = env.NextVarId
	t, err := ti.infer(NewTypeEnv(env), root)
	ti.needsReset = true
	if err != nil {
		return root, nil, err
	}
	scheme := ti.generalize(env, t)
	if ti.annotate {
		resolveAnnotations(root, ti.sub)
	}
	return root, scheme, nil
}

// resolveAnnotations replaces every inferred type recorded on the
// expression tree with its fully-resolved form under the final
// substitution.
func resolveAnnotations(root ast.Expr, sub types.Subst) {
	ast.WalkExpr(root, func(e ast.Expr) {
		switch e := e.(type) {
		case *ast.IntLit:
			e.SetType(sub.Apply(e.Type()))
		case *ast.BoolLit:
			e.SetType(sub.Apply(e.Type()))
		case *ast.Var:
			e.SetType(sub.Apply(e.Type()))
		case *ast.Call:
			e.SetType(sub.Apply(e.Type()))
		case *ast.Func:
			e.SetType(sub.Apply(e.Type()).(*types.Arrow))
		case *ast.Construct:
			e.SetType(sub.Apply(e.Type()))
		case *ast.Match:
			e.SetType(sub.Apply(e.Type()))
		}
	})
}
