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
)

// ErrorCode classifies inference failures. All are fatal to the
// inference call which produced them; no partial types are returned.
type ErrorCode int

const (
	// A type-variable would be unified with a type containing itself.
	OccursCheckFailure ErrorCode = iota
	// Constructed types with differing constructor names or arity.
	ConstructorMismatch
	// Base types or type shapes which cannot be made equal.
	TypeMismatch
	// A variable or constructor is not bound in the environment.
	UnboundVariable
	// Match branches do not unify to a single result type.
	BranchTypeMismatch
)

func (c ErrorCode) String() string {
	switch c {
	case OccursCheckFailure:
		return "OccursCheckFailure"
	case ConstructorMismatch:
		return "ConstructorMismatch"
	case TypeMismatch:
		return "TypeMismatch"
	case UnboundVariable:
		return "UnboundVariable"
	case BranchTypeMismatch:
		return "BranchTypeMismatch"
	}
	return "Unknown"
}

// TypeError is an inference failure with a classifying code.
type TypeError struct {
	Code ErrorCode
	Msg  string
}

func (e *TypeError) Error() string { return e.Msg }

func typeErrorf(code ErrorCode, format string, args ...interface{}) *TypeError {
	return &TypeError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// ErrorCodeOf returns the code of a TypeError, or ok=false for any
// other error.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	te, ok := err.(*TypeError)
	if !ok {
		return 0, false
	}
	return te.Code, true
}

// EvalError indicates an invariant violation during evaluation of an
// expression which should have been rejected by inference. These are
// defects, not recoverable conditions.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string { return e.Msg }

func evalErrorf(format string, args ...interface{}) *EvalError {
	return &EvalError{Msg: fmt.Sprintf(format, args...)}
}
