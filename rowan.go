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

// rowan provides type inference and evaluation for a small functional
// core language with parametric polymorphism.
//
// The type-system is Hindley-Milner with let-polymorphism:
// unification-based inference assigns a principal type to every
// expression, let-bindings are generalized into type schemes, and each
// use site instantiates its scheme with fresh type-variables.
//
// Supported Features:
//
//   - Generic inductive data types (lists, options, pairs) with
//     user-declarable constructors
//   - Higher-order functions and closures
//   - Structural pattern-matching over constructed values
//   - Strict, terminating evaluation (structural recursion only;
//     general recursion is deliberately unsupported)
//   - Concurrent batch checking of independent definitions
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Occurs check: https://en.wikipedia.org/wiki/Occurs_check
package rowan
