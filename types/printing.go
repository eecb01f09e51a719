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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

type typePrinter struct {
	idNames map[int]string
	sb      strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a canonical string representation of a Type.
// Type-variables are named 'a, 'b, ... in order of first occurrence,
// so structurally equal types print identically regardless of the
// underlying variable ids.
func TypeString(t Type) string {
	p := newTypePrinter()
	p.typeString(false, t)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) varName(id int) string {
	if name, ok := p.idNames[id]; ok {
		return name
	}
	i := len(p.idNames)
	name := "'" + string(rune('a'+i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	p.idNames[id] = name
	return name
}

func (p *typePrinter) typeString(simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(p.varName(t.Id))

	case *Const:
		p.sb.WriteString(t.Name)

	case *App:
		p.sb.WriteString(t.Name)
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(false, arg)
		}
		p.sb.WriteByte(']')

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			p.typeString(true, t.Args[0])
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.typeString(false, arg)
			}
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" -> ")
		p.typeString(false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}
	}
}
