package ast

import (
	"strconv"
	"strings"
)

func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *IntLit:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		for i, arg := range et.ArgNames {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(arg)
		}
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, false, et.Value)
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Construct:
		sb.WriteString(et.Ctor)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Match:
		sb.WriteString("match ")
		exprString(sb, false, et.Value)
		sb.WriteString(" {")
		for i, c := range et.Cases {
			if i > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			sb.WriteString(c.Ctor)
			sb.WriteByte('(')
			for j, v := range c.Vars {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(v)
			}
			sb.WriteString(") -> ")
			exprString(sb, false, c.Value)
		}
		sb.WriteString(" }")
	}
}
