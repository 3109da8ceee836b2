// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"strconv"
	"strings"
)

// expr is a GLSL expression fragment. The operand mappings build small trees
// of these and print them once with glsl.
type expr interface {
	write(b *strings.Builder)
}

// ident is printed verbatim. It is used for names, literals and swizzled
// names like t_ColorPrev.rgb.
type ident string

type call struct {
	fn   string
	args []expr
}

// infix is always printed in parentheses.
type infix struct {
	op   string
	l, r expr
}

type ternary struct {
	cond, t, f expr
}

// field is a member access or swizzle of an arbitrary expression.
type field struct {
	x    expr
	name string
}

func (e ident) write(b *strings.Builder) { b.WriteString(string(e)) }

func (e call) write(b *strings.Builder) {
	b.WriteString(e.fn)
	b.WriteByte('(')
	for i, a := range e.args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b)
	}
	b.WriteByte(')')
}

func (e infix) write(b *strings.Builder) {
	b.WriteByte('(')
	e.l.write(b)
	b.WriteByte(' ')
	b.WriteString(e.op)
	b.WriteByte(' ')
	e.r.write(b)
	b.WriteByte(')')
}

func (e ternary) write(b *strings.Builder) {
	b.WriteByte('(')
	e.cond.write(b)
	b.WriteString(" ? ")
	e.t.write(b)
	b.WriteString(" : ")
	e.f.write(b)
	b.WriteByte(')')
}

func (e field) write(b *strings.Builder) {
	e.x.write(b)
	b.WriteByte('.')
	b.WriteString(e.name)
}

func fn(name string, args ...expr) expr {
	return call{fn: name, args: args}
}

func op(o string, l, r expr) expr {
	return infix{op: o, l: l, r: r}
}

func glsl(e expr) string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

// glslFloat formats f so that GLSL parses it as a float literal.
func glslFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func float(f float64) expr { return ident(glslFloat(f)) }

func vec3(f float64) expr { return fn("vec3", float(f)) }
