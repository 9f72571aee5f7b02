// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Options configures rendering. A nil *Options renders with defaults.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero means 2.
	Indent int
}

const defaultIndent = 2

func (opts *Options) indent() (string, error) {
	width := defaultIndent
	if opts != nil {
		if opts.Indent < 0 {
			return "", fmt.Errorf("Invalid indent width %d: must not be negative", opts.Indent)
		}
		if opts.Indent > 0 {
			width = opts.Indent
		}
	}
	return strings.Repeat(" ", width), nil
}

// FieldAttribute is a field-level attribute, rendered as `@name(args)`.
type FieldAttribute struct {
	fn *Function
}

func NewFieldAttribute(fn *Function) *FieldAttribute {
	return &FieldAttribute{fn}
}

func (a *FieldAttribute) String() string {
	return renderAttribute("@", a.fn)
}

// BlockAttribute is a declaration-level attribute, rendered as
// `@@name(args)`.
type BlockAttribute struct {
	fn *Function
}

func NewBlockAttribute(fn *Function) *BlockAttribute {
	return &BlockAttribute{fn}
}

func (a *BlockAttribute) String() string {
	return renderAttribute("@@", a.fn)
}

func renderAttribute(prefix string, fn *Function) string {
	var buf strings.Builder
	buf.WriteString(prefix)
	buf.WriteString(AsStr(fn.name))
	if len(fn.args) > 0 {
		fn.writeArgs(&buf)
	}
	return buf.String()
}

type fieldArity uint8

const (
	arityRequired fieldArity = iota
	arityOptional
	arityList
)

type Field struct {
	name          Constant[string]
	typeName      Constant[string]
	arity         fieldArity
	documentation string
	attributes    []*FieldAttribute
}

func NewField(name, typeName Constant[string]) *Field {
	return &Field{name: name, typeName: typeName}
}

func (f *Field) Optional() {
	f.arity = arityOptional
}

func (f *Field) List() {
	f.arity = arityList
}

func (f *Field) Documentation(text string) {
	f.documentation = text
}

func (f *Field) PushAttribute(attr *FieldAttribute) {
	f.attributes = append(f.attributes, attr)
}

func (f *Field) typeString() string {
	switch f.arity {
	case arityOptional:
		return AsStr(f.typeName) + "?"
	case arityList:
		return AsStr(f.typeName) + "[]"
	}
	return AsStr(f.typeName)
}

// Project is a `project` block under construction.
type Project struct {
	name          Constant[string]
	documentation string
	fields        []*Field
	attributes    []*BlockAttribute
}

func NewProject(name Constant[string]) *Project {
	return &Project{name: name}
}

func (p *Project) Documentation(text string) {
	p.documentation = text
}

func (p *Project) PushField(field *Field) {
	p.fields = append(p.fields, field)
}

func (p *Project) PushAttribute(attr *BlockAttribute) {
	p.attributes = append(p.attributes, attr)
}

func (p *Project) String() string {
	var buf strings.Builder
	p.EncodeTo(&buf, nil)
	return buf.String()
}

// FieldLines returns the 1-based output line of each field's declaration,
// in the order the fields were pushed.
func (p *Project) FieldLines() []int {
	out := make([]int, 0, len(p.fields))
	line := docLineCount(p.documentation) + 1
	for _, field := range p.fields {
		line += docLineCount(field.documentation) + 1
		out = append(out, line)
	}
	return out
}

func (p *Project) EncodeTo(w io.Writer, opts *Options) error {
	indent, err := opts.indent()
	if err != nil {
		return err
	}
	e := encoder{w: w, indentStr: indent}
	e.doc(p.documentation)
	e.linef("project %s {", p.name)
	e.indent += 1

	var nameWidth, typeWidth int
	for _, field := range p.fields {
		nameWidth = max(nameWidth, utf8.RuneCountInString(AsStr(field.name)))
		typeWidth = max(typeWidth, utf8.RuneCountInString(field.typeString()))
	}
	for _, field := range p.fields {
		e.doc(field.documentation)
		if len(field.attributes) == 0 {
			e.linef("%-*s %s", nameWidth, field.name, field.typeString())
			continue
		}
		attrs := make([]string, 0, len(field.attributes))
		for _, attr := range field.attributes {
			attrs = append(attrs, attr.String())
		}
		e.linef(
			"%-*s %-*s %s",
			nameWidth, field.name,
			typeWidth, field.typeString(),
			strings.Join(attrs, " "),
		)
	}

	if len(p.attributes) > 0 && len(p.fields) > 0 {
		e.line("")
	}
	for _, attr := range p.attributes {
		e.line(attr.String())
	}

	e.indent -= 1
	e.line("}")
	return e.err
}

func docLineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

type encoder struct {
	w         io.Writer
	indentStr string
	indent    int
	err       error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	s = strings.TrimRight(s, " ")
	if s != "" {
		if indent := strings.Repeat(e.indentStr, e.indent); indent != "" {
			if _, err := io.WriteString(e.w, indent); err != nil {
				e.err = err
				return
			}
		}
		if _, err := io.WriteString(e.w, s); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) doc(text string) {
	if text == "" {
		return
	}
	for _, docLine := range strings.Split(text, "\n") {
		if docLine == "" {
			e.line("///")
		} else {
			e.line("/// " + docLine)
		}
	}
}
