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

// Package format prints parsed declarations in canonical form.
package format

import (
	"fmt"
	"io"
	"iter"

	"go.psl-lang.org/psl/ast"
	"go.psl-lang.org/psl/render"
)

// Project converts a parsed project into a renderable block.
//
// Names, type names and bare values are taken from the parser, which has
// already checked them, and are emitted unquoted.
func Project(p *ast.Project) *render.Project {
	out := render.NewProject(render.NewConstant(p.Name().Name()))
	if doc, ok := p.Documentation(); ok {
		out.Documentation(doc)
	}
	for _, field := range p.Fields() {
		out.PushField(convertField(field))
	}
	for attr := range p.Attributes() {
		out.PushAttribute(render.NewBlockAttribute(convertAttribute(attr)))
	}
	return out
}

// Format writes p to w and returns the output line of each field.
func Format(w io.Writer, p *ast.Project, opts *render.Options) (*ast.FieldMap[int], error) {
	block := Project(p)
	if err := block.EncodeTo(w, opts); err != nil {
		return nil, err
	}
	lines := block.FieldLines()
	out := ast.NewFieldMap[int]()
	for id := range p.Fields() {
		out.Set(id, lines[id])
	}
	return out, nil
}

func convertField(field *ast.Field) *render.Field {
	fieldType := field.FieldType()
	out := render.NewField(
		render.NewConstant(field.Name().Name()),
		render.NewConstant(fieldType.Name().Name()),
	)
	switch fieldType.Arity() {
	case ast.Optional:
		out.Optional()
	case ast.List:
		out.List()
	}
	if doc, ok := field.Documentation(); ok {
		out.Documentation(doc)
	}
	for attr := range field.Attributes() {
		out.PushAttribute(render.NewFieldAttribute(convertAttribute(attr)))
	}
	return out
}

func convertAttribute(attr *ast.Attribute) *render.Function {
	return convertCall(attr.Name(), attr.Arguments())
}

func convertCall(name *ast.Identifier, args iter.Seq[*ast.Argument]) *render.Function {
	fn := render.NewFunction(render.NewConstant(name.Name()))
	for arg := range args {
		value := convertExpression(arg.Value())
		if argName := arg.Name(); argName != nil {
			fn.PushNamedArg(render.NewConstant(argName.Name()), value)
		} else {
			fn.PushArg(value)
		}
	}
	return fn
}

func convertExpression(expr ast.Expression) render.Value {
	switch expr := expr.(type) {
	case *ast.StringValue:
		return render.Text(expr.Get())
	case *ast.NumericValue:
		return render.NewConstant(expr.Raw())
	case *ast.ConstantValue:
		return render.NewConstant(expr.Get())
	case *ast.ArrayExpr:
		var out render.Array
		for item := range expr.Items() {
			out = append(out, convertExpression(item))
		}
		return out
	case *ast.FunctionCall:
		return convertCall(expr.Name(), expr.Arguments())
	}
	panic(fmt.Sprintf("convertExpression: unhandled expression %T", expr))
}
