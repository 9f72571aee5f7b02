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

// Package ast holds the parsed form of schema declarations.
//
// Nodes are built once by the parser and never modified afterwards. Passes
// that need per-field state keep it in side-tables keyed by [FieldId].
package ast

import (
	"iter"
	"slices"
)

type Span struct {
	start, len uint32
}

func NewSpan(start, len uint32) Span {
	return Span{start, len}
}

func (s Span) Start() uint32 {
	return s.start
}

func (s Span) End() uint32 {
	return s.start + s.len
}

func (s Span) Len() uint32 {
	return s.len
}

type Node interface {
	Span() Span

	ChildNodes() iter.Seq[Node]
}

// Walk visits node and its descendants in pre-order. If walkFn returns
// false the node's children are skipped. After a node's children have been
// visited, walkFn is called with nil.
func Walk(node Node, walkFn func(Node) bool) {
	if node == nil || !walkFn(node) {
		return
	}
	for child := range node.ChildNodes() {
		Walk(child, walkFn)
	}
	walkFn(nil)
}

func iterChildren(childNodes []Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range childNodes {
			if !yield(child) {
				return
			}
		}
	}
}

type leafNode struct{}

func (*leafNode) ChildNodes() iter.Seq[Node] {
	return func(_yield func(Node) bool) {}
}

type Identifier struct {
	leafNode
	name string
	span Span
}

var _ Node = (*Identifier)(nil)

func NewIdentifier(name string, span Span) *Identifier {
	return &Identifier{name: name, span: span}
}

func (n *Identifier) Span() Span {
	return n.span
}

func (n *Identifier) Name() string {
	return n.name
}

// Comment is a doc comment with its `///` markers removed. Consecutive
// comment lines are joined with '\n'.
type Comment struct {
	leafNode
	text string
	span Span
}

var _ Node = (*Comment)(nil)

func NewComment(text string, span Span) *Comment {
	return &Comment{text: text, span: span}
}

func (n *Comment) Span() Span {
	return n.span
}

func (n *Comment) Text() string {
	return n.text
}

type Expression interface {
	Node
	isExpression()
}

type StringValue struct {
	leafNode
	value string
	span  Span
}

var _ Expression = (*StringValue)(nil)

func NewStringValue(value string, span Span) *StringValue {
	return &StringValue{value: value, span: span}
}

func (n *StringValue) Span() Span {
	return n.span
}

func (*StringValue) isExpression() {}

// Get returns the unescaped string contents.
func (n *StringValue) Get() string {
	return n.value
}

type NumericValue struct {
	leafNode
	raw  string
	span Span
}

var _ Expression = (*NumericValue)(nil)

func NewNumericValue(raw string, span Span) *NumericValue {
	return &NumericValue{raw: raw, span: span}
}

func (n *NumericValue) Span() Span {
	return n.span
}

func (*NumericValue) isExpression() {}

func (n *NumericValue) Raw() string {
	return n.raw
}

// ConstantValue is a bare word in value position, such as an enum variant
// or `true`.
type ConstantValue struct {
	leafNode
	value string
	span  Span
}

var _ Expression = (*ConstantValue)(nil)

func NewConstantValue(value string, span Span) *ConstantValue {
	return &ConstantValue{value: value, span: span}
}

func (n *ConstantValue) Span() Span {
	return n.span
}

func (*ConstantValue) isExpression() {}

func (n *ConstantValue) Get() string {
	return n.value
}

type ArrayExpr struct {
	items []Expression
	span  Span
}

var _ Expression = (*ArrayExpr)(nil)

func NewArrayExpr(items []Expression, span Span) *ArrayExpr {
	return &ArrayExpr{items: slices.Clone(items), span: span}
}

func (n *ArrayExpr) Span() Span {
	return n.span
}

func (n *ArrayExpr) ChildNodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, item := range n.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (*ArrayExpr) isExpression() {}

func (n *ArrayExpr) Items() iter.Seq[Expression] {
	return slices.Values(n.items)
}

type FunctionCall struct {
	name *Identifier
	args []*Argument
	span Span
}

var _ Expression = (*FunctionCall)(nil)

func NewFunctionCall(name *Identifier, args []*Argument, span Span) *FunctionCall {
	return &FunctionCall{name: name, args: slices.Clone(args), span: span}
}

func (n *FunctionCall) Span() Span {
	return n.span
}

func (n *FunctionCall) ChildNodes() iter.Seq[Node] {
	return iterChildren(argumentNodes(n.name, n.args))
}

func (*FunctionCall) isExpression() {}

func (n *FunctionCall) Name() *Identifier {
	return n.name
}

func (n *FunctionCall) Arguments() iter.Seq[*Argument] {
	return slices.Values(n.args)
}

type Argument struct {
	name  *Identifier
	value Expression
	span  Span
}

var _ Node = (*Argument)(nil)

// NewArgument builds an argument. name is nil for positional arguments.
func NewArgument(name *Identifier, value Expression, span Span) *Argument {
	return &Argument{name: name, value: value, span: span}
}

func (n *Argument) Span() Span {
	return n.span
}

func (n *Argument) ChildNodes() iter.Seq[Node] {
	var childNodes []Node
	if n.name != nil {
		childNodes = append(childNodes, n.name)
	}
	return iterChildren(append(childNodes, n.value))
}

func (n *Argument) Name() *Identifier {
	return n.name
}

func (n *Argument) Value() Expression {
	return n.value
}

type Attribute struct {
	name *Identifier
	args []*Argument
	span Span
}

var _ Node = (*Attribute)(nil)

func NewAttribute(name *Identifier, args []*Argument, span Span) *Attribute {
	return &Attribute{name: name, args: slices.Clone(args), span: span}
}

func (n *Attribute) Span() Span {
	return n.span
}

func (n *Attribute) ChildNodes() iter.Seq[Node] {
	return iterChildren(argumentNodes(n.name, n.args))
}

func (n *Attribute) Name() *Identifier {
	return n.name
}

func (n *Attribute) Arguments() iter.Seq[*Argument] {
	return slices.Values(n.args)
}

func (n *Attribute) ArgumentCount() int {
	return len(n.args)
}

func argumentNodes(name *Identifier, args []*Argument) []Node {
	childNodes := make([]Node, 0, len(args)+1)
	childNodes = append(childNodes, name)
	for _, arg := range args {
		childNodes = append(childNodes, arg)
	}
	return childNodes
}

type Arity uint8

const (
	Required Arity = iota
	Optional
	List
)

func (a Arity) String() string {
	switch a {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case List:
		return "list"
	}
	return "Arity(?)"
}

type FieldType struct {
	name  *Identifier
	arity Arity
	span  Span
}

var _ Node = (*FieldType)(nil)

func NewFieldType(name *Identifier, arity Arity, span Span) *FieldType {
	return &FieldType{name: name, arity: arity, span: span}
}

func (n *FieldType) Span() Span {
	return n.span
}

func (n *FieldType) ChildNodes() iter.Seq[Node] {
	return iterChildren([]Node{n.name})
}

func (n *FieldType) Name() *Identifier {
	return n.name
}

func (n *FieldType) Arity() Arity {
	return n.arity
}

type Field struct {
	childNodes    []Node
	name          *Identifier
	fieldType     *FieldType
	attributes    []*Attribute
	documentation *Comment
	span          Span
}

var _ Node = (*Field)(nil)

func NewField(
	name *Identifier,
	fieldType *FieldType,
	attributes []*Attribute,
	documentation *Comment,
	span Span,
) *Field {
	n := &Field{
		name:          name,
		fieldType:     fieldType,
		attributes:    slices.Clone(attributes),
		documentation: documentation,
		span:          span,
	}
	if documentation != nil {
		n.childNodes = append(n.childNodes, documentation)
	}
	n.childNodes = append(n.childNodes, name, fieldType)
	for _, attr := range n.attributes {
		n.childNodes = append(n.childNodes, attr)
	}
	return n
}

func (n *Field) Span() Span {
	return n.span
}

func (n *Field) ChildNodes() iter.Seq[Node] {
	return iterChildren(n.childNodes)
}

func (n *Field) Name() *Identifier {
	return n.name
}

func (n *Field) FieldType() *FieldType {
	return n.fieldType
}

func (n *Field) Attributes() iter.Seq[*Attribute] {
	return slices.Values(n.attributes)
}

func (n *Field) Documentation() (string, bool) {
	if n.documentation == nil {
		return "", false
	}
	return n.documentation.text, true
}
