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

package ast

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// FieldId is the position of a field within the project it was obtained
// from. It carries no reference to that project; use [Project.Field] to
// resolve it.
type FieldId uint32

const (
	// FieldIdMin and FieldIdMax bound range scans over tables keyed by
	// FieldId. FieldIdMax is never a valid index.
	FieldIdMin FieldId = 0
	FieldIdMax FieldId = math.MaxUint32
)

const maxFields = uint64(FieldIdMax)

func (id FieldId) Compare(other FieldId) int {
	return cmp.Compare(id, other)
}

func (id FieldId) String() string {
	return fmt.Sprintf("FieldId(%d)", uint32(id))
}

// Project is a `project` declaration.
//
//	/// Lorem ipsum
//	project foo {
//	  backend server
//	  field   String
//
//	  @@attr1()
//	}
type Project struct {
	childNodes    []Node
	name          *Identifier
	fields        []*Field
	attributes    []*Attribute
	documentation *Comment
	span          Span
}

var _ Node = (*Project)(nil)

// NewProject builds a project declaration. The fields and attributes slices
// are copied, so the caller may reuse them.
func NewProject(
	name *Identifier,
	fields []*Field,
	attributes []*Attribute,
	documentation *Comment,
	span Span,
) (*Project, error) {
	if name == nil {
		return nil, errMissingName(span)
	}
	if uint64(len(fields)) > maxFields {
		return nil, errTooManyFields(name.name, len(fields), span)
	}

	n := &Project{
		name:          name,
		fields:        slices.Clone(fields),
		attributes:    slices.Clone(attributes),
		documentation: documentation,
		span:          span,
	}
	n.childNodes = make([]Node, 0, len(fields)+len(attributes)+2)
	if documentation != nil {
		n.childNodes = append(n.childNodes, documentation)
	}
	n.childNodes = append(n.childNodes, name)
	for _, field := range n.fields {
		n.childNodes = append(n.childNodes, field)
	}
	for _, attr := range n.attributes {
		n.childNodes = append(n.childNodes, attr)
	}
	return n, nil
}

func (n *Project) Span() Span {
	return n.span
}

func (n *Project) ChildNodes() iter.Seq[Node] {
	return iterChildren(n.childNodes)
}

func (n *Project) Name() *Identifier {
	return n.name
}

func (n *Project) Attributes() iter.Seq[*Attribute] {
	return slices.Values(n.attributes)
}

func (n *Project) AttributeCount() int {
	return len(n.attributes)
}

func (n *Project) Documentation() (string, bool) {
	if n.documentation == nil {
		return "", false
	}
	return n.documentation.text, true
}

// Fields yields each field with its id, in declaration order. The sequence
// has exactly [Project.FieldCount] elements and may be iterated any number
// of times.
func (n *Project) Fields() iter.Seq2[FieldId, *Field] {
	return func(yield func(FieldId, *Field) bool) {
		for ii, field := range n.fields {
			if !yield(FieldId(ii), field) {
				return
			}
		}
	}
}

func (n *Project) FieldCount() int {
	return len(n.fields)
}

// Field returns the field identified by id, which must have been obtained
// from this project. Field panics if id is out of range.
func (n *Project) Field(id FieldId) *Field {
	if uint64(id) >= uint64(len(n.fields)) {
		panic(fmt.Sprintf(
			"Project.Field: %v out of range (project '%s' has %d fields)",
			id, n.name.name, len(n.fields),
		))
	}
	return n.fields[id]
}
