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

// Package render writes schema declarations as text.
package render

import (
	"fmt"
)

// Value is anything that can appear in value position: attribute
// arguments, array items, function arguments.
type Value interface {
	fmt.Stringer
	isValue()
}

// Constant is a value rendered exactly as its own textual form, without
// quotes or escaping. Use it for identifiers, type names, keywords and
// numeric literals.
//
// Constant does not validate its contents. Callers must only wrap values
// that are already known to be valid bare tokens; wrapping arbitrary text
// produces broken or misleading output.
type Constant[T any] struct {
	value T
}

var _ Value = Constant[string]{}

func NewConstant[T any](value T) Constant[T] {
	return Constant[T]{value}
}

func (c Constant[T]) String() string {
	return fmt.Sprint(c.value)
}

func (Constant[T]) isValue() {}

func (c Constant[T]) Get() T {
	return c.value
}

// AsStr returns the contents of a string constant.
func AsStr[S ~string](c Constant[S]) string {
	return string(c.value)
}
