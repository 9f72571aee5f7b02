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
	"strings"
)

// Text is a string literal. It is always rendered quoted.
type Text string

var _ Value = Text("")

func (t Text) String() string {
	return quote(string(t))
}

func (Text) isValue() {}

type Array []Value

var _ Value = Array(nil)

func (a Array) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for ii, item := range a {
		if ii != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(item.String())
	}
	buf.WriteByte(']')
	return buf.String()
}

func (Array) isValue() {}

// Function is a function call such as `autoincrement()` or
// `sort(Desc, length: 10)`.
type Function struct {
	name Constant[string]
	args []functionArg
}

type functionArg struct {
	name  string
	value Value
}

var _ Value = (*Function)(nil)

func NewFunction(name Constant[string], args ...Value) *Function {
	f := &Function{name: name}
	for _, arg := range args {
		f.PushArg(arg)
	}
	return f
}

func (f *Function) Name() Constant[string] {
	return f.name
}

func (f *Function) PushArg(value Value) {
	f.args = append(f.args, functionArg{value: value})
}

func (f *Function) PushNamedArg(name Constant[string], value Value) {
	f.args = append(f.args, functionArg{name: AsStr(name), value: value})
}

func (f *Function) ArgCount() int {
	return len(f.args)
}

func (f *Function) String() string {
	var buf strings.Builder
	buf.WriteString(AsStr(f.name))
	f.writeArgs(&buf)
	return buf.String()
}

func (*Function) isValue() {}

func (f *Function) writeArgs(buf *strings.Builder) {
	buf.WriteByte('(')
	for ii, arg := range f.args {
		if ii != 0 {
			buf.WriteString(", ")
		}
		if arg.name != "" {
			buf.WriteString(arg.name)
			buf.WriteString(": ")
		}
		buf.WriteString(arg.value.String())
	}
	buf.WriteByte(')')
}

func quote(text string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range text {
		if c == '\\' || c == '"' {
			buf.WriteByte('\\')
			buf.WriteRune(c)
			continue
		}
		if c == '\t' {
			buf.WriteString("\\t")
			continue
		}
		if c == '\n' {
			buf.WriteString("\\n")
			continue
		}
		if c < 0x20 || c == 0x7F {
			fmt.Fprintf(&buf, "\\x%02X", c)
			continue
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
	return buf.String()
}
