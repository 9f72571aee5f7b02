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

package ast_test

import (
	"fmt"
	"strings"
	"testing"

	"go.psl-lang.org/psl/ast"
	"go.psl-lang.org/psl/internal/testutil"
)

func dumpTree(node ast.Node) string {
	var buf strings.Builder
	depth := 0
	ast.Walk(node, func(node ast.Node) bool {
		if node == nil {
			depth--
			return true
		}
		buf.WriteString(strings.Repeat("  ", depth))
		span := node.Span()
		fmt.Fprintf(&buf, "%s [%d, %d)", strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast."), span.Start(), span.End())
		switch node := node.(type) {
		case *ast.Identifier:
			fmt.Fprintf(&buf, " %s", node.Name())
		case *ast.Comment:
			fmt.Fprintf(&buf, " %q", node.Text())
		case *ast.StringValue:
			fmt.Fprintf(&buf, " %q", node.Get())
		case *ast.NumericValue:
			fmt.Fprintf(&buf, " %s", node.Raw())
		case *ast.ConstantValue:
			fmt.Fprintf(&buf, " %s", node.Get())
		case *ast.FieldType:
			fmt.Fprintf(&buf, " %v", node.Arity())
		}
		buf.WriteString("\n")
		depth++
		return true
	})
	return buf.String()
}

func TestWalk(t *testing.T) {
	// /// Main app
	// project app {
	//   id    Int      @default(autoincrement())
	//   tags  String[]
	//   @@map("apps")
	// }
	doc := ast.NewComment("Main app", ast.NewSpan(0, 12))
	idField := ast.NewField(
		ast.NewIdentifier("id", ast.NewSpan(29, 2)),
		ast.NewFieldType(ast.NewIdentifier("Int", ast.NewSpan(35, 3)), ast.Required, ast.NewSpan(35, 3)),
		[]*ast.Attribute{ast.NewAttribute(
			ast.NewIdentifier("default", ast.NewSpan(45, 7)),
			[]*ast.Argument{ast.NewArgument(
				nil,
				ast.NewFunctionCall(ast.NewIdentifier("autoincrement", ast.NewSpan(53, 13)), nil, ast.NewSpan(53, 15)),
				ast.NewSpan(53, 15),
			)},
			ast.NewSpan(44, 25),
		)},
		nil,
		ast.NewSpan(29, 40),
	)
	tagsField := ast.NewField(
		ast.NewIdentifier("tags", ast.NewSpan(72, 4)),
		ast.NewFieldType(ast.NewIdentifier("String", ast.NewSpan(78, 6)), ast.List, ast.NewSpan(78, 8)),
		nil,
		nil,
		ast.NewSpan(72, 14),
	)
	mapAttr := ast.NewAttribute(
		ast.NewIdentifier("map", ast.NewSpan(91, 3)),
		[]*ast.Argument{ast.NewArgument(
			ast.NewIdentifier("name", ast.NewSpan(95, 4)),
			ast.NewStringValue("apps", ast.NewSpan(101, 6)),
			ast.NewSpan(95, 12),
		)},
		ast.NewSpan(89, 19),
	)
	project, err := ast.NewProject(
		ast.NewIdentifier("app", ast.NewSpan(21, 3)),
		[]*ast.Field{idField, tagsField},
		[]*ast.Attribute{mapAttr},
		doc,
		ast.NewSpan(13, 97),
	)
	testutil.AssertNoError(t, err)

	testutil.ExpectNoDiff(t, strings.Join([]string{
		`Project [13, 110)`,
		`  Comment [0, 12) "Main app"`,
		`  Identifier [21, 24) app`,
		`  Field [29, 69)`,
		`    Identifier [29, 31) id`,
		`    FieldType [35, 38) required`,
		`      Identifier [35, 38) Int`,
		`    Attribute [44, 69)`,
		`      Identifier [45, 52) default`,
		`      Argument [53, 68)`,
		`        FunctionCall [53, 68)`,
		`          Identifier [53, 66) autoincrement`,
		`  Field [72, 86)`,
		`    Identifier [72, 76) tags`,
		`    FieldType [78, 86) list`,
		`      Identifier [78, 84) String`,
		`  Attribute [89, 108)`,
		`    Identifier [91, 94) map`,
		`    Argument [95, 107)`,
		`      Identifier [95, 99) name`,
		`      StringValue [101, 107) "apps"`,
		``,
	}, "\n"), dumpTree(project))
}

func TestWalkSkipChildren(t *testing.T) {
	project := newProject(t, "app", "id", "name")

	var visited []string
	ast.Walk(project, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.Field:
			visited = append(visited, "field")
			return false
		case *ast.Identifier:
			visited = append(visited, node.Name())
		}
		return true
	})
	testutil.ExpectSliceEq(t, []string{"app", "field", "field"}, visited)
}

func TestArrayExpr(t *testing.T) {
	items := []ast.Expression{
		ast.NewConstantValue("id", ast.NewSpan(1, 2)),
		ast.NewNumericValue("42", ast.NewSpan(5, 2)),
	}
	array := ast.NewArrayExpr(items, ast.NewSpan(0, 8))
	items[0] = nil

	testutil.ExpectNoDiff(t, strings.Join([]string{
		`ArrayExpr [0, 8)`,
		`  ConstantValue [1, 3) id`,
		`  NumericValue [5, 7) 42`,
		``,
	}, "\n"), dumpTree(array))
}

func TestArity(t *testing.T) {
	testutil.ExpectEq(t, "required", ast.Required.String())
	testutil.ExpectEq(t, "optional", ast.Optional.String())
	testutil.ExpectEq(t, "list", ast.List.String())
	testutil.ExpectEq(t, "Arity(?)", ast.Arity(9).String())
}
