/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package visitor_test

import (
	"github.com/graphql-corelang/corelang/graphql/ast"
	"github.com/graphql-corelang/corelang/graphql/ast/visitor"
	"github.com/graphql-corelang/corelang/graphql/parser"
	"github.com/graphql-corelang/corelang/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parse(s string) ast.Document {
	doc, err := parser.Parse(token.NewSource(s), parser.ParseOptions{})
	Expect(err).ShouldNot(HaveOccurred())
	return doc
}

var _ = Describe("Walk", func() {
	It("leaves the tree unchanged under a no-op visitor (identity)", func() {
		doc := parse(`query Q($a: Int = 1) { a: field(arg: "a") @skip(if: true) { b } }`)

		result := visitor.Walk(doc, &visitor.Visitor{})

		Expect(ast.Print(result.(ast.Document))).To(Equal(ast.Print(doc)))
	})

	It("does not mutate the input root when a no-op visitor walks it", func() {
		doc := parse(`{ field { nested } }`)
		before := ast.Print(doc)

		result := visitor.Walk(doc, &visitor.Visitor{})

		// Editing the node the walk returned must never reach back into the node the caller
		// passed in: every pointer-kind node is cloned before visitChildren touches its fields.
		op := result.(ast.Document).Definitions[0].(*ast.OperationDefinition)
		op.SelectionSet = nil

		Expect(ast.Print(doc)).To(Equal(before))
	})

	It("replaces every Name whose value is \"a\" with Name(\"b\")", func() {
		doc := parse(`{ a: a(a: $a) }`)

		v := &visitor.Visitor{
			Kinds: map[string]visitor.KindFuncs{
				"Name": {Enter: func(node ast.Node, key interface{}, parent ast.Node,
					path []interface{}, ancestors []ast.Node) (visitor.Action, ast.Node) {
					if node.(ast.Name).Value() != "a" {
						return visitor.ActionNoChange, nil
					}
					return visitor.ActionReplace, ast.Name{Token: &token.Token{
						Kind: token.KindName, Value: "b",
					}}
				}},
			},
		}

		result := visitor.Walk(doc, v)

		Expect(ast.Print(result.(ast.Document))).To(Equal("{\n  b: b(b: $b)\n}\n"))
		Expect(ast.Print(doc)).To(Equal("{\n  a: a(a: $a)\n}\n"))
	})

	It("visits a variable definition's variable, type and default value", func() {
		doc := parse(`query ($a: Int = 1) { field }`)

		var sawVariable, sawDefaultValue bool
		v := &visitor.Visitor{
			Kinds: map[string]visitor.KindFuncs{
				"Variable": {Enter: func(node ast.Node, key interface{}, parent ast.Node,
					path []interface{}, ancestors []ast.Node) (visitor.Action, ast.Node) {
					sawVariable = true
					return visitor.ActionNoChange, nil
				}},
				"IntValue": {Enter: func(node ast.Node, key interface{}, parent ast.Node,
					path []interface{}, ancestors []ast.Node) (visitor.Action, ast.Node) {
					sawDefaultValue = true
					return visitor.ActionNoChange, nil
				}},
			},
		}

		visitor.Walk(doc, v)

		Expect(sawVariable).To(BeTrue())
		Expect(sawDefaultValue).To(BeTrue())
	})
})
