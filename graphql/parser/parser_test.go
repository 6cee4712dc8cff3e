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

package parser_test

import (
	"github.com/graphql-corelang/corelang/graphql"
	"github.com/graphql-corelang/corelang/graphql/ast"
	"github.com/graphql-corelang/corelang/graphql/parser"
	"github.com/graphql-corelang/corelang/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parse(s string) (ast.Document, error) {
	return parser.Parse(token.NewSource(s), parser.ParseOptions{})
}

func parseValue(s string) (ast.Value, error) {
	return parser.ParseValue(token.NewSource(s))
}

func parseType(s string) (ast.Type, error) {
	return parser.ParseType(token.NewSource(s))
}

func expectSyntaxError(text string, messageSubstring string) {
	_, err := parse(text)
	Expect(err).Should(HaveOccurred())
	gerr, ok := err.(*graphql.Error)
	Expect(ok).To(BeTrue())
	Expect(gerr.Kind).To(Equal(graphql.ErrKindSyntax))
	Expect(gerr.Message).To(ContainSubstring(messageSubstring))
}

var _ = Describe("Parser", func() {
	Describe("executable documents", func() {
		It("parses a simple query shorthand", func() {
			doc, err := parse("{ field }")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(doc.Definitions).To(HaveLen(1))

			op, ok := doc.Definitions[0].(*ast.OperationDefinition)
			Expect(ok).To(BeTrue())
			Expect(op.Name.Token).To(BeNil())
			Expect(op.SelectionSet).To(HaveLen(1))

			field, ok := op.SelectionSet[0].(*ast.Field)
			Expect(ok).To(BeTrue())
			Expect(field.Name.Value()).To(Equal("field"))
		})

		It("parses a named operation with variables and directives", func() {
			doc, err := parse(`query Foo($a: Int = 1) @skip(if: false) { field(arg: $a) }`)
			Expect(err).ShouldNot(HaveOccurred())

			op := doc.Definitions[0].(*ast.OperationDefinition)
			Expect(op.Type.Value).To(Equal("query"))
			Expect(op.Name.Value()).To(Equal("Foo"))
			Expect(op.VariableDefinitions).To(HaveLen(1))
			Expect(op.GetDirectives()).To(HaveLen(1))
		})

		It("parses fragment definitions", func() {
			doc, err := parse(`
				fragment Details on Person {
					name
					...OtherDetails
					... on Robot { serial }
				}
			`)
			Expect(err).ShouldNot(HaveOccurred())

			frag, ok := doc.Definitions[0].(*ast.FragmentDefinition)
			Expect(ok).To(BeTrue())
			Expect(frag.Name.Value()).To(Equal("Details"))
			Expect(frag.TypeCondition.Name.Value()).To(Equal("Person"))
			Expect(frag.SelectionSet).To(HaveLen(3))
		})

		It("rejects a fragment named \"on\"", func() {
			expectSyntaxError(`fragment on on Type { field }`, `fragment name`)
		})

		It("parses list and object values", func() {
			value, err := parseValue(`[1, 2.5, "str", null, true, FOO, { a: 1, b: [2] }]`)
			Expect(err).ShouldNot(HaveOccurred())

			list, ok := value.(ast.ListValue)
			Expect(ok).To(BeTrue())
			Expect(list.IsEmpty()).To(BeFalse())
			Expect(list.Values()).To(HaveLen(7))
		})

		It("parses wrapped types", func() {
			ty, err := parseType(`[[Int!]!]`)
			Expect(err).ShouldNot(HaveOccurred())

			outer, ok := ty.(ast.ListType)
			Expect(ok).To(BeTrue())

			inner, ok := outer.ItemType.(ast.NonNullType)
			Expect(ok).To(BeTrue())

			innerList, ok := inner.Type.(ast.ListType)
			Expect(ok).To(BeTrue())

			innermost, ok := innerList.ItemType.(ast.NonNullType)
			Expect(ok).To(BeTrue())

			named, ok := innermost.Type.(ast.NamedType)
			Expect(ok).To(BeTrue())
			Expect(named.Name.Value()).To(Equal("Int"))
		})
	})

	Describe("type system definitions", func() {
		It("parses a schema definition with directives", func() {
			doc, err := parse(`
				schema @tag {
					query: Query
					mutation: Mutation
				}
			`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.SchemaDefinition)
			Expect(def.GetDirectives()).To(HaveLen(1))
			Expect(def.OperationTypes).To(HaveLen(2))
			Expect(def.OperationTypes[0].Operation).To(Equal(ast.OperationTypeQuery))
			Expect(def.OperationTypes[0].Type.Name.Value()).To(Equal("Query"))
		})

		It("parses a described scalar type", func() {
			doc, err := parse(`"A date scalar." scalar Date @specifiedBy(url: "https://example.com/date")`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.ScalarTypeDefinition)
			Expect(def.Description).NotTo(BeNil())
			Expect(def.Description.Value()).To(Equal("A date scalar."))
			Expect(def.Name.Value()).To(Equal("Date"))
			Expect(def.GetDirectives()).To(HaveLen(1))
		})

		It("parses an object type with interfaces and fields", func() {
			doc, err := parse(`
				type Person implements Named & Aged {
					name: String!
					age(unit: String = "years"): Int
				}
			`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.ObjectTypeDefinition)
			Expect(def.Name.Value()).To(Equal("Person"))
			Expect(def.Interfaces).To(HaveLen(2))
			Expect(def.Fields).To(HaveLen(2))
			Expect(def.Fields[1].Arguments).To(HaveLen(1))
		})

		It("parses an interface type", func() {
			doc, err := parse(`interface Named { name: String! }`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.InterfaceTypeDefinition)
			Expect(def.Name.Value()).To(Equal("Named"))
			Expect(def.Fields).To(HaveLen(1))
		})

		It("parses a union type", func() {
			doc, err := parse(`union SearchResult = Person | Place`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.UnionTypeDefinition)
			Expect(def.Name.Value()).To(Equal("SearchResult"))
			Expect(def.Types).To(HaveLen(2))
		})

		It("parses an enum type", func() {
			doc, err := parse(`
				enum Direction {
					NORTH
					SOUTH @deprecated(reason: "use NORTH")
				}
			`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.EnumTypeDefinition)
			Expect(def.Values).To(HaveLen(2))
			Expect(def.Values[1].GetDirectives()).To(HaveLen(1))
		})

		It("rejects true/false/null as an enum value", func() {
			expectSyntaxError(`enum Bool { true }`, "Unexpected")
		})

		It("rejects a description ahead of an executable definition", func() {
			expectSyntaxError(`"desc" query { f }`, "Unexpected description")
		})

		It("rejects a description ahead of a type system extension", func() {
			expectSyntaxError(`"desc" extend type Person { name: String }`, "Unexpected description")
		})

		It("parses an input object type", func() {
			doc, err := parse(`
				input Point {
					x: Float = 0
					y: Float = 0
				}
			`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.InputObjectTypeDefinition)
			Expect(def.Fields).To(HaveLen(2))
		})

		It("parses a repeatable directive definition", func() {
			doc, err := parse(`directive @tag(name: String!) repeatable on OBJECT | FIELD_DEFINITION`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.DirectiveDefinition)
			Expect(def.Name.Value()).To(Equal("tag"))
			Expect(def.Repeatable).To(BeTrue())
			Expect(def.Arguments).To(HaveLen(1))
			Expect(def.Locations).To(HaveLen(2))
		})

		It("parses a non-repeatable directive definition", func() {
			doc, err := parse(`directive @deprecated(reason: String = "No longer supported") on FIELD_DEFINITION | ENUM_VALUE`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.DirectiveDefinition)
			Expect(def.Repeatable).To(BeFalse())
		})
	})

	Describe("type system extensions", func() {
		It("parses a schema extension", func() {
			doc, err := parse(`extend schema @tag { subscription: Subscription }`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.SchemaExtension)
			Expect(def.GetDirectives()).To(HaveLen(1))
			Expect(def.OperationTypes).To(HaveLen(1))
		})

		It("parses an object type extension adding a field", func() {
			doc, err := parse(`extend type Person { nickname: String }`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.ObjectTypeExtension)
			Expect(def.Name.Value()).To(Equal("Person"))
			Expect(def.Fields).To(HaveLen(1))
		})

		It("parses a union type extension", func() {
			doc, err := parse(`extend union SearchResult = Review`)
			Expect(err).ShouldNot(HaveOccurred())

			def := doc.Definitions[0].(*ast.UnionTypeExtension)
			Expect(def.Types).To(HaveLen(1))
		})

		It("rejects an empty object type extension", func() {
			expectSyntaxError(`extend type Person`, "Unexpected")
		})
	})

	Describe("errors", func() {
		It("reports a syntax error for an unterminated string", func() {
			expectSyntaxError(`{ field(arg: "unterminated) }`, "Unterminated string")
		})

		It("reports a syntax error for an unexpected token", func() {
			expectSyntaxError(`{ field( }`, "Expected Name")
		})
	})
})
