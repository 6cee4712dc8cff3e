/**
 * Copyright (c) 2019, The Artemis Authors.
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

package graphql_test

import (
	"github.com/graphql-corelang/corelang/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	It("builds from a minimal config", func() {
		s, err := graphql.NewScalar(graphql.ScalarConfig{Name: "DateTime"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.Name()).To(Equal("DateTime"))
		Expect(s.String()).To(Equal("DateTime"))
	})

	It("carries its @specifiedBy URL", func() {
		s := graphql.MustNewScalar(graphql.ScalarConfig{
			Name:           "DateTime",
			SpecifiedByURL: "https://example.com/datetime",
		})
		Expect(s.SpecifiedByURL()).To(Equal("https://example.com/datetime"))
	})
})

var _ = Describe("Object", func() {
	It("requires a name", func() {
		_, err := graphql.NewObject(graphql.ObjectConfig{
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name:   "id",
				Config: graphql.FieldConfig{Type: graphql.ID},
			}),
		})
		Expect(err).Should(HaveOccurred())
	})

	It("requires at least one field", func() {
		_, err := graphql.NewObject(graphql.ObjectConfig{Name: "Empty"})
		Expect(err).Should(HaveOccurred())
	})

	It("builds with fields and arguments", func() {
		o := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Greeting",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "name", Config: graphql.ArgumentConfig{Type: graphql.String}},
					},
				},
			}),
		})
		Expect(o.Fields().Len()).To(Equal(1))
		field, ok := o.Fields().Lookup("hello")
		Expect(ok).To(BeTrue())
		Expect(field.Args().Len()).To(Equal(1))
	})
})

var _ = Describe("Union", func() {
	var catType, dogType *graphql.Object

	BeforeEach(func() {
		catType = graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Cat",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		dogType = graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Dog",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
	})

	It("builds from distinct member types", func() {
		u := graphql.MustNewUnion(graphql.UnionConfig{
			Name:  "Pet",
			Types: []*graphql.Object{catType, dogType},
		})
		Expect(u.Types()).To(Equal([]*graphql.Object{catType, dogType}))
	})

	It("rejects a duplicate member", func() {
		_, err := graphql.NewUnion(graphql.UnionConfig{
			Name:  "Pet",
			Types: []*graphql.Object{catType, catType},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("can only include type Cat once"))
	})
})

var _ = Describe("NonNull", func() {
	It("wraps a nullable type", func() {
		nn := graphql.MustNewNonNull(graphql.String)
		Expect(nn.String()).To(Equal("String!"))
	})

	It("rejects wrapping an already non-null type", func() {
		inner := graphql.MustNewNonNull(graphql.String)
		_, err := graphql.NewNonNull(inner)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("List", func() {
	It("renders its element type in brackets", func() {
		l := graphql.NewList(graphql.String)
		Expect(l.String()).To(Equal("[String]"))
	})
})

var _ = Describe("InputObject", func() {
	It("enforces @oneOf nullability at construction", func() {
		nonNullField := graphql.MustNewNonNull(graphql.String)
		_, err := graphql.NewInputObject(graphql.InputObjectConfig{
			Name:    "Search",
			IsOneOf: true,
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "byID", Config: graphql.InputFieldConfig{Type: nonNullField}},
			},
		})
		Expect(err).Should(HaveOccurred())
	})

	It("enforces @oneOf fields cannot carry a default value", func() {
		_, err := graphql.NewInputObject(graphql.InputObjectConfig{
			Name:    "Search",
			IsOneOf: true,
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "byID", Config: graphql.InputFieldConfig{
					Type: graphql.String, HasDefaultValue: true, DefaultValue: "x",
				}},
			},
		})
		Expect(err).Should(HaveOccurred())
	})

	It("builds a well-formed @oneOf input", func() {
		io := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name:    "Search",
			IsOneOf: true,
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "byID", Config: graphql.InputFieldConfig{Type: graphql.String}},
				{Name: "byName", Config: graphql.InputFieldConfig{Type: graphql.String}},
			},
		})
		Expect(io.IsOneOf()).To(BeTrue())
		Expect(io.Fields().Len()).To(Equal(2))
	})
})

var _ = Describe("Enum", func() {
	It("defaults a member's internal value to its own name", func() {
		e := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "Color",
			Values: []graphql.NamedEnumValueConfig{
				{Name: "RED", Config: graphql.EnumValueConfig{}},
			},
		})
		v, ok := e.Values().Lookup("RED")
		Expect(ok).To(BeTrue())
		Expect(v.Value()).To(Equal("RED"))
	})

	It("looks up a member by its internal value", func() {
		e := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "Color",
			Values: []graphql.NamedEnumValueConfig{
				{Name: "RED", Config: graphql.EnumValueConfig{Value: 1}},
				{Name: "GREEN", Config: graphql.EnumValueConfig{Value: 2}},
			},
		})
		v, ok := e.Values().LookupValue(2)
		Expect(ok).To(BeTrue())
		Expect(v.Name()).To(Equal("GREEN"))
	})
})

var _ = Describe("Schema", func() {
	queryType := func() *graphql.Object {
		return graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
	}

	It("requires a query root type", func() {
		_, err := graphql.NewSchema(graphql.SchemaConfig{})
		Expect(err).Should(HaveOccurred())
	})

	It("exposes the five specified scalars even when unreferenced", func() {
		s := graphql.MustNewSchema(graphql.SchemaConfig{Query: queryType()})
		for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
			_, ok := s.TypeByName(name)
			Expect(ok).To(BeTrue(), name)
		}
	})

	It("merges the specified directives with any additional ones", func() {
		custom := graphql.MustNewDirective(graphql.DirectiveConfig{
			Name:      "cacheControl",
			Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationFieldDefinition},
		})
		s := graphql.MustNewSchema(graphql.SchemaConfig{
			Query:      queryType(),
			Directives: []*graphql.Directive{custom},
		})
		_, ok := s.DirectiveByName("cacheControl")
		Expect(ok).To(BeTrue())
		_, ok = s.DirectiveByName("deprecated")
		Expect(ok).To(BeTrue())
	})
})

var _ = Describe("TypeReference resolution", func() {
	It("resolves a reference used directly as a field type", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name:   "me",
				Config: graphql.FieldConfig{Type: graphql.NewTypeReference("User")},
			}),
		})
		user := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "User",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		s := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{user},
		})
		field, _ := s.QueryType().Fields().Lookup("me")
		Expect(field.Type()).To(BeIdenticalTo(graphql.Type(user)))
	})

	It("resolves a reference nested inside List and NonNull", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "friends",
				Config: graphql.FieldConfig{
					Type: graphql.NewList(graphql.MustNewNonNull(graphql.NewTypeReference("User"))),
				},
			}),
		})
		user := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "User",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		s := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{user},
		})
		field, _ := s.QueryType().Fields().Lookup("friends")
		list, ok := field.Type().(*graphql.List)
		Expect(ok).To(BeTrue())
		nonNull, ok := list.OfType().(*graphql.NonNull)
		Expect(ok).To(BeTrue())
		Expect(nonNull.OfType()).To(BeIdenticalTo(graphql.Type(user)))
	})

	It("errors when a reference names an unknown type", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name:   "ghost",
				Config: graphql.FieldConfig{Type: graphql.NewTypeReference("Nowhere")},
			}),
		})
		_, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`Type "Nowhere" not found in schema`))
	})
})
