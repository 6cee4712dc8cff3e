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
	"strings"

	"github.com/graphql-corelang/corelang/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrintSchema", func() {
	It("omits the schema definition when root type names are the conventional ones", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).NotTo(ContainSubstring("schema {"))
		Expect(sdl).To(ContainSubstring("type Query {\n  hello: String\n}"))
	})

	It("emits an explicit schema definition when root type names are unconventional", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "QueryRoot",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("schema {\n  query: QueryRoot\n}"))
	})

	It("prints a scalar with its @specifiedBy directive", func() {
		scalar := graphql.MustNewScalar(graphql.ScalarConfig{
			Name:           "DateTime",
			SpecifiedByURL: "https://example.com/datetime",
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "now", Config: graphql.FieldConfig{Type: scalar},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{scalar},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring(`scalar DateTime @specifiedBy(url: "https://example.com/datetime")`))
	})

	It("prints an object's implemented interfaces", func() {
		node := graphql.MustNewInterface(graphql.InterfaceConfig{
			Name: "Node",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "id", Config: graphql.FieldConfig{Type: graphql.MustNewNonNull(graphql.ID)},
			}),
		})
		foo := graphql.MustNewObject(graphql.ObjectConfig{
			Name:       "Foo",
			Interfaces: []*graphql.Interface{node},
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "id", Config: graphql.FieldConfig{Type: graphql.MustNewNonNull(graphql.ID)},
			}),
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "foo", Config: graphql.FieldConfig{Type: foo},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{foo, node},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("type Foo implements Node {"))
	})

	It("prints a union's member list", func() {
		cat := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Cat",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		dog := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Dog",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		pet := graphql.MustNewUnion(graphql.UnionConfig{Name: "Pet", Types: []*graphql.Object{cat, dog}})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "pet", Config: graphql.FieldConfig{Type: pet},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{pet},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("union Pet = Cat | Dog"))
	})

	It("prints an enum value's bare @deprecated when the reason is the default one", func() {
		color := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "Color",
			Values: []graphql.NamedEnumValueConfig{
				{Name: "RED", Config: graphql.EnumValueConfig{}},
				{Name: "MAGENTA", Config: graphql.EnumValueConfig{
					Deprecation: &graphql.Deprecation{Reason: "No longer supported."},
				}},
			},
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "color", Config: graphql.FieldConfig{Type: color},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{color},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("MAGENTA @deprecated\n"))
	})

	It("prints an enum value's explicit @deprecated reason", func() {
		color := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "Color",
			Values: []graphql.NamedEnumValueConfig{
				{Name: "RED", Config: graphql.EnumValueConfig{
					Deprecation: &graphql.Deprecation{Reason: "use CRIMSON instead"},
				}},
			},
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "color", Config: graphql.FieldConfig{Type: color},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{color},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring(`RED @deprecated(reason: "use CRIMSON instead")`))
	})

	It("prints an @oneOf input object", func() {
		search := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name:    "Search",
			IsOneOf: true,
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "byID", Config: graphql.InputFieldConfig{Type: graphql.String}},
				{Name: "byName", Config: graphql.InputFieldConfig{Type: graphql.String}},
			},
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "search",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "by", Config: graphql.ArgumentConfig{Type: search}},
					},
				},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{search},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("input Search @oneOf {"))
	})

	It("prints a directive definition with its locations", func() {
		cacheControl := graphql.MustNewDirective(graphql.DirectiveConfig{
			Name:      "cacheControl",
			Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationFieldDefinition, graphql.DirectiveLocationObject},
			Args: []graphql.NamedArgumentConfig{
				{Name: "maxAge", Config: graphql.ArgumentConfig{Type: graphql.Int}},
			},
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query:      query,
			Directives: []*graphql.Directive{cacheControl},
		})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("directive @cacheControl(maxAge: Int) on FIELD_DEFINITION | OBJECT"))
	})

	It("wraps a field's argument list onto multiple lines past the line-length threshold", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "search",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "firstArgumentWithAVeryVeryLongNameIndeed", Config: graphql.ArgumentConfig{Type: graphql.String}},
						{Name: "secondArgumentWithAVeryVeryLongNameIndeed", Config: graphql.ArgumentConfig{Type: graphql.String}},
					},
				},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("search(\n    firstArgumentWithAVeryVeryLongNameIndeed: String\n    secondArgumentWithAVeryVeryLongNameIndeed: String\n  ): String"))
	})

	It("keeps a short argument list on one line", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "greet",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "name", Config: graphql.ArgumentConfig{Type: graphql.String}},
					},
				},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("greet(name: String): String"))
	})

	It("renders a multi-line description as a block string", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name:        "Query",
			Description: "Line one.\nLine two.",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring("\"\"\"\nLine one.\nLine two.\n\"\"\"\ntype Query"))
	})

	It("renders a field's default value literal", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "greet",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "name", Config: graphql.ArgumentConfig{
							Type: graphql.String, HasDefaultValue: true, DefaultValue: "world",
						}},
					},
				},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		sdl := graphql.PrintSchema(schema)
		Expect(sdl).To(ContainSubstring(`greet(name: String = "world"): String`))
	})
})

var _ = Describe("PrintIntrospectionSchema", func() {
	It("returns a fixed SDL document covering the introspection type system", func() {
		sdl := graphql.PrintIntrospectionSchema()
		Expect(sdl).To(ContainSubstring("type __Schema"))
		Expect(sdl).To(ContainSubstring("type __Type"))
		Expect(sdl).To(ContainSubstring("enum __TypeKind"))
		Expect(sdl).To(ContainSubstring("directive @deprecated"))
		Expect(strings.Count(sdl, "\"\"\"")).To(BeNumerically(">", 0))
	})
})
