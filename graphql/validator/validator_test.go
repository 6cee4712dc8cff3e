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

package validator_test

import (
	"github.com/graphql-corelang/corelang/graphql"
	"github.com/graphql-corelang/corelang/graphql/validator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func messages(errs []*graphql.Error) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return msgs
}

var _ = Describe("Root type rules", func() {
	It("rejects a schema where two root operations share a type", func() {
		shared := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Root",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "ping", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: shared, Mutation: shared})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring("must be different")))
	})
})

var _ = Describe("Type and field name rules", func() {
	It("rejects a type name with the reserved __ prefix", func() {
		bad := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "__Bad",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "x", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "ok", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{bad},
		})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring(`"__Bad"`)))
	})

	It("rejects a required argument marked @deprecated", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "greet",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "name", Config: graphql.ArgumentConfig{
							Type:        graphql.MustNewNonNull(graphql.String),
							Deprecation: &graphql.Deprecation{Reason: "unused"},
						}},
					},
				},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring("is required, so it cannot be deprecated")))
	})

	It("accepts a well-formed schema with no errors", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "hello", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		Expect(validator.ValidateSchema(schema)).To(BeEmpty())
	})
})

var _ = Describe("Interface implementation rules", func() {
	node := graphql.MustNewInterface(graphql.InterfaceConfig{
		Name: "Node",
		Fields: graphql.NewFields(graphql.NamedFieldConfig{
			Name: "id", Config: graphql.FieldConfig{Type: graphql.MustNewNonNull(graphql.ID)},
		}),
	})

	It("accepts an exact field match", func() {
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
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		Expect(validator.ValidateSchema(schema)).To(BeEmpty())
	})

	It("rejects a missing interface field", func() {
		foo := graphql.MustNewObject(graphql.ObjectConfig{
			Name:       "Foo",
			Interfaces: []*graphql.Interface{node},
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "name", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "foo", Config: graphql.FieldConfig{Type: foo},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring("expected but Foo does not provide it")))
	})

	It("rejects a field whose type isn't a valid covariant override", func() {
		foo := graphql.MustNewObject(graphql.ObjectConfig{
			Name:       "Foo",
			Interfaces: []*graphql.Interface{node},
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "id", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "foo", Config: graphql.FieldConfig{Type: foo},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring("expects type ID! but Foo.id is type String")))
	})

	It("rejects an argument whose type isn't invariant with the interface's", func() {
		withArg := graphql.MustNewInterface(graphql.InterfaceConfig{
			Name: "Named",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "label",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "locale", Config: graphql.ArgumentConfig{Type: graphql.String}},
					},
				},
			}),
		})
		foo := graphql.MustNewObject(graphql.ObjectConfig{
			Name:       "Foo",
			Interfaces: []*graphql.Interface{withArg},
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "label",
				Config: graphql.FieldConfig{
					Type: graphql.String,
					Args: []graphql.NamedArgumentConfig{
						{Name: "locale", Config: graphql.ArgumentConfig{Type: graphql.Int}},
					},
				},
			}),
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "foo", Config: graphql.FieldConfig{Type: foo},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{Query: query})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring("expects type String but Foo.label(locale:) is type Int")))
	})
})

var _ = Describe("Input object cycle detection", func() {
	It("accepts a non-null chain that bottoms out in a list", func() {
		inputB := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "InputB",
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "bar", Config: graphql.InputFieldConfig{
					Type: graphql.MustNewNonNull(graphql.NewList(graphql.NewTypeReference("InputA"))),
				}},
			},
		})
		inputA := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "InputA",
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "foo", Config: graphql.InputFieldConfig{
					Type: graphql.MustNewNonNull(graphql.Type(inputB)),
				}},
			},
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "ok", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{inputA, inputB},
		})
		Expect(validator.ValidateSchema(schema)).To(BeEmpty())
	})

	It("rejects a mutual non-null cycle", func() {
		inputB := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "InputB",
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "bar", Config: graphql.InputFieldConfig{
					Type: graphql.MustNewNonNull(graphql.NewTypeReference("InputA")),
				}},
			},
		})
		inputA := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "InputA",
			Fields: []graphql.NamedInputFieldConfig{
				{Name: "foo", Config: graphql.InputFieldConfig{
					Type: graphql.MustNewNonNull(graphql.Type(inputB)),
				}},
			},
		})
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.NewFields(graphql.NamedFieldConfig{
				Name: "ok", Config: graphql.FieldConfig{Type: graphql.String},
			}),
		})
		schema := graphql.MustNewSchema(graphql.SchemaConfig{
			Query: query,
			Types: []graphql.TypeWithName{inputA, inputB},
		})
		errs := validator.ValidateSchema(schema)
		Expect(messages(errs)).To(ContainElement(ContainSubstring(`within itself through a series of non-null fields: "foo.bar"`)))
	})
})
