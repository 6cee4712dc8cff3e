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

// Package validator checks a constructed Schema's structural validity: the rules a schema must
// satisfy regardless of any query run against it (root types, naming, interface contracts, input
// object acyclicity and the like). It does not validate queries against a schema - that is a
// distinct, unrelated rule set this module does not implement.
package validator

import (
	"strings"

	"github.com/graphql-corelang/corelang/graphql"
	"github.com/graphql-corelang/corelang/graphql/ast"
)

// context accumulates errors while the rules below walk a schema. Reporting never stops the walk:
// every rule runs and every violation it finds is appended, matching validateSchema's "accumulate,
// never throw" contract.
type context struct {
	schema *graphql.Schema
	errors []*graphql.Error
}

// report appends a location-less error.
func (c *context) report(message string) {
	c.errors = append(c.errors, graphql.NewError(message).(*graphql.Error))
}

// reportAt appends an error, deriving a source location from node when the type the error
// concerns was built from a parsed definition.
func (c *context) reportAt(message string, node ast.Node) {
	if node == nil {
		c.report(message)
		return
	}
	c.errors = append(c.errors,
		graphql.NewError(message, graphql.ErrorLocationOfASTNode(node)).(*graphql.Error))
}

// ValidateSchema runs every structural rule against schema and returns the accumulated errors
// (nil when the schema is valid). The result is memoized on the schema: calling this twice on the
// same *Schema only walks it once.
func ValidateSchema(schema *graphql.Schema) []*graphql.Error {
	return schema.ValidationCache(func() []*graphql.Error {
		c := &context{schema: schema}
		validateRootTypes(c)
		validateDirectives(c)
		validateDirectiveUsage(c)
		validateTypes(c)
		validateInterfaceImplementations(c)
		validateUnionMembers(c)
		validateInputObjectCycles(c)
		return c.errors
	})
}

func hasReservedPrefix(name string) bool {
	return strings.HasPrefix(name, "__")
}

func validateRootTypes(c *context) {
	schema := c.schema
	if schema.QueryType() == nil {
		c.report("Query root type must be provided.")
	}

	type root struct {
		operation string
		t         *graphql.Object
	}
	roots := []root{
		{"query", schema.QueryType()},
		{"mutation", schema.MutationType()},
		{"subscription", schema.SubscriptionType()},
	}
	seenByTypeName := map[string]string{}
	for _, r := range roots {
		if r.t == nil {
			continue
		}
		if other, ok := seenByTypeName[r.t.Name()]; ok {
			c.report("All root types must be different, \"" + r.t.Name() + "\" type is used as " +
				other + " and " + r.operation + " root types.")
			continue
		}
		seenByTypeName[r.t.Name()] = r.operation
	}
}

func validateDirectives(c *context) {
	for _, d := range c.schema.Directives() {
		if hasReservedPrefix(d.Name()) {
			c.reportAt("Name \"@"+d.Name()+"\" must not begin with \"__\", which is reserved by "+
				"GraphQL introspection.", d.ASTNode())
		}
		if len(d.Locations()) == 0 {
			c.reportAt("Directive @"+d.Name()+" must include one or more locations.", d.ASTNode())
		}
		for _, arg := range d.Args().All() {
			validateArgumentName(c, arg)
			if isRequiredArgument(arg) && arg.Deprecation() != nil {
				c.reportAt("Required argument @"+d.Name()+"("+arg.Name()+":) cannot be deprecated.",
					arg.ASTNode())
			}
		}
	}
}

func isRequiredArgument(arg *graphql.Argument) bool {
	_, isNonNull := arg.Type().(*graphql.NonNull)
	return isNonNull && !arg.HasDefaultValue()
}

func validateArgumentName(c *context, arg *graphql.Argument) {
	if hasReservedPrefix(arg.Name()) {
		c.reportAt("Name \""+arg.Name()+"\" must not begin with \"__\", which is reserved by "+
			"GraphQL introspection.", arg.ASTNode())
	}
}
