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

package validator

import (
	"github.com/graphql-corelang/corelang/graphql"
	"github.com/graphql-corelang/corelang/graphql/ast"
)

func validateTypes(c *context) {
	for _, t := range c.schema.Types().All() {
		if !graphql.IsIntrospectionTypeName(t.Name()) && hasReservedPrefix(t.Name()) {
			c.reportAt("Name \""+t.Name()+"\" must not begin with \"__\", which is reserved by "+
				"GraphQL introspection.", astNodeOf(t))
		}

		switch t := t.(type) {
		case *graphql.Object:
			if t.Fields().Len() == 0 {
				c.reportAt("Type "+t.Name()+" must define one or more fields.", t.ASTNode())
			}
			validateFields(c, t.Name(), t.Fields())
		case *graphql.Interface:
			if t.Fields().Len() == 0 {
				c.reportAt("Type "+t.Name()+" must define one or more fields.", t.ASTNode())
			}
			validateFields(c, t.Name(), t.Fields())
		case *graphql.Union:
			if len(t.Types()) == 0 {
				c.reportAt("Union type "+t.Name()+" must define one or more member types.", t.ASTNode())
			}
		case *graphql.Enum:
			if t.Values().Len() == 0 {
				c.reportAt("Enum type "+t.Name()+" must define one or more values.", t.ASTNode())
			}
		case *graphql.InputObject:
			if t.Fields().Len() == 0 {
				c.reportAt("Input Object type "+t.Name()+" must define one or more fields.", t.ASTNode())
			}
			validateInputFields(c, t)
		}
	}
}

// astNodeOf fetches a type's ASTNode, or nil when it was built programmatically (TypeReference
// never reaches this code since the resolver pass replaces every one before it lands in a schema's
// TypeMap).
func astNodeOf(t graphql.TypeWithName) ast.Node {
	if withNode, ok := t.(graphql.TypeWithASTNode); ok {
		return withNode.ASTNode()
	}
	return nil
}

func validateFields(c *context, typeName string, fields graphql.FieldMap) {
	for _, f := range fields.All() {
		if hasReservedPrefix(f.Name()) {
			c.reportAt("Name \""+f.Name()+"\" must not begin with \"__\", which is reserved by "+
				"GraphQL introspection.", f.ASTNode())
		}
		if !graphql.IsOutputType(f.Type()) {
			c.reportAt("The type of "+typeName+"."+f.Name()+" must be Output Type but got: "+
				f.Type().String()+".", f.ASTNode())
		}
		for _, arg := range f.Args().All() {
			validateArgumentName(c, arg)
			if !graphql.IsInputType(arg.Type()) {
				c.reportAt("The type of "+typeName+"."+f.Name()+"("+arg.Name()+":) must be Input "+
					"Type but got: "+arg.Type().String()+".", arg.ASTNode())
			}
			if isRequiredArgument(arg) && arg.Deprecation() != nil {
				c.reportAt(typeName+"."+f.Name()+"("+arg.Name()+":) is required, so it cannot be "+
					"deprecated.", arg.ASTNode())
			}
		}
		if isRequiredField(f) && f.Deprecation() != nil {
			c.reportAt(typeName+"."+f.Name()+" is required, so it cannot be deprecated.", f.ASTNode())
		}
	}
}

func isRequiredField(f *graphql.Field) bool {
	_, isNonNull := f.Type().(*graphql.NonNull)
	return isNonNull
}

func validateInputFields(c *context, input *graphql.InputObject) {
	for _, f := range input.Fields().All() {
		if hasReservedPrefix(f.Name()) {
			c.reportAt("Name \""+f.Name()+"\" must not begin with \"__\", which is reserved by "+
				"GraphQL introspection.", f.ASTNode())
		}
		if !graphql.IsInputType(f.Type()) {
			c.reportAt("The type of "+input.Name()+"."+f.Name()+" must be Input Type but got: "+
				f.Type().String()+".", f.ASTNode())
		}
		_, isNonNull := f.Type().(*graphql.NonNull)
		isRequired := isNonNull && !f.HasDefaultValue()
		if isRequired && f.Deprecation() != nil {
			c.reportAt(input.Name()+"."+f.Name()+" is required, so it cannot be deprecated.", f.ASTNode())
		}
		if input.IsOneOf() {
			if isNonNull {
				c.reportAt("Input Object field "+input.Name()+"."+f.Name()+" on @oneOf type must be "+
					"nullable.", f.ASTNode())
			}
			if f.HasDefaultValue() {
				c.reportAt("Input Object field "+input.Name()+"."+f.Name()+" on @oneOf type cannot "+
					"have a default value.", f.ASTNode())
			}
		}
	}
}
