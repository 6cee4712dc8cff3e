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

package graphql

import "github.com/graphql-corelang/corelang/graphql/ast"

// ScalarConfig specifies a Scalar type. Coercion (serialize/parseValue/parseLiteral) is left to a
// consumer that executes queries against the schema; this module only needs the shape of the type,
// not its runtime behavior.
type ScalarConfig struct {
	Name string

	Description string

	// SpecifiedByURL documents the scalar's coercion rules, as declared with @specifiedBy.
	SpecifiedByURL string

	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
}

// Scalar is a leaf output/input type representing a primitive value.
type Scalar struct {
	name              string
	description       string
	specifiedByURL    string
	astNode           ast.Node
	extensionASTNodes []ast.Node
}

var (
	_ Type                = (*Scalar)(nil)
	_ TypeWithName        = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
	_ LeafType            = (*Scalar)(nil)
	_ NullableType        = (*Scalar)(nil)
)

// NewScalar builds a Scalar type from config.
func NewScalar(config ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar type.")
	}
	return &Scalar{
		name:              config.Name,
		description:       config.Description,
		specifiedByURL:    config.SpecifiedByURL,
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}, nil
}

// MustNewScalar panics instead of returning an error.
func MustNewScalar(config ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

func (*Scalar) graphqlType()        {}
func (*Scalar) ThisIsLeafType()     {}
func (*Scalar) ThisIsNullableType() {}

func (s *Scalar) String() string { return s.name }

// Name implements TypeWithName.
func (s *Scalar) Name() string { return s.name }

// Description implements TypeWithDescription.
func (s *Scalar) Description() string { return s.description }

// SpecifiedByURL is the URL the scalar's @specifiedBy directive pointed at, or "" when absent.
func (s *Scalar) SpecifiedByURL() string { return s.specifiedByURL }

// ASTNode is the definition this type was parsed from, or nil when built programmatically.
func (s *Scalar) ASTNode() ast.Node { return s.astNode }

// ExtensionASTNodes are parsed extensions merged into this type.
func (s *Scalar) ExtensionASTNodes() []ast.Node { return s.extensionASTNodes }
