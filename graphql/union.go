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

// UnionConfig specifies a Union type.
type UnionConfig struct {
	Name              string
	Description       string
	Types             []*Object
	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
}

// Union is an abstract output type whose value is exactly one of a fixed set of Object types.
type Union struct {
	name              string
	description       string
	types             []*Object
	astNode           ast.Node
	extensionASTNodes []ast.Node
}

var (
	_ Type                = (*Union)(nil)
	_ TypeWithName        = (*Union)(nil)
	_ TypeWithDescription = (*Union)(nil)
	_ CompositeType       = (*Union)(nil)
	_ AbstractType        = (*Union)(nil)
	_ NullableType        = (*Union)(nil)
)

// NewUnion builds a Union type from config.
func NewUnion(config UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union type.")
	}
	if len(config.Types) == 0 {
		return nil, NewError("Union type " + config.Name + " must define one or more member types.")
	}
	seen := make(map[string]bool, len(config.Types))
	for _, t := range config.Types {
		if t == nil {
			return nil, NewError("Union type " + config.Name + " has a nil member type.")
		}
		if seen[t.Name()] {
			return nil, NewError("Union " + config.Name + " can only include type " + t.Name() + " once.")
		}
		seen[t.Name()] = true
	}
	return &Union{
		name:              config.Name,
		description:       config.Description,
		types:             config.Types,
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}, nil
}

// MustNewUnion panics instead of returning an error.
func MustNewUnion(config UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

func (*Union) graphqlType()         {}
func (*Union) ThisIsCompositeType() {}
func (*Union) ThisIsAbstractType()  {}
func (*Union) ThisIsNullableType()  {}

func (u *Union) String() string { return u.name }

// Name implements TypeWithName.
func (u *Union) Name() string { return u.name }

// Description implements TypeWithDescription.
func (u *Union) Description() string { return u.description }

// Types are the possible member Object types, in declaration order.
func (u *Union) Types() []*Object { return u.types }

// ASTNode is the definition this type was parsed from, or nil when built programmatically.
func (u *Union) ASTNode() ast.Node { return u.astNode }

// ExtensionASTNodes are parsed extensions merged into this type.
func (u *Union) ExtensionASTNodes() []ast.Node { return u.extensionASTNodes }

func (u *Union) visitReferences(visit func(*Type)) {}
