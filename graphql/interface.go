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

// InterfaceConfig specifies an Interface type.
type InterfaceConfig struct {
	Name              string
	Description       string
	Interfaces        []*Interface
	Fields            Fields
	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
}

// Interface is an abstract output type that Objects and other Interfaces may implement, declaring
// a field contract that every implementor must satisfy.
type Interface struct {
	name              string
	description       string
	interfaces        []*Interface
	fields            FieldMap
	astNode           ast.Node
	extensionASTNodes []ast.Node
}

var (
	_ Type                = (*Interface)(nil)
	_ TypeWithName        = (*Interface)(nil)
	_ TypeWithDescription = (*Interface)(nil)
	_ CompositeType       = (*Interface)(nil)
	_ AbstractType        = (*Interface)(nil)
	_ NullableType        = (*Interface)(nil)
)

// NewInterface builds an Interface type from config.
func NewInterface(config InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface type.")
	}
	fields, err := buildFieldMap(config.Fields)
	if err != nil {
		return nil, WrapErrorf(err, "Interface %q fields are invalid", config.Name)
	}
	if fields.Len() == 0 {
		return nil, NewError("Interface type " + config.Name + " must define one or more fields.")
	}
	return &Interface{
		name:              config.Name,
		description:       config.Description,
		interfaces:        config.Interfaces,
		fields:            fields,
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}, nil
}

// MustNewInterface panics instead of returning an error.
func MustNewInterface(config InterfaceConfig) *Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

func (*Interface) graphqlType()         {}
func (*Interface) ThisIsCompositeType() {}
func (*Interface) ThisIsAbstractType()  {}
func (*Interface) ThisIsNullableType()  {}

func (i *Interface) String() string { return i.name }

// Name implements TypeWithName.
func (i *Interface) Name() string { return i.name }

// Description implements TypeWithDescription.
func (i *Interface) Description() string { return i.description }

// Fields declared by the interface, in declaration order.
func (i *Interface) Fields() FieldMap { return i.fields }

// Interfaces that this interface itself declares implementing.
func (i *Interface) Interfaces() []*Interface { return i.interfaces }

// ASTNode is the definition this type was parsed from, or nil when built programmatically.
func (i *Interface) ASTNode() ast.Node { return i.astNode }

// ExtensionASTNodes are parsed extensions merged into this type.
func (i *Interface) ExtensionASTNodes() []ast.Node { return i.extensionASTNodes }

func (i *Interface) visitReferences(visit func(*Type)) {
	for _, f := range i.fields.All() {
		visit(&f.fieldType)
		for _, a := range f.args.All() {
			visit(&a.argType)
		}
	}
}
