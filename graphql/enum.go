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

import (
	"github.com/graphql-corelang/corelang/graphql/ast"
)

// EnumValueConfig specifies one member of an Enum type.
type EnumValueConfig struct {
	// Description documents the value.
	Description string

	// Value is the internal representation returned for this member. Defaults to the member's name
	// (a string) when left nil.
	Value interface{}

	// Deprecation marks the value as deprecated.
	Deprecation *Deprecation

	// ASTNode is the parsed EnumValueDefinition this value was built from, if any.
	ASTNode ast.Node
}

// NamedEnumValueConfig pairs an enum member's name with its configuration.
type NamedEnumValueConfig struct {
	Name   string
	Config EnumValueConfig
}

// EnumValue is a resolved, immutable member of an Enum type.
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
	astNode     ast.Node
}

// Name of the member, as it appears in GraphQL source.
func (v *EnumValue) Name() string { return v.name }

// Description of the member.
func (v *EnumValue) Description() string { return v.description }

// Value is the internal representation this member coerces to.
func (v *EnumValue) Value() interface{} { return v.value }

// Deprecation is non-nil when the member carries @deprecated.
func (v *EnumValue) Deprecation() *Deprecation { return v.deprecation }

// ASTNode is the definition this value was parsed from, or nil when built programmatically.
func (v *EnumValue) ASTNode() ast.Node { return v.astNode }

// EnumValueMap is the ordered, name-indexed collection of an Enum's members. Construction also
// builds a parallel value→member index (see EnumValueMap.LookupValue) so that, per the two-index
// requirement on enum types, both name→definition and value→definition lookups are O(1).
type EnumValueMap struct {
	orderedMap[*EnumValue]
	byValue map[interface{}]*EnumValue
}

// LookupValue finds the member whose internal Value equals value.
func (m EnumValueMap) LookupValue(value interface{}) (*EnumValue, bool) {
	v, ok := m.byValue[value]
	return v, ok
}

// EnumConfig specifies an Enum type.
type EnumConfig struct {
	Name              string
	Description       string
	Values            []NamedEnumValueConfig
	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
}

// Enum is a leaf type whose values are drawn from a fixed, named set of members.
type Enum struct {
	name              string
	description       string
	values            EnumValueMap
	astNode           ast.Node
	extensionASTNodes []ast.Node
}

var (
	_ Type                = (*Enum)(nil)
	_ TypeWithName        = (*Enum)(nil)
	_ TypeWithDescription = (*Enum)(nil)
	_ LeafType            = (*Enum)(nil)
	_ NullableType        = (*Enum)(nil)
)

// NewEnum builds an Enum type from config.
func NewEnum(config EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum type.")
	}
	if len(config.Values) == 0 {
		return nil, NewError("Enum type " + config.Name + " must define one or more values.")
	}

	values := make([]*EnumValue, 0, len(config.Values))
	byValue := make(map[interface{}]*EnumValue, len(config.Values))
	for _, entry := range config.Values {
		cfg := entry.Config
		internal := cfg.Value
		if internal == nil {
			internal = entry.Name
		}
		ev := &EnumValue{
			name:        entry.Name,
			description: cfg.Description,
			value:       internal,
			deprecation: cfg.Deprecation,
			astNode:     cfg.ASTNode,
		}
		values = append(values, ev)
		byValue[internal] = ev
	}

	return &Enum{
		name:              config.Name,
		description:       config.Description,
		values:            EnumValueMap{newOrderedMap(values, (*EnumValue).Name), byValue},
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}, nil
}

// MustNewEnum panics instead of returning an error.
func MustNewEnum(config EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

func (*Enum) graphqlType()        {}
func (*Enum) ThisIsLeafType()     {}
func (*Enum) ThisIsNullableType() {}

func (e *Enum) String() string { return e.name }

// Name implements TypeWithName.
func (e *Enum) Name() string { return e.name }

// Description implements TypeWithDescription.
func (e *Enum) Description() string { return e.description }

// Values of the enum, in declaration order.
func (e *Enum) Values() EnumValueMap { return e.values }

// ASTNode is the definition this type was parsed from, or nil when built programmatically.
func (e *Enum) ASTNode() ast.Node { return e.astNode }

// ExtensionASTNodes are parsed extensions merged into this type.
func (e *Enum) ExtensionASTNodes() []ast.Node { return e.extensionASTNodes }

// ParseLiteral coerces a parsed AST value into this enum's internal representation. Only
// ast.EnumValue nodes are accepted; anything else, including a bare StringValue, is rejected even
// though an enum value and a string share lexical shape.
func (e *Enum) ParseLiteral(value ast.Value) (interface{}, error) {
	enumValue, ok := value.(ast.EnumValue)
	if !ok {
		return nil, NewError(e.name + " cannot represent non-enum value: " + ast.Print(value))
	}
	member, ok := e.values.Lookup(enumValue.Value())
	if !ok {
		return nil, NewError(e.name + " cannot represent value: " + ast.Print(value))
	}
	return member.Value(), nil
}

// ParseValue coerces an input (variable) value into this enum's internal representation. Only
// string inputs are accepted.
func (e *Enum) ParseValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, NewError(e.name + " cannot represent non-string value.")
	}
	member, ok := e.values.Lookup(name)
	if !ok {
		return nil, NewError(e.name + " cannot represent value: " + name)
	}
	return member.Value(), nil
}
