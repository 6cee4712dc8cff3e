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

// InputFieldConfig specifies one field of an InputObject type.
type InputFieldConfig struct {
	Description     string
	Type            Type
	HasDefaultValue bool
	DefaultValue    interface{}
	Deprecation     *Deprecation
	ASTNode         ast.Node
}

// NamedInputFieldConfig pairs an input field's name with its configuration.
type NamedInputFieldConfig struct {
	Name   string
	Config InputFieldConfig
}

// InputField is a resolved, immutable field definition attached to an InputObject.
type InputField struct {
	name            string
	description     string
	fieldType       Type
	hasDefaultValue bool
	defaultValue    interface{}
	deprecation     *Deprecation
	astNode         ast.Node
}

// Name of the input field.
func (f *InputField) Name() string { return f.name }

// Description of the input field.
func (f *InputField) Description() string { return f.description }

// Type of the input field.
func (f *InputField) Type() Type { return f.fieldType }

// HasDefaultValue reports whether DefaultValue is meaningful.
func (f *InputField) HasDefaultValue() bool { return f.hasDefaultValue }

// DefaultValue of the input field, valid only when HasDefaultValue is true.
func (f *InputField) DefaultValue() interface{} { return f.defaultValue }

// Deprecation is non-nil when the input field carries @deprecated.
func (f *InputField) Deprecation() *Deprecation { return f.deprecation }

// ASTNode is the definition this field was parsed from, or nil when built programmatically.
func (f *InputField) ASTNode() ast.Node { return f.astNode }

// InputFieldMap is the ordered, name-indexed collection of an InputObject's fields.
type InputFieldMap struct {
	orderedMap[*InputField]
}

// InputObjectConfig specifies an InputObject type.
type InputObjectConfig struct {
	Name        string
	Description string
	Fields      []NamedInputFieldConfig

	// IsOneOf marks the type with @oneOf: exactly one field must be set on any value, every field
	// must be nullable, and no field may declare a default value.
	IsOneOf bool

	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
}

// InputObject is an input type whose value is a keyed set of fields, each independently typed.
type InputObject struct {
	name              string
	description       string
	fields            InputFieldMap
	isOneOf           bool
	astNode           ast.Node
	extensionASTNodes []ast.Node
}

var (
	_ Type                = (*InputObject)(nil)
	_ TypeWithName        = (*InputObject)(nil)
	_ TypeWithDescription = (*InputObject)(nil)
	_ NullableType        = (*InputObject)(nil)
)

// NewInputObject builds an InputObject type from config.
func NewInputObject(config InputObjectConfig) (*InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Input Object type.")
	}
	if len(config.Fields) == 0 {
		return nil, NewError("Input Object type " + config.Name + " must define one or more fields.")
	}

	fields := make([]*InputField, 0, len(config.Fields))
	for _, entry := range config.Fields {
		cfg := entry.Config
		if !IsInputType(cfg.Type) {
			if _, isRef := cfg.Type.(*TypeReference); !isRef {
				return nil, NewError("Input field " + config.Name + "." + entry.Name + " type is not an input type.")
			}
		}
		if config.IsOneOf {
			if _, isNonNull := cfg.Type.(*NonNull); isNonNull {
				return nil, NewError(
					"Input Object field " + config.Name + "." + entry.Name +
						" on @oneOf type must be nullable.")
			}
			if cfg.HasDefaultValue {
				return nil, NewError(
					"Input Object field " + config.Name + "." + entry.Name +
						" on @oneOf type cannot have a default value.")
			}
		}
		fields = append(fields, &InputField{
			name:            entry.Name,
			description:     cfg.Description,
			fieldType:       cfg.Type,
			hasDefaultValue: cfg.HasDefaultValue,
			defaultValue:    cfg.DefaultValue,
			deprecation:     cfg.Deprecation,
			astNode:         cfg.ASTNode,
		})
	}

	return &InputObject{
		name:              config.Name,
		description:       config.Description,
		fields:            InputFieldMap{newOrderedMap(fields, (*InputField).Name)},
		isOneOf:           config.IsOneOf,
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}, nil
}

// MustNewInputObject panics instead of returning an error.
func MustNewInputObject(config InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

func (*InputObject) graphqlType()        {}
func (*InputObject) ThisIsNullableType() {}

func (o *InputObject) String() string { return o.name }

// Name implements TypeWithName.
func (o *InputObject) Name() string { return o.name }

// Description implements TypeWithDescription.
func (o *InputObject) Description() string { return o.description }

// Fields of the input object, in declaration order.
func (o *InputObject) Fields() InputFieldMap { return o.fields }

// IsOneOf reports whether the type was declared with @oneOf.
func (o *InputObject) IsOneOf() bool { return o.isOneOf }

// ASTNode is the definition this type was parsed from, or nil when built programmatically.
func (o *InputObject) ASTNode() ast.Node { return o.astNode }

// ExtensionASTNodes are parsed extensions merged into this type.
func (o *InputObject) ExtensionASTNodes() []ast.Node { return o.extensionASTNodes }

func (o *InputObject) visitReferences(visit func(*Type)) {
	for _, f := range o.fields.All() {
		visit(&f.fieldType)
	}
}
