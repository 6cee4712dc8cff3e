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

// ArgumentConfig specifies one argument accepted by a field or directive.
type ArgumentConfig struct {
	// Description documents the argument.
	Description string

	// Type is the argument's type. May be a TypeReference until the resolver pass runs.
	Type Type

	// HasDefaultValue reports whether DefaultValue should be used. Go has no way to distinguish
	// "omitted" from "explicit nil" in a plain field, so this flag carries that distinction instead
	// of relying on a sentinel value.
	HasDefaultValue bool

	// DefaultValue is the argument's default, used only when HasDefaultValue is true.
	DefaultValue interface{}

	// Deprecation marks the argument as deprecated (arguments may be deprecated since the
	// October 2021 edition introduced @deprecated on ARGUMENT_DEFINITION).
	Deprecation *Deprecation

	// ASTNode is the parsed InputValueDefinition this argument was built from, if any.
	ASTNode ast.Node
}

// ArgumentConfigMap maps argument name to its configuration. As a Go map it keeps no order, and
// buildArguments does not take one; the constructors build arguments from ordered slices instead.
type ArgumentConfigMap map[string]ArgumentConfig

// Argument is a resolved, immutable argument definition attached to a Field, Directive or another
// structure accepting arguments.
type Argument struct {
	name            string
	description     string
	argType         Type
	hasDefaultValue bool
	defaultValue    interface{}
	deprecation     *Deprecation
	astNode         ast.Node
}

// Name of the argument.
func (a *Argument) Name() string { return a.name }

// Description of the argument.
func (a *Argument) Description() string { return a.description }

// Type of the argument.
func (a *Argument) Type() Type { return a.argType }

// HasDefaultValue reports whether DefaultValue is meaningful.
func (a *Argument) HasDefaultValue() bool { return a.hasDefaultValue }

// DefaultValue of the argument, valid only when HasDefaultValue is true.
func (a *Argument) DefaultValue() interface{} { return a.defaultValue }

// Deprecation is non-nil when the argument carries @deprecated.
func (a *Argument) Deprecation() *Deprecation { return a.deprecation }

// ASTNode is the definition this argument was parsed from, or nil when built programmatically.
func (a *Argument) ASTNode() ast.Node { return a.astNode }

// ArgumentMap is the ordered, name-indexed collection of a field's or directive's arguments.
type ArgumentMap struct {
	orderedMap[*Argument]
}

// orderedArgumentConfig pairs an argument name with its config. buildArguments builds arguments in
// the order of the slice it is given, so the source order a schema author wrote is preserved
// instead of Go's randomized map order.
type orderedArgumentConfig struct {
	name   string
	config ArgumentConfig
}

func buildArguments(order []orderedArgumentConfig) (ArgumentMap, error) {
	args := make([]*Argument, 0, len(order))
	for _, entry := range order {
		cfg := entry.config
		if !IsInputType(cfg.Type) {
			if _, isRef := cfg.Type.(*TypeReference); !isRef {
				return ArgumentMap{}, NewError(
					"Argument \"" + entry.name + "\" type is not an input type.")
			}
		}
		args = append(args, &Argument{
			name:            entry.name,
			description:     cfg.Description,
			argType:         cfg.Type,
			hasDefaultValue: cfg.HasDefaultValue,
			defaultValue:    cfg.DefaultValue,
			deprecation:     cfg.Deprecation,
			astNode:         cfg.ASTNode,
		})
	}
	return ArgumentMap{newOrderedMap(args, (*Argument).Name)}, nil
}

// FieldConfig specifies one field of an Object or Interface type.
type FieldConfig struct {
	// Description documents the field.
	Description string

	// Type is the field's return type. May be a TypeReference until the resolver pass runs.
	Type Type

	// Args, in declaration order.
	Args []NamedArgumentConfig

	// Deprecation marks the field as deprecated.
	Deprecation *Deprecation

	// ASTNode is the parsed FieldDefinition this field was built from, if any.
	ASTNode ast.Node
}

// NamedArgumentConfig pairs an argument name with its configuration; FieldConfig.Args and
// InputObject fields use a slice of these instead of a bare map so construction order is never
// left to Go's randomized map iteration.
type NamedArgumentConfig struct {
	Name   string
	Config ArgumentConfig
}

// Fields maps field name to its configuration, in the order given by Order.
type Fields struct {
	// Order lists field names in declaration order; every name must have an entry in Config.
	Order []string

	// Config holds each field's configuration, keyed by name.
	Config map[string]FieldConfig
}

// NewFields is a convenience constructor building a Fields from a name-ordered list, the common
// case when a schema is assembled from a parsed document where field order must be preserved.
func NewFields(entries ...NamedFieldConfig) Fields {
	order := make([]string, len(entries))
	config := make(map[string]FieldConfig, len(entries))
	for i, entry := range entries {
		order[i] = entry.Name
		config[entry.Name] = entry.Config
	}
	return Fields{Order: order, Config: config}
}

// NamedFieldConfig pairs a field name with its configuration.
type NamedFieldConfig struct {
	Name   string
	Config FieldConfig
}

// Field is a resolved, immutable field definition attached to an Object or Interface.
type Field struct {
	name        string
	description string
	fieldType   Type
	args        ArgumentMap
	deprecation *Deprecation
	astNode     ast.Node
}

// Name of the field.
func (f *Field) Name() string { return f.name }

// Description of the field.
func (f *Field) Description() string { return f.description }

// Type returned by the field.
func (f *Field) Type() Type { return f.fieldType }

// Args accepted by the field, in declaration order.
func (f *Field) Args() ArgumentMap { return f.args }

// Deprecation is non-nil when the field carries @deprecated.
func (f *Field) Deprecation() *Deprecation { return f.deprecation }

// ASTNode is the definition this field was parsed from, or nil when built programmatically.
func (f *Field) ASTNode() ast.Node { return f.astNode }

// FieldMap is the ordered, name-indexed collection of an Object's or Interface's fields.
type FieldMap struct {
	orderedMap[*Field]
}

func buildFieldMap(fields Fields) (FieldMap, error) {
	built := make([]*Field, 0, len(fields.Order))
	for _, name := range fields.Order {
		cfg, ok := fields.Config[name]
		if !ok {
			return FieldMap{}, NewError("Field \"" + name + "\" is listed in Order but has no Config entry.")
		}
		if !IsOutputType(cfg.Type) {
			if _, isRef := cfg.Type.(*TypeReference); !isRef {
				return FieldMap{}, NewError("Field \"" + name + "\" type is not an output type.")
			}
		}
		argOrder := make([]orderedArgumentConfig, len(cfg.Args))
		for i, a := range cfg.Args {
			argOrder[i] = orderedArgumentConfig{name: a.Name, config: a.Config}
		}
		args, err := buildArguments(argOrder)
		if err != nil {
			return FieldMap{}, WrapErrorf(err, "Field \"%s\" argument configuration is invalid", name)
		}
		built = append(built, &Field{
			name:        name,
			description: cfg.Description,
			fieldType:   cfg.Type,
			args:        args,
			deprecation: cfg.Deprecation,
			astNode:     cfg.ASTNode,
		})
	}
	return FieldMap{newOrderedMap(built, (*Field).Name)}, nil
}

// ObjectConfig specifies an Object type.
type ObjectConfig struct {
	// Name of the object type.
	Name string

	// Description of the object type.
	Description string

	// Interfaces the object claims to implement.
	Interfaces []*Interface

	// Fields of the object, in declaration order.
	Fields Fields

	// ASTNode is the parsed ObjectTypeDefinition this type was built from, if any.
	ASTNode ast.Node

	// ExtensionASTNodes are parsed ObjectTypeExtensions merged into this type, if any.
	ExtensionASTNodes []ast.Node
}

// Object is a named output type whose values carry a fixed set of fields, optionally implementing
// one or more Interfaces.
type Object struct {
	name              string
	description       string
	interfaces        []*Interface
	fields            FieldMap
	astNode           ast.Node
	extensionASTNodes []ast.Node
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
	_ CompositeType       = (*Object)(nil)
	_ NullableType        = (*Object)(nil)
)

// NewObject builds an Object type from config. Field and argument types may reference a
// TypeReference placeholder that has not yet been resolved against a schema's TypeMap.
func NewObject(config ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object type.")
	}
	fields, err := buildFieldMap(config.Fields)
	if err != nil {
		return nil, WrapErrorf(err, "Object %q fields are invalid", config.Name)
	}
	if fields.Len() == 0 {
		return nil, NewError("Object type " + config.Name + " must define one or more fields.")
	}
	return &Object{
		name:              config.Name,
		description:       config.Description,
		interfaces:        config.Interfaces,
		fields:            fields,
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}, nil
}

// MustNewObject panics instead of returning an error.
func MustNewObject(config ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

func (*Object) graphqlType()         {}
func (*Object) ThisIsCompositeType() {}
func (*Object) ThisIsNullableType()  {}

// String implements fmt.Stringer.
func (o *Object) String() string { return o.name }

// Name implements TypeWithName.
func (o *Object) Name() string { return o.name }

// Description implements TypeWithDescription.
func (o *Object) Description() string { return o.description }

// Fields of the object, in declaration order.
func (o *Object) Fields() FieldMap { return o.fields }

// Interfaces the object implements.
func (o *Object) Interfaces() []*Interface { return o.interfaces }

// ASTNode is the definition this type was parsed from, or nil when built programmatically.
func (o *Object) ASTNode() ast.Node { return o.astNode }

// ExtensionASTNodes are parsed extensions merged into this type.
func (o *Object) ExtensionASTNodes() []ast.Node { return o.extensionASTNodes }

// visitReferences walks every Type value reachable directly from o (field types, argument types)
// and calls visit on each; used by the type-reference resolver pass and by TypeMap construction.
func (o *Object) visitReferences(visit func(*Type)) {
	for _, f := range o.fields.All() {
		visit(&f.fieldType)
		for _, a := range f.args.All() {
			visit(&a.argType)
		}
	}
}
