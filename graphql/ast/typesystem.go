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

package ast

import (
	"github.com/graphql-corelang/corelang/graphql/token"
)

//===----------------------------------------------------------------------------------------====//
// Type System Definitions & Extensions
//===----------------------------------------------------------------------------------------====//
// These nodes describe a GraphQL schema itself (schema/scalar/object/interface/union/enum/
// input-object/directive definitions, and their `extend` forms) rather than an executable
// operation. They complete the grammar the executable-document nodes above only half cover.
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-System

// TypeSystemDefinition is a Definition that describes part of a schema rather than an operation
// to execute.
type TypeSystemDefinition interface {
	Definition

	typeSystemDefinitionNode()
}

var (
	_ TypeSystemDefinition = (*SchemaDefinition)(nil)
	_ TypeSystemDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeSystemDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeSystemDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeSystemDefinition = (*UnionTypeDefinition)(nil)
	_ TypeSystemDefinition = (*EnumTypeDefinition)(nil)
	_ TypeSystemDefinition = (*InputObjectTypeDefinition)(nil)
	_ TypeSystemDefinition = (*DirectiveDefinition)(nil)
)

// TypeSystemExtension is a Definition that extends a previously defined schema element.
type TypeSystemExtension interface {
	Definition

	typeSystemExtensionNode()
}

var (
	_ TypeSystemExtension = (*SchemaExtension)(nil)
	_ TypeSystemExtension = (*ScalarTypeExtension)(nil)
	_ TypeSystemExtension = (*ObjectTypeExtension)(nil)
	_ TypeSystemExtension = (*InterfaceTypeExtension)(nil)
	_ TypeSystemExtension = (*UnionTypeExtension)(nil)
	_ TypeSystemExtension = (*EnumTypeExtension)(nil)
	_ TypeSystemExtension = (*InputObjectTypeExtension)(nil)
)

// firstTokenOf returns the first token of a description if present, else fallback.
func firstTokenOf(description *StringValue, fallback *token.Token) *token.Token {
	if description != nil {
		return description.Token
	}
	return fallback
}

//===----------------------------------------------------------------------------------------====//
// Schema Definition
//===----------------------------------------------------------------------------------------====//

// OperationTypeDefinition assigns an object type to one of query/mutation/subscription within a
// SchemaDefinition or SchemaExtension.
type OperationTypeDefinition struct {
	// Operation names which root operation this entry defines.
	Operation OperationType

	// OperationToken is the Name token carrying the operation keyword ("query", "mutation" or
	// "subscription"), kept to anchor TokenRange.
	OperationToken *token.Token

	// Type is the object type serving that root operation.
	Type NamedType
}

var _ Node = (*OperationTypeDefinition)(nil)

// TokenRange implements Node.
func (node *OperationTypeDefinition) TokenRange() token.Range {
	return token.Range{First: node.OperationToken, Last: node.Type.TokenRange().Last}
}

// SchemaDefinition declares the root operation types of a schema.
//
// Reference: https://spec.graphql.org/October2021/#SchemaDefinition
type SchemaDefinition struct {
	DefinitionBase

	Description *StringValue

	// SchemaToken is the "schema" keyword token.
	SchemaToken *token.Token

	OperationTypes []*OperationTypeDefinition

	// RightBrace closes the operation-type list.
	RightBrace *token.Token
}

// TokenRange implements Node.
func (node *SchemaDefinition) TokenRange() token.Range {
	return token.Range{First: firstTokenOf(node.Description, node.SchemaToken), Last: node.RightBrace}
}

func (*SchemaDefinition) typeSystemDefinitionNode() {}

// SchemaExtension adds directives or additional root operation types to a previously defined
// schema.
//
// Reference: https://spec.graphql.org/October2021/#SchemaExtension
type SchemaExtension struct {
	DefinitionBase

	// ExtendToken is the "extend" keyword token.
	ExtendToken *token.Token

	OperationTypes []*OperationTypeDefinition

	// RightBrace closes the operation-type list, nil if the extension has no body.
	RightBrace *token.Token
}

// TokenRange implements Node.
func (node *SchemaExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else {
			// "schema" keyword
			last = node.ExtendToken.Next
		}
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*SchemaExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Scalar Type
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition introduces a custom scalar type.
//
// Reference: https://spec.graphql.org/October2021/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	DefinitionBase

	Description *StringValue
	Name        Name
}

// TokenRange implements Node.
func (node *ScalarTypeDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	// "scalar" keyword precedes the name.
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token.Prev), Last: last}
}

func (*ScalarTypeDefinition) typeSystemDefinitionNode() {}

// ScalarTypeExtension adds directives to a previously defined scalar type.
//
// Reference: https://spec.graphql.org/October2021/#ScalarTypeExtension
type ScalarTypeExtension struct {
	DefinitionBase

	ExtendToken *token.Token
	Name        Name
}

// TokenRange implements Node.
func (node *ScalarTypeExtension) TokenRange() token.Range {
	last := node.Name.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*ScalarTypeExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Field & Argument Definitions (shared by Object/Interface/InputObject/Directive)
//===----------------------------------------------------------------------------------------====//

// InputValueDefinition defines a single field of an input object, or a single argument of a field
// or directive.
//
// Reference: https://spec.graphql.org/October2021/#InputValueDefinition
type InputValueDefinition struct {
	Description  *StringValue
	Name         Name
	Type         Type
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*InputValueDefinition)(nil)

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range {
	var last *token.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	} else if node.DefaultValue != nil {
		last = node.DefaultValue.TokenRange().Last
	} else {
		last = node.Type.TokenRange().Last
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token), Last: last}
}

// FieldDefinition defines a single field of an object or interface type.
//
// Reference: https://spec.graphql.org/October2021/#FieldDefinition
type FieldDefinition struct {
	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  Directives
}

var _ Node = (*FieldDefinition)(nil)

// TokenRange implements Node.
func (node *FieldDefinition) TokenRange() token.Range {
	var last *token.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	} else {
		last = node.Type.TokenRange().Last
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token), Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Object Type
//===----------------------------------------------------------------------------------------====//

// ObjectTypeDefinition defines an object type: a named set of fields, optionally implementing
// interfaces.
//
// Reference: https://spec.graphql.org/October2021/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	DefinitionBase

	Description *StringValue
	Name        Name

	// Interfaces lists the interfaces this object implements (ImplementsInterfaces).
	Interfaces []NamedType

	Fields []*FieldDefinition

	// RightBrace closes the field list; nil when the definition has no field braces at all (a
	// type with neither fields nor directives is a syntax error, so this is always set in a
	// successfully parsed document when Fields is non-empty).
	RightBrace *token.Token
}

// TokenRange implements Node.
func (node *ObjectTypeDefinition) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else if len(node.Interfaces) > 0 {
			last = node.Interfaces[len(node.Interfaces)-1].TokenRange().Last
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token.Prev), Last: last}
}

func (*ObjectTypeDefinition) typeSystemDefinitionNode() {}

// ObjectTypeExtension adds interfaces, directives or fields to a previously defined object type.
//
// Reference: https://spec.graphql.org/October2021/#ObjectTypeExtension
type ObjectTypeExtension struct {
	DefinitionBase

	ExtendToken *token.Token
	Name        Name
	Interfaces  []NamedType
	Fields      []*FieldDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *ObjectTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else if len(node.Interfaces) > 0 {
			last = node.Interfaces[len(node.Interfaces)-1].TokenRange().Last
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*ObjectTypeExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Interface Type
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition defines an interface type: a named set of fields that object types may
// implement, which may itself implement other interfaces.
//
// Reference: https://spec.graphql.org/October2021/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	DefinitionBase

	Description *StringValue
	Name        Name
	Interfaces  []NamedType
	Fields      []*FieldDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *InterfaceTypeDefinition) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else if len(node.Interfaces) > 0 {
			last = node.Interfaces[len(node.Interfaces)-1].TokenRange().Last
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token.Prev), Last: last}
}

func (*InterfaceTypeDefinition) typeSystemDefinitionNode() {}

// InterfaceTypeExtension adds interfaces, directives or fields to a previously defined interface.
//
// Reference: https://spec.graphql.org/October2021/#InterfaceTypeExtension
type InterfaceTypeExtension struct {
	DefinitionBase

	ExtendToken *token.Token
	Name        Name
	Interfaces  []NamedType
	Fields      []*FieldDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *InterfaceTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else if len(node.Interfaces) > 0 {
			last = node.Interfaces[len(node.Interfaces)-1].TokenRange().Last
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*InterfaceTypeExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Union Type
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition defines a union type: a set of possible object types.
//
// Reference: https://spec.graphql.org/October2021/#UnionTypeDefinition
type UnionTypeDefinition struct {
	DefinitionBase

	Description *StringValue
	Name        Name
	Types       []NamedType
}

// TokenRange implements Node.
func (node *UnionTypeDefinition) TokenRange() token.Range {
	var last *token.Token
	if len(node.Types) > 0 {
		last = node.Types[len(node.Types)-1].TokenRange().Last
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	} else {
		last = node.Name.Token
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token.Prev), Last: last}
}

func (*UnionTypeDefinition) typeSystemDefinitionNode() {}

// UnionTypeExtension adds member types or directives to a previously defined union.
//
// Reference: https://spec.graphql.org/October2021/#UnionTypeExtension
type UnionTypeExtension struct {
	DefinitionBase

	ExtendToken *token.Token
	Name        Name
	Types       []NamedType
}

// TokenRange implements Node.
func (node *UnionTypeExtension) TokenRange() token.Range {
	var last *token.Token
	if len(node.Types) > 0 {
		last = node.Types[len(node.Types)-1].TokenRange().Last
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	} else {
		last = node.Name.Token
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*UnionTypeExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Enum Type
//===----------------------------------------------------------------------------------------====//

// EnumValueDefinition defines a single member of an enum type.
//
// Reference: https://spec.graphql.org/October2021/#EnumValueDefinition
type EnumValueDefinition struct {
	Description *StringValue
	Name        Name
	Directives  Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// TokenRange implements Node.
func (node *EnumValueDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token), Last: last}
}

// EnumTypeDefinition defines an enum type: a set of possible values.
//
// Reference: https://spec.graphql.org/October2021/#EnumTypeDefinition
type EnumTypeDefinition struct {
	DefinitionBase

	Description *StringValue
	Name        Name
	Values      []*EnumValueDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *EnumTypeDefinition) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token.Prev), Last: last}
}

func (*EnumTypeDefinition) typeSystemDefinitionNode() {}

// EnumTypeExtension adds values or directives to a previously defined enum.
//
// Reference: https://spec.graphql.org/October2021/#EnumTypeExtension
type EnumTypeExtension struct {
	DefinitionBase

	ExtendToken *token.Token
	Name        Name
	Values      []*EnumValueDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *EnumTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*EnumTypeExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Input Object Type
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition defines an input object type: a named set of input fields.
//
// Reference: https://spec.graphql.org/October2021/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	DefinitionBase

	Description *StringValue
	Name        Name
	Fields      []*InputValueDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *InputObjectTypeDefinition) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: firstTokenOf(node.Description, node.Name.Token.Prev), Last: last}
}

func (*InputObjectTypeDefinition) typeSystemDefinitionNode() {}

// InputObjectTypeExtension adds fields or directives to a previously defined input object.
//
// Reference: https://spec.graphql.org/October2021/#InputObjectTypeExtension
type InputObjectTypeExtension struct {
	DefinitionBase

	ExtendToken *token.Token
	Name        Name
	Fields      []*InputValueDefinition
	RightBrace  *token.Token
}

// TokenRange implements Node.
func (node *InputObjectTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		if len(node.Directives) > 0 {
			last = node.Directives.LastToken()
		} else {
			last = node.Name.Token
		}
	}
	return token.Range{First: node.ExtendToken, Last: last}
}

func (*InputObjectTypeExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// Directive Definition
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition defines a directive: a name, its argument list, whether it may be applied
// more than once to the same location (`repeatable`), and the locations it may be applied to.
//
// Reference: https://spec.graphql.org/October2021/#DirectiveDefinition
type DirectiveDefinition struct {
	Description *StringValue

	// DirectiveToken is the "directive" keyword token.
	DirectiveToken *token.Token

	Name      Name
	Arguments []*InputValueDefinition

	// Repeatable is true when the `repeatable` modifier is present.
	Repeatable bool

	// Locations lists where the directive may be applied (a DirectiveLocation Name each).
	Locations []Name
}

// GetDirectives implements Definition; directive definitions cannot themselves carry directives.
func (*DirectiveDefinition) GetDirectives() Directives { return nil }

func (*DirectiveDefinition) definitionNode() {}

// TokenRange implements Node.
func (node *DirectiveDefinition) TokenRange() token.Range {
	last := node.Locations[len(node.Locations)-1].Token
	return token.Range{First: firstTokenOf(node.Description, node.DirectiveToken), Last: last}
}

func (*DirectiveDefinition) typeSystemDefinitionNode() {}
