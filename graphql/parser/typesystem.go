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

package parser

import (
	"github.com/graphql-corelang/corelang/graphql/ast"
	"github.com/graphql-corelang/corelang/graphql/token"
)

// Parsing rules for the Type System section of the grammar.
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-System

//	TypeSystemDefinition ::
//		SchemaDefinition
//		TypeDefinition
//		DirectiveDefinition
//
//	TypeDefinition ::
//		ScalarTypeDefinition
//		ObjectTypeDefinition
//		InterfaceTypeDefinition
//		UnionTypeDefinition
//		EnumTypeDefinition
//		InputObjectTypeDefinition
func (p *parser) parseTypeSystemDefinition(description *ast.StringValue) (ast.TypeSystemDefinition, error) {
	// A description may only precede a definition, not an extension; keywords are the sole
	// lookahead needed to dispatch since "extend" is handled by the caller before we get here.
	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}

	switch tok.Value {
	case "schema":
		return p.parseSchemaDefinition(description)
	case "scalar":
		return p.parseScalarTypeDefinition(description)
	case "type":
		return p.parseObjectTypeDefinition(description)
	case "interface":
		return p.parseInterfaceTypeDefinition(description)
	case "union":
		return p.parseUnionTypeDefinition(description)
	case "enum":
		return p.parseEnumTypeDefinition(description)
	case "input":
		return p.parseInputObjectTypeDefinition(description)
	case "directive":
		return p.parseDirectiveDefinition(description)
	}

	return nil, p.unexpected()
}

//	TypeSystemExtension ::
//		SchemaExtension
//		TypeExtension
//
//	TypeExtension ::
//		ScalarTypeExtension
//		ObjectTypeExtension
//		InterfaceTypeExtension
//		UnionTypeExtension
//		EnumTypeExtension
//		InputObjectTypeExtension
func (p *parser) parseTypeSystemExtension() (ast.TypeSystemExtension, error) {
	// Consume "extend".
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}

	switch tok.Value {
	case "schema":
		return p.parseSchemaExtension()
	case "scalar":
		return p.parseScalarTypeExtension()
	case "type":
		return p.parseObjectTypeExtension()
	case "interface":
		return p.parseInterfaceTypeExtension()
	case "union":
		return p.parseUnionTypeExtension()
	case "enum":
		return p.parseEnumTypeExtension()
	case "input":
		return p.parseInputObjectTypeExtension()
	}

	return nil, p.unexpected()
}

//	SchemaDefinition ::
//		Description? schema Directives[Const]? { OperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition(description *ast.StringValue) (*ast.SchemaDefinition, error) {
	schemaToken, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	rightBrace := p.lexer.Token().Prev

	return &ast.SchemaDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		SchemaToken:    schemaToken,
		OperationTypes: operationTypes,
		RightBrace:     rightBrace,
	}, nil
}

//	SchemaExtension ::
//		extend schema Directives[Const]? { OperationTypeDefinition+ }
//		extend schema Directives[Const]
func (p *parser) parseSchemaExtension() (*ast.SchemaExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		var err error
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	var (
		operationTypes []*ast.OperationTypeDefinition
		rightBrace     *token.Token
	)

	hasBody, err := p.skip(token.KindLeftBrace)
	if err != nil {
		return nil, err
	}

	if hasBody {
		for {
			operationType, err := p.parseOperationTypeDefinition()
			if err != nil {
				return nil, err
			}
			operationTypes = append(operationTypes, operationType)

			stop, err := p.skip(token.KindRightBrace)
			if err != nil {
				return nil, err
			}
			if stop {
				break
			}
		}
		rightBrace = p.lexer.Token().Prev
	} else if len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.SchemaExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		OperationTypes: operationTypes,
		RightBrace:     rightBrace,
	}, nil
}

//	OperationTypeDefinition ::
//		OperationType : NamedType
func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	operationToken := p.peek()

	var operation ast.OperationType
	switch {
	case operationToken.Kind == token.KindName && operationToken.Value == "query":
		operation = ast.OperationTypeQuery
	case operationToken.Kind == token.KindName && operationToken.Value == "mutation":
		operation = ast.OperationTypeMutation
	case operationToken.Kind == token.KindName && operationToken.Value == "subscription":
		operation = ast.OperationTypeSubscription
	default:
		return nil, p.unexpected()
	}

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		Operation:      operation,
		OperationToken: operationToken,
		Type:           namedType,
	}, nil
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives[Const]?
func (p *parser) parseScalarTypeDefinition(description *ast.StringValue) (*ast.ScalarTypeDefinition, error) {
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.ScalarTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Name:           name,
	}, nil
}

//	ScalarTypeExtension ::
//		extend scalar Name Directives[Const]
func (p *parser) parseScalarTypeExtension() (*ast.ScalarTypeExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != token.KindAt {
		return nil, p.unexpected()
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		Name:           name,
	}, nil
}

//	ImplementsInterfaces ::
//		implements &? NamedType
//		ImplementsInterfaces & NamedType
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	hasImplements, err := p.skipKeyword("implements")
	if err != nil {
		return nil, err
	} else if !hasImplements {
		return nil, nil
	}

	// Allow (and ignore) a leading "&" for symmetry with the trailing-separator form.
	if _, err := p.skip(token.KindAmp); err != nil {
		return nil, err
	}

	var interfaces []ast.NamedType
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, namedType)

		hasNext, err := p.skip(token.KindAmp)
		if err != nil {
			return nil, err
		}
		if !hasNext {
			break
		}
	}

	return interfaces, nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, *token.Token, error) {
	hasFields, err := p.skip(token.KindLeftBrace)
	if err != nil {
		return nil, nil, err
	} else if !hasFields {
		return nil, nil, nil
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, nil, err
		}
		if stop {
			break
		}
	}

	return fields, p.lexer.Token().Prev, nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if _, err := p.expect(token.KindLeftParen); err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	for {
		argument, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	return arguments, nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives[Const]?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.peek().Kind == token.KindEquals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition(description *ast.StringValue) (*ast.ObjectTypeDefinition, error) {
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives[Const]
//		extend type Name ImplementsInterfaces
func (p *parser) parseObjectTypeExtension() (*ast.ObjectTypeExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.ObjectTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition(description *ast.StringValue) (*ast.InterfaceTypeDefinition, error) {
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InterfaceTypeExtension ::
//		extend interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend interface Name ImplementsInterfaces? Directives[Const]
//		extend interface Name ImplementsInterfaces
func (p *parser) parseInterfaceTypeExtension() (*ast.InterfaceTypeExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InterfaceTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives[Const]? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition(description *ast.StringValue) (*ast.UnionTypeDefinition, error) {
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	return &ast.UnionTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Name:           name,
		Types:          types,
	}, nil
}

//	UnionTypeExtension ::
//		extend union Name Directives[Const]? UnionMemberTypes
//		extend union Name Directives[Const]
func (p *parser) parseUnionTypeExtension() (*ast.UnionTypeExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(types) == 0 {
		return nil, p.unexpected()
	}

	return &ast.UnionTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		Name:           name,
		Types:          types,
	}, nil
}

//	UnionMemberTypes ::
//		= |? NamedType
//		UnionMemberTypes | NamedType
func (p *parser) parseUnionMemberTypes() ([]ast.NamedType, error) {
	hasMembers, err := p.skip(token.KindEquals)
	if err != nil {
		return nil, err
	} else if !hasMembers {
		return nil, nil
	}

	// Allow (and ignore) a leading "|".
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var types []ast.NamedType
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, namedType)

		hasNext, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasNext {
			break
		}
	}

	return types, nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives[Const]? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition(description *ast.StringValue) (*ast.EnumTypeDefinition, error) {
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	values, rightBrace, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.EnumTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Name:           name,
		Values:         values,
		RightBrace:     rightBrace,
	}, nil
}

//	EnumTypeExtension ::
//		extend enum Name Directives[Const]? EnumValuesDefinition
//		extend enum Name Directives[Const]
func (p *parser) parseEnumTypeExtension() (*ast.EnumTypeExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	values, rightBrace, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(values) == 0 {
		return nil, p.unexpected()
	}

	return &ast.EnumTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		Name:           name,
		Values:         values,
		RightBrace:     rightBrace,
	}, nil
}

//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, *token.Token, error) {
	hasValues, err := p.skip(token.KindLeftBrace)
	if err != nil {
		return nil, nil, err
	} else if !hasValues {
		return nil, nil, nil
	}

	var values []*ast.EnumValueDefinition
	for {
		value, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		values = append(values, value)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, nil, err
		}
		if stop {
			break
		}
	}

	return values, p.lexer.Token().Prev, nil
}

//	EnumValueDefinition ::
//		Description? EnumValue Directives[Const]?
//
//	EnumValue ::
//		Name but not true, false, or null
func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind == token.KindName {
		switch tok.Value {
		case "true", "false", "null":
			return nil, p.unexpected()
		}
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.EnumValueDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives[Const]? InputFieldsDefinition?
func (p *parser) parseInputObjectTypeDefinition(description *ast.StringValue) (*ast.InputObjectTypeDefinition, error) {
	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InputObjectTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Name:           name,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InputObjectTypeExtension ::
//		extend input Name Directives[Const]? InputFieldsDefinition
//		extend input Name Directives[Const]
func (p *parser) parseInputObjectTypeExtension() (*ast.InputObjectTypeExtension, error) {
	extendToken := p.lexer.Token().Prev

	if _, err := p.expect(token.KindName); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InputObjectTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		ExtendToken:    extendToken,
		Name:           name,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
func (p *parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, *token.Token, error) {
	hasFields, err := p.skip(token.KindLeftBrace)
	if err != nil {
		return nil, nil, err
	} else if !hasFields {
		return nil, nil, nil
	}

	var fields []*ast.InputValueDefinition
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, nil, err
		}
		if stop {
			break
		}
	}

	return fields, p.lexer.Token().Prev, nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func (p *parser) parseDirectiveDefinition(description *ast.StringValue) (*ast.DirectiveDefinition, error) {
	directiveToken, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return &ast.DirectiveDefinition{
		Description:    description,
		DirectiveToken: directiveToken,
		Name:           name,
		Arguments:      arguments,
		Repeatable:     repeatable,
		Locations:      locations,
	}, nil
}

//	DirectiveLocations ::
//		|? DirectiveLocation
//		DirectiveLocations | DirectiveLocation
func (p *parser) parseDirectiveLocations() ([]ast.Name, error) {
	// Allow (and ignore) a leading "|".
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var locations []ast.Name
	for {
		location, err := p.parseName()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)

		hasNext, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasNext {
			break
		}
	}

	return locations, nil
}
