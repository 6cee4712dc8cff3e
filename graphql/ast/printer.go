/**
 * Copyright (c) 2019, The Artemis Authors.
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
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/graphql-corelang/corelang/internal/util"
)

// Print uses a set of formatting rules (compatible with graphql-js) to convert an AST into a
// string.
func Print(node Node) string {
	var buf util.StringBuilder
	FPrint(&buf, node)
	return buf.String()
}

// FPrint "pretty-prints" an AST node to out.
func FPrint(out util.StringWriter, node Node) {
	(&printer{
		StringWriter: out,
	}).printNode(node)
}

type printer struct {
	util.StringWriter
	indentLevel int
}

func (p *printer) beginBlock() {
	p.WriteString("{\n")
	p.indentLevel++
}

func (p *printer) endBlock() {
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString("}")
}

func (p *printer) writeNewLineWithIndent() {
	p.WriteString("\n")
	p.writeIndent()
}

func (p *printer) writeIndent() {
	p.WriteString(p.indentation())
}

func (p *printer) indentation() string {
	return strings.Repeat(" ", 2*p.indentLevel)
}

func (p *printer) printNode(node Node) {
	switch node := node.(type) {
	case *Argument:
		p.printArgument(node)
	case Arguments:
		p.printArguments("(", node, ", ", ")")
	case *Directive:
		p.printDirective(node)
	case Directives:
		p.printDirectives(node)
	case Document:
		p.printDocument(node)
	case Name:
		p.printName(node)
	case *ObjectField:
		p.printObjectField(node)
	case SelectionSet:
		p.printSelectionSet(node)
	case *VariableDefinition:
		p.printVariableDefinition(node)
	case Type:
		p.printType(node)
	case Value:
		p.printValue(node)
	case Definition:
		p.printDefinition(node)
	case Selection:
		p.printSelection(node)
	case *FieldDefinition:
		p.printFieldDefinition(node)
	case *InputValueDefinition:
		p.printInputValueDefinition(node)
	case *EnumValueDefinition:
		p.printEnumValueDefinition(node)
	case *OperationTypeDefinition:
		p.printOperationTypeDefinition(node)
	default:
		panic(fmt.Sprintf("unsupported node type %T to print", node))
	}
}

// printDescription prints a string description (used by type system definitions) on its own line,
// ahead of whatever follows it: as a block string if it was written as one, else as a quoted string.
func (p *printer) printDescription(description *StringValue) {
	if description == nil {
		return
	}
	p.printStringValue(*description, "")
	p.writeNewLineWithIndent()
}

func (p *printer) printName(name Name) {
	p.WriteString(name.Value())
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

func (p *printer) printDocument(doc Document) {
	p.printDefinitions(doc.Definitions)
	p.WriteString("\n")
}

func (p *printer) printDefinitions(definitions []Definition) {
	if len(definitions) > 0 {
		p.printDefinition(definitions[0])
		for _, definition := range definitions[1:] {
			p.WriteString("\n\n")
			p.printDefinition(definition)
		}
	}
}

func (p *printer) printDefinition(node Definition) {
	switch node := node.(type) {
	case *FragmentDefinition:
		p.printFragmentDefinition(node)
	case *OperationDefinition:
		p.printOperationDefinition(node)
	case Selection:
		p.printSelection(node)
	case *SchemaDefinition:
		p.printSchemaDefinition(node)
	case *SchemaExtension:
		p.printSchemaExtension(node)
	case *ScalarTypeDefinition:
		p.printScalarTypeDefinition(node)
	case *ScalarTypeExtension:
		p.printScalarTypeExtension(node)
	case *ObjectTypeDefinition:
		p.printObjectTypeDefinition(node)
	case *ObjectTypeExtension:
		p.printObjectTypeExtension(node)
	case *InterfaceTypeDefinition:
		p.printInterfaceTypeDefinition(node)
	case *InterfaceTypeExtension:
		p.printInterfaceTypeExtension(node)
	case *UnionTypeDefinition:
		p.printUnionTypeDefinition(node)
	case *UnionTypeExtension:
		p.printUnionTypeExtension(node)
	case *EnumTypeDefinition:
		p.printEnumTypeDefinition(node)
	case *EnumTypeExtension:
		p.printEnumTypeExtension(node)
	case *InputObjectTypeDefinition:
		p.printInputObjectTypeDefinition(node)
	case *InputObjectTypeExtension:
		p.printInputObjectTypeExtension(node)
	case *DirectiveDefinition:
		p.printDirectiveDefinition(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Definition", node))
	}
}

func (p *printer) printOperationDefinition(operation *OperationDefinition) {
	var (
		op           = operation.OperationType()
		name         = operation.Name
		varDefs      = operation.VariableDefinitions
		directives   = operation.Directives
		selectionSet = operation.SelectionSet
	)

	if name.IsNil() && len(directives) == 0 && len(varDefs) == 0 && op == OperationTypeQuery {
		p.printSelectionSet(selectionSet)
	} else {
		p.WriteString(string(op))

		if !name.IsNil() || len(varDefs) > 0 {
			p.WriteString(" ")
			if !name.IsNil() {
				p.printName(name)
			}
			if len(varDefs) > 0 {
				p.printVariableDefinitions(varDefs)
			}
		}

		if len(directives) > 0 {
			p.WriteString(" ")
			p.printDirectives(directives)
		}

		if len(selectionSet) > 0 {
			p.WriteString(" ")
			p.printSelectionSet(selectionSet)
		}
	}
}

func (p *printer) printVariableDefinitions(varDefs []*VariableDefinition) {
	if len(varDefs) > 0 {
		p.WriteString("(")
		p.printVariableDefinition(varDefs[0])
		for _, varDef := range varDefs[1:] {
			p.WriteString(", ")
			p.printVariableDefinition(varDef)
		}
		p.WriteString(")")
	}
}

func (p *printer) printVariableDefinition(varDef *VariableDefinition) {
	p.printVariable(varDef.Variable)
	p.WriteString(": ")
	p.printType(varDef.Type)

	if varDef.DefaultValue != nil {
		p.WriteString(" = ")
		p.printValue(varDef.DefaultValue)
	}

	directives := varDef.Directives
	if len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
}

//===----------------------------------------------------------------------------------------====//
// Fragments
//===----------------------------------------------------------------------------------------====//

func (p *printer) printFragmentDefinition(fragmentDef *FragmentDefinition) {
	// Note: fragment variable definitions are experimental and may be changed or removed in the future.
	p.WriteString("fragment ")
	p.printName(fragmentDef.Name)
	p.printVariableDefinitions(fragmentDef.VariableDefinitions)
	p.WriteString(" on ")
	p.printNamedType(fragmentDef.TypeCondition)
	p.WriteString(" ")

	directives := fragmentDef.Directives
	if len(directives) > 0 {
		p.printDirectives(directives)
		p.WriteString(" ")
	}

	p.printSelectionSet(fragmentDef.SelectionSet)
}

func (p *printer) printFragmentSpread(fragment *FragmentSpread) {
	p.WriteString("...")
	p.printName(fragment.Name)

	directives := fragment.Directives
	if len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
}

func (p *printer) printInlineFragment(fragment *InlineFragment) {
	p.WriteString("...")

	if fragment.HasTypeCondition() {
		p.WriteString(" on ")
		p.printNamedType(fragment.TypeCondition)
	}

	directives := fragment.Directives
	if len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}

	selectionSet := fragment.SelectionSet
	if len(selectionSet) > 0 {
		p.WriteString(" ")
		p.printSelectionSet(selectionSet)
	}
}

//===----------------------------------------------------------------------------------------====//
// SelectionSet
//===----------------------------------------------------------------------------------------====//

func (p *printer) printSelectionSet(selectionSet SelectionSet) {
	if len(selectionSet) > 0 {
		p.beginBlock()
		p.writeIndent()
		p.printSelection(selectionSet[0])
		for _, selection := range selectionSet[1:] {
			p.writeNewLineWithIndent()
			p.printSelection(selection)
		}
		p.endBlock()
	}
}

func (p *printer) printSelection(node Selection) {
	switch node := node.(type) {
	case *Field:
		p.printField(node)
	case *FragmentSpread:
		p.printFragmentSpread(node)
	case *InlineFragment:
		p.printInlineFragment(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Selection", node))
	}
}

func (p *printer) printField(field *Field) {
	var (
		alias = field.Alias
	)
	if !alias.IsNil() {
		p.printName(alias)
		p.WriteString(": ")
	}

	p.printName(field.Name)
	p.printArguments("(", field.Arguments, ", ", ")")

	if len(field.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(field.Directives)
	}

	if len(field.SelectionSet) > 0 {
		p.WriteString(" ")
		p.printSelectionSet(field.SelectionSet)
	}
}

// argumentsWrapThreshold is argumentsDefinitionWrapThreshold's counterpart for an executable
// Field's or Directive's argument list: the same 80-character rule applies to both.
const argumentsWrapThreshold = 80

func (p *printer) printArguments(start string, args Arguments, sep string, end string) {
	if len(args) == 0 {
		return
	}

	var buf util.StringBuilder
	oneLine := &printer{StringWriter: &buf}
	oneLine.WriteString(start)
	oneLine.printArgument(args[0])
	for _, arg := range args[1:] {
		oneLine.WriteString(sep)
		oneLine.printArgument(arg)
	}
	oneLine.WriteString(end)
	if buf.Len() <= argumentsWrapThreshold {
		p.WriteString(buf.String())
		return
	}

	p.WriteString(start)
	p.WriteString("\n")
	p.indentLevel++
	for _, arg := range args {
		p.writeIndent()
		p.printArgument(arg)
		p.WriteString("\n")
	}
	p.indentLevel--
	p.writeIndent()
	p.WriteString(end)
}

func (p *printer) printArgument(arg *Argument) {
	p.printName(arg.Name)
	p.WriteString(": ")
	p.printValue(arg.Value)
}

//===----------------------------------------------------------------------------------------====//
// Value
//===----------------------------------------------------------------------------------------====//

func (p *printer) printValue(node Value) {
	switch node := node.(type) {
	case BooleanValue:
		p.printBooleanValue(node)
	case EnumValue:
		p.printEnumValue(node)
	case FloatValue:
		p.printFloatValue(node)
	case IntValue:
		p.printIntValue(node)
	case ListValue:
		p.printListValue(node)
	case NullValue:
		p.printNullValue(node)
	case ObjectValue:
		p.printObjectValue(node)
	case StringValue:
		p.printStringValue(node, "  ")
	case Variable:
		p.printVariable(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Value", node))
	}
}

func (p *printer) printBooleanValue(value BooleanValue) {
	if value.Value() {
		p.WriteString("true")
	} else {
		p.WriteString("false")
	}
}

func (p *printer) printEnumValue(value EnumValue) {
	p.WriteString(value.Value())
}

func (p *printer) printFloatValue(value FloatValue) {
	p.WriteString(value.String())
}

func (p *printer) printIntValue(value IntValue) {
	p.WriteString(value.String())
}

func (p *printer) printListValue(value ListValue) {
	values := value.Values()
	p.WriteString("[")
	if len(values) > 0 {
		p.printValue(values[0])
		for _, value := range values[1:] {
			p.WriteString(", ")
			p.printValue(value)
		}
	}
	p.WriteString("]")
}

func (p *printer) printNullValue(value NullValue) {
	p.WriteString("null")
}

func (p *printer) printObjectValue(value ObjectValue) {
	p.WriteString("{")
	fields := value.Fields()
	if len(fields) > 0 {
		p.printObjectField(fields[0])
		for _, field := range fields[1:] {
			p.WriteString(", ")
			p.printObjectField(field)
		}
	}
	p.WriteString("}")
}

func (p *printer) printObjectField(field *ObjectField) {
	p.printName(field.Name)
	p.WriteString(": ")
	p.printValue(field.Value)
}

func (p *printer) printStringValue(value StringValue, blockStringIndent string) {
	if value.IsBlockString() {
		p.printBlockString(value.Value(), blockStringIndent)
	} else {
		// graphql-js: JSON.stringify(value)
		encoded, err := jsoniter.MarshalToString(value.Value())
		if err != nil {
			panic(err)
		}
		p.WriteString(encoded)
	}
}

// Print a block string in the indented block form by adding a leading and trailing blank line.
// However, if a block string starts with whitespace and is a single-line, adding a leading blank
// line would strip that whitespace.
func (p *printer) printBlockString(value string, indentation string) {
	var (
		isSingleLine         = !strings.ContainsRune(value, '\n')
		hasLeadingSpace      = len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
		hasTrailingQuote     = len(value) > 0 && value[len(value)-1] == '"'
		printAsMultipleLines = !isSingleLine || hasTrailingQuote
	)

	p.WriteString(`"""`)

	// Format a multi-line block quote to account for leading space.
	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		p.writeNewLineWithIndent()
		p.WriteString(indentation)
	}

	// Replace """ with \""".
	value = strings.Replace(value, `"""`, `\"""`, -1)
	if len(indentation) > 0 {
		value = strings.Replace(value, "\n", "\n"+p.indentation()+indentation, -1)
	}
	p.WriteString(value)

	if printAsMultipleLines {
		p.writeNewLineWithIndent()
	}

	p.WriteString(`"""`)
}

func (p *printer) printVariable(v Variable) {
	p.WriteString("$")
	p.printName(v.Name)
}

//===----------------------------------------------------------------------------------------====//
// Type
//===----------------------------------------------------------------------------------------====//

func (p *printer) printType(node Type) {
	switch node := node.(type) {
	case ListType:
		p.printListType(node)
	case NamedType:
		p.printNamedType(node)
	case NonNullType:
		p.printNonNullType(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Type", node))
	}
}

func (p *printer) printListType(list ListType) {
	p.WriteString("[")
	p.printType(list.ItemType)
	p.WriteString("]")
}

func (p *printer) printNamedType(named NamedType) {
	p.printName(named.Name)
}

func (p *printer) printNonNullType(nonNull NonNullType) {
	p.printType(nonNull.Type)
	p.WriteString("!")
}

//===----------------------------------------------------------------------------------------====//
// Directive
//===----------------------------------------------------------------------------------------====//

func (p *printer) printDirectives(directives Directives) {
	if len(directives) > 0 {
		p.printDirective(directives[0])
		for _, directive := range directives[1:] {
			p.WriteString(" ")
			p.printDirective(directive)
		}
	}
}

func (p *printer) printDirective(directive *Directive) {
	p.WriteString("@")
	p.printName(directive.Name)
	p.printArguments("(", directive.Arguments, ", ", ")")
}

//===----------------------------------------------------------------------------------------====//
// Type System Definitions & Extensions
//===----------------------------------------------------------------------------------------====//

func (p *printer) printOperationTypeDefinition(node *OperationTypeDefinition) {
	p.WriteString(string(node.Operation))
	p.WriteString(": ")
	p.printNamedType(node.Type)
}

func (p *printer) printOperationTypeDefinitions(operationTypes []*OperationTypeDefinition) {
	if len(operationTypes) == 0 {
		return
	}
	p.beginBlock()
	p.writeIndent()
	p.printOperationTypeDefinition(operationTypes[0])
	for _, opType := range operationTypes[1:] {
		p.writeNewLineWithIndent()
		p.printOperationTypeDefinition(opType)
	}
	p.endBlock()
}

func (p *printer) printSchemaDefinition(node *SchemaDefinition) {
	p.printDescription(node.Description)
	p.WriteString("schema")
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	p.WriteString(" ")
	p.printOperationTypeDefinitions(node.OperationTypes)
}

func (p *printer) printSchemaExtension(node *SchemaExtension) {
	p.WriteString("extend schema")
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.OperationTypes) > 0 {
		p.WriteString(" ")
		p.printOperationTypeDefinitions(node.OperationTypes)
	}
}

func (p *printer) printScalarTypeDefinition(node *ScalarTypeDefinition) {
	p.printDescription(node.Description)
	p.WriteString("scalar ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
}

func (p *printer) printScalarTypeExtension(node *ScalarTypeExtension) {
	p.WriteString("extend scalar ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
}

func (p *printer) printImplementsInterfaces(interfaces []NamedType) {
	if len(interfaces) == 0 {
		return
	}
	p.WriteString(" implements ")
	p.printNamedType(interfaces[0])
	for _, iface := range interfaces[1:] {
		p.WriteString(" & ")
		p.printNamedType(iface)
	}
}

func (p *printer) printInputValueDefinition(node *InputValueDefinition) {
	p.printDescription(node.Description)
	p.printName(node.Name)
	p.WriteString(": ")
	p.printType(node.Type)
	if node.DefaultValue != nil {
		p.WriteString(" = ")
		p.printValue(node.DefaultValue)
	}
	if len(node.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(node.Directives)
	}
}

// argumentsDefinitionWrapThreshold is the line length, including the enclosing parentheses, above
// which printArgumentsDefinition switches from a single-line rendering to one argument per line.
const argumentsDefinitionWrapThreshold = 80

func (p *printer) printArgumentsDefinition(args []*InputValueDefinition) {
	if len(args) == 0 {
		return
	}

	hasDescription := false
	for _, arg := range args {
		if arg.Description != nil {
			hasDescription = true
			break
		}
	}

	if !hasDescription {
		var buf util.StringBuilder
		oneLine := &printer{StringWriter: &buf}
		oneLine.printInputValueDefinition(args[0])
		for _, arg := range args[1:] {
			oneLine.WriteString(", ")
			oneLine.printInputValueDefinition(arg)
		}
		if buf.Len()+len("()") <= argumentsDefinitionWrapThreshold {
			p.WriteString("(")
			p.WriteString(buf.String())
			p.WriteString(")")
			return
		}
	}

	p.WriteString("(\n")
	p.indentLevel++
	for _, arg := range args {
		p.writeIndent()
		p.printInputValueDefinition(arg)
		p.WriteString("\n")
	}
	p.indentLevel--
	p.writeIndent()
	p.WriteString(")")
}

func (p *printer) printFieldDefinition(node *FieldDefinition) {
	p.printDescription(node.Description)
	p.printName(node.Name)
	p.printArgumentsDefinition(node.Arguments)
	p.WriteString(": ")
	p.printType(node.Type)
	if len(node.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(node.Directives)
	}
}

func (p *printer) printFieldsDefinition(fields []*FieldDefinition) {
	if len(fields) == 0 {
		return
	}
	p.beginBlock()
	p.writeIndent()
	p.printFieldDefinition(fields[0])
	for _, field := range fields[1:] {
		p.writeNewLineWithIndent()
		p.printFieldDefinition(field)
	}
	p.endBlock()
}

func (p *printer) printObjectTypeDefinition(node *ObjectTypeDefinition) {
	p.printDescription(node.Description)
	p.WriteString("type ")
	p.printName(node.Name)
	p.printImplementsInterfaces(node.Interfaces)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Fields) > 0 {
		p.WriteString(" ")
		p.printFieldsDefinition(node.Fields)
	}
}

func (p *printer) printObjectTypeExtension(node *ObjectTypeExtension) {
	p.WriteString("extend type ")
	p.printName(node.Name)
	p.printImplementsInterfaces(node.Interfaces)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Fields) > 0 {
		p.WriteString(" ")
		p.printFieldsDefinition(node.Fields)
	}
}

func (p *printer) printInterfaceTypeDefinition(node *InterfaceTypeDefinition) {
	p.printDescription(node.Description)
	p.WriteString("interface ")
	p.printName(node.Name)
	p.printImplementsInterfaces(node.Interfaces)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Fields) > 0 {
		p.WriteString(" ")
		p.printFieldsDefinition(node.Fields)
	}
}

func (p *printer) printInterfaceTypeExtension(node *InterfaceTypeExtension) {
	p.WriteString("extend interface ")
	p.printName(node.Name)
	p.printImplementsInterfaces(node.Interfaces)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Fields) > 0 {
		p.WriteString(" ")
		p.printFieldsDefinition(node.Fields)
	}
}

func (p *printer) printUnionMemberTypes(types []NamedType) {
	if len(types) == 0 {
		return
	}
	p.WriteString(" = ")
	p.printNamedType(types[0])
	for _, ty := range types[1:] {
		p.WriteString(" | ")
		p.printNamedType(ty)
	}
}

func (p *printer) printUnionTypeDefinition(node *UnionTypeDefinition) {
	p.printDescription(node.Description)
	p.WriteString("union ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	p.printUnionMemberTypes(node.Types)
}

func (p *printer) printUnionTypeExtension(node *UnionTypeExtension) {
	p.WriteString("extend union ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	p.printUnionMemberTypes(node.Types)
}

func (p *printer) printEnumValueDefinition(node *EnumValueDefinition) {
	p.printDescription(node.Description)
	p.printName(node.Name)
	if len(node.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(node.Directives)
	}
}

func (p *printer) printEnumValuesDefinition(values []*EnumValueDefinition) {
	if len(values) == 0 {
		return
	}
	p.beginBlock()
	p.writeIndent()
	p.printEnumValueDefinition(values[0])
	for _, value := range values[1:] {
		p.writeNewLineWithIndent()
		p.printEnumValueDefinition(value)
	}
	p.endBlock()
}

func (p *printer) printEnumTypeDefinition(node *EnumTypeDefinition) {
	p.printDescription(node.Description)
	p.WriteString("enum ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Values) > 0 {
		p.WriteString(" ")
		p.printEnumValuesDefinition(node.Values)
	}
}

func (p *printer) printEnumTypeExtension(node *EnumTypeExtension) {
	p.WriteString("extend enum ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Values) > 0 {
		p.WriteString(" ")
		p.printEnumValuesDefinition(node.Values)
	}
}

func (p *printer) printInputFieldsDefinition(fields []*InputValueDefinition) {
	if len(fields) == 0 {
		return
	}
	p.beginBlock()
	p.writeIndent()
	p.printInputValueDefinition(fields[0])
	for _, field := range fields[1:] {
		p.writeNewLineWithIndent()
		p.printInputValueDefinition(field)
	}
	p.endBlock()
}

func (p *printer) printInputObjectTypeDefinition(node *InputObjectTypeDefinition) {
	p.printDescription(node.Description)
	p.WriteString("input ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Fields) > 0 {
		p.WriteString(" ")
		p.printInputFieldsDefinition(node.Fields)
	}
}

func (p *printer) printInputObjectTypeExtension(node *InputObjectTypeExtension) {
	p.WriteString("extend input ")
	p.printName(node.Name)
	if directives := node.GetDirectives(); len(directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(directives)
	}
	if len(node.Fields) > 0 {
		p.WriteString(" ")
		p.printInputFieldsDefinition(node.Fields)
	}
}

func (p *printer) printDirectiveDefinition(node *DirectiveDefinition) {
	p.printDescription(node.Description)
	p.WriteString("directive @")
	p.printName(node.Name)
	p.printArgumentsDefinition(node.Arguments)
	if node.Repeatable {
		p.WriteString(" repeatable")
	}
	p.WriteString(" on ")
	p.printDirectiveLocations(node.Locations)
}

func (p *printer) printDirectiveLocations(locations []Name) {
	if len(locations) == 0 {
		return
	}
	p.printName(locations[0])
	for _, location := range locations[1:] {
		p.WriteString(" | ")
		p.printName(location)
	}
}
