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

package visitor

import (
	"github.com/graphql-corelang/corelang/graphql/ast"
)

// kindOf names the Go type of node so callbacks can be dispatched through Visitor.Kinds. Name
// fields (Field.Alias, Argument.Name, a NamedType's Name, ...) are visited as children in their
// own right, matching graphql-js's keyMap, so a Kinds["Name"] entry can replace any of them.
func kindOf(node ast.Node) string {
	switch node.(type) {
	case ast.Document:
		return "Document"
	case ast.Name:
		return "Name"
	case *ast.OperationDefinition:
		return "OperationDefinition"
	case *ast.FragmentDefinition:
		return "FragmentDefinition"
	case *ast.Field:
		return "Field"
	case *ast.Argument:
		return "Argument"
	case *ast.FragmentSpread:
		return "FragmentSpread"
	case *ast.InlineFragment:
		return "InlineFragment"
	case ast.Variable:
		return "Variable"
	case ast.IntValue:
		return "IntValue"
	case ast.FloatValue:
		return "FloatValue"
	case ast.StringValue:
		return "StringValue"
	case ast.BooleanValue:
		return "BooleanValue"
	case ast.NullValue:
		return "NullValue"
	case ast.EnumValue:
		return "EnumValue"
	case ast.ListValue:
		return "ListValue"
	case ast.ObjectValue:
		return "ObjectValue"
	case *ast.ObjectField:
		return "ObjectField"
	case *ast.VariableDefinition:
		return "VariableDefinition"
	case ast.NamedType:
		return "NamedType"
	case ast.ListType:
		return "ListType"
	case ast.NonNullType:
		return "NonNullType"
	case *ast.Directive:
		return "Directive"
	case *ast.SchemaDefinition:
		return "SchemaDefinition"
	case *ast.SchemaExtension:
		return "SchemaExtension"
	case *ast.OperationTypeDefinition:
		return "OperationTypeDefinition"
	case *ast.ScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case *ast.ScalarTypeExtension:
		return "ScalarTypeExtension"
	case *ast.ObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case *ast.ObjectTypeExtension:
		return "ObjectTypeExtension"
	case *ast.FieldDefinition:
		return "FieldDefinition"
	case *ast.InputValueDefinition:
		return "InputValueDefinition"
	case *ast.InterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case *ast.InterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case *ast.UnionTypeDefinition:
		return "UnionTypeDefinition"
	case *ast.UnionTypeExtension:
		return "UnionTypeExtension"
	case *ast.EnumTypeDefinition:
		return "EnumTypeDefinition"
	case *ast.EnumTypeExtension:
		return "EnumTypeExtension"
	case *ast.EnumValueDefinition:
		return "EnumValueDefinition"
	case *ast.InputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case *ast.InputObjectTypeExtension:
		return "InputObjectTypeExtension"
	case *ast.DirectiveDefinition:
		return "DirectiveDefinition"
	default:
		return ""
	}
}

// clonePtr shallow-copies a pointer-kind node before visitChildren mutates its fields, so editing
// a node (ActionReplace/ActionRemove on a child) never reaches back into the caller's original
// tree. Value-kind nodes (ast.Document, ast.NamedType, ast.Variable, ...) need no such copy: a Go
// type switch on an interface already extracts a fresh copy of a value type for free.
func clonePtr[T any](n *T) *T {
	c := *n
	return &c
}

// visitChildren dispatches into node's children, in grammar order, rebuilding any edited slices.
func visitChildren(w *walker, node ast.Node) ast.Node {
	switch n := node.(type) {

	case ast.Document:
		defs := make([]ast.Definition, 0, len(n.Definitions))
		for i, d := range n.Definitions {
			if v := w.visit(d, i, n); v != nil {
				defs = append(defs, v.(ast.Definition))
			}
		}
		n.Definitions = defs
		return n

	case ast.Name:
		return n

	case ast.NamedType:
		n.Name = w.visitName(n.Name, "Name", n)
		return n

	case *ast.OperationDefinition:
		n = clonePtr(n)
		if n.Name.Token != nil {
			n.Name = w.visitName(n.Name, "Name", n)
		}
		n.VariableDefinitions = w.visitVariableDefinitions(n.VariableDefinitions, n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.SelectionSet = w.visitSelectionSet(n.SelectionSet, n)
		return n

	case *ast.FragmentDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.VariableDefinitions = w.visitVariableDefinitions(n.VariableDefinitions, n)
		if tc := w.visit(n.TypeCondition, "TypeCondition", n); tc != nil {
			n.TypeCondition = tc.(ast.NamedType)
		}
		n.Directives = w.visitDirectives(n.Directives, n)
		n.SelectionSet = w.visitSelectionSet(n.SelectionSet, n)
		return n

	case *ast.Field:
		n = clonePtr(n)
		if n.Alias.Token != nil {
			n.Alias = w.visitName(n.Alias, "Alias", n)
		}
		n.Name = w.visitName(n.Name, "Name", n)
		n.Arguments = w.visitArguments(n.Arguments, n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.SelectionSet = w.visitSelectionSet(n.SelectionSet, n)
		return n

	case *ast.Argument:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		if v := w.visit(n.Value, "Value", n); v != nil {
			n.Value = v.(ast.Value)
		}
		return n

	case *ast.FragmentSpread:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case *ast.InlineFragment:
		n = clonePtr(n)
		if n.HasTypeCondition() {
			if tc := w.visit(n.TypeCondition, "TypeCondition", n); tc != nil {
				n.TypeCondition = tc.(ast.NamedType)
			}
		}
		n.Directives = w.visitDirectives(n.Directives, n)
		n.SelectionSet = w.visitSelectionSet(n.SelectionSet, n)
		return n

	case ast.Variable:
		n.Name = w.visitName(n.Name, "Name", n)
		return n

	case ast.ListValue:
		if n.IsEmpty() {
			return n
		}
		values := n.Values()
		out := make([]ast.Value, 0, len(values))
		for i, v := range values {
			if r := w.visit(v, i, n); r != nil {
				out = append(out, r.(ast.Value))
			}
		}
		n.ValuesOrStartToken = interface{}(out)
		return n

	case ast.ObjectValue:
		if !n.HasFields() {
			return n
		}
		fields := n.Fields()
		out := make([]*ast.ObjectField, 0, len(fields))
		for i, f := range fields {
			if v := w.visit(f, i, n); v != nil {
				out = append(out, v.(*ast.ObjectField))
			}
		}
		n.FieldsOrStartToken = interface{}(out)
		return n

	case *ast.ObjectField:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		if v := w.visit(n.Value, "Value", n); v != nil {
			n.Value = v.(ast.Value)
		}
		return n

	case *ast.VariableDefinition:
		n = clonePtr(n)
		if v := w.visit(n.Variable, "Variable", n); v != nil {
			n.Variable = v.(ast.Variable)
		}
		if t := w.visit(n.Type, "Type", n); t != nil {
			n.Type = t.(ast.Type)
		}
		if n.DefaultValue != nil {
			if v := w.visit(n.DefaultValue, "DefaultValue", n); v != nil {
				n.DefaultValue = v.(ast.Value)
			}
		}
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case ast.ListType:
		if t := w.visit(n.ItemType, "ItemType", n); t != nil {
			n.ItemType = t.(ast.Type)
		}
		return n

	case ast.NonNullType:
		if t := w.visit(n.Type, "Type", n); t != nil {
			n.Type = t.(ast.NullableType)
		}
		return n

	case *ast.Directive:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Arguments = w.visitArguments(n.Arguments, n)
		return n

	case *ast.SchemaDefinition:
		n = clonePtr(n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.OperationTypes = w.visitOperationTypeDefinitions(n.OperationTypes, n)
		return n

	case *ast.SchemaExtension:
		n = clonePtr(n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.OperationTypes = w.visitOperationTypeDefinitions(n.OperationTypes, n)
		return n

	case *ast.OperationTypeDefinition:
		n = clonePtr(n)
		if t := w.visit(n.Type, "Type", n); t != nil {
			n.Type = t.(ast.NamedType)
		}
		return n

	case *ast.ScalarTypeDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case *ast.ScalarTypeExtension:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case *ast.ObjectTypeDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Interfaces = w.visitNamedTypes(n.Interfaces, n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Fields = w.visitFieldDefinitions(n.Fields, n)
		return n

	case *ast.ObjectTypeExtension:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Interfaces = w.visitNamedTypes(n.Interfaces, n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Fields = w.visitFieldDefinitions(n.Fields, n)
		return n

	case *ast.FieldDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Arguments = w.visitInputValueDefinitions(n.Arguments, n)
		if t := w.visit(n.Type, "Type", n); t != nil {
			n.Type = t.(ast.Type)
		}
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case *ast.InputValueDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		if t := w.visit(n.Type, "Type", n); t != nil {
			n.Type = t.(ast.Type)
		}
		if n.DefaultValue != nil {
			if v := w.visit(n.DefaultValue, "DefaultValue", n); v != nil {
				n.DefaultValue = v.(ast.Value)
			}
		}
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case *ast.InterfaceTypeDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Interfaces = w.visitNamedTypes(n.Interfaces, n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Fields = w.visitFieldDefinitions(n.Fields, n)
		return n

	case *ast.InterfaceTypeExtension:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Interfaces = w.visitNamedTypes(n.Interfaces, n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Fields = w.visitFieldDefinitions(n.Fields, n)
		return n

	case *ast.UnionTypeDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Types = w.visitNamedTypes(n.Types, n)
		return n

	case *ast.UnionTypeExtension:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Types = w.visitNamedTypes(n.Types, n)
		return n

	case *ast.EnumTypeDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Values = w.visitEnumValueDefinitions(n.Values, n)
		return n

	case *ast.EnumTypeExtension:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Values = w.visitEnumValueDefinitions(n.Values, n)
		return n

	case *ast.EnumValueDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		return n

	case *ast.InputObjectTypeDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Fields = w.visitInputValueDefinitions(n.Fields, n)
		return n

	case *ast.InputObjectTypeExtension:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Directives = w.visitDirectives(n.Directives, n)
		n.Fields = w.visitInputValueDefinitions(n.Fields, n)
		return n

	case *ast.DirectiveDefinition:
		n = clonePtr(n)
		n.Name = w.visitName(n.Name, "Name", n)
		n.Arguments = w.visitInputValueDefinitions(n.Arguments, n)
		n.Locations = w.visitNames(n.Locations, n)
		return n

	default:
		// Leaf node: IntValue, FloatValue, StringValue, BooleanValue, NullValue, EnumValue, empty
		// ListValue/ObjectValue—nothing further to descend into.
		return node
	}
}

func (w *walker) visitSelectionSet(set ast.SelectionSet, parent ast.Node) ast.SelectionSet {
	if set == nil {
		return set
	}
	out := make(ast.SelectionSet, 0, len(set))
	for i, sel := range set {
		if v := w.visit(sel, i, parent); v != nil {
			out = append(out, v.(ast.Selection))
		}
	}
	return out
}

func (w *walker) visitArguments(args ast.Arguments, parent ast.Node) ast.Arguments {
	if args == nil {
		return args
	}
	out := make(ast.Arguments, 0, len(args))
	for i, a := range args {
		if v := w.visit(a, i, parent); v != nil {
			out = append(out, v.(*ast.Argument))
		}
	}
	return out
}

func (w *walker) visitDirectives(dirs ast.Directives, parent ast.Node) ast.Directives {
	if dirs == nil {
		return dirs
	}
	out := make(ast.Directives, 0, len(dirs))
	for i, d := range dirs {
		if v := w.visit(d, i, parent); v != nil {
			out = append(out, v.(*ast.Directive))
		}
	}
	return out
}

func (w *walker) visitVariableDefinitions(defs []*ast.VariableDefinition, parent ast.Node) []*ast.VariableDefinition {
	if defs == nil {
		return defs
	}
	out := make([]*ast.VariableDefinition, 0, len(defs))
	for i, d := range defs {
		if v := w.visit(d, i, parent); v != nil {
			out = append(out, v.(*ast.VariableDefinition))
		}
	}
	return out
}

func (w *walker) visitNamedTypes(types []ast.NamedType, parent ast.Node) []ast.NamedType {
	if types == nil {
		return types
	}
	out := make([]ast.NamedType, 0, len(types))
	for i, t := range types {
		if v := w.visit(t, i, parent); v != nil {
			out = append(out, v.(ast.NamedType))
		}
	}
	return out
}

func (w *walker) visitFieldDefinitions(fields []*ast.FieldDefinition, parent ast.Node) []*ast.FieldDefinition {
	if fields == nil {
		return fields
	}
	out := make([]*ast.FieldDefinition, 0, len(fields))
	for i, f := range fields {
		if v := w.visit(f, i, parent); v != nil {
			out = append(out, v.(*ast.FieldDefinition))
		}
	}
	return out
}

func (w *walker) visitInputValueDefinitions(fields []*ast.InputValueDefinition, parent ast.Node) []*ast.InputValueDefinition {
	if fields == nil {
		return fields
	}
	out := make([]*ast.InputValueDefinition, 0, len(fields))
	for i, f := range fields {
		if v := w.visit(f, i, parent); v != nil {
			out = append(out, v.(*ast.InputValueDefinition))
		}
	}
	return out
}

func (w *walker) visitEnumValueDefinitions(values []*ast.EnumValueDefinition, parent ast.Node) []*ast.EnumValueDefinition {
	if values == nil {
		return values
	}
	out := make([]*ast.EnumValueDefinition, 0, len(values))
	for i, v := range values {
		if r := w.visit(v, i, parent); r != nil {
			out = append(out, r.(*ast.EnumValueDefinition))
		}
	}
	return out
}

func (w *walker) visitName(name ast.Name, key interface{}, parent ast.Node) ast.Name {
	v := w.visit(name, key, parent)
	if v == nil {
		return ast.Name{}
	}
	return v.(ast.Name)
}

func (w *walker) visitNames(names []ast.Name, parent ast.Node) []ast.Name {
	if names == nil {
		return names
	}
	out := make([]ast.Name, 0, len(names))
	for i, n := range names {
		if v := w.visit(n, i, parent); v != nil {
			out = append(out, v.(ast.Name))
		}
	}
	return out
}

func (w *walker) visitOperationTypeDefinitions(ops []*ast.OperationTypeDefinition, parent ast.Node) []*ast.OperationTypeDefinition {
	if ops == nil {
		return ops
	}
	out := make([]*ast.OperationTypeDefinition, 0, len(ops))
	for i, op := range ops {
		if v := w.visit(op, i, parent); v != nil {
			out = append(out, v.(*ast.OperationTypeDefinition))
		}
	}
	return out
}
