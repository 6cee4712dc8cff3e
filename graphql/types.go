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

// Type is implemented by every member of the GraphQL type system: the six named kinds (Scalar,
// Object, Interface, Union, Enum, InputObject), the two wrapping kinds (List, NonNull), and
// TypeReference, the placeholder that stands in for a named type until the resolver pass runs.
//
// graphqlType is unexported so Type can only be implemented by types defined in this package.
type Type interface {
	graphqlType()
	String() string
}

// TypeWithName is implemented by every named type.
type TypeWithName interface {
	Type
	Name() string
}

// TypeWithDescription is implemented by every named type; Description returns "" when none was
// given.
type TypeWithDescription interface {
	Type
	Description() string
}

// TypeWithASTNode is implemented by types that were constructed from a parsed definition, letting
// validator errors report a source location.
type TypeWithASTNode interface {
	Type
	ASTNode() ast.Node
}

// LeafType is implemented by the two kinds that terminate a selection (Scalar, Enum): types with no
// sub-selectable fields.
type LeafType interface {
	Type
	ThisIsLeafType()
}

// AbstractType is implemented by the two kinds whose concrete type is resolved per-value
// (Interface, Union).
type AbstractType interface {
	Type
	ThisIsAbstractType()
}

// CompositeType is implemented by the three kinds that may own a selection set (Object, Interface,
// Union).
type CompositeType interface {
	Type
	ThisIsCompositeType()
}

// WrappingType is implemented by List and NonNull: types that modify another type rather than
// naming one.
type WrappingType interface {
	Type
	ThisIsWrappingType()
	OfType() Type
}

// NullableType is implemented by every type that may legally appear unwrapped by NonNull: the six
// named kinds plus List.
type NullableType interface {
	Type
	ThisIsNullableType()
}

// Deprecation carries the reason an enum value or field was marked @deprecated.
type Deprecation struct {
	// Reason explains why the member was deprecated and, ideally, what to use instead. Defaults to
	// "No longer supported." when a @deprecated directive omits the reason argument.
	Reason string
}

// NamedTypeOf unwraps List and NonNull layers and returns the named type underneath.
func NamedTypeOf(t Type) TypeWithName {
	for {
		switch wrapped := t.(type) {
		case WrappingType:
			t = wrapped.OfType()
		case TypeWithName:
			return wrapped
		default:
			return nil
		}
	}
}

// NullableTypeOf strips a single leading NonNull wrapper, if any.
func NullableTypeOf(t Type) Type {
	if nonNull, ok := t.(*NonNull); ok {
		return nonNull.OfType()
	}
	return t
}

// IsInputType reports whether t may legally appear as the type of an argument or input field:
// a scalar, enum or input object, or a list/non-null wrapping thereof.
func IsInputType(t Type) bool {
	named := NamedTypeOf(t)
	if named == nil {
		return false
	}
	switch named.(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t may legally appear as a field's return type: a scalar, object,
// interface, union or enum, or a list/non-null wrapping thereof.
func IsOutputType(t Type) bool {
	named := NamedTypeOf(t)
	if named == nil {
		return false
	}
	switch named.(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

// IsLeafType reports whether t is a Scalar or Enum.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsCompositeType reports whether t is an Object, Interface or Union.
func IsCompositeType(t Type) bool {
	_, ok := t.(CompositeType)
	return ok
}

// IsAbstractType reports whether t is an Interface or Union.
func IsAbstractType(t Type) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsWrappingType reports whether t is a List or NonNull.
func IsWrappingType(t Type) bool {
	_, ok := t.(WrappingType)
	return ok
}

// IsNullableType reports whether t is not wrapped in NonNull.
func IsNullableType(t Type) bool {
	_, ok := t.(*NonNull)
	return !ok
}

// IsNamedType reports whether t implements TypeWithName.
func IsNamedType(t Type) bool {
	_, ok := t.(TypeWithName)
	return ok
}
