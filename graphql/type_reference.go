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

// TypeReference stands in for a named type that has not been resolved yet. A schema under
// construction may freely mention a type by name before that type exists as a Go value -
// including names that don't resolve until a later, mutually-recursive type is built - because
// resolution happens in a dedicated pass (resolveTypeReferences) after every named type in the
// schema has been constructed and placed in a TypeMap.
//
// A TypeReference is never valid inside a schema that has finished construction: every field and
// argument type reachable from Schema.Types() must have been replaced with the named type it
// pointed at.
type TypeReference struct {
	name string
}

var _ Type = (*TypeReference)(nil)

// NewTypeReference builds a placeholder for the named type named name.
func NewTypeReference(name string) *TypeReference {
	return &TypeReference{name: name}
}

func (*TypeReference) graphqlType() {}

// Name is the referenced type's name.
func (r *TypeReference) Name() string { return r.name }

// String implements fmt.Stringer.
func (r *TypeReference) String() string { return r.name }

// TypeMap indexes every named type in a schema by name, keeping the order types were added in (the
// order Schema.Types() reports them).
type TypeMap struct {
	orderedMap[TypeWithName]
}

func newTypeMap(types []TypeWithName) TypeMap {
	return TypeMap{newOrderedMap(types, TypeWithName.Name)}
}

// resolveTypeReferences walks every field and argument type of every object, interface and
// input-object in types, replacing *TypeReference values with the matching named type from
// typeMap. A name absent from typeMap is a schema-construction error. Because this is a second
// pass over an already-built graph, arbitrarily cyclic references between types resolve correctly:
// construction never needed the referent to exist yet, only its name.
func resolveTypeReferences(types []TypeWithName, typeMap TypeMap) error {
	var resolveSlot func(slot *Type) error
	resolveSlot = func(slot *Type) error {
		switch t := (*slot).(type) {
		case *TypeReference:
			named, found := typeMap.Lookup(t.name)
			if !found {
				return NewError("Type \"" + t.name + "\" not found in schema.")
			}
			*slot = named.(Type)
			return nil
		case *List:
			return resolveSlot(&t.ofType)
		case *NonNull:
			return resolveSlot(&t.ofType)
		default:
			return nil
		}
	}

	var err error
	visitOne := func(slot *Type) {
		if err == nil {
			err = resolveSlot(slot)
		}
	}

	for _, t := range types {
		switch t := t.(type) {
		case *Object:
			t.visitReferences(visitOne)
		case *Interface:
			t.visitReferences(visitOne)
		case *InputObject:
			t.visitReferences(visitOne)
		case *Union:
			t.visitReferences(visitOne)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
