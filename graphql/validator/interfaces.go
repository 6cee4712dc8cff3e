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

package validator

import (
	"github.com/graphql-corelang/corelang/graphql"
	"github.com/graphql-corelang/corelang/graphql/ast"
)

// implementor is satisfied by *graphql.Object and *graphql.Interface: the two kinds that may
// declare `implements`.
type implementor interface {
	graphql.TypeWithName
	Fields() graphql.FieldMap
	Interfaces() []*graphql.Interface
	ASTNode() ast.Node
}

func validateInterfaceImplementations(c *context) {
	for _, t := range c.schema.Types().All() {
		switch t := t.(type) {
		case *graphql.Object:
			validateImplements(c, t)
		case *graphql.Interface:
			validateImplements(c, t)
		}
	}
}

func validateImplements(c *context, t implementor) {
	seen := map[string]bool{}
	for _, iface := range t.Interfaces() {
		if iface.Name() == t.Name() {
			c.reportAt("Type "+t.Name()+" cannot implement itself because it would create a circular "+
				"reference.", t.ASTNode())
			continue
		}
		if seen[iface.Name()] {
			c.reportAt("Type "+t.Name()+" can only implement "+iface.Name()+" once.", t.ASTNode())
			continue
		}
		seen[iface.Name()] = true

		for _, transitive := range transitiveInterfaceNames(iface) {
			if !seen[transitive] && !declaresInterface(t, transitive) {
				c.reportAt("Type "+t.Name()+" must implement "+transitive+" because it is implemented "+
					"by "+iface.Name()+".", t.ASTNode())
			}
		}

		validateFieldContract(c, t, iface)
	}
}

func declaresInterface(t implementor, name string) bool {
	for _, iface := range t.Interfaces() {
		if iface.Name() == name {
			return true
		}
	}
	return false
}

func transitiveInterfaceNames(iface *graphql.Interface) []string {
	var names []string
	visiting := map[string]bool{}
	var walk func(i *graphql.Interface)
	walk = func(i *graphql.Interface) {
		for _, parent := range i.Interfaces() {
			if visiting[parent.Name()] {
				continue
			}
			visiting[parent.Name()] = true
			names = append(names, parent.Name())
			walk(parent)
		}
	}
	walk(iface)
	return names
}

func validateFieldContract(c *context, t implementor, iface *graphql.Interface) {
	for _, ifaceField := range iface.Fields().All() {
		field, ok := t.Fields().Lookup(ifaceField.Name())
		if !ok {
			c.reportAt("Interface field "+iface.Name()+"."+ifaceField.Name()+" expected but "+
				t.Name()+" does not provide it.", t.ASTNode())
			continue
		}

		if !isTypeSubTypeOf(c.schema, field.Type(), ifaceField.Type()) {
			c.reportAt("Interface field "+iface.Name()+"."+ifaceField.Name()+" expects type "+
				ifaceField.Type().String()+" but "+t.Name()+"."+field.Name()+" is type "+
				field.Type().String()+".", field.ASTNode())
		}

		for _, ifaceArg := range ifaceField.Args().All() {
			arg, ok := field.Args().Lookup(ifaceArg.Name())
			if !ok {
				c.reportAt("Interface field argument "+iface.Name()+"."+ifaceField.Name()+"("+
					ifaceArg.Name()+":) expected but "+t.Name()+"."+field.Name()+" does not provide it.",
					field.ASTNode())
				continue
			}
			if !isEqualType(arg.Type(), ifaceArg.Type()) {
				c.reportAt("Interface field argument "+iface.Name()+"."+ifaceField.Name()+"("+
					ifaceArg.Name()+":) expects type "+ifaceArg.Type().String()+" but "+t.Name()+"."+
					field.Name()+"("+arg.Name()+":) is type "+arg.Type().String()+".", arg.ASTNode())
			}
		}

		for _, arg := range field.Args().All() {
			if _, ok := ifaceField.Args().Lookup(arg.Name()); ok {
				continue
			}
			if isRequiredArgument(arg) {
				c.reportAt("Object field "+t.Name()+"."+field.Name()+" includes required argument "+
					arg.Name()+" that is missing from the Interface field "+iface.Name()+"."+
					ifaceField.Name()+".", arg.ASTNode())
			}
		}
	}
}

// isEqualType reports whether a and b are the same type, structurally.
func isEqualType(a, b graphql.Type) bool {
	if a == b {
		return true
	}
	if aNN, ok := a.(*graphql.NonNull); ok {
		bNN, ok := b.(*graphql.NonNull)
		return ok && isEqualType(aNN.OfType(), bNN.OfType())
	}
	if aList, ok := a.(*graphql.List); ok {
		bList, ok := b.(*graphql.List)
		return ok && isEqualType(aList.OfType(), bList.OfType())
	}
	aNamed, aOk := a.(graphql.TypeWithName)
	bNamed, bOk := b.(graphql.TypeWithName)
	return aOk && bOk && aNamed.Name() == bNamed.Name()
}

// isTypeSubTypeOf implements the covariant return-type rule: maybeSubType is acceptable wherever
// superType is expected when it is the same type, a non-null refinement of it, a list whose inner
// type is itself a subtype, or (when superType is abstract) a possible type of it.
func isTypeSubTypeOf(schema *graphql.Schema, maybeSubType, superType graphql.Type) bool {
	if maybeSubType == superType {
		return true
	}

	if superNN, ok := superType.(*graphql.NonNull); ok {
		subNN, ok := maybeSubType.(*graphql.NonNull)
		if !ok {
			return false
		}
		return isTypeSubTypeOf(schema, subNN.OfType(), superNN.OfType())
	}
	if subNN, ok := maybeSubType.(*graphql.NonNull); ok {
		// A non-null type is a subtype of its nullable counterpart.
		return isTypeSubTypeOf(schema, subNN.OfType(), superType)
	}

	if superList, ok := superType.(*graphql.List); ok {
		subList, ok := maybeSubType.(*graphql.List)
		if !ok {
			return false
		}
		return isTypeSubTypeOf(schema, subList.OfType(), superList.OfType())
	}
	if _, ok := maybeSubType.(*graphql.List); ok {
		return false
	}

	subNamed, subOk := maybeSubType.(graphql.TypeWithName)
	superNamed, superOk := superType.(graphql.TypeWithName)
	if !subOk || !superOk {
		return false
	}
	if subNamed.Name() == superNamed.Name() {
		return true
	}
	if subObject, ok := maybeSubType.(*graphql.Object); ok && graphql.IsAbstractType(superType) {
		return schema.IsPossibleType(superNamed, subObject)
	}
	return false
}
