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
	"sync"

	"github.com/graphql-corelang/corelang/graphql/ast"
)

// SchemaConfig specifies a Schema. Query is the only required root type.
type SchemaConfig struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object

	// Types lists additional named types to include even when nothing reachable from the root types
	// mentions them (e.g. a Union member that is otherwise unreferenced, or an Object that only
	// implements an Interface appearing elsewhere).
	Types []TypeWithName

	// Directives lists additional directives beyond the five built-ins, which are always present.
	Directives []*Directive

	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
}

// Schema is the fully-resolved, immutable root of a GraphQL type system: every named type it
// reaches has already gone through the type-reference resolver pass, so no *TypeReference is
// reachable from any of its fields.
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object
	types        TypeMap
	directives   []*Directive

	// possibleTypes maps an abstract type's name to the Object types that may satisfy it. Computed
	// eagerly at construction (one of the two options the concurrency model allows for this
	// memoization) so concurrent readers never race to fill it in.
	possibleTypes map[string][]*Object

	astNode           ast.Node
	extensionASTNodes []ast.Node

	validation struct {
		once sync.Once
		errs []*Error
	}
}

// NewSchema builds a Schema from config: it collects every named type reachable from the root
// types and Config.Types into a TypeMap, runs the type-reference resolver pass over them, and
// computes the abstract-type possible-types index. It does not run validateSchema; call that
// separately to obtain structural-validity errors.
func NewSchema(config SchemaConfig) (*Schema, error) {
	if config.Query == nil {
		return nil, NewError("Query root type must be provided.")
	}

	directives := make([]*Directive, 0, len(specifiedDirectives)+len(config.Directives))
	directives = append(directives, specifiedDirectives...)
	directives = append(directives, config.Directives...)

	collector := newTypeCollector()
	collector.add(config.Query)
	if config.Mutation != nil {
		collector.add(config.Mutation)
	}
	if config.Subscription != nil {
		collector.add(config.Subscription)
	}
	for _, t := range config.Types {
		collector.add(t)
	}
	for _, s := range specifiedScalars {
		collector.add(s)
	}
	for _, d := range directives {
		for _, a := range d.Args().All() {
			collector.add(a.argType)
		}
	}

	typeMap := newTypeMap(collector.ordered)

	if err := resolveTypeReferences(collector.ordered, typeMap); err != nil {
		return nil, err
	}

	schema := &Schema{
		query:             config.Query,
		mutation:          config.Mutation,
		subscription:      config.Subscription,
		types:             typeMap,
		directives:        directives,
		astNode:           config.ASTNode,
		extensionASTNodes: config.ExtensionASTNodes,
	}
	schema.possibleTypes = computePossibleTypes(collector.ordered)

	return schema, nil
}

// MustNewSchema panics instead of returning an error.
func MustNewSchema(config SchemaConfig) *Schema {
	s, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return s
}

// QueryType is the schema's required query root.
func (s *Schema) QueryType() *Object { return s.query }

// MutationType is the schema's mutation root, or nil when absent.
func (s *Schema) MutationType() *Object { return s.mutation }

// SubscriptionType is the schema's subscription root, or nil when absent.
func (s *Schema) SubscriptionType() *Object { return s.subscription }

// Types returns every named type in the schema, in discovery order (the root types first, then
// types transitively reachable from them, then any extra types from SchemaConfig.Types, then the
// five built-in scalars, then directive argument types).
func (s *Schema) Types() TypeMap { return s.types }

// TypeByName looks up a named type, or returns (nil, false) when the schema has no type by that
// name.
func (s *Schema) TypeByName(name string) (TypeWithName, bool) { return s.types.Lookup(name) }

// Directives returns every directive known to the schema: the five built-ins followed by those
// given in SchemaConfig.Directives.
func (s *Schema) Directives() []*Directive { return s.directives }

// DirectiveByName looks up a directive, or returns (nil, false) when none has that name.
func (s *Schema) DirectiveByName(name string) (*Directive, bool) {
	for _, d := range s.directives {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// PossibleTypes returns the Object types that may satisfy abstractType (an Interface or Union).
func (s *Schema) PossibleTypes(abstractType TypeWithName) []*Object {
	return s.possibleTypes[abstractType.Name()]
}

// IsPossibleType reports whether object may satisfy abstractType.
func (s *Schema) IsPossibleType(abstractType TypeWithName, object *Object) bool {
	for _, o := range s.possibleTypes[abstractType.Name()] {
		if o == object {
			return true
		}
	}
	return false
}

// ASTNode is the schema definition this type was parsed from, or nil when built programmatically.
func (s *Schema) ASTNode() ast.Node { return s.astNode }

// ExtensionASTNodes are parsed schema extensions merged into this schema.
func (s *Schema) ExtensionASTNodes() []ast.Node { return s.extensionASTNodes }

// ValidationCache runs compute at most once for the lifetime of the schema and caches the result,
// per the concurrency model's requirement that possibleTypeMap-style memoization on an immutable
// schema either be computed eagerly or guarded by a lock/once-cell. The validator package calls
// this so validateSchema never re-checks a schema that has already been validated.
func (s *Schema) ValidationCache(compute func() []*Error) []*Error {
	s.validation.once.Do(func() {
		s.validation.errs = compute()
	})
	return s.validation.errs
}

// typeCollector walks a schema's root types, assembling the full set of reachable named types in
// first-discovery order (matching the ordering guarantee that definitions and types preserve
// source order through construction, printing and introspection).
type typeCollector struct {
	ordered []TypeWithName
	seen    map[string]bool
}

func newTypeCollector() *typeCollector {
	return &typeCollector{seen: make(map[string]bool)}
}

func (c *typeCollector) add(t Type) {
	if wrapping, ok := t.(WrappingType); ok {
		c.add(wrapping.OfType())
		return
	}
	if _, ok := t.(*TypeReference); ok {
		// A placeholder isn't itself a type to collect: the resolver pass below replaces it with
		// whatever it names, which must already be reachable some other way (a root type, another
		// field, or an entry in SchemaConfig.Types).
		return
	}
	named, ok := t.(TypeWithName)
	if !ok {
		return
	}
	if c.seen[named.Name()] {
		return
	}
	c.seen[named.Name()] = true
	c.ordered = append(c.ordered, named)

	switch t := named.(type) {
	case *Object:
		for _, iface := range t.interfaces {
			c.add(iface)
		}
		for _, f := range t.fields.All() {
			c.add(f.fieldType)
			for _, a := range f.args.All() {
				c.add(a.argType)
			}
		}
	case *Interface:
		for _, iface := range t.interfaces {
			c.add(iface)
		}
		for _, f := range t.fields.All() {
			c.add(f.fieldType)
			for _, a := range f.args.All() {
				c.add(a.argType)
			}
		}
	case *Union:
		for _, member := range t.types {
			c.add(member)
		}
	case *InputObject:
		for _, f := range t.fields.All() {
			c.add(f.fieldType)
		}
	}
}

// computePossibleTypes builds the abstract-type -> possible-Object-types index, resolving
// transitive interface implementation (an Object implementing I, where I itself implements J,
// is also a possible type for J).
func computePossibleTypes(types []TypeWithName) map[string][]*Object {
	possible := make(map[string][]*Object)

	var implementsTransitively func(o *Object, target *Interface, visiting map[string]bool) bool
	implementsTransitively = func(o *Object, target *Interface, visiting map[string]bool) bool {
		for _, iface := range o.interfaces {
			if iface.Name() == target.Name() {
				return true
			}
		}
		for _, iface := range o.interfaces {
			if visiting[iface.Name()] {
				continue
			}
			visiting[iface.Name()] = true
			if interfaceImplementsInterface(iface, target, visiting) {
				return true
			}
		}
		return false
	}

	for _, t := range types {
		object, ok := t.(*Object)
		if !ok {
			continue
		}
		for _, t2 := range types {
			iface, ok := t2.(*Interface)
			if !ok {
				continue
			}
			if implementsTransitively(object, iface, map[string]bool{}) {
				possible[iface.Name()] = append(possible[iface.Name()], object)
			}
		}
	}

	for _, t := range types {
		union, ok := t.(*Union)
		if !ok {
			continue
		}
		possible[union.Name()] = append(possible[union.Name()], union.types...)
	}

	return possible
}

// interfaceImplementsInterface reports whether iface transitively implements target.
func interfaceImplementsInterface(iface *Interface, target *Interface, visiting map[string]bool) bool {
	for _, parent := range iface.interfaces {
		if parent.Name() == target.Name() {
			return true
		}
		if visiting[parent.Name()] {
			continue
		}
		visiting[parent.Name()] = true
		if interfaceImplementsInterface(parent, target, visiting) {
			return true
		}
	}
	return false
}
