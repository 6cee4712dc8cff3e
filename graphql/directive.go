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

// DirectiveLocation names a place in a GraphQL document or schema where a directive may appear.
type DirectiveLocation string

// Enumeration of DirectiveLocation, per the October 2021 edition's ExecutableDirectiveLocation and
// TypeSystemDirectiveLocation productions.
const (
	DirectiveLocationQuery               DirectiveLocation = "QUERY"
	DirectiveLocationMutation            DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription        DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField               DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition  DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread      DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment      DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition  DirectiveLocation = "VARIABLE_DEFINITION"
	DirectiveLocationSchema              DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar              DirectiveLocation = "SCALAR"
	DirectiveLocationObject              DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition     DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition  DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface           DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion               DirectiveLocation = "UNION"
	DirectiveLocationEnum                DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue           DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject         DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveConfig specifies a Directive definition.
type DirectiveConfig struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Args        []NamedArgumentConfig

	// IsRepeatable marks the directive usable more than once at the same location, per the
	// `repeatable` modifier introduced in the October 2021 edition.
	IsRepeatable bool

	ASTNode ast.Node
}

// Directive is a resolved, immutable directive definition.
type Directive struct {
	name         string
	description  string
	locations    []DirectiveLocation
	args         ArgumentMap
	isRepeatable bool
	astNode      ast.Node
}

// Name of the directive, without the leading '@'.
func (d *Directive) Name() string { return d.name }

// Description of the directive.
func (d *Directive) Description() string { return d.description }

// Locations where the directive is valid.
func (d *Directive) Locations() []DirectiveLocation { return d.locations }

// Args accepted by the directive, in declaration order.
func (d *Directive) Args() ArgumentMap { return d.args }

// IsRepeatable reports whether the directive may be used more than once at the same location.
func (d *Directive) IsRepeatable() bool { return d.isRepeatable }

// ASTNode is the definition this directive was parsed from, or nil when built programmatically.
func (d *Directive) ASTNode() ast.Node { return d.astNode }

// HasLocation reports whether loc is among the directive's declared locations.
func (d *Directive) HasLocation(loc DirectiveLocation) bool {
	for _, l := range d.locations {
		if l == loc {
			return true
		}
	}
	return false
}

// NewDirective builds a Directive from config.
func NewDirective(config DirectiveConfig) (*Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}
	if len(config.Locations) == 0 {
		return nil, NewError("Must provide locations for Directive " + config.Name + ".")
	}
	argOrder := make([]orderedArgumentConfig, len(config.Args))
	for i, a := range config.Args {
		argOrder[i] = orderedArgumentConfig{name: a.Name, config: a.Config}
	}
	args, err := buildArguments(argOrder)
	if err != nil {
		return nil, WrapErrorf(err, "Directive %q argument configuration is invalid", config.Name)
	}
	return &Directive{
		name:         config.Name,
		description:  config.Description,
		locations:    config.Locations,
		args:         args,
		isRepeatable: config.IsRepeatable,
		astNode:      config.ASTNode,
	}, nil
}

// MustNewDirective panics instead of returning an error.
func MustNewDirective(config DirectiveConfig) *Directive {
	d, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return d
}
