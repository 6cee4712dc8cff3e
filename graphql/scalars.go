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

// The five built-in scalars, named and described per the October 2021 edition. (One retrieved
// source variant of this type system mistakenly named its Int scalar "String"; these are the
// corrected, canonical names.)
var (
	Int = MustNewScalar(ScalarConfig{
		Name: "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
			"Int can represent values between -(2^31) and 2^31 - 1.",
	})

	Float = MustNewScalar(ScalarConfig{
		Name: "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional values " +
			"as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	})

	String = MustNewScalar(ScalarConfig{
		Name:        "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	})

	Boolean = MustNewScalar(ScalarConfig{
		Name:        "Boolean",
		Description: "The `Boolean` scalar type represents `true` or `false`.",
	})

	ID = MustNewScalar(ScalarConfig{
		Name: "ID",
		Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
			"object or as the key for a cache. The ID type is serialized in the same way as a String; " +
			"however, it is not intended to be human-readable.",
	})
)

// specifiedScalars lists the built-in scalars in their canonical declaration order.
var specifiedScalars = []*Scalar{Int, Float, String, Boolean, ID}

// IsSpecifiedScalar reports whether t is one of the five built-in scalars.
func IsSpecifiedScalar(t Type) bool {
	for _, s := range specifiedScalars {
		if t == s {
			return true
		}
	}
	return false
}

// The built-in directives every schema accepts whether or not they are explicitly listed, per the
// October 2021 edition's Type System Directives appendix.
var (
	SkipDirective = MustNewDirective(DirectiveConfig{
		Name:        "skip",
		Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations: []DirectiveLocation{
			DirectiveLocationField, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment,
		},
		Args: []NamedArgumentConfig{
			{Name: "if", Config: ArgumentConfig{
				Description: "Skipped when true.",
				Type:        MustNewNonNull(Boolean),
			}},
		},
	})

	IncludeDirective = MustNewDirective(DirectiveConfig{
		Name:        "include",
		Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations: []DirectiveLocation{
			DirectiveLocationField, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment,
		},
		Args: []NamedArgumentConfig{
			{Name: "if", Config: ArgumentConfig{
				Description: "Included when true.",
				Type:        MustNewNonNull(Boolean),
			}},
		},
	})

	DeprecatedDirective = MustNewDirective(DirectiveConfig{
		Name:        "deprecated",
		Description: "Marks an element of a GraphQL schema as no longer supported.",
		Locations: []DirectiveLocation{
			DirectiveLocationFieldDefinition, DirectiveLocationArgumentDefinition,
			DirectiveLocationInputFieldDefinition, DirectiveLocationEnumValue,
		},
		Args: []NamedArgumentConfig{
			{Name: "reason", Config: ArgumentConfig{
				Description: "Explains why this element was deprecated, ideally also including a " +
					"suggestion for how to access supported similar data.",
				Type:            String,
				HasDefaultValue: true,
				DefaultValue:    "No longer supported.",
			}},
		},
	})

	SpecifiedByDirective = MustNewDirective(DirectiveConfig{
		Name:        "specifiedBy",
		Description: "Exposes a URL that specifies the behavior of this scalar.",
		Locations:   []DirectiveLocation{DirectiveLocationScalar},
		Args: []NamedArgumentConfig{
			{Name: "url", Config: ArgumentConfig{
				Description: "The URL that specifies the behavior of this scalar.",
				Type:        MustNewNonNull(String),
			}},
		},
	})

	OneOfDirective = MustNewDirective(DirectiveConfig{
		Name:        "oneOf",
		Description: "Indicates exactly one field must be supplied and this field must not be `null`.",
		Locations:   []DirectiveLocation{DirectiveLocationInputObject},
	})
)

// specifiedDirectives lists the built-in directives in their canonical declaration order.
var specifiedDirectives = []*Directive{
	SkipDirective, IncludeDirective, DeprecatedDirective, SpecifiedByDirective, OneOfDirective,
}

// IsSpecifiedDirective reports whether d is one of the built-in directives.
func IsSpecifiedDirective(d *Directive) bool {
	for _, s := range specifiedDirectives {
		if d == s {
			return true
		}
	}
	return false
}
