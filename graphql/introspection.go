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

// introspectionTypeNames lists the meta-types every schema implicitly exposes for introspection
// queries. The validator's reserved-prefix rule ("__" is off limits to user-defined names) carves
// these out, matching the October 2021 edition's appendix.
var introspectionTypeNames = map[string]bool{
	"__Schema":            true,
	"__Type":              true,
	"__TypeKind":          true,
	"__Field":             true,
	"__InputValue":        true,
	"__EnumValue":         true,
	"__Directive":         true,
	"__DirectiveLocation": true,
}

// IsIntrospectionTypeName reports whether name belongs to the fixed introspection type set.
func IsIntrospectionTypeName(name string) bool {
	return introspectionTypeNames[name]
}
