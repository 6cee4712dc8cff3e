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

// List wraps another type, indicating a field or argument holds a (possibly nested) list of it.
type List struct {
	ofType Type
}

var (
	_ Type         = (*List)(nil)
	_ WrappingType = (*List)(nil)
	_ NullableType = (*List)(nil)
)

// NewList wraps t in a List. t may be a TypeReference not yet resolved.
func NewList(t Type) *List {
	return &List{ofType: t}
}

func (*List) graphqlType()        {}
func (*List) ThisIsWrappingType() {}
func (*List) ThisIsNullableType() {}

// OfType is the wrapped type.
func (l *List) OfType() Type { return l.ofType }

// String renders as "[T]".
func (l *List) String() string { return "[" + l.ofType.String() + "]" }
