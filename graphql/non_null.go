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

// NonNull wraps a nullable type, indicating a field or argument may never yield null. Wrapping an
// already-NonNull type is a construction error: "Expected <type> to be a GraphQL nullable type."
type NonNull struct {
	ofType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNull wraps t in a NonNull, rejecting t when it is itself a NonNull. t may be a
// TypeReference not yet resolved; the resolver pass replaces it with the named type it refers to.
func NewNonNull(t Type) (*NonNull, error) {
	if _, ok := t.(*NonNull); ok {
		return nil, NewError("Expected " + t.String() + " to be a GraphQL nullable type.")
	}
	return &NonNull{ofType: t}, nil
}

// MustNewNonNull panics instead of returning an error.
func MustNewNonNull(t Type) *NonNull {
	n, err := NewNonNull(t)
	if err != nil {
		panic(err)
	}
	return n
}

func (*NonNull) graphqlType()        {}
func (*NonNull) ThisIsWrappingType() {}

// OfType is the wrapped, nullable type.
func (n *NonNull) OfType() Type { return n.ofType }

// String renders as "T!".
func (n *NonNull) String() string { return n.ofType.String() + "!" }
