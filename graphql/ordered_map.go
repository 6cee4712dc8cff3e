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

// orderedMap backs every public map type this package exposes (FieldMap, ArgumentMap,
// EnumValueMap, InputFieldMap). A bare Go map has no iteration order, but the public spec exposes
// field order in introspection and argument order in the printer, so every one of these is backed
// by a slice carrying construction order plus an index for O(1) name lookup.
type orderedMap[T any] struct {
	entries []T
	index   map[string]int
}

func newOrderedMap[T any](entries []T, nameOf func(T) string) orderedMap[T] {
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		index[nameOf(entry)] = i
	}
	return orderedMap[T]{entries: entries, index: index}
}

// Len returns the number of entries.
func (m orderedMap[T]) Len() int { return len(m.entries) }

// All returns the entries in construction (source) order.
func (m orderedMap[T]) All() []T { return m.entries }

// Lookup returns the entry named name and whether it was found.
func (m orderedMap[T]) Lookup(name string) (T, bool) {
	i, ok := m.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return m.entries[i], true
}
