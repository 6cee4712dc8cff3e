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
	"strings"

	"github.com/graphql-corelang/corelang/graphql"
)

// validateInputObjectCycles finds cycles made entirely of non-null, non-list input fields: such a
// cycle would make the input object impossible to ever fully construct, since every field along the
// cycle requires a value and none of them terminates in a list (which could legally be empty).
//
// A field only participates in a cycle edge when its type is NonNull wrapping an InputObject
// directly; NonNull(List(...)) breaks the requirement because an empty list satisfies it without
// recursing.
func validateInputObjectCycles(c *context) {
	visited := map[string]bool{}
	fieldPathIndexByTypeName := map[string]int{}
	var path []string

	var detect func(input *graphql.InputObject)
	detect = func(input *graphql.InputObject) {
		if visited[input.Name()] {
			return
		}
		fieldPathIndexByTypeName[input.Name()] = len(path)

		for _, f := range input.Fields().All() {
			nonNull, ok := f.Type().(*graphql.NonNull)
			if !ok {
				continue
			}
			nested, ok := nonNull.OfType().(*graphql.InputObject)
			if !ok {
				continue
			}

			path = append(path, f.Name())
			if cycleIndex, onStack := fieldPathIndexByTypeName[nested.Name()]; onStack {
				cyclePath := append([]string(nil), path[cycleIndex:]...)
				c.reportAt("Cannot reference Input Object \""+nested.Name()+"\" within itself "+
					"through a series of non-null fields: \""+strings.Join(cyclePath, ".")+"\".",
					f.ASTNode())
			} else {
				detect(nested)
			}
			path = path[:len(path)-1]
		}

		delete(fieldPathIndexByTypeName, input.Name())
		visited[input.Name()] = true
	}

	for _, t := range c.schema.Types().All() {
		if input, ok := t.(*graphql.InputObject); ok && !visited[input.Name()] {
			detect(input)
		}
	}
}
