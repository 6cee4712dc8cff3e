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

import "github.com/graphql-corelang/corelang/graphql"

// validateUnionMembers re-checks the duplicate-member rule already enforced at construction
// time (NewUnion rejects a duplicate member outright), so in practice this can never
// fire through the public constructors. It is kept to give the rule a home that matches the
// structural validator's own cataloguing of rules, and to catch a union assembled some other way
// in the future.
func validateUnionMembers(c *context) {
	for _, t := range c.schema.Types().All() {
		union, ok := t.(*graphql.Union)
		if !ok {
			continue
		}
		seen := map[string]bool{}
		for _, member := range union.Types() {
			if seen[member.Name()] {
				c.reportAt("Union "+union.Name()+" can only include type "+member.Name()+" once.",
					union.ASTNode())
				continue
			}
			seen[member.Name()] = true
		}
	}
}
