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
	"github.com/graphql-corelang/corelang/graphql/ast/visitor"
)

// typeWithExtensionASTNodes is implemented by every named type that tracks merged extensions.
type typeWithExtensionASTNodes interface {
	ExtensionASTNodes() []ast.Node
}

// directiveUsageRoots collects every type-system AST node directives may be attached to: the
// schema definition, every type definition, and each of their extensions.
func directiveUsageRoots(c *context) []ast.Node {
	var roots []ast.Node
	if node := c.schema.ASTNode(); node != nil {
		roots = append(roots, node)
	}
	roots = append(roots, c.schema.ExtensionASTNodes()...)
	for _, t := range c.schema.Types().All() {
		if node := astNodeOf(t); node != nil {
			roots = append(roots, node)
		}
		if withExts, ok := t.(typeWithExtensionASTNodes); ok {
			roots = append(roots, withExts.ExtensionASTNodes()...)
		}
	}
	return roots
}

// validateDirectiveUsage walks every type-system definition's AST, checking the directives
// applied to it against the schema's directive definitions. Two independent rules share the walk
// through VisitInParallel, the same one-pass-many-rules shape the query validator this package
// does not implement would use over an executable document.
func validateDirectiveUsage(c *context) {
	seenByLocation := map[ast.Node]map[string]bool{}

	unknown := &visitor.Visitor{
		Kinds: map[string]visitor.KindFuncs{
			"Directive": {Enter: func(node ast.Node, key interface{}, parent ast.Node,
				path []interface{}, ancestors []ast.Node) (visitor.Action, ast.Node) {
				d := node.(*ast.Directive)
				if _, ok := c.schema.DirectiveByName(d.Name.Value()); !ok {
					c.reportAt("Unknown directive \"@"+d.Name.Value()+"\".", d)
				}
				return visitor.ActionNoChange, nil
			}},
		},
	}

	uniquePerLocation := &visitor.Visitor{
		Kinds: map[string]visitor.KindFuncs{
			"Directive": {Enter: func(node ast.Node, key interface{}, parent ast.Node,
				path []interface{}, ancestors []ast.Node) (visitor.Action, ast.Node) {
				d := node.(*ast.Directive)
				def, ok := c.schema.DirectiveByName(d.Name.Value())
				if !ok || def.IsRepeatable() {
					return visitor.ActionNoChange, nil
				}
				seen := seenByLocation[parent]
				if seen == nil {
					seen = map[string]bool{}
					seenByLocation[parent] = seen
				}
				if seen[d.Name.Value()] {
					c.reportAt("The directive \"@"+d.Name.Value()+"\" can only be used once at "+
						"this location.", d)
				}
				seen[d.Name.Value()] = true
				return visitor.ActionNoChange, nil
			}},
		},
	}

	shared := visitor.VisitInParallel(unknown, uniquePerLocation)
	for _, root := range directiveUsageRoots(c) {
		visitor.Walk(root, shared)
	}
}
