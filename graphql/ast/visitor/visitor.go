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

// Package visitor implements AST traversal.
//
// A Visitor bundles, per node kind, an Enter function run on the way down and a Leave function run
// on the way back up, plus generic Enter/Leave fallbacks invoked for kinds with no specific entry.
// Both receive the node's key within its parent, the parent itself, the path of keys from the root,
// and the stack of ancestor nodes (not including the node itself). A callback that wants to retain
// path or ancestors past the call must copy it—the backing array is reused as traversal proceeds.
//
// The Action a callback returns controls what happens next: ActionNoChange continues the traversal
// normally, ActionSkip continues without descending into the node's children, ActionBreak stops the
// entire walk, and ActionReplace/ActionRemove edit the tree Walk returns, swapping the node for
// another or dropping it (and, for elements of a list, compacting the list); the input tree is left
// unchanged.
//
// Walk performs a preorder depth-first traversal calling Enter then Leave for every node. Children
// are dispatched through an explicit type switch rather than reflection, matching the tree's fixed,
// statically known grammar and keeping hot validator passes allocation-light.
package visitor

import (
	"github.com/graphql-corelang/corelang/graphql/ast"
)

// Action tells the walker what to do after a callback runs.
type Action int

// Enumeration of Action.
const (
	// ActionNoChange continues the traversal without modification.
	ActionNoChange Action = iota

	// ActionSkip continues the traversal but does not descend into the node's children.
	ActionSkip

	// ActionBreak stops the entire traversal immediately.
	ActionBreak

	// ActionRemove deletes the node. If the node sits in a list, the list is compacted.
	ActionRemove

	// ActionReplace swaps the node for the one returned alongside this Action.
	ActionReplace
)

// VisitFunc is called when entering or leaving a node during traversal.
type VisitFunc func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (Action, ast.Node)

// KindFuncs bundles the Enter/Leave callbacks for one node kind.
type KindFuncs struct {
	Enter VisitFunc
	Leave VisitFunc
}

// Visitor bundles the callbacks driving one traversal.
type Visitor struct {
	// Enter and Leave are invoked for every node whose kind has no entry in Kinds.
	Enter VisitFunc
	Leave VisitFunc

	// Kinds maps a node kind name (e.g. "Field", "FragmentSpread", "ObjectTypeDefinition") to the
	// callbacks run for nodes of that kind, taking precedence over Enter/Leave above.
	Kinds map[string]KindFuncs
}

func (v *Visitor) funcsFor(kind string) (enter, leave VisitFunc) {
	enter, leave = v.Enter, v.Leave
	if v.Kinds != nil {
		if fns, ok := v.Kinds[kind]; ok {
			if fns.Enter != nil {
				enter = fns.Enter
			}
			if fns.Leave != nil {
				leave = fns.Leave
			}
		}
	}
	return enter, leave
}

// Walk traverses root, calling the Enter/Leave callbacks in v, and returns the (possibly edited)
// tree.
func Walk(root ast.Node, v *Visitor) ast.Node {
	w := &walker{v: v}
	return w.visit(root, nil, nil)
}

type walker struct {
	v         *Visitor
	ancestors []ast.Node
	path      []interface{}
	broken    bool
}

func (w *walker) visit(node ast.Node, key interface{}, parent ast.Node) ast.Node {
	if node == nil || w.broken {
		return node
	}

	w.path = append(w.path, key)

	enter, leave := w.v.funcsFor(kindOf(node))

	if enter != nil {
		action, repl := enter(node, key, parent, w.path, w.ancestors)
		switch action {
		case ActionReplace:
			node = repl
		case ActionRemove:
			w.path = w.path[:len(w.path)-1]
			return nil
		case ActionSkip:
			w.path = w.path[:len(w.path)-1]
			return node
		case ActionBreak:
			w.broken = true
			w.path = w.path[:len(w.path)-1]
			return node
		}
	}

	w.ancestors = append(w.ancestors, node)
	node = visitChildren(w, node)
	w.ancestors = w.ancestors[:len(w.ancestors)-1]

	if !w.broken && leave != nil {
		action, repl := leave(node, key, parent, w.path, w.ancestors)
		switch action {
		case ActionReplace:
			node = repl
		case ActionRemove:
			w.path = w.path[:len(w.path)-1]
			return nil
		case ActionBreak:
			w.broken = true
		}
	}

	w.path = w.path[:len(w.path)-1]
	return node
}

// VisitInParallel combines many visitors into one so their callbacks run during a single shared
// traversal. A visitor that returns ActionSkip for a node only skips its own descent into that
// node's children—others continue normally. A visitor that returns ActionBreak only stops itself;
// the walk as a whole stops once every combined visitor has broken. Edits requested by a combined
// visitor (ActionReplace/ActionRemove) are ignored: VisitInParallel is meant for read-only passes
// run together, such as a schema validator's independent rules sharing one walk.
func VisitInParallel(visitors ...*Visitor) *Visitor {
	// skipDepth[i] is the path length of the node visitor i skipped, or 0 while it is not skipping.
	skipDepth := make([]int, len(visitors))
	broken := make([]bool, len(visitors))

	allBroken := func() bool {
		for _, b := range broken {
			if !b {
				return false
			}
		}
		return true
	}

	enter := func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (Action, ast.Node) {
		for i, vis := range visitors {
			if broken[i] || skipDepth[i] > 0 {
				continue
			}
			fn, _ := vis.funcsFor(kindOf(node))
			if fn == nil {
				continue
			}
			switch action, _ := fn(node, key, parent, path, ancestors); action {
			case ActionSkip:
				skipDepth[i] = len(path)
			case ActionBreak:
				broken[i] = true
			}
		}
		if allBroken() {
			return ActionBreak, nil
		}
		return ActionNoChange, nil
	}

	leave := func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (Action, ast.Node) {
		for i, vis := range visitors {
			if broken[i] {
				continue
			}
			if skipDepth[i] > 0 {
				if skipDepth[i] == len(path) {
					skipDepth[i] = 0
				}
				continue
			}
			_, fn := vis.funcsFor(kindOf(node))
			if fn == nil {
				continue
			}
			if action, _ := fn(node, key, parent, path, ancestors); action == ActionBreak {
				broken[i] = true
			}
		}
		return ActionNoChange, nil
	}

	return &Visitor{Enter: enter, Leave: leave}
}
