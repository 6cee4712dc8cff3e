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

package token

import "fmt"

// Kind describes the different kinds of tokens that the lexer emits.
type Kind int

// Enumeration of Kind
//
// Reference: https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.Lexical-Tokens.
const (
	// <SOF>
	KindSOF Kind = iota + 1
	// <EOF>
	KindEOF
	// !
	KindBang
	// $
	KindDollar
	// &
	KindAmp
	// (
	KindLeftParen
	// )
	KindRightParen
	// ...
	KindSpread
	// :
	KindColon
	// =
	KindEquals
	// @
	KindAt
	// [
	KindLeftBracket
	// ]
	KindRightBracket
	// {
	KindLeftBrace
	// |
	KindPipe
	// }
	KindRightBrace
	// Ref: https://spec.graphql.org/October2021/#Name
	KindName
	// Ref: https://spec.graphql.org/October2021/#IntValue
	KindInt
	// Ref: https://spec.graphql.org/October2021/#FloatValue
	KindFloat
	// Ref: https://spec.graphql.org/October2021/#StringValue
	KindString
	// Ref: https://spec.graphql.org/October2021/#StringValue
	KindBlockString
	// Ref: https://spec.graphql.org/October2021/#sec-Comments
	KindComment
)

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	switch kind {
	case KindSOF:
		return "<SOF>"
	case KindEOF:
		return "<EOF>"
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindPipe:
		return "|"
	case KindRightBrace:
		return "}"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBlockString:
		return "BlockString"
	case KindComment:
		return "Comment"
	}
	panic("unsupported token kind")
}

// Token is a single lexical token together with its position in a Source. Tokens form a
// doubly-linked list threaded through every token the lexer produced, including the ignored ones
// (comments); <SOF> is always the first node and <EOF> the last. Holding a direct Source pointer
// on the token (rather than reconstructing it via pointer arithmetic on the chain's head) is the
// one deliberate departure from the teacher's design: one extra pointer per token is a trivial
// cost next to an unsafe.Pointer offset trick, and it keeps Token safe to construct in tests.
type Token struct {
	// Kind of this token.
	Kind Kind

	// Start and End are 0-indexed byte offsets into Source.Body() spanned by this token,
	// [Start, End).
	Start, End uint

	// Line and Column are the 1-indexed position of Start within Source.Body(); the owning
	// Source's line/column offsets are not applied. Computed incrementally by the lexer as it
	// scans, so reading it never re-scans the source.
	Line, Column uint

	// Value holds the interpreted value for Name/Int/Float/String/BlockString tokens. Empty for
	// punctuators and comments.
	Value string

	// Source is the Source this token was lexed from.
	Source *Source

	// Prev and Next link this token into the full token stream, ignored tokens included.
	Prev, Next *Token
}

// Description describes a token for use in error messages, e.g. `Name "foo"` or `!`.
func (t *Token) Description() string {
	if len(t.Value) > 0 {
		return fmt.Sprintf(`%s "%s"`, t.Kind.String(), t.Value)
	}
	return t.Kind.String()
}

// Range is an inclusive span of tokens [First, Last], used to derive a Location for an AST node.
type Range struct {
	First *Token
	Last  *Token
}

// StartPos returns the byte offset at which this range begins.
func (r Range) StartPos() uint { return r.First.Start }

// EndPos returns the byte offset at which this range ends.
func (r Range) EndPos() uint { return r.Last.End }
