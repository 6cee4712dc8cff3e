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

package lexer

import (
	"bytes"
	"fmt"

	"github.com/graphql-corelang/corelang/graphql"
	lexerinternal "github.com/graphql-corelang/corelang/graphql/internal/lexer"
	"github.com/graphql-corelang/corelang/graphql/token"
)

// Lexer is a stateful token stream over a Source. Advancing it returns the next non-ignored token;
// once it reaches EOF it keeps returning the same EOF token forever.
type Lexer struct {
	source *token.Source

	// lastToken is the previously focused non-ignored token.
	lastToken *token.Token

	// current is the currently focused non-ignored token.
	current *token.Token

	// pos is the current byte offset into source.Body(). Only consume() and consumeWhitespace()
	// move it.
	pos uint

	// line and column are the 1-indexed position of pos, tracked incrementally as bytes are
	// consumed so that token positions never require a re-scan of the source from the start.
	line, column uint

	// tokenLine and tokenColumn cache the line/column at which the token currently being lexed
	// started, captured once whitespace has been skipped and before any characters are consumed.
	tokenLine, tokenColumn uint

	bodySize uint
}

// New creates a Lexer over source, positioned before the first token.
func New(source *token.Source) *Lexer {
	sof := &token.Token{Kind: token.KindSOF, Source: source}
	return &Lexer{
		source:   source,
		current:  sof,
		pos:      0,
		line:     1,
		column:   1,
		bodySize: source.Len(),
	}
}

// Source returns the Source being lexed.
func (lexer *Lexer) Source() *token.Source { return lexer.source }

// Token returns the current token.
func (lexer *Lexer) Token() *token.Token { return lexer.current }

// Advance moves the stream to, and returns, the next non-ignored token.
func (lexer *Lexer) Advance() (*token.Token, error) {
	next, err := lexer.Lookahead()
	if err != nil {
		return nil, err
	}
	lexer.lastToken, lexer.current = lexer.current, next
	return next, nil
}

// Lookahead returns the next non-ignored token without advancing the stream.
func (lexer *Lexer) Lookahead() (*token.Token, error) {
	tok := lexer.current
	if tok.Kind != token.KindEOF {
		current := lexer.current
		defer func() { lexer.current = current }()
		for {
			if tok.Next == nil {
				next, err := lexer.lexToken()
				if err != nil {
					return nil, err
				}
				tok.Next = next
			}
			tok = tok.Next

			if tok.Kind != token.KindComment {
				break
			}
			// Skip comments. current points at each comment only while the token after it is
			// lexed, so that token's Prev links to the comment; it is restored before returning.
			lexer.current = tok
		}
	}
	return tok, nil
}

func (lexer *Lexer) peek() byte {
	return lexer.source.ByteAt(lexer.pos)
}

// consume reads the byte at pos, advances pos, and keeps line/column in sync.
func (lexer *Lexer) consume() byte {
	b := lexer.source.ByteAt(lexer.pos)
	if lexer.pos >= lexer.bodySize {
		return b
	}
	lexer.pos++

	switch b {
	case '\n':
		lexer.line++
		lexer.column = 1
	case '\r':
		if lexer.peek() == '\n' {
			// Treat \r\n as a single line terminator: consume the \n as part of this step too.
			lexer.pos++
		}
		lexer.line++
		lexer.column = 1
	default:
		lexer.column++
	}
	return b
}

func (lexer *Lexer) consumeWhitespace() {
	if lexer.pos == 0 && lexer.bodySize >= 3 &&
		lexer.source.ByteAt(0) == '\xEF' &&
		lexer.source.ByteAt(1) == '\xBB' &&
		lexer.source.ByteAt(2) == '\xBF' {
		lexer.pos = 3
		lexer.column += 3
	}

	for lexer.pos < lexer.bodySize {
		switch lexer.peek() {
		case '\t', ' ', ',', '\n', '\r':
			lexer.consume()
		default:
			return
		}
	}
}

func (lexer *Lexer) consumeDigits() byte {
	for {
		c := lexer.peek()
		if c >= '0' && c <= '9' {
			lexer.consume()
		} else {
			return c
		}
	}
}

func (lexer *Lexer) charAtPosToStr(pos uint) string {
	if pos >= lexer.bodySize {
		return "<EOF>"
	}
	r, _ := lexer.source.RuneAt(pos)
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (lexer *Lexer) newUnexpectedCharacterError(pos uint) error {
	var message string
	char := lexer.source.ByteAt(pos)
	switch {
	case char < 0x0020 && char != '\t' && char != '\n' && char != '\r':
		message = fmt.Sprintf("Cannot contain the invalid character %s.", lexer.charAtPosToStr(pos))
	case char == '\'':
		message = "Unexpected single quote character ('), did you mean to use a double quote (\")?"
	default:
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", lexer.charAtPosToStr(pos))
	}
	return graphql.NewSyntaxError(lexer.source, pos, message)
}

func (lexer *Lexer) syntaxErrorAtCurrent(message string) error {
	return graphql.NewSyntaxError(lexer.source, lexer.pos, message)
}

func (lexer *Lexer) makeToken(kind token.Kind, start uint) *token.Token {
	return lexer.makeTokenWithValue(kind, start, "")
}

func (lexer *Lexer) makeTokenWithValue(kind token.Kind, start uint, value string) *token.Token {
	return &token.Token{
		Kind:   kind,
		Start:  start,
		End:    lexer.pos,
		Line:   lexer.tokenLine,
		Column: lexer.tokenColumn,
		Value:  value,
		Source: lexer.source,
		Prev:   lexer.current,
	}
}

// lexToken skips whitespace from the current position, then lexes and returns the next token.
func (lexer *Lexer) lexToken() (*token.Token, error) {
	prev := lexer.current

	lexer.consumeWhitespace()
	lexer.tokenLine, lexer.tokenColumn = lexer.line, lexer.column
	startPos := lexer.pos

	char := lexer.peek()
	if char == 0 && lexer.pos >= lexer.bodySize {
		return &token.Token{
			Kind:   token.KindEOF,
			Start:  startPos,
			End:    startPos,
			Line:   lexer.tokenLine,
			Column: lexer.tokenColumn,
			Source: lexer.source,
			Prev:   prev,
		}, nil
	}

	lexSimple := func(kind token.Kind) (*token.Token, error) {
		lexer.consume()
		return lexer.makeToken(kind, startPos), nil
	}

	switch char {
	case '!':
		return lexSimple(token.KindBang)
	case '#':
		return lexer.lexComment(startPos), nil
	case '$':
		return lexSimple(token.KindDollar)
	case '&':
		return lexSimple(token.KindAmp)
	case '(':
		return lexSimple(token.KindLeftParen)
	case ')':
		return lexSimple(token.KindRightParen)
	case '.':
		lexer.consume()
		if lexer.peek() != '.' {
			return nil, lexer.newUnexpectedCharacterError(lexer.pos - 1)
		}
		lexer.consume()
		if lexer.peek() != '.' {
			return nil, lexer.newUnexpectedCharacterError(lexer.pos - 2)
		}
		lexer.consume()
		return lexer.makeToken(token.KindSpread, startPos), nil
	case ':':
		return lexSimple(token.KindColon)
	case '=':
		return lexSimple(token.KindEquals)
	case '@':
		return lexSimple(token.KindAt)
	case '[':
		return lexSimple(token.KindLeftBracket)
	case ']':
		return lexSimple(token.KindRightBracket)
	case '{':
		return lexSimple(token.KindLeftBrace)
	case '|':
		return lexSimple(token.KindPipe)
	case '}':
		return lexSimple(token.KindRightBrace)

	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N',
		'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n',
		'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		return lexer.lexName(startPos), nil

	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return lexer.lexNumber(startPos)

	case '"':
		lexer.consume()
		if lexer.peek() == '"' {
			lexer.consume()
			if lexer.peek() == '"' {
				lexer.consume()
				return lexer.lexBlockString(startPos)
			}
			return lexer.makeTokenWithValue(token.KindString, startPos, ""), nil
		}
		return lexer.lexString(startPos)
	}

	return nil, lexer.newUnexpectedCharacterError(lexer.pos)
}

// lexComment reads a `# ...` comment up to (not including) the next line terminator.
//
// Reference: https://spec.graphql.org/October2021/#sec-Comments
func (lexer *Lexer) lexComment(startPos uint) *token.Token {
	lexer.consume()
	for {
		char := lexer.peek()
		if char > 0x1F || char == '\t' {
			lexer.consume()
			continue
		}
		break
	}
	return lexer.makeToken(token.KindComment, startPos)
}

// lexNumber reads an Int or Float token, per the GraphQL lexical grammar's leading-zero and
// digit-after rules.
func (lexer *Lexer) lexNumber(startPos uint) (*token.Token, error) {
	char := lexer.consume()
	kind := token.KindInt

	if char == '-' {
		char = lexer.peek()
		if char < '0' || char > '9' {
			return nil, lexer.syntaxErrorAtCurrent(
				fmt.Sprintf("Invalid number, expected digit after '-' but got: %s.", lexer.charAtPosToStr(lexer.pos)))
		}
		lexer.consume()
	}

	if char == '0' {
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			return nil, lexer.syntaxErrorAtCurrent(
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", lexer.charAtPosToStr(lexer.pos)))
		}
	} else {
		char = lexer.consumeDigits()
	}

	if char == '.' {
		kind = token.KindFloat
		lexer.consume()
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			lexer.consume()
			char = lexer.consumeDigits()
		} else {
			return nil, lexer.syntaxErrorAtCurrent(
				fmt.Sprintf("Invalid number, expected digit after decimal point ('.') but got: %s.", lexer.charAtPosToStr(lexer.pos)))
		}
	}

	if char == 'E' || char == 'e' {
		lexer.consume()
		kind = token.KindFloat

		char = lexer.peek()
		if char == '+' || char == '-' {
			lexer.consume()
		}

		char = lexer.peek()
		if char >= '0' && char <= '9' {
			lexer.consume()
			lexer.consumeDigits()
		} else {
			return nil, lexer.syntaxErrorAtCurrent(
				fmt.Sprintf("Invalid number, expected digit but got: %s.", lexer.charAtPosToStr(lexer.pos)))
		}
	}

	return lexer.makeTokenWithValue(kind, startPos, lexer.source.Slice(startPos, lexer.pos)), nil
}

// lexString reads a single-quoted StringValue, interpreting escape sequences.
//
// Reference: https://spec.graphql.org/October2021/#sec-String-Value
func (lexer *Lexer) lexString(startPos uint) (*token.Token, error) {
	var value bytes.Buffer

	for lexer.pos < lexer.bodySize {
		char := lexer.peek()

		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			lexer.consume()
			return lexer.makeTokenWithValue(token.KindString, startPos, value.String()), nil
		}

		if char < 0x0020 && char != '\t' {
			return nil, lexer.syntaxErrorAtCurrent(
				fmt.Sprintf("Invalid character within String: %s.", lexer.charAtPosToStr(lexer.pos)))
		}

		lexer.consume()

		if char != '\\' {
			value.WriteByte(char)
			continue
		}

		char = lexer.consume()
		switch char {
		case '"':
			value.WriteRune('"')
		case '\\':
			value.WriteRune('\\')
		case '/':
			value.WriteRune('/')
		case 'b':
			value.WriteRune('\b')
		case 'f':
			value.WriteRune('\f')
		case 'n':
			value.WriteRune('\n')
		case 'r':
			value.WriteRune('\r')
		case 't':
			value.WriteRune('\t')

		case 'u':
			var (
				escapeSeqPos = lexer.pos
				escapeSeqEnd uint
			)
			if lexer.bodySize-lexer.pos < 4 {
				escapeSeqEnd = lexer.bodySize
			} else {
				escapeSeqEnd = lexer.pos + 4
				charCode := uniCharCode(lexer.consume(), lexer.consume(), lexer.consume(), lexer.consume())
				if charCode >= 0 {
					value.WriteRune(charCode)
					break
				}
			}
			return nil, graphql.NewSyntaxError(lexer.source, escapeSeqPos-1,
				fmt.Sprintf("Invalid character escape sequence: \\u%s.", lexer.source.Slice(escapeSeqPos, escapeSeqEnd)))

		default:
			return nil, graphql.NewSyntaxError(lexer.source, lexer.pos-1,
				fmt.Sprintf("Invalid character escape sequence: \\%c.", char))
		}
	}

	return nil, lexer.syntaxErrorAtCurrent("Unterminated string.")
}

// Converts four hex digits into the rune they represent, or a negative value if any is invalid.
func uniCharCode(a, b, c, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a - 55)
	case a >= 'a' && a <= 'f':
		return rune(a - 87)
	}
	return -1
}

// lexBlockString reads a triple-quoted BlockString, handling the \""" escape, then normalizes the
// raw value via the BlockStringValue() algorithm.
func (lexer *Lexer) lexBlockString(startPos uint) (*token.Token, error) {
	var value bytes.Buffer

	for lexer.pos < lexer.bodySize {
		char := lexer.peek()

		switch char {
		case '"':
			lexer.consume()
			if lexer.peek() == '"' {
				lexer.consume()
				if lexer.peek() == '"' {
					lexer.consume()
					return lexer.makeTokenWithValue(
						token.KindBlockString, startPos, lexerinternal.BlockStringValue(value.String())), nil
				}
				value.WriteRune('"')
			}
			value.WriteRune('"')

		case '\\':
			lexer.consume()
			if lexer.peek() != '"' {
				value.WriteRune('\\')
				continue
			}
			lexer.consume()
			if lexer.peek() != '"' {
				value.WriteString("\\\"")
				continue
			}
			lexer.consume()
			if lexer.peek() != '"' {
				value.WriteString("\\\"\"")
				continue
			}
			lexer.consume()
			value.WriteString("\"\"\"")

		default:
			if char < 0x0020 && char != '\t' && char != '\r' && char != '\n' {
				return nil, lexer.syntaxErrorAtCurrent(
					fmt.Sprintf("Invalid character within String: %s.", lexer.charAtPosToStr(lexer.pos)))
			}
			lexer.consume()
			value.WriteByte(char)
		}
	}

	return nil, lexer.syntaxErrorAtCurrent("Unterminated string.")
}

// lexName reads a Name token: /[_A-Za-z][_0-9A-Za-z]*/.
//
// Reference: https://spec.graphql.org/October2021/#sec-Names
func (lexer *Lexer) lexName(startPos uint) *token.Token {
	lexer.consume()
	for {
		char := lexer.peek()
		if char == '_' ||
			(char >= '0' && char <= '9') ||
			(char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') {
			lexer.consume()
			continue
		}
		break
	}
	return lexer.makeTokenWithValue(token.KindName, startPos, lexer.source.Slice(startPos, lexer.pos))
}
