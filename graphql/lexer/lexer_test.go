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

package lexer_test

import (
	"github.com/graphql-corelang/corelang/graphql"
	"github.com/graphql-corelang/corelang/graphql/lexer"
	"github.com/graphql-corelang/corelang/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

func lexOne(str string) (*token.Token, error) {
	return lexer.New(token.NewSource(str)).Advance()
}

func expectSyntaxError(text string, message string, location graphql.ErrorLocation) {
	_, err := lexOne(text)
	Expect(err).Should(HaveOccurred())
	gerr, ok := err.(*graphql.Error)
	Expect(ok).To(BeTrue())
	Expect(gerr.Kind).To(Equal(graphql.ErrKindSyntax))
	Expect(gerr.Message).To(ContainSubstring(message))
	Expect(gerr.Locations).To(Equal([]graphql.ErrorLocation{location}))
}

// tok describes the fields of a token.Token worth matching; Prev/Next/Source are excluded since
// they vary with lexer internals the tests below don't otherwise pin down.
func tok(kind token.Kind, start, end uint, value string) types.GomegaMatcher {
	return PointTo(MatchFields(IgnoreExtras, Fields{
		"Kind":  Equal(kind),
		"Start": Equal(start),
		"End":   Equal(end),
		"Value": Equal(value),
	}))
}

var _ = Describe("Lexer", func() {

	// graphql-js/src/language/__tests__/lexer-test.js
	It("disallows uncommon control characters", func() {
		expectSyntaxError(
			"",
			`Cannot contain the invalid character ""`,
			graphql.ErrorLocation{Line: 1, Column: 1},
		)
	})

	It("accepts BOM header", func() {
		Expect(lexOne("\xEF\xBB\xBF foo")).Should(tok(token.KindName, 4, 7, "foo"))
	})

	It("records line and column", func() {
		token, err := lexOne("\n \r\n \r  foo\n")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(token.Line).Should(Equal(uint(4)))
		Expect(token.Column).Should(Equal(uint(3)))
		Expect(token.Value).Should(Equal("foo"))
	})

	It("skips whitespace and comments", func() {
		Expect(lexOne("\n\n    foo\n\n\n")).Should(tok(token.KindName, 6, 9, "foo"))

		Expect(lexOne("\n    #comment\n    foo#comment\n")).Should(tok(token.KindName, 18, 21, "foo"))

		Expect(lexOne(",,,foo,,,")).Should(tok(token.KindName, 3, 6, "foo"))
	})

	It("lexes strings", func() {
		Expect(lexOne(`"simple"`)).Should(tok(token.KindString, 0, 8, "simple"))

		Expect(lexOne(`" white space "`)).Should(tok(token.KindString, 0, 15, " white space "))

		Expect(lexOne(`"quote \""`)).Should(tok(token.KindString, 0, 10, "quote \""))

		Expect(lexOne(`"escaped \n\r\b\t\f"`)).Should(tok(token.KindString, 0, 20, "escaped \n\r\b\t\f"))

		Expect(lexOne(`"slashes \\ \/"`)).Should(tok(token.KindString, 0, 15, "slashes \\ /"))

		Expect(lexOne("\"unicode \\u1234\\u5678\\u90AB\\uCDEF\"")).Should(
			tok(token.KindString, 0, 34, "unicode ሴ噸邫췯"))
	})

	It("lex reports useful string errors", func() {
		expectSyntaxError(`"`, "Unterminated string.", graphql.ErrorLocation{Line: 1, Column: 2})

		expectSyntaxError(`"no end quote`, "Unterminated string.", graphql.ErrorLocation{Line: 1, Column: 14})

		expectSyntaxError(
			"'single quotes'",
			`Unexpected single quote character ('), did you mean to use a double quote (")?`,
			graphql.ErrorLocation{Line: 1, Column: 1},
		)

		expectSyntaxError(
			"\"contains unescaped  control char\"",
			`Invalid character within String: "".`,
			graphql.ErrorLocation{Line: 1, Column: 21},
		)

		expectSyntaxError(
			"\"null-byte is not   end of file\"",
			`Invalid character within String: " ".`,
			graphql.ErrorLocation{Line: 1, Column: 19},
		)

		expectSyntaxError("\"multi\nLine\"", "Unterminated string", graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError("\"multi\rLine\"", "Unterminated string", graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \z esc"`, `Invalid character escape sequence: \z.`, graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \x esc"`, `Invalid character escape sequence: \x.`, graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \u1 esc"`, `Invalid character escape sequence: \u1 es.`, graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \u0XX1 esc"`, `Invalid character escape sequence: \u0XX1.`, graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \uXXXX esc"`, `Invalid character escape sequence: \uXXXX.`, graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \uFXXX esc"`, `Invalid character escape sequence: \uFXXX.`, graphql.ErrorLocation{Line: 1, Column: 7})

		expectSyntaxError(`"bad \uXXXF esc"`, `Invalid character escape sequence: \uXXXF.`, graphql.ErrorLocation{Line: 1, Column: 7})
	})

	It("lexes block strings", func() {
		Expect(lexOne(`"""simple"""`)).Should(tok(token.KindBlockString, 0, 12, "simple"))

		Expect(lexOne(`""" white space """`)).Should(tok(token.KindBlockString, 0, 19, " white space "))

		Expect(lexOne(`"""contains " quote"""`)).Should(tok(token.KindBlockString, 0, 22, `contains " quote`))

		Expect(lexOne(`"""contains \""" triplequote"""`)).Should(
			tok(token.KindBlockString, 0, 31, `contains """ triplequote`))

		Expect(lexOne("\"\"\"multi\nline\"\"\"")).Should(tok(token.KindBlockString, 0, 16, "multi\nline"))

		Expect(lexOne("\"\"\"multi\rline\r\nnormalized\"\"\"")).Should(
			tok(token.KindBlockString, 0, 28, "multi\nline\nnormalized"))

		Expect(lexOne(`"""unescaped \n\r\b\t\f` + "\\u1234" + `"""`)).Should(
			tok(token.KindBlockString, 0, 32, `unescaped \n\r\b\t\f` + "\\u1234"))

		Expect(lexOne(`"""slashes \\ \/"""`)).Should(tok(token.KindBlockString, 0, 19, "slashes \\\\ \\/"))

		Expect(lexOne("\"\"\"\n\n        spans\n          multiple\n            lines\n\n        \"\"\"")).Should(
			tok(token.KindBlockString, 0, 68, "spans\n  multiple\n    lines"))
	})

	It("lex reports useful block string errors", func() {
		expectSyntaxError(`"""`, "Unterminated string.", graphql.ErrorLocation{Line: 1, Column: 4})

		expectSyntaxError(`"""no end quote`, "Unterminated string.", graphql.ErrorLocation{Line: 1, Column: 16})

		expectSyntaxError(
			"\"\"\"contains unescaped  control char\"\"\"",
			`Invalid character within String: "".`,
			graphql.ErrorLocation{Line: 1, Column: 23},
		)

		expectSyntaxError(
			"\"\"\"null-byte is not   end of file\"\"\"",
			`Invalid character within String: " ".`,
			graphql.ErrorLocation{Line: 1, Column: 21},
		)
	})

	It("lexes numbers", func() {
		tests := []struct {
			text      string
			tokenKind token.Kind
		}{
			{"4", token.KindInt},
			{"4.123", token.KindFloat},
			{"-4", token.KindInt},
			{"9", token.KindInt},
			{"0", token.KindInt},
			{"-4.123", token.KindFloat},
			{"0.123", token.KindFloat},
			{"123e4", token.KindFloat},
			{"123E4", token.KindFloat},
			{"123e-4", token.KindFloat},
			{"123e+4", token.KindFloat},
			{"-1.123e4", token.KindFloat},
			{"-1.123E4", token.KindFloat},
			{"-1.123e-4", token.KindFloat},
			{"-1.123e+4", token.KindFloat},
			{"-1.123e4567", token.KindFloat},
		}

		for _, test := range tests {
			Expect(lexOne(test.text)).Should(tok(test.tokenKind, 0, uint(len(test.text)), test.text))
		}
	})

	It("lex reports useful number errors", func() {
		tests := []struct {
			text    string
			message string
			line    uint
			column  uint
		}{
			{"00", `Invalid number, unexpected digit after 0: "0".`, 1, 2},
			{"+1", `Cannot parse the unexpected character "+".`, 1, 1},
			{"1.", "Invalid number, expected digit after decimal point ('.') but got: <EOF>.", 1, 3},
			{"1.e1", `Invalid number, expected digit after decimal point ('.') but got: "e".`, 1, 3},
			{".123", `Cannot parse the unexpected character ".".`, 1, 1},
			{"1.A", `Invalid number, expected digit after decimal point ('.') but got: "A".`, 1, 3},
			{"-A", `Invalid number, expected digit after '-' but got: "A".`, 1, 2},
			{"1.0e", `Invalid number, expected digit but got: <EOF>.`, 1, 5},
			{"1.0eA", `Invalid number, expected digit but got: "A".`, 1, 5},
		}
		for _, test := range tests {
			expectSyntaxError(test.text, test.message, graphql.ErrorLocation{Line: test.line, Column: test.column})
		}
	})

	It("lexes punctuation", func() {
		tests := []struct {
			text      string
			tokenKind token.Kind
		}{
			{"!", token.KindBang},
			{"$", token.KindDollar},
			{"&", token.KindAmp},
			{"(", token.KindLeftParen},
			{")", token.KindRightParen},
			{"...", token.KindSpread},
			{":", token.KindColon},
			{"=", token.KindEquals},
			{"@", token.KindAt},
			{"[", token.KindLeftBracket},
			{"]", token.KindRightBracket},
			{"{", token.KindLeftBrace},
			{"|", token.KindPipe},
			{"}", token.KindRightBrace},
		}

		for _, test := range tests {
			Expect(lexOne(test.text)).Should(tok(test.tokenKind, 0, uint(len(test.text)), ""))
		}
	})

	It("lex reports useful unknown character error", func() {
		expectSyntaxError("..", `Cannot parse the unexpected character ".".`, graphql.ErrorLocation{Line: 1, Column: 1})

		expectSyntaxError("?", `Cannot parse the unexpected character "?".`, graphql.ErrorLocation{Line: 1, Column: 1})

		expectSyntaxError("※", `Cannot parse the unexpected character "\u203B".`, graphql.ErrorLocation{Line: 1, Column: 1})

		expectSyntaxError("​", "Cannot parse the unexpected character \"\\u200B\".", graphql.ErrorLocation{Line: 1, Column: 1})
	})

	It("lex reports useful information for dashes in names", func() {
		l := lexer.New(token.NewSource("a-b"))

		Expect(l.Advance()).Should(tok(token.KindName, 0, 1, "a"))

		_, err := l.Advance()
		e, ok := err.(*graphql.Error)
		Expect(ok).Should(BeTrue())
		Expect(e.Message).Should(Equal(`Syntax Error: Invalid number, expected digit after '-' but got: "b".`))
		Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{
			{Line: 1, Column: 3},
		}))
	})

	It("produces double linked list of tokens, including comments", func() {
		l := lexer.New(token.NewSource("{\n      #comment\n      field\n    }"))

		var (
			endToken *token.Token
			err      error
		)

		startToken := l.Token()
		for {
			endToken, err = l.Advance()
			Expect(err).ShouldNot(HaveOccurred())
			if endToken.Kind == token.KindEOF {
				break
			}
			Expect(endToken.Kind).ShouldNot(Equal(token.KindComment))
		}

		Expect(startToken.Prev).Should(BeNil())
		Expect(endToken.Next).Should(BeNil())

		tokens := []*token.Token{}
		for tk := startToken; tk != nil; tk = tk.Next {
			if len(tokens) > 0 {
				// Tokens are double-linked, prev should point to last seen token.
				Expect(tk.Prev).Should(Equal(tokens[len(tokens)-1]))
			}
			tokens = append(tokens, tk)
		}

		expectedTokens := []string{
			"<SOF>",
			"{",
			"Comment",
			"Name \"field\"",
			"}",
			"<EOF>",
		}
		Expect(len(tokens)).Should(Equal(len(expectedTokens)))
		for i, expectedToken := range expectedTokens {
			Expect(tokens[i].Description()).Should(Equal(expectedToken))
		}
	})

	It("accepts empty string", func() {
		Expect(lexOne(`""`)).Should(tok(token.KindString, 0, 2, ""))
	})

	It("accepts incomplete triple-quotes as normal bytes in block string", func() {
		Expect(lexOne(`"""one quote: " """`)).Should(tok(token.KindBlockString, 0, 19, `one quote: " `))

		Expect(lexOne(`"""two quote: "" """`)).Should(tok(token.KindBlockString, 0, 20, `two quote: "" `))

		Expect(lexOne(`"""one quote: \" """`)).Should(tok(token.KindBlockString, 0, 20, `one quote: \" `))

		Expect(lexOne(`"""two quote: \"" """`)).Should(tok(token.KindBlockString, 0, 21, `two quote: \"" `))
	})

	It("reject incomplete escape unicode sequence at the end", func() {
		expectSyntaxError(`"\u"`, `Invalid character escape sequence: \u`, graphql.ErrorLocation{Line: 1, Column: 3})
		expectSyntaxError(`"\u0"`, `Invalid character escape sequence: \u0`, graphql.ErrorLocation{Line: 1, Column: 3})
		expectSyntaxError(`"\u00"`, `Invalid character escape sequence: \u00`, graphql.ErrorLocation{Line: 1, Column: 3})
		expectSyntaxError(`"\u000"`, `Invalid character escape sequence: \u000`, graphql.ErrorLocation{Line: 1, Column: 3})
	})

	It("accept whitespace characters at the end", func() {
		Expect(lexOne("simple\n\n\n\n")).Should(tok(token.KindName, 0, 6, "simple"))
	})
})
