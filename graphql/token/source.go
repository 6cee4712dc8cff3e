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

import "unicode/utf8"

// Source represents an immutable carrier of GraphQL source text plus a human-readable name. It
// never mutates after construction; Lexer, Parser and every downstream AST Location hold a shared
// reference to it rather than copying the body around.
//
// Reference: https://facebook.github.io/graphql/June2018/#Source
type Source struct {
	body []byte
	name string

	// lineOffset and columnOffset are added to derived line/column numbers. Useful for embedding a
	// GraphQL document within a larger host file, where the document doesn't start at line 1.
	lineOffset   uint
	columnOffset uint
}

// Option configures a Source on construction.
type Option func(*Source)

// WithName sets the name shown in error messages and location info; defaults to "GraphQL request".
func WithName(name string) Option {
	return func(s *Source) { s.name = name }
}

// WithLineOffset adds an offset to every derived line number (0-indexed, i.e. 0 means no offset).
func WithLineOffset(offset uint) Option {
	return func(s *Source) { s.lineOffset = offset }
}

// WithColumnOffset adds an offset to every derived column number on the first line only (0-indexed).
func WithColumnOffset(offset uint) Option {
	return func(s *Source) { s.columnOffset = offset }
}

// NewSource builds a Source from a string body and options.
func NewSource(body string, opts ...Option) *Source {
	return NewSourceFromBytes([]byte(body), opts...)
}

// NewSourceFromBytes builds a Source from a byte slice body and options. The slice must not be
// mutated afterward; Source does not copy it.
func NewSourceFromBytes(body []byte, opts ...Option) *Source {
	s := &Source{
		body: body,
		name: "GraphQL request",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Body returns the raw UTF-8 byte sequence of the source.
func (s *Source) Body() []byte { return s.body }

// Name returns the source's name.
func (s *Source) Name() string { return s.name }

// Len returns the body size in bytes.
func (s *Source) Len() uint { return uint(len(s.body)) }

// ByteAt returns the byte at the given 0-indexed offset, or 0 if pos is out of range.
func (s *Source) ByteAt(pos uint) byte {
	if pos >= s.Len() {
		return 0
	}
	return s.body[pos]
}

// RuneAt decodes the rune starting at pos, returning it along with its width in bytes. Returns
// (utf8.RuneError, 0) if pos is at or past the end of the body.
func (s *Source) RuneAt(pos uint) (rune, int) {
	if pos >= s.Len() {
		return utf8.RuneError, 0
	}
	c := s.body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	r, n := utf8.DecodeRune(s.body[pos:])
	return r, n
}

// Slice returns the string spanning the byte range [start, end).
func (s *Source) Slice(start, end uint) string {
	return string(s.body[start:end])
}

// Equal reports whether two sources have identical body and name, as required by the data model's
// Source equality contract.
func (s *Source) Equal(other *Source) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.name == other.name && string(s.body) == string(other.body)
}

// LocationInfo describes a 1-indexed line/column position within a named source.
type LocationInfo struct {
	Name   string
	Line   uint
	Column uint
}

// LocationInfoAt derives line/column by a linear scan up to pos. It underlies the error-reporting
// paths, which run at most once per malformed document; the common, non-error path tracks
// line/column incrementally while scanning (see lexer.go) rather than re-deriving it here, since
// rescanning from the start for every token would be quadratic on megabyte-scale input.
func (s *Source) LocationInfoAt(pos uint) LocationInfo {
	var (
		line   uint = 1
		column uint = 1
	)
	size := s.Len()
	if pos > size {
		pos = size
	}

	var i uint
	for i < pos {
		switch s.body[i] {
		case '\r':
			if i+1 < size && s.body[i+1] == '\n' {
				i++
				if i == pos {
					line++
					column = 0
					continue
				}
			}
			line++
			column = 1
			i++
		case '\n':
			line++
			column = 1
			i++
		default:
			column++
			i++
		}
	}

	if line == 1 {
		column += s.columnOffset
	}
	return LocationInfo{
		Name:   s.name,
		Line:   s.lineOffset + line,
		Column: column,
	}
}
