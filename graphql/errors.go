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

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/graphql-corelang/corelang/graphql/ast"
	"github.com/graphql-corelang/corelang/internal/util"

	jsoniter "github.com/json-iterator/go"
)

// ErrKind classifies an Error by the phase of processing that raised it.
type ErrKind uint8

// Enumeration of ErrKind. Execution and coercion have no home in this module (there is no
// executor), so only the phases a language/type-system core actually raises are named.
const (
	ErrKindOther      ErrKind = iota // Unclassified; not printed in the error message.
	ErrKindSyntax                    // A lexer/parser error in GraphQL source text.
	ErrKindValidation                // A schema-validation error.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindValidation:
		return "validation error"
	}
	return "unknown error kind"
}

// ErrorExtensions holds vendor-specific data attached to an Error under the "extensions" key.
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// ErrorLocation is a 1-indexed line/column pointing at the syntax element an Error concerns.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// ErrorWithLocations is implemented by errors that can report their own source locations. NewError
// consults it to populate Error.Locations from a wrapped error when none is given explicitly.
type ErrorWithLocations interface {
	Locations() []ErrorLocation
}

// ErrorWithASTNodes implements ErrorWithLocations by reading the location of the first token of
// each given node.
type ErrorWithASTNodes struct {
	Nodes []ast.Node
}

var _ ErrorWithLocations = ErrorWithASTNodes{}

// ErrorLocationOfASTNode formats the start of an AST node's token range into an ErrorLocation.
func ErrorLocationOfASTNode(node ast.Node) ErrorLocation {
	tok := node.TokenRange().First
	return ErrorLocation{Line: tok.Line, Column: tok.Column}
}

// Locations implements ErrorWithLocations.
func (e ErrorWithASTNodes) Locations() []ErrorLocation {
	if len(e.Nodes) == 0 {
		return nil
	}
	locations := make([]ErrorLocation, len(e.Nodes))
	for i, node := range e.Nodes {
		locations[i] = ErrorLocationOfASTNode(node)
	}
	return locations
}

// ResponsePath is a sequence of field names and list indices describing where in a response an
// error occurred. Carried for parity with the GraphQL response error shape even though this module
// never produces a populated one (there is no executor here to walk a response tree).
type ResponsePath struct {
	keys []interface{}
}

// Empty reports whether the path has no segments.
func (path ResponsePath) Empty() bool { return len(path.keys) == 0 }

// AppendFieldName adds a field-name segment to the end of the path.
func (path *ResponsePath) AppendFieldName(name string) { path.keys = append(path.keys, name) }

// AppendIndex adds a list-index segment to the end of the path.
func (path *ResponsePath) AppendIndex(index int) { path.keys = append(path.keys, index) }

// Clone makes an independent copy of the path.
func (path ResponsePath) Clone() ResponsePath {
	if len(path.keys) == 0 {
		return ResponsePath{}
	}
	keys := make([]interface{}, len(path.keys))
	copy(keys, path.keys)
	return ResponsePath{keys}
}

// String renders the path as e.g. "foo.bar[2].baz".
func (path ResponsePath) String() string {
	var b util.StringBuilder
	for _, key := range path.keys {
		switch key := key.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteRune('.')
			}
			b.WriteString(key)
		case int:
			b.WriteRune('[')
			fmt.Fprintf(&b, "%d", key)
			b.WriteRune(']')
		}
	}
	return b.String()
}

// responsePathMarshaller implements jsoniter.ValEncoder to encode ResponsePath as a JSON array.
type responsePathMarshaller struct{}

var _ jsoniter.ValEncoder = responsePathMarshaller{}

func (responsePathMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return len((*ResponsePath)(ptr).keys) == 0
}

func (responsePathMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	path := (*ResponsePath)(ptr)
	n := len(path.keys)
	stream.WriteArrayStart()
	for i, key := range path.keys {
		switch key := key.(type) {
		case string:
			stream.WriteString(key)
		case int:
			stream.WriteInt(key)
		default:
			stream.Error = fmt.Errorf("unsupported type %T in response path", key)
			return
		}
		if i != n-1 {
			stream.WriteMore()
		}
	}
	stream.WriteArrayEnd()
}

// MarshalJSON implements json.Marshaler.
func (path *ResponsePath) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(path)
}

// ErrorWithPath is implemented by errors that know their own response path.
type ErrorWithPath interface {
	Path() ResponsePath
}

// ErrorWithExtensions is implemented by errors that carry extensions data.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// Error describes a problem found while lexing, parsing or validating a GraphQL document, in the
// shape defined by the GraphQL response spec so it serializes directly into a result payload.
//
// Reference: https://spec.graphql.org/October2021/#sec-Errors
type Error struct {
	// Message is required by the GraphQL spec.
	Message string

	// Locations points at the places in the source the error concerns. Syntax errors carry exactly
	// one; validation errors may carry several (e.g. two conflicting definitions of the same name).
	Locations []ErrorLocation

	// Path locates the error within a response tree. Always empty here; retained for shape parity
	// with the spec's error object since Error is also usable by a future executor built on top.
	Path ResponsePath

	// Extensions carries vendor-specific data.
	Extensions ErrorExtensions

	// Err is the underlying error that triggered this one, if any.
	Err error

	// Kind classifies which phase raised the error.
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an *Error from a message and a set of typed arguments, dispatching on each
// argument's type. Unrecognized argument types panic.
func NewError(message string, args ...interface{}) error {
	e := &Error{Message: message}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg
		case ResponsePath:
			e.Path = arg
		case ErrorExtensions:
			e.Extensions = arg
		case error:
			e.Err = arg
		case ErrKind:
			e.Kind = arg
		default:
			panic(fmt.Sprintf("graphql.NewError: unsupported argument type %T", arg))
		}
	}

	if prev := e.Err; prev != nil {
		if len(e.Locations) == 0 {
			switch prevErr := prev.(type) {
			case ErrorWithLocations:
				e.Locations = prevErr.Locations()
			case *Error:
				if len(prevErr.Locations) > 0 {
					e.Locations = append([]ErrorLocation(nil), prevErr.Locations...)
				}
			}
		}
		if e.Path.Empty() {
			switch prevErr := prev.(type) {
			case ErrorWithPath:
				e.Path = prevErr.Path()
			case *Error:
				if !prevErr.Path.Empty() {
					e.Path = prevErr.Path.Clone()
				}
			}
		}
		if e.Extensions == nil {
			switch prevErr := prev.(type) {
			case ErrorWithExtensions:
				e.Extensions = prevErr.Extensions()
			case *Error:
				e.Extensions = prevErr.Extensions
			}
		}
		if e.Kind == ErrKindOther {
			if prevErr, ok := prev.(*Error); ok {
				e.Kind = prevErr.Kind
			}
		}
	}

	return e
}

// WrapError wraps err with an additional message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is WrapError with a format string.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b util.StringBuilder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *util.StringBuilder, next *Error) {
	initialLen := b.Len()
	pad := func(s string) {
		if b.Len() != initialLen {
			b.WriteString(s)
		}
	}

	if len(e.Message) > 0 {
		b.WriteString(e.Message)
	}

	if e.Locations != nil && (next == nil || !reflect.DeepEqual(next.Locations, e.Locations)) {
		if b.Len() == initialLen {
			b.WriteString("At ")
		} else {
			b.WriteString(" at ")
		}
		fmt.Fprintf(b, "%+v", e.Locations)
	}

	if !e.Path.Empty() && (next == nil || !reflect.DeepEqual(next.Path, e.Path)) {
		pad(" ")
		b.WriteString("for response field in the path ")
		b.WriteString(e.Path.String())
	}

	if e.Kind != ErrKindOther && (next == nil || next.Kind != e.Kind) {
		pad(": ")
		b.WriteString(e.Kind.String())
	}

	if len(e.Extensions) > 0 && (next == nil || !reflect.DeepEqual(next.Extensions, e.Extensions)) {
		pad(" (additional info: ")
		fmt.Fprintf(b, "%v)", e.Extensions)
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if n := len(err.Locations); n > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i := range err.Locations {
			loc := &err.Locations[i]
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(loc.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(loc.Column)
			stream.WriteObjectEnd()
			if i != n-1 {
				stream.WriteMore()
			}
		}
		stream.WriteArrayEnd()
	}

	if !err.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(&err.Path)
	}

	if n := len(err.Extensions); n > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		i := 0
		for k, v := range err.Extensions {
			stream.WriteObjectField(k)
			stream.WriteVal(v)
			i++
			if i != n {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

// Errors wraps a slice of *Error. It is a struct rather than a bare slice type so that callers are
// forced through HaveOccurred() instead of a `errs != nil` check, which would misfire on an empty
// but non-nil slice.
type Errors struct {
	Errors []*Error
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors { return Errors{} }

// ErrorsOf builds an Errors from either a list of errors, or a message plus NewError-style
// arguments.
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)
		case string:
			errs.Emplace(arg, args[i+1:]...)
			return errs
		default:
			panic("graphql.ErrorsOf: bad call")
		}
	}
	return errs
}

// Emplace constructs an Error from arguments and appends it.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends errors, each of which must be a *Error.
func (errs *Errors) Append(es ...error) {
	for _, e := range es {
		errs.Errors = append(errs.Errors, e.(*Error))
	}
}

// AppendErrors flattens a list of Errors into the receiver.
func (errs *Errors) AppendErrors(es ...Errors) {
	for _, e := range es {
		errs.Errors = append(errs.Errors, e.Errors...)
	}
}

// HaveOccurred reports whether any error is present.
func (errs Errors) HaveOccurred() bool { return len(errs.Errors) > 0 }

func init() {
	jsoniter.RegisterTypeEncoder("graphql.ResponsePath", responsePathMarshaller{})
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}
