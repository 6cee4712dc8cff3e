/**
 * Copyright (c) 2019, The Artemis Authors.
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
	"strconv"
	"strings"
)

// defaultDeprecationReason is substituted by a bare "@deprecated" (no reason argument) when
// printing, matching what a parser produces for a @deprecated directive with no explicit reason.
const defaultDeprecationReason = "No longer supported."

// PrintSchema renders schema back to SDL: every user-defined type and directive in the order they
// were collected, skipping the specified scalars, specified directives and introspection types
// that every schema carries implicitly.
func PrintSchema(schema *Schema) string {
	var blocks []string

	if !isSchemaOfCommonNames(schema) {
		blocks = append(blocks, printBlock(func(p *schemaPrinter) { p.printSchemaDefinition(schema) }))
	}

	for _, d := range schema.Directives() {
		if IsSpecifiedDirective(d) {
			continue
		}
		d := d
		blocks = append(blocks, printBlock(func(p *schemaPrinter) { p.printDirectiveDefinition(d) }))
	}

	for _, t := range schema.Types().All() {
		if skipTypeInPrint(t) {
			continue
		}
		t := t
		blocks = append(blocks, printBlock(func(p *schemaPrinter) { p.printTypeDefinition(t) }))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func skipTypeInPrint(t TypeWithName) bool {
	if s, ok := t.(*Scalar); ok && IsSpecifiedScalar(s) {
		return true
	}
	return IsIntrospectionTypeName(t.Name())
}

func isSchemaOfCommonNames(schema *Schema) bool {
	if q := schema.QueryType(); q != nil && q.Name() != "Query" {
		return false
	}
	if m := schema.MutationType(); m != nil && m.Name() != "Mutation" {
		return false
	}
	if s := schema.SubscriptionType(); s != nil && s.Name() != "Subscription" {
		return false
	}
	return true
}

func printBlock(fn func(p *schemaPrinter)) string {
	p := &schemaPrinter{}
	fn(p)
	return p.buf.String()
}

type schemaPrinter struct {
	buf         strings.Builder
	indentLevel int
}

func (p *schemaPrinter) writeString(s string) { p.buf.WriteString(s) }

func (p *schemaPrinter) indentation() string { return strings.Repeat("  ", p.indentLevel) }

func (p *schemaPrinter) writeIndent() { p.writeString(p.indentation()) }

func (p *schemaPrinter) newLineIndent() {
	p.writeString("\n")
	p.writeIndent()
}

func (p *schemaPrinter) printTypeDefinition(t TypeWithName) {
	switch t := t.(type) {
	case *Scalar:
		p.printScalarType(t)
	case *Object:
		p.printObjectType(t)
	case *Interface:
		p.printInterfaceType(t)
	case *Union:
		p.printUnionType(t)
	case *Enum:
		p.printEnumType(t)
	case *InputObject:
		p.printInputObjectType(t)
	}
}

func (p *schemaPrinter) printSchemaDefinition(schema *Schema) {
	p.writeString("schema {\n")
	p.indentLevel++
	if q := schema.QueryType(); q != nil {
		p.writeIndent()
		p.writeString("query: " + q.Name() + "\n")
	}
	if m := schema.MutationType(); m != nil {
		p.writeIndent()
		p.writeString("mutation: " + m.Name() + "\n")
	}
	if s := schema.SubscriptionType(); s != nil {
		p.writeIndent()
		p.writeString("subscription: " + s.Name() + "\n")
	}
	p.indentLevel--
	p.writeString("}")
}

func (p *schemaPrinter) printScalarType(s *Scalar) {
	p.printDescription(s.Description())
	p.writeString("scalar " + s.Name())
	if url := s.SpecifiedByURL(); url != "" {
		p.writeString(" @specifiedBy(url: " + strconv.Quote(url) + ")")
	}
}

func (p *schemaPrinter) printObjectType(o *Object) {
	p.printDescription(o.Description())
	p.writeString("type " + o.Name())
	p.printImplementsInterfaces(o.Interfaces())
	p.printFieldsBlock(o.Fields())
}

func (p *schemaPrinter) printInterfaceType(i *Interface) {
	p.printDescription(i.Description())
	p.writeString("interface " + i.Name())
	p.printImplementsInterfaces(i.Interfaces())
	p.printFieldsBlock(i.Fields())
}

func (p *schemaPrinter) printImplementsInterfaces(interfaces []*Interface) {
	if len(interfaces) == 0 {
		return
	}
	names := make([]string, len(interfaces))
	for i, iface := range interfaces {
		names[i] = iface.Name()
	}
	p.writeString(" implements " + strings.Join(names, " & "))
}

func (p *schemaPrinter) printFieldsBlock(fields FieldMap) {
	all := fields.All()
	if len(all) == 0 {
		return
	}
	p.writeString(" {\n")
	p.indentLevel++
	for _, f := range all {
		p.writeIndent()
		p.printFieldDefinition(f)
		p.writeString("\n")
	}
	p.indentLevel--
	p.writeIndent()
	p.writeString("}")
}

func (p *schemaPrinter) printFieldDefinition(f *Field) {
	p.printDescription(f.Description())
	p.writeString(f.Name())
	p.printArguments(f.Args().All())
	p.writeString(": " + f.Type().String())
	if dep := f.Deprecation(); dep != nil {
		p.writeString(" " + p.renderDeprecated(dep))
	}
}

// argumentsWrapThreshold mirrors the SDL argument-list line-wrap threshold used when printing
// parsed documents: past this many characters (parentheses included) a one-line argument list
// switches to one argument per line.
const argumentsWrapThreshold = 80

func (p *schemaPrinter) printArguments(args []*Argument) {
	if len(args) == 0 {
		return
	}

	hasDescription := false
	for _, arg := range args {
		if arg.Description() != "" {
			hasDescription = true
			break
		}
	}

	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = p.renderArgument(arg)
	}

	if !hasDescription {
		oneLine := "(" + strings.Join(rendered, ", ") + ")"
		if len(oneLine) <= argumentsWrapThreshold {
			p.writeString(oneLine)
			return
		}
	}

	p.writeString("(\n")
	p.indentLevel++
	for i, arg := range args {
		p.writeIndent()
		p.printDescription(arg.Description())
		p.writeString(rendered[i])
		p.writeString("\n")
	}
	p.indentLevel--
	p.writeIndent()
	p.writeString(")")
}

func (p *schemaPrinter) renderArgument(a *Argument) string {
	s := a.Name() + ": " + a.Type().String()
	if a.HasDefaultValue() {
		s += " = " + p.printValueLiteral(a.DefaultValue(), a.Type())
	}
	if dep := a.Deprecation(); dep != nil {
		s += " " + p.renderDeprecated(dep)
	}
	return s
}

func (p *schemaPrinter) printUnionType(u *Union) {
	p.printDescription(u.Description())
	p.writeString("union " + u.Name())
	types := u.Types()
	if len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.Name()
		}
		p.writeString(" = " + strings.Join(names, " | "))
	}
}

func (p *schemaPrinter) printEnumType(e *Enum) {
	p.printDescription(e.Description())
	p.writeString("enum " + e.Name())
	values := e.Values().All()
	if len(values) == 0 {
		return
	}
	p.writeString(" {\n")
	p.indentLevel++
	for _, v := range values {
		p.writeIndent()
		p.printDescription(v.Description())
		p.writeString(v.Name())
		if dep := v.Deprecation(); dep != nil {
			p.writeString(" " + p.renderDeprecated(dep))
		}
		p.writeString("\n")
	}
	p.indentLevel--
	p.writeIndent()
	p.writeString("}")
}

func (p *schemaPrinter) printInputObjectType(o *InputObject) {
	p.printDescription(o.Description())
	p.writeString("input " + o.Name())
	if o.IsOneOf() {
		p.writeString(" @oneOf")
	}
	fields := o.Fields().All()
	if len(fields) == 0 {
		return
	}
	p.writeString(" {\n")
	p.indentLevel++
	for _, f := range fields {
		p.writeIndent()
		p.printInputFieldDefinition(f)
		p.writeString("\n")
	}
	p.indentLevel--
	p.writeIndent()
	p.writeString("}")
}

func (p *schemaPrinter) printInputFieldDefinition(f *InputField) {
	p.printDescription(f.Description())
	p.writeString(f.Name() + ": " + f.Type().String())
	if f.HasDefaultValue() {
		p.writeString(" = " + p.printValueLiteral(f.DefaultValue(), f.Type()))
	}
	if dep := f.Deprecation(); dep != nil {
		p.writeString(" " + p.renderDeprecated(dep))
	}
}

func (p *schemaPrinter) printDirectiveDefinition(d *Directive) {
	p.printDescription(d.Description())
	p.writeString("directive @" + d.Name())
	p.printArguments(d.Args().All())
	if d.IsRepeatable() {
		p.writeString(" repeatable")
	}
	p.writeString(" on ")
	locations := d.Locations()
	strs := make([]string, len(locations))
	for i, loc := range locations {
		strs[i] = string(loc)
	}
	p.writeString(strings.Join(strs, " | "))
}

func (p *schemaPrinter) renderDeprecated(dep *Deprecation) string {
	if dep.Reason == "" || dep.Reason == defaultDeprecationReason {
		return "@deprecated"
	}
	return "@deprecated(reason: " + strconv.Quote(dep.Reason) + ")"
}

// printDescription writes desc as a block string followed by a newline at the current indent, or
// does nothing when desc is empty.
func (p *schemaPrinter) printDescription(desc string) {
	if desc == "" {
		return
	}
	p.writeBlockString(desc)
	p.newLineIndent()
}

// writeBlockString renders value as a triple-quoted block string, following the same leading/
// trailing-blank-line rules graphql-js uses so that single-line descriptions stay on one line and
// multi-line ones get their own indented block.
func (p *schemaPrinter) writeBlockString(value string) {
	isSingleLine := !strings.Contains(value, "\n")
	hasLeadingSpace := len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
	hasTrailingQuote := len(value) > 0 && value[len(value)-1] == '"'
	printAsMultipleLines := !isSingleLine || hasTrailingQuote

	p.writeString(`"""`)
	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		p.newLineIndent()
	}

	escaped := strings.ReplaceAll(value, `"""`, `\"""`)
	escaped = strings.ReplaceAll(escaped, "\n", "\n"+p.indentation())
	p.writeString(escaped)

	if printAsMultipleLines {
		p.newLineIndent()
	}
	p.writeString(`"""`)
}

// printValueLiteral renders a default value the way it would appear in SDL, dispatching on t to
// know whether a string belongs in quotes (a String/ID default) or bare (an enum member name).
func (p *schemaPrinter) printValueLiteral(value interface{}, t Type) string {
	if nonNull, ok := t.(*NonNull); ok {
		t = nonNull.OfType()
	}
	if value == nil {
		return "null"
	}

	if list, ok := t.(*List); ok {
		elems, ok := value.([]interface{})
		if !ok {
			return p.printValueLiteral(value, list.OfType())
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = p.printValueLiteral(e, list.OfType())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	if input, ok := NamedTypeOf(t).(*InputObject); ok {
		if obj, ok := value.(map[string]interface{}); ok {
			var parts []string
			for _, f := range input.Fields().All() {
				if v, present := obj[f.Name()]; present {
					parts = append(parts, f.Name()+": "+p.printValueLiteral(v, f.Type()))
				}
			}
			return "{" + strings.Join(parts, ", ") + "}"
		}
	}

	if _, ok := NamedTypeOf(t).(*Enum); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}

	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return strconv.Quote(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmtInt(v)
	case float32, float64:
		return fmtFloat(v)
	default:
		return fmtInt(v)
	}
}

func fmtInt(v interface{}) string  { return strconv.FormatInt(toInt64(v), 10) }
func fmtFloat(v interface{}) string {
	switch f := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ""
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	}
	return 0
}
