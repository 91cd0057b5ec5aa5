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

// Package printer renders a built schema in the GraphQL Schema Definition Language. The output
// follows the formatting rules of graphql-js's printSchema.
package printer

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/graphql-nexus/nexus-sub000/graphql"

	jsoniter "github.com/json-iterator/go"
)

// DefaultDeprecationReason is the reason assumed by @deprecated when none is given. A deprecation
// with this reason prints without arguments.
const DefaultDeprecationReason = "No longer supported"

// Descriptions longer than this are printed in the multi-line block form.
const maxSingleLineDescription = 70

// Strings are quoted like JSON.stringify which does not escape HTML characters.
var stringQuoter = jsoniter.Config{EscapeHTML: false}.Froze()

// StringWriter is the output accepted by FPrintSchema.
type StringWriter interface {
	io.Writer
	io.StringWriter
}

// PrintSchema prints the schema in SDL. Standard scalars and introspection types are omitted and
// the remaining types are sorted by name.
func PrintSchema(schema *graphql.Schema) string {
	var buf strings.Builder
	FPrintSchema(&buf, schema)
	return buf.String()
}

// FPrintSchema writes the SDL of schema to out.
func FPrintSchema(out StringWriter, schema *graphql.Schema) {
	p := &printer{StringWriter: out}

	first := true
	separate := func() {
		if !first {
			p.WriteString("\n\n")
		}
		first = false
	}

	if !hasCommonRootNames(schema) {
		separate()
		p.printSchemaDefinition(schema)
	}

	typeMap := schema.TypeMap()
	names := make([]string, 0, typeMap.Len())
	for _, name := range typeMap.Names() {
		if graphql.IsStandardScalar(name) || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		separate()
		p.printType(typeMap.Lookup(name))
	}

	p.WriteString("\n")
}

// PrintType prints the SDL definition of a single named type.
func PrintType(t graphql.NamedType) string {
	var buf strings.Builder
	(&printer{StringWriter: &buf}).printType(t)
	return buf.String()
}

func hasCommonRootNames(schema *graphql.Schema) bool {
	if query := schema.Query(); query != nil && query.Name() != "Query" {
		return false
	}
	if mutation := schema.Mutation(); mutation != nil && mutation.Name() != "Mutation" {
		return false
	}
	if subscription := schema.Subscription(); subscription != nil && subscription.Name() != "Subscription" {
		return false
	}
	return true
}

type printer struct {
	StringWriter
	indentLevel int
}

func (p *printer) beginBlock() {
	p.WriteString(" {")
	p.indentLevel++
}

func (p *printer) endBlock() {
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString("}")
}

func (p *printer) writeNewLineWithIndent() {
	p.WriteString("\n")
	p.writeIndent()
}

func (p *printer) writeIndent() {
	p.WriteString(p.indentation())
}

func (p *printer) indentation() string {
	return strings.Repeat(" ", 2*p.indentLevel)
}

func (p *printer) printSchemaDefinition(schema *graphql.Schema) {
	p.WriteString("schema")
	p.beginBlock()
	roots := []struct {
		operation string
		object    *graphql.Object
	}{
		{"query", schema.Query()},
		{"mutation", schema.Mutation()},
		{"subscription", schema.Subscription()},
	}
	for _, root := range roots {
		if root.object == nil {
			continue
		}
		p.writeNewLineWithIndent()
		p.WriteString(root.operation)
		p.WriteString(": ")
		p.WriteString(root.object.Name())
	}
	p.endBlock()
}

func (p *printer) printType(t graphql.NamedType) {
	switch t := t.(type) {
	case *graphql.Scalar:
		p.printDescription(t.Description())
		p.WriteString("scalar ")
		p.WriteString(t.Name())

	case *graphql.Object:
		p.printDescription(t.Description())
		p.WriteString("type ")
		p.WriteString(t.Name())
		p.printImplementedInterfaces(t.Interfaces())
		p.printFields(t.Fields())

	case *graphql.Interface:
		p.printDescription(t.Description())
		p.WriteString("interface ")
		p.WriteString(t.Name())
		p.printImplementedInterfaces(t.Interfaces())
		p.printFields(t.Fields())

	case *graphql.Union:
		p.printDescription(t.Description())
		p.WriteString("union ")
		p.WriteString(t.Name())
		if members := t.MemberNames(); len(members) > 0 {
			p.WriteString(" = ")
			p.WriteString(strings.Join(members, " | "))
		}

	case *graphql.Enum:
		p.printDescription(t.Description())
		p.WriteString("enum ")
		p.WriteString(t.Name())
		p.printEnumValues(t.Values())

	case *graphql.InputObject:
		p.printDescription(t.Description())
		p.WriteString("input ")
		p.WriteString(t.Name())
		p.printInputFields(t.Fields())

	default:
		panic(fmt.Sprintf("unsupported type %T for printing", t))
	}
}

func (p *printer) printImplementedInterfaces(interfaces []*graphql.Interface) {
	if len(interfaces) == 0 {
		return
	}
	p.WriteString(" implements ")
	for i, iface := range interfaces {
		if i > 0 {
			p.WriteString(" & ")
		}
		p.WriteString(iface.Name())
	}
}

func (p *printer) printFields(fields []*graphql.Field) {
	if len(fields) == 0 {
		return
	}
	p.beginBlock()
	for i, field := range fields {
		p.beginItem(field.Description(), i == 0)
		p.WriteString(field.Name())
		p.printArgs(field.Args())
		p.WriteString(": ")
		p.WriteString(typeString(field))
		p.printDeprecated(field.Deprecation())
	}
	p.endBlock()
}

func (p *printer) printArgs(args []*graphql.Argument) {
	if len(args) == 0 {
		return
	}

	described := false
	for _, arg := range args {
		if len(arg.Description()) > 0 {
			described = true
			break
		}
	}

	p.WriteString("(")
	if !described {
		for i, arg := range args {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printInputValue(arg)
		}
		p.WriteString(")")
		return
	}

	p.indentLevel++
	for i, arg := range args {
		p.beginItem(arg.Description(), i == 0)
		p.printInputValue(arg)
	}
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString(")")
}

func (p *printer) printInputFields(fields []*graphql.InputField) {
	if len(fields) == 0 {
		return
	}
	p.beginBlock()
	for i, field := range fields {
		p.beginItem(field.Description(), i == 0)
		p.printInputValue(field)
	}
	p.endBlock()
}

func (p *printer) printInputValue(value inputValue) {
	p.WriteString(value.Name())
	p.WriteString(": ")
	p.WriteString(typeString(value))
	if value.HasDefaultValue() {
		p.WriteString(" = ")
		t, err := value.ResolveType()
		if err != nil {
			t = nil
		}
		p.printValue(value.DefaultValue(), t)
	}
}

func (p *printer) printEnumValues(values []*graphql.EnumValue) {
	if len(values) == 0 {
		return
	}
	p.beginBlock()
	for i, value := range values {
		p.beginItem(value.Description(), i == 0)
		p.WriteString(value.Name())
		p.printDeprecated(value.Deprecation())
	}
	p.endBlock()
}

func (p *printer) printDeprecated(deprecation *graphql.Deprecation) {
	if !deprecation.Defined() {
		return
	}
	p.WriteString(" @deprecated")
	if reason := deprecation.Reason; len(reason) > 0 && reason != DefaultDeprecationReason {
		p.WriteString("(reason: ")
		p.printString(reason)
		p.WriteString(")")
	}
}

// beginItem starts a new line in a block for a definition with the given description. Descriptions
// other than the first in a block are preceded by a blank line.
func (p *printer) beginItem(description string, firstInBlock bool) {
	p.WriteString("\n")
	if len(description) > 0 && !firstInBlock {
		p.WriteString("\n")
	}
	p.writeIndent()
	p.printDescription(description)
}

// printDescription writes the description followed by a line break and the indentation for the
// definition it describes.
func (p *printer) printDescription(description string) {
	if len(description) == 0 {
		return
	}
	p.printBlockString(description, len(description) > maxSingleLineDescription)
	p.writeNewLineWithIndent()
}

// Print a block string in the indented block form by adding a leading and trailing blank line.
// However, if a block string starts with whitespace and is a single-line, adding a leading blank
// line would strip that whitespace.
func (p *printer) printBlockString(value string, preferMultipleLines bool) {
	var (
		isSingleLine         = !strings.ContainsRune(value, '\n')
		hasLeadingSpace      = len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
		hasTrailingQuote     = len(value) > 0 && value[len(value)-1] == '"'
		hasTrailingSlash     = len(value) > 0 && value[len(value)-1] == '\\'
		printAsMultipleLines = !isSingleLine || hasTrailingQuote || hasTrailingSlash || preferMultipleLines
	)

	p.WriteString(`"""`)

	// Format a multi-line block quote to account for leading space.
	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		p.writeNewLineWithIndent()
	}

	// Replace """ with \""".
	value = strings.Replace(value, `"""`, `\"""`, -1)
	if p.indentLevel > 0 {
		value = strings.Replace(value, "\n", "\n"+p.indentation(), -1)
	}
	p.WriteString(value)

	if printAsMultipleLines {
		p.writeNewLineWithIndent()
	}

	p.WriteString(`"""`)
}

func (p *printer) printString(value string) {
	// graphql-js: JSON.stringify(value)
	stream := jsoniter.NewStream(stringQuoter, p, 64)
	stream.WriteString(value)
	stream.Flush()
}

// printValue prints value as a GraphQL literal of type t. A nil t prints the value by its Go
// representation alone.
func (p *printer) printValue(value interface{}, t graphql.Type) {
	if value == nil {
		p.WriteString("null")
		return
	}

	switch t := t.(type) {
	case *graphql.NonNull:
		p.printValue(value, t.InnerType())
		return

	case *graphql.List:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			// Input coercion accepts a single item in place of a list.
			p.printValue(value, t.ElementType())
			return
		}
		p.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printValue(v.Index(i).Interface(), t.ElementType())
		}
		p.WriteString("]")
		return

	case *graphql.InputObject:
		if fields, ok := value.(map[string]interface{}); ok {
			p.WriteString("{")
			n := 0
			for _, field := range t.Fields() {
				fieldValue, exists := fields[field.Name()]
				if !exists {
					continue
				}
				if n > 0 {
					p.WriteString(", ")
				}
				n++
				p.WriteString(field.Name())
				p.WriteString(": ")
				fieldType, err := field.ResolveType()
				if err != nil {
					fieldType = nil
				}
				p.printValue(fieldValue, fieldType)
			}
			p.WriteString("}")
			return
		}

	case *graphql.Enum:
		for _, enumValue := range t.Values() {
			if reflect.DeepEqual(enumValue.Value(), value) {
				p.WriteString(enumValue.Name())
				return
			}
		}
	}

	p.printScalarValue(value)
}

func (p *printer) printScalarValue(value interface{}) {
	switch value := value.(type) {
	case string:
		p.printString(value)
	case bool:
		p.WriteString(strconv.FormatBool(value))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		p.WriteString(fmt.Sprint(value))
	case float32:
		p.WriteString(strconv.FormatFloat(float64(value), 'g', -1, 32))
	case float64:
		p.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	case fmt.Stringer:
		p.printString(value.String())
	default:
		stream := jsoniter.NewStream(stringQuoter, p, 64)
		stream.WriteVal(value)
		stream.Flush()
	}
}

// typedValue is satisfied by fields, arguments and input fields.
type typedValue interface {
	ResolveType() (graphql.Type, error)
	NamedType() *graphql.LazyType
	Wrapping() graphql.Wrapping
}

// inputValue is satisfied by arguments and input fields.
type inputValue interface {
	typedValue
	Name() string
	HasDefaultValue() bool
	DefaultValue() interface{}
}

// typeString prints the type of a definition. An unresolvable reference prints the name it was
// declared with.
func typeString(value typedValue) string {
	t, err := value.ResolveType()
	if err != nil {
		return value.Wrapping().Decorate(value.NamedType().Name())
	}
	return t.String()
}
