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

// Package manifest encodes a built schema into a JSON document for code generators. For every named
// type it records the kind and the members, and for every field the named type, the wrapping and
// whether a resolver was declared.
//
// An example of the output:
//
//	{
//	  "rootTypes": {"query": "Query"},
//	  "types": [
//	    {
//	      "name": "Query",
//	      "kind": "OBJECT",
//	      "interfaces": [],
//	      "fields": [
//	        {
//	          "name": "posts",
//	          "type": "Post",
//	          "wrapping": {"nonNull": true, "listItemsNonNull": [false]},
//	          "hasResolver": true,
//	          "args": []
//	        }
//	      ]
//	    }
//	  ]
//	}
package manifest

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/graphql-nexus/nexus-sub000/graphql"

	jsoniter "github.com/json-iterator/go"
)

var config = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// Encode writes the manifest of schema to w. Standard scalars and introspection types are omitted
// and the remaining types are sorted by name.
func Encode(w io.Writer, schema *graphql.Schema) error {
	const op graphql.Op = "manifest.Encode"

	stream := jsoniter.NewStream(config, w, 512)
	(&encoder{stream, schema}).encodeSchema()
	if stream.Error != nil {
		return graphql.NewError("cannot encode manifest", op, stream.Error)
	}
	if err := stream.Flush(); err != nil {
		return graphql.NewError("cannot write manifest", op, err)
	}
	return nil
}

// Marshal returns the manifest of schema.
func Marshal(schema *graphql.Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, schema); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	stream *jsoniter.Stream
	schema *graphql.Schema
}

func (e *encoder) encodeSchema() {
	stream := e.stream
	stream.WriteObjectStart()

	stream.WriteObjectField("rootTypes")
	stream.WriteObjectStart()
	first := true
	for _, root := range []struct {
		operation string
		object    *graphql.Object
	}{
		{"query", e.schema.Query()},
		{"mutation", e.schema.Mutation()},
		{"subscription", e.schema.Subscription()},
	} {
		if root.object == nil {
			continue
		}
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(root.operation)
		stream.WriteString(root.object.Name())
	}
	stream.WriteObjectEnd()

	stream.WriteMore()
	stream.WriteObjectField("types")
	stream.WriteArrayStart()
	for i, name := range sortedTypeNames(e.schema) {
		if i > 0 {
			stream.WriteMore()
		}
		e.encodeType(e.schema.Lookup(name))
	}
	stream.WriteArrayEnd()

	stream.WriteObjectEnd()
}

func sortedTypeNames(schema *graphql.Schema) []string {
	typeMap := schema.TypeMap()
	names := make([]string, 0, typeMap.Len())
	for _, name := range typeMap.Names() {
		if graphql.IsStandardScalar(name) || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *encoder) encodeType(t graphql.NamedType) {
	stream := e.stream
	stream.WriteObjectStart()

	stream.WriteObjectField("name")
	stream.WriteString(t.Name())
	stream.WriteMore()
	stream.WriteObjectField("kind")
	stream.WriteString(t.Kind().String())
	if description := t.Description(); len(description) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("description")
		stream.WriteString(description)
	}

	switch t := t.(type) {
	case *graphql.Object:
		stream.WriteMore()
		e.encodeInterfaces(t.Interfaces())
		stream.WriteMore()
		e.encodeFields(t.Fields())

	case *graphql.Interface:
		stream.WriteMore()
		e.encodeInterfaces(t.Interfaces())
		stream.WriteMore()
		e.encodeFields(t.Fields())
		stream.WriteMore()
		stream.WriteObjectField("possibleTypes")
		var names []string
		for _, object := range e.schema.PossibleTypes(t) {
			names = append(names, object.Name())
		}
		e.encodeStrings(names)

	case *graphql.Union:
		stream.WriteMore()
		stream.WriteObjectField("members")
		e.encodeStrings(t.MemberNames())

	case *graphql.Enum:
		stream.WriteMore()
		stream.WriteObjectField("values")
		stream.WriteArrayStart()
		for i, value := range t.Values() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("name")
			stream.WriteString(value.Name())
			e.encodeDeprecation(value.Deprecation())
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()

	case *graphql.InputObject:
		stream.WriteMore()
		stream.WriteObjectField("inputFields")
		stream.WriteArrayStart()
		for i, field := range t.Fields() {
			if i > 0 {
				stream.WriteMore()
			}
			e.encodeInputValue(field)
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
}

func (e *encoder) encodeInterfaces(interfaces []*graphql.Interface) {
	names := make([]string, len(interfaces))
	for i, iface := range interfaces {
		names[i] = iface.Name()
	}
	e.stream.WriteObjectField("interfaces")
	e.encodeStrings(names)
}

func (e *encoder) encodeStrings(values []string) {
	stream := e.stream
	stream.WriteArrayStart()
	for i, value := range values {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(value)
	}
	stream.WriteArrayEnd()
}

func (e *encoder) encodeFields(fields []*graphql.Field) {
	stream := e.stream
	stream.WriteObjectField("fields")
	stream.WriteArrayStart()
	for i, field := range fields {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		e.encodeTypedValue(field.Name(), field)
		stream.WriteMore()
		stream.WriteObjectField("hasResolver")
		stream.WriteBool(field.HasResolver())
		stream.WriteMore()
		stream.WriteObjectField("args")
		stream.WriteArrayStart()
		for j, arg := range field.Args() {
			if j > 0 {
				stream.WriteMore()
			}
			e.encodeInputValue(arg)
		}
		stream.WriteArrayEnd()
		e.encodeDeprecation(field.Deprecation())
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()
}

// inputValue is satisfied by arguments and input fields.
type inputValue interface {
	typedValue
	Name() string
	HasDefaultValue() bool
	DefaultValue() interface{}
}

func (e *encoder) encodeInputValue(value inputValue) {
	stream := e.stream
	stream.WriteObjectStart()
	e.encodeTypedValue(value.Name(), value)
	if value.HasDefaultValue() {
		stream.WriteMore()
		stream.WriteObjectField("defaultValue")
		stream.WriteVal(value.DefaultValue())
	}
	stream.WriteObjectEnd()
}

// typedValue is satisfied by fields, arguments and input fields.
type typedValue interface {
	ResolveType() (graphql.Type, error)
	NamedType() *graphql.LazyType
	Wrapping() graphql.Wrapping
}

// encodeTypedValue writes the name, the named type and the wrapping of a value. The named type of
// an unresolvable reference is the name it was declared with.
func (e *encoder) encodeTypedValue(name string, value typedValue) {
	stream := e.stream

	stream.WriteObjectField("name")
	stream.WriteString(name)

	typeName := value.NamedType().Name()
	if t, err := value.ResolveType(); err == nil {
		if named, ok := graphql.NamedTypeOf(t).(graphql.TypeWithName); ok {
			typeName = named.Name()
		}
	}
	stream.WriteMore()
	stream.WriteObjectField("type")
	stream.WriteString(typeName)

	wrapping := value.Wrapping()
	stream.WriteMore()
	stream.WriteObjectField("wrapping")
	stream.WriteObjectStart()
	stream.WriteObjectField("nonNull")
	stream.WriteBool(wrapping.NonNull)
	stream.WriteMore()
	stream.WriteObjectField("listItemsNonNull")
	stream.WriteArrayStart()
	for i, nonNull := range wrapping.ListItemsNonNull {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteBool(nonNull)
	}
	stream.WriteArrayEnd()
	stream.WriteObjectEnd()
}

func (e *encoder) encodeDeprecation(deprecation *graphql.Deprecation) {
	if !deprecation.Defined() {
		return
	}
	stream := e.stream
	stream.WriteMore()
	stream.WriteObjectField("deprecationReason")
	stream.WriteString(deprecation.Reason)
}
