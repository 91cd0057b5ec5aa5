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
	"fmt"
	"reflect"
)

// Contains interfaces and definitions for a GraphQL schema.

// TypeMap keeps track of all named types referenced within the schema in the order they were
// reached.
type TypeMap struct {
	types map[string]NamedType
	names []string
}

func newTypeMap() *TypeMap {
	return &TypeMap{
		types: map[string]NamedType{},
	}
}

// Add a type into the map. This is only used by NewSchema to initialize type map incrementally.
// Every deferred reference reachable from t is resolved.
func (typeMap *TypeMap) add(t Type) error {
	// queue contains types to be added to the map. Using a queue keeps the order breadth-first which
	// places the types close to where they are referenced.
	queue := []Type{t}

	for len(queue) > 0 {
		t, queue = queue[0], queue[1:]

		// Skip nil type quickly. We may have nil type instance wrapped in a Type.
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}

		// Map type name to corresponding Type.
		if namedType, ok := t.(NamedType); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				// Add the type into typeMap.
				typeMap.types[name] = namedType
				typeMap.names = append(typeMap.names, name)
			} else {
				if prev != namedType {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %s.", name),
						ErrKindDefinition)
				}
				// Skip t which has been processed.
				continue
			}
		}

		// Add types referenced by t to queue.
		switch t := t.(type) {
		case *Scalar, *Enum:
			// Nothing to to.

		case *Object:
			for _, iface := range t.Interfaces() {
				queue = append(queue, iface)
			}
			fieldTypes, err := referencedTypesOfFields(t.Name(), t.Fields())
			if err != nil {
				return err
			}
			queue = append(queue, fieldTypes...)

		case *Interface:
			for _, iface := range t.Interfaces() {
				queue = append(queue, iface)
			}
			fieldTypes, err := referencedTypesOfFields(t.Name(), t.Fields())
			if err != nil {
				return err
			}
			queue = append(queue, fieldTypes...)

		case *Union:
			possibleTypes, err := t.ResolvePossibleTypes()
			if err != nil {
				return err
			}
			for _, possibleType := range possibleTypes {
				queue = append(queue, possibleType)
			}

		case *InputObject:
			for _, field := range t.Fields() {
				fieldType, err := field.ResolveType()
				if err != nil {
					return WrapErrorf(err, "%s.%s", t.Name(), field.Name())
				}
				queue = append(queue, fieldType)
			}

		case *List:
			queue = append(queue, t.ElementType())
		case *NonNull:
			queue = append(queue, t.InnerType())

		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t), ErrKindInternal)
		}
	}

	return nil
}

func referencedTypesOfFields(typeName string, fields []*Field) ([]Type, error) {
	var result []Type
	for _, field := range fields {
		fieldType, err := field.ResolveType()
		if err != nil {
			return nil, WrapErrorf(err, "%s.%s", typeName, field.Name())
		}
		result = append(result, fieldType)

		for _, arg := range field.Args() {
			argType, err := arg.ResolveType()
			if err != nil {
				return nil, WrapErrorf(err, "%s.%s(%s:)", typeName, field.Name(), arg.Name())
			}
			result = append(result, argType)
		}
	}
	return result, nil
}

// Lookup finds a type with given name.
func (typeMap *TypeMap) Lookup(name string) NamedType {
	return typeMap.types[name]
}

// Names returns the names of all types in the order they were added.
func (typeMap *TypeMap) Names() []string {
	return typeMap.names
}

// Len returns the number of types in the map.
func (typeMap *TypeMap) Len() int {
	return len(typeMap.names)
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Query, Mutation and Subscription returns GraphQL Root Operation defined by the schema.
	Query        *Object
	Mutation     *Object
	Subscription *Object

	// List of types that are declared in the schema.
	Types []Type
}

// Schema Definition
//
// A GraphQL service’s collective type system capabilities are referred to as that service’s
// “schema”. A schema is defined in terms of the types it supports as well as the root operation
// types for each kind of operation: query, mutation, and subscription; this determines the place in
// the type system where those operations begin.
//
// Definitions in schema are assumed to be immutable after creation.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	// query, mutation and subscription are root operation objects.
	query        *Object
	mutation     *Object
	subscription *Object

	// typeMap contains all named type defined in the schema.
	typeMap *TypeMap

	// implementations keeps track of all implementations by interface name.
	implementations map[string][]*Object
}

// NewSchema initializes a Schema from the given config.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	if config.Query == nil {
		return nil, NewError("Query root type must be provided.", ErrKindDefinition)
	}

	schema := &Schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
	}

	// Build type map now to detect any errors within this schema.
	typeMap := newTypeMap()

	// Add root operation types.
	for _, root := range []*Object{config.Query, config.Mutation, config.Subscription} {
		if root == nil {
			continue
		}
		if err := typeMap.add(root); err != nil {
			return nil, err
		}
	}

	// Visit all enumerated types in config.
	for _, t := range config.Types {
		if err := typeMap.add(t); err != nil {
			return nil, err
		}
	}

	// Add built-in types.
	for _, scalar := range StandardScalars() {
		if err := typeMap.add(scalar); err != nil {
			return nil, err
		}
	}

	// Storing the resulting map for reference by the schema.
	schema.typeMap = typeMap

	// Keep track of all implementations by interface name. Visiting in type map order keeps the
	// result deterministic.
	implementations := map[string][]*Object{}
	for _, name := range typeMap.names {
		// Find all Object types.
		if t, ok := typeMap.types[name].(*Object); ok {
			// Create a reverse link from the Interface to the Objects that implement it.
			for _, iface := range t.Interfaces() {
				implementations[iface.Name()] = append(implementations[iface.Name()], t)
			}
		}
	}
	schema.implementations = implementations

	return schema, nil
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() *TypeMap {
	return schema.typeMap
}

// Lookup finds a named type in the schema.
func (schema *Schema) Lookup(name string) NamedType {
	return schema.typeMap.Lookup(name)
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// PossibleTypes returns concrete types for an abstract type in the schema. For Interface, this is
// the list of Object type that implement it. For Union, this is the list of its member types.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		return schema.implementations[t.Name()]
	default:
		return nil
	}
}

// IsPossibleType returns true if the Object is one of the possible types of the abstract type.
func (schema *Schema) IsPossibleType(abstractType AbstractType, possibleType *Object) bool {
	for _, t := range schema.PossibleTypes(abstractType) {
		if t == possibleType {
			return true
		}
	}
	return false
}
