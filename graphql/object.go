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
	"context"
	"fmt"
)

// IsTypeOfPredicate determines whether a value belongs to an Object type. It is consulted when
// resolving the concrete type of an abstract type without a TypeResolver.
type IsTypeOfPredicate interface {
	IsTypeOf(ctx context.Context, value interface{}) (bool, error)
}

// IsTypeOfPredicateFunc is an adapter to allow the use of ordinary functions as IsTypeOfPredicate.
type IsTypeOfPredicateFunc func(ctx context.Context, value interface{}) (bool, error)

// IsTypeOf calls f(ctx, value).
func (f IsTypeOfPredicateFunc) IsTypeOf(ctx context.Context, value interface{}) (bool, error) {
	return f(ctx, value)
}

// IsTypeOfPredicateFunc implements IsTypeOfPredicate.
var _ IsTypeOfPredicate = IsTypeOfPredicateFunc(nil)

// fieldList keeps fields in declaration order with an index for lookup by name.
type fieldList struct {
	fields []*Field
	index  map[string]int
}

func newFieldList(typeName string, fields []*Field) (fieldList, error) {
	list := fieldList{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		if _, exists := list.index[field.Name()]; exists {
			return fieldList{}, NewError(
				fmt.Sprintf(`%s.%s can only be defined once.`, typeName, field.Name()),
				ErrKindDefinition)
		}
		list.index[field.Name()] = i
	}
	return list, nil
}

func (list *fieldList) lookup(name string) *Field {
	if i, exists := list.index[name]; exists {
		return list.fields[i]
	}
	return nil
}

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces implemented by the defining Object. They are finalized before the Object.
	Interfaces []*Interface

	// Fields in the Object in declaration order
	Fields []*Field

	// IsTypeOf is optional and reports whether a value belongs to this Object.
	IsTypeOf IsTypeOfPredicate

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// Object Type Definition
//
// Almost all of the GraphQL types you define will be object types. Object types have a name, but
// most importantly describe their fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	config ObjectConfig
	fields fieldList
}

var _ NamedType = (*Object)(nil)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config *ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindDefinition)
	}
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	for _, iface := range config.Interfaces {
		if iface == nil {
			return nil, NewError(
				fmt.Sprintf("%s must provide non-nil interfaces.", config.Name), ErrKindDefinition)
		}
	}

	fields, err := newFieldList(config.Name, config.Fields)
	if err != nil {
		return nil, err
	}

	return &Object{
		config: *config,
		fields: fields,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.config.Description
}

// Kind implements NamedType.
func (*Object) Kind() TypeKind {
	return TypeKindObject
}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return o.Name()
}

// Fields in the Object in declaration order
func (o *Object) Fields() []*Field {
	return o.fields.fields
}

// Field finds the field with the given name. It returns nil if not found.
func (o *Object) Field(name string) *Field {
	return o.fields.lookup(name)
}

// Interfaces includes interfaces that implemented by the Object type.
func (o *Object) Interfaces() []*Interface {
	return o.config.Interfaces
}

// Implements returns true if the Object implements the interface with the given name.
func (o *Object) Implements(name string) bool {
	for _, iface := range o.config.Interfaces {
		if iface.Name() == name {
			return true
		}
	}
	return false
}

// IsTypeOf returns the predicate for determining whether a value belongs to this Object.
func (o *Object) IsTypeOf() IsTypeOfPredicate {
	return o.config.IsTypeOf
}

// Extensions returns data attached by plugins.
func (o *Object) Extensions() map[string]interface{} {
	return o.config.Extensions
}
