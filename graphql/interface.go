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

// TypeResolver determines the name of the concrete Object type of a value resolved for an
// abstract type.
type TypeResolver interface {
	ResolveType(ctx context.Context, value interface{}) (string, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}) (string, error)

// ResolveType calls f(ctx, value).
func (f TypeResolverFunc) ResolveType(ctx context.Context, value interface{}) (string, error) {
	return f(ctx, value)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = TypeResolverFunc(nil)

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Interfaces implemented by the defining Interface.
	Interfaces []*Interface

	// Fields in the Interface in declaration order
	Fields []*Field

	// TypeResolver is optional and determines the concrete Object type of a value.
	TypeResolver TypeResolver

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, a Interface type is used to describe
// what types are possible, what fields are in common across all types, as well as a function to
// determine which type is actually used when the field is resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	config InterfaceConfig
	fields fieldList
}

var _ AbstractType = (*Interface)(nil)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindDefinition)
	}
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	for _, iface := range config.Interfaces {
		if iface == nil {
			return nil, NewError(
				fmt.Sprintf("%s must provide non-nil interfaces.", config.Name), ErrKindDefinition)
		} else if iface.Name() == config.Name {
			return nil, NewError(
				fmt.Sprintf("Interface %s cannot implement itself.", config.Name), ErrKindDefinition)
		}
	}

	fields, err := newFieldList(config.Name, config.Fields)
	if err != nil {
		return nil, err
	}

	return &Interface{
		config: *config,
		fields: fields,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) *Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.config.Name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.config.Description
}

// Kind implements NamedType.
func (*Interface) Kind() TypeKind {
	return TypeKindInterface
}

// String implements fmt.Stringer.
func (i *Interface) String() string {
	return i.Name()
}

// Fields in the Interface in declaration order
func (i *Interface) Fields() []*Field {
	return i.fields.fields
}

// Field finds the field with the given name. It returns nil if not found.
func (i *Interface) Field(name string) *Field {
	return i.fields.lookup(name)
}

// Interfaces includes interfaces that implemented by the Interface type.
func (i *Interface) Interfaces() []*Interface {
	return i.config.Interfaces
}

// TypeResolver implements AbstractType.
func (i *Interface) TypeResolver() TypeResolver {
	return i.config.TypeResolver
}

// Extensions returns data attached by plugins.
func (i *Interface) Extensions() map[string]interface{} {
	return i.config.Extensions
}
