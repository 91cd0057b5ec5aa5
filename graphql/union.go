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
	"sync"
)

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes are deferred references to the member Object types.
	PossibleTypes []*LazyType

	// TypeResolver is optional and determines the concrete Object type of a value.
	TypeResolver TypeResolver

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually used
// when the field is resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	config UnionConfig

	once          sync.Once
	possibleTypes []*Object
	err           error
}

var _ AbstractType = (*Union)(nil)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.", ErrKindDefinition)
	}
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	if len(config.PossibleTypes) == 0 {
		return nil, NewError(
			fmt.Sprintf("Union type %s must define one or more member types.", config.Name),
			ErrKindDefinition)
	}

	seen := make(map[string]bool, len(config.PossibleTypes))
	for _, member := range config.PossibleTypes {
		if member == nil {
			return nil, NewError(
				fmt.Sprintf("Union type %s must provide non-nil member types.", config.Name),
				ErrKindDefinition)
		}
		if seen[member.Name()] {
			return nil, NewError(
				fmt.Sprintf("Union type %s can only include type %s once.", config.Name, member.Name()),
				ErrKindDefinition)
		}
		seen[member.Name()] = true
	}

	return &Union{
		config: *config,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config *UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.config.Name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.config.Description
}

// Kind implements NamedType.
func (*Union) Kind() TypeKind {
	return TypeKindUnion
}

// String implements fmt.Stringer.
func (u *Union) String() string {
	return u.Name()
}

// MemberNames returns the names of the member types in declaration order. It doesn't resolve any
// reference.
func (u *Union) MemberNames() []string {
	names := make([]string, len(u.config.PossibleTypes))
	for i, member := range u.config.PossibleTypes {
		names[i] = member.Name()
	}
	return names
}

// Members returns the deferred references to the member types in declaration order.
func (u *Union) Members() []*LazyType {
	return u.config.PossibleTypes
}

// ResolvePossibleTypes resolves the member references. Every member must be an Object.
func (u *Union) ResolvePossibleTypes() ([]*Object, error) {
	u.once.Do(func() {
		possibleTypes := make([]*Object, 0, len(u.config.PossibleTypes))
		for _, member := range u.config.PossibleTypes {
			t, err := member.Resolve()
			if err != nil {
				u.err = err
				return
			}
			object, ok := t.(*Object)
			if !ok {
				u.err = NewError(
					fmt.Sprintf("Union type %s can only include Object types, it cannot include %s.", u.Name(), t),
					ErrKindDefinition)
				return
			}
			possibleTypes = append(possibleTypes, object)
		}
		u.possibleTypes = possibleTypes
	})
	return u.possibleTypes, u.err
}

// PossibleTypes returns the member Object types. It returns nil if any member cannot be resolved.
func (u *Union) PossibleTypes() []*Object {
	possibleTypes, err := u.ResolvePossibleTypes()
	if err != nil {
		return nil
	}
	return possibleTypes
}

// TypeResolver implements AbstractType.
func (u *Union) TypeResolver() TypeResolver {
	return u.config.TypeResolver
}

// Extensions returns data attached by plugins.
func (u *Union) Extensions() map[string]interface{} {
	return u.config.Extensions
}
