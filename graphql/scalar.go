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

// ScalarCoerceFunc converts a value between its internal and its serialized representation.
type ScalarCoerceFunc func(value interface{}) (interface{}, error)

// ScalarConfig provides specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string

	// Serialize coerces an internal value into a value to be included in the response. Values are
	// passed through unchanged when it is nil.
	Serialize ScalarCoerceFunc

	// ParseValue coerces an input value into its internal representation. Values are passed through
	// unchanged when it is nil.
	ParseValue ScalarCoerceFunc

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse input and to ensure validity.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	config ScalarConfig
}

var (
	_ Type     = (*Scalar)(nil)
	_ LeafType = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindDefinition)
	}
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	return &Scalar{
		config: *config,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.config.Name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.config.Description
}

// Kind implements NamedType.
func (*Scalar) Kind() TypeKind {
	return TypeKindScalar
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return s.Name()
}

// Extensions returns data attached by plugins.
func (s *Scalar) Extensions() map[string]interface{} {
	return s.config.Extensions
}

// CoerceResultValue serializes an internal value with the configured Serialize function.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	if s.config.Serialize == nil {
		return value, nil
	}
	return s.config.Serialize(value)
}

// CoerceInputValue parses an input value with the configured ParseValue function.
func (s *Scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	if s.config.ParseValue == nil {
		return value, nil
	}
	return s.config.ParseValue(value)
}
