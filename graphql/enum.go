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

// An intentionally internal type for marking a "null" as internal value of an enum value
type enumNilValueType int

// NilEnumInternalValue is given to the Value of EnumValueConfig to make the internal value "nil".
// Leaving Value unset makes the internal value the name of the enum value.
const NilEnumInternalValue enumNilValueType = 0

// EnumValueConfig provides definition to a value in an Enum.
type EnumValueConfig struct {
	// Name of the value
	Name string

	// Description of the value
	Description string

	// Value is the internal value of the enum value. The name is used when it is nil.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values in the Enum in declaration order
	Values []EnumValueConfig

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// EnumValue provides definition for a value in enum.
type EnumValue struct {
	config EnumValueConfig
}

// Name of the value
func (value *EnumValue) Name() string {
	return value.config.Name
}

// Description of the value
func (value *EnumValue) Description() string {
	return value.config.Description
}

// Value returns the internal value.
func (value *EnumValue) Value() interface{} {
	return value.config.Value
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.config.Deprecation
}

// Config returns the config of the value. A nil internal value is reported as
// NilEnumInternalValue so the config can be given to NewEnum again.
func (value *EnumValue) Config() EnumValueConfig {
	config := value.config
	if config.Value == nil {
		config.Value = NilEnumInternalValue
	}
	return config
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	config  EnumConfig
	values  []*EnumValue
	nameMap map[string]*EnumValue
}

var (
	_ Type     = (*Enum)(nil)
	_ LeafType = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.", ErrKindDefinition)
	}
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	if len(config.Values) == 0 {
		return nil, NewError(
			fmt.Sprintf("Enum type %s must define one or more values.", config.Name),
			ErrKindDefinition)
	}

	values := make([]*EnumValue, len(config.Values))
	nameMap := make(map[string]*EnumValue, len(config.Values))
	for i, valueConfig := range config.Values {
		if err := AssertValidName(valueConfig.Name); err != nil {
			return nil, err
		}
		switch valueConfig.Name {
		case "true", "false", "null":
			return nil, NewError(
				fmt.Sprintf("Enum type %s cannot include value: %s.", config.Name, valueConfig.Name),
				ErrKindDefinition)
		}
		if _, exists := nameMap[valueConfig.Name]; exists {
			return nil, NewError(
				fmt.Sprintf("Enum type %s can include value %s only once.", config.Name, valueConfig.Name),
				ErrKindDefinition)
		}

		if valueConfig.Value == nil {
			valueConfig.Value = valueConfig.Name
		} else if _, ok := valueConfig.Value.(enumNilValueType); ok {
			// When NilEnumInternalValue is specified, initialize internal value to nil.
			valueConfig.Value = nil
		}

		value := &EnumValue{valueConfig}
		values[i] = value
		nameMap[valueConfig.Name] = value
	}

	return &Enum{
		config:  *config,
		values:  values,
		nameMap: nameMap,
	}, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.config.Name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.config.Description
}

// Kind implements NamedType.
func (*Enum) Kind() TypeKind {
	return TypeKindEnum
}

// String implements fmt.Stringer.
func (e *Enum) String() string {
	return e.Name()
}

// Values return all enum values defined in this Enum type in declaration order.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the enum value with the given name. It returns nil if not found.
func (e *Enum) Value(name string) *EnumValue {
	return e.nameMap[name]
}

// Extensions returns data attached by plugins.
func (e *Enum) Extensions() map[string]interface{} {
	return e.config.Extensions
}

// CoerceResultValue finds the enum value whose internal value matches the given one and returns
// its name.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	for _, enumValue := range e.values {
		if valuesEqual(enumValue.Value(), value) {
			return enumValue.Name(), nil
		}
	}
	return nil, NewError(
		fmt.Sprintf("Enum %s cannot represent %v: no enum value matches the value", e.Name(), value),
		ErrKindCoercion)
}

func valuesEqual(a, b interface{}) bool {
	// Unhashable internal values such as slices are compared structurally.
	return reflect.DeepEqual(a, b)
}
