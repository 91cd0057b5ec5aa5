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
)

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields in the InputObject in declaration order
	Fields []InputFieldConfig

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	config InputObjectConfig
	fields []*InputField
	index  map[string]int
}

var _ NamedType = (*InputObject)(nil)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.", ErrKindDefinition)
	}
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	fields := make([]*InputField, 0, len(config.Fields))
	index := make(map[string]int, len(config.Fields))
	for i := range config.Fields {
		fieldConfig := &config.Fields[i]
		if _, exists := index[fieldConfig.Name]; exists {
			return nil, NewError(
				fmt.Sprintf(`%s.%s can only be defined once.`, config.Name, fieldConfig.Name),
				ErrKindDefinition)
		}

		field, err := newInputField(fieldConfig)
		if err != nil {
			return nil, WrapErrorf(err, "Input object %s", config.Name)
		}
		index[fieldConfig.Name] = len(fields)
		fields = append(fields, field)
	}

	return &InputObject{
		config: *config,
		fields: fields,
		index:  index,
	}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.config.Description
}

// Kind implements NamedType.
func (*InputObject) Kind() TypeKind {
	return TypeKindInputObject
}

// String implements fmt.Stringer.
func (o *InputObject) String() string {
	return o.Name()
}

// Fields in the InputObject in declaration order
func (o *InputObject) Fields() []*InputField {
	return o.fields
}

// Field finds the field with the given name. It returns nil if not found.
func (o *InputObject) Field(name string) *InputField {
	if i, exists := o.index[name]; exists {
		return o.fields[i]
	}
	return nil
}

// Extensions returns data attached by plugins.
func (o *InputObject) Extensions() map[string]interface{} {
	return o.config.Extensions
}
