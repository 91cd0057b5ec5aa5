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

package nexus

import (
	"github.com/graphql-nexus/nexus-sub000/graphql"
)

// FieldConfig specifies a field of an Object or an Interface.
type FieldConfig struct {
	// Type of the field. The typed shorthands on OutputDefinitionBlock (String, Int, etc.) set it.
	Type TypeRef

	// Description of the field
	Description string

	// Nullable overrides the defaults for the field value (or for the outermost list).
	Nullable *bool

	// List wraps the type in lists.
	List *ListSpec

	// ListItemNullable overrides the defaults for the items of a single list. When unset, the
	// items follow Nullable if it is given.
	ListItemNullable *bool

	// Args taken by the field in declaration order
	Args []ArgConfig

	// Resolve is the resolver of the field. When it is nil, the field reads Property (or its own
	// name) from the source value.
	Resolve graphql.FieldResolver

	// Property is the name of the property read by the default resolver.
	Property string

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *graphql.Deprecation

	// Extensions carries data for plugins. It is attached to the built field as is.
	Extensions map[string]interface{}
}

func (config *FieldConfig) nullability() FieldNullability {
	return FieldNullability{
		Nullable:         config.Nullable,
		List:             config.List,
		ListItemNullable: config.ListItemNullable,
	}
}

// ArgConfig specifies an argument of a field.
type ArgConfig struct {
	// Name of the argument
	Name string

	// Type of the argument
	Type TypeRef

	// Description of the argument
	Description string

	// Nullable overrides the defaults for the argument value (or for the outermost list).
	Nullable *bool

	// List wraps the type in lists.
	List *ListSpec

	// ListItemNullable overrides the defaults for the items of a single list.
	ListItemNullable *bool

	// Default is the value used when the argument is not provided. Use graphql.NilDefaultValue for
	// a null default.
	Default interface{}
}

func (config *ArgConfig) nullability() FieldNullability {
	return FieldNullability{
		Nullable:         config.Nullable,
		List:             config.List,
		ListItemNullable: config.ListItemNullable,
	}
}

// Arg creates an argument with the given name.
func Arg(name string, config ArgConfig) ArgConfig {
	config.Name = name
	return config
}

func typedArg(name string, t TypeRef, options []ArgConfig) ArgConfig {
	var config ArgConfig
	if len(options) > 0 {
		config = options[0]
	}
	config.Name = name
	config.Type = t
	return config
}

// StringArg creates an argument of type String.
func StringArg(name string, options ...ArgConfig) ArgConfig {
	return typedArg(name, TypeName("String"), options)
}

// IntArg creates an argument of type Int.
func IntArg(name string, options ...ArgConfig) ArgConfig {
	return typedArg(name, TypeName("Int"), options)
}

// FloatArg creates an argument of type Float.
func FloatArg(name string, options ...ArgConfig) ArgConfig {
	return typedArg(name, TypeName("Float"), options)
}

// BooleanArg creates an argument of type Boolean.
func BooleanArg(name string, options ...ArgConfig) ArgConfig {
	return typedArg(name, TypeName("Boolean"), options)
}

// IDArg creates an argument of type ID.
func IDArg(name string, options ...ArgConfig) ArgConfig {
	return typedArg(name, TypeName("ID"), options)
}

// InputFieldConfig specifies a field of an InputObject.
type InputFieldConfig struct {
	// Type of the field
	Type TypeRef

	// Description of the field
	Description string

	// Nullable overrides the defaults for the value (or for the outermost list).
	Nullable *bool

	// List wraps the type in lists.
	List *ListSpec

	// ListItemNullable overrides the defaults for the items of a single list.
	ListItemNullable *bool

	// Default is the value used when the field is not provided. Use graphql.NilDefaultValue for a
	// null default.
	Default interface{}

	// Extensions carries data for plugins. It is attached to the built field as is.
	Extensions map[string]interface{}
}

func (config *InputFieldConfig) nullability() FieldNullability {
	return FieldNullability{
		Nullable:         config.Nullable,
		List:             config.List,
		ListItemNullable: config.ListItemNullable,
	}
}

// MixOptions filters the members copied by a composition. A member is included when it is in Pick
// (if Pick is given) and it is not in Omit.
type MixOptions struct {
	Pick []string
	Omit []string
}

func (options *MixOptions) includes(name string) bool {
	if options.Pick != nil && !containsString(options.Pick, name) {
		return false
	}
	return !containsString(options.Omit, name)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// FieldModification is a sparse override to a field inherited from an interface. Unset options
// leave the inherited field untouched.
type FieldModification struct {
	// Description replaces the description when it is not empty.
	Description string

	// Type replaces the named type of the field. The list and non-null modifiers of the inherited
	// field are kept.
	Type TypeRef

	// Nullable overrides the null-ness of the value (or of the outermost list).
	Nullable *bool

	// List replaces the list nesting. Unless given as well, the outermost null-ness is inherited
	// and so is the null-ness of the innermost items when the inherited field is a list.
	List *ListSpec

	// ListItemNullable overrides the null-ness of the innermost list items. Without List, the
	// inherited field must be a list.
	ListItemNullable *bool

	// Resolve replaces the resolver.
	Resolve graphql.FieldResolver

	// Property replaces the property read by the default resolver.
	Property string

	// Args are added to the arguments of the field. An argument with the same name as an
	// inherited one replaces it.
	Args []ArgConfig

	// Extensions are merged into the extensions of the field.
	Extensions map[string]interface{}
}

// composition records a Mix or an Implements at its position in the member sequence.
type composition struct {
	source  TypeRef
	via     CompositionVia
	options MixOptions
}

// definitionBlock is the common part of the blocks. It records errors occurred when recording
// members. Only the first one is reported.
type definitionBlock struct {
	typeName string
	err      error
}

func (b *definitionBlock) fail(format string, args ...interface{}) {
	if b.err == nil {
		b.err = newDefinitionError("nexus.DefinitionBlock", format, args...)
	}
}

// TypeName returns the name of the type being defined.
func (b *definitionBlock) TypeName() string {
	return b.typeName
}

type outputMember struct {
	name    string
	field   *FieldConfig
	compose *composition
}

type modification struct {
	name string
	mod  FieldModification
}

// OutputDefinitionBlock records the members of an Object or an Interface in declaration order.
type OutputDefinitionBlock struct {
	definitionBlock
	members       []outputMember
	modifications []modification
}

func newOutputDefinitionBlock(typeName string) *OutputDefinitionBlock {
	return &OutputDefinitionBlock{
		definitionBlock: definitionBlock{typeName: typeName},
	}
}

// Field adds a field. A field declared later with the same name replaces the earlier one.
func (b *OutputDefinitionBlock) Field(name string, config FieldConfig) {
	if config.Type == nil {
		b.fail(`Field "%s.%s" must have a type.`, b.typeName, name)
		return
	}
	b.members = append(b.members, outputMember{
		name:  name,
		field: &config,
	})
}

func (b *OutputDefinitionBlock) typedField(name string, t TypeName, options []FieldConfig) {
	var config FieldConfig
	if len(options) > 0 {
		config = options[0]
	}
	config.Type = t
	b.Field(name, config)
}

// String adds a field of type String.
func (b *OutputDefinitionBlock) String(name string, options ...FieldConfig) {
	b.typedField(name, "String", options)
}

// Int adds a field of type Int.
func (b *OutputDefinitionBlock) Int(name string, options ...FieldConfig) {
	b.typedField(name, "Int", options)
}

// Float adds a field of type Float.
func (b *OutputDefinitionBlock) Float(name string, options ...FieldConfig) {
	b.typedField(name, "Float", options)
}

// Boolean adds a field of type Boolean.
func (b *OutputDefinitionBlock) Boolean(name string, options ...FieldConfig) {
	b.typedField(name, "Boolean", options)
}

// ID adds a field of type ID.
func (b *OutputDefinitionBlock) ID(name string, options ...FieldConfig) {
	b.typedField(name, "ID", options)
}

// Mix copies the fields of another Object or Interface, filtered by options, into this position.
func (b *OutputDefinitionBlock) Mix(source TypeRef, options ...MixOptions) {
	var opts MixOptions
	if len(options) > 0 {
		opts = options[0]
	}
	b.members = append(b.members, outputMember{
		compose: &composition{
			source:  source,
			via:     CompositionMix,
			options: opts,
		},
	})
}

// Implements declares the interfaces implemented by the type. The fields of each interface are
// copied into this position.
func (b *OutputDefinitionBlock) Implements(interfaces ...TypeRef) {
	for _, iface := range interfaces {
		b.members = append(b.members, outputMember{
			compose: &composition{
				source: iface,
				via:    CompositionImplements,
			},
		})
	}
}

// Modify overrides parts of a field inherited from an interface. Modifications are applied after
// all members are known.
func (b *OutputDefinitionBlock) Modify(name string, mod FieldModification) {
	b.modifications = append(b.modifications, modification{name, mod})
}

type inputMember struct {
	name    string
	field   *InputFieldConfig
	compose *composition
}

// InputDefinitionBlock records the fields of an InputObject in declaration order.
type InputDefinitionBlock struct {
	definitionBlock
	members []inputMember
}

func newInputDefinitionBlock(typeName string) *InputDefinitionBlock {
	return &InputDefinitionBlock{
		definitionBlock: definitionBlock{typeName: typeName},
	}
}

// Field adds a field. A field declared later with the same name replaces the earlier one.
func (b *InputDefinitionBlock) Field(name string, config InputFieldConfig) {
	if config.Type == nil {
		b.fail(`Field "%s.%s" must have a type.`, b.typeName, name)
		return
	}
	b.members = append(b.members, inputMember{
		name:  name,
		field: &config,
	})
}

func (b *InputDefinitionBlock) typedField(name string, t TypeName, options []InputFieldConfig) {
	var config InputFieldConfig
	if len(options) > 0 {
		config = options[0]
	}
	config.Type = t
	b.Field(name, config)
}

// String adds a field of type String.
func (b *InputDefinitionBlock) String(name string, options ...InputFieldConfig) {
	b.typedField(name, "String", options)
}

// Int adds a field of type Int.
func (b *InputDefinitionBlock) Int(name string, options ...InputFieldConfig) {
	b.typedField(name, "Int", options)
}

// Float adds a field of type Float.
func (b *InputDefinitionBlock) Float(name string, options ...InputFieldConfig) {
	b.typedField(name, "Float", options)
}

// Boolean adds a field of type Boolean.
func (b *InputDefinitionBlock) Boolean(name string, options ...InputFieldConfig) {
	b.typedField(name, "Boolean", options)
}

// ID adds a field of type ID.
func (b *InputDefinitionBlock) ID(name string, options ...InputFieldConfig) {
	b.typedField(name, "ID", options)
}

// Mix copies the fields of another InputObject, filtered by options, into this position.
func (b *InputDefinitionBlock) Mix(source TypeRef, options ...MixOptions) {
	var opts MixOptions
	if len(options) > 0 {
		opts = options[0]
	}
	b.members = append(b.members, inputMember{
		compose: &composition{source, CompositionMix, opts},
	})
}

// EnumValueConfig specifies a value of an Enum.
type EnumValueConfig struct {
	// Value is the internal value. The name of the value is used when it is nil. Use
	// graphql.NilEnumInternalValue for a nil internal value.
	Value interface{}

	// Description of the value
	Description string

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *graphql.Deprecation
}

type enumMember struct {
	name    string
	value   *EnumValueConfig
	compose *composition
}

// EnumDefinitionBlock records the values of an Enum in declaration order.
type EnumDefinitionBlock struct {
	definitionBlock
	members []enumMember
}

func newEnumDefinitionBlock(typeName string) *EnumDefinitionBlock {
	return &EnumDefinitionBlock{
		definitionBlock: definitionBlock{typeName: typeName},
	}
}

// Value adds a value.
func (b *EnumDefinitionBlock) Value(name string, options ...EnumValueConfig) {
	var config EnumValueConfig
	if len(options) > 0 {
		config = options[0]
	}
	b.members = append(b.members, enumMember{
		name:  name,
		value: &config,
	})
}

// Members adds values whose internal values are their names.
func (b *EnumDefinitionBlock) Members(names ...string) {
	for _, name := range names {
		b.Value(name)
	}
}

// Mix copies the values of another Enum, filtered by options, into this position.
func (b *EnumDefinitionBlock) Mix(source TypeRef, options ...MixOptions) {
	var opts MixOptions
	if len(options) > 0 {
		opts = options[0]
	}
	b.members = append(b.members, enumMember{
		compose: &composition{source, CompositionMix, opts},
	})
}

type unionMember struct {
	ref     TypeRef
	compose *composition
}

// UnionDefinitionBlock records the member types of a Union in declaration order.
type UnionDefinitionBlock struct {
	definitionBlock
	members []unionMember
}

func newUnionDefinitionBlock(typeName string) *UnionDefinitionBlock {
	return &UnionDefinitionBlock{
		definitionBlock: definitionBlock{typeName: typeName},
	}
}

// Members adds member types.
func (b *UnionDefinitionBlock) Members(refs ...TypeRef) {
	for _, ref := range refs {
		if ref == nil {
			b.fail(`Union "%s" must provide non-nil member types.`, b.typeName)
			return
		}
		b.members = append(b.members, unionMember{ref: ref})
	}
}

// Mix copies the member types of another Union, filtered by options, into this position.
func (b *UnionDefinitionBlock) Mix(source TypeRef, options ...MixOptions) {
	var opts MixOptions
	if len(options) > 0 {
		opts = options[0]
	}
	b.members = append(b.members, unionMember{
		compose: &composition{source, CompositionMix, opts},
	})
}
