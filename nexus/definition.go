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

// TypeRef refers to a named type from a field, an argument, a union member or a composition. It is
// either a TypeName or a handle returned by one of the type definition functions (ObjectType,
// EnumType, etc.). Referencing a handle registers its definition on first encounter.
type TypeRef interface {
	refName() string
}

// TypeName references a type by its name.
type TypeName string

// refName implements TypeRef.
func (name TypeName) refName() string {
	return string(name)
}

// Definition is a value that can be registered in a Registry. It is either a declaration of a named
// type or an extension to one.
type Definition interface {
	// Name of the type being declared or extended
	Name() string

	// definition puts a special mark for a Definition.
	definition()
}

// namedDefinition declares a named type.
type namedDefinition interface {
	Definition
	TypeRef
	Kind() graphql.TypeKind
}

// ObjectConfig provides specification to declare an Object type.
type ObjectConfig struct {
	// Name of the declaring Object
	Name string

	// Description for the Object type
	Description string

	// Definition records members of the Object in declaration order.
	Definition func(t *OutputDefinitionBlock)

	// IsTypeOf is an optional predicate to determine whether a value is of this type at runtime.
	IsTypeOf graphql.IsTypeOfPredicate

	// NonNullDefaults overrides the schema defaults for fields and arguments of this type.
	NonNullDefaults *NonNullConfig

	// Extensions carries data for plugins. It is copied into the built type as is.
	Extensions map[string]interface{}
}

// ObjectTypeDef is a pending declaration of an Object type.
type ObjectTypeDef struct {
	config ObjectConfig
}

// ObjectType declares an Object type.
func ObjectType(config *ObjectConfig) *ObjectTypeDef {
	return &ObjectTypeDef{*config}
}

// Name implements Definition.
func (def *ObjectTypeDef) Name() string {
	return def.config.Name
}

// Kind returns graphql.TypeKindObject.
func (def *ObjectTypeDef) Kind() graphql.TypeKind {
	return graphql.TypeKindObject
}

func (*ObjectTypeDef) definition() {}
func (def *ObjectTypeDef) refName() string { return def.config.Name }

// InterfaceConfig provides specification to declare an Interface type.
type InterfaceConfig struct {
	// Name of the declaring Interface
	Name string

	// Description for the Interface type
	Description string

	// Definition records members of the Interface in declaration order. Interfaces may implement
	// other interfaces.
	Definition func(t *OutputDefinitionBlock)

	// ResolveType determines the name of the concrete Object type of a value.
	ResolveType graphql.TypeResolver

	// NonNullDefaults overrides the schema defaults for fields and arguments of this type.
	NonNullDefaults *NonNullConfig

	// Extensions carries data for plugins. It is copied into the built type as is.
	Extensions map[string]interface{}
}

// InterfaceTypeDef is a pending declaration of an Interface type.
type InterfaceTypeDef struct {
	config InterfaceConfig
}

// InterfaceType declares an Interface type.
func InterfaceType(config *InterfaceConfig) *InterfaceTypeDef {
	return &InterfaceTypeDef{*config}
}

// Name implements Definition.
func (def *InterfaceTypeDef) Name() string {
	return def.config.Name
}

// Kind returns graphql.TypeKindInterface.
func (def *InterfaceTypeDef) Kind() graphql.TypeKind {
	return graphql.TypeKindInterface
}

func (*InterfaceTypeDef) definition() {}
func (def *InterfaceTypeDef) refName() string { return def.config.Name }

// InputObjectConfig provides specification to declare an InputObject type.
type InputObjectConfig struct {
	// Name of the declaring InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Definition records fields of the InputObject in declaration order.
	Definition func(t *InputDefinitionBlock)

	// NonNullDefaults overrides the schema defaults for fields of this type. Only Input applies.
	NonNullDefaults *NonNullConfig

	// Extensions carries data for plugins. It is copied into the built type as is.
	Extensions map[string]interface{}
}

// InputObjectTypeDef is a pending declaration of an InputObject type.
type InputObjectTypeDef struct {
	config InputObjectConfig
}

// InputObjectType declares an InputObject type.
func InputObjectType(config *InputObjectConfig) *InputObjectTypeDef {
	return &InputObjectTypeDef{*config}
}

// Name implements Definition.
func (def *InputObjectTypeDef) Name() string {
	return def.config.Name
}

// Kind returns graphql.TypeKindInputObject.
func (def *InputObjectTypeDef) Kind() graphql.TypeKind {
	return graphql.TypeKindInputObject
}

func (*InputObjectTypeDef) definition() {}
func (def *InputObjectTypeDef) refName() string { return def.config.Name }

// UnionConfig provides specification to declare a Union type.
type UnionConfig struct {
	// Name of the declaring Union
	Name string

	// Description for the Union type
	Description string

	// Definition records the member types in declaration order.
	Definition func(t *UnionDefinitionBlock)

	// ResolveType determines the name of the concrete Object type of a value.
	ResolveType graphql.TypeResolver

	// Extensions carries data for plugins. It is copied into the built type as is.
	Extensions map[string]interface{}
}

// UnionTypeDef is a pending declaration of a Union type.
type UnionTypeDef struct {
	config UnionConfig
}

// UnionType declares a Union type.
func UnionType(config *UnionConfig) *UnionTypeDef {
	return &UnionTypeDef{*config}
}

// Name implements Definition.
func (def *UnionTypeDef) Name() string {
	return def.config.Name
}

// Kind returns graphql.TypeKindUnion.
func (def *UnionTypeDef) Kind() graphql.TypeKind {
	return graphql.TypeKindUnion
}

func (*UnionTypeDef) definition() {}
func (def *UnionTypeDef) refName() string { return def.config.Name }

// EnumConfig provides specification to declare an Enum type.
type EnumConfig struct {
	// Name of the declaring Enum
	Name string

	// Description for the Enum type
	Description string

	// Members is a shorthand for values whose internal value is their name. They precede the values
	// recorded by Definition.
	Members []string

	// Definition records values in declaration order.
	Definition func(t *EnumDefinitionBlock)

	// Extensions carries data for plugins. It is copied into the built type as is.
	Extensions map[string]interface{}
}

// EnumTypeDef is a pending declaration of an Enum type.
type EnumTypeDef struct {
	config EnumConfig
}

// EnumType declares an Enum type.
func EnumType(config *EnumConfig) *EnumTypeDef {
	return &EnumTypeDef{*config}
}

// Name implements Definition.
func (def *EnumTypeDef) Name() string {
	return def.config.Name
}

// Kind returns graphql.TypeKindEnum.
func (def *EnumTypeDef) Kind() graphql.TypeKind {
	return graphql.TypeKindEnum
}

func (*EnumTypeDef) definition() {}
func (def *EnumTypeDef) refName() string { return def.config.Name }

// ScalarConfig provides specification to declare a Scalar type.
type ScalarConfig struct {
	// Name of the declaring Scalar
	Name string

	// Description for the Scalar type
	Description string

	// Serialize coerces an internal value into a value to be included in the response.
	Serialize graphql.ScalarCoerceFunc

	// ParseValue coerces an input value into its internal representation.
	ParseValue graphql.ScalarCoerceFunc

	// Extensions carries data for plugins. It is copied into the built type as is.
	Extensions map[string]interface{}
}

// ScalarTypeDef is a pending declaration of a Scalar type.
type ScalarTypeDef struct {
	config ScalarConfig
}

// ScalarType declares a Scalar type.
func ScalarType(config *ScalarConfig) *ScalarTypeDef {
	return &ScalarTypeDef{*config}
}

// Name implements Definition.
func (def *ScalarTypeDef) Name() string {
	return def.config.Name
}

// Kind returns graphql.TypeKindScalar.
func (def *ScalarTypeDef) Kind() graphql.TypeKind {
	return graphql.TypeKindScalar
}

func (*ScalarTypeDef) definition() {}
func (def *ScalarTypeDef) refName() string { return def.config.Name }

// FromTypeDef puts a type that has been created already into a registry.
type FromTypeDef struct {
	t graphql.NamedType
}

// FromType wraps a finalized type so it can be registered and referenced like a declared one.
func FromType(t graphql.NamedType) *FromTypeDef {
	return &FromTypeDef{t}
}

// Name implements Definition.
func (def *FromTypeDef) Name() string {
	return def.t.Name()
}

// Kind returns the kind of the wrapped type.
func (def *FromTypeDef) Kind() graphql.TypeKind {
	return def.t.Kind()
}

// Type returns the wrapped type.
func (def *FromTypeDef) Type() graphql.NamedType {
	return def.t
}

func (*FromTypeDef) definition() {}
func (def *FromTypeDef) refName() string { return def.t.Name() }

// ExtendTypeConfig provides specification to add members to an Object or an Interface declared
// elsewhere.
type ExtendTypeConfig struct {
	// Type is the name of the Object or the Interface to extend. An Object is created when the
	// type is never declared.
	Type string

	// Definition records the additional members. They follow the members of the declaration.
	Definition func(t *OutputDefinitionBlock)
}

// ExtendTypeDef is a pending extension to an Object or an Interface.
type ExtendTypeDef struct {
	config ExtendTypeConfig
}

// ExtendType declares an extension to an Object or an Interface.
func ExtendType(config *ExtendTypeConfig) *ExtendTypeDef {
	return &ExtendTypeDef{*config}
}

// Name implements Definition. It returns the name of the extended type.
func (def *ExtendTypeDef) Name() string {
	return def.config.Type
}

func (*ExtendTypeDef) definition() {}

// ExtendInputTypeConfig provides specification to add fields to an InputObject declared elsewhere.
type ExtendInputTypeConfig struct {
	// Type is the name of the InputObject to extend. An InputObject is created when the type is
	// never declared.
	Type string

	// Definition records the additional fields.
	Definition func(t *InputDefinitionBlock)
}

// ExtendInputTypeDef is a pending extension to an InputObject.
type ExtendInputTypeDef struct {
	config ExtendInputTypeConfig
}

// ExtendInputType declares an extension to an InputObject.
func ExtendInputType(config *ExtendInputTypeConfig) *ExtendInputTypeDef {
	return &ExtendInputTypeDef{*config}
}

// Name implements Definition. It returns the name of the extended type.
func (def *ExtendInputTypeDef) Name() string {
	return def.config.Type
}

func (*ExtendInputTypeDef) definition() {}

// QueryField adds a field to the Query root type.
func QueryField(name string, config FieldConfig) *ExtendTypeDef {
	return rootField("Query", name, config)
}

// MutationField adds a field to the Mutation root type.
func MutationField(name string, config FieldConfig) *ExtendTypeDef {
	return rootField("Mutation", name, config)
}

func rootField(typeName string, name string, config FieldConfig) *ExtendTypeDef {
	return ExtendType(&ExtendTypeConfig{
		Type: typeName,
		Definition: func(t *OutputDefinitionBlock) {
			t.Field(name, config)
		},
	})
}

// Definition implementations
var (
	_ namedDefinition = (*ObjectTypeDef)(nil)
	_ namedDefinition = (*InterfaceTypeDef)(nil)
	_ namedDefinition = (*InputObjectTypeDef)(nil)
	_ namedDefinition = (*UnionTypeDef)(nil)
	_ namedDefinition = (*EnumTypeDef)(nil)
	_ namedDefinition = (*ScalarTypeDef)(nil)
	_ namedDefinition = (*FromTypeDef)(nil)
	_ Definition      = (*ExtendTypeDef)(nil)
	_ Definition      = (*ExtendInputTypeDef)(nil)
)
