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
	"sync"
)

// FieldResolver resolves field value during execution.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type FieldResolver interface {
	// Context carries deadlines and cancelation signals.
	//
	// Source is the "source" value. It contains the value that has been resolved by field's enclosing
	// object.
	//
	// Args contains the coerced argument values keyed by argument name.
	Resolve(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error)

// Resolve calls f(ctx, source, args).
func (f FieldResolverFunc) Resolve(
	ctx context.Context,
	source interface{},
	args map[string]interface{}) (interface{}, error) {
	return f(ctx, source, args)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// typeRef combines a deferred named type with the modifiers applied to it. The wrapped type is
// computed once on first use.
type typeRef struct {
	named    *LazyType
	wrapping Wrapping

	once sync.Once
	t    Type
	err  error
}

func newTypeRef(named *LazyType, wrapping Wrapping) (*typeRef, error) {
	if named == nil {
		return nil, NewError("Must provide a type reference.", ErrKindDefinition)
	}
	// Copy so the caller cannot alter the wrapping afterwards.
	wrapping.ListItemsNonNull = append([]bool(nil), wrapping.ListItemsNonNull...)
	return &typeRef{
		named:    named,
		wrapping: wrapping,
	}, nil
}

func (ref *typeRef) resolve() (Type, error) {
	ref.once.Do(func() {
		named, err := ref.named.Resolve()
		if err != nil {
			ref.err = err
			return
		}
		ref.t, ref.err = ref.wrapping.Wrap(named)
	})
	return ref.t, ref.err
}

// FieldConfig provides definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the defining field
	Description string

	// Type is a deferred reference to the named type of the field.
	Type *LazyType

	// Wrapping specifies the list and non-null modifiers applied to Type.
	Wrapping Wrapping

	// Args are the arguments taken by the field in declaration order.
	Args []ArgumentConfig

	// Resolver for resolving field value during execution
	Resolver FieldResolver

	// HasResolver is true when Resolver was declared explicitly rather than derived.
	HasResolver bool

	// DeclaredResolver is the resolver as declared, before it is wrapped by middlewares. It is nil
	// when the resolver is derived from Property. Resolver of a field copied to another type is
	// rebuilt from it.
	DeclaredResolver FieldResolver

	// Property is the name of the property read from the source value by a derived resolver.
	Property string

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// Field representing a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field struct {
	config FieldConfig
	ref    *typeRef
	args   []*Argument
}

// NewField creates a Field from the given config.
func NewField(config *FieldConfig) (*Field, error) {
	if err := AssertValidName(config.Name); err != nil {
		return nil, err
	}

	ref, err := newTypeRef(config.Type, config.Wrapping)
	if err != nil {
		return nil, WrapErrorf(err, `Field "%s"`, config.Name)
	}

	var args []*Argument
	if len(config.Args) > 0 {
		args = make([]*Argument, 0, len(config.Args))
		seen := make(map[string]bool, len(config.Args))
		for i := range config.Args {
			argConfig := &config.Args[i]
			if seen[argConfig.Name] {
				return nil, NewError(
					fmt.Sprintf(`Field "%s" has duplicate argument "%s".`, config.Name, argConfig.Name),
					ErrKindDefinition)
			}
			seen[argConfig.Name] = true

			arg, err := newArgument(argConfig)
			if err != nil {
				return nil, WrapErrorf(err, `Field "%s"`, config.Name)
			}
			args = append(args, arg)
		}
	}

	return &Field{
		config: *config,
		ref:    ref,
		args:   args,
	}, nil
}

// MustNewField is a convenience function equivalent to NewField but panics on failure instead of
// returning an error.
func MustNewField(config *FieldConfig) *Field {
	f, err := NewField(config)
	if err != nil {
		panic(err)
	}
	return f
}

// Name of the field
func (f *Field) Name() string {
	return f.config.Name
}

// Description of the field
func (f *Field) Description() string {
	return f.config.Description
}

// Type of value yielded by the field. It returns nil if the referenced type cannot be resolved.
func (f *Field) Type() Type {
	t, err := f.ref.resolve()
	if err != nil {
		return nil
	}
	return t
}

// ResolveType returns the type of the field or the error occurred when resolving the reference.
func (f *Field) ResolveType() (Type, error) {
	return f.ref.resolve()
}

// NamedType returns the deferred reference to the named type underneath the wrapping.
func (f *Field) NamedType() *LazyType {
	return f.ref.named
}

// Wrapping returns the list and non-null modifiers of the field.
func (f *Field) Wrapping() Wrapping {
	return f.ref.wrapping
}

// Args specifies the definitions of arguments being taken when querying this field.
func (f *Field) Args() []*Argument {
	return f.args
}

// Arg finds the argument with the given name. It returns nil if not found.
func (f *Field) Arg(name string) *Argument {
	for _, arg := range f.args {
		if arg.Name() == name {
			return arg
		}
	}
	return nil
}

// Resolver determines the result value for the field from the value resolved by parent Object.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
func (f *Field) Resolver() FieldResolver {
	return f.config.Resolver
}

// HasResolver returns true if the resolver was declared explicitly.
func (f *Field) HasResolver() bool {
	return f.config.HasResolver
}

// Property returns the name of the property a derived resolver reads.
func (f *Field) Property() string {
	return f.config.Property
}

// Config returns a copy of the config the field was created from. The copy can be altered and
// given to NewField to derive a new field.
func (f *Field) Config() FieldConfig {
	config := f.config
	config.Wrapping = f.ref.wrapping
	config.Args = append([]ArgumentConfig(nil), f.config.Args...)
	return config
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// Extensions returns data attached by plugins.
func (f *Field) Extensions() map[string]interface{} {
	return f.config.Extensions
}

// An intentionally internal type for marking a "null" as default value for an input value
type inputValueNilValueType int

// NilDefaultValue is a value that has a special meaning when it is given to the DefaultValue of
// ArgumentConfig or InputFieldConfig. It sets the default value to "null". While setting
// DefaultValue to "nil" or not giving it a value means there's no default value. We need this trick
// because using only "nil" cannot tells whether it's an "undefined" or a "null" DefaultValue. The
// constant has an internal type, therefore there's no way to create one outside the package.
const NilDefaultValue inputValueNilValueType = 0

// inputValueConfig is shared by ArgumentConfig and InputFieldConfig.
type inputValueConfig struct {
	// Name of the input value
	Name string

	// Description of the input value
	Description string

	// Type is a deferred reference to the named type of the value.
	Type *LazyType

	// Wrapping specifies the list and non-null modifiers applied to Type.
	Wrapping Wrapping

	// DefaultValue specified the value to be assigned when no value is provided.
	DefaultValue interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions carries data attached by plugins. It is not interpreted by this package.
	Extensions map[string]interface{}
}

// inputValue is the common implementation of Argument and InputField.
type inputValue struct {
	config inputValueConfig
	ref    *typeRef
}

func (v *inputValue) init(config *inputValueConfig) error {
	if err := AssertValidName(config.Name); err != nil {
		return err
	}

	ref, err := newTypeRef(config.Type, config.Wrapping)
	if err != nil {
		return WrapErrorf(err, `Input value "%s"`, config.Name)
	}

	v.config = *config
	v.ref = ref
	return nil
}

// Name of the value
func (v *inputValue) Name() string {
	return v.config.Name
}

// Description of the value
func (v *inputValue) Description() string {
	return v.config.Description
}

// Type of the value. It returns nil if the referenced type cannot be resolved.
func (v *inputValue) Type() Type {
	t, err := v.ref.resolve()
	if err != nil {
		return nil
	}
	return t
}

// ResolveType returns the type of the value or the error occurred when resolving the reference.
func (v *inputValue) ResolveType() (Type, error) {
	return v.ref.resolve()
}

// NamedType returns the deferred reference to the named type underneath the wrapping.
func (v *inputValue) NamedType() *LazyType {
	return v.ref.named
}

// Wrapping returns the list and non-null modifiers of the value.
func (v *inputValue) Wrapping() Wrapping {
	return v.ref.wrapping
}

// HasDefaultValue returns true if a default value was given.
func (v *inputValue) HasDefaultValue() bool {
	return v.config.DefaultValue != nil
}

// DefaultValue specifies the value to be assigned when no value is provided.
func (v *inputValue) DefaultValue() interface{} {
	// Deal with NilDefaultValue specially.
	if _, ok := v.config.DefaultValue.(inputValueNilValueType); ok {
		// We have default value which is "null".
		return nil
	}
	return v.config.DefaultValue
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (v *inputValue) Deprecation() *Deprecation {
	return v.config.Deprecation
}

// Extensions returns data attached by plugins.
func (v *inputValue) Extensions() map[string]interface{} {
	return v.config.Extensions
}

// ArgumentConfig provides definition for defining an argument in a field.
type ArgumentConfig inputValueConfig

// Argument is accepted in querying a field to further specify the return value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	inputValue
}

// Config returns a copy of the config the argument was created from.
func (arg *Argument) Config() ArgumentConfig {
	config := ArgumentConfig(arg.config)
	config.Wrapping = arg.ref.wrapping
	return config
}

func newArgument(config *ArgumentConfig) (*Argument, error) {
	arg := &Argument{}
	if err := arg.init((*inputValueConfig)(config)); err != nil {
		return nil, err
	}
	return arg, nil
}

// InputFieldConfig provides definition for defining a field in an input object.
type InputFieldConfig inputValueConfig

// InputField is a field in an input object.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Objects
type InputField struct {
	inputValue
}

// Config returns a copy of the config the field was created from.
func (field *InputField) Config() InputFieldConfig {
	config := InputFieldConfig(field.config)
	config.Wrapping = field.ref.wrapping
	return config
}

func newInputField(config *InputFieldConfig) (*InputField, error) {
	field := &InputField{}
	if err := field.init((*inputValueConfig)(config)); err != nil {
		return nil, err
	}
	return field, nil
}

// IsRequiredArgument returns true if the argument is non-null and doesn't have a default value.
func IsRequiredArgument(arg *Argument) bool {
	return arg.Wrapping().NonNull && !arg.HasDefaultValue()
}
