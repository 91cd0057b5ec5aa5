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

// memberSet keeps members by name in the order they were first put. Putting a member whose name
// exists replaces the value but keeps its position.
type memberSet[T any] struct {
	names  []string
	values map[string]T
}

func newMemberSet[T any]() *memberSet[T] {
	return &memberSet[T]{
		values: map[string]T{},
	}
}

func (set *memberSet[T]) put(name string, value T) {
	if _, exists := set.values[name]; !exists {
		set.names = append(set.names, name)
	}
	set.values[name] = value
}

func (set *memberSet[T]) get(name string) (T, bool) {
	value, exists := set.values[name]
	return value, exists
}

func (set *memberSet[T]) len() int {
	return len(set.names)
}

func (set *memberSet[T]) ordered() []T {
	result := make([]T, len(set.names))
	for i, name := range set.names {
		result[i] = set.values[name]
	}
	return result
}

// filterMembers keeps the members included by options in their original order.
func filterMembers[T any](members []T, nameOf func(T) string, options *MixOptions) []T {
	result := make([]T, 0, len(members))
	for _, member := range members {
		if options.includes(nameOf(member)) {
			result = append(result, member)
		}
	}
	return result
}

// resolveComposition resolves the source of a composition eagerly.
func (r *Registry) resolveComposition(
	session *buildSession,
	owner string,
	c *composition) (graphql.NamedType, error) {

	const op graphql.Op = "nexus.Registry.resolveComposition"

	if c.source == nil {
		return nil, newDefinitionError(op, `Type "%s" must compose a non-nil type.`, owner)
	}
	if def, ok := c.source.(namedDefinition); ok {
		if err := r.add(op, def); err != nil {
			return nil, err
		}
	}

	source := c.source.refName()
	r.logger.V(1).Info("composing type", "owner", owner, "source", source, "via", c.via.String())
	return r.resolveEager(session, source, c.via)
}

// composeFields returns the fields copied from the source of the composition. For Implements, the
// implemented interface is returned as well.
func (r *Registry) composeFields(
	session *buildSession,
	owner string,
	c *composition) ([]*graphql.Field, *graphql.Interface, error) {

	const op graphql.Op = "nexus.Registry.composeFields"

	t, err := r.resolveComposition(session, owner, c)
	if err != nil {
		return nil, nil, err
	}

	var iface *graphql.Interface
	if c.via == CompositionImplements {
		var ok bool
		if iface, ok = t.(*graphql.Interface); !ok {
			return nil, nil, newDefinitionError(op,
				`Type "%s" cannot implement "%s" which is %s rather than INTERFACE.`, owner, t.Name(), t.Kind())
		}
	}

	var fields []*graphql.Field
	switch t := t.(type) {
	case *graphql.Interface:
		fields = t.Fields()
	case *graphql.Object:
		fields = t.Fields()
	default:
		return nil, nil, newDefinitionError(op,
			`Type "%s" cannot mix in %s "%s" which has no fields.`, owner, t.Kind(), t.Name())
	}

	return filterMembers(fields, (*graphql.Field).Name, &c.options), iface, nil
}

// composeInputFields returns the fields copied from another InputObject.
func (r *Registry) composeInputFields(
	session *buildSession,
	owner string,
	c *composition) ([]*graphql.InputField, error) {

	const op graphql.Op = "nexus.Registry.composeInputFields"

	t, err := r.resolveComposition(session, owner, c)
	if err != nil {
		return nil, err
	}

	inputObject, ok := t.(*graphql.InputObject)
	if !ok {
		return nil, newDefinitionError(op,
			`InputObject "%s" can only mix in INPUT_OBJECT but "%s" is %s.`, owner, t.Name(), t.Kind())
	}
	return filterMembers(inputObject.Fields(), (*graphql.InputField).Name, &c.options), nil
}

// composeEnumValues returns the values copied from another Enum.
func (r *Registry) composeEnumValues(
	session *buildSession,
	owner string,
	c *composition) ([]*graphql.EnumValue, error) {

	const op graphql.Op = "nexus.Registry.composeEnumValues"

	t, err := r.resolveComposition(session, owner, c)
	if err != nil {
		return nil, err
	}

	enum, ok := t.(*graphql.Enum)
	if !ok {
		return nil, newDefinitionError(op,
			`Enum "%s" can only mix in ENUM but "%s" is %s.`, owner, t.Name(), t.Kind())
	}
	return filterMembers(enum.Values(), (*graphql.EnumValue).Name, &c.options), nil
}

// composeUnionMembers returns the member references copied from another Union.
func (r *Registry) composeUnionMembers(
	session *buildSession,
	owner string,
	c *composition) ([]*graphql.LazyType, error) {

	const op graphql.Op = "nexus.Registry.composeUnionMembers"

	t, err := r.resolveComposition(session, owner, c)
	if err != nil {
		return nil, err
	}

	union, ok := t.(*graphql.Union)
	if !ok {
		return nil, newDefinitionError(op,
			`Union "%s" can only mix in UNION but "%s" is %s.`, owner, t.Name(), t.Kind())
	}
	return filterMembers(union.Members(), (*graphql.LazyType).Name, &c.options), nil
}

// modifyField applies a sparse modification onto an inherited field.
func (r *Registry) modifyField(
	typeName string,
	config graphql.FieldConfig,
	mod *FieldModification,
	typeDefaults *NonNullConfig) (graphql.FieldConfig, error) {

	from := typeName + "." + config.Name

	if len(mod.Description) > 0 {
		config.Description = mod.Description
	}

	if mod.Type != nil {
		namedType, err := r.deferLookup(mod.Type, from)
		if err != nil {
			return config, err
		}
		config.Type = namedType
	}

	wrapping, err := r.modifyWrapping(from, config.Wrapping, mod, typeDefaults)
	if err != nil {
		return config, err
	}
	config.Wrapping = wrapping

	if len(mod.Args) > 0 {
		args, err := r.newArguments(from, mod.Args, typeDefaults)
		if err != nil {
			return config, err
		}
		merged := newMemberSet[graphql.ArgumentConfig]()
		for _, arg := range config.Args {
			merged.put(arg.Name, arg)
		}
		for _, arg := range args {
			merged.put(arg.Name, arg)
		}
		config.Args = merged.ordered()
	}

	if mod.Extensions != nil {
		extensions := copyExtensions(config.Extensions)
		if extensions == nil {
			extensions = map[string]interface{}{}
		}
		for k, v := range mod.Extensions {
			extensions[k] = v
		}
		config.Extensions = extensions
	}

	if len(mod.Property) > 0 {
		config.Property = mod.Property
	}

	if mod.Resolve != nil {
		config.DeclaredResolver = mod.Resolve
		config.HasResolver = true
	}

	return config, nil
}

// modifyWrapping applies the nullability options of a modification onto the inherited wrapping.
// Options not given keep the inherited modifiers. A new list nesting takes the null-ness of the
// inherited value and of its innermost items unless they are given as well.
func (r *Registry) modifyWrapping(
	from string,
	inherited graphql.Wrapping,
	mod *FieldModification,
	typeDefaults *NonNullConfig) (graphql.Wrapping, error) {

	const op graphql.Op = "nexus.Registry.modifyWrapping"

	depth := len(inherited.ListItemsNonNull)

	if mod.List != nil {
		nullability := FieldNullability{
			Nullable:         mod.Nullable,
			List:             mod.List,
			ListItemNullable: mod.ListItemNullable,
		}
		if nullability.Nullable == nil {
			nullability.Nullable = Bool(!inherited.NonNull)
		}
		if nullability.ListItemNullable == nil && depth > 0 {
			nullability.ListItemNullable = Bool(!inherited.ListItemsNonNull[depth-1])
		}
		return r.policy.Wrap(nullability, typeDefaults, false), nil
	}

	wrapping := graphql.Wrapping{
		NonNull:          inherited.NonNull,
		ListItemsNonNull: append([]bool(nil), inherited.ListItemsNonNull...),
	}
	if mod.Nullable != nil {
		wrapping.NonNull = !*mod.Nullable
	}
	if mod.ListItemNullable != nil {
		if depth == 0 {
			return inherited, newDefinitionError(op,
				`Cannot modify nullability of list items of "%s" which is not a list.`, from)
		}
		wrapping.ListItemsNonNull[depth-1] = !*mod.ListItemNullable
	}
	return wrapping, nil
}
