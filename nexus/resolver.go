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
	"errors"
	"fmt"

	"github.com/graphql-nexus/nexus-sub000/graphql"
)

// buildSession tracks the types being resolved eagerly within one root call to resolveEager.
type buildSession struct {
	inProgress map[string]bool
	stack      []string
}

func newBuildSession() *buildSession {
	return &buildSession{
		inProgress: map[string]bool{},
	}
}

func (session *buildSession) enter(name string) {
	session.inProgress[name] = true
	session.stack = append(session.stack, name)
}

func (session *buildSession) leave(name string) {
	delete(session.inProgress, name)
	session.stack = session.stack[:len(session.stack)-1]
}

// current returns the type being built at the innermost level or an empty string.
func (session *buildSession) current() string {
	if len(session.stack) == 0 {
		return ""
	}
	return session.stack[len(session.stack)-1]
}

// cycle returns the path from name to the top of the stack and back to name.
func (session *buildSession) cycle(name string) []string {
	for i, n := range session.stack {
		if n == name {
			cycle := append([]string{}, session.stack[i:]...)
			return append(cycle, name)
		}
	}
	return []string{name, name}
}

// resolveEager returns the finalized type with the given name, building it now if it is pending.
// It is used by compositions only. Reaching a type that is being built in the same session is a
// CircularCompositionError.
func (r *Registry) resolveEager(
	session *buildSession,
	name string,
	via CompositionVia) (graphql.NamedType, error) {

	const op graphql.Op = "nexus.Registry.resolveEager"

	if t, exists := r.final[name]; exists {
		return t, nil
	}

	if session.inProgress[name] {
		return nil, newDiagnostic(op, &CircularCompositionError{
			Cycle: session.cycle(name),
			Via:   via,
		})
	}

	def, exists := r.pending[name]
	if !exists {
		return nil, newDiagnostic(op, missingType(name, session.current(), r.nameUniverse()))
	}

	r.logger.V(1).Info("building type", "name", name, "kind", def.Kind().String(), "depth", len(session.stack))

	session.enter(name)
	t, err := r.build(session, def)
	session.leave(name)
	if err != nil {
		return nil, err
	}

	delete(r.pending, name)
	r.final[name] = t
	return t, nil
}

// getOrBuildType is called by deferred lookups. The type is built in a new session if it is still
// pending. It returns a *MissingTypeError if the type is never declared.
func (r *Registry) getOrBuildType(name string, from string) (graphql.NamedType, error) {
	if t, exists := r.final[name]; exists {
		return t, nil
	}
	if _, exists := r.pending[name]; exists {
		return r.resolveEager(newBuildSession(), name, CompositionMix)
	}
	return nil, missingType(name, from, r.nameUniverse())
}

// deferLookup captures a plain type reference. The returned LazyType calls getOrBuildType when it
// is first resolved. from describes the referencing site for diagnostics.
func (r *Registry) deferLookup(ref TypeRef, from string) (*graphql.LazyType, error) {
	const op graphql.Op = "nexus.Registry.deferLookup"

	if ref == nil {
		return nil, newDefinitionError(op, "%s must reference a type.", from)
	}
	if def, ok := ref.(namedDefinition); ok {
		if err := r.add(op, def); err != nil {
			return nil, err
		}
	}

	name := ref.refName()
	lazy := graphql.NewLazyType(name, func() (graphql.Type, error) {
		t, err := r.getOrBuildType(name, from)
		if err == nil {
			return t, nil
		}
		var missing *MissingTypeError
		if errors.As(err, &missing) {
			return r.substituteMissing(missing)
		}
		return nil, err
	})
	r.deferred = append(r.deferred, lazy)
	return lazy, nil
}

// build dispatches to the builder for the kind of the declaration.
func (r *Registry) build(session *buildSession, def namedDefinition) (graphql.NamedType, error) {
	switch def := def.(type) {
	case *ObjectTypeDef:
		return r.buildObject(session, def)
	case *InterfaceTypeDef:
		return r.buildInterface(session, def)
	case *InputObjectTypeDef:
		return r.buildInputObject(session, def)
	case *UnionTypeDef:
		return r.buildUnion(session, def)
	case *EnumTypeDef:
		return r.buildEnum(session, def)
	case *ScalarTypeDef:
		return r.buildScalar(def)
	}
	return nil, graphql.NewError(
		fmt.Sprintf("Cannot build %s from %T.", def.Name(), def),
		graphql.Op("nexus.Registry.build"), graphql.ErrKindInternal)
}

func (r *Registry) buildObject(session *buildSession, def *ObjectTypeDef) (graphql.NamedType, error) {
	config := &def.config

	block := newOutputDefinitionBlock(config.Name)
	if config.Definition != nil {
		config.Definition(block)
	}
	for _, ext := range r.extensions[config.Name] {
		if ext.config.Definition != nil {
			ext.config.Definition(block)
		}
	}
	if block.err != nil {
		return nil, block.err
	}

	fields, interfaces, err := r.buildOutputFields(session, block, config.NonNullDefaults)
	if err != nil {
		return nil, err
	}

	return graphql.NewObject(&graphql.ObjectConfig{
		Name:        config.Name,
		Description: config.Description,
		Interfaces:  interfaces,
		Fields:      fields,
		IsTypeOf:    config.IsTypeOf,
		Extensions:  copyExtensions(config.Extensions),
	})
}

func (r *Registry) buildInterface(session *buildSession, def *InterfaceTypeDef) (graphql.NamedType, error) {
	config := &def.config

	block := newOutputDefinitionBlock(config.Name)
	if config.Definition != nil {
		config.Definition(block)
	}
	for _, ext := range r.extensions[config.Name] {
		if ext.config.Definition != nil {
			ext.config.Definition(block)
		}
	}
	if block.err != nil {
		return nil, block.err
	}

	fields, interfaces, err := r.buildOutputFields(session, block, config.NonNullDefaults)
	if err != nil {
		return nil, err
	}

	return graphql.NewInterface(&graphql.InterfaceConfig{
		Name:         config.Name,
		Description:  config.Description,
		Interfaces:   interfaces,
		Fields:       fields,
		TypeResolver: config.ResolveType,
		Extensions:   copyExtensions(config.Extensions),
	})
}

// buildOutputFields merges the members recorded in an OutputDefinitionBlock into fields. It also
// returns the interfaces implemented by the type including the ones implemented transitively.
func (r *Registry) buildOutputFields(
	session *buildSession,
	block *OutputDefinitionBlock,
	typeDefaults *NonNullConfig) ([]*graphql.Field, []*graphql.Interface, error) {

	const op graphql.Op = "nexus.Registry.buildOutputFields"

	var (
		typeName   = block.typeName
		members    = newMemberSet[graphql.FieldConfig]()
		inherited  = map[string]bool{}
		interfaces []*graphql.Interface
		implements = map[string]bool{}
	)

	addInterface := func(iface *graphql.Interface) {
		if !implements[iface.Name()] {
			implements[iface.Name()] = true
			interfaces = append(interfaces, iface)
		}
	}

	for _, member := range block.members {
		if member.compose == nil {
			fieldConfig, err := r.newOutputField(typeName, member.name, member.field, typeDefaults)
			if err != nil {
				return nil, nil, err
			}
			members.put(member.name, fieldConfig)
			delete(inherited, member.name)
			continue
		}

		fields, iface, err := r.composeFields(session, typeName, member.compose)
		if err != nil {
			return nil, nil, err
		}
		if iface != nil {
			addInterface(iface)
			for _, parent := range iface.Interfaces() {
				addInterface(parent)
			}
		}
		for _, field := range fields {
			members.put(field.Name(), field.Config())
			inherited[field.Name()] = iface != nil
		}
	}

	for _, m := range block.modifications {
		fieldConfig, exists := members.get(m.name)
		if !exists || !inherited[m.name] {
			return nil, nil, newDefinitionError(op,
				`Cannot modify field "%s.%s" which is not inherited from an interface.`, typeName, m.name)
		}
		fieldConfig, err := r.modifyField(typeName, fieldConfig, &m.mod, typeDefaults)
		if err != nil {
			return nil, nil, err
		}
		members.put(m.name, fieldConfig)
	}

	if members.len() == 0 {
		return nil, nil, newDefinitionError(op, `Type "%s" must define one or more fields.`, typeName)
	}

	fieldConfigs := members.ordered()
	fields := make([]*graphql.Field, len(fieldConfigs))
	for i := range fieldConfigs {
		fieldConfigs[i].Resolver = r.newFieldResolver(typeName, &fieldConfigs[i])
		field, err := graphql.NewField(&fieldConfigs[i])
		if err != nil {
			return nil, nil, graphql.NewError(fmt.Sprintf(`Cannot build field of "%s"`, typeName), op, err)
		}
		fields[i] = field
	}
	return fields, interfaces, nil
}

// newOutputField resolves a FieldConfig into the config of a finalized field.
func (r *Registry) newOutputField(
	typeName string,
	name string,
	config *FieldConfig,
	typeDefaults *NonNullConfig) (graphql.FieldConfig, error) {

	from := typeName + "." + name

	namedType, err := r.deferLookup(config.Type, from)
	if err != nil {
		return graphql.FieldConfig{}, err
	}

	args, err := r.newArguments(from, config.Args, typeDefaults)
	if err != nil {
		return graphql.FieldConfig{}, err
	}

	return graphql.FieldConfig{
		Name:             name,
		Description:      config.Description,
		Type:             namedType,
		Wrapping:         r.policy.Wrap(config.nullability(), typeDefaults, false),
		Args:             args,
		HasResolver:      config.Resolve != nil,
		DeclaredResolver: config.Resolve,
		Property:         config.Property,
		Deprecation:      config.Deprecation,
		Extensions:       copyExtensions(config.Extensions),
	}, nil
}

// newFieldResolver builds the resolver of a field owned by typeName. Middlewares from plugins are
// applied under the name of the owner, including for fields copied from another type.
func (r *Registry) newFieldResolver(typeName string, config *graphql.FieldConfig) graphql.FieldResolver {
	resolver := config.DeclaredResolver
	if resolver == nil && config.HasResolver {
		// Field of a type created elsewhere and registered with FromType
		resolver = config.Resolver
	}
	if resolver == nil {
		resolver = newPropertyResolver(typeName, config.Name, propertyName(config.Name, config.Property))
	}
	return r.applyMiddleware(FieldInfo{
		TypeName:    typeName,
		FieldName:   config.Name,
		HasResolver: config.HasResolver,
		Extensions:  config.Extensions,
	}, resolver)
}

func (r *Registry) newArguments(
	from string,
	argConfigs []ArgConfig,
	typeDefaults *NonNullConfig) ([]graphql.ArgumentConfig, error) {

	if len(argConfigs) == 0 {
		return nil, nil
	}

	args := make([]graphql.ArgumentConfig, len(argConfigs))
	for i := range argConfigs {
		argConfig := &argConfigs[i]
		namedType, err := r.deferLookup(argConfig.Type, fmt.Sprintf("%s(%s:)", from, argConfig.Name))
		if err != nil {
			return nil, err
		}
		args[i] = graphql.ArgumentConfig{
			Name:         argConfig.Name,
			Description:  argConfig.Description,
			Type:         namedType,
			Wrapping:     r.policy.Wrap(argConfig.nullability(), typeDefaults, true),
			DefaultValue: argConfig.Default,
		}
	}
	return args, nil
}

func (r *Registry) buildInputObject(session *buildSession, def *InputObjectTypeDef) (graphql.NamedType, error) {
	const op graphql.Op = "nexus.Registry.buildInputObject"

	config := &def.config

	block := newInputDefinitionBlock(config.Name)
	if config.Definition != nil {
		config.Definition(block)
	}
	for _, ext := range r.inputExtensions[config.Name] {
		if ext.config.Definition != nil {
			ext.config.Definition(block)
		}
	}
	if block.err != nil {
		return nil, block.err
	}

	members := newMemberSet[graphql.InputFieldConfig]()
	for _, member := range block.members {
		if member.compose != nil {
			fields, err := r.composeInputFields(session, config.Name, member.compose)
			if err != nil {
				return nil, err
			}
			for _, field := range fields {
				members.put(field.Name(), field.Config())
			}
			continue
		}

		fieldConfig := member.field
		namedType, err := r.deferLookup(fieldConfig.Type, config.Name+"."+member.name)
		if err != nil {
			return nil, err
		}
		members.put(member.name, graphql.InputFieldConfig{
			Name:         member.name,
			Description:  fieldConfig.Description,
			Type:         namedType,
			Wrapping:     r.policy.Wrap(fieldConfig.nullability(), config.NonNullDefaults, true),
			DefaultValue: fieldConfig.Default,
			Extensions:   copyExtensions(fieldConfig.Extensions),
		})
	}

	if members.len() == 0 {
		return nil, newDefinitionError(op, `Type "%s" must define one or more fields.`, config.Name)
	}

	return graphql.NewInputObject(&graphql.InputObjectConfig{
		Name:        config.Name,
		Description: config.Description,
		Fields:      members.ordered(),
		Extensions:  copyExtensions(config.Extensions),
	})
}

func (r *Registry) buildEnum(session *buildSession, def *EnumTypeDef) (graphql.NamedType, error) {
	config := &def.config

	block := newEnumDefinitionBlock(config.Name)
	block.Members(config.Members...)
	if config.Definition != nil {
		config.Definition(block)
	}
	if block.err != nil {
		return nil, block.err
	}

	members := newMemberSet[graphql.EnumValueConfig]()
	for _, member := range block.members {
		if member.compose != nil {
			values, err := r.composeEnumValues(session, config.Name, member.compose)
			if err != nil {
				return nil, err
			}
			for _, value := range values {
				members.put(value.Name(), value.Config())
			}
			continue
		}

		members.put(member.name, graphql.EnumValueConfig{
			Name:        member.name,
			Description: member.value.Description,
			Value:       member.value.Value,
			Deprecation: member.value.Deprecation,
		})
	}

	// An enum left without values after filtering is reported by NewEnum.
	return graphql.NewEnum(&graphql.EnumConfig{
		Name:        config.Name,
		Description: config.Description,
		Values:      members.ordered(),
		Extensions:  copyExtensions(config.Extensions),
	})
}

func (r *Registry) buildUnion(session *buildSession, def *UnionTypeDef) (graphql.NamedType, error) {
	config := &def.config

	block := newUnionDefinitionBlock(config.Name)
	if config.Definition != nil {
		config.Definition(block)
	}
	if block.err != nil {
		return nil, block.err
	}

	members := newMemberSet[*graphql.LazyType]()
	for _, member := range block.members {
		if member.compose != nil {
			possibleTypes, err := r.composeUnionMembers(session, config.Name, member.compose)
			if err != nil {
				return nil, err
			}
			for _, possibleType := range possibleTypes {
				members.put(possibleType.Name(), possibleType)
			}
			continue
		}

		possibleType, err := r.deferLookup(member.ref, config.Name)
		if err != nil {
			return nil, err
		}
		members.put(possibleType.Name(), possibleType)
	}

	return graphql.NewUnion(&graphql.UnionConfig{
		Name:          config.Name,
		Description:   config.Description,
		PossibleTypes: members.ordered(),
		TypeResolver:  config.ResolveType,
		Extensions:    copyExtensions(config.Extensions),
	})
}

func (r *Registry) buildScalar(def *ScalarTypeDef) (graphql.NamedType, error) {
	config := &def.config
	return graphql.NewScalar(&graphql.ScalarConfig{
		Name:        config.Name,
		Description: config.Description,
		Serialize:   config.Serialize,
		ParseValue:  config.ParseValue,
		Extensions:  copyExtensions(config.Extensions),
	})
}

// copyExtensions makes a shallow copy so the built type doesn't share the map with its declaration.
func copyExtensions(extensions map[string]interface{}) map[string]interface{} {
	if extensions == nil {
		return nil
	}
	result := make(map[string]interface{}, len(extensions))
	for k, v := range extensions {
		result[k] = v
	}
	return result
}
