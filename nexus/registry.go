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
	"sync"

	"github.com/go-logr/logr"
	"github.com/graphql-nexus/nexus-sub000/graphql"
)

// ErrRegistryFrozen is returned when registering a definition after the registry has started
// finalization.
var ErrRegistryFrozen = errors.New("registry is frozen: types cannot be registered after finalization")

// placeholderTypeName names the scalar substituted for missing types when they are collected.
const placeholderTypeName = "NEXUS__UNKNOWN__TYPE"

type registryState uint8

const (
	registryOpen registryState = iota
	registryFinalizing
	registryFinalized
)

// RegistryConfig contains configuration to create a Registry.
type RegistryConfig struct {
	// NonNullDefaults contains the schema-wide nullability defaults.
	NonNullDefaults *NonNullConfig

	// Plugins to be consulted when creating fields and when a type is missing.
	Plugins []*Plugin

	// CollectMissingTypes makes deferred lookups of undeclared types yield a placeholder scalar
	// instead of an error. The missing types are reported by MissingTypes.
	CollectMissingTypes bool

	// Logger receives the progress of finalization. Defaults to a discarding logger.
	Logger logr.Logger
}

// Registry owns the mapping from type names to pending declarations and finalized types. A name
// is either pending or final but never both.
//
// A Registry is not safe for concurrent registration. Once Finalize returns, the finalized types
// may be read concurrently.
type Registry struct {
	config RegistryConfig
	logger logr.Logger
	policy NullabilityPolicy

	state registryState

	// names of all types in the order they were registered
	names   []string
	pending map[string]namedDefinition
	final   map[string]graphql.NamedType

	// defs contains every declaration ever added. It tells a handle seen again from a different
	// declaration with the same name.
	defs map[string]namedDefinition

	// extensions keyed by the name of the extended type
	extensions      map[string][]*ExtendTypeDef
	inputExtensions map[string][]*ExtendInputTypeDef
	extendedNames   []string

	// deferred contains every deferred lookup created while building types.
	deferred []*graphql.LazyType

	// result of Finalize
	result map[string]graphql.NamedType
	err    error

	// mu guards the missing type records which may be updated by deferred lookups from multiple
	// readers.
	mu           sync.Mutex
	missing      []*MissingTypeError
	missingIndex map[string]bool
	placeholder  *graphql.Scalar
}

// NewRegistry creates an empty Registry. The standard scalars are registered already.
func NewRegistry(config RegistryConfig) *Registry {
	logger := config.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	r := &Registry{
		config:          config,
		logger:          logger,
		policy:          NullabilityPolicy{Schema: config.NonNullDefaults},
		pending:         map[string]namedDefinition{},
		final:           map[string]graphql.NamedType{},
		defs:            map[string]namedDefinition{},
		extensions:      map[string][]*ExtendTypeDef{},
		inputExtensions: map[string][]*ExtendInputTypeDef{},
		missingIndex:    map[string]bool{},
	}

	for _, scalar := range graphql.StandardScalars() {
		r.final[scalar.Name()] = scalar
		r.names = append(r.names, scalar.Name())
	}

	return r
}

// Register adds a definition to the registry. It fails with a DuplicateTypeError if the name has
// been taken by another declaration. Registering the same handle again is a no-op.
func (r *Registry) Register(def Definition) error {
	const op graphql.Op = "nexus.Registry.Register"

	if def == nil {
		return newDefinitionError(op, "Must provide a non-nil definition.")
	}
	if r.state != registryOpen {
		return graphql.NewError(
			fmt.Sprintf(`Cannot register "%s"`, def.Name()), op, graphql.ErrKindDefinition, ErrRegistryFrozen)
	}

	switch def := def.(type) {
	case *ExtendTypeDef:
		return r.addExtension(op, def.Name(), func() {
			r.extensions[def.Name()] = append(r.extensions[def.Name()], def)
		})

	case *ExtendInputTypeDef:
		return r.addExtension(op, def.Name(), func() {
			r.inputExtensions[def.Name()] = append(r.inputExtensions[def.Name()], def)
		})

	case namedDefinition:
		return r.add(op, def)
	}

	return newDefinitionError(op, "Cannot register %T.", def)
}

func (r *Registry) addExtension(op graphql.Op, name string, add func()) error {
	if err := graphql.AssertValidName(name); err != nil {
		return graphql.NewError("Cannot register extension", op, err)
	}
	if len(r.extensions[name]) == 0 && len(r.inputExtensions[name]) == 0 {
		r.extendedNames = append(r.extendedNames, name)
	}
	add()
	return nil
}

// add puts a named definition into the pending map. FromTypeDef goes to the final map directly. It
// is also called for definitions referenced by handle while finalizing.
func (r *Registry) add(op graphql.Op, def namedDefinition) error {
	name := def.Name()
	if err := graphql.AssertValidName(name); err != nil {
		return graphql.NewError("Cannot register type", op, err)
	}

	if fromType, ok := def.(*FromTypeDef); ok {
		if t, exists := r.final[name]; exists {
			if t == fromType.Type() {
				return nil
			}
			return newDiagnostic(op, &DuplicateTypeError{name})
		}
		if _, exists := r.pending[name]; exists {
			return newDiagnostic(op, &DuplicateTypeError{name})
		}
		r.final[name] = fromType.Type()
		r.names = append(r.names, name)
		return nil
	}

	if prev, exists := r.defs[name]; exists && prev == def {
		return nil
	}
	_, isPending := r.pending[name]
	_, isFinal := r.final[name]
	if isPending || isFinal {
		return newDiagnostic(op, &DuplicateTypeError{name})
	}

	r.defs[name] = def
	r.pending[name] = def
	r.names = append(r.names, name)
	return nil
}

// Names returns the names of all registered types in registration order. The standard scalars come
// first.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Lookup returns the finalized type with the given name. It returns nil if the name is unknown or
// the type is still pending.
func (r *Registry) Lookup(name string) graphql.NamedType {
	return r.final[name]
}

// Finalize resolves every pending declaration and returns the mapping from names to finalized
// types. Any error aborts the whole process. It is idempotent: subsequent calls return the result
// of the first one.
func (r *Registry) Finalize() (map[string]graphql.NamedType, error) {
	const op graphql.Op = "nexus.Registry.Finalize"

	if r.state == registryFinalized {
		return r.result, r.err
	}
	r.state = registryFinalizing

	r.result, r.err = r.finalize(op)
	r.state = registryFinalized
	if r.err != nil {
		r.result = nil
	}
	return r.result, r.err
}

func (r *Registry) finalize(op graphql.Op) (map[string]graphql.NamedType, error) {
	if err := r.declareExtendedTypes(op); err != nil {
		return nil, err
	}

	// Resolve in registration order. Definitions referenced by handle are appended to names while
	// resolving and are visited as well.
	for i := 0; i < len(r.names); i++ {
		name := r.names[i]
		if _, isPending := r.pending[name]; !isPending {
			continue
		}
		// Each root call gets its own session so that unrelated types never see each other in
		// progress.
		if _, err := r.resolveEager(newBuildSession(), name, CompositionMix); err != nil {
			return nil, err
		}
	}

	result := make(map[string]graphql.NamedType, len(r.final))
	for name, t := range r.final {
		result[name] = t
	}

	r.logger.V(1).Info("finalized types", "count", len(result), "deferred", len(r.deferred))
	return result, nil
}

// declareExtendedTypes checks the targets of extensions and declares the ones never declared.
func (r *Registry) declareExtendedTypes(op graphql.Op) error {
	for _, name := range r.extendedNames {
		hasOutput := len(r.extensions[name]) > 0
		hasInput := len(r.inputExtensions[name]) > 0

		if t, exists := r.final[name]; exists {
			return newDefinitionError(op, `Cannot extend type "%s" which is already built as %s.`, name, t.Kind())
		}

		def, exists := r.pending[name]
		if !exists {
			if hasOutput && hasInput {
				return newDefinitionError(op,
					`Cannot extend "%s" both as an output type and as an input type.`, name)
			}
			if hasOutput {
				def = ObjectType(&ObjectConfig{Name: name})
			} else {
				def = InputObjectType(&InputObjectConfig{Name: name})
			}
			r.logger.V(1).Info("declaring extended type", "name", name, "kind", def.Kind())
			if err := r.add(op, def); err != nil {
				return err
			}
			continue
		}

		switch def.Kind() {
		case graphql.TypeKindObject, graphql.TypeKindInterface:
			if hasInput {
				return newDefinitionError(op, `Cannot extend %s "%s" with ExtendInputType.`, def.Kind(), name)
			}
		case graphql.TypeKindInputObject:
			if hasOutput {
				return newDefinitionError(op, `Cannot extend INPUT_OBJECT "%s" with ExtendType.`, name)
			}
		default:
			return newDefinitionError(op, `Cannot extend %s "%s".`, def.Kind(), name)
		}
	}
	return nil
}

// nameUniverse returns all names a missing type may be confused with.
func (r *Registry) nameUniverse() []string {
	universe := make([]string, 0, len(r.names))
	for _, name := range r.names {
		if name != placeholderTypeName {
			universe = append(universe, name)
		}
	}
	return universe
}

// MissingTypes returns the missing types collected by deferred lookups in the order they were
// found. Only the first reference to each missing type is recorded.
func (r *Registry) MissingTypes() []*MissingTypeError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*MissingTypeError(nil), r.missing...)
}

// substituteMissing handles a missing type found by a deferred lookup. Plugins get the first chance
// to provide a type. Otherwise the error is either returned or recorded with the placeholder being
// returned.
func (r *Registry) substituteMissing(missing *MissingTypeError) (graphql.Type, error) {
	for _, plugin := range r.config.Plugins {
		if plugin.OnMissingType == nil {
			continue
		}
		if t := plugin.OnMissingType(missing.Name); t != nil {
			r.logger.V(1).Info("type provided by plugin", "name", missing.Name, "plugin", plugin.Name)
			return t, nil
		}
	}

	if !r.config.CollectMissingTypes {
		return nil, newDiagnostic("nexus.Registry.getOrBuildType", missing)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.missingIndex[missing.Name] {
		r.missingIndex[missing.Name] = true
		r.missing = append(r.missing, missing)
	}
	if r.placeholder == nil {
		r.placeholder = graphql.MustNewScalar(&graphql.ScalarConfig{
			Name:        placeholderTypeName,
			Description: "Placeholder for types that are referenced but never declared.",
		})
	}
	return r.placeholder, nil
}

// forceDeferred evaluates every deferred lookup. Errors from the lookups are returned together.
func (r *Registry) forceDeferred() graphql.Errors {
	var errs graphql.Errors
	for _, lazy := range r.deferred {
		if _, err := lazy.Resolve(); err != nil {
			errs.Append(err)
		}
	}
	return errs
}
