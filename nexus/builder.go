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
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/graphql-nexus/nexus-sub000/graphql"
)

// Names of the root operation types
const (
	QueryTypeName        = "Query"
	MutationTypeName     = "Mutation"
	SubscriptionTypeName = "Subscription"
)

// SchemaConfig contains configuration to build a schema.
type SchemaConfig struct {
	// Types to be included in the schema. Types referenced by handle from these are included as
	// well.
	Types []Definition

	// NonNullDefaults overrides the built-in nullability defaults for the whole schema.
	NonNullDefaults *NonNullConfig

	// Plugins hook into the build in the given order.
	Plugins []*Plugin

	// Logger receives a summary of the build. Details of type resolution are logged at V(1).
	// Defaults to a discarding logger.
	Logger logr.Logger
}

// BuildResult is the outcome of Build.
type BuildResult struct {
	// Schema assembled from the finalized types
	Schema *graphql.Schema

	// Types maps names to the finalized types including the standard scalars.
	Types map[string]graphql.NamedType

	// MissingTypes lists types referenced by fields, arguments or union members but never
	// declared. References to them are replaced with a placeholder scalar in Schema.
	MissingTypes []*MissingTypeError
}

// Build registers all definitions, finalizes them and assembles a schema. Duplicated names and
// errors in compositions fail the build. Missing types referenced by plain references are collected
// in the result instead.
func Build(config *SchemaConfig) (*BuildResult, error) {
	const op graphql.Op = "nexus.Build"

	logger := config.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	for _, plugin := range config.Plugins {
		if plugin == nil || len(plugin.Name) == 0 {
			return nil, newDefinitionError(op, "Plugin must have a name.")
		}
	}

	registry := NewRegistry(RegistryConfig{
		NonNullDefaults:     config.NonNullDefaults,
		Plugins:             config.Plugins,
		CollectMissingTypes: true,
		Logger:              logger,
	})

	definitions := append([]Definition(nil), config.Types...)
	for _, plugin := range config.Plugins {
		if plugin.OnInstall != nil {
			definitions = append(definitions, plugin.OnInstall()...)
		}
	}

	// Reject duplicated names before resolving anything.
	for _, def := range definitions {
		if err := registry.Register(def); err != nil {
			return nil, err
		}
	}

	for _, plugin := range config.Plugins {
		if plugin.OnBeforeBuild == nil {
			continue
		}
		if err := plugin.OnBeforeBuild(registry); err != nil {
			return nil, graphql.NewError(fmt.Sprintf(`Plugin "%s" failed before build`, plugin.Name), op, err)
		}
	}

	types, err := registry.Finalize()
	if err != nil {
		return nil, err
	}

	// Second pass: evaluate every deferred lookup now that all types are final.
	if errs := registry.forceDeferred(); errs.HaveOccurred() {
		return nil, errs
	}

	schema, err := assembleSchema(logger, registry, types)
	if err != nil {
		return nil, err
	}

	for _, plugin := range config.Plugins {
		if plugin.OnAfterBuild == nil {
			continue
		}
		if err := plugin.OnAfterBuild(schema); err != nil {
			return nil, graphql.NewError(fmt.Sprintf(`Plugin "%s" failed after build`, plugin.Name), op, err)
		}
	}

	missingTypes := registry.MissingTypes()
	for _, missing := range missingTypes {
		logger.Error(missing, "type is referenced but never declared",
			"name", missing.Name, "referencedFrom", missing.ReferencedFrom, "suggestions", missing.Suggestions)
	}
	logger.Info("built schema", "types", schema.TypeMap().Len(), "missingTypes", len(missingTypes))

	return &BuildResult{
		Schema:       schema,
		Types:        types,
		MissingTypes: missingTypes,
	}, nil
}

// MakeSchema is like Build but also fails when any type is missing. All missing types are reported
// together in a graphql.Errors.
func MakeSchema(config *SchemaConfig) (*graphql.Schema, error) {
	const op graphql.Op = "nexus.MakeSchema"

	result, err := Build(config)
	if err != nil {
		return nil, err
	}

	if len(result.MissingTypes) > 0 {
		var errs graphql.Errors
		for _, missing := range result.MissingTypes {
			errs.Append(newDiagnostic(op, missing))
		}
		return nil, errs
	}

	return result.Schema, nil
}

// assembleSchema creates a schema with the root types found in types. A Query type is provided when
// there's none.
func assembleSchema(
	logger logr.Logger,
	registry *Registry,
	types map[string]graphql.NamedType) (*graphql.Schema, error) {

	const op graphql.Op = "nexus.Build"

	roots := [3]*graphql.Object{}
	for i, name := range []string{QueryTypeName, MutationTypeName, SubscriptionTypeName} {
		t, exists := types[name]
		if !exists {
			continue
		}
		object, ok := t.(*graphql.Object)
		if !ok {
			return nil, newDefinitionError(op, `Root type "%s" must be an OBJECT but got %s.`, name, t.Kind())
		}
		roots[i] = object
	}

	if roots[0] == nil {
		logger.Info("no Query type is declared; using a default one")
		roots[0] = defaultQueryType()
	}

	// Types are visited in registration order for a deterministic type map.
	var others []graphql.Type
	for _, name := range registry.Names() {
		switch name {
		case QueryTypeName, MutationTypeName, SubscriptionTypeName:
			continue
		}
		if t, exists := types[name]; exists {
			others = append(others, t)
		}
	}

	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query:        roots[0],
		Mutation:     roots[1],
		Subscription: roots[2],
		Types:        others,
	})
	if err != nil {
		return nil, graphql.NewError("Cannot assemble schema", op, err)
	}
	return schema, nil
}

// defaultQueryType is used when no Query type is declared since a schema requires one.
func defaultQueryType() *graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name: QueryTypeName,
		Fields: []*graphql.Field{
			graphql.MustNewField(&graphql.FieldConfig{
				Name:     "ok",
				Type:     graphql.ResolvedType(graphql.Boolean()),
				Wrapping: graphql.Wrapping{NonNull: true},
				Resolver: graphql.FieldResolverFunc(
					func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
						return true, nil
					}),
				HasResolver: true,
			}),
		},
	})
}
