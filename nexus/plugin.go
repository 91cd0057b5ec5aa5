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

// FieldInfo describes a field being created. It is given to Plugin.OnCreateFieldResolver.
type FieldInfo struct {
	// Name of the type owning the field
	TypeName string

	// Name of the field
	FieldName string

	// HasResolver is true when the resolver is declared explicitly.
	HasResolver bool

	// Extensions of the field. Plugins should treat it as read-only.
	Extensions map[string]interface{}
}

// FieldMiddleware wraps a field resolver.
type FieldMiddleware func(next graphql.FieldResolver) graphql.FieldResolver

// Plugin hooks into the build of a schema. All hooks are optional.
type Plugin struct {
	// Name identifies the plugin in logs. Required.
	Name string

	// OnInstall returns definitions to be registered after the ones in SchemaConfig.
	OnInstall func() []Definition

	// OnBeforeBuild is called after all definitions are registered and before they are finalized.
	OnBeforeBuild func(registry *Registry) error

	// OnAfterBuild is called with the assembled schema.
	OnAfterBuild func(schema *graphql.Schema) error

	// OnMissingType may provide a type for a name that is referenced but never declared. Returning
	// nil leaves the type missing.
	OnMissingType func(name string) graphql.NamedType

	// OnCreateFieldResolver may return a middleware to wrap the resolver of a field. Returning nil
	// leaves the resolver untouched.
	OnCreateFieldResolver func(info FieldInfo) FieldMiddleware
}

// applyMiddleware wraps resolver with the middlewares from plugins. The middleware of the first
// plugin is the outermost one.
func (r *Registry) applyMiddleware(info FieldInfo, resolver graphql.FieldResolver) graphql.FieldResolver {
	plugins := r.config.Plugins
	for i := len(plugins) - 1; i >= 0; i-- {
		if plugins[i].OnCreateFieldResolver == nil {
			continue
		}
		if middleware := plugins[i].OnCreateFieldResolver(info); middleware != nil {
			resolver = middleware(resolver)
		}
	}
	return resolver
}
