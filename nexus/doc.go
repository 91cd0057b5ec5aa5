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

// Package nexus builds a GraphQL type graph from declarative type definitions.
//
// Definitions reference each other by name and may be declared in any order. A field's type is a
// deferred lookup which is resolved after every definition is known, so that ordinary cycles
// between objects (e.g., Post.author: User and User.posts: [Post]) are allowed. Compositions (Mix
// and Implements) are resolved eagerly while the owning type is being built because its members
// must be known before the type can be created. A cycle through compositions is an error.
//
// Nullability of every field, argument and list level is decided by a cascade of defaults: the
// field's own options, then the defaults of the owning type, then the defaults of the schema and
// finally the built-in defaults (output values are nullable and input values are required).
//
//	schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
//		Types: []nexus.Definition{
//			nexus.ObjectType(&nexus.ObjectConfig{
//				Name: "User",
//				Definition: func(t *nexus.OutputDefinitionBlock) {
//					t.ID("id", nexus.FieldConfig{Nullable: nexus.Bool(false)})
//					t.Field("friends", nexus.FieldConfig{
//						Type: nexus.TypeName("User"),
//						List: nexus.ListOf(),
//					})
//				},
//			}),
//		},
//	})
package nexus
