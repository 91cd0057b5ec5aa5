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

package graphql_test

import (
	"errors"

	"github.com/graphql-nexus/nexus-sub000/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Schema", func() {
	var (
		node  *graphql.Interface
		user  *graphql.Object
		post  *graphql.Object
		query *graphql.Object
	)

	BeforeEach(func() {
		node = graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Node",
			Fields: []*graphql.Field{
				graphql.MustNewField(&graphql.FieldConfig{
					Name:     "id",
					Type:     graphql.ResolvedType(graphql.ID()),
					Wrapping: graphql.Wrapping{NonNull: true},
				}),
			},
		})

		// User and Post reference each other through deferred references.
		user = graphql.MustNewObject(&graphql.ObjectConfig{
			Name:       "User",
			Interfaces: []*graphql.Interface{node},
			Fields: []*graphql.Field{
				graphql.MustNewField(&graphql.FieldConfig{
					Name: "posts",
					Type: graphql.NewLazyType("Post", func() (graphql.Type, error) {
						return post, nil
					}),
					Wrapping: graphql.Wrapping{ListItemsNonNull: []bool{true}},
				}),
			},
		})
		post = graphql.MustNewObject(&graphql.ObjectConfig{
			Name:       "Post",
			Interfaces: []*graphql.Interface{node},
			Fields: []*graphql.Field{
				graphql.MustNewField(&graphql.FieldConfig{
					Name: "author",
					Type: graphql.NewLazyType("User", func() (graphql.Type, error) {
						return user, nil
					}),
				}),
			},
		})

		query = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: []*graphql.Field{
				graphql.MustNewField(&graphql.FieldConfig{
					Name: "me",
					Type: graphql.ResolvedType(user),
				}),
			},
		})
	})

	It("collects every reachable type", func() {
		schema, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: query,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(schema.Query()).Should(Equal(query))
		Expect(schema.Mutation()).Should(BeNil())
		Expect(schema.Lookup("User")).Should(Equal(user))
		Expect(schema.Lookup("Post")).Should(Equal(post))
		Expect(schema.Lookup("Node")).Should(Equal(node))
		Expect(schema.Lookup("ID")).Should(Equal(graphql.ID()))
		Expect(schema.Lookup("Boolean")).Should(Equal(graphql.Boolean()))
		Expect(schema.TypeMap().Names()[0]).Should(Equal("Query"))
		Expect(schema.TypeMap().Len()).Should(Equal(len(schema.TypeMap().Names())))
	})

	It("tracks implementations of interfaces", func() {
		schema, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: query,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(schema.PossibleTypes(node)).Should(Equal([]*graphql.Object{user, post}))
		Expect(schema.IsPossibleType(node, post)).Should(BeTrue())
		Expect(schema.IsPossibleType(node, query)).Should(BeFalse())
	})

	It("includes additional types", func() {
		orphan := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:   "Orphan",
			Fields: []*graphql.Field{stringField("name")},
		})
		schema, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: query,
			Types: []graphql.Type{orphan},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.Lookup("Orphan")).Should(Equal(orphan))
	})

	It("requires a query root", func() {
		_, err := graphql.NewSchema(&graphql.SchemaConfig{})
		Expect(err).Should(MatchDefinitionError("Query root type must be provided."))
	})

	It("rejects distinct types sharing a name", func() {
		another := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "User",
		})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: query,
			Types: []graphql.Type{another},
		})
		Expect(err).Should(MatchDefinitionError(
			"Schema must contain unique named types but contains multiple types named User."))
	})

	It("reports unresolvable field types", func() {
		broken := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: []*graphql.Field{
				graphql.MustNewField(&graphql.FieldConfig{
					Name: "ghost",
					Type: graphql.NewLazyType("Ghost", func() (graphql.Type, error) {
						return nil, errors.New("unknown type")
					}),
				}),
			},
		})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: broken,
		})
		Expect(err).Should(HaveOccurred())
		Expect(errors.Unwrap(err)).Should(MatchError("unknown type"))
		Expect(err.Error()).Should(HavePrefix("Query.ghost"))
	})
})
