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

package nexus_test

import (
	"github.com/graphql-nexus/nexus-sub000/graphql"
	"github.com/graphql-nexus/nexus-sub000/internal/testutil"
	"github.com/graphql-nexus/nexus-sub000/nexus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Diagnostics", func() {
	It("formats a missing type with suggestions", func() {
		err := &nexus.MissingTypeError{
			Name:           "Usr",
			Suggestions:    []string{"User", "UserInput"},
			ReferencedFrom: "Query.me",
		}
		Expect(err.Error()).Should(Equal(
			`Missing type "Usr" referenced by Query.me. Did you mean "User" or "UserInput"?`))
	})

	It("formats a missing type without context", func() {
		err := &nexus.MissingTypeError{Name: "DateTime"}
		Expect(err.Error()).Should(Equal(`Missing type "DateTime".`))
	})

	It("formats composition cycles", func() {
		Expect((&nexus.CircularCompositionError{
			Cycle: []string{"A", "B", "A"},
			Via:   nexus.CompositionMix,
		}).Error()).Should(Equal("Circular composition is not allowed: A -> B -> A."))

		Expect((&nexus.CircularCompositionError{
			Cycle: []string{"Node", "Node"},
			Via:   nexus.CompositionImplements,
		}).Error()).Should(Equal("Type Node cannot implement itself: Node -> Node."))
	})

	It("wraps a duplicate declaration into a definition error", func() {
		registry := nexus.NewRegistry(nexus.RegistryConfig{})
		Expect(registry.Register(stringObject("User", "name"))).Should(Succeed())

		err := registry.Register(stringObject("User", "email"))
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(
				`Schema must contain unique named types but contains multiple types named "User".`),
			testutil.OpIs("nexus.Registry.Register"),
			testutil.KindIs(graphql.ErrKindDefinition),
			testutil.UnderlyingError(Equal(&nexus.DuplicateTypeError{Name: "User"})),
		))
	})

	It("reports every missing type of a schema together", func() {
		_, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Types: []nexus.Definition{
				stringObject("User", "name"),
				nexus.QueryField("me", nexus.FieldConfig{Type: nexus.TypeName("Usr")}),
				nexus.QueryField("now", nexus.FieldConfig{Type: nexus.TypeName("DateTime")}),
			},
		})
		Expect(err).Should(testutil.ConsistOfGraphQLErrors(
			testutil.MatchGraphQLError(
				testutil.MessageEqual(`Missing type "Usr" referenced by Query.me. Did you mean "User"?`),
				testutil.OpIs("nexus.MakeSchema"),
				testutil.KindIs(graphql.ErrKindDefinition),
				testutil.UnderlyingError(BeAssignableToTypeOf(&nexus.MissingTypeError{})),
			),
			testutil.MatchGraphQLError(
				testutil.MessageEqual(`Missing type "DateTime" referenced by Query.now.`),
				testutil.OpIs("nexus.MakeSchema"),
				testutil.KindIs(graphql.ErrKindDefinition),
			),
		))
	})
})
