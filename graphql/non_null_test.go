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
	"github.com/graphql-nexus/nexus-sub000/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("NonNull", func() {
	// graphql-js/src/type/__tests__/definition-test.js
	It("prohibits nesting NonNull inside NonNull", func() {
		_, err := graphql.NewNonNullOf(graphql.MustNewNonNullOf(graphql.Int()))
		Expect(err).Should(MatchDefinitionError("Expected a nullable type for NonNull but got an Int!."))
	})

	It("rejects creating type without specifying inner type", func() {
		_, err := graphql.NewNonNullOf(nil)
		Expect(err).Should(MatchDefinitionError("Must provide an non-nil inner type for NonNull."))

		Expect(func() {
			graphql.MustNewNonNullOf(nil)
		}).Should(Panic())
	})

	It("accepts nullable types", func() {
		nonNullType := graphql.MustNewNonNullOf(graphql.Int())
		Expect(nonNullType.InnerType()).Should(Equal(graphql.Int()))
		Expect(nonNullType.String()).Should(Equal("Int!"))
		Expect(graphql.IsNullableType(nonNullType)).Should(BeFalse())

		nonNullList := graphql.MustNewNonNullOf(graphql.MustNewListOf(nonNullType))
		Expect(nonNullList.String()).Should(Equal("[Int!]!"))
		Expect(graphql.NullableTypeOf(nonNullList).String()).Should(Equal("[Int!]"))
		Expect(graphql.NamedTypeOf(nonNullList)).Should(Equal(graphql.Int()))
	})
})
