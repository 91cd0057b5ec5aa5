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

var _ = Describe("List", func() {
	It("defines list of a type", func() {
		// Create [Int].
		listType := graphql.MustNewListOf(graphql.Int())
		Expect(listType.ElementType()).Should(Equal(graphql.Int()))
		Expect(listType.UnwrappedType()).Should(Equal(graphql.Int()))
		Expect(listType.String()).Should(Equal("[Int]"))

		// Create [[Int]].
		listOfListType := graphql.MustNewListOf(listType)
		Expect(listOfListType.ElementType()).Should(Equal(listType))
		Expect(listOfListType.String()).Should(Equal("[[Int]]"))
		Expect(graphql.KindOf(listOfListType)).Should(Equal(graphql.TypeKindList))
	})

	It("rejects creating type without specifying element type", func() {
		_, err := graphql.NewListOf(nil)
		Expect(err).Should(MatchDefinitionError("Must provide an non-nil element type for List."))

		Expect(func() {
			graphql.MustNewListOf(nil)
		}).Should(Panic())
	})
})
