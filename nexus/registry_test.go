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
	"errors"

	"github.com/graphql-nexus/nexus-sub000/graphql"
	"github.com/graphql-nexus/nexus-sub000/nexus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var registry *nexus.Registry

	BeforeEach(func() {
		registry = nexus.NewRegistry(nexus.RegistryConfig{})
	})

	It("contains the standard scalars", func() {
		Expect(registry.Names()).Should(Equal([]string{"String", "Int", "Float", "Boolean", "ID"}))
		Expect(registry.Lookup("String")).Should(Equal(graphql.String()))
		Expect(registry.Lookup("ID")).Should(Equal(graphql.ID()))
	})

	It("keeps names in registration order", func() {
		Expect(registry.Register(stringObject("B", "b"))).Should(Succeed())
		Expect(registry.Register(stringObject("A", "a"))).Should(Succeed())
		Expect(registry.Register(nexus.EnumType(&nexus.EnumConfig{
			Name:    "C",
			Members: []string{"X"},
		}))).Should(Succeed())

		Expect(registry.Names()[5:]).Should(Equal([]string{"B", "A", "C"}))
	})

	It("rejects a nil definition", func() {
		Expect(registry.Register(nil)).Should(MatchError(ContainSubstring("Must provide a non-nil definition.")))
	})

	It("rejects invalid names", func() {
		Expect(registry.Register(stringObject("__Reserved", "a"))).ShouldNot(Succeed())
		Expect(registry.Register(stringObject("not-a-name", "a"))).ShouldNot(Succeed())
	})

	It("rejects two different declarations with the same name before resolving anything", func() {
		called := false
		first := nexus.ObjectType(&nexus.ObjectConfig{
			Name: "User",
			Definition: func(t *nexus.OutputDefinitionBlock) {
				called = true
				t.ID("id")
			},
		})
		Expect(registry.Register(first)).Should(Succeed())

		err := registry.Register(stringObject("User", "name"))
		Expect(err).Should(MatchError(ContainSubstring(
			`Schema must contain unique named types but contains multiple types named "User".`)))

		var duplicate *nexus.DuplicateTypeError
		Expect(errors.As(err, &duplicate)).Should(BeTrue())
		Expect(duplicate.Name).Should(Equal("User"))

		Expect(called).Should(BeFalse())
	})

	It("rejects a declaration that collides with a standard scalar", func() {
		err := registry.Register(nexus.ScalarType(&nexus.ScalarConfig{Name: "String"}))
		var duplicate *nexus.DuplicateTypeError
		Expect(errors.As(err, &duplicate)).Should(BeTrue())
		Expect(duplicate.Name).Should(Equal("String"))
	})

	It("ignores the same handle registered twice", func() {
		user := stringObject("User", "name")
		Expect(registry.Register(user)).Should(Succeed())
		Expect(registry.Register(user)).Should(Succeed())
		Expect(registry.Names()[5:]).Should(Equal([]string{"User"}))

		types, err := registry.Finalize()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(types).Should(HaveKey("User"))
	})

	It("registers built types with FromType", func() {
		date := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Date"})
		Expect(registry.Register(nexus.FromType(date))).Should(Succeed())
		Expect(registry.Register(nexus.FromType(date))).Should(Succeed())
		Expect(registry.Lookup("Date")).Should(Equal(date))

		another := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Date"})
		var duplicate *nexus.DuplicateTypeError
		Expect(errors.As(registry.Register(nexus.FromType(another)), &duplicate)).Should(BeTrue())
	})

	Describe("Finalize", func() {
		It("returns all types including the standard scalars", func() {
			Expect(registry.Register(stringObject("User", "name"))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(types).Should(HaveLen(6))
			Expect(types).Should(HaveKey("String"))
			Expect(types["User"].Kind()).Should(Equal(graphql.TypeKindObject))
			Expect(registry.Lookup("User")).Should(BeIdenticalTo(types["User"]))
		})

		It("is idempotent", func() {
			count := 0
			Expect(registry.Register(nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					count++
					t.String("name")
				},
			}))).Should(Succeed())

			first, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())
			second, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())

			Expect(second["User"]).Should(BeIdenticalTo(first["User"]))
			Expect(count).Should(Equal(1))
		})

		It("returns the same error again", func() {
			Expect(registry.Register(nexus.ObjectType(&nexus.ObjectConfig{Name: "Empty"}))).Should(Succeed())

			_, err1 := registry.Finalize()
			Expect(err1).Should(MatchError(ContainSubstring(`Type "Empty" must define one or more fields.`)))
			_, err2 := registry.Finalize()
			Expect(err2).Should(Equal(err1))
		})

		It("freezes the registry", func() {
			_, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())

			err = registry.Register(stringObject("Late", "a"))
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, nexus.ErrRegistryFrozen)).Should(BeTrue())
			Expect(registry.Lookup("Late")).Should(BeNil())
		})

		It("builds types declared inline by handle", func() {
			address := stringObject("Address", "street")
			Expect(registry.Register(nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Field("address", nexus.FieldConfig{Type: address})
				},
			}))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(types).Should(HaveKey("Address"))
			Expect(registry.Names()[5:]).Should(Equal([]string{"User", "Address"}))
		})

		It("rejects an inline handle colliding with another declaration", func() {
			Expect(registry.Register(stringObject("Address", "street"))).Should(Succeed())
			Expect(registry.Register(nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Field("address", nexus.FieldConfig{Type: stringObject("Address", "city")})
				},
			}))).Should(Succeed())

			_, err := registry.Finalize()
			var duplicate *nexus.DuplicateTypeError
			Expect(errors.As(err, &duplicate)).Should(BeTrue())
			Expect(duplicate.Name).Should(Equal("Address"))
		})

		It("fails on a missing type unless missing types are collected", func() {
			Expect(registry.Register(nexus.ObjectType(&nexus.ObjectConfig{
				Name: "Post",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Field("author", nexus.FieldConfig{Type: nexus.TypeName("Author")})
				},
			}))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())

			// The reference is deferred so the error surfaces on first access.
			_, err = types["Post"].(*graphql.Object).Field("author").ResolveType()
			var missing *nexus.MissingTypeError
			Expect(errors.As(err, &missing)).Should(BeTrue())
			Expect(missing.Name).Should(Equal("Author"))
			Expect(missing.ReferencedFrom).Should(Equal("Post.author"))
			Expect(registry.MissingTypes()).Should(BeEmpty())
		})

		It("collects missing types when configured", func() {
			registry = nexus.NewRegistry(nexus.RegistryConfig{CollectMissingTypes: true})
			Expect(registry.Register(nexus.ObjectType(&nexus.ObjectConfig{
				Name: "Post",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Field("author", nexus.FieldConfig{Type: nexus.TypeName("Author")})
					t.Field("editor", nexus.FieldConfig{Type: nexus.TypeName("Author")})
				},
			}))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())

			post := types["Post"].(*graphql.Object)
			Expect(fieldType(post, "author")).Should(Equal("NEXUS__UNKNOWN__TYPE"))
			Expect(fieldType(post, "editor")).Should(Equal("NEXUS__UNKNOWN__TYPE"))

			missing := registry.MissingTypes()
			Expect(missing).Should(HaveLen(1))
			Expect(missing[0].Name).Should(Equal("Author"))
			Expect(missing[0].ReferencedFrom).Should(Equal("Post.author"))
		})
	})

	Describe("extensions", func() {
		It("adds fields to a declared type", func() {
			Expect(registry.Register(nexus.ExtendType(&nexus.ExtendTypeConfig{
				Type: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.String("email")
				},
			}))).Should(Succeed())
			Expect(registry.Register(stringObject("User", "name"))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fieldNames(types["User"])).Should(Equal([]string{"name", "email"}))
		})

		It("declares an Object for an extended type never declared", func() {
			Expect(registry.Register(nexus.QueryField("hello", nexus.FieldConfig{
				Type: nexus.TypeName("String"),
			}))).Should(Succeed())
			Expect(registry.Register(nexus.QueryField("bye", nexus.FieldConfig{
				Type: nexus.TypeName("String"),
			}))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(types["Query"].Kind()).Should(Equal(graphql.TypeKindObject))
			Expect(fieldNames(types["Query"])).Should(Equal([]string{"hello", "bye"}))
		})

		It("declares an InputObject for an extended input type never declared", func() {
			Expect(registry.Register(nexus.ExtendInputType(&nexus.ExtendInputTypeConfig{
				Type: "Filter",
				Definition: func(t *nexus.InputDefinitionBlock) {
					t.String("text")
				},
			}))).Should(Succeed())

			types, err := registry.Finalize()
			Expect(err).ShouldNot(HaveOccurred())
			filter := types["Filter"].(*graphql.InputObject)
			Expect(filter.Fields()).Should(HaveLen(1))
		})

		It("rejects extending an enum", func() {
			Expect(registry.Register(nexus.EnumType(&nexus.EnumConfig{
				Name:    "Role",
				Members: []string{"ADMIN"},
			}))).Should(Succeed())
			Expect(registry.Register(nexus.ExtendType(&nexus.ExtendTypeConfig{
				Type: "Role",
			}))).Should(Succeed())

			_, err := registry.Finalize()
			Expect(err).Should(MatchError(ContainSubstring(`Cannot extend ENUM "Role".`)))
		})

		It("rejects extending an output type with ExtendInputType", func() {
			Expect(registry.Register(stringObject("User", "name"))).Should(Succeed())
			Expect(registry.Register(nexus.ExtendInputType(&nexus.ExtendInputTypeConfig{
				Type: "User",
			}))).Should(Succeed())

			_, err := registry.Finalize()
			Expect(err).Should(MatchError(ContainSubstring(`Cannot extend OBJECT "User" with ExtendInputType.`)))
		})

		It("rejects extending a type built already", func() {
			Expect(registry.Register(nexus.ExtendType(&nexus.ExtendTypeConfig{
				Type: "String",
			}))).Should(Succeed())

			_, err := registry.Finalize()
			Expect(err).Should(MatchError(ContainSubstring(
				`Cannot extend type "String" which is already built as SCALAR.`)))
		})
	})
})
