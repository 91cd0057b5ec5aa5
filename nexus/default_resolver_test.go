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
	"context"
	"errors"

	"github.com/graphql-nexus/nexus-sub000/graphql"
	"github.com/graphql-nexus/nexus-sub000/nexus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type account struct {
	Login    string
	Handle   string `graphql:"nickname"`
	FullName string
	internal string
	Greeting func(ctx context.Context) (interface{}, error)
}

func (a *account) DisplayName(ctx context.Context) (interface{}, error) {
	return "@" + a.Login, nil
}

type auditInfo struct {
	CreatedBy string
}

type document struct {
	auditInfo
	Title string
}

var _ = Describe("Default resolver", func() {
	var object *graphql.Object

	resolve := func(fieldName string, source interface{}) (interface{}, error) {
		return object.Field(fieldName).Resolver().Resolve(context.Background(), source, nil)
	}

	BeforeEach(func() {
		result := mustBuild(nexus.ObjectType(&nexus.ObjectConfig{
			Name: "Account",
			Definition: func(t *nexus.OutputDefinitionBlock) {
				t.String("login")
				t.String("nickname")
				t.String("full_name")
				t.String("displayName")
				t.String("greeting")
				t.String("internal")
				t.String("createdBy")
				t.String("title")
				t.String("username", nexus.FieldConfig{Property: "login"})
			},
		}))
		object = result.Types["Account"].(*graphql.Object)
	})

	It("resolves nil for a nil source", func() {
		Expect(resolve("login", nil)).Should(BeNil())

		var a *account
		Expect(resolve("login", a)).Should(BeNil())
	})

	It("reads values from maps", func() {
		source := map[string]interface{}{"login": "alice"}
		Expect(resolve("login", source)).Should(Equal("alice"))
		Expect(resolve("nickname", source)).Should(BeNil())
	})

	It("calls functions found in maps", func() {
		source := map[string]interface{}{
			"login": func(ctx context.Context, source interface{}) (interface{}, error) {
				return "bob", nil
			},
		}
		Expect(resolve("login", source)).Should(Equal("bob"))
	})

	It("reads the property given by the field", func() {
		Expect(resolve("username", map[string]interface{}{"login": "carol"})).Should(Equal("carol"))
		Expect(object.Field("username").Property()).Should(Equal("login"))
		Expect(object.Field("username").HasResolver()).Should(BeFalse())
	})

	It("reads struct fields in CamelCase", func() {
		source := &account{Login: "dave", FullName: "Dave Smith"}
		Expect(resolve("login", source)).Should(Equal("dave"))
		Expect(resolve("full_name", source)).Should(Equal("Dave Smith"))
		Expect(resolve("login", *source)).Should(Equal("dave"))
	})

	It("reads struct fields named by tags", func() {
		Expect(resolve("nickname", &account{Handle: "ed"})).Should(Equal("ed"))
	})

	It("reads fields of embedded structs", func() {
		source := &document{auditInfo: auditInfo{CreatedBy: "frank"}, Title: "Notes"}
		Expect(resolve("createdBy", source)).Should(Equal("frank"))
		Expect(resolve("title", source)).Should(Equal("Notes"))
	})

	It("calls methods", func() {
		Expect(resolve("displayName", &account{Login: "grace"})).Should(Equal("@grace"))
	})

	It("calls function values in struct fields", func() {
		source := &account{
			Greeting: func(ctx context.Context) (interface{}, error) {
				return "hi", nil
			},
		}
		Expect(resolve("greeting", source)).Should(Equal("hi"))
		Expect(resolve("greeting", &account{})).Should(BeNil())
	})

	It("propagates errors from functions", func() {
		failure := errors.New("unavailable")
		source := map[string]interface{}{
			"login": func(ctx context.Context) (interface{}, error) {
				return nil, failure
			},
		}
		_, err := resolve("login", source)
		Expect(err).Should(Equal(failure))
	})

	It("rejects functions of unexpected signatures", func() {
		source := map[string]interface{}{
			"login": func() string { return "heidi" },
		}
		_, err := resolve("login", source)
		Expect(err).Should(MatchError(ContainSubstring("unable to call for resolving Account.login")))
	})

	It("fails when nothing matches", func() {
		_, err := resolve("internal", &account{internal: "secret"})
		Expect(err).Should(MatchError(ContainSubstring(`default resolver cannot resolve value for "Account.internal"`)))

		_, err = resolve("login", 42)
		Expect(err).Should(MatchError(ContainSubstring(`default resolver cannot resolve value for "Account.login"`)))
	})
})
