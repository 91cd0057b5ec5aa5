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

	"github.com/graphql-nexus/nexus-sub000/graphql"
	"github.com/graphql-nexus/nexus-sub000/nexus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Composition", func() {
	buildError := func(types ...nexus.Definition) error {
		_, err := nexus.Build(&nexus.SchemaConfig{Types: types})
		Expect(err).Should(HaveOccurred())
		return err
	}

	Describe("Mix", func() {
		It("inserts the members at the position of the mix", func() {
			result := mustBuild(
				stringObject("Source", "a", "c"),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Target",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.String("A")
						t.Mix(nexus.TypeName("Source"))
						t.String("C")
					},
				}),
			)

			Expect(fieldNames(result.Types["Target"])).Should(Equal([]string{"A", "a", "c", "C"}))
		})

		It("applies Pick and then Omit", func() {
			result := mustBuild(
				stringObject("Source", "a", "b", "c"),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Target",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Mix(nexus.TypeName("Source"), nexus.MixOptions{
							Pick: []string{"a", "c"},
							Omit: []string{"c"},
						})
					},
				}),
			)

			Expect(fieldNames(result.Types["Target"])).Should(Equal([]string{"a"}))
		})

		It("keeps the source order regardless of the order in Pick", func() {
			result := mustBuild(
				stringObject("Source", "a", "b", "c"),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Target",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Mix(nexus.TypeName("Source"), nexus.MixOptions{Pick: []string{"c", "a"}})
					},
				}),
			)

			Expect(fieldNames(result.Types["Target"])).Should(Equal([]string{"a", "c"}))
		})

		It("lets the later member win and keeps the first position on collision", func() {
			result := mustBuild(
				stringObject("Source", "id", "name"),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Target",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Int("name")
						t.Mix(nexus.TypeName("Source"))
						t.Boolean("id")
					},
				}),
			)

			target := result.Types["Target"]
			Expect(fieldNames(target)).Should(Equal([]string{"name", "id"}))
			Expect(fieldType(target, "name")).Should(Equal("String"))
			Expect(fieldType(target, "id")).Should(Equal("Boolean"))
		})

		It("copies the members of an interface without implementing it", func() {
			result := mustBuild(
				nexus.InterfaceType(&nexus.InterfaceConfig{
					Name: "Node",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.ID("id")
					},
				}),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "User",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Mix(nexus.TypeName("Node"))
					},
				}),
			)

			user := result.Types["User"].(*graphql.Object)
			Expect(fieldNames(user)).Should(Equal([]string{"id"}))
			Expect(user.Interfaces()).Should(BeEmpty())
		})

		It("copies resolvers and arguments with the fields", func() {
			resolver := &staticResolver{"hello"}
			result := mustBuild(
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Source",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.String("greet", nexus.FieldConfig{
							Resolve: resolver,
							Args:    []nexus.ArgConfig{nexus.StringArg("name")},
						})
					},
				}),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Target",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Mix(nexus.TypeName("Source"))
					},
				}),
			)

			source := result.Types["Source"].(*graphql.Object).Field("greet")
			target := result.Types["Target"].(*graphql.Object).Field("greet")
			Expect(target.HasResolver()).Should(BeTrue())
			Expect(target.Resolver()).Should(BeIdenticalTo(source.Resolver()))
			Expect(target.Resolver()).Should(BeIdenticalTo(resolver))
			Expect(target.Args()).Should(HaveLen(1))
			Expect(target.Arg("name").Type().String()).Should(Equal("String!"))
		})

		It("mixes input objects", func() {
			result := mustBuild(
				nexus.InputObjectType(&nexus.InputObjectConfig{
					Name: "Paging",
					Definition: func(t *nexus.InputDefinitionBlock) {
						t.Int("first")
						t.String("after", nexus.InputFieldConfig{Nullable: nexus.Bool(true)})
					},
				}),
				nexus.InputObjectType(&nexus.InputObjectConfig{
					Name: "UserFilter",
					Definition: func(t *nexus.InputDefinitionBlock) {
						t.String("name")
						t.Mix(nexus.TypeName("Paging"), nexus.MixOptions{Omit: []string{"after"}})
					},
				}),
			)

			filter := result.Types["UserFilter"].(*graphql.InputObject)
			var names []string
			for _, field := range filter.Fields() {
				names = append(names, field.Name())
			}
			Expect(names).Should(Equal([]string{"name", "first"}))
			Expect(filter.Field("first").Type().String()).Should(Equal("Int!"))
		})

		It("mixes enums", func() {
			result := mustBuild(
				nexus.EnumType(&nexus.EnumConfig{
					Name:    "Base",
					Members: []string{"READ", "WRITE", "ADMIN"},
				}),
				nexus.EnumType(&nexus.EnumConfig{
					Name: "Role",
					Definition: func(t *nexus.EnumDefinitionBlock) {
						t.Value("GUEST")
						t.Mix(nexus.TypeName("Base"), nexus.MixOptions{Omit: []string{"ADMIN"}})
					},
				}),
			)

			Expect(enumValueNames(result.Types["Role"])).Should(Equal([]string{"GUEST", "READ", "WRITE"}))
		})

		It("keeps internal values of mixed enum values", func() {
			result := mustBuild(
				nexus.EnumType(&nexus.EnumConfig{
					Name: "Base",
					Definition: func(t *nexus.EnumDefinitionBlock) {
						t.Value("ONE", nexus.EnumValueConfig{Value: 1})
						t.Value("NONE", nexus.EnumValueConfig{Value: graphql.NilEnumInternalValue})
					},
				}),
				nexus.EnumType(&nexus.EnumConfig{
					Name: "Derived",
					Definition: func(t *nexus.EnumDefinitionBlock) {
						t.Mix(nexus.TypeName("Base"))
					},
				}),
			)

			derived := result.Types["Derived"].(*graphql.Enum)
			Expect(derived.Value("ONE").Value()).Should(Equal(1))
			Expect(derived.Value("NONE").Value()).Should(BeNil())
		})

		It("fails when an enum is left without values", func() {
			err := buildError(
				nexus.EnumType(&nexus.EnumConfig{
					Name:    "Base",
					Members: []string{"A"},
				}),
				nexus.EnumType(&nexus.EnumConfig{
					Name: "Empty",
					Definition: func(t *nexus.EnumDefinitionBlock) {
						t.Mix(nexus.TypeName("Base"), nexus.MixOptions{Omit: []string{"A"}})
					},
				}),
			)
			Expect(err).Should(MatchError(ContainSubstring("Enum type Empty must define one or more values.")))
		})

		It("fails when an object is left without fields", func() {
			err := buildError(
				stringObject("Source", "a"),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Empty",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Mix(nexus.TypeName("Source"), nexus.MixOptions{Pick: []string{}})
					},
				}),
			)
			Expect(err).Should(MatchError(ContainSubstring(`Type "Empty" must define one or more fields.`)))
		})

		It("mixes unions", func() {
			result := mustBuild(
				stringObject("Post", "title"),
				stringObject("User", "name"),
				stringObject("Comment", "text"),
				nexus.UnionType(&nexus.UnionConfig{
					Name: "Content",
					Definition: func(t *nexus.UnionDefinitionBlock) {
						t.Members(nexus.TypeName("Post"), nexus.TypeName("Comment"))
					},
				}),
				nexus.UnionType(&nexus.UnionConfig{
					Name: "SearchResult",
					Definition: func(t *nexus.UnionDefinitionBlock) {
						t.Members(nexus.TypeName("User"))
						t.Mix(nexus.TypeName("Content"), nexus.MixOptions{Pick: []string{"Post"}})
					},
				}),
			)

			union := result.Types["SearchResult"].(*graphql.Union)
			Expect(union.MemberNames()).Should(Equal([]string{"User", "Post"}))
		})

		DescribeKindMismatch := func(description string, expected string, types ...nexus.Definition) {
			It(description, func() {
				Expect(buildError(types...)).Should(MatchError(ContainSubstring(expected)))
			})
		}

		DescribeKindMismatch("rejects mixing an enum into an object",
			`Type "User" cannot mix in ENUM "Role" which has no fields.`,
			nexus.EnumType(&nexus.EnumConfig{Name: "Role", Members: []string{"ADMIN"}}),
			nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.String("name")
					t.Mix(nexus.TypeName("Role"))
				},
			}))

		DescribeKindMismatch("rejects mixing an object into an input object",
			`InputObject "Filter" can only mix in INPUT_OBJECT but "User" is OBJECT.`,
			stringObject("User", "name"),
			nexus.InputObjectType(&nexus.InputObjectConfig{
				Name: "Filter",
				Definition: func(t *nexus.InputDefinitionBlock) {
					t.Mix(nexus.TypeName("User"))
				},
			}))

		DescribeKindMismatch("rejects mixing a scalar into an enum",
			`Enum "Role" can only mix in ENUM but "String" is SCALAR.`,
			nexus.EnumType(&nexus.EnumConfig{
				Name: "Role",
				Definition: func(t *nexus.EnumDefinitionBlock) {
					t.Members("ADMIN")
					t.Mix(nexus.TypeName("String"))
				},
			}))

		DescribeKindMismatch("rejects mixing an object into a union",
			`Union "Result" can only mix in UNION but "User" is OBJECT.`,
			stringObject("User", "name"),
			nexus.UnionType(&nexus.UnionConfig{
				Name: "Result",
				Definition: func(t *nexus.UnionDefinitionBlock) {
					t.Mix(nexus.TypeName("User"))
				},
			}))
	})

	Describe("Implements", func() {
		node := func() *nexus.InterfaceTypeDef {
			return nexus.InterfaceType(&nexus.InterfaceConfig{
				Name: "Node",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.ID("id", nexus.FieldConfig{Nullable: nexus.Bool(false)})
				},
			})
		}

		It("copies the fields and records the interface", func() {
			result := mustBuild(
				node(),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "User",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Implements(nexus.TypeName("Node"))
						t.String("name")
					},
				}),
			)

			user := result.Types["User"].(*graphql.Object)
			Expect(fieldNames(user)).Should(Equal([]string{"id", "name"}))
			Expect(fieldType(user, "id")).Should(Equal("ID!"))
			Expect(user.Interfaces()).Should(HaveLen(1))
			Expect(user.Interfaces()[0]).Should(BeIdenticalTo(result.Types["Node"]))
		})

		It("implements interfaces transitively", func() {
			result := mustBuild(
				node(),
				nexus.InterfaceType(&nexus.InterfaceConfig{
					Name: "Resource",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Implements(nexus.TypeName("Node"))
						t.String("url")
					},
				}),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Image",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Implements(nexus.TypeName("Resource"))
						t.Int("width")
					},
				}),
			)

			image := result.Types["Image"].(*graphql.Object)
			Expect(fieldNames(image)).Should(Equal([]string{"id", "url", "width"}))
			Expect(image.Implements("Resource")).Should(BeTrue())
			Expect(image.Implements("Node")).Should(BeTrue())

			resource := result.Types["Resource"].(*graphql.Interface)
			Expect(resource.Interfaces()).Should(HaveLen(1))
		})

		It("records each interface once", func() {
			result := mustBuild(
				node(),
				nexus.InterfaceType(&nexus.InterfaceConfig{
					Name: "Resource",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Implements(nexus.TypeName("Node"))
						t.String("url")
					},
				}),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "Image",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Implements(nexus.TypeName("Node"), nexus.TypeName("Resource"))
					},
				}),
			)

			image := result.Types["Image"].(*graphql.Object)
			Expect(image.Interfaces()).Should(HaveLen(2))
			Expect(fieldNames(image)).Should(Equal([]string{"id", "url"}))
		})

		It("rejects implementing a non-interface type", func() {
			err := buildError(
				stringObject("Base", "a"),
				nexus.ObjectType(&nexus.ObjectConfig{
					Name: "User",
					Definition: func(t *nexus.OutputDefinitionBlock) {
						t.Implements(nexus.TypeName("Base"))
					},
				}),
			)
			Expect(err).Should(MatchError(ContainSubstring(
				`Type "User" cannot implement "Base" which is OBJECT rather than INTERFACE.`)))
		})
	})

	Describe("Modify", func() {
		var (
			nodeResolver graphql.FieldResolver
			node         *nexus.InterfaceTypeDef
		)

		BeforeEach(func() {
			nodeResolver = &staticResolver{"1"}
			node = nexus.InterfaceType(&nexus.InterfaceConfig{
				Name: "Node",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.ID("id", nexus.FieldConfig{
						Description: "Unique identifier",
						Nullable:    nexus.Bool(false),
						Resolve:     nodeResolver,
						Args:        []nexus.ArgConfig{nexus.BooleanArg("global")},
					})
					t.Field("related", nexus.FieldConfig{
						Type: nexus.TypeName("Node"),
						List: nexus.ListOf(),
					})
					t.Field("children", nexus.FieldConfig{
						Type:     nexus.TypeName("Node"),
						List:     nexus.ListOf(),
						Nullable: nexus.Bool(false),
					})
				},
			})
		})

		implementNode := func(modify func(t *nexus.OutputDefinitionBlock)) *nexus.ObjectTypeDef {
			return nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					modify(t)
				},
			})
		}

		It("changes only the given parts of an inherited field", func() {
			result := mustBuild(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.Modify("id", nexus.FieldModification{Description: "User ID"})
				},
			}))

			inherited := result.Types["Node"].(*graphql.Interface).Field("id")
			modified := result.Types["User"].(*graphql.Object).Field("id")

			Expect(modified.Description()).Should(Equal("User ID"))
			Expect(modified.Resolver()).Should(BeIdenticalTo(nodeResolver))
			Expect(inherited.Resolver()).Should(BeIdenticalTo(nodeResolver))
			Expect(modified.HasResolver()).Should(BeTrue())
			Expect(modified.NamedType()).Should(BeIdenticalTo(inherited.NamedType()))
			Expect(modified.Wrapping()).Should(Equal(inherited.Wrapping()))
			Expect(modified.Args()).Should(HaveLen(1))
			Expect(modified.Args()[0].Name()).Should(Equal("global"))
		})

		It("changes the nullability of an inherited field", func() {
			result := mustBuild(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.Modify("related", nexus.FieldModification{Nullable: nexus.Bool(false)})
				},
			}))

			Expect(fieldType(result.Types["Node"], "related")).Should(Equal("[Node]"))
			Expect(fieldType(result.Types["User"], "related")).Should(Equal("[Node]!"))
		})

		It("changes the type of an inherited field", func() {
			result := mustBuild(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.Modify("related", nexus.FieldModification{
						Type:     nexus.TypeName("User"),
						List:     nexus.ListOf(),
						Nullable: nexus.Bool(false),
					})
				},
			}))

			Expect(fieldType(result.Types["User"], "related")).Should(Equal("[User!]!"))
		})

		It("keeps the inherited modifiers when only the type changes", func() {
			result := mustBuild(node, implementNode(func(t *nexus.OutputDefinitionBlock) {
				t.Modify("children", nexus.FieldModification{Type: nexus.TypeName("User")})
				t.Modify("related", nexus.FieldModification{Type: nexus.TypeName("User")})
			}))

			Expect(fieldType(result.Types["Node"], "children")).Should(Equal("[Node!]!"))
			Expect(fieldType(result.Types["User"], "children")).Should(Equal("[User!]!"))
			Expect(fieldType(result.Types["User"], "related")).Should(Equal("[User]"))
		})

		It("keeps the inherited null-ness when only the list nesting changes", func() {
			result := mustBuild(node, implementNode(func(t *nexus.OutputDefinitionBlock) {
				t.Modify("related", nexus.FieldModification{List: nexus.ListLevels(true, false)})
				t.Modify("children", nexus.FieldModification{List: nexus.ListOf()})
			}))

			Expect(fieldType(result.Types["User"], "related")).Should(Equal("[[Node]!]"))
			Expect(fieldType(result.Types["User"], "children")).Should(Equal("[Node!]!"))
		})

		DescribeTable("changes the nullability of list items",
			func(mod nexus.FieldModification, expected string) {
				result := mustBuild(node, implementNode(func(t *nexus.OutputDefinitionBlock) {
					t.Modify("related", mod)
				}))
				Expect(fieldType(result.Types["User"], "related")).Should(Equal(expected))
			},
			Entry("items only", nexus.FieldModification{
				ListItemNullable: nexus.Bool(false),
			}, "[Node!]"),
			Entry("items and the list", nexus.FieldModification{
				Nullable:         nexus.Bool(false),
				ListItemNullable: nexus.Bool(false),
			}, "[Node!]!"),
			Entry("items with a new type", nexus.FieldModification{
				Type:             nexus.TypeName("User"),
				ListItemNullable: nexus.Bool(false),
			}, "[User!]"),
		)

		It("rejects changing the nullability of list items of a field which is not a list", func() {
			err := buildError(node, implementNode(func(t *nexus.OutputDefinitionBlock) {
				t.Modify("id", nexus.FieldModification{
					Nullable:         nexus.Bool(true),
					ListItemNullable: nexus.Bool(true),
				})
			}))
			Expect(err).Should(MatchError(ContainSubstring(
				`Cannot modify nullability of list items of "User.id" which is not a list.`)))
		})

		It("adds and replaces arguments", func() {
			result := mustBuild(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.Modify("id", nexus.FieldModification{
						Args: []nexus.ArgConfig{
							nexus.StringArg("format"),
							nexus.BooleanArg("global", nexus.ArgConfig{Nullable: nexus.Bool(true)}),
						},
					})
				},
			}))

			args := result.Types["User"].(*graphql.Object).Field("id").Args()
			Expect(args).Should(HaveLen(2))
			Expect(args[0].Name()).Should(Equal("global"))
			Expect(args[0].Type().String()).Should(Equal("Boolean"))
			Expect(args[1].Name()).Should(Equal("format"))
		})

		It("replaces the resolver", func() {
			result := mustBuild(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.Modify("id", nexus.FieldModification{Resolve: &staticResolver{"user-1"}})
				},
			}))

			field := result.Types["User"].(*graphql.Object).Field("id")
			value, err := field.Resolver().Resolve(context.Background(), nil, nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal("user-1"))
		})

		It("applies modifications after all members regardless of their position", func() {
			result := mustBuild(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Modify("id", nexus.FieldModification{Description: "User ID"})
					t.Implements(node)
				},
			}))

			Expect(result.Types["User"].(*graphql.Object).Field("id").Description()).Should(Equal("User ID"))
		})

		It("rejects modifying an unknown field", func() {
			err := buildError(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.Modify("name", nexus.FieldModification{Description: "Name"})
				},
			}))
			Expect(err).Should(MatchError(ContainSubstring(
				`Cannot modify field "User.name" which is not inherited from an interface.`)))
		})

		It("rejects modifying a field declared by the type itself", func() {
			err := buildError(node, nexus.ObjectType(&nexus.ObjectConfig{
				Name: "User",
				Definition: func(t *nexus.OutputDefinitionBlock) {
					t.Implements(node)
					t.ID("id")
					t.Modify("id", nexus.FieldModification{Description: "User ID"})
				},
			}))
			Expect(err).Should(MatchError(ContainSubstring(
				`Cannot modify field "User.id" which is not inherited from an interface.`)))
		})
	})
})
