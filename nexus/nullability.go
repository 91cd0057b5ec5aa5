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

// Bool returns a pointer to the given value. It is used to set the optional nullability options.
func Bool(v bool) *bool {
	return &v
}

// ListSpec describes the list nesting of a field, an argument or an input field.
type ListSpec struct {
	// levels[i] is true when the contents of the list at nesting level i (0 being the outermost)
	// are non-null. nil for a single list built with ListOf.
	levels []bool
}

// ListOf wraps the type in a single list. Whether the items are nullable follows the options of
// the field (see FieldConfig.ListItemNullable).
func ListOf() *ListSpec {
	return &ListSpec{}
}

// ListLevels wraps the type in nested lists, one per given value. A true value makes the contents
// of the list at that level non-null. The first value is for the outermost list. The outermost list
// itself is governed by the Nullable option of the field.
//
// For example, ListLevels(true, false) on a String field gives [[String]!]. Without any value it is
// the same as ListOf.
func ListLevels(levels ...bool) *ListSpec {
	if len(levels) == 0 {
		return ListOf()
	}
	return &ListSpec{
		levels: append([]bool{}, levels...),
	}
}

// Depth returns the number of list levels.
func (spec *ListSpec) Depth() int {
	if spec == nil {
		return 0
	}
	if spec.levels == nil {
		return 1
	}
	return len(spec.levels)
}

// NullabilityDefaults provides defaults for the values which don't specify nullability explicitly.
// A nil value leaves the decision to the next level of the cascade.
type NullabilityDefaults struct {
	// Nullable applies to a value that is not a list.
	Nullable *bool

	// ListNullable applies to the outermost list.
	ListNullable *bool

	// ListItemNullable applies to the items of a single list.
	ListItemNullable *bool
}

// NonNullConfig groups the defaults for output values (fields) and for input values (arguments and
// input fields). It can be given to a schema or to a type.
type NonNullConfig struct {
	Output NullabilityDefaults
	Input  NullabilityDefaults
}

func (config *NonNullConfig) defaults(isInput bool) *NullabilityDefaults {
	if config == nil {
		return nil
	}
	if isInput {
		return &config.Input
	}
	return &config.Output
}

// Built-in defaults: resolvers may omit a value unless required explicitly and arguments are
// required unless made optional explicitly.
var (
	builtinOutputDefaults = NullabilityDefaults{
		Nullable:         Bool(true),
		ListNullable:     Bool(true),
		ListItemNullable: Bool(true),
	}
	builtinInputDefaults = NullabilityDefaults{
		Nullable:         Bool(false),
		ListNullable:     Bool(false),
		ListItemNullable: Bool(false),
	}
)

// FieldNullability contains the nullability options given to a single field, argument or input
// field.
type FieldNullability struct {
	Nullable         *bool
	List             *ListSpec
	ListItemNullable *bool
}

// NullabilityPolicy decides the wrapping of a value with the following precedence: the options of
// the value, the defaults of the owning type, the defaults of the schema and the built-in defaults.
type NullabilityPolicy struct {
	// Schema contains the schema-wide defaults. Optional.
	Schema *NonNullConfig
}

// Wrap computes the list and non-null modifiers for a value.
func (policy NullabilityPolicy) Wrap(
	field FieldNullability,
	typeDefaults *NonNullConfig,
	isInput bool) graphql.Wrapping {

	chain := [...]*NullabilityDefaults{
		typeDefaults.defaults(isInput),
		policy.Schema.defaults(isInput),
		&builtinOutputDefaults,
	}
	if isInput {
		chain[2] = &builtinInputDefaults
	}

	// cascade returns the explicit option if it is given or the first default found in the chain.
	cascade := func(explicit *bool, pick func(*NullabilityDefaults) *bool) bool {
		if explicit != nil {
			return *explicit
		}
		for _, defaults := range chain {
			if defaults == nil {
				continue
			}
			if v := pick(defaults); v != nil {
				return *v
			}
		}
		// Unreachable as the built-in defaults are complete.
		return true
	}

	if field.List == nil {
		return graphql.Wrapping{
			NonNull: !cascade(field.Nullable, func(d *NullabilityDefaults) *bool { return d.Nullable }),
		}
	}

	wrapping := graphql.Wrapping{
		NonNull: !cascade(field.Nullable, func(d *NullabilityDefaults) *bool { return d.ListNullable }),
	}

	if field.List.levels != nil {
		wrapping.ListItemsNonNull = append([]bool{}, field.List.levels...)
		return wrapping
	}

	// A single list. The items follow the explicit item option, then the explicit option of the
	// field and then the defaults.
	itemExplicit := field.ListItemNullable
	if itemExplicit == nil {
		itemExplicit = field.Nullable
	}
	itemNullable := cascade(itemExplicit, func(d *NullabilityDefaults) *bool { return d.ListItemNullable })
	wrapping.ListItemsNonNull = []bool{!itemNullable}
	return wrapping
}
