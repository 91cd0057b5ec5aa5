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

package graphql

import (
	"fmt"
	"regexp"
	"sort"
)

//===----------------------------------------------------------------------------------------====//
// Name Validation
//===----------------------------------------------------------------------------------------====//

var nameRegExp = regexp.MustCompile("^[_a-zA-Z][_a-zA-Z0-9]*$")

// AssertValidName returns an error if name is not a valid GraphQL name. Names beginning with "__"
// are reserved for introspection.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
func AssertValidName(name string) error {
	if len(name) > 1 && name[0] == '_' && name[1] == '_' {
		return NewError(
			fmt.Sprintf(`Name "%s" must not begin with "__", which is reserved by GraphQL introspection.`, name),
			ErrKindDefinition)
	}
	if !nameRegExp.MatchString(name) {
		return NewError(
			fmt.Sprintf(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "%s" does not.`, name),
			ErrKindDefinition)
	}
	return nil
}

func sortedExtensionKeys(extensions ErrorExtensions) []string {
	keys := make([]string, 0, len(extensions))
	for k := range extensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
