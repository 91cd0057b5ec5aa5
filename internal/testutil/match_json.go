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

package testutil

import (
	"fmt"
	"reflect"

	"github.com/json-iterator/go"
	"github.com/kylelemons/godebug/pretty"
	"github.com/onsi/gomega/types"
)

type encodeToJSONMatcher struct {
	expected string

	// Set by Match for reporting.
	diff string
}

// EncodeToJSON returns a Gomega matcher that serializes actual value with json-iterator and
// compares the result against the expected JSON document. Both sides are decoded into generic
// values before comparison so key order and whitespace don't matter. Actual may also be a []byte
// or a string which holds encoded JSON.
func EncodeToJSON(expected string) types.GomegaMatcher {
	return &encodeToJSONMatcher{
		expected: expected,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *encodeToJSONMatcher) Match(actual interface{}) (success bool, err error) {
	var encodedActual []byte
	switch actual := actual.(type) {
	case []byte:
		encodedActual = actual
	case string:
		encodedActual = []byte(actual)
	default:
		encodedActual, err = jsoniter.Marshal(actual)
		if err != nil {
			return false, fmt.Errorf("EncodeToJSON matcher cannot encode actual into JSON: %s", err)
		}
	}

	var decodedActual, decodedExpected interface{}
	if err := jsoniter.Unmarshal(encodedActual, &decodedActual); err != nil {
		return false, fmt.Errorf("EncodeToJSON matcher cannot decode actual value: %s", err)
	}
	if err := jsoniter.Unmarshal([]byte(matcher.expected), &decodedExpected); err != nil {
		return false, fmt.Errorf("EncodeToJSON matcher cannot decode expected value: %s", err)
	}

	matcher.diff = pretty.Compare(decodedActual, decodedExpected)
	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *encodeToJSONMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nto encode to JSON value as\n\t%s\ndiff (-actual +expected):\n%s",
		actual, matcher.expected, matcher.diff)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *encodeToJSONMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nnot to encode to JSON value as\n\t%s", actual, matcher.expected)
}
