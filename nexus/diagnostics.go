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
	"fmt"
	"strings"

	"github.com/graphql-nexus/nexus-sub000/graphql"
	"github.com/graphql-nexus/nexus-sub000/internal/util"
)

// maxSuggestions limits the number of names suggested for a missing type.
const maxSuggestions = 5

// DuplicateTypeError is raised when two different declarations are registered under the same name.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf(
		`Schema must contain unique named types but contains multiple types named "%s".`, e.Name)
}

// MissingTypeError is raised when a referenced type is never declared.
type MissingTypeError struct {
	// Name of the missing type
	Name string

	// Suggestions are names of declared types that are similar to Name, the most similar first.
	Suggestions []string

	// ReferencedFrom describes where the reference is (e.g., "Post.author"). It may be empty.
	ReferencedFrom string
}

func (e *MissingTypeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, `Missing type "%s"`, e.Name)
	if len(e.ReferencedFrom) > 0 {
		fmt.Fprintf(&b, " referenced by %s", e.ReferencedFrom)
	}
	b.WriteByte('.')
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " Did you mean %s?", util.OrList(e.Suggestions, maxSuggestions, true))
	}
	return b.String()
}

// CompositionVia tells how a type is composed into another.
type CompositionVia uint8

// Enumeration of CompositionVia
const (
	CompositionMix CompositionVia = iota
	CompositionImplements
)

func (via CompositionVia) String() string {
	switch via {
	case CompositionMix:
		return "mix"
	case CompositionImplements:
		return "implements"
	}
	return "unknown composition"
}

// CircularCompositionError is raised when a type is composed, directly or through other types, into
// itself. It is the only kind of cycle that is an error.
type CircularCompositionError struct {
	// Cycle lists the names along the cycle. The first and the last are the same.
	Cycle []string

	// Via is the composition closing the cycle.
	Via CompositionVia
}

func (e *CircularCompositionError) Error() string {
	path := strings.Join(e.Cycle, " -> ")
	if e.Via == CompositionImplements {
		return fmt.Sprintf("Type %s cannot implement itself: %s.", e.Cycle[0], path)
	}
	return fmt.Sprintf("Circular composition is not allowed: %s.", path)
}

// newDiagnostic wraps one of the typed errors above in a graphql.Error.
func newDiagnostic(op graphql.Op, err error) error {
	return graphql.NewError(err.Error(), op, graphql.ErrKindDefinition, err)
}

// newDefinitionError creates a graphql.Error for a mistake in declarations.
func newDefinitionError(op graphql.Op, format string, args ...interface{}) error {
	return graphql.NewError(fmt.Sprintf(format, args...), op, graphql.ErrKindDefinition)
}

// missingType creates a MissingTypeError with names similar to the missing one taken from the given
// universe.
func missingType(name string, from string, universe []string) *MissingTypeError {
	suggestions := util.SuggestionList(name, universe)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return &MissingTypeError{
		Name:           name,
		Suggestions:    suggestions,
		ReferencedFrom: from,
	}
}
