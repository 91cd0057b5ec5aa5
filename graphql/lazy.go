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
	"sync"
)

// TypeThunk produces the type referenced by a LazyType.
type TypeThunk func() (Type, error)

// LazyType is a deferred reference to a named type. The referenced type is computed by the thunk on
// first call to Resolve and cached afterwards, including a failure. It is safe for concurrent use.
type LazyType struct {
	name  string
	thunk TypeThunk

	once sync.Once
	t    Type
	err  error
}

// NewLazyType creates a LazyType that refers to the type with the given name.
func NewLazyType(name string, thunk TypeThunk) *LazyType {
	return &LazyType{
		name:  name,
		thunk: thunk,
	}
}

// ResolvedType wraps an existing type into an already resolved LazyType.
func ResolvedType(t Type) *LazyType {
	lt := &LazyType{
		t: t,
	}
	if named, ok := NamedTypeOf(t).(TypeWithName); ok {
		lt.name = named.Name()
	}
	// Consume the once so the thunk is never consulted.
	lt.once.Do(func() {})
	return lt
}

// Name returns the name of the referenced type. It is known without resolving the reference.
func (lt *LazyType) Name() string {
	return lt.name
}

// Resolve forces the reference.
func (lt *LazyType) Resolve() (Type, error) {
	lt.once.Do(func() {
		if lt.thunk == nil {
			lt.err = NewError(fmt.Sprintf(`Type reference "%s" has nothing to resolve with.`, lt.name), ErrKindInternal)
			return
		}
		lt.t, lt.err = lt.thunk()
		// Release closure.
		lt.thunk = nil
	})
	return lt.t, lt.err
}

// Type returns the referenced type or nil if resolution fails.
func (lt *LazyType) Type() Type {
	t, err := lt.Resolve()
	if err != nil {
		return nil
	}
	return t
}
