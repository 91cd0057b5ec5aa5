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

// Package graphql provides the finalized GraphQL type system produced by package nexus. Values in
// this package describe named types (Scalar, Object, Interface, Union, Enum and InputObject), the
// wrapping types (List and NonNull) and the schema that ties them together.
//
// Deferred Type References
//
// A field never holds its type directly. It holds a LazyType, a cell that knows the name of the
// referenced type and a thunk that turns that name into a Type on first use. Because the thunk is
// only invoked when a consumer asks for the type (or when the builder forces every cell once the
// whole graph exists), types that depend on each other, or on themselves, can be created without
// any special ordering.
//
// Wrapping
//
// The non-null and list modifiers of a field, argument or input field are described by a Wrapping
// value. Wrapping.Wrap applies the modifiers around a named type; WrappingOf performs the inverse.
//
// Immutability
//
// Types are assumed to be immutable after creation. Once a schema has been built it may be read
// from any number of goroutines without synchronization.
package graphql
