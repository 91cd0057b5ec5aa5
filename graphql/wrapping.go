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
	"strings"
)

// Wrapping describes the list and non-null modifiers applied around a named type.
//
// ListItemsNonNull has one entry per list level, outermost first. Entry i tells whether the
// contents of list level i are non-null. NonNull applies to the outermost value: the outermost
// list if there is one, the named type otherwise.
//
// For example, the wrapping of [[T!]]! is
//
//	Wrapping{NonNull: true, ListItemsNonNull: []bool{false, true}}
type Wrapping struct {
	NonNull          bool
	ListItemsNonNull []bool
}

// IsList returns true if the wrapping has at least one list level.
func (w Wrapping) IsList() bool {
	return len(w.ListItemsNonNull) > 0
}

// Depth returns the number of list levels.
func (w Wrapping) Depth() int {
	return len(w.ListItemsNonNull)
}

// Wrap applies the wrapping to a named type, building from the inside out.
func (w Wrapping) Wrap(named Type) (Type, error) {
	var (
		t   = named
		err error
	)

	for i := len(w.ListItemsNonNull) - 1; i >= 0; i-- {
		if w.ListItemsNonNull[i] {
			if t, err = NewNonNullOf(t); err != nil {
				return nil, err
			}
		}
		if t, err = NewListOf(t); err != nil {
			return nil, err
		}
	}

	if w.NonNull {
		if t, err = NewNonNullOf(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Decorate prints the wrapping around a type name in SDL notation, such as "[[User!]]!".
func (w Wrapping) Decorate(name string) string {
	var b strings.Builder
	for range w.ListItemsNonNull {
		b.WriteByte('[')
	}
	b.WriteString(name)
	for i := len(w.ListItemsNonNull) - 1; i >= 0; i-- {
		if w.ListItemsNonNull[i] {
			b.WriteByte('!')
		}
		b.WriteByte(']')
	}
	if w.NonNull {
		b.WriteByte('!')
	}
	return b.String()
}

// Equal returns true if both wrappings describe the same modifiers.
func (w Wrapping) Equal(other Wrapping) bool {
	if w.NonNull != other.NonNull || len(w.ListItemsNonNull) != len(other.ListItemsNonNull) {
		return false
	}
	for i := range w.ListItemsNonNull {
		if w.ListItemsNonNull[i] != other.ListItemsNonNull[i] {
			return false
		}
	}
	return true
}

// WrappingOf computes the Wrapping of a type and returns the named type underneath.
func WrappingOf(t Type) (Type, Wrapping) {
	var w Wrapping

	if nonNull, ok := t.(*NonNull); ok {
		w.NonNull = true
		t = nonNull.InnerType()
	}

	for {
		list, ok := t.(*List)
		if !ok {
			break
		}
		t = list.ElementType()
		nonNull, ok := t.(*NonNull)
		if ok {
			t = nonNull.InnerType()
		}
		w.ListItemsNonNull = append(w.ListItemsNonNull, ok)
	}

	return t, w
}
