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
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/graphql-nexus/nexus-sub000/graphql"
	"github.com/iancoleman/strcase"
)

// propertyTagName is the struct field tag that specifies the property name of a struct field.
//
//	type User struct {
//		Handle string `graphql:"login"`
//	}
//
// The value in field Handle is returned for fields reading property "login".
const propertyTagName = "graphql"

// propertyResolver is used when no resolver is given to a field. It resolves the field value to
// the value of the property in the source value or, if that is a function, to the result of calling
// it.
type propertyResolver struct {
	typeName  string
	fieldName string
	property  string

	// camelProperty is the name of the struct field or method to look for.
	camelProperty string
}

// propertyName returns the property read by the default resolver of a field.
func propertyName(fieldName string, property string) string {
	if len(property) > 0 {
		return property
	}
	return fieldName
}

func newPropertyResolver(typeName string, fieldName string, property string) graphql.FieldResolver {
	return &propertyResolver{
		typeName:      typeName,
		fieldName:     fieldName,
		property:      property,
		camelProperty: strcase.ToCamel(property),
	}
}

// Resolve implements graphql.FieldResolver.
func (resolver *propertyResolver) Resolve(
	ctx context.Context,
	source interface{},
	args map[string]interface{}) (interface{}, error) {

	value := reflect.ValueOf(source)
	if !value.IsValid() {
		return nil, nil
	}

	// If source is a pointer, resolve value from what it points to.
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		return resolver.resolveFromStruct(ctx, source, value, args)

	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			break
		}
		// A missing key is a null value.
		v := value.MapIndex(reflect.ValueOf(resolver.property).Convert(value.Type().Key()))
		if !v.IsValid() {
			return nil, nil
		}
		return resolver.resolveFromValueOrFunc(ctx, source, fmt.Sprintf("map[%s]", resolver.property), v, args)
	}

	return nil, resolver.unresolvedError()
}

func (resolver *propertyResolver) unresolvedError() error {
	return graphql.NewError(fmt.Sprintf(`default resolver cannot resolve value for "%s.%s"`,
		resolver.typeName, resolver.fieldName))
}

func (resolver *propertyResolver) resolveFromFunc(
	ctx context.Context,
	source interface{},
	funcName string,
	f interface{},
	args map[string]interface{}) (interface{}, error) {

	switch f := f.(type) {
	case func(ctx context.Context) (interface{}, error):
		return f(ctx)

	case func(ctx context.Context, source interface{}) (interface{}, error):
		return f(ctx, source)

	case func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error):
		return f(ctx, source, args)

	default:
		return nil, graphql.NewError(fmt.Sprintf(
			`default resolver found %s but is unable to call for resolving %s.%s because of `+
				`unexpected type. Must be one of:
	func(ctx context.Context) (interface{}, error)
	func(ctx context.Context, source interface{}) (interface{}, error)
	func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error), but got
	%T`, funcName, resolver.typeName, resolver.fieldName, f))
	}
}

func (resolver *propertyResolver) resolveFromValueOrFunc(
	ctx context.Context,
	source interface{},
	valueName string,
	value reflect.Value,
	args map[string]interface{}) (interface{}, error) {

	// value could be a function.
	if value.Kind() == reflect.Func {
		if value.IsNil() {
			return nil, nil
		}
		return resolver.resolveFromFunc(ctx, source, valueName, value.Interface(), args)
	}
	return value.Interface(), nil
}

func (resolver *propertyResolver) resolveFromStruct(
	ctx context.Context,
	source interface{},
	sourceValue reflect.Value,
	args map[string]interface{}) (interface{}, error) {

	queue := []reflect.Value{sourceValue}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		sourceType := current.Type()
		numFields := current.NumField()
		for i := 0; i < numFields; i++ {
			field := sourceType.Field(i)

			// Handle anonymous contained structs.
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				queue = append(queue, current.Field(i))
				continue
			}

			// Match name specified by tag.
			tagOptions := strings.Split(field.Tag.Get(propertyTagName), ",")
			if len(field.PkgPath) == 0 && tagOptions[0] == resolver.property {
				return resolver.resolveFromValueOrFunc(
					ctx, source, fmt.Sprintf("%s.%s", sourceType.Name(), field.Name), current.Field(i), args)
			}
		}

		// Try finding the exported field that matches the property in CamelCase.
		if field, ok := sourceType.FieldByName(resolver.camelProperty); ok && len(field.PkgPath) == 0 {
			return resolver.resolveFromValueOrFunc(
				ctx, source, fmt.Sprintf("%s.%s", sourceType.Name(), field.Name),
				current.FieldByIndex(field.Index), args)
		}
	}

	// Try finding the method that matches the property in CamelCase. Note that this is not in the
	// loop.
	if sourceValue.CanAddr() {
		sourceValue = sourceValue.Addr()
	} else if ptr := reflect.ValueOf(source); ptr.Kind() == reflect.Ptr {
		sourceValue = ptr
	}

	method := sourceValue.MethodByName(resolver.camelProperty)
	if method.IsValid() {
		return resolver.resolveFromFunc(
			ctx, source, fmt.Sprintf("%s.%s", sourceValue.Type(), resolver.camelProperty),
			method.Interface(), args)
	}

	return nil, resolver.unresolvedError()
}
