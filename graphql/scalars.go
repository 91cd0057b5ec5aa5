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
	"math"
	"strconv"
)

// The "type of internal value" for each built-in scalar are listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | boolean                         |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// The built-ins only carry result coercion. Input coercion of literals requires a query document
// which is outside of the type graph.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger      = "not an integer"
	coercionErrorIntegerTooLarge = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric      = "not a numeric value"
	coercionErrorNonBoolean      = "not a boolean value"
)

func unexpectedResultType(value interface{}) string {
	return fmt.Sprintf("unexpected result type `%T`", value)
}

func newCoercionError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		// Quote the string for pretty printing.
		value = strconv.Quote(v)
	}
	return NewError(fmt.Sprintf("%s cannot represent %v: %s", typeName, value, reason), ErrKindCoercion)
}

// toInt64 extracts a signed integer from any Go integer type. The second return value is false if
// value is not an integer or does not fit into int64.
func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	}
	return 0, false
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int

func serializeInt(value interface{}) (interface{}, error) {
	if v, ok := toInt64(value); ok {
		if v > math.MaxInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooLarge)
		} else if v < math.MinInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooSmall)
		}
		return int(v), nil
	}

	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil

	case float32, float64:
		f := toFloat64(v)
		// Make sure the conversion is lossless.
		i := int32(f)
		if float64(i) != f {
			return nil, newCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(i), nil

	case string:
		i, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, newCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(i), nil
	}

	return nil, newCoercionError("Int", value, unexpectedResultType(value))
}

func toFloat64(value interface{}) float64 {
	switch v := value.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return math.NaN()
}

var intTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric " +
		"values. Int can represent values between -(2^31) and 2^31 - 1.",
	Serialize: serializeInt,
})

// Int returns the GraphQL builtin Int type definition.
func Int() *Scalar {
	return intTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float

func serializeFloat(value interface{}) (interface{}, error) {
	if v, ok := toInt64(value); ok {
		return float64(v), nil
	}

	switch v := value.(type) {
	case bool:
		if v {
			return float64(1), nil
		}
		return float64(0), nil

	case float32, float64:
		f := toFloat64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return f, nil

	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, newCoercionError("Float", value, coercionErrorNonNumeric)
		} else if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newCoercionError("Float", f, coercionErrorNonNumeric)
		}
		return f, nil
	}

	return nil, newCoercionError("Float", value, unexpectedResultType(value))
}

var floatTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional " +
		"values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point). ",
	Serialize: serializeFloat,
})

// Float returns the GraphQL builtin Float type definition.
func Float() *Scalar {
	return floatTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String

func serializeString(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float32, float64:
		return strconv.FormatFloat(toFloat64(v), 'g', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	if v, ok := toInt64(value); ok {
		return strconv.FormatInt(v, 10), nil
	}

	return nil, newCoercionError("String", value, unexpectedResultType(value))
}

var stringTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
		"sequences. The String type is most often used by GraphQL to represent free-form human-" +
		"readable text.",
	Serialize: serializeString,
})

// String returns the GraphQL builtin String type definition.
func String() *Scalar {
	return stringTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean

func serializeBoolean(value interface{}) (interface{}, error) {
	if v, ok := toInt64(value); ok {
		return v != 0, nil
	}

	switch v := value.(type) {
	case bool:
		return v, nil
	case float32, float64:
		f := toFloat64(v)
		if math.IsNaN(f) {
			return nil, newCoercionError("Boolean", value, coercionErrorNonBoolean)
		}
		return f != 0, nil
	}

	return nil, newCoercionError("Boolean", value, unexpectedResultType(value))
}

var booleanTypeInstance = MustNewScalar(&ScalarConfig{
	Name:        "Boolean",
	Description: "The `Boolean` scalar type represents `true` or `false`.",
	Serialize:   serializeBoolean,
})

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() *Scalar {
	return booleanTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID

func serializeID(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	if v, ok := toInt64(value); ok {
		return strconv.FormatInt(v, 10), nil
	}

	return nil, newCoercionError("ID", value, unexpectedResultType(value))
}

var idTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to " +
		"refetch an object or as key for a cache. The ID type appears in a JSON " +
		"response as a String; however, it is not intended to be human-readable. " +
		"When expected as an input type, any string (such as `\"4\"`) or integer " +
		"(such as `4`) input value will be accepted as an ID.",
	Serialize: serializeID,
})

// ID returns the GraphQL builtin ID type definition.
func ID() *Scalar {
	return idTypeInstance
}

// StandardScalars returns the five built-in scalars in the order they are listed in the GraphQL
// specification.
func StandardScalars() []*Scalar {
	return []*Scalar{
		stringTypeInstance,
		intTypeInstance,
		floatTypeInstance,
		booleanTypeInstance,
		idTypeInstance,
	}
}

// IsStandardScalar returns true if the given name belongs to a built-in scalar.
func IsStandardScalar(name string) bool {
	switch name {
	case "String", "Int", "Float", "Boolean", "ID":
		return true
	}
	return false
}
