/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package ion

// A Type represents the type of an Ion Value.
type Type uint8

const (
	// NoType is the type of the zero Value.
	NoType Type = iota

	// StringType is the type of a quoted string value or a raw table cell.
	StringType

	// IntType is the type of a 64-bit signed integer value.
	IntType

	// FloatType is the type of a 64-bit floating-point value.
	FloatType

	// BoolType is the type of a boolean, true or false.
	BoolType

	// ArrayType is the type of an ordered sequence of values.
	ArrayType

	// DictType is the type of a mapping of names to values, ordered by name.
	DictType
)

// String implements fmt.Stringer for Type.
func (t Type) String() string {
	switch t {
	case NoType:
		return "<no type>"
	case StringType:
		return "string"
	case IntType:
		return "integer"
	case FloatType:
		return "float"
	case BoolType:
		return "boolean"
	case ArrayType:
		return "array"
	case DictType:
		return "dictionary"
	default:
		return "<???>"
	}
}
