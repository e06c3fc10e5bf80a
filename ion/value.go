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

import "sort"

// A Dict maps names to values. Iteration over a Dict is always performed in
// sorted key order; see Keys.
type Dict map[string]Value

// A Row is one table row: an ordered sequence of string-typed cells. Rows of
// the same section may differ in cell count.
type Row []Value

// A Value is a single typed Ion value. String contents are fully unescaped
// text. Arrays and dictionaries nest to arbitrary depth. The zero Value has
// NoType.
type Value struct {
	typ  Type
	text string
	i    int64
	f    float64
	b    bool
	arr  []Value
	dict Dict
}

// NewString returns a string Value.
func NewString(v string) Value {
	return Value{typ: StringType, text: v}
}

// NewInt returns an integer Value.
func NewInt(v int64) Value {
	return Value{typ: IntType, i: v}
}

// NewFloat returns a float Value.
func NewFloat(v float64) Value {
	return Value{typ: FloatType, f: v}
}

// NewBool returns a boolean Value.
func NewBool(v bool) Value {
	return Value{typ: BoolType, b: v}
}

// NewArray returns an array Value holding the given values.
func NewArray(v []Value) Value {
	return Value{typ: ArrayType, arr: v}
}

// NewDict returns a dictionary Value holding the given mapping.
func NewDict(v Dict) Value {
	return Value{typ: DictType, dict: v}
}

// Type returns the type of this value.
func (v Value) Type() Type {
	return v.typ
}

// AsString returns the string contents of a string value.
func (v Value) AsString() (string, bool) {
	if v.typ != StringType {
		return "", false
	}
	return v.text, true
}

// AsInt returns the value of an integer value.
func (v Value) AsInt() (int64, bool) {
	if v.typ != IntType {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the value of a float value.
func (v Value) AsFloat() (float64, bool) {
	if v.typ != FloatType {
		return 0, false
	}
	return v.f, true
}

// AsBool returns the value of a boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.typ != BoolType {
		return false, false
	}
	return v.b, true
}

// AsArray returns the elements of an array value.
func (v Value) AsArray() ([]Value, bool) {
	if v.typ != ArrayType {
		return nil, false
	}
	return v.arr, true
}

// AsDict returns the mapping of a dictionary value.
func (v Value) AsDict() (Dict, bool) {
	if v.typ != DictType {
		return nil, false
	}
	return v.dict, true
}

// Get looks up a key in a dictionary value. It is not-ok for any other type.
func (v Value) Get(name string) (Value, bool) {
	if v.typ != DictType {
		return Value{}, false
	}
	nv, ok := v.dict[name]
	return nv, ok
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case StringType:
		return v.text == o.text
	case IntType:
		return v.i == o.i
	case FloatType:
		return v.f == o.f
	case BoolType:
		return v.b == o.b
	case ArrayType:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case DictType:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for k, vv := range v.dict {
			ov, ok := o.dict[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	}
	return true
}

// String renders the value in plain (unquoted) form, the form used for table
// cells: strings are emitted without surrounding quotes, with backslash,
// newline, tab and the pipe delimiter escaped.
func (v Value) String() string {
	return string(appendValue(nil, v, false))
}

// Text renders the value in quoted form, the form used for dictionary
// entries: strings are wrapped in double quotes with backslash, newline and
// the quote character escaped.
func (v Value) Text() string {
	return string(appendValue(nil, v, true))
}

// Get looks up a value by key.
func (d Dict) Get(name string) (Value, bool) {
	v, ok := d[name]
	return v, ok
}

// Keys returns the dictionary's keys in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
