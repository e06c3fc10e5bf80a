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

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Decode decodes the value into the given object, which must be a non-nil
// pointer. Struct fields map to dictionary keys via the `ion:"name"` tag,
// defaulting to the lower-cased field name; a field tagged `ion:"-"` is
// skipped. Dictionary keys with no matching field are ignored.
//
//	Go type                          Ion type
//	-----------------------------    ---------------
//	string                           string
//	bool                             boolean
//	int/uint sizes, float32/64       integer
//	float32/float64                  float
//	slice                            array
//	struct, map[string]T             dictionary
//	interface{}                      any (see Project)
func (v Value) Decode(target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("ion: decode target must be a non-nil pointer, got %T", target)
	}
	return decodeValue(v, rv.Elem())
}

// Decode decodes the section's dictionary into the given object; see
// Value.Decode for the mapping rules.
func (s *Section) Decode(target interface{}) error {
	return Value{typ: DictType, dict: s.Dict}.Decode(target)
}

// DecodeRows decodes the section's table into *[]T, skipping a
// header/separator pair if present. When T is a struct, cells are assigned
// to its exported fields in declaration order (fields tagged `ion:"-"` are
// skipped), converting string cells to the field's type. When T is a string
// slice, cells are copied verbatim.
func (s *Section) DecodeRows(target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("ion: decode rows target must be a non-nil pointer to a slice, got %T", target)
	}

	rows := s.RowsWithoutHeader()
	slice := rv.Elem()
	out := reflect.MakeSlice(slice.Type(), len(rows), len(rows))
	for i, row := range rows {
		if err := decodeRow(row, out.Index(i)); err != nil {
			return err
		}
	}
	slice.Set(out)
	return nil
}

func decodeValue(v Value, rv reflect.Value) error {
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		rv.Set(reflect.ValueOf(v.project()))
		return nil
	}

	switch v.typ {
	case StringType:
		if rv.Kind() != reflect.String {
			return decodeTypeError(v, rv)
		}
		rv.SetString(v.text)
		return nil

	case IntType:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.OverflowInt(v.i) {
				return fmt.Errorf("ion: integer %v overflows %v", v.i, rv.Type())
			}
			rv.SetInt(v.i)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if v.i < 0 || rv.OverflowUint(uint64(v.i)) {
				return fmt.Errorf("ion: integer %v overflows %v", v.i, rv.Type())
			}
			rv.SetUint(uint64(v.i))
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(v.i))
		default:
			return decodeTypeError(v, rv)
		}
		return nil

	case FloatType:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(v.f)
		default:
			return decodeTypeError(v, rv)
		}
		return nil

	case BoolType:
		if rv.Kind() != reflect.Bool {
			return decodeTypeError(v, rv)
		}
		rv.SetBool(v.b)
		return nil

	case ArrayType:
		if rv.Kind() != reflect.Slice {
			return decodeTypeError(v, rv)
		}
		out := reflect.MakeSlice(rv.Type(), len(v.arr), len(v.arr))
		for i, el := range v.arr {
			if err := decodeValue(el, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case DictType:
		switch rv.Kind() {
		case reflect.Struct:
			return decodeStruct(v.dict, rv)
		case reflect.Map:
			return decodeMap(v.dict, rv)
		default:
			return decodeTypeError(v, rv)
		}

	default:
		return decodeTypeError(v, rv)
	}
}

func decodeStruct(dict Dict, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Tag.Get("ion")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		v, ok := dict[name]
		if !ok {
			continue
		}
		if err := decodeValue(v, rv.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(dict Dict, rv reflect.Value) error {
	rt := rv.Type()
	if rt.Key().Kind() != reflect.String {
		return fmt.Errorf("ion: cannot decode dictionary into %v: map key must be a string", rt)
	}
	out := reflect.MakeMapWithSize(rt, len(dict))
	for k, v := range dict {
		ev := reflect.New(rt.Elem()).Elem()
		if err := decodeValue(v, ev); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(rt.Key()), ev)
	}
	rv.Set(out)
	return nil
}

func decodeRow(row Row, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), len(row), len(row))
		for j, cell := range row {
			text, _ := cell.AsString()
			if err := setCell(text, out.Index(j)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Struct:
		rt := rv.Type()
		j := 0
		for i := 0; i < rt.NumField() && j < len(row); i++ {
			f := rt.Field(i)
			if f.PkgPath != "" || f.Tag.Get("ion") == "-" {
				continue
			}
			text, _ := row[j].AsString()
			if err := setCell(text, rv.Field(i)); err != nil {
				return fmt.Errorf("ion: row cell %v (%v): %w", j, f.Name, err)
			}
			j++
		}
		return nil

	default:
		return fmt.Errorf("ion: cannot decode a row into %v", rv.Type())
	}
}

// setCell converts a raw string cell to the target's type.
func setCell(text string, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return fmt.Errorf("integer %v overflows %v", i, rv.Type())
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return err
		}
		if rv.OverflowUint(u) {
			return fmt.Errorf("integer %v overflows %v", u, rv.Type())
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported cell type %v", rv.Type())
	}
	return nil
}

func decodeTypeError(v Value, rv reflect.Value) error {
	return fmt.Errorf("ion: cannot decode %v into %v", v.typ, rv.Type())
}
