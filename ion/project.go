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

// Project converts the document into plain Go values (string, int64,
// float64, bool, []interface{}, map[string]interface{}) suitable for JSON or
// YAML encoding: a map of section name to section projection.
func (d *Document) Project() map[string]interface{} {
	out := make(map[string]interface{}, len(d.sections))
	for name, s := range d.sections {
		out[name] = s.Project()
	}
	return out
}

// Project converts the section into plain Go values: its dictionary under
// "dictionary" and its table under "rows", cells as raw strings.
func (s *Section) Project() map[string]interface{} {
	dict := make(map[string]interface{}, len(s.Dict))
	for k, v := range s.Dict {
		dict[k] = v.project()
	}

	rows := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j], _ = cell.AsString()
		}
		rows[i] = cells
	}

	return map[string]interface{}{
		"dictionary": dict,
		"rows":       rows,
	}
}

func (v Value) project() interface{} {
	switch v.typ {
	case StringType:
		return v.text
	case IntType:
		return v.i
	case FloatType:
		return v.f
	case BoolType:
		return v.b
	case ArrayType:
		arr := make([]interface{}, len(v.arr))
		for i, el := range v.arr {
			arr[i] = el.project()
		}
		return arr
	case DictType:
		dict := make(map[string]interface{}, len(v.dict))
		for k, el := range v.dict {
			dict[k] = el.project()
		}
		return dict
	default:
		return nil
	}
}
