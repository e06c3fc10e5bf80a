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

// A Section is one named block of a document: a dictionary of typed values
// plus an ordered table of rows. Table cells are always raw strings; table
// syntax has no type annotations. Row widths are not validated against each
// other.
type Section struct {
	Dict Dict
	Rows []Row
}

// NewSection returns an empty section.
func NewSection() *Section {
	return newSection(0)
}

func newSection(rowCap int) *Section {
	return &Section{
		Dict: make(Dict),
		Rows: make([]Row, 0, rowCap),
	}
}

// Get looks up a dictionary value by key.
func (s *Section) Get(key string) (Value, bool) {
	v, ok := s.Dict[key]
	return v, ok
}

// Fetch looks up a dictionary value by key, returning a *MissingValueError
// when absent.
func (s *Section) Fetch(key string) (Value, error) {
	v, ok := s.Dict[key]
	if !ok {
		return Value{}, &MissingValueError{Key: key}
	}
	return v, nil
}

// RowsWithoutHeader returns the section's rows with a markdown-style
// header/separator pair skipped: when the second physical row's first cell
// is a non-empty string made entirely of '-' runes, that row and the one
// before it are excluded. Otherwise all rows are returned unmodified.
func (s *Section) RowsWithoutHeader() []Row {
	if len(s.Rows) > 1 && isSeparatorRow(s.Rows[1]) {
		return s.Rows[2:]
	}
	return s.Rows
}

func isSeparatorRow(row Row) bool {
	if len(row) == 0 {
		return false
	}
	cell, ok := row[0].AsString()
	if !ok || cell == "" {
		return false
	}
	for i := 0; i < len(cell); i++ {
		if cell[i] != '-' {
			return false
		}
	}
	return true
}

// Equal reports deep equality of two sections.
func (s *Section) Equal(o *Section) bool {
	if len(s.Dict) != len(o.Dict) || len(s.Rows) != len(o.Rows) {
		return false
	}
	for k, v := range s.Dict {
		ov, ok := o.Dict[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	for i, row := range s.Rows {
		if len(row) != len(o.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if !cell.Equal(o.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// String renders the section body (entries, then rows) in canonical form.
func (s *Section) String() string {
	return string(appendSectionBody(nil, s))
}
