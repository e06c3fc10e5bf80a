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

// DefaultSectionName names the implicit section that holds content appearing
// before any "[name]" header. It is only used when no section filter is
// active.
const DefaultSectionName = "root"

// A Document is a parsed Ion document: a mapping of unique section names to
// sections, iterated in name order. It owns all of its data; the input text
// it was parsed from may be discarded.
type Document struct {
	sections map[string]*Section
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{sections: map[string]*Section{}}
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.sections)
}

// Get looks up a section by name.
func (d *Document) Get(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// Fetch looks up a section by name, returning a *MissingSectionError when
// absent.
func (d *Document) Fetch(name string) (*Section, error) {
	s, ok := d.sections[name]
	if !ok {
		return nil, &MissingSectionError{Name: name}
	}
	return s, nil
}

// Remove removes and returns a section by name.
func (d *Document) Remove(name string) (*Section, bool) {
	s, ok := d.sections[name]
	if ok {
		delete(d.sections, name)
	}
	return s, ok
}

// Set inserts or replaces a section.
func (d *Document) Set(name string, s *Section) {
	d.sections[name] = s
}

// Names returns the section names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.sections))
	for name := range d.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sections calls fn for each (name, section) pair in name order, stopping
// early if fn returns false.
func (d *Document) Sections(fn func(name string, s *Section) bool) {
	for _, name := range d.Names() {
		if !fn(name, d.sections[name]) {
			return
		}
	}
}

// Equal reports deep equality of two documents.
func (d *Document) Equal(o *Document) bool {
	if len(d.sections) != len(o.sections) {
		return false
	}
	for name, s := range d.sections {
		os, ok := o.sections[name]
		if !ok || !s.Equal(os) {
			return false
		}
	}
	return true
}

// String renders the document in canonical text form: for each section a
// "[name]" header, its dictionary entries, its rows, and a trailing blank
// line. Sections and dictionary keys appear in lexical order.
func (d *Document) String() string {
	return string(d.AppendText(nil))
}

// AppendText appends the canonical text form to dst and returns the
// extended buffer.
func (d *Document) AppendText(dst []byte) []byte {
	return appendDocument(dst, d)
}
