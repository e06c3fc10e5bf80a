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

import "fmt"

// An elementKind discriminates the structural elements produced while
// scanning a document.
type elementKind uint8

const (
	elementNone elementKind = iota
	elementSection
	elementEntry
	elementRow
	elementComment
)

// An element is one structural unit of the input: a section header, a
// dictionary entry, a table row or a comment. Elements are produced one at a
// time by Parser.Next and consumed immediately; they are never persisted.
type element struct {
	kind  elementKind
	name  string // section name or entry key
	value Value  // entry value
	row   Row
	text  string // comment text, including the trailing newline
}

const (
	defaultSectionCapacity = 16
	defaultRowCapacity     = 8
	defaultArrayCapacity   = 2
	defaultCellCapacity    = 8
)

// A Parser scans an input string and produces its elements one at a time.
// It is a single-use, single-goroutine object: once Next has returned false
// the Parser is exhausted and a fresh one must be constructed to rescan.
type Parser struct {
	sc *scanner

	accepted []string // working set of still-wanted section names
	filtered bool
	bodyOpen bool // an accepted section's body is being produced

	sectionCap int
	rowCap     int
	arrayCap   int

	lastSection string
	seenSection bool

	elem element
	err  error
	done bool
}

// NewParser returns a Parser over the given input that accepts every
// section.
func NewParser(in string) *Parser {
	return newParser(in, nil, false)
}

// NewFilteredParser returns a Parser that accepts only the named sections,
// each at most once, and stops scanning as soon as all of them have been
// seen. An empty list produces no elements at all.
func NewFilteredParser(in string, accepted []string) *Parser {
	return newParser(in, append([]string(nil), accepted...), true)
}

func newParser(in string, accepted []string, filtered bool) *Parser {
	return &Parser{
		sc:         newScanner(in),
		accepted:   accepted,
		filtered:   filtered,
		sectionCap: defaultSectionCapacity,
		rowCap:     defaultRowCapacity,
		arrayCap:   defaultArrayCapacity,
	}
}

// WithSectionCapacity hints the expected number of sections. Zero degrades
// to incremental growth.
func (p *Parser) WithSectionCapacity(n int) *Parser {
	p.sectionCap = n
	return p
}

// WithRowCapacity hints the expected number of rows per section.
func (p *Parser) WithRowCapacity(n int) *Parser {
	p.rowCap = n
	return p
}

// WithArrayCapacity hints the expected number of elements per array value.
func (p *Parser) WithArrayCapacity(n int) *Parser {
	p.arrayCap = n
	return p
}

// Next advances to the next element of the input; it returns false when the
// input is exhausted, when filtering has nothing further to accept, or when
// a ParseError is encountered (see Err).
func (p *Parser) Next() bool {
	if p.done || p.err != nil {
		return false
	}

	accepted := true
	for {
		// Once the working set is drained there is nothing left to produce,
		// unless an accepted section's body is still being read.
		if p.filtered && len(p.accepted) == 0 && !p.bodyOpen {
			return p.stop()
		}

		p.sc.ws()
		if p.sc.newline() {
			continue
		}

		r, ok := p.sc.peek()
		if !ok {
			return p.stop()
		}

		if r == '[' {
			name := p.sectionName()
			switch p.acceptSection(name) {
			case sectionAccepted:
				p.bodyOpen = true
				p.elem = element{kind: elementSection, name: name}
				return true
			case sectionSkipped:
				accepted = false
				p.bodyOpen = false
			case sectionStop:
				return p.stop()
			}
		}
		if !accepted {
			p.sc.skipLine()
			continue
		}

		switch r {
		case '|':
			p.elem = p.row()
			return true
		case '#':
			text, _ := p.comment()
			p.elem = element{kind: elementComment, text: text}
			return true
		default:
			key, val, ok, err := p.entry()
			if err != nil {
				p.err = err
				return false
			}
			if !ok {
				return p.stop()
			}
			p.elem = element{kind: elementEntry, name: key, value: val}
			return true
		}
	}
}

// Element returns the element Next advanced to.
func (p *Parser) Element() element {
	return p.elem
}

// Err returns the error that terminated the scan, if any.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) stop() bool {
	p.done = true
	return false
}

type sectionMatch uint8

const (
	sectionAccepted sectionMatch = iota
	sectionSkipped
	sectionStop
)

// acceptSection decides the fate of a section header against the working
// set. A matched name is swap-removed, so a later duplicate header is no
// longer wanted: under filtering the first occurrence wins.
func (p *Parser) acceptSection(name string) sectionMatch {
	if !p.filtered {
		return sectionAccepted
	}
	if len(p.accepted) == 0 {
		return sectionStop
	}
	for i, s := range p.accepted {
		if s == name {
			last := len(p.accepted) - 1
			p.accepted[i] = p.accepted[last]
			p.accepted = p.accepted[:last]
			return sectionAccepted
		}
	}
	return sectionSkipped
}

// sectionName reads a "[name]" header. The name is every rune up to the
// closing bracket, with leading spaces and tabs skipped. The last seen
// header attributes any subsequent ParseError, accepted or not.
func (p *Parser) sectionName() string {
	p.sc.eat('[')
	p.sc.ws()
	name, _ := p.sc.sliceToExc(']')
	p.lastSection = name
	p.seenSection = true
	return name
}

// comment consumes a "#" comment through the end of the line, returning its
// text including the trailing newline.
func (p *Parser) comment() (string, bool) {
	if !p.sc.eat('#') {
		return "", false
	}
	text, _ := p.sc.sliceToInc('\n')
	return text, true
}

// row reads a "|"-delimited table row. A comment, a newline or the end of
// the input terminates the row; an in-row comment is consumed and not
// surfaced.
func (p *Parser) row() element {
	cells := make(Row, 0, defaultCellCapacity)
	p.sc.eat('|')

	for {
		p.sc.ws()
		if _, ok := p.comment(); ok {
			break
		}
		if p.sc.newline() {
			break
		}
		if _, ok := p.sc.peek(); !ok {
			break
		}
		cells = append(cells, NewString(p.cell()))
	}

	return element{kind: elementRow, row: cells}
}

// cell reads one table cell: raw text up to the next unescaped pipe (which
// is consumed), newline or end of input, right-trimmed of spaces and tabs
// and then unescaped.
func (p *Parser) cell() string {
	sc := p.sc
	start := sc.pos
	end := sc.pos

scan:
	for {
		r, ok := sc.peek()
		if !ok {
			end = sc.pos
			break
		}
		switch r {
		case '|':
			end = sc.pos
			sc.next()
			break scan
		case '\n', '\r':
			end = sc.pos
			break scan
		case '\\':
			sc.next()
			// The escaped rune belongs to the cell, but never a newline:
			// a line break always terminates the row.
			if n, ok := sc.peek(); ok && n != '\n' && n != '\r' {
				sc.next()
			}
		default:
			sc.next()
		}
	}

	raw := sc.in[start:end]
	for len(raw) > 0 && (raw[len(raw)-1] == ' ' || raw[len(raw)-1] == '\t') {
		raw = raw[:len(raw)-1]
	}
	return unescapeCell(raw)
}

// entry reads a "key = value" line. Not-ok without an error means no entry
// begins here (no key, or a value-shaped token that is not a value), which
// ends the element stream.
func (p *Parser) entry() (key string, val Value, ok bool, err error) {
	key, kok := p.sc.sliceWhile(isKeyRune)
	if !kok {
		return "", Value{}, false, nil
	}

	if !p.keyvalSep() {
		return "", Value{}, false, p.errorf("expected the '=' key value separator")
	}

	val, vok, err := p.value()
	if err != nil {
		return "", Value{}, false, err
	}
	return key, val, vok, nil
}

func (p *Parser) keyvalSep() bool {
	p.sc.ws()
	if !p.sc.eat('=') {
		return false
	}
	p.sc.ws()
	return true
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	section := "unknown"
	if p.seenSection {
		section = p.lastSection
	}
	return &ParseError{Section: section, Msg: fmt.Sprintf(format, args...)}
}

// Read drives the Parser to completion and folds its elements into a
// Document. On each section header the previously accumulated section is
// committed under its name, so under unfiltered parsing a duplicated header
// keeps the last occurrence's content. Comments are discarded. The first
// ParseError aborts the build.
func (p *Parser) Read() (*Document, error) {
	sections := make(map[string]*Section, p.sectionCap)

	cur := newSection(p.rowCap)
	name := ""
	named := false

	for p.Next() {
		el := p.Element()
		switch el.kind {
		case elementSection:
			if named {
				sections[name] = cur
			}
			name = el.name
			named = true
			cur = newSection(p.rowCap)
		case elementEntry:
			cur.Dict[el.name] = el.value
		case elementRow:
			cur.Rows = append(cur.Rows, el.row)
		}
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	switch {
	case named:
		sections[name] = cur
	case !p.filtered:
		// Headerless content belongs to the implicit default section, but
		// only when no filter is active.
		sections[DefaultSectionName] = cur
	}

	return &Document{sections: sections}, nil
}

// Parse reads a whole Ion document from the input string.
func Parse(in string) (*Document, error) {
	return NewParser(in).Read()
}

// ParseFiltered reads only the named sections from the input string,
// stopping early once all of them have been seen.
func ParseFiltered(in string, accepted []string) (*Document, error) {
	return NewFilteredParser(in, accepted).Read()
}
