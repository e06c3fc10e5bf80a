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

import "unicode/utf8"

// scanner is a position-aware rune cursor with one-rune lookahead over a
// borrowed input string. All slice operations return sub-slices of the input;
// nothing is copied until a Value is materialized.
type scanner struct {
	in  string
	pos int
}

func newScanner(in string) *scanner {
	return &scanner{in: in}
}

// peek returns the current rune without consuming it.
func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.in) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.in[s.pos:])
	return r, true
}

// next consumes and returns the current rune.
func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.in) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s.in[s.pos:])
	s.pos += w
	return r, true
}

// eat consumes the current rune if it equals ch.
func (s *scanner) eat(ch rune) bool {
	if r, ok := s.peek(); ok && r == ch {
		s.next()
		return true
	}
	return false
}

// rest returns the unconsumed remainder of the input.
func (s *scanner) rest() string {
	return s.in[s.pos:]
}

// advance consumes n bytes. The caller must know they form whole runes.
func (s *scanner) advance(n int) {
	s.pos += n
}

// ws consumes spaces and tabs. Newlines are significant tokens and are left
// for newline to recognize.
func (s *scanner) ws() {
	for {
		if s.pos >= len(s.in) {
			return
		}
		if c := s.in[s.pos]; c != ' ' && c != '\t' {
			return
		}
		s.pos++
	}
}

// newline consumes a single "\n" or "\r\n" and reports whether it did.
func (s *scanner) newline() bool {
	switch r, _ := s.peek(); r {
	case '\n':
		s.next()
		return true
	case '\r':
		s.next()
		s.eat('\n')
		return true
	}
	return false
}

// skipLine discards everything up to and including the next "\n".
func (s *scanner) skipLine() {
	for {
		r, ok := s.next()
		if !ok || r == '\n' {
			return
		}
	}
}

// sliceWhile returns the longest run of runes matching pred, leaving the
// first non-matching rune unconsumed. Not-ok when zero runes match.
func (s *scanner) sliceWhile(pred func(rune) bool) (string, bool) {
	r, ok := s.peek()
	if !ok || !pred(r) {
		return "", false
	}
	start := s.pos
	s.next()
	for {
		r, ok := s.peek()
		if !ok || !pred(r) {
			return s.in[start:s.pos], true
		}
		s.next()
	}
}

// sliceToExc returns the text from the current rune up to but excluding ch,
// consuming ch itself. When ch never appears the remainder of the input is
// returned. Not-ok only on empty input.
func (s *scanner) sliceToExc(ch rune) (string, bool) {
	start := s.pos
	r, ok := s.next()
	if !ok {
		return "", false
	}
	if r == ch {
		return "", true
	}
	for {
		mark := s.pos
		r, ok := s.next()
		if !ok {
			return s.in[start:], true
		}
		if r == ch {
			return s.in[start:mark], true
		}
	}
}

// sliceToInc is sliceToExc with ch included in the result.
func (s *scanner) sliceToInc(ch rune) (string, bool) {
	start := s.pos
	r, ok := s.next()
	if !ok {
		return "", false
	}
	if r == ch {
		return s.in[start:s.pos], true
	}
	for {
		r, ok := s.next()
		if !ok {
			return s.in[start:], true
		}
		if r == ch {
			return s.in[start:s.pos], true
		}
	}
}
