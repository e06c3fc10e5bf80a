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
	"strconv"
	"strings"
)

// Is this a decimal digit?
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Is this a valid character of an entry key?
func isKeyRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_' || r == '-'
}

// appendQuoted appends s wrapped in double quotes, escaping backslash,
// newline and the quote character.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '"':
			dst = append(dst, '\\', '"')
		default:
			dst = appendRune(dst, r)
		}
	}
	return append(dst, '"')
}

// appendPlain appends s in plain (cell) form, escaping backslash, newline,
// tab and the pipe delimiter. An unescaped pipe would corrupt column
// boundaries.
func appendPlain(dst []byte, s string) []byte {
	for _, r := range s {
		switch r {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\t':
			dst = append(dst, '\\', 't')
		case '|':
			dst = append(dst, '\\', '|')
		default:
			dst = appendRune(dst, r)
		}
	}
	return dst
}

func appendRune(dst []byte, r rune) []byte {
	if r < 0x80 {
		return append(dst, byte(r))
	}
	return append(dst, string(r)...)
}

// unescapeQuoted reverses appendQuoted's escapes: `\\`, `\n` and `\"`.
// A backslash followed by any other rune is kept literally.
func unescapeQuoted(raw string) string {
	return unescape(raw, func(r rune) (rune, bool) {
		switch r {
		case '\\':
			return '\\', true
		case 'n':
			return '\n', true
		case '"':
			return '"', true
		}
		return 0, false
	})
}

// unescapeCell reverses appendPlain's escapes: `\\`, `\n`, `\t` and `\|`.
func unescapeCell(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	return unescape(raw, func(r rune) (rune, bool) {
		switch r {
		case '\\':
			return '\\', true
		case 'n':
			return '\n', true
		case 't':
			return '\t', true
		case '|':
			return '|', true
		}
		return 0, false
	})
}

func unescape(raw string, table func(rune) (rune, bool)) string {
	var b strings.Builder
	b.Grow(len(raw))
	escaping := false
	for _, r := range raw {
		if !escaping {
			if r == '\\' {
				escaping = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		escaping = false
		if e, ok := table(r); ok {
			b.WriteRune(e)
		} else {
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	if escaping {
		b.WriteByte('\\')
	}
	return b.String()
}

// appendFloat renders a float with an explicit decimal point so that the
// value reparses as a float rather than an integer.
func appendFloat(dst []byte, f float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	for _, c := range dst[start:] {
		if c == '.' {
			return dst
		}
	}
	return append(dst, '.', '0')
}
