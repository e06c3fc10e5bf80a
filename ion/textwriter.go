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
	"io"
	"strconv"
)

// A TextWriter renders documents to an io.Writer in canonical text form.
// The first write error sticks: subsequent calls are no-ops returning the
// same error.
type TextWriter struct {
	w   io.Writer
	buf []byte
	err error
}

// NewTextWriter returns a TextWriter writing to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteDocument renders a whole document.
func (tw *TextWriter) WriteDocument(d *Document) error {
	return tw.flush(appendDocument(tw.take(), d))
}

// WriteSection renders a single "[name]" section.
func (tw *TextWriter) WriteSection(name string, s *Section) error {
	return tw.flush(appendSection(tw.take(), name, s))
}

// WriteValue renders a single value in quoted form.
func (tw *TextWriter) WriteValue(v Value) error {
	return tw.flush(appendValue(tw.take(), v, true))
}

// Err returns the sticky error, if any.
func (tw *TextWriter) Err() error {
	return tw.err
}

func (tw *TextWriter) take() []byte {
	return tw.buf[:0]
}

func (tw *TextWriter) flush(buf []byte) error {
	tw.buf = buf
	if tw.err != nil {
		return tw.err
	}
	if _, err := tw.w.Write(buf); err != nil {
		tw.err = err
	}
	return tw.err
}

func appendDocument(dst []byte, d *Document) []byte {
	for _, name := range d.Names() {
		dst = appendSection(dst, name, d.sections[name])
	}
	return dst
}

func appendSection(dst []byte, name string, s *Section) []byte {
	dst = append(dst, '[')
	dst = append(dst, name...)
	dst = append(dst, ']', '\n')
	dst = appendSectionBody(dst, s)
	return append(dst, '\n')
}

func appendSectionBody(dst []byte, s *Section) []byte {
	for _, k := range s.Dict.Keys() {
		dst = append(dst, k...)
		dst = append(dst, ' ', '=', ' ')
		dst = appendValue(dst, s.Dict[k], true)
		dst = append(dst, '\n')
	}

	for _, row := range s.Rows {
		for _, cell := range row {
			dst = append(dst, '|', ' ')
			dst = appendValue(dst, cell, false)
			dst = append(dst, ' ')
		}
		dst = append(dst, '|', '\n')
	}

	return dst
}

// appendValue renders a value. Quoted mode wraps strings in double quotes
// with the quoted-escape table; plain mode emits bare text with the cell
// escape table. Array and dictionary elements always render in quoted mode.
func appendValue(dst []byte, v Value, quoted bool) []byte {
	switch v.typ {
	case StringType:
		if quoted {
			return appendQuoted(dst, v.text)
		}
		return appendPlain(dst, v.text)

	case IntType:
		return strconv.AppendInt(dst, v.i, 10)

	case FloatType:
		return appendFloat(dst, v.f)

	case BoolType:
		return strconv.AppendBool(dst, v.b)

	case ArrayType:
		dst = append(dst, '[', ' ')
		for i, el := range v.arr {
			if i > 0 {
				dst = append(dst, ',', ' ')
			}
			dst = appendValue(dst, el, true)
		}
		return append(dst, ' ', ']')

	case DictType:
		dst = append(dst, '{', ' ')
		for i, k := range v.dict.Keys() {
			if i > 0 {
				dst = append(dst, ',', ' ')
			}
			dst = append(dst, k...)
			dst = append(dst, ' ', '=', ' ')
			dst = appendValue(dst, v.dict[k], true)
		}
		return append(dst, ' ', '}')

	default:
		return dst
	}
}
