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

// value reads one value, dispatching on the lookahead rune. At most one
// newline may separate the value from whatever preceded it. Not-ok without
// an error means the lookahead was value-shaped but did not form a value
// (a "t"/"f" run that is not a boolean literal); the caller decides whether
// absence is an error in its context.
func (p *Parser) value() (Value, bool, error) {
	p.sc.ws()
	p.sc.newline()
	p.sc.ws()

	r, ok := p.sc.peek()
	if !ok {
		return Value{}, false, p.errorf("cannot read a value")
	}

	switch {
	case r == '"':
		v, err := p.finishString()
		return v, err == nil, err
	case r == '[':
		v, err := p.finishArray()
		return v, err == nil, err
	case r == '{':
		v, err := p.finishDict()
		return v, err == nil, err
	case isDigit(r):
		return p.number()
	case r == 't' || r == 'f':
		return p.boolean()
	default:
		return Value{}, false, p.errorf("cannot read a value")
	}
}

// finishString reads a quoted string, the opening quote still unconsumed.
// The scan is escape-aware: `\\`, `\n` and `\"` are unescaped, any other
// backslash pair is kept literally, and input ending before the closing
// unescaped quote is a grammar error.
func (p *Parser) finishString() (Value, error) {
	sc := p.sc
	sc.next() // opening quote
	start := sc.pos
	escaped := false

	for {
		mark := sc.pos
		r, ok := sc.next()
		if !ok {
			return Value{}, p.errorf("cannot finish string")
		}
		switch r {
		case '\\':
			escaped = true
			sc.next()
		case '"':
			raw := sc.in[start:mark]
			if !escaped {
				return NewString(raw), nil
			}
			return NewString(unescapeQuoted(raw)), nil
		}
	}
}

// finishArray reads an array, the opening bracket still unconsumed. Values
// are separated by commas or whitespace; input ending before the closing
// bracket is a grammar error.
func (p *Parser) finishArray() (Value, error) {
	p.sc.next() // opening bracket
	vals := make([]Value, 0, p.arrayCap)

	for {
		p.sc.ws()
		r, ok := p.sc.peek()
		if !ok {
			break
		}
		switch r {
		case ']':
			p.sc.next()
			return NewArray(vals), nil
		case ',':
			p.sc.next()
		default:
			v, vok, err := p.value()
			if err != nil {
				return Value{}, err
			}
			if !vok {
				return Value{}, p.errorf("cannot finish an array")
			}
			vals = append(vals, v)
		}
	}

	return Value{}, p.errorf("cannot finish an array")
}

// finishDict reads a dictionary, the opening brace still unconsumed.
// Entries are separated by commas or newlines; input ending before the
// closing brace is a grammar error, as is anything that does not parse as a
// "key = value" entry.
func (p *Parser) finishDict() (Value, error) {
	p.sc.next() // opening brace
	dict := make(Dict)

	for {
		p.sc.ws()
		r, ok := p.sc.peek()
		if !ok {
			break
		}
		switch {
		case r == '}':
			p.sc.next()
			return NewDict(dict), nil
		case r == ',':
			p.sc.next()
		case p.sc.newline():
		default:
			key, val, eok, err := p.entry()
			if err != nil {
				return Value{}, err
			}
			if !eok {
				return Value{}, p.errorf("wrong entry of a dictionary")
			}
			dict[key] = val
		}
	}

	return Value{}, p.errorf("cannot finish a dictionary")
}

// number reads a decimal digit run, optionally followed by "." and another
// digit run. The dot selects float parsing; its absence selects integer
// parsing. Conversion failures surface the strconv error text as a grammar
// error.
func (p *Parser) number() (Value, bool, error) {
	intPart, ok := p.sc.sliceWhile(isDigit)
	if !ok {
		return Value{}, false, nil
	}

	if p.sc.eat('.') {
		frac, _ := p.sc.sliceWhile(isDigit)
		f, err := strconv.ParseFloat(intPart+"."+frac, 64)
		if err != nil {
			return Value{}, false, p.errorf("%v", err)
		}
		return NewFloat(f), true, nil
	}

	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Value{}, false, p.errorf("%v", err)
	}
	return NewInt(i), true, nil
}

// boolean matches the literal tokens "true" and "false" at the current
// position. A mismatch is value-absence, not an error.
func (p *Parser) boolean() (Value, bool, error) {
	rest := p.sc.rest()
	switch {
	case strings.HasPrefix(rest, "true"):
		p.sc.advance(len("true"))
		return NewBool(true), true, nil
	case strings.HasPrefix(rest, "false"):
		p.sc.advance(len("false"))
		return NewBool(false), true, nil
	}
	return Value{}, false, nil
}
