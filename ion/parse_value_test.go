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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readValue(t *testing.T, in string) (Value, bool, error) {
	t.Helper()
	return NewParser(in).value()
}

func TestValueString(t *testing.T) {
	check := func(in, want string) {
		t.Run(in, func(t *testing.T) {
			v, ok, err := readValue(t, in)
			require.NoError(t, err)
			require.True(t, ok)
			s, sok := v.AsString()
			require.True(t, sok)
			assert.Equal(t, want, s)
		})
	}

	check(`"foObar"`, "foObar")
	check(`""`, "")
	check(`"  padded  "`, "  padded  ")
	check(`"a\nb"`, "a\nb")
	check(`"a\\b"`, `a\b`)
	check(`"a\"b"`, `a"b`)
	// Unknown escape pairs are kept literally.
	check(`"a\qb"`, `a\qb`)
}

func TestValueStringUnterminated(t *testing.T) {
	_, _, err := readValue(t, `"foObar`)
	assert.EqualError(t, err, `ion: cannot finish string (section "unknown")`)

	_, _, err = readValue(t, `"`)
	assert.EqualError(t, err, `ion: cannot finish string (section "unknown")`)

	// An escaped quote does not terminate the string.
	_, _, err = readValue(t, `"foO\"bar`)
	assert.EqualError(t, err, `ion: cannot finish string (section "unknown")`)
}

func TestValueNumber(t *testing.T) {
	v, ok, err := readValue(t, "42")
	require.NoError(t, err)
	require.True(t, ok)
	i, iok := v.AsInt()
	require.True(t, iok)
	assert.Equal(t, int64(42), i)

	v, ok, err = readValue(t, "5.6")
	require.NoError(t, err)
	require.True(t, ok)
	f, fok := v.AsFloat()
	require.True(t, fok)
	assert.Equal(t, 5.6, f)

	// A trailing dot still selects float parsing.
	v, ok, err = readValue(t, "5.")
	require.NoError(t, err)
	require.True(t, ok)
	f, fok = v.AsFloat()
	require.True(t, fok)
	assert.Equal(t, 5.0, f)
}

func TestValueNumberOverflow(t *testing.T) {
	_, _, err := readValue(t, "99999999999999999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value out of range")
}

func TestValueBoolean(t *testing.T) {
	v, ok, err := readValue(t, "true")
	require.NoError(t, err)
	require.True(t, ok)
	b, bok := v.AsBool()
	require.True(t, bok)
	assert.True(t, b)

	v, ok, err = readValue(t, "false")
	require.NoError(t, err)
	require.True(t, ok)
	b, _ = v.AsBool()
	assert.False(t, b)

	// A near-miss is value absence, not a grammar error.
	_, ok, err = readValue(t, "tru")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = readValue(t, "folse")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueArray(t *testing.T) {
	v, ok, err := readValue(t, `[]`)
	require.NoError(t, err)
	require.True(t, ok)
	vals, aok := v.AsArray()
	require.True(t, aok)
	assert.Empty(t, vals)

	v, ok, err = readValue(t, `[ "col1", 2, "col3", false ]`)
	require.NoError(t, err)
	require.True(t, ok)
	vals, _ = v.AsArray()
	require.Len(t, vals, 4)
	assert.True(t, vals[0].Equal(NewString("col1")))
	assert.True(t, vals[1].Equal(NewInt(2)))
	assert.True(t, vals[2].Equal(NewString("col3")))
	assert.True(t, vals[3].Equal(NewBool(false)))

	// Commas are optional separators.
	v, ok, err = readValue(t, `[1 2 3]`)
	require.NoError(t, err)
	require.True(t, ok)
	vals, _ = v.AsArray()
	assert.Len(t, vals, 3)
}

func TestValueArrayUnfinished(t *testing.T) {
	_, _, err := readValue(t, `[`)
	assert.EqualError(t, err, `ion: cannot finish an array (section "unknown")`)

	_, _, err = readValue(t, `[ "a"`)
	assert.EqualError(t, err, `ion: cannot finish an array (section "unknown")`)

	// Value absence inside an array is an error there.
	_, _, err = readValue(t, `[ tru ]`)
	assert.EqualError(t, err, `ion: cannot finish an array (section "unknown")`)
}

func TestValueDict(t *testing.T) {
	v, ok, err := readValue(t, `{}`)
	require.NoError(t, err)
	require.True(t, ok)
	dict, dok := v.AsDict()
	require.True(t, dok)
	assert.Empty(t, dict)

	v, ok, err = readValue(t, `{ foo = ["bar", 1] }`)
	require.NoError(t, err)
	require.True(t, ok)
	foo, fok := v.Get("foo")
	require.True(t, fok)
	assert.Equal(t, ArrayType, foo.Type())

	// Entries may be separated by newlines instead of commas.
	v, ok, err = readValue(t, "{\n  lat = 4.1\r\n  lon = 2.2\n}")
	require.NoError(t, err)
	require.True(t, ok)
	dict, _ = v.AsDict()
	assert.Len(t, dict, 2)
}

func TestValueDictUnfinished(t *testing.T) {
	_, _, err := readValue(t, `{`)
	assert.EqualError(t, err, `ion: cannot finish a dictionary (section "unknown")`)

	_, _, err = readValue(t, `{ foo = "bar"`)
	assert.EqualError(t, err, `ion: cannot finish a dictionary (section "unknown")`)

	_, _, err = readValue(t, `{ foo = tru }`)
	assert.EqualError(t, err, `ion: wrong entry of a dictionary (section "unknown")`)

	_, _, err = readValue(t, `{ | no row here | }`)
	assert.EqualError(t, err, `ion: wrong entry of a dictionary (section "unknown")`)

	_, _, err = readValue(t, `{ foo "bar" }`)
	assert.EqualError(t, err, `ion: expected the '=' key value separator (section "unknown")`)
}

func TestValueAbsent(t *testing.T) {
	_, _, err := readValue(t, "")
	assert.EqualError(t, err, `ion: cannot read a value (section "unknown")`)

	_, _, err = readValue(t, "!")
	assert.EqualError(t, err, `ion: cannot read a value (section "unknown")`)
}
