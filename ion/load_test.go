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
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempIon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ion")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTempIon(t, "[A]\nk = 1\n[B]\nk = 2\n")

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Names())

	doc, err = LoadFileFiltered(path, []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, doc.Names())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.ion"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFileParseError(t *testing.T) {
	path := writeTempIon(t, "[S]\nkey =\n")

	_, err := LoadFile(path)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "S", perr.Section)
}

type delivery struct {
	doc *Document
	err error
}

func TestWatch(t *testing.T) {
	path := writeTempIon(t, "[A]\nk = 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries := make(chan delivery, 16)
	w, err := Watch(ctx, path, func(doc *Document, err error) {
		deliveries <- delivery{doc: doc, err: err}
	})
	require.NoError(t, err)
	defer w.Close()

	// The initial load is delivered synchronously.
	first := <-deliveries
	require.NoError(t, first.err)
	a, ok := first.doc.Get("A")
	require.True(t, ok)
	v, _ := a.Get("k")
	assert.True(t, v.Equal(NewInt(1)))

	require.NoError(t, os.WriteFile(path, []byte("[A]\nk = 2\n"), 0o644))

	select {
	case d := <-deliveries:
		require.NoError(t, d.err)
		a, ok := d.doc.Get("A")
		require.True(t, ok)
		v, _ := a.Get("k")
		assert.True(t, v.Equal(NewInt(2)))
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery after rewriting the watched file")
	}
}

func TestWatchBadFileDeliversError(t *testing.T) {
	path := writeTempIon(t, "[S]\nkey =\n")

	deliveries := make(chan delivery, 1)
	w, err := Watch(context.Background(), path, func(doc *Document, err error) {
		select {
		case deliveries <- delivery{doc: doc, err: err}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	d := <-deliveries
	assert.Nil(t, d.doc)
	var perr *ParseError
	assert.True(t, errors.As(d.err, &perr))
}

func TestWatchClose(t *testing.T) {
	path := writeTempIon(t, "[A]\nk = 1\n")

	w, err := Watch(context.Background(), path, func(*Document, error) {})
	require.NoError(t, err)

	// Close waits for the delivery goroutine; a second change after Close
	// must not panic or deliver.
	require.NoError(t, w.Close())
	assert.NoError(t, os.WriteFile(path, []byte("[A]\nk = 3\n"), 0o644))
}
