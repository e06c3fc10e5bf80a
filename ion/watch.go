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
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// A Watcher reparses an Ion file whenever it changes on disk.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch loads the Ion document at path, delivers it to onChange, and then
// reparses and redelivers on every change to the file until ctx is canceled
// or the returned Watcher is closed. Parse and read failures are delivered
// through onChange's error; the previous good document stays with the
// caller.
//
// onChange is called from a single goroutine; it must not block
// indefinitely.
func Watch(ctx context.Context, path string, onChange func(*Document, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ion: watch: %w", err)
	}

	// Watch the directory rather than the file itself so atomic writes
	// (temp file + rename) and recreation keep being seen.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("ion: watch %v: %w", dir, err)
	}

	onChange(LoadFile(path))

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	name := filepath.Base(path)

	go func() {
		defer close(w.done)
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					onChange(LoadFile(path))
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				onChange(nil, err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return w, nil
}

// Close stops the watcher and waits for the delivery goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
