// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/recordindex/background"
)

func setupTestFileWatcher(t *testing.T) (*FileWatcherData, string, chan struct{}) {
	dir, err := os.MkdirTemp("", "recordindex-watch")
	require.Nil(t, err, "temp dir")

	fileName := filepath.Join(dir, "products.csv")
	require.Nil(t, os.WriteFile(fileName, []byte("id,name,price,stock\n"), 0o600), "create")

	change := make(chan struct{}, 1)
	w, err := newFileWatcher([]string{fileName}, logger.New("watcher-test"), change)
	require.Nil(t, err, "watcher")
	return w, fileName, change
}

func pending(ch <-chan struct{}) int {
	return len(ch)
}

func TestWatcherEventFilter(t *testing.T) {
	w, fileName, change := setupTestFileWatcher(t)
	defer os.RemoveAll(filepath.Dir(fileName))
	defer w.watcher.Close()

	other := filepath.Join(filepath.Dir(fileName), "notes.txt")

	w.handle(fsnotify.Event{Name: other, Op: fsnotify.Write})
	assert.Equal(t, 0, pending(change), "other file ignored")

	w.handle(fsnotify.Event{Name: fileName, Op: fsnotify.Chmod})
	assert.Equal(t, 0, pending(change), "chmod ignored")

	w.handle(fsnotify.Event{Name: fileName, Op: fsnotify.Write})
	assert.Equal(t, 1, pending(change), "write signalled")

	w.handle(fsnotify.Event{Name: fileName, Op: fsnotify.Create})
	assert.Equal(t, 1, pending(change), "events collapse while one is pending")

	<-change
	w.handle(fsnotify.Event{Name: fileName, Op: fsnotify.Rename})
	assert.Equal(t, 1, pending(change), "rename signalled")
}

func TestWatcherRun(t *testing.T) {
	w, fileName, change := setupTestFileWatcher(t)
	defer os.RemoveAll(filepath.Dir(fileName))

	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	require.Nil(t, os.WriteFile(fileName, []byte("id,name,price,stock\n1,Lamp,10,1\n"), 0o600), "rewrite")

	select {
	case <-change:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not signal a change")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	change := make(chan struct{}, 1)
	_, err := newFileWatcher([]string{"/no/such/recordindex/products.csv"}, logger.New("watcher-test"), change)
	assert.NotNil(t, err, "directory must exist")
}
