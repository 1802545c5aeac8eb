// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	watcherLoggerPrefix = "file-watcher"
)

// FileWatcherData - watch the directories holding the CSV files and
// signal a change whenever one of the files is written or replaced
type FileWatcherData struct {
	log     *logger.L
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	change  chan<- struct{}
}

// the change channel should have a capacity of one so that bursts of
// events collapse into a single pending reload
func newFileWatcher(files []string, log *logger.L, change chan<- struct{}) (*FileWatcherData, error) {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	w := &FileWatcherData{
		log:     log,
		watcher: watcher,
		files:   make(map[string]struct{}),
		change:  change,
	}

	// editors usually replace a file rather than write it, so watch
	// the directory not the file
	directories := make(map[string]struct{})
	for _, f := range files {
		filePath, err := filepath.Abs(filepath.Clean(f))
		if nil != err {
			watcher.Close()
			return nil, err
		}
		w.files[filePath] = struct{}{}

		dir := filepath.Dir(filePath)
		if _, ok := directories[dir]; ok {
			continue
		}
		directories[dir] = struct{}{}

		if err := watcher.Add(dir); nil != err {
			log.Errorf("watcher add: %q  error: %s", dir, err)
			watcher.Close()
			return nil, err
		}
		log.Infof("watching directory: %q", dir)
	}

	return w, nil
}

// Run - background process to forward file events until shutdown
func (w *FileWatcherData) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

func (w *FileWatcherData) handle(event fsnotify.Event) {
	if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
		w.log.Debugf("discard event: %v", event)
		return
	}

	if watcherEventFileRemove(event) {
		w.log.Warnf("file: %q removed", event.Name)
	} else if !watcherEventFileChange(event) {
		return
	}
	w.log.Infof("file event: %v", event)
	w.sendEvent()
}

func (w *FileWatcherData) sendEvent() {
	select {
	case w.change <- struct{}{}:
	default:
		w.log.Debug("reload already pending, discard event")
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
