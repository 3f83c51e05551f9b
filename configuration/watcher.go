// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/commandline/fault"
)

// Watcher - reports changes to a configuration file
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

// Watch - start watching one configuration file
//
// log may be nil when the logger subsystem is not initialised
func Watch(fileName string, log *logger.L) (*Watcher, error) {

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, &fault.ConfigurationError{File: fileName, Reason: err.Error()}
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, &fault.ConfigurationError{File: fileName, Reason: "file does not exist"}
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, &fault.ConfigurationError{File: fileName, Reason: err.Error()}
	}

	if err := watcher.Add(filePath); nil != err {
		watcher.Close()
		return nil, &fault.ConfigurationError{File: fileName, Reason: err.Error()}
	}

	w := &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}

	go w.run()

	return w, nil
}

// Change - signalled when the file content changes
func (w *Watcher) Change() <-chan struct{} {
	return w.change
}

// Remove - signalled once when the file is removed or renamed away
func (w *Watcher) Remove() <-chan struct{} {
	return w.remove
}

// Stop - tear down the watcher
func (w *Watcher) Stop() {
	w.watcher.Close()
}

func (w *Watcher) run() {
	for event := range w.watcher.Events {
		if nil != w.log {
			w.log.Debugf("file event: %v", event)
		}

		if 0 != event.Op&(fsnotify.Remove|fsnotify.Rename) {
			if nil != w.log {
				w.log.Errorf("file %s removed, stop", w.filePath)
			}
			w.notify(w.remove)
			return
		}

		if path.Base(event.Name) != path.Base(w.filePath) {
			continue
		}

		if 0 != event.Op&(fsnotify.Write|fsnotify.Create) {
			if nil != w.log {
				w.log.Info("sending config change event...")
			}
			w.notify(w.change)
		}
	}
}

// non-blocking: an unread pending event already says "reload"
func (w *Watcher) notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
