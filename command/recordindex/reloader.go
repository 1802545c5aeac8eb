// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/loader"
)

const (
	reloaderLoggerPrefix = "reloader"
)

var (
	reloadTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recordindex",
			Name:      "reload_total",
			Help:      "index reloads by result",
		},
		[]string{"result"},
	)
)

// the store currently served; a reload builds a new store and swaps
// it in whole so readers never see a partly loaded index
type currentStore struct {
	sync.RWMutex
	store *catalog.Store
}

func (c *currentStore) get() *catalog.Store {
	c.RLock()
	defer c.RUnlock()
	return c.store
}

func (c *currentStore) set(store *catalog.Store) {
	c.Lock()
	c.store = store
	c.Unlock()
}

// reloader - background process rebuilding the indexes on change
type reloader struct {
	log     *logger.L
	source  loader.Source
	options catalog.Options
	current *currentStore
	change  <-chan struct{}
	limiter *rate.Limiter
}

// at most one reload per interval, the first one immediately
func newReloader(source loader.Source, options catalog.Options, current *currentStore, change <-chan struct{}, interval time.Duration) *reloader {
	return &reloader{
		log:     logger.New(reloaderLoggerPrefix),
		source:  source,
		options: options,
		current: current,
		change:  change,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run - wait for change events and reload until shutdown
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.change:
		}

		reservation := r.limiter.Reserve()
		if delay := reservation.Delay(); delay > 0 {
			r.log.Infof("reload delayed: %s", delay)
			timer := time.NewTimer(delay)
			select {
			case <-shutdown:
				timer.Stop()
				reservation.Cancel()
				break loop
			case <-timer.C:
			}
		}

		// any events arriving during the delay are covered by this reload
		select {
		case <-r.change:
		default:
		}

		r.reload()
	}
	r.log.Info("stopped")
}

// load into a fresh store, keeping the old one if anything fails
func (r *reloader) reload() bool {
	store := catalog.NewStore(logger.New(catalogLoggerPrefix), r.options)
	counts, err := loader.Load(store, r.source, logger.New(loaderLoggerPrefix))
	if nil != err {
		r.log.Errorf("reload failed, keeping previous indexes: %s", err)
		reloadTotal.WithLabelValues("failure").Inc()
		if previous := r.current.get(); nil != previous {
			previous.PublishMetrics()
		}
		return false
	}
	r.current.set(store)
	reloadTotal.WithLabelValues("success").Inc()
	r.log.Infof("reloaded: %+v", counts)
	return true
}
