// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/recordindex/catalog"
)

const (
	metricsLoggerPrefix = "metrics"
	metricsPath         = "/metrics"
	shutdownTimeout     = 5 * time.Second
)

// metricsServer - background process serving Prometheus metrics
type metricsServer struct {
	log    *logger.L
	server *http.Server
}

// registry holding the catalog and reload collectors
func newRegistry() (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	if err := catalog.RegisterMetrics(registry); nil != err {
		return nil, err
	}
	if err := registry.Register(reloadTotal); nil != err {
		return nil, err
	}
	return registry, nil
}

func newMetricsServer(listen string) (*metricsServer, error) {
	registry, err := newRegistry()
	if nil != err {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &metricsServer{
		log: logger.New(metricsLoggerPrefix),
		server: &http.Server{
			Addr:         listen,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// Run - serve until shutdown
func (m *metricsServer) Run(args interface{}, shutdown <-chan struct{}) {
	m.log.Infof("listening on: %s", m.server.Addr)

	go func() {
		err := m.server.ListenAndServe()
		if nil != err && http.ErrServerClosed != err {
			m.log.Criticalf("listen: %s  error: %s", m.server.Addr, err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := m.server.Shutdown(ctx); nil != err {
		m.log.Errorf("shutdown error: %s", err)
	}
	m.log.Info("stopped")
}
