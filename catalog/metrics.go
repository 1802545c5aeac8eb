// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "recordindex"

var (
	indexEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "index_entries",
			Help:      "number of records in each index",
		},
		[]string{"kind"},
	)
	searchLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "product_search_total",
			Help:      "product name searches by cache result",
		},
		[]string{"cache"},
	)
)

// RegisterMetrics - add the catalog collectors to a registry
func RegisterMetrics(registerer prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{indexEntries, searchLookups} {
		if err := registerer.Register(c); nil != err {
			return err
		}
	}
	return nil
}

// PublishMetrics - set the index size gauges from this store
func (s *Store) PublishMetrics() {
	indexEntries.WithLabelValues(KindProducts).Set(float64(s.products.Size()))
	indexEntries.WithLabelValues(KindCustomers).Set(float64(s.customers.Size()))
	indexEntries.WithLabelValues(KindOrders).Set(float64(s.orders.Size()))
	indexEntries.WithLabelValues(KindReviews).Set(float64(s.reviews.Size()))
}
