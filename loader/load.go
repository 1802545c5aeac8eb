// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/recordindex/catalog"
)

// Load - read all record kinds from source into store
//
// products and customers go first so that orders and reviews can be
// attached to them
func Load(store *catalog.Store, source Source, log *logger.L) (catalog.Counts, error) {
	products, err := source.Products()
	if nil != err {
		log.Errorf("products: read error: %s", err)
		return catalog.Counts{}, err
	}
	store.SetProducts(products)

	customers, err := source.Customers()
	if nil != err {
		log.Errorf("customers: read error: %s", err)
		return catalog.Counts{}, err
	}
	store.SetCustomers(customers)

	orders, err := source.Orders()
	if nil != err {
		log.Errorf("orders: read error: %s", err)
		return catalog.Counts{}, err
	}
	store.SetOrders(orders)

	reviews, err := source.Reviews()
	if nil != err {
		log.Errorf("reviews: read error: %s", err)
		return catalog.Counts{}, err
	}
	store.SetReviews(reviews)

	counts := store.Counts()
	log.Infof("loaded products: %s  customers: %s  orders: %s  reviews: %s",
		humanize.Comma(int64(counts.Products)),
		humanize.Comma(int64(counts.Customers)),
		humanize.Comma(int64(counts.Orders)),
		humanize.Comma(int64(counts.Reviews)),
	)
	return counts, nil
}
