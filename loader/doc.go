// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loader - fill a catalog store from record sources
//
// CSV files have a header line which is skipped, blank lines are
// ignored and fields may be quoted.  Column layouts:
//
//   products:  product_id, name, price, stock
//   customers: customer_id, name, email
//   orders:    order_id, customer_id, product_ids, total_price, date, status
//   reviews:   review_id, product_id, customer_id, rating, comment
//
// product_ids is a ';' separated list of product ids.
package loader

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/recordindex/loader Source
