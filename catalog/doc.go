// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - products, customers, orders and reviews held in
// AVL indexes keyed by their numeric identifiers
//
// A Store owns one index per record kind.  Queries return lists that
// the caller walks with the list cursor.  Records are shared by
// pointer between indexes and per-record lists: a product's reviews
// and a customer's orders point at the same records as the review and
// order indexes.
//
// Note: a Store is not thread safe; the owner must serialise access.
package catalog
