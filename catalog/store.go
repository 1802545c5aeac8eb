// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"io"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/fault"
)

// index names
const (
	KindProducts  = "products"
	KindCustomers = "customers"
	KindOrders    = "orders"
	KindReviews   = "reviews"
)

// Kinds - all index names in load order
var Kinds = []string{KindProducts, KindCustomers, KindOrders, KindReviews}

const (
	defaultSearchExpiry = 5 * time.Minute
)

// Options - tunables for a store
type Options struct {
	SearchExpiry time.Duration // zero selects the default
}

// Counts - number of records in each index
type Counts struct {
	Products  int
	Customers int
	Orders    int
	Reviews   int
}

// Store - the indexes for one catalog
type Store struct {
	log       *logger.L
	products  *avl.Tree[*Product]
	customers *avl.Tree[*Customer]
	orders    *avl.Tree[*Order]
	reviews   *avl.Tree[*Review]
	searches  *cache.Cache
}

// NewStore - create an empty store logging to log
func NewStore(log *logger.L, options Options) *Store {
	expiry := options.SearchExpiry
	if expiry <= 0 {
		expiry = defaultSearchExpiry
	}
	s := &Store{
		log:       log,
		products:  avl.New[*Product](),
		customers: avl.New[*Customer](),
		orders:    avl.New[*Order](),
		reviews:   avl.New[*Review](),
		searches:  cache.New(expiry, 2*expiry),
	}
	s.PublishMetrics()
	return s
}

// Counts - current index sizes
func (s *Store) Counts() Counts {
	return Counts{
		Products:  s.products.Size(),
		Customers: s.customers.Size(),
		Orders:    s.orders.Size(),
		Reviews:   s.reviews.Size(),
	}
}

// Check - verify the structure of every index
func (s *Store) Check() error {
	for _, kind := range Kinds {
		if err := s.check(kind); nil != err {
			s.log.Errorf("index: %s  check error: %s", kind, err)
			return err
		}
	}
	return nil
}

func (s *Store) check(kind string) error {
	switch kind {
	case KindProducts:
		return s.products.Check()
	case KindCustomers:
		return s.customers.Check()
	case KindOrders:
		return s.orders.Check()
	case KindReviews:
		return s.reviews.Check()
	default:
		return fault.ErrUnknownIndex
	}
}

// Dot - Graphviz rendering of one index
func (s *Store) Dot(kind string) (string, error) {
	switch kind {
	case KindProducts:
		return s.products.Dot(), nil
	case KindCustomers:
		return s.customers.Dot(), nil
	case KindOrders:
		return s.orders.Dot(), nil
	case KindReviews:
		return s.reviews.Dot(), nil
	default:
		return "", fault.ErrUnknownIndex
	}
}

// Print - ASCII rendering of one index, returns its height
func (s *Store) Print(w io.Writer, kind string) (int, error) {
	switch kind {
	case KindProducts:
		return s.products.Print(w, false), nil
	case KindCustomers:
		return s.customers.Print(w, false), nil
	case KindOrders:
		return s.orders.Print(w, false), nil
	case KindReviews:
		return s.reviews.Print(w, false), nil
	default:
		return 0, fault.ErrUnknownIndex
	}
}

// NextID - one more than the highest id in an index, 1 when empty
func (s *Store) NextID(kind string) (int, error) {
	switch kind {
	case KindProducts:
		return nextKey(s.products.Last()), nil
	case KindCustomers:
		return nextKey(s.customers.Last()), nil
	case KindOrders:
		return nextKey(s.orders.Last()), nil
	case KindReviews:
		return nextKey(s.reviews.Last()), nil
	default:
		return 0, fault.ErrUnknownIndex
	}
}

func nextKey[V any](p *avl.Node[V]) int {
	if nil == p {
		return 1
	}
	return p.Key() + 1
}
