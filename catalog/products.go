// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
)

// SetProducts - replace the product index with the contents of a list
// returns the number of products indexed, duplicates are skipped
func (s *Store) SetProducts(products *list.List[*Product]) int {
	s.products = avl.New[*Product]()
	products.Each(func(p *Product) bool {
		if !s.products.Insert(p.ID, p) {
			s.log.Warnf("product: %d duplicate skipped", p.ID)
		}
		return true
	})
	s.productsChanged()
	return s.products.Size()
}

// AddProduct - index a new product
func (s *Store) AddProduct(p *Product) error {
	if _, found := s.products.Search(p.ID); found {
		return fault.ErrProductExists
	}
	s.products.Insert(p.ID, p) // attaches at the position the search left
	s.productsChanged()
	s.log.Debugf("product: %d added", p.ID)
	return nil
}

// FindProduct - product by id
func (s *Store) FindProduct(id int) (*Product, error) {
	p, found := s.products.Search(id)
	if !found {
		return nil, fault.ErrProductNotFound
	}
	return p, nil
}

// DeleteProduct - remove a product from the index
func (s *Store) DeleteProduct(id int) error {
	if !s.products.Delete(id) {
		return fault.ErrProductNotFound
	}
	s.productsChanged()
	s.log.Debugf("product: %d deleted", id)
	return nil
}

// UpdatePrice - set a new price
func (s *Store) UpdatePrice(id int, price float64) error {
	if price < 0 {
		return fault.ErrInvalidPrice
	}
	p, err := s.FindProduct(id)
	if nil != err {
		return err
	}
	p.Price = price
	s.productsChanged()
	return nil
}

// UpdateStock - set a new stock level
func (s *Store) UpdateStock(id int, stock int) error {
	if stock < 0 {
		return fault.ErrInvalidStock
	}
	p, err := s.FindProduct(id)
	if nil != err {
		return err
	}
	p.Stock = stock
	s.productsChanged()
	return nil
}

// RenumberProduct - move a product to a new id
//
// the product's reviews follow it; order item lists keep the old id
func (s *Store) RenumberProduct(oldID int, newID int) error {
	if oldID == newID {
		_, err := s.FindProduct(oldID)
		return err
	}
	if _, found := s.products.Search(newID); found {
		return fault.ErrProductExists
	}
	p, found := s.products.Search(oldID)
	if !found {
		return fault.ErrProductNotFound
	}

	// cursor is on oldID
	p.ID = newID
	if !s.products.Update(newID, p) {
		return fault.ErrRenumberFailed
	}
	p.Reviews.Each(func(r *Review) bool {
		r.ProductID = newID
		return true
	})
	s.productsChanged()
	s.log.Infof("product: %d renumbered to: %d", oldID, newID)
	return nil
}

// AllProducts - every product in id order
func (s *Store) AllProducts() *list.List[*Product] {
	return s.products.InOrderTraversal()
}

// ProductsByID - products with minID <= id <= maxID
func (s *Store) ProductsByID(minID int, maxID int) *list.List[*Product] {
	return s.products.RangeQuery(minID, maxID)
}

// SearchProducts - products whose name contains term, ignoring case
func (s *Store) SearchProducts(term string) *list.List[*Product] {
	key := strings.ToLower(term)
	if cached, found := s.searches.Get(key); found {
		searchLookups.WithLabelValues("hit").Inc()
		return list.FromSlice(cached.([]*Product)...)
	}
	searchLookups.WithLabelValues("miss").Inc()

	matches := s.filterProducts(func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Name), key)
	})
	s.searches.Set(key, matches.Slice(), cache.DefaultExpiration)
	return matches
}

// ProductsInPriceRange - products with minPrice <= price <= maxPrice
func (s *Store) ProductsInPriceRange(minPrice float64, maxPrice float64) *list.List[*Product] {
	return s.filterProducts(func(p *Product) bool {
		return p.Price >= minPrice && p.Price <= maxPrice
	})
}

// OutOfStock - products with no stock
func (s *Store) OutOfStock() *list.List[*Product] {
	return s.filterProducts(func(p *Product) bool {
		return 0 == p.Stock
	})
}

// TopRated - up to n products by descending average rating, equal
// ratings keep id order
func (s *Store) TopRated(n int) *list.List[*Product] {
	all := s.products.InOrderTraversal().Slice()
	sort.SliceStable(all, func(i int, j int) bool {
		return all[i].AverageRating() > all[j].AverageRating()
	})
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[:n]
	}
	return list.FromSlice(all...)
}

func (s *Store) filterProducts(accept func(*Product) bool) *list.List[*Product] {
	result := list.New[*Product]()
	s.products.InOrderTraversal().Each(func(p *Product) bool {
		if accept(p) {
			result.Insert(p)
		}
		return true
	})
	return result
}

// cached searches may no longer be correct
func (s *Store) productsChanged() {
	s.searches.Flush()
	s.PublishMetrics()
}
