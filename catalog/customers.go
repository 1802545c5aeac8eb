// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
)

// SetCustomers - replace the customer index with the contents of a list
// returns the number of customers indexed, duplicates are skipped
func (s *Store) SetCustomers(customers *list.List[*Customer]) int {
	s.customers = avl.New[*Customer]()
	customers.Each(func(c *Customer) bool {
		if !s.customers.Insert(c.ID, c) {
			s.log.Warnf("customer: %d duplicate skipped", c.ID)
		}
		return true
	})
	s.PublishMetrics()
	return s.customers.Size()
}

// AddCustomer - index a new customer
func (s *Store) AddCustomer(c *Customer) error {
	if _, found := s.customers.Search(c.ID); found {
		return fault.ErrCustomerExists
	}
	s.customers.Insert(c.ID, c)
	s.PublishMetrics()
	s.log.Debugf("customer: %d added", c.ID)
	return nil
}

// FindCustomer - customer by id
func (s *Store) FindCustomer(id int) (*Customer, error) {
	c, found := s.customers.Search(id)
	if !found {
		return nil, fault.ErrCustomerNotFound
	}
	return c, nil
}

// AllCustomers - every customer in id order
func (s *Store) AllCustomers() *list.List[*Customer] {
	return s.customers.InOrderTraversal()
}

// CustomersByName - every customer sorted by name ignoring case,
// equal names keep id order
func (s *Store) CustomersByName() *list.List[*Customer] {
	all := s.customers.InOrderTraversal().Slice()
	sort.SliceStable(all, func(i int, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})
	return list.FromSlice(all...)
}

// OrderHistory - a customer's orders in the order they were placed
func (s *Store) OrderHistory(id int) (*list.List[*Order], error) {
	c, err := s.FindCustomer(id)
	if nil != err {
		return nil, err
	}
	return list.FromSlice(c.Orders.Slice()...), nil
}
