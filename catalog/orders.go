// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
)

// SetOrders - replace the order index with the contents of a list and
// attach each order to its customer
// returns the number of orders indexed, duplicates are skipped
func (s *Store) SetOrders(orders *list.List[*Order]) int {
	s.orders = avl.New[*Order]()
	orders.Each(func(o *Order) bool {
		if !s.orders.Insert(o.ID, o) {
			s.log.Warnf("order: %d duplicate skipped", o.ID)
			return true
		}
		s.attachOrder(o)
		return true
	})
	s.PublishMetrics()
	return s.orders.Size()
}

// AddOrder - index a new order and attach it to its customer
func (s *Store) AddOrder(o *Order) error {
	if _, found := s.orders.Search(o.ID); found {
		return fault.ErrOrderExists
	}
	s.orders.Insert(o.ID, o)
	s.attachOrder(o)
	s.PublishMetrics()
	s.log.Debugf("order: %d added", o.ID)
	return nil
}

// FindOrder - order by id
func (s *Store) FindOrder(id int) (*Order, error) {
	o, found := s.orders.Search(id)
	if !found {
		return nil, fault.ErrOrderNotFound
	}
	return o, nil
}

// CancelOrder - mark an order as cancelled
func (s *Store) CancelOrder(id int) error {
	return s.UpdateOrderStatus(id, StatusCancelled)
}

// UpdateOrderStatus - set the status of an order
func (s *Store) UpdateOrderStatus(id int, status string) error {
	o, err := s.FindOrder(id)
	if nil != err {
		return err
	}
	o.Status = status
	s.log.Debugf("order: %d status: %s", id, status)
	return nil
}

// OrdersBetween - orders dated from start to end inclusive, in id order
//
// dates compare as YYYY-MM-DD strings
func (s *Store) OrdersBetween(start string, end string) *list.List[*Order] {
	result := list.New[*Order]()
	s.orders.InOrderTraversal().Each(func(o *Order) bool {
		if o.Date >= start && o.Date <= end {
			result.Insert(o)
		}
		return true
	})
	return result
}

// orders for unknown customers stay indexed without a history entry
func (s *Store) attachOrder(o *Order) {
	c, found := s.customers.Search(o.CustomerID)
	if !found {
		s.log.Warnf("order: %d customer: %d not found", o.ID, o.CustomerID)
		return
	}
	c.Orders.Insert(o)
}
