// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "catalog")
	if nil != err {
		panic(fmt.Sprintf("temp directory failed: %s", err))
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// a small catalog:
//   products 1..5, product 4 out of stock
//   customers 10 (Zoe), 11 (adam), 12 (Mia)
//   orders 100..103
//   reviews 200..205
func fixture(t *testing.T) *Store {
	s := NewStore(logger.New("catalog-test"), Options{})

	for _, p := range []*Product{
		NewProduct(1, "Laptop Pro", 1500, 3),
		NewProduct(2, "Wireless Mouse", 25.5, 40),
		NewProduct(3, "USB-C Cable", 9.99, 100),
		NewProduct(4, "Laptop Stand", 45, 0),
		NewProduct(5, "Mechanical Keyboard", 120, 7),
	} {
		if err := s.AddProduct(p); nil != err {
			t.Fatalf("add product: %d error: %s", p.ID, err)
		}
	}
	for _, c := range []*Customer{
		NewCustomer(10, "Zoe", "zoe@example.com"),
		NewCustomer(11, "adam", "adam@example.com"),
		NewCustomer(12, "Mia", "mia@example.com"),
	} {
		if err := s.AddCustomer(c); nil != err {
			t.Fatalf("add customer: %d error: %s", c.ID, err)
		}
	}
	for _, o := range []*Order{
		NewOrder(100, 10, []int{1, 2}, 1525.5, "2024-01-15", StatusDelivered),
		NewOrder(101, 11, []int{3}, 9.99, "2024-02-01", StatusShipped),
		NewOrder(102, 10, []int{5, 3}, 129.99, "2024-03-10", StatusPending),
		NewOrder(103, 12, []int{4}, 45, "2024-03-31", StatusPending),
	} {
		if err := s.AddOrder(o); nil != err {
			t.Fatalf("add order: %d error: %s", o.ID, err)
		}
	}
	for _, r := range []*Review{
		{ID: 200, ProductID: 1, CustomerID: 10, Rating: 5, Comment: "fast"},
		{ID: 201, ProductID: 1, CustomerID: 11, Rating: 5, Comment: "great"},
		{ID: 202, ProductID: 2, CustomerID: 10, Rating: 3, Comment: "ok"},
		{ID: 203, ProductID: 2, CustomerID: 11, Rating: 4, Comment: "fine"},
		{ID: 204, ProductID: 5, CustomerID: 11, Rating: 4, Comment: "clicky"},
		{ID: 205, ProductID: 5, CustomerID: 12, Rating: 5, Comment: "love it"},
	} {
		if err := s.AddReview(r); nil != err {
			t.Fatalf("add review: %d error: %s", r.ID, err)
		}
	}
	return s
}

func productIDs(l interface{ Slice() []*Product }) []int {
	ids := []int{}
	for _, p := range l.Slice() {
		ids = append(ids, p.ID)
	}
	return ids
}
