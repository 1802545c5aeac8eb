// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/recordindex/catalog"
)

const (
	demoProductName  = "Demo Widget"
	demoPrice        = 19.99
	demoReducedPrice = 14.99
	demoStock        = 12
	demoRenumberGap  = 1000
)

// run through the update operations against the loaded store, the
// files on disk are not changed
func runDemo(w io.Writer, store *catalog.Store) error {

	productID, err := store.NextID(catalog.KindProducts)
	if nil != err {
		return err
	}

	fmt.Fprintf(w, "add product: %d\n", productID)
	if err := store.AddProduct(catalog.NewProduct(productID, demoProductName, demoPrice, 0)); nil != err {
		return err
	}
	if err := store.AddProduct(catalog.NewProduct(productID, demoProductName, demoPrice, 0)); nil != err {
		fmt.Fprintf(w, "add again: %s\n", err)
	}
	printList(w, "out of stock", store.OutOfStock())

	fmt.Fprintf(w, "restock and reduce price\n")
	if err := store.UpdateStock(productID, demoStock); nil != err {
		return err
	}
	if err := store.UpdatePrice(productID, demoReducedPrice); nil != err {
		return err
	}
	if err := store.UpdatePrice(productID, -1); nil != err {
		fmt.Fprintf(w, "negative price: %s\n", err)
	}
	printList(w, "search", store.SearchProducts(demoProductName))

	customers := store.CustomersByName()
	if customers.IsEmpty() {
		fmt.Fprintf(w, "no customers: skipping orders and reviews\n")
	} else {
		customers.FindFirst()
		customer := customers.Retrieve()
		if err := demoOrder(w, store, customer, productID); nil != err {
			return err
		}
		if err := demoReview(w, store, customer, productID); nil != err {
			return err
		}
	}

	newID := productID + demoRenumberGap
	fmt.Fprintf(w, "renumber product: %d to: %d\n", productID, newID)
	if err := store.RenumberProduct(productID, newID); nil != err {
		return err
	}
	printList(w, "renumbered", store.ProductsByID(newID, newID))

	if err := store.Check(); nil != err {
		return err
	}
	fmt.Fprintln(w, "all indexes valid")
	return nil
}

func demoOrder(w io.Writer, store *catalog.Store, customer *catalog.Customer, productID int) error {
	orderID, err := store.NextID(catalog.KindOrders)
	if nil != err {
		return err
	}
	date := time.Now().UTC().Format("2006-01-02")
	order := catalog.NewOrder(orderID, customer.ID, []int{productID}, demoReducedPrice, date, catalog.StatusPending)

	fmt.Fprintf(w, "add order: %d for customer: %d\n", orderID, customer.ID)
	if err := store.AddOrder(order); nil != err {
		return err
	}
	if err := store.CancelOrder(orderID); nil != err {
		return err
	}
	history, err := store.OrderHistory(customer.ID)
	if nil != err {
		return err
	}
	printList(w, "order history", history)
	return nil
}

func demoReview(w io.Writer, store *catalog.Store, customer *catalog.Customer, productID int) error {
	reviewID, err := store.NextID(catalog.KindReviews)
	if nil != err {
		return err
	}

	invalid := &catalog.Review{
		ID:         reviewID,
		ProductID:  productID,
		CustomerID: customer.ID,
		Rating:     catalog.MaximumRating + 1,
	}
	if err := store.AddReview(invalid); nil != err {
		fmt.Fprintf(w, "rating %d: %s\n", invalid.Rating, err)
	}

	review := &catalog.Review{
		ID:         reviewID,
		ProductID:  productID,
		CustomerID: customer.ID,
		Rating:     catalog.MaximumRating,
		Comment:    "does what it says",
	}
	fmt.Fprintf(w, "add review: %d\n", reviewID)
	if err := store.AddReview(review); nil != err {
		return err
	}
	if err := store.EditReview(reviewID, catalog.MaximumRating-1, ""); nil != err {
		return err
	}
	printList(w, "reviews by customer", store.ReviewsByCustomer(customer.ID))
	printList(w, "top rated", store.TopRated(3))
	return nil
}
