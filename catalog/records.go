// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"

	"github.com/bitmark-inc/recordindex/list"
)

// order status values
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// rating limits
const (
	MinimumRating = 1
	MaximumRating = 5

	// average above which a product counts as highly rated
	highRating = 4.0
)

// Product - an item for sale
type Product struct {
	ID      int
	Name    string
	Price   float64
	Stock   int
	Reviews *list.List[*Review]
}

// Customer - a buyer with their order history
type Customer struct {
	ID     int
	Name   string
	Email  string
	Orders *list.List[*Order]
}

// Order - a purchase of one or more products
type Order struct {
	ID         int
	CustomerID int
	Items      *list.List[int]
	TotalPrice float64
	Date       string // YYYY-MM-DD
	Status     string
}

// Review - a customer's rating of a product
type Review struct {
	ID         int
	ProductID  int
	CustomerID int
	Rating     int
	Comment    string
}

// NewProduct - product with no reviews
func NewProduct(id int, name string, price float64, stock int) *Product {
	return &Product{
		ID:      id,
		Name:    name,
		Price:   price,
		Stock:   stock,
		Reviews: list.New[*Review](),
	}
}

// NewCustomer - customer with no orders
func NewCustomer(id int, name string, email string) *Customer {
	return &Customer{
		ID:     id,
		Name:   name,
		Email:  email,
		Orders: list.New[*Order](),
	}
}

// NewOrder - order for a list of product ids
func NewOrder(id int, customerID int, items []int, totalPrice float64, date string, status string) *Order {
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      list.FromSlice(items...),
		TotalPrice: totalPrice,
		Date:       date,
		Status:     status,
	}
}

// AverageRating - mean of all review ratings, zero if unreviewed
func (p *Product) AverageRating() float64 {
	sum := 0
	count := 0
	p.Reviews.Each(func(r *Review) bool {
		sum += r.Rating
		count += 1
		return true
	})
	if 0 == count {
		return 0
	}
	return float64(sum) / float64(count)
}

func (p *Product) String() string {
	return fmt.Sprintf("product %d: %q price: %.2f stock: %d rating: %.2f", p.ID, p.Name, p.Price, p.Stock, p.AverageRating())
}

func (c *Customer) String() string {
	return fmt.Sprintf("customer %d: %q <%s> orders: %d", c.ID, c.Name, c.Email, c.Orders.Size())
}

func (o *Order) String() string {
	return fmt.Sprintf("order %d: customer: %d items: %v total: %.2f date: %s status: %s", o.ID, o.CustomerID, o.Items.Slice(), o.TotalPrice, o.Date, o.Status)
}

func (r *Review) String() string {
	return fmt.Sprintf("review %d: product: %d customer: %d rating: %d %q", r.ID, r.ProductID, r.CustomerID, r.Rating, r.Comment)
}

// ValidRating - true if rating is within the allowed range
func ValidRating(rating int) bool {
	return rating >= MinimumRating && rating <= MaximumRating
}
