// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/fault"
)

const (
	productsCSV = `productId,name,price,stock
1,Laptop Pro,1500.00,3

2,"Mouse, wireless",25.5,40
`
	customersCSV = `customerId,name,email
10,Zoe,zoe@example.com
11,"adam",adam@example.com
`
	ordersCSV = `orderId,customerId,productIds,totalPrice,orderDate,status
100,10,"1;2",1525.5,2024-01-15,Delivered
101,11,2;,25.5,2024-02-01,Pending
`
	reviewsCSV = `reviewId,productId,customerId,rating,comment
200,1,10,5,"fast, quiet"
201,2,11,4,fine
`
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir, err := os.MkdirTemp("", "csv")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); nil != err {
			t.Fatalf("write: %s  error: %s", name, err)
		}
	}
	return dir
}

func testSource(t *testing.T) (FileSource, string) {
	dir := writeFiles(t, map[string]string{
		"products.csv":  productsCSV,
		"customers.csv": customersCSV,
		"orders.csv":    ordersCSV,
		"reviews.csv":   reviewsCSV,
	})
	return FileSource{
		ProductFile:  filepath.Join(dir, "products.csv"),
		CustomerFile: filepath.Join(dir, "customers.csv"),
		OrderFile:    filepath.Join(dir, "orders.csv"),
		ReviewFile:   filepath.Join(dir, "reviews.csv"),
	}, dir
}

func TestFileSource(t *testing.T) {
	source, dir := testSource(t)
	defer os.RemoveAll(dir)

	products, err := source.Products()
	assert.Nil(t, err, "products")
	assert.Equal(t, 2, products.Size(), "blank line skipped")
	all := products.Slice()
	assert.Equal(t, "Mouse, wireless", all[1].Name, "quoted comma")
	assert.Equal(t, 25.5, all[1].Price, "price")
	assert.Equal(t, 40, all[1].Stock, "stock")

	customers, err := source.Customers()
	assert.Nil(t, err, "customers")
	assert.Equal(t, 2, customers.Size(), "customers")

	orders, err := source.Orders()
	assert.Nil(t, err, "orders")
	o := orders.Slice()
	assert.Equal(t, []int{1, 2}, o[0].Items.Slice(), "items")
	assert.Equal(t, []int{2}, o[1].Items.Slice(), "trailing separator")
	assert.Equal(t, "2024-02-01", o[1].Date, "date")
	assert.Equal(t, "Pending", o[1].Status, "status")

	reviews, err := source.Reviews()
	assert.Nil(t, err, "reviews")
	assert.Equal(t, "fast, quiet", reviews.Slice()[0].Comment, "comment")
}

func TestParseErrors(t *testing.T) {
	noop := func(r *row) {}

	err := parse("short.csv", strings.NewReader("h1,h2\n1,2\n"), 3, noop)
	assert.True(t, fault.IsErrRecord(err), "field count is a record error")
	assert.Contains(t, err.Error(), "short.csv:2:", "location")

	err = parse("number.csv", strings.NewReader("a\nx\n"), 1, func(r *row) { r.int(0) })
	assert.True(t, fault.IsErrRecord(err), "bad number")
	assert.Contains(t, err.Error(), "invalid number", "reason")

	err = parse("float.csv", strings.NewReader("a\n1.2.3\n"), 1, func(r *row) { r.float(0) })
	assert.True(t, fault.IsErrRecord(err), "bad float")

	err = parse("items.csv", strings.NewReader("a\n1;x;3\n"), 1, func(r *row) { r.ids(0) })
	assert.True(t, fault.IsErrRecord(err), "bad item")

	err = parse("date.csv", strings.NewReader("a\n2024-13-01\n"), 1, func(r *row) { r.date(0) })
	assert.True(t, fault.IsErrRecord(err), "bad date")
	assert.Contains(t, err.Error(), "invalid date", "reason")

	err = parse("quote.csv", strings.NewReader("a\n\"open\n"), 1, noop)
	assert.True(t, fault.IsErrRecord(err), "csv syntax")

	assert.Nil(t, parse("empty.csv", strings.NewReader(""), 1, noop), "empty file")
	assert.Nil(t, parse("header.csv", strings.NewReader("only,header\n"), 1, noop), "header only")
}

func TestMissingFile(t *testing.T) {
	source := FileSource{ProductFile: "/no/such/products.csv"}
	_, err := source.Products()
	assert.True(t, os.IsNotExist(err), "not exist")
}
