// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
)

// run a query command against a loaded store
func processCommand(w io.Writer, store *catalog.Store, arguments []string) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {

	case "summary":
		if err := argumentCount(arguments, 0); nil != err {
			return err
		}
		counts := store.Counts()
		fmt.Fprintf(w, "products:  %d\n", counts.Products)
		fmt.Fprintf(w, "customers: %d\n", counts.Customers)
		fmt.Fprintf(w, "orders:    %d\n", counts.Orders)
		fmt.Fprintf(w, "reviews:   %d\n", counts.Reviews)

	case "products":
		return productsCommand(w, store, arguments)

	case "customer":
		if err := argumentCount(arguments, 1); nil != err {
			return err
		}
		id, err := strconv.Atoi(arguments[0])
		if nil != err {
			return err
		}
		customer, err := store.FindCustomer(id)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s\n", customer)
		history, _ := store.OrderHistory(id)
		printList(w, "order history", history)

	case "customers":
		if err := argumentCount(arguments, 0); nil != err {
			return err
		}
		printList(w, "customers by name", store.CustomersByName())

	case "orders":
		if err := argumentCount(arguments, 2); nil != err {
			return err
		}
		printList(w, "orders "+arguments[0]+" to "+arguments[1], store.OrdersBetween(arguments[0], arguments[1]))

	case "reviews":
		if err := argumentCount(arguments, 1); nil != err {
			return err
		}
		id, err := strconv.Atoi(arguments[0])
		if nil != err {
			return err
		}
		printList(w, "reviews by customer "+arguments[0], store.ReviewsByCustomer(id))

	case "common":
		if err := argumentCount(arguments, 2); nil != err {
			return err
		}
		ids, err := integers(arguments)
		if nil != err {
			return err
		}
		printList(w, "highly rated by both", store.CommonHighRated(ids[0], ids[1]))

	case "dot":
		if err := argumentCount(arguments, 1); nil != err {
			return err
		}
		graph, err := store.Dot(arguments[0])
		if nil != err {
			return err
		}
		fmt.Fprintln(w, graph)

	case "print":
		if err := argumentCount(arguments, 1); nil != err {
			return err
		}
		depth, err := store.Print(w, arguments[0])
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "depth: %d\n", depth)

	case "check":
		if err := argumentCount(arguments, 0); nil != err {
			return err
		}
		if err := store.Check(); nil != err {
			return err
		}
		fmt.Fprintln(w, "all indexes valid")

	case "demo":
		if err := argumentCount(arguments, 0); nil != err {
			return err
		}
		return runDemo(w, store)

	default:
		return fault.ErrUnknownCommand
	}

	return nil
}

// products [search T | price MIN MAX | ids MIN MAX | top N | out-of-stock]
func productsCommand(w io.Writer, store *catalog.Store, arguments []string) error {
	if 0 == len(arguments) {
		printList(w, "products", store.AllProducts())
		return nil
	}

	query := arguments[0]
	arguments = arguments[1:]

	switch query {
	case "search":
		if err := argumentCount(arguments, 1); nil != err {
			return err
		}
		printList(w, "products matching "+strconv.Quote(arguments[0]), store.SearchProducts(arguments[0]))

	case "price":
		if err := argumentCount(arguments, 2); nil != err {
			return err
		}
		low, err := strconv.ParseFloat(arguments[0], 64)
		if nil != err {
			return err
		}
		high, err := strconv.ParseFloat(arguments[1], 64)
		if nil != err {
			return err
		}
		printList(w, "products by price", store.ProductsInPriceRange(low, high))

	case "ids":
		if err := argumentCount(arguments, 2); nil != err {
			return err
		}
		ids, err := integers(arguments)
		if nil != err {
			return err
		}
		printList(w, "products by id", store.ProductsByID(ids[0], ids[1]))

	case "top":
		if err := argumentCount(arguments, 1); nil != err {
			return err
		}
		n, err := strconv.Atoi(arguments[0])
		if nil != err {
			return err
		}
		printList(w, "top rated", store.TopRated(n))

	case "out-of-stock":
		if err := argumentCount(arguments, 0); nil != err {
			return err
		}
		printList(w, "out of stock", store.OutOfStock())

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}

// drain a result list through its cursor
func printList[T fmt.Stringer](w io.Writer, title string, l *list.List[T]) {
	fmt.Fprintf(w, "%s: %d\n", title, l.Size())
	if l.IsEmpty() {
		return
	}
	l.FindFirst()
	for {
		fmt.Fprintf(w, "  %s\n", l.Retrieve())
		if l.IsLast() {
			break
		}
		l.FindNext()
	}
}

func argumentCount(arguments []string, n int) error {
	if n != len(arguments) {
		return fault.ErrWrongArgumentCount
	}
	return nil
}

func integers(arguments []string) ([]int, error) {
	values := make([]int, len(arguments))
	for i, s := range arguments {
		n, err := strconv.Atoi(s)
		if nil != err {
			return nil, err
		}
		values[i] = n
	}
	return values, nil
}

// print the usage text
func printHelp(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [options] [command [arguments]]\n", program)
	fmt.Fprintf(w, "options:\n")
	fmt.Fprintf(w, "  --help              -h            - this message\n")
	fmt.Fprintf(w, "  --verbose           -v            - print the loaded record counts\n")
	fmt.Fprintf(w, "  --quiet             -q            - suppress some output\n")
	fmt.Fprintf(w, "  --version           -V            - display version\n")
	fmt.Fprintf(w, "  --config-file=FILE  -c FILE       - configuration file\n")
	fmt.Fprintf(w, "commands:\n")
	fmt.Fprintf(w, "  summary                           - number of records in each index\n")
	fmt.Fprintf(w, "  products                          - all products in id order\n")
	fmt.Fprintf(w, "  products search TERM              - products whose name contains TERM\n")
	fmt.Fprintf(w, "  products price MIN MAX            - products priced within MIN..MAX\n")
	fmt.Fprintf(w, "  products ids MIN MAX              - products with id within MIN..MAX\n")
	fmt.Fprintf(w, "  products top N                    - N products with the highest average rating\n")
	fmt.Fprintf(w, "  products out-of-stock             - products with no stock\n")
	fmt.Fprintf(w, "  customer ID                       - one customer and their order history\n")
	fmt.Fprintf(w, "  customers                         - all customers by name\n")
	fmt.Fprintf(w, "  orders START END                  - orders dated START..END (YYYY-MM-DD)\n")
	fmt.Fprintf(w, "  reviews ID                        - reviews written by customer ID\n")
	fmt.Fprintf(w, "  common C1 C2                      - products both customers reviewed, average above 4\n")
	fmt.Fprintf(w, "  dot KIND                          - Graphviz rendering of an index\n")
	fmt.Fprintf(w, "  print KIND                        - ASCII rendering of an index\n")
	fmt.Fprintf(w, "  check                             - verify every index\n")
	fmt.Fprintf(w, "  demo                              - run through the update operations\n")
	fmt.Fprintf(w, "with no command: keep the indexes loaded until signalled\n")
	fmt.Fprintf(w, "KIND is one of: %v\n", catalog.Kinds)
}
