// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// recordindex - load product, customer, order and review CSV files
// into AVL indexes and query them
//
// With a command the indexes are loaded, the command runs and the
// program exits.  Without one the program keeps the indexes loaded,
// reloads them when the CSV files change and optionally serves
// Prometheus metrics until it receives SIGINT or SIGTERM.
//
// Example configuration:
//
//   local M = {}
//   M.data_directory = "."
//   M.csv = {
//       products = "products.csv",
//       customers = "customers.csv",
//       orders = "orders.csv",
//       reviews = "reviews.csv",
//   }
//   M.watch = true
//   M.reload_interval = 5
//   M.metrics_listen = "127.0.0.1:2150"
//   M.search_cache = 300
//   M.logging = {
//       directory = "log",
//       file = "recordindex.log",
//       size = 1048576,
//       count = 10,
//       levels = { DEFAULT = "info" },
//   }
//   return M
package main
