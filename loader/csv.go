// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
)

// field counts
const (
	productFields  = 4
	customerFields = 3
	orderFields    = 6
	reviewFields   = 5

	itemSeparator = ";"
	dateLayout    = "2006-01-02"
)

// FileSource - CSV files, one per record kind
type FileSource struct {
	ProductFile  string
	CustomerFile string
	OrderFile    string
	ReviewFile   string
}

// Products - read the product file
func (s FileSource) Products() (*list.List[*catalog.Product], error) {
	result := list.New[*catalog.Product]()
	err := readFile(s.ProductFile, func(name string, in io.Reader) error {
		return parse(name, in, productFields, func(r *row) {
			p := catalog.NewProduct(r.int(0), r.text(1), r.float(2), r.int(3))
			if nil == r.err {
				result.Insert(p)
			}
		})
	})
	return result, err
}

// Customers - read the customer file
func (s FileSource) Customers() (*list.List[*catalog.Customer], error) {
	result := list.New[*catalog.Customer]()
	err := readFile(s.CustomerFile, func(name string, in io.Reader) error {
		return parse(name, in, customerFields, func(r *row) {
			c := catalog.NewCustomer(r.int(0), r.text(1), r.text(2))
			if nil == r.err {
				result.Insert(c)
			}
		})
	})
	return result, err
}

// Orders - read the order file
func (s FileSource) Orders() (*list.List[*catalog.Order], error) {
	result := list.New[*catalog.Order]()
	err := readFile(s.OrderFile, func(name string, in io.Reader) error {
		return parse(name, in, orderFields, func(r *row) {
			o := catalog.NewOrder(r.int(0), r.int(1), r.ids(2), r.float(3), r.date(4), r.text(5))
			if nil == r.err {
				result.Insert(o)
			}
		})
	})
	return result, err
}

// Reviews - read the review file
func (s FileSource) Reviews() (*list.List[*catalog.Review], error) {
	result := list.New[*catalog.Review]()
	err := readFile(s.ReviewFile, func(name string, in io.Reader) error {
		return parse(name, in, reviewFields, func(r *row) {
			v := &catalog.Review{
				ID:         r.int(0),
				ProductID:  r.int(1),
				CustomerID: r.int(2),
				Rating:     r.int(3),
				Comment:    r.text(4),
			}
			if nil == r.err {
				result.Insert(v)
			}
		})
	})
	return result, err
}

func readFile(fileName string, read func(string, io.Reader) error) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()
	return read(fileName, f)
}

// decode every row after the header; stops at the first bad row
func parse(name string, in io.Reader, fields int, decode func(*row)) error {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header := true
	for {
		record, err := reader.Read()
		if io.EOF == err {
			return nil
		}
		if nil != err {
			return fault.RecordError(fmt.Sprintf("%s: %s", name, err))
		}
		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		r := &row{
			name:   name,
			line:   line,
			fields: record,
		}
		if len(record) != fields {
			return r.fail(fault.ErrInvalidFieldCount, strconv.Itoa(len(record)))
		}
		decode(r)
		if nil != r.err {
			return r.err
		}
	}
}

// one CSV row being decoded, the first conversion error sticks
type row struct {
	name   string
	line   int
	fields []string
	err    error
}

func (r *row) text(i int) string {
	return strings.TrimSpace(r.fields[i])
}

func (r *row) int(i int) int {
	if nil != r.err {
		return 0
	}
	n, err := strconv.Atoi(r.text(i))
	if nil != err {
		r.err = r.fail(fault.ErrInvalidNumber, r.fields[i])
	}
	return n
}

func (r *row) float(i int) float64 {
	if nil != r.err {
		return 0
	}
	f, err := strconv.ParseFloat(r.text(i), 64)
	if nil != err {
		r.err = r.fail(fault.ErrInvalidNumber, r.fields[i])
	}
	return f
}

// ';' separated ids, empty entries ignored
func (r *row) ids(i int) []int {
	ids := []int{}
	for _, s := range strings.Split(r.text(i), itemSeparator) {
		s = strings.TrimSpace(s)
		if "" == s || nil != r.err {
			continue
		}
		n, err := strconv.Atoi(s)
		if nil != err {
			r.err = r.fail(fault.ErrInvalidNumber, s)
			continue
		}
		ids = append(ids, n)
	}
	return ids
}

func (r *row) date(i int) string {
	s := r.text(i)
	if nil != r.err {
		return s
	}
	if _, err := time.Parse(dateLayout, s); nil != err {
		r.err = r.fail(fault.ErrInvalidDate, s)
	}
	return s
}

func (r *row) fail(e fault.RecordError, detail string) error {
	return fault.RecordError(fmt.Sprintf("%s:%d: %s: %q", r.name, r.line, e, detail))
}
