// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/list"
)

// Source - somewhere records can be read from
type Source interface {
	Products() (*list.List[*catalog.Product], error)
	Customers() (*list.List[*catalog.Customer], error)
	Orders() (*list.List[*catalog.Order], error)
	Reviews() (*list.List[*catalog.Review], error)
}
