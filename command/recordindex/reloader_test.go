// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/background"
	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
	"github.com/bitmark-inc/recordindex/loader/mocks"
)

func expectLoad(m *mocks.MockSource) {
	gomock.InOrder(
		m.EXPECT().Products().Return(list.FromSlice(
			catalog.NewProduct(7, "Desk Lamp", 30, 4),
		), nil).Times(1),
		m.EXPECT().Customers().Return(list.New[*catalog.Customer](), nil).Times(1),
		m.EXPECT().Orders().Return(list.New[*catalog.Order](), nil).Times(1),
		m.EXPECT().Reviews().Return(list.New[*catalog.Review](), nil).Times(1),
	)
}

func TestReload(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	previous := testStore(t)
	current := &currentStore{store: previous}

	m := mocks.NewMockSource(ctl)
	expectLoad(m)

	r := newReloader(m, catalog.Options{}, current, nil, time.Second)

	before := testutil.ToFloat64(reloadTotal.WithLabelValues("success"))
	assert.True(t, r.reload(), "reload")
	assert.Equal(t, before+1, testutil.ToFloat64(reloadTotal.WithLabelValues("success")), "success counted")

	store := current.get()
	assert.True(t, previous != store, "store replaced")
	assert.Equal(t, catalog.Counts{Products: 1}, store.Counts(), "new contents")
}

func TestReloadFailureKeepsStore(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	previous := testStore(t)
	current := &currentStore{store: previous}

	m := mocks.NewMockSource(ctl)
	m.EXPECT().Products().Return(nil, fault.ErrInvalidNumber).Times(1)

	r := newReloader(m, catalog.Options{}, current, nil, time.Second)

	before := testutil.ToFloat64(reloadTotal.WithLabelValues("failure"))
	assert.False(t, r.reload(), "reload")
	assert.Equal(t, before+1, testutil.ToFloat64(reloadTotal.WithLabelValues("failure")), "failure counted")
	assert.True(t, previous == current.get(), "previous store kept")
}

func TestReloaderRun(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	previous := testStore(t)
	current := &currentStore{store: previous}
	change := make(chan struct{}, 1)

	m := mocks.NewMockSource(ctl)
	expectLoad(m)

	r := newReloader(m, catalog.Options{}, current, change, time.Hour)
	bg := background.Start(background.Processes{r}, nil)

	change <- struct{}{}

	deadline := time.Now().Add(5 * time.Second)
	for previous == current.get() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, previous != current.get(), "reloaded")

	// the second reload waits for the limiter, shutdown must not
	change <- struct{}{}
	time.Sleep(50 * time.Millisecond)
	bg.Stop()

	assert.Equal(t, catalog.Counts{Products: 1}, current.get().Counts(), "one reload only")
}
