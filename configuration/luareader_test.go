// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/configuration"
	"github.com/bitmark-inc/recordindex/fault"
)

type csvFiles struct {
	Products string `gluamapper:"products"`
	Reviews  string `gluamapper:"reviews"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Watch         bool              `gluamapper:"watch"`
	Interval      int               `gluamapper:"reload_interval"`
	CSV           csvFiles          `gluamapper:"csv"`
	Levels        map[string]string `gluamapper:"levels"`
}

const luaSource = `
local M = {}
M.data_directory = arg[0] and "." or "none"
M.watch = true
M.reload_interval = 2 * 5
M.csv = {
    products = "products.csv",
    reviews = "reviews.csv",
}
M.levels = { DEFAULT = "info", catalog = "debug" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	if err := os.WriteFile(fileName, []byte(luaSource), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, ".", config.DataDirectory, "arg[0] is set")
	assert.True(t, config.Watch, "watch")
	assert.Equal(t, 10, config.Interval, "computed value")
	assert.Equal(t, "products.csv", config.CSV.Products, "nested")
	assert.Equal(t, "debug", config.Levels["catalog"], "map")
}

func TestParseConfigurationString(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationString(`return { watch = false, csv = { reviews = "r.csv" } }`, &config)
	assert.Nil(t, err, "parse error")
	assert.False(t, config.Watch, "watch")
	assert.Equal(t, "r.csv", config.CSV.Reviews, "nested")
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationString("return {}", config), "not a pointer")

	n := 1
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationString("return {}", &n), "not a struct")

	assert.Equal(t, fault.ErrConfigurationNotTable, configuration.ParseConfigurationString("return 42", &config), "not a table")

	assert.NotNil(t, configuration.ParseConfigurationString("return {", &config), "syntax error")
	assert.NotNil(t, configuration.ParseConfigurationFile("/does/not/exist.conf", &config), "missing file")
}
