// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/products.csv", util.EnsureAbsolute("/data", "products.csv"), "relative")
	assert.Equal(t, "/tmp/x.csv", util.EnsureAbsolute("/data", "/tmp/../tmp/x.csv"), "absolute")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "util")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	nested := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(nested), "create")
	assert.True(t, util.EnsureFileExists(nested), "exists")
	assert.Nil(t, util.EnsureDirectory(nested), "already there")

	file := filepath.Join(dir, "file")
	assert.Nil(t, os.WriteFile(file, nil, 0o600), "write")
	assert.NotNil(t, util.EnsureDirectory(file), "file in the way")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "missing")), "missing")
}
