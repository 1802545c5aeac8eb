// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/configuration"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/loader"
	"github.com/bitmark-inc/recordindex/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultProductFile  = "products.csv"
	defaultCustomerFile = "customers.csv"
	defaultOrderFile    = "orders.csv"
	defaultReviewFile   = "reviews.csv"

	defaultReloadInterval = 5   // seconds
	defaultSearchCache    = 300 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "recordindex.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// CSVFiles - one data file per record kind
type CSVFiles struct {
	Products  string `gluamapper:"products" json:"products"`
	Customers string `gluamapper:"customers" json:"customers"`
	Orders    string `gluamapper:"orders" json:"orders"`
	Reviews   string `gluamapper:"reviews" json:"reviews"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	CSV            CSVFiles             `gluamapper:"csv" json:"csv"`
	Watch          bool                 `gluamapper:"watch" json:"watch"`
	ReloadInterval int                  `gluamapper:"reload_interval" json:"reload_interval"`
	MetricsListen  string               `gluamapper:"metrics_listen" json:"metrics_listen"`
	SearchCache    int                  `gluamapper:"search_cache" json:"search_cache"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		CSV: CSVFiles{
			Products:  defaultProductFile,
			Customers: defaultCustomerFile,
			Orders:    defaultOrderFile,
			Reviews:   defaultReviewFile,
		},
		Watch:          false,
		ReloadInterval: defaultReloadInterval,
		MetricsListen:  "",
		SearchCache:    defaultSearchCache,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    copyLevels(defaultLogLevels),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.ReloadInterval <= 0 {
		options.ReloadInterval = defaultReloadInterval
	}
	if options.SearchCache <= 0 {
		options.SearchCache = defaultSearchCache
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, fault.ErrMissingDataDirectory
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.CSV.Products,
		&options.CSV.Customers,
		&options.CSV.Orders,
		&options.CSV.Reviews,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// create log directory if it does not already exist
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// parsing merges into the map so never hand it the shared defaults
func copyLevels(levels LoglevelMap) map[string]string {
	m := make(map[string]string, len(levels))
	for k, v := range levels {
		m[k] = v
	}
	return m
}

// source for the configured CSV files
func (c *Configuration) source() loader.Source {
	return loader.FileSource{
		ProductFile:  c.CSV.Products,
		CustomerFile: c.CSV.Customers,
		OrderFile:    c.CSV.Orders,
		ReviewFile:   c.CSV.Reviews,
	}
}

// all CSV files, for the watcher
func (c *Configuration) dataFiles() []string {
	return []string{c.CSV.Products, c.CSV.Customers, c.CSV.Orders, c.CSV.Reviews}
}

func (c *Configuration) storeOptions() catalog.Options {
	return catalog.Options{
		SearchExpiry: time.Duration(c.SearchCache) * time.Second,
	}
}

func (c *Configuration) reloadInterval() time.Duration {
	return time.Duration(c.ReloadInterval) * time.Second
}
