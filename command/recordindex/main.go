// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/recordindex/background"
	"github.com/bitmark-inc/recordindex/catalog"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/loader"
)

const (
	catalogLoggerPrefix = "catalog"
	loaderLoggerPrefix  = "loader"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		printHelp(os.Stdout, program)
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	source := masterConfiguration.source()
	store := catalog.NewStore(logger.New(catalogLoggerPrefix), masterConfiguration.storeOptions())
	counts, err := loader.Load(store, source, logger.New(loaderLoggerPrefix))
	if nil != err {
		log.Criticalf("load error: %s", err)
		exitwithstatus.Message("%s: load failed with error: %s", program, err)
	}
	if verbose {
		fmt.Printf("loaded: %s products  %s customers  %s orders  %s reviews\n",
			humanize.Comma(int64(counts.Products)),
			humanize.Comma(int64(counts.Customers)),
			humanize.Comma(int64(counts.Orders)),
			humanize.Comma(int64(counts.Reviews)),
		)
	}

	// query commands run against the loaded indexes and exit
	if len(arguments) > 0 {
		err := processCommand(os.Stdout, store, arguments)
		if fault.ErrUnknownCommand == err || fault.ErrWrongArgumentCount == err {
			printHelp(os.Stderr, program)
		}
		if nil != err {
			log.Errorf("command: %q  error: %s", arguments[0], err)
			exitwithstatus.Message("%s: command: %q  error: %s", program, arguments[0], err)
		}
		return
	}

	runDaemon(program, masterConfiguration, store, log, quiet)
}

// keep the indexes loaded and current until signalled
func runDaemon(program string, masterConfiguration *Configuration, store *catalog.Store, log *logger.L, quiet bool) {

	defer log.Info("shutting down…")

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	current := &currentStore{store: store}
	change := make(chan struct{}, 1)

	processes := background.Processes{
		newReloader(
			masterConfiguration.source(),
			masterConfiguration.storeOptions(),
			current,
			change,
			masterConfiguration.reloadInterval(),
		),
	}

	if masterConfiguration.Watch {
		watcher, err := newFileWatcher(masterConfiguration.dataFiles(), logger.New(watcherLoggerPrefix), change)
		if nil != err {
			exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
		}
		processes = append(processes, watcher)
	}

	if "" != masterConfiguration.MetricsListen {
		server, err := newMetricsServer(masterConfiguration.MetricsListen)
		if nil != err {
			exitwithstatus.Message("%s: metrics setup failed with error: %s", program, err)
		}
		processes = append(processes, server)
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n")
		fmt.Printf("SIGHUP reloads, SIGUSR1 logs a summary\n")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGUSR1)

	for sig := range ch {
		switch sig {
		case syscall.SIGHUP:
			log.Info("reload requested")
			select {
			case change <- struct{}{}:
			default:
			}
		case syscall.SIGUSR1:
			logSummary(log, current.get())
		default:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
				fmt.Printf("\nshutting down…\n")
			}
			return
		}
	}
}

func logSummary(log *logger.L, store *catalog.Store) {
	counts := store.Counts()
	log.Infof("products: %d  customers: %d  orders: %d  reviews: %d",
		counts.Products, counts.Customers, counts.Orders, counts.Reviews)
	if err := store.Check(); nil != err {
		log.Errorf("check error: %s", err)
	}
}
