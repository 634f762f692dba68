// SPDX-License-Identifier: MIT
// Package main provides the numkit CLI entry point.
//
// numkit reads matrices in either text form ({{1,2},{3,4}} or [1,2;3,4];) from
// arguments or stdin (one literal per line) and prints results on stdout.
// Logs go to stderr; see internal/config for the NUMKIT_* variables.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/internal/logging"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.NewOrNop(cfg.LogLevel, cfg.LogDevelopment)
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}
