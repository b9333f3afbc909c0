// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// txpool-node runs a standalone in-memory transaction pool, reachable by
// whatever consensus or RPC layer is wired in front of it.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgerchain/node/core/txpool"
	"github.com/ledgerchain/node/log"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "txpool-node"

var app = cli.NewApp()

func init() {
	app.Name = clientIdentifier
	app.Usage = "standalone in-memory transaction pool"
	app.Flags = nodeFlags
	app.Action = run
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the main entry point: it builds the pool from configuration, starts
// it, and blocks until an interrupt signal asks it to shut down.
func run(ctx *cli.Context) error {
	setupLogger(ctx)

	cfg := loadConfig(ctx)
	ledger := txpool.NewLedgerNonceChecker()
	validator := txpool.NewDefaultValidator(txpool.ValidationOptions{
		MaxTxSize: ctx.Int(maxTxSizeFlag.Name),
	}, txpool.NoopSignatureVerifier{}, ledger, cfg.BlockTTL)

	notifier := txpool.NewFuncNotifyChannel(func(count uint64) error {
		log.Debug("unsealed count changed", "count", count)
		return nil
	})

	pool := txpool.New(cfg, validator, txpool.NewPoolNonceChecker(), ledger, notifier)
	log.Info("transaction pool started",
		"poolLimit", cfg.PoolLimit,
		"cleanupInterval", cfg.CleanupInterval,
		"txsExpiration", cfg.TxsExpiration,
	)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	<-sigc

	log.Info("shutting down transaction pool")
	return pool.Close()
}
