// Copyright 2017 The go-ethereum Authors
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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/ledgerchain/node/core/txpool"
	"github.com/ledgerchain/node/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	poolLimitFlag = &cli.IntFlag{
		Name:  "pool.limit",
		Usage: "maximum resident transactions",
		Value: txpool.DefaultConfig.PoolLimit,
	}
	notifyWorkersFlag = &cli.IntFlag{
		Name:  "pool.notifyworkers",
		Usage: "notify-channel fan-out worker count",
		Value: txpool.DefaultConfig.NotifyWorkerNum,
	}
	expirationFlag = &cli.DurationFlag{
		Name:  "pool.expiration",
		Usage: "how long an unsealed transaction may sit before the reaper retires it",
		Value: txpool.DefaultConfig.TxsExpiration,
	}
	cleanupIntervalFlag = &cli.DurationFlag{
		Name:  "pool.cleanupinterval",
		Usage: "reaper tick period",
		Value: txpool.DefaultConfig.CleanupInterval,
	}
	blockTTLFlag = &cli.Uint64Flag{
		Name:  "pool.blockttl",
		Usage: "batches a sealed transaction remains eligible for before its block-limit window expires",
		Value: txpool.DefaultConfig.BlockTTL,
	}
	maxTxSizeFlag = &cli.IntFlag{
		Name:  "pool.maxtxsize",
		Usage: "maximum accepted length of a transaction's nonce string, 0 disables the check",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log.level",
		Usage: "log verbosity: trace|debug|info|warn|error|crit",
		Value: "info",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log.json",
		Usage: "emit structured JSON logs instead of the terminal format",
	}
	metricsAddressFlag = &cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "address to serve Prometheus metrics on, e.g. :6060 (disabled if unset)",
	}

	nodeFlags = []cli.Flag{
		configFileFlag,
		poolLimitFlag,
		notifyWorkersFlag,
		expirationFlag,
		cleanupIntervalFlag,
		blockTTLFlag,
		maxTxSizeFlag,
		logLevelFlag,
		logJSONFlag,
		metricsAddressFlag,
	}
)

// tomlSettings makes TOML keys match Go struct field names exactly.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadFileConfig(file string, cfg *txpool.Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadConfig builds a txpool.Config from defaults, an optional TOML file,
// and command-line flags, in that order of increasing precedence.
func loadConfig(ctx *cli.Context) txpool.Config {
	cfg := txpool.DefaultConfig

	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadFileConfig(file, &cfg); err != nil {
			log.Crit("failed to load config file", "file", file, "err", err)
		}
	}
	if ctx.IsSet(poolLimitFlag.Name) {
		cfg.PoolLimit = ctx.Int(poolLimitFlag.Name)
	}
	if ctx.IsSet(notifyWorkersFlag.Name) {
		cfg.NotifyWorkerNum = ctx.Int(notifyWorkersFlag.Name)
	}
	if ctx.IsSet(expirationFlag.Name) {
		cfg.TxsExpiration = ctx.Duration(expirationFlag.Name)
	}
	if ctx.IsSet(cleanupIntervalFlag.Name) {
		cfg.CleanupInterval = ctx.Duration(cleanupIntervalFlag.Name)
	}
	if ctx.IsSet(blockTTLFlag.Name) {
		cfg.BlockTTL = ctx.Uint64(blockTTLFlag.Name)
	}
	if ctx.IsSet(metricsAddressFlag.Name) {
		cfg.MetricsAddress = ctx.String(metricsAddressFlag.Name)
	}
	return cfg
}

func setupLogger(ctx *cli.Context) {
	level := parseLevel(ctx.String(logLevelFlag.Name))

	var handler slog.Handler
	if ctx.Bool(logJSONFlag.Name) {
		handler = log.JSONHandlerWithLevel(os.Stderr, level)
	} else {
		handler = log.NewTerminalHandlerWithLevel(os.Stderr, level, true)
	}
	log.SetDefault(log.NewLogger(handler))
}

func parseLevel(name string) slog.Level {
	switch name {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	case "crit":
		return log.LevelCrit
	default:
		return log.LevelInfo
	}
}
