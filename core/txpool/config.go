// Copyright 2023 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package txpool

import (
	"time"

	"github.com/ledgerchain/node/log"
)

// Config are the configuration parameters of the transaction pool.
type Config struct {
	PoolLimit       int           // Max resident transactions
	NotifyWorkerNum int           // Thread count for submit-callback fan-out
	TxsExpiration   time.Duration // How long a transaction may sit unsealed before the reaper retires it
	CleanupInterval time.Duration // Reaper tick period
	BlockTTL        uint64        // Batches a sealed tx remains eligible for before BlockLimitCheckFail

	// TxsCleanUpSwitch, when non-nil, is consulted by the reaper on every
	// tick; returning false skips that tick entirely. Consensus nodes use
	// this to bypass cleanup under heavy load and preserve throughput.
	TxsCleanUpSwitch func() bool

	// MetricsNamespace prefixes every Prometheus metric the pool reports. A
	// blank namespace is still valid; it just leaves the metric names
	// unprefixed.
	MetricsNamespace string

	// MetricsAddress, if non-blank, starts an HTTP server on this address
	// exposing the pool's metrics at /debug/metrics/prometheus.
	MetricsAddress string
}

// DefaultConfig contains the default configurations for the transaction
// pool.
var DefaultConfig = Config{
	PoolLimit:        50000,
	NotifyWorkerNum:  4,
	TxsExpiration:    10 * time.Minute,
	CleanupInterval:  3 * time.Second,
	BlockTTL:         20,
	MetricsNamespace: "txpool",
}

// sanitize checks the provided user configuration and changes anything that's
// unreasonable or unworkable.
func (config Config) sanitize() Config {
	conf := config
	if conf.PoolLimit <= 0 {
		log.Warn("Sanitizing invalid txpool pool limit", "provided", conf.PoolLimit, "updated", DefaultConfig.PoolLimit)
		conf.PoolLimit = DefaultConfig.PoolLimit
	}
	if conf.NotifyWorkerNum <= 0 {
		log.Warn("Sanitizing invalid txpool notify worker count", "provided", conf.NotifyWorkerNum, "updated", DefaultConfig.NotifyWorkerNum)
		conf.NotifyWorkerNum = DefaultConfig.NotifyWorkerNum
	}
	if conf.TxsExpiration <= 0 {
		log.Warn("Sanitizing invalid txpool expiration", "provided", conf.TxsExpiration, "updated", DefaultConfig.TxsExpiration)
		conf.TxsExpiration = DefaultConfig.TxsExpiration
	}
	if conf.CleanupInterval <= 0 {
		log.Warn("Sanitizing invalid txpool cleanup interval", "provided", conf.CleanupInterval, "updated", DefaultConfig.CleanupInterval)
		conf.CleanupInterval = DefaultConfig.CleanupInterval
	}
	return conf
}
