// Copyright 2015 The go-ethereum Authors
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

package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/ledgerchain/node/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves r's collectors on /debug/metrics/prometheus. Callers own its
// lifecycle: Setup starts it in the background, Close shuts it down.
type Server struct {
	http *http.Server
}

// Setup starts an HTTP server on address exposing r's metrics in the
// Prometheus exposition format. A blank address is a no-op: metrics remain
// collectable in-process (e.g. by tests) but nothing is served. A failure to
// listen on address is logged from the serving goroutine; Setup does not
// return it.
func Setup(address string, r *Registry) *Server {
	if address == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/debug/metrics/prometheus", promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{}))

	srv := &Server{http: &http.Server{Addr: address, Handler: mux}}
	go func() {
		log.Info("metrics server listening", "address", address)
		if err := srv.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	return srv
}

// Close gracefully shuts the server down, bounding the wait at five seconds.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
