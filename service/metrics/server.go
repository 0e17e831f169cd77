// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const namespace = "lto"

// Server is the http server that will be serving the /metrics request for prometheus.
type Server struct {
	server *http.Server
	log    zerolog.Logger
}

// NewServer creates a new server that exposes the metrics of the given gatherer.
func NewServer(log zerolog.Logger, address string, gatherer prometheus.Gatherer) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	m := Server{
		server: &http.Server{
			Addr:    address,
			Handler: mux,
		},
		log: log.With().Str("component", "metrics_server").Logger(),
	}

	return &m
}

// Start launches the server. It blocks until the server is stopped.
func (s *Server) Start() error {

	s.log.Info().Str("address", s.server.Addr).Msg("metrics server starting")

	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not listen and serve: %w", err)
	}

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
