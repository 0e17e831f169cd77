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

package rosetta

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records the number and duration of API requests per endpoint.
type Metrics struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewMetrics creates the request metrics with the given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {

	requestOpts := prometheus.CounterOpts{
		Name:      "requests_total",
		Namespace: "lto",
		Subsystem: "rosetta",
		Help:      "number of handled API requests",
	}
	requests := promauto.With(registerer).NewCounterVec(requestOpts, []string{"endpoint", "status"})

	durationOpts := prometheus.HistogramOpts{
		Name:      "request_duration_seconds",
		Namespace: "lto",
		Subsystem: "rosetta",
		Help:      "duration of handled API requests",
		Buckets:   prometheus.DefBuckets,
	}
	durations := promauto.With(registerer).NewHistogramVec(durationOpts, []string{"endpoint"})

	m := Metrics{
		requests:  requests,
		durations: durations,
	}

	return &m
}

// Middleware returns an echo middleware that instruments every request.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			he, ok := err.(*echo.HTTPError)
			if ok {
				status = he.Code
			}

			endpoint := ctx.Path()
			m.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
			m.durations.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
