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

package sponsor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/lto-rosetta/models/lto"
)

const (
	labelKind   = "kind"
	labelResult = "result"

	kindGrant  = "grant"
	kindRevoke = "revoke"

	resultSponsored = "sponsored"
	resultSelf      = "self"
	resultError     = "error"
)

// MetricsLedger wraps the ledger and records metrics for its activity.
type MetricsLedger struct {
	ledger *Ledger

	effects     *prometheus.CounterVec
	resolutions *prometheus.CounterVec
}

// NewMetricsLedger wraps the given ledger, registering its metrics with the
// given registerer.
func NewMetricsLedger(ledger *Ledger, registerer prometheus.Registerer) *MetricsLedger {
	factory := promauto.With(registerer)

	effectOpts := prometheus.CounterOpts{
		Name:      "sponsorship_effects_total",
		Namespace: "lto",
		Help:      "the number of applied sponsorship grants and revocations",
	}
	effects := factory.NewCounterVec(effectOpts, []string{labelKind})

	resolutionOpts := prometheus.CounterOpts{
		Name:      "sponsorship_resolutions_total",
		Namespace: "lto",
		Help:      "the number of fee payer resolutions",
	}
	resolutions := factory.NewCounterVec(resolutionOpts, []string{labelResult})

	m := MetricsLedger{
		ledger:      ledger,
		effects:     effects,
		resolutions: resolutions,
	}

	return &m
}

func (m *MetricsLedger) Resolve(address string, height uint64) (string, bool, error) {
	sponsor, ok, err := m.ledger.Resolve(address, height)
	switch {
	case err != nil:
		m.resolutions.WithLabelValues(resultError).Inc()
	case ok:
		m.resolutions.WithLabelValues(resultSponsored).Inc()
	default:
		m.resolutions.WithLabelValues(resultSelf).Inc()
	}
	return sponsor, ok, err
}

func (m *MetricsLedger) Apply(effects ...lto.Effect) error {
	err := m.ledger.Apply(effects...)
	if err != nil {
		return err
	}
	for _, effect := range effects {
		switch effect.Kind {
		case lto.EffectGrant:
			m.effects.WithLabelValues(kindGrant).Inc()
		case lto.EffectRevoke:
			m.effects.WithLabelValues(kindRevoke).Inc()
		}
	}
	return nil
}
