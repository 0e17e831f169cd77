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

package sponsor_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/sponsor"
	"github.com/optakt/lto-rosetta/testing/mocks"
)

func TestMetricsLedger(t *testing.T) {
	registry := prometheus.NewRegistry()
	ledger := sponsor.NewMetricsLedger(sponsor.New(memoryStore(t, nil)), registry)

	recipient := mocks.GenericAddress(1)
	first := mocks.GenericAddress(2)

	err := ledger.Apply(lto.Grant(recipient, first, 10), lto.Revoke(first, recipient), lto.Grant(recipient, first, 11))
	require.NoError(t, err)

	got, ok, err := ledger.Resolve(recipient, 11)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, got)

	_, ok, err = ledger.Resolve(mocks.GenericAddress(5), 11)
	require.NoError(t, err)
	assert.False(t, ok)

	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				values[family.GetName()+"/"+label.GetValue()] = metric.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, float64(2), values["lto_sponsorship_effects_total/grant"])
	assert.Equal(t, float64(1), values["lto_sponsorship_effects_total/revoke"])
	assert.Equal(t, float64(1), values["lto_sponsorship_resolutions_total/sponsored"])
	assert.Equal(t, float64(1), values["lto_sponsorship_resolutions_total/self"])
}
