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

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/lto-rosetta/codec/zbor"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/service/metrics"
	"github.com/optakt/lto-rosetta/testing/mocks"
)

func TestCodec_Marshal(t *testing.T) {
	t.Run("records sizes and keeps values decodable", func(t *testing.T) {
		t.Parallel()

		registry := prometheus.NewRegistry()
		codec := metrics.NewCodec(zbor.NewCodec(), registry)
		value := []lto.Sponsorship{{Sponsor: mocks.GenericSender, Height: mocks.GenericHeight}}

		data, err := codec.Marshal(value)
		require.NoError(t, err)

		var decoded []lto.Sponsorship
		require.NoError(t, codec.Unmarshal(data, &decoded))
		assert.Equal(t, value, decoded)

		families, err := registry.Gather()
		require.NoError(t, err)
		require.Len(t, families, 1)
		assert.Equal(t, "lto_stored_value_bytes", families[0].GetName())

		stages := make(map[string]uint64)
		for _, metric := range families[0].GetMetric() {
			labels := make(map[string]string)
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			assert.Equal(t, "sponsorships", labels["type"])
			stages[labels["stage"]] = metric.GetHistogram().GetSampleCount()
		}
		assert.Equal(t, map[string]uint64{"encoded": 1, "compressed": 1}, stages)
	})

	t.Run("handles encoding failure", func(t *testing.T) {
		t.Parallel()

		inner := mocks.BaselineCodec(t)
		inner.EncodeFunc = func(interface{}) ([]byte, error) {
			return nil, mocks.GenericError
		}
		codec := metrics.NewCodec(inner, prometheus.NewRegistry())

		_, err := codec.Marshal(mocks.GenericBytes)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles compression failure", func(t *testing.T) {
		t.Parallel()

		inner := mocks.BaselineCodec(t)
		inner.CompressFunc = func([]byte) ([]byte, error) {
			return nil, mocks.GenericError
		}
		codec := metrics.NewCodec(inner, prometheus.NewRegistry())

		_, err := codec.Marshal(mocks.GenericBytes)

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}
