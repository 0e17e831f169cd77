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
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/lto-rosetta/models/lto"
)

// Codec wraps a codec and records the encoded and compressed size of every
// value it marshals.
type Codec struct {
	lto.Codec
	sizes *prometheus.HistogramVec
}

// NewCodec creates a codec that records value sizes with the given registerer.
func NewCodec(codec lto.Codec, registerer prometheus.Registerer) *Codec {

	sizeOpts := prometheus.HistogramOpts{
		Name:      "stored_value_bytes",
		Namespace: namespace,
		Help:      "size of stored values before and after compression",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
	}
	sizes := promauto.With(registerer).NewHistogramVec(sizeOpts, []string{"type", "stage"})

	c := Codec{
		Codec: codec,
		sizes: sizes,
	}

	return &c
}

func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	data, err := c.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("could not encode value: %w", err)
	}
	compressed, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("could not compress data: %w", err)
	}
	name := "unknown"
	switch value.(type) {
	case []lto.Sponsorship:
		name = "sponsorships"
	case lto.Sponsorship:
		name = "sponsorship"
	}
	c.sizes.WithLabelValues(name, "encoded").Observe(float64(len(data)))
	c.sizes.WithLabelValues(name, "compressed").Observe(float64(len(compressed)))
	return compressed, nil
}
