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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/lto-rosetta/api/rosetta"
	"github.com/optakt/lto-rosetta/codec/zbor"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/address"
	"github.com/optakt/lto-rosetta/rosetta/configuration"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/node"
	"github.com/optakt/lto-rosetta/rosetta/retriever"
	"github.com/optakt/lto-rosetta/rosetta/sponsor"
	"github.com/optakt/lto-rosetta/rosetta/submitter"
	"github.com/optakt/lto-rosetta/rosetta/transactor"
	"github.com/optakt/lto-rosetta/rosetta/validator"
	"github.com/optakt/lto-rosetta/service/metrics"
	"github.com/optakt/lto-rosetta/service/storage"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAPI        string
		flagBurn       uint64
		flagCache      uint64
		flagData       string
		flagFee        int64
		flagLevel      string
		flagMetrics    string
		flagNetwork    string
		flagPort       uint16
		flagReference  string
		flagSmartCodes bool
		flagTimeout    time.Duration
	)

	pflag.StringVarP(&flagAPI, "api", "a", "http://127.0.0.1:6869", "base URL of the LTO node API")
	pflag.Uint64Var(&flagBurn, "burn-height", 0, "block height from which transaction fees are partially burned")
	pflag.Uint64Var(&flagCache, "cache-size", node.DefaultConfig.CacheSize, "maximum size in bytes of cached node responses")
	pflag.StringVarP(&flagData, "data-dir", "d", "data", "directory for the sponsorship database")
	pflag.Int64Var(&flagFee, "transfer-fee", lto.DefaultTransferFee, "fee in atomic units for constructed transfers")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.StringVarP(&flagNetwork, "network", "n", lto.Testnet, "network to serve (mainnet or testnet)")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host Rosetta API on")
	pflag.StringVarP(&flagReference, "reference-api", "r", "", "base URL of the reference LTO node API used for reads the main node can not serve")
	pflag.BoolVar(&flagSmartCodes, "smart-status-codes", false, "enable smart non-500 HTTP status codes for Rosetta API errors")
	pflag.DurationVar(&flagTimeout, "timeout", node.DefaultConfig.Timeout, "timeout for requests to the node API")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Check if the configured network is valid.
	params, ok := lto.Lookup(flagNetwork)
	if !ok {
		log.Error().Str("network", flagNetwork).Strs("supported", lto.Networks()).Msg("invalid network")
		return failure
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	err = metrics.RegisterBadgerMetrics(registry)
	if err != nil {
		log.Error().Err(err).Msg("could not register badger metrics")
		return failure
	}

	// Initialize the sponsorship database.
	db, err := badger.Open(lto.DefaultOptions(flagData))
	if err != nil {
		log.Error().Str("data_dir", flagData).Err(err).Msg("could not open sponsorship database")
		return failure
	}
	defer db.Close()

	codec := metrics.NewCodec(zbor.NewCodec(), registry)
	store := storage.NewStore(storage.New(codec), db)
	ledger := sponsor.NewMetricsLedger(sponsor.New(store), registry)

	// Initialize the node API clients. Reads go to the main node first and to
	// the reference node when the main node can not serve them.
	primary, err := node.New(flagAPI, node.WithCacheSize(flagCache), node.WithTimeout(flagTimeout))
	if err != nil {
		log.Error().Str("api", flagAPI).Err(err).Msg("could not initialize node client")
		return failure
	}
	readers := []node.Reader{primary}
	if flagReference != "" {
		reference, err := node.New(flagReference, node.WithCacheSize(flagCache), node.WithTimeout(flagTimeout))
		if err != nil {
			log.Error().Str("reference_api", flagReference).Err(err).Msg("could not initialize reference node client")
			return failure
		}
		readers = append(readers, reference)
	}
	reader := node.NewFallback(readers...)

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	last, err := reader.Last(ctx)
	cancel()
	if err != nil {
		log.Error().Str("api", flagAPI).Err(err).Msg("could not reach node API")
		return failure
	}
	log.Info().Uint64("height", last.Height).Str("network", params.Network).Msg("connected to node API")

	// Rosetta API initialization.
	resolve := address.New(params.ChainID)
	convert := converter.New(resolve, ledger, reader, flagBurn)
	build := lto.NewBuilder(lto.WithFee(flagFee))
	submit := submitter.New(primary)
	transact := transactor.New(resolve, build, convert, submit)
	retrieve := retriever.New(reader, convert, ledger)
	validate := validator.New()
	config := configuration.New(params, flagAPI, flagReference)

	construction := rosetta.NewConstruction(config, validate, transact)
	data := rosetta.NewData(config, validate, retrieve)
	instrument := rosetta.NewMetrics(registry)

	if flagSmartCodes {
		rosetta.EnableSmartCodes()
	}

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(instrument.Middleware())
	server.POST("/construction/derive", construction.Derive)
	server.POST("/construction/preprocess", construction.Preprocess)
	server.POST("/construction/metadata", construction.Metadata)
	server.POST("/construction/payloads", construction.Payloads)
	server.POST("/construction/parse", construction.Parse)
	server.POST("/construction/combine", construction.Combine)
	server.POST("/construction/hash", construction.Hash)
	server.POST("/construction/submit", construction.Submit)
	server.POST("/block/transaction", data.Transaction)

	var metricsSrv *metrics.Server
	if flagMetrics != "" {
		metricsSrv = metrics.NewServer(log, flagMetrics, registry)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Msg("LTO Rosetta Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("LTO Rosetta Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("LTO Rosetta Server stopped")
	}()
	if metricsSrv != nil {
		go func() {
			err := metricsSrv.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("LTO Rosetta Server stopping")
	case <-done:
		log.Info().Msg("LTO Rosetta Server done")
	case <-failed:
		log.Warn().Msg("LTO Rosetta Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if metricsSrv != nil {
		err = metricsSrv.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
		}
	}
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Rosetta API")
		return failure
	}

	return success
}
