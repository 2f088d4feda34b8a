package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/db"
	"github.com/edafy/ingest-cli/internal/ingest"
	"github.com/edafy/ingest-cli/internal/qccache"
	"github.com/edafy/ingest-cli/internal/resilience"
	"github.com/edafy/ingest-cli/internal/store"
	"github.com/edafy/ingest-cli/pkg/coordtrans"
	"github.com/edafy/ingest-cli/pkg/extractor"
)

func initPool(ctx context.Context) (db.Pool, error) {
	return store.NewPool(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
		MaxConns: cfg.Store.MaxConns,
		MinConns: cfg.Store.MinConns,
	})
}

func initExtractor() extractor.Client {
	return extractor.NewClient(cfg.Extractor.BaseURL,
		extractor.WithRateLimit(cfg.Extractor.RateLimit),
		extractor.WithTimeout(time.Duration(cfg.Extractor.TimeoutSecs)*time.Second),
		extractor.WithCircuitBreaker(resilience.FromCircuitConfig(
			cfg.Extractor.BreakerThreshold, cfg.Extractor.BreakerResetSecs)),
	)
}

func initTransform() coordtrans.Client {
	return coordtrans.NewClient(cfg.Transform.BaseURL,
		coordtrans.WithTimeout(time.Duration(cfg.Transform.TimeoutSecs)*time.Second),
	)
}

// initPreviewer builds the QC previewer; a cache open failure degrades
// to an uncached previewer rather than failing the command.
func initPreviewer() *ingest.Previewer {
	var cache *qccache.Cache
	if cfg.Ingest.QCCachePath != "" {
		c, err := qccache.Open(cfg.Ingest.QCCachePath)
		if err != nil {
			zap.L().Warn("qc cache unavailable, validating uncached", zap.Error(err))
		} else {
			cache = c
		}
	}
	return ingest.NewPreviewer(initExtractor(), cache, cfg.Ingest.PreviewConcurrency)
}
