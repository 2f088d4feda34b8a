package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/internal/qc"
	"github.com/edafy/ingest-cli/internal/qccache"
	"github.com/edafy/ingest-cli/pkg/extractor"
)

// Previewer runs the standalone QC pass: classify, extract metadata,
// validate. It holds no transaction; a per-file extraction failure is
// reported on that file only and never aborts its siblings.
type Previewer struct {
	extract extractor.Client
	cache   *qccache.Cache
	limit   int
}

// NewPreviewer builds a previewer. cache may be nil to disable result
// caching; limit bounds the number of files in flight at once.
func NewPreviewer(extract extractor.Client, cache *qccache.Cache, limit int) *Previewer {
	if limit <= 0 {
		limit = 4
	}
	return &Previewer{extract: extract, cache: cache, limit: limit}
}

// Preview validates every file in an ingestion family and returns one
// report per file, in input order.
func (p *Previewer) Preview(ctx context.Context, paths []string, dt model.DataType) ([]qc.FileReport, error) {
	reports := make([]qc.FileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i, path := range paths {
		g.Go(func() error {
			reports[i] = p.previewOne(ctx, path, dt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (p *Previewer) previewOne(ctx context.Context, path string, dt model.DataType) qc.FileReport {
	rec := model.Classify(path, dt)
	format := qc.FormatFor(dt)
	report := qc.FileReport{FileName: rec.Name, Format: format}

	if !model.AllowedExtension(rec.Extension, dt) {
		report.Result = qc.Result{Issues: []qc.Issue{{
			Field:   "extension",
			Message: "FORMAT is null or invalid.",
		}}}
		return report
	}

	record, err := p.extractRecord(ctx, path, &rec)
	if err != nil {
		// Extraction failure outside a transaction is per-file, not
		// batch-fatal.
		zap.L().Warn("extraction failed", zap.String("file", rec.Name), zap.Error(err))
		report.Result = qc.Result{Issues: []qc.Issue{{
			Field:   "file",
			Message: "Extraction failed: " + err.Error(),
		}}}
		return report
	}

	if p.cache != nil {
		key, keyErr := qccache.KeyFor(path, record)
		if keyErr == nil {
			if cached, ok, getErr := p.cache.Get(ctx, key); getErr == nil && ok {
				report.Result = cached
				return report
			}
			report.Result = qc.Validate(&rec, format, time.Now())
			if putErr := p.cache.Put(ctx, key, format, report.Result); putErr != nil {
				zap.L().Warn("qc cache write failed", zap.Error(putErr))
			}
			return report
		}
		zap.L().Warn("qc cache key failed", zap.String("file", rec.Name), zap.Error(keyErr))
	}

	report.Result = qc.Validate(&rec, format, time.Now())
	return report
}

// extractRecord fills the format half of a file record and returns the
// extracted record for cache keying.
func (p *Previewer) extractRecord(ctx context.Context, path string, rec *model.FileRecord) (any, error) {
	switch rec.DataType {
	case model.DataTypeSeismic:
		segy, err := p.extract.ExtractSegy(ctx, path)
		if err != nil {
			return nil, err
		}
		rec.Segy = segy
		return segy, nil
	case model.DataTypeWell:
		las, err := p.extract.ExtractLas(ctx, path)
		if err != nil {
			return nil, err
		}
		rec.Las = las
		return las, nil
	default:
		other, err := p.extract.ExtractOther(ctx, path)
		if err != nil {
			return nil, err
		}
		rec.Other = other
		return other, nil
	}
}
