// Package devappscraper scrapes a municipal development-application
// register, locates its PDF attachments, and extracts development
// application records (application number, address, description, received
// date) into a persistent store.
//
// # Quick Start
//
//	cfg, err := config.Load(nil, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sink := store.NewJSONLFile(cfg.StorePath)
//	scraper, err := devappscraper.New(cfg, myPDFDecoder, sink, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := scraper.Run(context.Background())
//
// # Architecture
//
//   - Root package for the orchestration API (devappscraper.New, Scraper.Run)
//   - internal/engine wires the table reconstruction pipeline (components
//     A–H: geometry, vectorpath, gridbuild, textlayer, pagenorm, cellbind,
//     tablerows, records)
//   - internal/fetch, internal/store, internal/config, internal/obslog
//     provide the ambient fetching, persistence, configuration, and
//     logging this package composes
//   - export/ turns a completed run's records into CSV, JSON, or Excel
//
// # PDF decoding
//
// This package does not parse PDF files itself. Callers supply a Decoder
// that turns downloaded PDF bytes into a pdfmodel.PageSource; see
// internal/pdfmodel for the collaborator interface this module consumes.
//
// # Thread Safety
//
// A Scraper's Run is not safe to call concurrently on the same instance;
// run one Scraper per goroutine, or serialize calls to Run.
package devappscraper

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/coregx/devappscraper/internal/config"
	"github.com/coregx/devappscraper/internal/engine"
	"github.com/coregx/devappscraper/internal/fetch"
	"github.com/coregx/devappscraper/internal/obslog"
	"github.com/coregx/devappscraper/internal/pdfmodel"
	"github.com/coregx/devappscraper/internal/store"
)

// Version is the current version of the devappscraper library.
const Version = "0.1.0"

// Decoder turns downloaded PDF bytes into a pdfmodel.PageSource. It is the
// external PDF-rendering collaborator this package consumes but does not
// implement.
type Decoder func(pdfBytes []byte) (pdfmodel.PageSource, error)

// Stats summarizes one Run.
type Stats struct {
	PDFsProcessed    int
	PDFsFailed       int
	RecordsSeen      int
	RecordsInserted  int
	RecordsSkipped   int
}

// Scraper fetches, decodes, extracts, and persists one register's worth of
// development applications.
type Scraper struct {
	cfg     config.Config
	fetcher *fetch.Fetcher
	decode  Decoder
	sink    store.RecordSink
	logger  *zap.Logger
}

// New builds a Scraper. If logger is nil, one is built from cfg.LogStyle.
func New(cfg config.Config, decode Decoder, sink store.RecordSink, logger *zap.Logger) (*Scraper, error) {
	f, err := fetch.New(cfg.ProxyURL, rate.Limit(cfg.RequestsPerSecond), cfg.FetchBurst)
	if err != nil {
		return nil, fmt.Errorf("devappscraper: %w", err)
	}

	if logger == nil {
		style, parseErr := obslog.ParseStyle(cfg.LogStyle)
		if parseErr != nil {
			style = obslog.StyleTerminal
		}
		logger = obslog.New(&obslog.Config{Style: style})
	}

	return &Scraper{cfg: cfg, fetcher: f, decode: decode, sink: sink, logger: logger}, nil
}

// Run fetches the configured source page, discovers its PDF attachment
// links, samples up to cfg.SampleSize of them, and processes each:
// download, decode, extract records, persist. A single PDF's decode
// failure is logged and skipped; it does not abort the run.
func (s *Scraper) Run(ctx context.Context) (Stats, error) {
	links, err := s.fetcher.Index(ctx, s.cfg.SourceURL)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %v", ErrSourceUnreachable, err)
	}
	if len(links) == 0 {
		return Stats{}, ErrNoLinksFound
	}

	sampleSize := s.cfg.SampleSize
	if sampleSize <= 0 {
		sampleSize = len(links)
	}
	sampled := fetch.SamplePDFs(links, sampleSize)

	var stats Stats
	for _, pdfURL := range sampled {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		if err := s.processOne(ctx, pdfURL, &stats); err != nil {
			s.logger.Error("pdf processing failed, skipping this pdf",
				zap.String("url", pdfURL), zap.Error(err))
			stats.PDFsFailed++
			continue
		}
		stats.PDFsProcessed++
	}

	return stats, nil
}

func (s *Scraper) processOne(ctx context.Context, pdfURL string, stats *Stats) error {
	body, err := s.fetcher.PDF(ctx, pdfURL)
	if err != nil {
		return err
	}

	source, err := s.decode(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFDecodeFailed, err)
	}

	scrapeDate := time.Now().Format("2006-01-02")
	recs, err := engine.ProcessDocument(source, pdfURL, s.cfg.CommentURL, scrapeDate, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFDecodeFailed, err)
	}

	for _, r := range recs {
		inserted, err := s.sink.Insert(r)
		if err != nil {
			return fmt.Errorf("devappscraper: persisting record %s: %w", r.ApplicationNumber, err)
		}
		stats.RecordsSeen++
		if inserted {
			stats.RecordsInserted++
		} else {
			stats.RecordsSkipped++
		}
	}

	return nil
}
