package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	devappscraper "github.com/coregx/devappscraper"
	"github.com/coregx/devappscraper/export"
	"github.com/coregx/devappscraper/internal/config"
	"github.com/coregx/devappscraper/internal/obslog"
	"github.com/coregx/devappscraper/internal/pdfmodel"
	"github.com/coregx/devappscraper/internal/store"
)

var (
	scrapeConfigFile   string
	scrapeSourceURL    string
	scrapeCommentURL   string
	scrapeStorePath    string
	scrapeSampleSize   int
	scrapeLogStyle     string
	scrapeExportFormat string
	scrapeExportFile   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one scrape of the configured register",
	Long: `Fetch the configured register page, discover its PDF attachment links,
sample up to --sample_size of them, reconstruct each PDF's table, and
persist the extracted records to the configured store.

Examples:
  devappscraper scrape --source_url https://council.example/register
  devappscraper scrape --config devappscraper.yaml
  devappscraper scrape --source_url https://council.example/register --export records.csv --export-format csv`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeConfigFile, "config", "", "Path to a YAML/TOML/JSON config file")
	scrapeCmd.Flags().StringVar(&scrapeSourceURL, "source_url", "", "Register page to fetch and scan for PDF links")
	scrapeCmd.Flags().StringVar(&scrapeCommentURL, "comment_url", "", "Fixed contact URL emitted on every record")
	scrapeCmd.Flags().StringVar(&scrapeStorePath, "store_path", "", "JSON-lines file records are persisted to")
	scrapeCmd.Flags().IntVar(&scrapeSampleSize, "sample_size", 0, "Cap on how many discovered PDFs to process (0 = all)")
	scrapeCmd.Flags().StringVar(&scrapeLogStyle, "log_style", "", "Logger style: terminal, json, noop")
	scrapeCmd.Flags().StringVar(&scrapeExportFormat, "export-format", "", "Additionally export every record in the store: csv, json, xlsx")
	scrapeCmd.Flags().StringVar(&scrapeExportFile, "export", "", "File to write the additional export to")
}

// noDecoder is the CLI's decoder until a real PDF-rendering collaborator is
// wired in; PDF decoding is an external concern this module does not
// implement (see internal/pdfmodel).
func noDecoder(_ []byte) (pdfmodel.PageSource, error) {
	return nil, fmt.Errorf("devappscraper: no PDF decoder wired; supply one via devappscraper.New")
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags(), scrapeConfigFile)
	if err != nil {
		return err
	}

	logStyle, err := obslog.ParseStyle(cfg.LogStyle)
	if err != nil {
		logStyle = obslog.StyleTerminal
	}
	logger := obslog.New(&obslog.Config{Style: logStyle})
	defer func() { _ = logger.Sync() }()

	printVerbosef("Source: %s", cfg.SourceURL)
	printVerbosef("Store:  %s", cfg.StorePath)

	sink := store.NewJSONLFile(cfg.StorePath)

	scraper, err := devappscraper.New(cfg, noDecoder, sink, logger)
	if err != nil {
		return fmt.Errorf("failed to build scraper: %w", err)
	}

	stats, err := scraper.Run(context.Background())
	if err != nil {
		return fmt.Errorf("scrape run failed: %w", err)
	}

	fmt.Printf("Processed %d PDF(s), %d failed, %d record(s) inserted (%d duplicate)\n",
		stats.PDFsProcessed, stats.PDFsFailed, stats.RecordsInserted, stats.RecordsSkipped)

	if scrapeExportFormat != "" {
		return runExport(sink)
	}
	return nil
}

func runExport(sink *store.JSONLFile) error {
	recs, err := sink.All()
	if err != nil {
		return fmt.Errorf("failed to read store for export: %w", err)
	}

	exporter, err := buildExporter(scrapeExportFormat)
	if err != nil {
		return err
	}

	out, cleanup, err := exportDestination()
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	return exporter.Export(recs, out)
}

func buildExporter(format string) (export.RecordExporter, error) {
	switch format {
	case "csv":
		return export.NewCSVExporter(), nil
	case "json":
		return export.NewJSONExporter(), nil
	case "xlsx":
		return export.NewExcelExporter(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q: must be csv, json, or xlsx", format)
	}
}

func exportDestination() (*os.File, func(), error) {
	if scrapeExportFile != "" {
		f, err := os.Create(scrapeExportFile) //nolint:gosec // G304: user-specified output file
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create export file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	return os.Stdout, nil, nil
}
