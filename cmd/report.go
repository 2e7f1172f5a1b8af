package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jekabolt/grbpwr-dashboard/config"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/export"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/jekabolt/grbpwr-dashboard/internal/period"
	"github.com/jekabolt/grbpwr-dashboard/internal/report"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
	"github.com/jekabolt/grbpwr-dashboard/log"
	"github.com/spf13/cobra"
)

var (
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Build a single dashboard and write it as JSON or CSV",
		RunE:  runReport,
	}

	reportPeriod string
	reportStart  string
	reportEnd    string
	reportTop    int
	reportFormat string
	reportOut    string
)

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "", "day, week, month, year or custom; month by default, custom when --start and --end are set")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "window start, RFC3339 or YYYY-MM-DD")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "exclusive window end, RFC3339 or YYYY-MM-DD")
	reportCmd.Flags().IntVar(&reportTop, "top", 0, "cap the product table, 0 uses the configured default")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "json", "json or csv")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "output file, stdout when empty")
}

// openStore loads the config and connects to mysql for the one-shot commands.
func openStore(ctx context.Context) (*config.Config, *store.MYSQLStore, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(cfg.Logger, os.Stderr))

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	return cfg, db, nil
}

func output(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("can't create output file: %w", err)
	}
	return f, f.Close, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportFormat != "json" && reportFormat != "csv" {
		return fmt.Errorf("unknown format %q", reportFormat)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	rs, err := report.New(&cfg.Report, db.Fetcher(), metrics.New(), nil)
	if err != nil {
		return fmt.Errorf("can't create report service: %w", err)
	}

	q := entity.ReportQuery{View: "cli", TopProducts: reportTop}
	loc := rs.Resolver().Location()
	if q.Start, err = period.ParseBound("start", reportStart, loc); err != nil {
		return err
	}
	if q.End, err = period.ParseBound("end", reportEnd, loc); err != nil {
		return err
	}
	if q.Period, err = period.InferPeriod(reportPeriod, q.Start, q.End); err != nil {
		return err
	}

	d, err := rs.Build(ctx, q)
	if err != nil {
		return fmt.Errorf("can't build dashboard: %w", err)
	}
	for _, w := range d.Warnings {
		slog.Default().WarnContext(ctx, "records unavailable", slog.String("source", w))
	}

	w, closeFn, err := output(reportOut)
	if err != nil {
		return err
	}
	if reportFormat == "csv" {
		err = export.WriteCSV(w, d)
	} else {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(d)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}
