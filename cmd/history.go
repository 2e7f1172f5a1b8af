package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/jekabolt/grbpwr-dashboard/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Summarize every month from the first order to the last",
		RunE:  runHistory,
	}

	historyFormat string
	historyOut    string
)

func init() {
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "table", "table or json")
	historyCmd.Flags().StringVarP(&historyOut, "output", "o", "", "output file, stdout when empty")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyFormat != "table" && historyFormat != "json" {
		return fmt.Errorf("unknown format %q", historyFormat)
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

	first, last, err := db.OrderBounds(ctx)
	if err != nil {
		return err
	}
	if first == nil || last == nil {
		fmt.Println("no orders")
		return nil
	}

	rs, err := report.New(&cfg.Report, db.Fetcher(), metrics.New(), nil)
	if err != nil {
		return fmt.Errorf("can't create report service: %w", err)
	}

	months := report.Months(*first, *last, rs.Resolver().Location())
	bar := progressbar.Default(int64(len(months)))
	rows, err := rs.History(ctx, *first, *last, func() { _ = bar.Add(1) })
	if err != nil {
		return fmt.Errorf("can't build history: %w", err)
	}
	_ = bar.Finish()

	w, closeFn, err := output(historyOut)
	if err != nil {
		return err
	}
	if historyFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(rows)
	} else {
		err = writeHistoryTable(w, rows)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}

func writeHistoryTable(w io.Writer, rows []entity.MonthSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "month\trevenue\torders\taov\titems/order\ttop product\t")
	for _, r := range rows {
		top := "-"
		if r.Overview.TopProduct != nil {
			top = r.Overview.TopProduct.ProductName
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t\n",
			r.Month,
			r.Overview.TotalRevenue.StringFixed(2),
			r.Overview.TotalOrders,
			r.Overview.AvgOrderValue.StringFixed(2),
			r.Overview.ItemsPerOrder.StringFixed(2),
			top,
		)
	}
	return tw.Flush()
}
