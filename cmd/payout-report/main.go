// payout-report runs the settlement pipeline once over an export file and
// prints the summary and net settlement to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"payout/internal/cli"
	apphttp "payout/internal/http"
	applog "payout/internal/log"
	"payout/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: payout-report <export.csv>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := cli.LoadAndValidateConfig(logger)
	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read export", applog.FieldError, err.Error(), applog.FieldFile, path)
		os.Exit(1)
	}

	ctx := context.Background()
	reports := services.NewReportService()
	ledger := services.NewLedgerService(repo)

	summary, err := reports.Load(ctx, data, filepath.Base(path))
	if err != nil {
		logger.Error("Failed to process export", applog.FieldError, err.Error(), applog.FieldFile, path)
		os.Exit(1)
	}

	net, err := ledger.Net(ctx, summary)
	if err != nil {
		logger.Error("Failed to merge ledger", applog.FieldError, err.Error())
		os.Exit(1)
	}

	fmt.Printf("File: %s\n\n", filepath.Base(path))
	fmt.Println("Settlement Summary")
	fmt.Printf("  Total:      %s\n", apphttp.Peso(summary.Total))
	fmt.Printf("  Settled:    %s\n", apphttp.Peso(summary.Settled))
	fmt.Printf("  To Settle:  %s\n", apphttp.Peso(summary.NotSettled))
	fmt.Println()
	fmt.Println("Orders Summary")
	fmt.Printf("  In Transit: %d\n", summary.InTransit)
	fmt.Printf("  Completed:  %d\n", summary.Completed)
	fmt.Printf("  Delivered:  %d\n", summary.Delivered)
	fmt.Printf("  Total Qty:  %s\n", apphttp.PlainNumber(summary.TotalQuantity))

	if len(summary.VariationNames) > 0 {
		fmt.Println()
		fmt.Println("Variation Counts")
		for _, name := range summary.VariationNames {
			fmt.Printf("  %-30s %d\n", name, summary.VariationCounts[name])
		}
	}

	fmt.Println()
	fmt.Println("Net Settlement Breakdown")
	fmt.Printf("  Settled Amount: %s\n", apphttp.Peso(net.Settled))
	fmt.Printf("  Total Expenses: %s\n", apphttp.Peso(net.Expenses))
	classification := "surplus"
	if !net.Surplus() {
		classification = "deficit"
	}
	fmt.Printf("  Net:            %s (%s)\n", apphttp.Peso(net.Magnitude()), classification)
}
