// Command periodica serves the periodic-table reference corpus from the
// command line: it prints a reference table or the assembled neutral-state
// dataset, or persists export artifacts through the configured blob store.
// Store and blob drivers are selected via PERIODICA_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"periodica"
	"periodica/internal/export"
	"periodica/pkg/chem"
	"periodica/pkg/frame"
)

func main() {
	table := flag.String("table", "elements", "reference table to fetch")
	neutral := flag.Bool("neutral", false, "print the assembled neutral-state dataset instead of a raw table")
	format := flag.String("format", "csv", "output format: csv or json")
	persist := flag.Bool("export", false, "persist the table as artifacts via the blob store instead of printing")
	flag.Parse()

	if err := run(context.Background(), *table, *neutral, *format, *persist); err != nil {
		fmt.Fprintf(os.Stderr, "periodica: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, table string, neutral bool, format string, persist bool) error {
	zl, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	svc, err := periodica.Open(ctx, periodica.WithLogger(periodica.NewZapLogger(zl)))
	if err != nil {
		return err
	}

	if persist {
		arts, err := svc.ExportTable(ctx, chem.Table(table), export.Format(format))
		if err != nil {
			return err
		}
		for _, art := range arts {
			fmt.Printf("%s\t%d bytes\tsha256:%s\n", art.Key, art.SizeBytes, art.Checksum)
		}
		return nil
	}

	var f *frame.Frame
	if neutral {
		f, err = svc.NeutralData(ctx)
	} else {
		f, err = svc.Table(ctx, chem.Table(table))
	}
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return f.WriteCSV(os.Stdout)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(f)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
