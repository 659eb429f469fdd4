// Command seed-panels generates synthetic panel records and submits them to
// a running panelboard service.
package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/panelboard/internal/panelgen"
	"github.com/okian/panelboard/pkg/logger"
)

const (
	defaultCount     = 5000
	defaultBatchSize = 100
	defaultTimeout   = 30 * time.Second
	runTimeout       = 10 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:9080", "Base URL of the service")
		count     = flag.Int("panels", defaultCount, "Number of panels to generate and submit")
		batchSize = flag.Int("batch", defaultBatchSize, "Panels per POST /panels request")
		workers   = flag.Int("workers", runtime.NumCPU(), "Number of concurrent submitters")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Generator seed; reuse it to reproduce a panel")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		output    = flag.String("output", "", "Also write the generated panels to this .json or .yaml file")
		verbose   = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	_, err := panelgen.Run(ctx, panelgen.Config{
		BaseURL:    *baseURL,
		Count:      *count,
		BatchSize:  *batchSize,
		Workers:    *workers,
		Seed:       *seed,
		Timeout:    *timeout,
		OutputFile: *output,
	})
	if err != nil {
		logger.Get().Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
}
