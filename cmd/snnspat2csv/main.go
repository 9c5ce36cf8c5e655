package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"snnspat2csv/internal/config"
	"snnspat2csv/internal/convert"
)

const defaultConfigPath = "snnspat2csv.yaml"

var errUsage = errors.New("expected arguments: input [output]")

// options captures the flag values that shape a run.
type options struct {
	configPath    string
	defaultConfig string
	strict        bool
	outputDir     string
	quiet         bool
}

func main() {
	opts := options{defaultConfig: defaultConfigPath}
	flag.StringVar(&opts.configPath, "config", "", "Path to YAML config (default "+defaultConfigPath+" if present)")
	flag.BoolVar(&opts.strict, "strict", false, "Reject a value count that is not a multiple of the row width")
	flag.StringVar(&opts.outputDir, "output-dir", "", "Directory for the derived output file")
	flag.BoolVar(&opts.quiet, "quiet", false, "Only log failures")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input [output]\n\nConvert an SNNS pattern file to CSV.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	runCfg, err := buildRunConfig(flag.Args(), opts)
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	if !runCfg.Quiet {
		log.Printf("input=%s output=%s", runCfg.Input, runCfg.Output)
	}

	snap, err := convert.Run(runCfg)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	if !runCfg.Quiet {
		log.Printf("rows=%d values=%d padded=%d bytes=%d values_per_sec=%.1f parse_ms=%.2f render_ms=%.2f write_ms=%.2f",
			snap.Rows,
			snap.Values,
			snap.Padded,
			snap.Bytes,
			snap.ValuesPerSec,
			snap.AvgParseMS,
			snap.AvgRenderMS,
			snap.AvgWriteMS,
		)
	}
}

// buildRunConfig resolves positional arguments and configuration into a
// conversion request. An explicit config path must exist; the default one
// is only read when present.
func buildRunConfig(args []string, opts options) (convert.RunConfig, error) {
	if len(args) < 1 || len(args) > 2 {
		return convert.RunConfig{}, fmt.Errorf("%w (got %d)", errUsage, len(args))
	}
	input := args[0]
	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOptional(opts.defaultConfig)
	}
	if err != nil {
		return convert.RunConfig{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(config.Overrides{
		Strict:    opts.strict,
		OutputDir: opts.outputDir,
		Quiet:     opts.quiet,
	})

	if err := cfg.Validate(); err != nil {
		return convert.RunConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	mode, err := cfg.Mode()
	if err != nil {
		return convert.RunConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	return convert.RunConfig{
		Input:    input,
		Output:   convert.OutputPath(input, output, cfg.OutputDir),
		Strict:   cfg.Strict,
		FileMode: mode,
		Quiet:    cfg.Quiet,
	}, nil
}
