package convert

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"snnspat2csv/internal/metrics"
	"snnspat2csv/internal/snns"
)

const defaultFileMode os.FileMode = 0o644

// RunConfig captures the knobs required by a conversion.
type RunConfig struct {
	Input    string
	Output   string
	Strict   bool
	FileMode os.FileMode
	Quiet    bool
}

// Run converts cfg.Input into CSV at cfg.Output. The output file is only
// touched once the whole CSV text has been produced.
func Run(cfg RunConfig) (metrics.Snapshot, error) {
	if cfg.Input == "" {
		return metrics.Snapshot{}, errors.New("convert: input path must be set")
	}
	if cfg.Output == "" {
		return metrics.Snapshot{}, errors.New("convert: output path must be set")
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = defaultFileMode
	}

	var window metrics.Window

	startParse := time.Now()
	file, err := snns.ParseFile(cfg.Input)
	if err != nil {
		return metrics.Snapshot{}, fmt.Errorf("parse %s: %w", cfg.Input, err)
	}
	parseTime := time.Since(startParse)

	startRender := time.Now()
	rows, err := Reshape(file.Values, file.InputCount, file.OutputCount, cfg.Strict)
	if err != nil {
		return metrics.Snapshot{}, fmt.Errorf("reshape %s: %w", cfg.Input, err)
	}
	text := Render(rows)
	renderTime := time.Since(startRender)

	padded := 0
	for _, row := range rows {
		padded += row.Padded
	}
	if !cfg.Quiet {
		log.Printf("version=%s patterns=%d inputs=%d outputs=%d chunk=%d values=%d",
			file.Version, file.PatternCount, file.InputCount, file.OutputCount, file.ChunkSize(), len(file.Values))
		if len(rows) != file.PatternCount {
			log.Printf("warning: header declares %d patterns, produced %d rows", file.PatternCount, len(rows))
		}
		if padded > 0 {
			log.Printf("warning: last row padded with %d empty fields", padded)
		}
	}

	startWrite := time.Now()
	if err := os.WriteFile(cfg.Output, []byte(text), cfg.FileMode); err != nil {
		return metrics.Snapshot{}, fmt.Errorf("%w %s: %w", ErrIO, cfg.Output, err)
	}
	writeTime := time.Since(startWrite)

	window.Record(len(file.Values), len(rows), padded, len(text), parseTime, renderTime, writeTime)
	return window.Snapshot(), nil
}
