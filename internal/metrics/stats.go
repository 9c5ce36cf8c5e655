package metrics

import "time"

// Window accumulates conversion stats until the next Snapshot.
type Window struct {
	values int
	rows   int
	padded int
	bytes  int
	parse  time.Duration
	render time.Duration
	write  time.Duration
	runs   int
}

// Record adds a new measurement to the window.
func (w *Window) Record(values, rows, padded, bytes int, parseTime, renderTime, writeTime time.Duration) {
	w.values += values
	w.rows += rows
	w.padded += padded
	w.bytes += bytes
	w.parse += parseTime
	w.render += renderTime
	w.write += writeTime
	w.runs++
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		Values: w.values,
		Rows:   w.rows,
		Padded: w.padded,
		Bytes:  w.bytes,
	}
	total := w.parse + w.render + w.write
	if total > 0 {
		snap.ValuesPerSec = float64(w.values) / total.Seconds()
	}
	if w.runs > 0 {
		snap.AvgParseMS = (w.parse.Seconds() * 1000) / float64(w.runs)
		snap.AvgRenderMS = (w.render.Seconds() * 1000) / float64(w.runs)
		snap.AvgWriteMS = (w.write.Seconds() * 1000) / float64(w.runs)
	}

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Values       int
	Rows         int
	Padded       int
	Bytes        int
	ValuesPerSec float64
	AvgParseMS   float64
	AvgRenderMS  float64
	AvgWriteMS   float64
}
