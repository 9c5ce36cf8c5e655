package convert

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"snnspat2csv/internal/model"
)

// maxPadding caps how many empty fields a short final row may receive, which
// bounds the memory a header with absurd unit counts can request.
const maxPadding = 1 << 16

var (
	// ErrDomain indicates the header declares an unusable row width.
	ErrDomain = errors.New("convert: invalid chunk size")
	// ErrShortPattern indicates the value count is not a multiple of the
	// chunk size. Only returned in strict mode.
	ErrShortPattern = errors.New("convert: value count is not a multiple of the chunk size")
	// ErrIO indicates the output file could not be written.
	ErrIO = errors.New("convert: write output")
)

// Reshape groups values into rows of inputCount+outputCount fields. A short
// final group is padded with empty fields unless strict is set, in which
// case it is rejected. A row wider than the values by more than maxPadding
// fields is rejected with ErrDomain.
func Reshape(values []string, inputCount, outputCount int, strict bool) ([]model.Row, error) {
	if inputCount < 0 || outputCount < 0 || inputCount > math.MaxInt-outputCount {
		return nil, fmt.Errorf("%w (inputs=%d outputs=%d)", ErrDomain, inputCount, outputCount)
	}
	chunk := inputCount + outputCount
	if chunk <= 0 {
		return nil, fmt.Errorf("%w: must be > 0 (inputs=%d outputs=%d)", ErrDomain, inputCount, outputCount)
	}
	if chunk > len(values) && chunk-len(values) > maxPadding {
		return nil, fmt.Errorf("%w: %d fields per row for %d values", ErrDomain, chunk, len(values))
	}
	rem := len(values) % chunk
	if strict && rem != 0 {
		return nil, fmt.Errorf("%w: %d values, chunk size %d", ErrShortPattern, len(values), chunk)
	}

	count := len(values) / chunk
	if rem != 0 {
		count++
	}
	rows := make([]model.Row, 0, count)
	for start := 0; start < len(values); start += chunk {
		fields := make([]string, chunk)
		n := copy(fields, values[start:])
		rows = append(rows, model.Row{Fields: fields, Padded: chunk - n})
	}
	return rows, nil
}

// Render joins each row with commas and terminates it with a newline.
func Render(rows []model.Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row.Fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
