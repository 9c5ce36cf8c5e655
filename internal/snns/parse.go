package snns

import (
	"fmt"
	"io"
	"os"

	"snnspat2csv/internal/model"
)

const (
	versionHeader = "SNNS pattern definition file"
	generatedAt   = "generated at"
	patternsLabel = "No. of patterns"
	inputsLabel   = "No. of input units"
	outputsLabel  = "No. of output units"
)

// Header holds the fixed fields at the top of a pattern file.
type Header struct {
	Version      string
	GeneratedAt  string
	PatternCount int
	InputCount   int
	OutputCount  int
}

// ParseFile reads the pattern file at path and parses it.
func ParseFile(path string) (model.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.File{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.File{}, fmt.Errorf("%w: read %s: %w", ErrFileNotFound, path, err)
	}
	return Parse(string(data))
}

// Parse parses a complete pattern file: header followed by the value stream.
func Parse(text string) (model.File, error) {
	s := newScanner(text)
	hdr, err := parseHeader(s)
	if err != nil {
		return model.File{}, err
	}
	values, err := parseValues(s)
	if err != nil {
		return model.File{}, err
	}
	return model.File{
		Version:      hdr.Version,
		GeneratedAt:  hdr.GeneratedAt,
		PatternCount: hdr.PatternCount,
		InputCount:   hdr.InputCount,
		OutputCount:  hdr.OutputCount,
		Values:       values,
	}, nil
}

// ParseHeader parses only the header of text.
func ParseHeader(text string) (Header, error) {
	return parseHeader(newScanner(text))
}

func parseHeader(s *scanner) (Header, error) {
	var hdr Header
	if err := s.literal(versionHeader); err != nil {
		return Header{}, err
	}
	v, err := s.version()
	if err != nil {
		return Header{}, err
	}
	hdr.Version = v
	if err := s.literal(generatedAt); err != nil {
		return Header{}, err
	}
	hdr.GeneratedAt = s.restOfLine()

	fields := []struct {
		label string
		dst   *int
	}{
		{patternsLabel, &hdr.PatternCount},
		{inputsLabel, &hdr.InputCount},
		{outputsLabel, &hdr.OutputCount},
	}
	for _, f := range fields {
		if err := s.literal(f.label); err != nil {
			return Header{}, err
		}
		if err := s.literal(":"); err != nil {
			return Header{}, err
		}
		n, err := s.count("integer value for " + f.label)
		if err != nil {
			return Header{}, err
		}
		*f.dst = n
	}
	return hdr, nil
}

// parseValues consumes numeric tokens until end of input. At least one
// token is required.
func parseValues(s *scanner) ([]string, error) {
	var values []string
	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		tok, err := s.number()
		if err != nil {
			return nil, err
		}
		values = append(values, tok)
	}
	if len(values) == 0 {
		return nil, s.errorf("numeric value")
	}
	return values, nil
}
