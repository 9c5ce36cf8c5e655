package model

// File is the parsed content of one SNNS pattern definition file.
type File struct {
	Version      string
	GeneratedAt  string
	PatternCount int
	InputCount   int
	OutputCount  int
	// Values keeps every numeric token as written in the source file.
	Values []string
}

// ChunkSize returns the number of fields per pattern.
func (f File) ChunkSize() int {
	return f.InputCount + f.OutputCount
}

// Row is one pattern: input fields followed by output fields. Padded counts
// the empty fields appended to a short final row.
type Row struct {
	Fields []string
	Padded int
}
