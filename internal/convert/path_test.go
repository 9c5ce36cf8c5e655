package convert

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		input, output, dir, want string
	}{
		{input: "foo.bar.pat", want: "foo.csv"},
		{input: "run.v2.pat", want: "run.csv"},
		{input: filepath.Join("data", "xor.pat"), want: "xor.csv"},
		{input: "noext", want: "noext.csv"},
		{input: "xor.pat", output: "custom.out", want: "custom.out"},
		{input: "xor.pat", output: "custom.out", dir: "out", want: "custom.out"},
		{input: filepath.Join("data", "xor.pat"), dir: "out", want: filepath.Join("out", "xor.csv")},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, OutputPath(tc.input, tc.output, tc.dir), "input=%s output=%s dir=%s", tc.input, tc.output, tc.dir)
	}
}
