package writer_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/parser"
	"go.birchlake.dev/xjs/writer"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden rewrites every testdata/*.xjs fixture and compares the result
// against its *.golden.xjs counterpart, then rewrites the golden itself to
// check the output is a fixed point.
func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.xjs"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, input := range inputs {
		if strings.HasSuffix(input, ".golden.xjs") {
			continue
		}

		t.Run(filepath.Base(input), func(t *testing.T) {
			goldenPath := strings.TrimSuffix(input, ".xjs") + ".golden.xjs"

			src, err := os.ReadFile(input)
			require.NoError(t, err)

			v, err := parser.Parse(string(src))
			require.NoError(t, err)

			got := writer.WriteXJS(v, lfOptions()) + "\n"

			if *update {
				require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))

				return
			}

			want, err := os.ReadFile(goldenPath)
			require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

			assert.Equal(t, string(want), got)

			// The golden form must be a fixed point of parse-then-write.
			v2, err := parser.Parse(string(want))
			require.NoError(t, err)
			assert.Equal(t, string(want), writer.WriteXJS(v2, lfOptions())+"\n")
		})
	}
}
