package basefreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotFiles(t *testing.T) {
	var (
		pf  = countFastq(t, []string{"AATGCC", "ATTGCC"}, 6, false, false)
		dir = t.TempDir()
	)

	var png = filepath.Join(dir, "full.png")
	require.NoError(t, pf.PlotLine(png, true))
	assertNonEmpty(t, png)

	var sub, err = pf.Extract([]int{2, 4})
	require.NoError(t, err)
	var rangePng = filepath.Join(dir, "range.png")
	require.NoError(t, sub.PlotRange(rangePng, 2, 4))
	assertNonEmpty(t, rangePng)

	var html = filepath.Join(dir, "full.html")
	pf.PlotHTML(html)
	assertNonEmpty(t, html)
}

func assertNonEmpty(t *testing.T, path string) {
	t.Helper()
	var info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
