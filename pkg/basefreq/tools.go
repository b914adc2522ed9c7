package basefreq

import (
	"path/filepath"
	"strings"
)

// SampleName derives the sample label from a file path: the base name up to
// its first dot.
func SampleName(path string) string {
	return strings.SplitN(filepath.Base(path), ".", 2)[0]
}
