package basefreq

import "testing"

func TestSampleName(t *testing.T) {
	var tests = []struct {
		path string
		want string
	}{
		{"example.fastq", "example"},
		{"data/example.fq.gz", "example"},
		{"/a/b/sample_1.clean.fq.gz", "sample_1"},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		if got := SampleName(tc.path); got != tc.want {
			t.Errorf("SampleName(%q) = %q; want %q", tc.path, got, tc.want)
		}
	}
}
