// Package starlog aggregates STAR aligner Log.final.out summaries from one
// directory into a single metrics table, one column per sample.
package starlog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// DefaultSuffix names STAR per-sample summary files.
const DefaultSuffix = ".final.out"

// the four read-classification section headers, dropped while parsing
var sectionHeaders = ahocorasick.NewStringMatcher([]string{
	"UNIQUE READS:",
	"MULTI-MAPPING READS:",
	"UNMAPPED READS:",
	"CHIMERIC READS:",
})

// Summary is the aggregated metrics table. Samples keeps directory scan
// order, Keys keeps the union of metric keys in first-seen order across all
// parsed files.
type Summary struct {
	Samples []string
	Keys    []string
	Data    map[string]map[string]string

	seen map[string]bool
}

func NewSummary() *Summary {
	return &Summary{
		Data: make(map[string]map[string]string),
		seen: make(map[string]bool),
	}
}

// ParseFinalOut extracts the `key | value` lines of one summary file,
// trimmed, in encounter order. Section header lines are skipped.
func ParseFinalOut(path string) (map[string]string, []string) {
	var (
		data  = make(map[string]string)
		order []string
	)
	for _, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if len(sectionHeaders.Match([]byte(line))) > 0 {
			continue
		}
		var key, value, found = strings.Cut(line, "|")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		data[key] = strings.TrimSpace(value)
		order = append(order, key)
	}
	return data, order
}

// Add appends one sample column and unions its keys into the row order.
func (s *Summary) Add(sample string, data map[string]string, order []string) {
	s.Samples = append(s.Samples, sample)
	s.Data[sample] = data
	for _, key := range order {
		if !s.seen[key] {
			s.seen[key] = true
			s.Keys = append(s.Keys, key)
		}
	}
}

// ProcessDir parses every `*<suffix>` file of dir. The column name is the
// file name with its last extension stripped. A missing dir propagates the
// fs error; no matching file yields an empty Summary.
func ProcessDir(dir, suffix string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var summary = NewSummary()
	for _, entry := range entries {
		var name = entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		var data, order = ParseFinalOut(filepath.Join(dir, name))
		summary.Add(strings.TrimSuffix(name, filepath.Ext(name)), data, order)
	}
	return summary, nil
}

// WriteCSV writes the table, rows in Keys order, missing cells empty.
func (s *Summary) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(file)

	var w = csv.NewWriter(file)
	if err := w.Write(append([]string{"Metrics"}, s.Samples...)); err != nil {
		return err
	}
	for _, key := range s.Keys {
		var record = []string{key}
		for _, sample := range s.Samples {
			record = append(record, s.Data[sample][key])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
