package basefreq

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"

	// "compress/gzip"
	gzip "github.com/klauspost/pgzip"

	"github.com/liserjrqlxue/DNA/pkg/util"
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	math2 "github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// Bases is the fixed symbol alphabet, also the column order of the table.
var Bases = []byte("ATCGN")

// regexp
var (
	gz = regexp.MustCompile(`\.gz$`)
)

// PosFreq holds per-position base counts and frequencies over the first
// NumBases positions of a read set. Pos carries the 1-based position labels
// so that a sub-table extracted from a larger one keeps its original
// coordinates.
type PosFreq struct {
	Name     string
	NumBases int

	Pos   []int
	Count [5][]int
	Total []int
	Freq  [5][]float64

	// out-of-alphabet symbols seen while counting
	Other int
}

func NewPosFreq(name string, nBases int) *PosFreq {
	var pf = &PosFreq{
		Name:     name,
		NumBases: nBases,
		Pos:      make([]int, nBases),
		Total:    make([]int, nBases),
	}
	for i := 0; i < nBases; i++ {
		pf.Pos[i] = i + 1
	}
	for j := range Bases {
		pf.Count[j] = make([]int, nBases)
		pf.Freq[j] = make([]float64, nBases)
	}
	return pf
}

// CountFastq tallies bases of the first NumBases positions of every read in
// fq, which may be gzip compressed. With rc the reverse complement of each
// read is tallied instead. Call CalFreq afterwards.
func (pf *PosFreq) CountFastq(fq string, rc bool) error {
	var (
		file, err = os.Open(fq)
		scanner   *bufio.Scanner
		i         = -1
	)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(file)

	if gz.MatchString(fq) {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return err
		}
		defer simpleUtil.DeferClose(gr)
		scanner = bufio.NewScanner(gr)
	} else {
		scanner = bufio.NewScanner(file)
	}

	for scanner.Scan() {
		var line = scanner.Text()
		i++
		if i%4 != 1 {
			continue
		}
		if rc {
			line = util.ReverseComplement(line)
		}
		var n = min(pf.NumBases, len(line))
		for i2 := 0; i2 < n; i2++ {
			switch line[i2] {
			case 'A':
				pf.Count[0][i2]++
			case 'T':
				pf.Count[1][i2]++
			case 'C':
				pf.Count[2][i2]++
			case 'G':
				pf.Count[3][i2]++
			case 'N':
				pf.Count[4][i2]++
			default:
				pf.Other++
				continue
			}
			pf.Total[i2]++
		}
	}
	return scanner.Err()
}

// CalFreq converts counts to frequencies. A position nothing reached keeps
// frequency 0 for every base.
func (pf *PosFreq) CalFreq() {
	for i := 0; i < pf.NumBases; i++ {
		if pf.Total[i] == 0 {
			continue
		}
		for j := range Bases {
			pf.Freq[j][i] = math2.DivisionInt(pf.Count[j][i], pf.Total[i])
		}
	}
}

// WriteTable writes the frequency table as CSV, 1-based position first.
func (pf *PosFreq) WriteTable(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(file)

	var w = csv.NewWriter(file)
	if err := w.Write([]string{"Base Position", "A", "T", "C", "G", "N"}); err != nil {
		return err
	}
	for i := 0; i < pf.NumBases; i++ {
		var record = []string{strconv.Itoa(pf.Pos[i])}
		for j := range Bases {
			record = append(record, strconv.FormatFloat(pf.Freq[j][i], 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// LoadTable reloads a table written by WriteTable. A table longer than
// nBases is truncated to its first nBases rows.
func LoadTable(path string, nBases int) (*PosFreq, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer simpleUtil.DeferClose(file)

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table:[%s]", path)
	}

	var rows = records[1:]
	if len(rows) > nBases {
		rows = rows[:nBases]
	}

	var pf = NewPosFreq(SampleName(path), len(rows))
	for i, record := range rows {
		if len(record) != len(Bases)+1 {
			return nil, fmt.Errorf("bad table row:[%s]:[%v]", path, record)
		}
		pf.Pos[i], err = strconv.Atoi(record[0])
		if err != nil {
			return nil, err
		}
		for j := range Bases {
			pf.Freq[j][i], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, err
			}
		}
	}
	return pf, nil
}

// Extract picks 1-based positions. Exactly two positions select the
// inclusive range between them, any other count selects the listed
// positions. Frequencies are carried over unchanged.
func (pf *PosFreq) Extract(positions []int) (*PosFreq, error) {
	var picked []int
	if len(positions) == 2 {
		for p := positions[0]; p <= positions[1]; p++ {
			picked = append(picked, p)
		}
	} else {
		picked = positions
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("no positions selected:[%v]", positions)
	}

	var sub = NewPosFreq(pf.Name, len(picked))
	for i, p := range picked {
		if p < 1 || p > pf.NumBases {
			return nil, fmt.Errorf("position out of range:[%d]:[1..%d]", p, pf.NumBases)
		}
		sub.Pos[i] = pf.Pos[p-1]
		sub.Total[i] = pf.Total[p-1]
		for j := range Bases {
			sub.Count[j][i] = pf.Count[j][p-1]
			sub.Freq[j][i] = pf.Freq[j][p-1]
		}
	}
	return sub, nil
}

func (pf *PosFreq) WriteStats(output *os.File) {
	var reads = 0
	if pf.NumBases > 0 {
		reads = pf.Total[0]
	}
	fmtUtil.Fprintf(output, "Sample = %s\n", pf.Name)
	fmtUtil.Fprintf(output, "++ReadsNum = %d\n", reads)
	fmtUtil.Fprintf(output, "++Positions = %d\n", pf.NumBases)
	fmtUtil.Fprintf(output, "++OtherBaseNum = %d\n", pf.Other)
}
