package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"SeqQC/pkg/basefreq"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input fastq, support .gz",
	)
	tableInput = flag.String(
		"a",
		"",
		"input base frequencies table, use instead of -i",
	)
	outputPrefix = flag.String(
		"o",
		"",
		"output file name prefix",
	)
	nBases = flag.Int(
		"n",
		85,
		"number of bases to analyze",
	)
	positions = flag.String(
		"s",
		"",
		"specific 1-based positions or range to plot, separated by comma, e.g. 8,16",
	)
	specificPrefix = flag.String(
		"sp",
		"",
		"output file name prefix for specific positions plot, default <prefix>_<start>_<end>",
	)
	interactive = flag.Bool(
		"interactive",
		false,
		"generate an interactive HTML plot",
	)
	addPercent = flag.Bool(
		"percent",
		false,
		"add percentage labels to the static image",
	)
	useRC = flag.Bool(
		"rc",
		false,
		"count reverse complement of each read",
	)
	xlsxOut = flag.Bool(
		"xlsx",
		false,
		"also write the table as xlsx",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *outputPrefix == "" {
		flag.PrintDefaults()
		log.Fatal("-o required!")
	}
	if *input == "" && *tableInput == "" {
		flag.PrintDefaults()
		log.Fatal("-i or -a required!")
	}

	var pf *basefreq.PosFreq
	if *tableInput != "" {
		pf = simpleUtil.HandleError(basefreq.LoadTable(*tableInput, *nBases))
	} else {
		pf = basefreq.NewPosFreq(basefreq.SampleName(*input), *nBases)
		slog.Info("count fastq", "fastq", *input, "nBases", *nBases, "rc", *useRC)
		simpleUtil.CheckErr(pf.CountFastq(*input, *useRC))
		pf.CalFreq()
		if pf.Other > 0 {
			slog.Warn("skip bases out of ATCGN", "count", pf.Other)
		}
		simpleUtil.CheckErr(pf.WriteTable(*outputPrefix + ".csv"))
	}

	if *positions != "" {
		var pos []int
		for _, s := range strings.Split(*positions, ",") {
			pos = append(pos, simpleUtil.HandleError(strconv.Atoi(strings.TrimSpace(s))))
		}
		var sub = simpleUtil.HandleError(pf.Extract(pos))
		var start, end = sub.Pos[0], sub.Pos[sub.NumBases-1]
		var prefix = *specificPrefix
		if prefix == "" {
			prefix = fmt.Sprintf("%s_%d_%d", *outputPrefix, start, end)
		}
		simpleUtil.CheckErr(sub.PlotRange(prefix+".png", start, end))
	}

	simpleUtil.CheckErr(pf.PlotLine(*outputPrefix+".png", *addPercent))
	if *interactive {
		pf.PlotHTML(*outputPrefix + ".html")
	}
	if *xlsxOut {
		pf.WriteXlsx(*outputPrefix + ".xlsx")
	}

	pf.WriteStats(os.Stdout)
	color.HiGreen("stat base content of %s done\n", pf.Name)
	slog.Info("Done", "time", time.Since(t0))
}
