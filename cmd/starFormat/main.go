package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"SeqQC/pkg/starlog"
)

// flag
var (
	dir = flag.String(
		"d",
		"",
		"directory of STAR *.final.out summaries",
	)
	output = flag.String(
		"o",
		"",
		"output csv",
	)
	suffix = flag.String(
		"s",
		starlog.DefaultSuffix,
		"summary file name suffix",
	)
	xlsx = flag.String(
		"xlsx",
		"",
		"also write the table as xlsx",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *dir == "" || *output == "" {
		flag.PrintDefaults()
		log.Fatal("-d/-o required!")
	}

	var summary = simpleUtil.HandleError(starlog.ProcessDir(*dir, *suffix))
	simpleUtil.CheckErr(summary.WriteCSV(*output))
	if *xlsx != "" {
		summary.WriteXlsx(*xlsx)
	}

	color.HiGreen("aggregate %d summaries, %d metrics\n", len(summary.Samples), len(summary.Keys))
	slog.Info("Done", "time", time.Since(t0))
}
