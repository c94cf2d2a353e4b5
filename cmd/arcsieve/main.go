// Command arcsieve runs batches of real values through the sieve, arc and
// special function stages and prints one report per batch.
//
// Usage:
//
//	arcsieve [flags] [file ...]
//
// Each non-blank input line is one batch of whitespace or comma separated
// values. A line holding only "-" is an empty batch. Without file arguments
// batches are read from standard input.
//
// Examples:
//
//	echo "2 3 4 5 6" | arcsieve
//	arcsieve -json -config arcsieve.toml batches.txt
//	arcsieve -report-log reports.jsonl -summary summary.json batches.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-arcsieve/dsp/pipeline"
	"github.com/google/uuid"
	"github.com/jedisct1/dlog"
)

const AppVersion = "0.1.0"

type options struct {
	json      bool
	reportLog string
	summary   string
}

func main() {
	dlog.Init("arcsieve", dlog.SeverityNotice, "DAEMON")

	configFile := flag.String("config", "", "path to a TOML configuration file")
	jsonOut := flag.Bool("json", false, "print JSON lines instead of tables")
	reportFile := flag.String("report-log", "", "append JSON reports to this rotating log file")
	summaryFile := flag.String("summary", "", "atomically rewrite this file with smoothed statistics")
	debug := flag.Bool("debug", false, "enable debug logging")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: arcsieve [flags] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reads one batch of values per line and prints a report per batch.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(AppVersion)
		return
	}

	config, err := loadConfig(*configFile)
	if err != nil {
		dlog.Fatal(err)
	}
	configureLogging(config, *debug)
	dlog.Noticef("arcsieve %s", AppVersion)

	opts := options{json: *jsonOut, reportLog: config.ReportLog, summary: config.SummaryFile}
	if *reportFile != "" {
		opts.reportLog = *reportFile
	}
	if *summaryFile != "" {
		opts.summary = *summaryFile
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		if err := run(config, opts, os.Stdin, os.Stdout); err != nil {
			dlog.Fatal(err)
		}
		return
	}
	for _, name := range inputs {
		if err := runFile(config, opts, name); err != nil {
			dlog.Fatal(err)
		}
	}
}

func runFile(config Config, opts options, name string) error {
	fp, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fp.Close()

	dlog.Infof("reading batches from [%s]", name)
	return run(config, opts, fp, os.Stdout)
}

// run processes every batch of in and writes reports to out.
func run(config Config, opts options, in io.Reader, out io.Writer) error {
	p, err := pipeline.New(config.Pipeline)
	if err != nil {
		return err
	}
	monitor := pipeline.NewMonitor(config.MonitorAge)

	var log io.WriteCloser
	if opts.reportLog != "" {
		log = reportLog(config, opts.reportLog)
		defer log.Close()
	}

	start := time.Now()
	err = readBatches(in, func(line int, batch []float64) error {
		r, err := p.Process(batch)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		monitor.Observe(r)

		rec := record{ID: uuid.NewString(), Time: time.Now(), Line: line, Report: r}
		if r.SpecialSaturated {
			dlog.Warnf("batch %s: special value saturated near the pole", rec.ID)
		}

		if opts.json {
			if err := writeRecord(out, rec); err != nil {
				return err
			}
		} else {
			printReport(out, rec)
		}

		if log != nil {
			if err := writeRecord(log, rec); err != nil {
				return err
			}
		}
		if opts.summary != "" {
			s := summary{Updated: rec.Time, Last: rec.ID, Monitor: monitor.Snapshot()}
			if err := writeSummary(opts.summary, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	snap := monitor.Snapshot()
	stats := p.Evaluator().CacheStats()
	dlog.Infof("processed %d batches (%d values) in %v, cache hit ratio %.2f",
		snap.Batches, snap.Values, time.Since(start).Round(time.Millisecond), stats.HitRatio())
	return nil
}
