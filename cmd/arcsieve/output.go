package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-arcsieve/dsp/pipeline"
	"github.com/dchest/safefile"
	"github.com/jedisct1/dlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// record is one line of the JSON report log and of -json output.
type record struct {
	ID     string          `json:"id"`
	Time   time.Time       `json:"time"`
	Line   int             `json:"line"`
	Report pipeline.Report `json:"report"`
}

// summary is written atomically after every batch when a summary file is
// configured.
type summary struct {
	Updated time.Time                `json:"updated"`
	Last    string                   `json:"last_id"`
	Monitor pipeline.MonitorSnapshot `json:"monitor"`
}

// reportLog returns a rotating writer for fileName, or stdout when asked.
func reportLog(c Config, fileName string) io.WriteCloser {
	if fileName == "/dev/stdout" {
		return nopCloser{os.Stdout}
	}
	if st, _ := os.Stat(fileName); st != nil && st.IsDir() {
		dlog.Fatalf("[%v] is a directory", fileName)
	}

	return &lumberjack.Logger{
		LocalTime:  true,
		MaxSize:    c.LogMaxSize,
		MaxAge:     c.LogMaxAge,
		MaxBackups: c.LogMaxBackups,
		Filename:   fileName,
		Compress:   true,
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeRecord(w io.Writer, rec record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(append(line, '\n'))
	return err
}

func writeSummary(path string, s summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return safefile.WriteFile(path, append(data, '\n'), 0o644)
}

func printReport(w io.Writer, rec record) {
	r := rec.Report
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "batch\t%s (line %d)\n", rec.ID, rec.Line)
	fmt.Fprintf(tw, "input\t%d values, mean %.6g\n", r.Input.Length, r.AvgInput)
	fmt.Fprintf(tw, "filtered\t%s\n", formatValues(r.Filtered))
	fmt.Fprintf(tw, "twins\t%d\n", len(r.Twins))
	fmt.Fprintf(tw, "major/minor\t%d/%d (ratio %.4f)\n", r.MajorCount, r.MinorCount, r.MajorMinorRatio)
	fmt.Fprintf(tw, "arc averages\t%.6g / %.6g\n", r.MajorAvg, r.MinorAvg)

	special := fmt.Sprintf("%.6g (%s)", r.SpecialValue, r.SpecialBranch)
	if r.SpecialSaturated {
		special += " saturated"
	}
	fmt.Fprintf(tw, "special value\t%s\n", special)
	fmt.Fprintf(tw, "richness\t%.4f\n", r.LocalStructureRichness)
	fmt.Fprintf(tw, "dimension\t%.6g\n", r.DimensionEstimate)

	gaps := make([]string, len(r.Gaps))
	for i, g := range r.Gaps {
		gaps[i] = fmt.Sprintf("[%g, %g]", g.Start, g.End)
	}
	fmt.Fprintf(tw, "gaps\t%s\n", orNone(strings.Join(gaps, " ")))

	tw.Flush()
	fmt.Fprintln(w)
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return orNone(strings.Join(parts, " "))
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
