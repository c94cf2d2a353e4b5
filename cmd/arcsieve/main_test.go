package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want []float64
		ok   bool
	}{
		{line: "2 3 4", want: []float64{2, 3, 4}, ok: true},
		{line: "1.5,2.5, -3", want: []float64{1.5, 2.5, -3}, ok: true},
		{line: "\t7\t", want: []float64{7}, ok: true},
		{line: "   ", ok: false},
		{line: "# comment", ok: false},
	}

	for _, tt := range tests {
		got, ok, err := parseLine(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	_, _, err := parseLine("1 two 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestReadBatches(t *testing.T) {
	in := strings.NewReader("2 3\n\n# skip\n-\n4,5\n")

	var lines []int
	var batches [][]float64
	err := readBatches(in, func(line int, batch []float64) error {
		lines = append(lines, line)
		batches = append(batches, batch)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 4, 5}, lines)
	assert.Equal(t, [][]float64{{2, 3}, {}, {4, 5}}, batches)
}

func TestReadBatchesReportsLine(t *testing.T) {
	err := readBatches(strings.NewReader("1\nx\n"), func(int, []float64) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, newConfig(), c)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeFile(t, "arcsieve.toml", `
log_level = 1
monitor_age = 20.0

[pipeline]
sieve_level = 50
gap_threshold = 0.25
regular = [0.5]
`)

	c, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1, c.LogLevel)
	assert.Equal(t, 20.0, c.MonitorAge)
	assert.Equal(t, 50, c.Pipeline.SieveLevel)
	assert.Equal(t, 0.25, c.Pipeline.GapThreshold)
	assert.Equal(t, []float64{0.5}, c.Pipeline.Regular)
	assert.Equal(t, newConfig().Pipeline.MaxDenominator, c.Pipeline.MaxDenominator, "untouched keys keep defaults")
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, "a.toml", "sieve_levl = 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sieve_levl")
	})
	t.Run("invalid pipeline", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, "b.toml", "[pipeline]\nsieve_level = 1\n"))
		require.ErrorIs(t, err, core.ErrInvalidArgument)
	})
	t.Run("log level", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, "c.toml", "log_level = 99\n"))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		json:      true,
		reportLog: filepath.Join(dir, "reports.jsonl"),
		summary:   filepath.Join(dir, "summary.json"),
	}

	var out bytes.Buffer
	err := run(newConfig(), opts, strings.NewReader("2 3 4 5 6\n-\n"), &out)
	require.NoError(t, err)

	var recs []record
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var rec record
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		recs = append(recs, rec)
	}
	require.Len(t, recs, 2)

	assert.Equal(t, 1, recs[0].Line)
	assert.Equal(t, []float64{2}, recs[0].Report.Filtered)
	assert.Equal(t, 1, recs[0].Report.MajorCount)
	assert.Equal(t, 2, recs[1].Line)
	assert.True(t, recs[1].Report.SpecialSaturated)
	assert.NotEqual(t, recs[0].ID, recs[1].ID)

	logged, err := os.ReadFile(opts.reportLog)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(logged, []byte("\n")))

	data, err := os.ReadFile(opts.summary)
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, recs[1].ID, s.Last)
	assert.Equal(t, 2, s.Monitor.Batches)
	assert.Equal(t, 5, s.Monitor.Values)
	assert.Equal(t, 1, s.Monitor.Survivors)
}

func TestRunTable(t *testing.T) {
	var out bytes.Buffer
	err := run(newConfig(), options{}, strings.NewReader("2 2 2\n"), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "filtered")
	assert.Contains(t, text, "3/0 (ratio 3.0000)")
	assert.Contains(t, text, "gaps")
}

func TestRunRejectsInvalidBatch(t *testing.T) {
	err := run(newConfig(), options{}, strings.NewReader("1\nNaN\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunJSONDivergentSeries(t *testing.T) {
	opts := options{json: true, summary: filepath.Join(t.TempDir(), "summary.json")}

	var out bytes.Buffer
	err := run(newConfig(), opts, strings.NewReader("-500\n"), &out)
	require.NoError(t, err)

	var rec record
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &rec))
	assert.Equal(t, -500.0, rec.Report.AvgInput)
	assert.True(t, math.IsInf(rec.Report.SpecialValue, 1))
	assert.Contains(t, out.String(), `"special_value":"+Inf"`)

	data, err := os.ReadFile(opts.summary)
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal(data, &s))
	assert.True(t, math.IsInf(s.Monitor.SpecialValue, 1))
}

func TestLoadConfigStrictPole(t *testing.T) {
	c, err := loadConfig(writeFile(t, "strict.toml", "[pipeline]\nstrict_pole = true\nquantization = 6\n"))
	require.NoError(t, err)
	assert.True(t, c.Pipeline.StrictPole)
	assert.Equal(t, 6, c.Pipeline.Quantization)

	err = run(c, options{}, strings.NewReader("-\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, core.ErrNumericDegeneracy)
}
