package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// parseLine splits one batch on whitespace and commas. Blank lines and
// lines starting with '#' yield a nil batch and ok == false.
func parseLine(line string) (batch []float64, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	batch = make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid value %q: %w", f, err)
		}
		batch = append(batch, v)
	}
	return batch, true, nil
}

// readBatches calls fn for every batch line of r. A literal "-" line is an
// explicitly empty batch.
func readBatches(r io.Reader, fn func(line int, batch []float64) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if strings.TrimSpace(text) == "-" {
			if err := fn(n, []float64{}); err != nil {
				return err
			}
			continue
		}

		batch, ok, err := parseLine(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if !ok {
			continue
		}
		if err := fn(n, batch); err != nil {
			return err
		}
	}
	return sc.Err()
}
