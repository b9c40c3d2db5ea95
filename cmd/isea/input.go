package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// records returns groups of n numbers, taken from args when present and
// otherwise read from in, one group per line. Blank lines and lines starting
// with # are skipped; fields may be separated by spaces, tabs or commas.
func records(args []string, in io.Reader, n int) ([][]float64, error) {
	if len(args) > 0 {
		if len(args)%n != 0 {
			return nil, errors.Errorf("expected a multiple of %d arguments, got %d", n, len(args))
		}
		var out [][]float64
		for i := 0; i < len(args); i += n {
			rec, err := parseFields(args[i : i+n])
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
		return out, nil
	}

	var out [][]float64
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) != n {
			return nil, errors.Errorf("line %d: expected %d fields, got %d", line, n, len(fields))
		}
		rec, err := parseFields(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, rec)
	}
	return out, errors.Wrap(scanner.Err(), "reading input")
}

func parseFields(fields []string) ([]float64, error) {
	rec := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", f)
		}
		rec[i] = v
	}
	return rec, nil
}

// faceIndex converts a parsed number to a face index.
func faceIndex(v float64) (int, error) {
	face := int(v)
	if float64(face) != v {
		return 0, errors.Errorf("face must be an integer, got %v", v)
	}
	return face, nil
}
