// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package catalog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// markupProbeBytes is how much of a file is inspected for HTML.
	markupProbeBytes = 4096

	// ctxCheckEvery bounds how many rows are read between cancellation checks.
	ctxCheckEvery = 4096
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidateDelimiters in tie-break order: comma wins ties.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// sniffDelimiter picks the candidate that occurs most often in the header
// line. Ties and headers without any candidate fall back to comma.
func sniffDelimiter(header string) rune {
	best, bestCount := ',', 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// looksLikeMarkup reports whether the probe contains an HTML document start.
func looksLikeMarkup(probe []byte) bool {
	lower := bytes.ToLower(probe)
	return bytes.Contains(lower, []byte("<html")) || bytes.Contains(lower, []byte("<!doctype html"))
}

// normalizeColumn lower-cases a header cell and drops underscores, spaces and
// dashes, so movieId, movie_id and "Movie ID" compare equal.
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(name)
}

// table is an open delimited file with a parsed header.
type table struct {
	r       *csv.Reader
	columns map[string]int
	line    int
}

// openTable validates and opens path. The returned closer must be called.
func openTable(path string, delimiter rune) (*table, io.Closer, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, nil, err
	}

	br := bufio.NewReaderSize(f, 64*1024)
	probe, err := br.Peek(markupProbeBytes)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		_ = f.Close()
		return nil, nil, err
	}
	if looksLikeMarkup(probe) {
		_ = f.Close()
		return nil, nil, ErrMarkup
	}
	if bytes.HasPrefix(probe, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		probe = probe[len(utf8BOM):]
	}

	if delimiter == 0 {
		headerLine := probe
		if i := bytes.IndexByte(probe, '\n'); i >= 0 {
			headerLine = probe[:i]
		}
		delimiter = sniffDelimiter(string(headerLine))
	}

	r := csv.NewReader(br)
	r.Comma = delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		_ = f.Close()
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("file is empty")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeColumn(h)
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}

	return &table{r: r, columns: columns, line: 1}, f, nil
}

// column returns the index of the first alias present in the header, or -1.
func (t *table) column(aliases ...string) int {
	for _, a := range aliases {
		if i, ok := t.columns[normalizeColumn(a)]; ok {
			return i
		}
	}
	return -1
}

// require is column with an ErrMissingColumn error.
func (t *table) require(aliases ...string) (int, error) {
	if i := t.column(aliases...); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %s", ErrMissingColumn, aliases[0])
}

// each calls fn for every data row. Blank lines are skipped by encoding/csv.
func (t *table) each(ctx context.Context, fn func(rec []string) error) error {
	for {
		rec, err := t.r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		t.line++
		if err != nil {
			return fmt.Errorf("line %d: %w", t.line, err)
		}
		if t.line%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := fn(rec); err != nil {
			return fmt.Errorf("line %d: %w", t.line, err)
		}
	}
}

// field returns rec[i] trimmed, or "" when the row is short.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseInt(rec []string, i int, name string) (int, error) {
	v, err := strconv.Atoi(field(rec, i))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, field(rec, i))
	}
	return v, nil
}

func parseFloat(rec []string, i int, name string) (float64, error) {
	v, err := strconv.ParseFloat(field(rec, i), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, field(rec, i))
	}
	return v, nil
}
