// Package ecdict parses the ECDICT CSV dump into domain words.
// Pure function: reader in, domain structs out. No database dependencies.
package ecdict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// Stats describes one parse run.
type Stats struct {
	TotalRows int
	Skipped   int
}

// columns maps a header name to its index. Unknown headers are ignored.
type columns map[string]int

func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]domain.Word, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open ECDICT file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an ECDICT CSV. The header row names the columns; "word" is
// required. A single "phonetic" column fills both phonetic fields unless
// british_phonetic or american_phonetic are present. Rows without a word or
// with a malformed number are skipped and counted.
func Parse(r io.Reader) ([]domain.Word, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Stats{}, nil
		}
		return nil, Stats{}, fmt.Errorf("read header: %w", err)
	}

	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		cols[name] = i
	}
	if _, ok := cols["word"]; !ok {
		return nil, Stats{}, fmt.Errorf("header has no word column")
	}

	var (
		words []domain.Word
		stats Stats
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", stats.TotalRows+2, err)
		}
		stats.TotalRows++

		w, ok := parseRow(cols, record)
		if !ok {
			stats.Skipped++
			continue
		}
		words = append(words, w)
	}

	return words, stats, nil
}

func parseRow(cols columns, record []string) (domain.Word, bool) {
	value := domain.NormalizeValue(cols.get(record, "word"))
	if value == "" {
		return domain.Word{}, false
	}

	collins, err := optionalInt(cols.get(record, "collins"))
	if err != nil {
		return domain.Word{}, false
	}
	bnc, err := optionalInt(cols.get(record, "bnc"))
	if err != nil {
		return domain.Word{}, false
	}
	frq, err := optionalInt(cols.get(record, "frq"))
	if err != nil {
		return domain.Word{}, false
	}

	w := domain.Word{
		Value:       value,
		UKPhone:     cols.get(record, "british_phonetic"),
		USPhone:     cols.get(record, "american_phonetic"),
		Definition:  unescape(cols.get(record, "definition")),
		Translation: unescape(cols.get(record, "translation")),
		POS:         cols.get(record, "pos"),
		Oxford:      cols.get(record, "oxford") == "1",
		Tag:         cols.get(record, "tag"),
		BNC:         bnc,
		FRQ:         frq,
		Exchange:    domain.ParseExchange(cols.get(record, "exchange")),
	}
	if collins != nil {
		w.Collins = *collins
	}
	if phonetic := cols.get(record, "phonetic"); phonetic != "" {
		if w.UKPhone == "" {
			w.UKPhone = phonetic
		}
		if w.USPhone == "" {
			w.USPhone = phonetic
		}
	}
	return w, true
}

// optionalInt parses an integer column; an empty cell is unknown (nil).
func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// unescape turns the literal "\n" sequences of the dump into newlines.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
