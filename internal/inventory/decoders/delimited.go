package decoders

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
)

// FormatDelimited names delimited-text input in results and logs.
const FormatDelimited = "delimited"

// candidateDelimiters are tried, in tie-break order, when sniffing.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// DelimitedDecoder reads CSV-like text. The text is split on line breaks
// first, so a quote only ever affects its own line. Quoted fields may contain
// the delimiter. Blank lines are dropped.
type DelimitedDecoder struct {
	delimiter rune
}

// NewDelimitedDecoder returns a decoder for a file with extension ext. A
// non-zero delimiter overrides detection.
func NewDelimitedDecoder(ext string, delimiter rune) *DelimitedDecoder {
	if delimiter == 0 && (ext == ".tsv" || ext == ".tab") {
		delimiter = '\t'
	}
	return &DelimitedDecoder{delimiter: delimiter}
}

// Format implements Decoder.
func (d *DelimitedDecoder) Format() string { return FormatDelimited }

// Decode implements Decoder.
func (d *DelimitedDecoder) Decode(data []byte) (domain.Matrix, error) {
	text, err := toUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("decoders: %w: %v", domain.ErrUnreadableFile, err)
	}

	delimiter := d.delimiter
	if delimiter == 0 {
		delimiter = sniffDelimiter(text)
	}

	var rows domain.Matrix
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		record := splitLine(line, delimiter)
		if isBlank(record) {
			continue
		}
		rows = append(rows, record)
	}

	return rows, nil
}

// splitLine parses one physical line. A line whose quotes do not parse, such
// as an opening quote that is never closed, is split on the bare delimiter
// with stray quotes trimmed from each field.
func splitLine(line string, delimiter rune) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err == nil {
		return record
	}

	fields := strings.Split(line, string(delimiter))
	for i, f := range fields {
		fields[i] = strings.Trim(f, `"`)
	}
	return fields
}

// sniffDelimiter picks the candidate that occurs most often on the first
// non-blank line, outside quotes. Comma wins ties and empty input.
func sniffDelimiter(text string) rune {
	line := firstLine(text)

	best, bestCount := ',', 0
	for _, c := range candidateDelimiters {
		if n := countOutsideQuotes(line, c); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

func countOutsideQuotes(line string, c rune) int {
	n, quoted := 0, false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == c && !quoted:
			n++
		}
	}
	return n
}

// isBlank reports whether every field of record is whitespace, which drops
// lines made only of delimiters.
func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
