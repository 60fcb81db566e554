package decoders

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// toUTF8 returns data as UTF-8 text with any byte order mark removed.
//
// UTF-8 and UTF-16 are recognised by their BOM. BOM-less input that is not
// valid UTF-8 is read as Latin-1, which is what spreadsheet tools on Windows
// usually produce for "CSV" exports.
func toUTF8(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		// Default endianness is irrelevant: BOMOverride reads it from the BOM.
		dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", fmt.Errorf("utf-16: %w", err)
		}
		return string(out), nil
	}

	if utf8.Valid(data) {
		out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("utf-8: %w", err)
		}
		return string(out), nil
	}

	// A UTF-8 BOM in front of invalid bytes is still a BOM, not "ï»¿".
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(bytes.TrimPrefix(data, bomUTF8))
	if err != nil {
		return "", fmt.Errorf("latin-1: %w", err)
	}
	return string(out), nil
}
