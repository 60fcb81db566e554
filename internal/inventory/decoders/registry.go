// Package decoders converts uploaded inventory files into a uniform matrix of
// string cells. The format is chosen purely from the file extension: workbook
// extensions go to the spreadsheet decoder, everything else is read as
// delimited text.
package decoders

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/util"
)

// Decoder turns raw file bytes into rows. Row 0 of the result is the header.
type Decoder interface {
	Decode(data []byte) (domain.Matrix, error)
	Format() string
}

// Options tune decoder construction.
type Options struct {
	// Delimiter forces the field separator for delimited text. Zero means
	// detect from the extension or the header line.
	Delimiter rune
}

// Factory builds a decoder for one file.
type Factory func(ext string, opts Options) Decoder

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
	fallback Factory
)

func init() {
	registerDefaults()
}

func registerDefaults() {
	for _, ext := range workbookExtensions {
		bind(ext, func(string, Options) Decoder { return &WorkbookDecoder{} })
	}
	fallback = func(ext string, opts Options) Decoder { return NewDelimitedDecoder(ext, opts.Delimiter) }
}

// register binds a decoder factory to an extension such as ".ods". It panics
// when the extension is empty or already bound.
func register(ext string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	bind(ext, factory)
}

// bind does the work of register; callers hold mu.
func bind(ext string, factory Factory) {
	normalized := util.NormalizeKey(ext)
	if normalized == "" {
		panic("decoders: empty extension")
	}
	if factory == nil {
		panic("decoders: nil factory")
	}
	if _, exists := registry[normalized]; exists {
		panic(fmt.Sprintf("decoders: extension %q already registered", ext))
	}
	registry[normalized] = factory
}

// reset restores the built-in extension bindings.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
	registerDefaults()
}

// ForFile returns the decoder for fileName.
func ForFile(fileName string, opts Options) Decoder {
	ext := util.NormalizeKey(filepath.Ext(fileName))

	mu.RLock()
	factory, ok := registry[ext]
	def := fallback
	mu.RUnlock()

	if !ok {
		factory = def
	}
	return factory(ext, opts)
}

// Decode decodes data using the decoder chosen for fileName and checks that
// the result holds at least a header and one data row.
func Decode(data []byte, fileName string, opts Options) (domain.Matrix, string, error) {
	dec := ForFile(fileName, opts)

	m, err := dec.Decode(data)
	if err != nil {
		return nil, dec.Format(), err
	}
	if len(m) < 2 {
		return nil, dec.Format(), fmt.Errorf("decoders: %s has %d row(s): %w", fileName, len(m), domain.ErrNoDataRows)
	}
	return m, dec.Format(), nil
}
