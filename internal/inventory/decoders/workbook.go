package decoders

import (
	"bytes"
	"fmt"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"

	"github.com/xuri/excelize/v2"
)

// FormatWorkbook names spreadsheet input in results and logs.
const FormatWorkbook = "workbook"

// workbookExtensions route to WorkbookDecoder. Legacy .xls is included so it
// fails as unreadable rather than being parsed as text.
var workbookExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".xls"}

// WorkbookDecoder reads the first worksheet of an Office Open XML workbook.
type WorkbookDecoder struct{}

// Format implements Decoder.
func (d *WorkbookDecoder) Format() string { return FormatWorkbook }

// Decode implements Decoder. Fully blank rows are dropped and every row is
// padded to the widest row, because the sheet reader trims trailing empty
// cells and a short row here is not a shape error.
func (d *WorkbookDecoder) Decode(data []byte) (domain.Matrix, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoders: open workbook: %w: %v", domain.ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("decoders: workbook has no sheets: %w", domain.ErrUnreadableFile)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("decoders: read sheet %q: %w: %v", sheets[0], domain.ErrUnreadableFile, err)
	}

	rows := make(domain.Matrix, 0, len(raw))
	width := 0
	for _, r := range raw {
		if isBlank(r) {
			continue
		}
		rows = append(rows, r)
		if len(r) > width {
			width = len(r)
		}
	}

	for i, r := range rows {
		if len(r) < width {
			padded := make([]string, width)
			copy(padded, r)
			rows[i] = padded
		}
	}

	return rows, nil
}
