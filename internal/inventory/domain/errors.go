package domain

import "errors"

// Sentinel errors for file-level ingestion failures. Decoders wrap these so
// callers can classify failures without knowing the file format.
//
//	return fmt.Errorf("decoders: open workbook: %w", domain.ErrUnreadableFile)
var (
	// ErrUnreadableFile indicates the uploaded bytes could not be decoded
	// into rows at all.
	ErrUnreadableFile = errors.New("unreadable file")

	// ErrNoDataRows indicates the file decoded to fewer than two rows, i.e.
	// a header with no data beneath it (or nothing at all).
	ErrNoDataRows = errors.New("file has no data rows")
)
