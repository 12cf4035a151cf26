// Package extract produces blocks of raw text from the carriers a chat
// export arrives in: plain text files, PDFs, word-processor documents and
// OCR-scanned images. The rest of the pipeline does not care which adapter
// produced the text.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FromFile extracts raw text from path, dispatching on the file extension.
// Unknown extensions are treated as plain text if they can be read, so logs
// and extension-less exports still work.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF(path)
	case ".docx":
		return Docx(path)
	case ".png", ".jpg", ".jpeg":
		return Image(path)
	default:
		return Text(path)
	}
}

// Supported reports whether the extension has a dedicated adapter.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".log", ".pdf", ".docx", ".png", ".jpg", ".jpeg", "":
		return true
	default:
		return false
	}
}

func wrapAdapterErr(kind, path string, err error) error {
	return fmt.Errorf("extracting text from %s file %s: %w", kind, path, err)
}
