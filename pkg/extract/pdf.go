package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the plain text of every page of a PDF document.
func PDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", wrapAdapterErr("PDF", path, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", wrapAdapterErr("PDF", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", wrapAdapterErr("PDF", path, err)
	}

	return buf.String(), nil
}
