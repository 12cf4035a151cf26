package extract

import (
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Docx extracts the paragraph text of a word-processor document, one
// paragraph per line, matching the layout of a pasted chat export.
func Docx(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input paths are expected
	if err != nil {
		return "", wrapAdapterErr("DOCX", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", wrapAdapterErr("DOCX", path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", wrapAdapterErr("DOCX", path, err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}
