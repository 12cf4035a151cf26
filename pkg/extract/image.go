package extract

import (
	"github.com/otiai10/gosseract/v2"
)

// Image runs Tesseract OCR on a scanned screenshot or photo of a chat and
// returns the recognized text. Requires the tesseract library at runtime.
func Image(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return "", wrapAdapterErr("image", path, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", wrapAdapterErr("image", path, err)
	}

	return text, nil
}
