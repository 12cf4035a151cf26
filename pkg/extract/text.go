package extract

import "os"

// Text reads a plain-text export as-is.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input paths are expected
	if err != nil {
		return "", wrapAdapterErr("text", path, err)
	}
	return string(data), nil
}
