package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	content := "[05/06/2024, 09:00] Alice: Hello\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got != content {
		t.Errorf("FromFile() = %q, want %q", got, content)
	}
}

func TestFromFile_UnknownExtensionFallsBackToText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.chat")
	if err := os.WriteFile(path, []byte("plain content"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got != "plain content" {
		t.Errorf("FromFile() = %q", got)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile("/nonexistent/export.txt"); err == nil {
		t.Error("FromFile() expected error for missing file")
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"export.txt", true},
		{"export.log", true},
		{"export.pdf", true},
		{"export.docx", true},
		{"shot.png", true},
		{"shot.jpg", true},
		{"shot.JPEG", true},
		{"export", true},
		{"export.chat", false},
		{"data.csv", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
