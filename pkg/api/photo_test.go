package api

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/unihub/cli/pkg/errors"
)

// pngHeader is the minimal signature http.DetectContentType needs to
// sniff image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestValidatePhotoFile(t *testing.T) {
	path := writeTempFile(t, "avatar.png", append(pngHeader, bytes.Repeat([]byte{0}, 64)...))
	if err := ValidatePhotoFile(path); err != nil {
		t.Errorf("Valid PNG rejected: %v", err)
	}
}

func TestValidatePhotoFileBadExtension(t *testing.T) {
	path := writeTempFile(t, "document.pdf", []byte("%PDF-1.4"))
	err := ValidatePhotoFile(path)
	if err == nil {
		t.Fatal("PDF extension should be rejected")
	}
	if cliErr, ok := err.(*errors.CLIError); !ok || cliErr.Type != errors.ErrorTypePhotoFormat {
		t.Errorf("Error = %v, want a photo format error", err)
	}
}

// TestValidatePhotoFileSniffsContent verifies a text file renamed to
// .png fails the MIME sniff before any request is sent.
func TestValidatePhotoFileSniffsContent(t *testing.T) {
	path := writeTempFile(t, "fake.png", []byte("just some text pretending to be an image"))
	if err := ValidatePhotoFile(path); err == nil {
		t.Error("Non-image content should be rejected")
	}
}

func TestValidatePhotoFileTooLarge(t *testing.T) {
	content := append(pngHeader, make([]byte, MaxPhotoSize)...)
	path := writeTempFile(t, "huge.png", content)

	err := ValidatePhotoFile(path)
	if err == nil {
		t.Fatal("Oversized photo should be rejected")
	}
	if cliErr, ok := err.(*errors.CLIError); !ok || cliErr.Type != errors.ErrorTypePhotoSize {
		t.Errorf("Error = %v, want a photo size error", err)
	}
}

func TestValidatePhotoFileMissing(t *testing.T) {
	if err := ValidatePhotoFile(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Error("Missing file should be rejected")
	}
}
