// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAttachment(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantMIME string
	}{
		{"pdf by extension", "syllabus.pdf", []byte("%PDF-1.4 body"), "application/pdf"},
		{"png by extension", "syllabus.png", []byte("\x89PNG\r\n\x1a\n rest"), "image/png"},
		{"uppercase extension", "SYLLABUS.JPG", []byte{0xff, 0xd8, 0xff, 0x00}, "image/jpeg"},
		{"unknown extension sniffed", "syllabus.bin", []byte("%PDF-1.4 body"), "application/pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.filename, tt.data)
			att, err := LoadAttachment(path)
			if err != nil {
				t.Fatal(err)
			}
			if att.MIMEType != tt.wantMIME {
				t.Errorf("MIMEType = %q, want %q", att.MIMEType, tt.wantMIME)
			}
			if string(att.Data) != string(tt.data) {
				t.Error("data not carried verbatim")
			}
		})
	}
}

func TestLoadAttachmentMissing(t *testing.T) {
	if _, err := LoadAttachment(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAttachmentBase64(t *testing.T) {
	att := Attachment{Data: []byte("%PDF-1.4")}
	if got := att.Base64(); got != "JVBERi0xLjQ=" {
		t.Errorf("Base64() = %q", got)
	}
}
