// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxAttachmentBytes bounds the size of an attached source document.
const maxAttachmentBytes = 20 << 20

// Attachment is an official syllabus document (image or PDF) attached to a
// generation request.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Base64 returns the attachment bytes in the wire encoding.
func (a *Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// extensionMIMETypes maps known source-document extensions to MIME types.
// Extension wins over content sniffing for PDFs, whose magic prefix
// http.DetectContentType already recognizes, and for JPEG/PNG images.
var extensionMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// LoadAttachment reads a local image or PDF file and detects its MIME type.
func LoadAttachment(path string) (*Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	if info.Size() > maxAttachmentBytes {
		return nil, fmt.Errorf("attachment %s exceeds %d MB", path, maxAttachmentBytes>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}

	mimeType, ok := extensionMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mimeType = http.DetectContentType(data)
	}

	return &Attachment{MIMEType: mimeType, Data: data}, nil
}
