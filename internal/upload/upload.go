// Package upload gates CV attachments before they are forwarded to the
// apply endpoint. The check is on the declared type only; file content
// is never sniffed, so a relabelled file can still pass. That is a
// known limitation of the gate, not a security control.
package upload

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxCVBytes is the CV size ceiling.
const MaxCVBytes = 10 << 20

// ErrUnsupportedType is the user-facing rejection message.
var ErrUnsupportedType = errors.New("Only PDF, DOC, and DOCX files are allowed.")

// ErrTooLarge is the user-facing message for oversized uploads.
var ErrTooLarge = errors.New("CV must be 10MB or smaller.")

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var mimeTypeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateCV accepts a CV only when the declared MIME type is allowed,
// the extension is allowed, and the two form the canonical pairing. A
// .pdf declared as application/msword is rejected even though both
// halves are individually acceptable. No extension rejects outright.
func ValidateCV(filename, mimeType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ErrUnsupportedType
	}

	expected, allowedExt := mimeTypeByExtension[ext]
	if !allowedExt || !allowedMimeTypes[mimeType] || mimeType != expected {
		return ErrUnsupportedType
	}

	return nil
}
