package storage

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/goliatone/go-club-setup/internal/apperr"
)

// FileUploadInput carries a file inline as base64, optionally as a data URL.
type FileUploadInput struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	Base64      string `json:"base64"`
}

// Decode turns the input into a File.
func (in FileUploadInput) Decode() (File, error) {
	payload := strings.TrimSpace(in.Base64)
	contentType := in.ContentType

	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		meta, data, found := strings.Cut(rest, ",")
		if !found {
			return File{}, apperr.Validation("Invalid data URL for %s", in.Filename)
		}
		mediaType, _, _ := strings.Cut(meta, ";")
		if contentType == "" {
			contentType = mediaType
		}
		payload = data
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return File{}, apperr.Validation("Invalid base64 content for %s: %v", in.Filename, err)
	}
	if len(raw) == 0 {
		return File{}, apperr.Validation("File %s is empty", in.Filename)
	}

	filename := in.Filename
	if strings.TrimSpace(filename) == "" {
		filename = "upload"
	}

	return File{
		Filename:    filename,
		ContentType: contentType,
		Body:        bytes.NewReader(raw),
	}, nil
}
