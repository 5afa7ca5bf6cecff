package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxImageSize caps fighter image uploads.
const MaxImageSize = 5 * 1024 * 1024 // 5MB

// ReadFormFile reads an uploaded file fully and reports its content type,
// falling back to sniffing when the client did not send one.
func ReadFormFile(fileHeader *multipart.FileHeader, limit int64) ([]byte, string, error) {
	if fileHeader.Size > limit {
		return nil, "", fmt.Errorf("file too large (max %d bytes)", limit)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, "", fmt.Errorf("file too large (max %d bytes)", limit)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(body)
	}
	return body, contentType, nil
}
