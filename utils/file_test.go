package utils

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formFile(t *testing.T, filename string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestReadFormFile_SniffsContentType(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

	body, contentType, err := ReadFormFile(formFile(t, "a.png", png), MaxImageSize)
	require.NoError(t, err)
	assert.Equal(t, png, body)
	assert.Equal(t, "image/png", contentType)
}

func TestReadFormFile_TooLarge(t *testing.T) {
	_, _, err := ReadFormFile(formFile(t, "big.png", make([]byte, 64)), 32)
	assert.ErrorContains(t, err, "too large")
}
