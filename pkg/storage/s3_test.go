package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageType(t *testing.T) {
	assert.True(t, ValidateImageType("image/jpeg", "poster.jpg"))
	assert.True(t, ValidateImageType("", "poster.PNG"))
	assert.True(t, ValidateImageType("image/webp", ""))
	assert.False(t, ValidateImageType("application/pdf", "flyer.pdf"))
	assert.False(t, ValidateImageType("", "archive.zip"))
	assert.False(t, ValidateImageType("", ""))
}

func TestContentTypeForFilename(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeForFilename("a.jpeg"))
	assert.Equal(t, "image/png", ContentTypeForFilename("B.PNG"))
	assert.Equal(t, "application/octet-stream", ContentTypeForFilename("notes.txt"))
}

func TestImageKey(t *testing.T) {
	key := ImageKey("4f2c", "poster.jpg")
	assert.Equal(t, "events/4f2c/poster.jpg", key)
	// path traversal in the filename is stripped
	assert.Equal(t, "events/4f2c/evil.png", ImageKey("4f2c", "../../evil.png"))
}
