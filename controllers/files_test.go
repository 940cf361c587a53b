package controllers

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"PGRegistry/util"

	"github.com/stretchr/testify/assert"
)

func imageHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "scan.jpg",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateImageFile(t *testing.T) {
	assert.NoError(t, validateImageFile(imageHeader("image/jpeg", 512)))
	assert.NoError(t, validateImageFile(imageHeader("image/png", maxUploadBytes)))

	err := validateImageFile(imageHeader("application/pdf", 512))
	assert.EqualError(t, err, util.ERR_NOT_AN_IMAGE)

	err = validateImageFile(imageHeader("image/jpeg", maxUploadBytes+1))
	assert.EqualError(t, err, util.ERR_FILE_TOO_LARGE)
}

func TestIsValidMobileNo(t *testing.T) {
	assert.True(t, isValidMobileNo("9876543210"))
	assert.False(t, isValidMobileNo("987654321"))
	assert.False(t, isValidMobileNo("98765432100"))
	assert.False(t, isValidMobileNo("98765x3210"))
	assert.False(t, isValidMobileNo(""))
}
