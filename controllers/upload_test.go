package controllers

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func proofHeader(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "proof.png",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateProofUpload(t *testing.T) {
	assert.NoError(t, validateProofUpload(proofHeader(1024, "image/png")))
	assert.NoError(t, validateProofUpload(proofHeader(maxProofSize, "image/jpeg")))
}

func TestValidateProofUploadRejectsOversized(t *testing.T) {
	err := validateProofUpload(proofHeader(maxProofSize+1, "image/png"))
	assert.ErrorContains(t, err, "5 MB")
}

func TestValidateProofUploadRejectsWrongType(t *testing.T) {
	assert.Error(t, validateProofUpload(proofHeader(1024, "application/pdf")))
	assert.Error(t, validateProofUpload(proofHeader(1024, "image/gif")))
	assert.Error(t, validateProofUpload(proofHeader(1024, "")))
}
