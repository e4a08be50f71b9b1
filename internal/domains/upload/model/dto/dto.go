package dto

import (
	"io"
	"mime/multipart"
)

type UploadRequest struct {
	File   io.Reader
	Header *multipart.FileHeader
}

type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
