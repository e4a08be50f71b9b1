package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/upload/model/dto"
	"hotel/internal/domains/upload/service"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func request(name string, content []byte, size int64) dto.UploadRequest {
	return dto.UploadRequest{
		File:   bytes.NewReader(content),
		Header: &multipart.FileHeader{Filename: name, Size: size},
	}
}

func TestUploadService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UploadRequest
		setupMock func(mockS3 *s3Mocks.MockS3)
		wantCode  int
		wantErr   string
	}{
		{
			name:     "8MB png is over the limit",
			req:      request("big.png", pngHeader, 8<<20),
			wantCode: http.StatusBadRequest,
			wantErr:  "5MB",
		},
		{
			name:     "content larger than declared is caught after reading",
			req:      request("sneaky.png", append(append([]byte{}, pngHeader...), make([]byte, 5242880)...), 1024),
			wantCode: http.StatusBadRequest,
			wantErr:  "5MB",
		},
		{
			name:     "2MB gif is not an allowed type",
			req:      request("anim.gif", gifHeader, 2<<20),
			wantCode: http.StatusBadRequest,
			wantErr:  "allowed types: image/jpeg image/png image/webp",
		},
		{
			name:     "gif renamed to png is still rejected",
			req:      request("anim.png", gifHeader, 128),
			wantCode: http.StatusBadRequest,
			wantErr:  "allowed types",
		},
		{
			name:     "missing file",
			req:      dto.UploadRequest{},
			wantCode: http.StatusBadRequest,
			wantErr:  "file is required",
		},
		{
			name: "storage failure",
			req:  request("room.png", pngHeader, int64(len(pngHeader))),
			setupMock: func(mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 down"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "failed to upload file to S3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockS3 := s3Mocks.NewMockS3(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(mockS3)
			}

			svc := service.New(&config.Config{}, mocks.NewOtel(), mockS3)

			_, err := svc.Upload(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestUploadService_UploadStoresImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.App.Upload.Directory = "uploads"

	mockS3.EXPECT().Upload(gomock.Any(), "uploads", gomock.Any(), "image/png", pngHeader).
		DoAndReturn(func(_ context.Context, directory, fileName, _ string, _ []byte) (string, error) {
			assert.Regexp(t, `^\d{13}-[0-9a-f]{8}\.png$`, fileName)

			return "https://cdn.hotel.test/" + directory + "/" + fileName, nil
		})

	svc := service.New(cfg, mocks.NewOtel(), mockS3)

	res, err := svc.Upload(context.Background(), request("Room Photo.PNG", pngHeader, int64(len(pngHeader))))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.hotel.test/uploads/"+res.FileName, res.URL)
}
