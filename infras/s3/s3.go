package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
	otelAttrSize     = "size"
)

// S3 stores public assets in the configured bucket.
type S3 interface {
	Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, directory, objectName string) error
	ObjectNameFromURL(url string) (objectName string)
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}

// Upload puts data under directory/fileName and returns its public URL.
func (svc *s3Impl) Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.Config.External.S3.BucketName
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   bucket,
		otelAttrSize:     len(data),
	})

	fileReader := bytes.NewReader(data)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.publicURL(objectKey), nil
}

func (svc *s3Impl) Delete(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.Config.External.S3.BucketName
	objectKey := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   bucket,
	})

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ObjectNameFromURL returns the object key of a URL produced by Upload, or
// an empty string for foreign URLs.
func (svc *s3Impl) ObjectNameFromURL(url string) string {
	return objectNameFromURL(svc.Config.External.S3.PublicDomain, svc.Config.External.S3.APIEndpoint, svc.Config.External.S3.BucketName, url)
}

func (svc *s3Impl) publicURL(objectKey string) string {
	publicDomain := strings.TrimSuffix(svc.Config.External.S3.PublicDomain, "/")
	if publicDomain == "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(svc.Config.External.S3.APIEndpoint, "/"), svc.Config.External.S3.BucketName, objectKey)
	}

	return fmt.Sprintf("%s/%s", publicDomain, objectKey)
}

func objectNameFromURL(publicDomain, apiEndpoint, bucket, url string) string {
	prefixes := []string{}

	if publicDomain != "" {
		prefixes = append(prefixes, strings.TrimSuffix(publicDomain, "/")+"/")
	}

	if apiEndpoint != "" {
		prefixes = append(prefixes, fmt.Sprintf("%s/%s/", strings.TrimSuffix(apiEndpoint, "/"), bucket))
	}

	for _, prefix := range prefixes {
		if objectName, ok := strings.CutPrefix(url, prefix); ok {
			return objectName
		}
	}

	return constant.Empty
}
