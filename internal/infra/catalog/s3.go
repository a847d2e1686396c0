package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

// ObjectGetter is the part of the S3 client the catalogue needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Source struct {
	Client ObjectGetter
	Bucket string
	Key    string
}

// NewS3Client builds a client from the static keys in cfg.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	if cfg.AWSRegion == "" {
		return nil, errors.New("AWS_REGION is required for S3 access")
	}

	opts := s3.Options{Region: cfg.AWSRegion}
	if cfg.AWSAccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		)
	}
	return s3.New(opts), nil
}

func (s S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	return out.Body, nil
}

func (s S3Source) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}
