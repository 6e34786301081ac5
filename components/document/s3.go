package document

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 is a Source backed by an S3 object.
type S3 struct {
	bucket string
	key    string
	client *s3.Client
}

var _ Source = (*S3)(nil)

type S3Option func(*S3)

func WithS3Bucket(bucket string) S3Option {
	return func(s *S3) {
		s.bucket = bucket
	}
}

func WithS3Key(key string) S3Option {
	return func(s *S3) {
		s.key = key
	}
}

func WithS3Client(client *s3.Client) S3Option {
	return func(s *S3) {
		s.client = client
	}
}

func NewS3(opts ...S3Option) *S3 {
	ret := new(S3)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (s *S3) Fetch(ctx context.Context) (*bytes.Reader, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	bs, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(bs), nil
}

func (s *S3) Meta() map[string]string {
	return map[string]string{
		"bucket": s.bucket,
		"key":    s.key,
	}
}
