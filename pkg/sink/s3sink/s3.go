// Package s3sink provides an S3-backed sink for the HTML writer.
//
// S3 objects cannot be appended to, so the sink buffers the build in
// memory and uploads the whole document as one object when Close is
// called.
//
// Example usage:
//
//	client := s3.NewFromConfig(cfg)
//	out := s3sink.New(client, "my-bucket", "pages/index.html")
//	w := builder.NewWriter(out)
//	// ... build ...
//	if err := out.Close(ctx); err != nil { ... }
package s3sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultContentType is the Content-Type uploaded objects are tagged
// with unless overridden with WithContentType.
const DefaultContentType = "text/html; charset=utf-8"

// PutObjectAPI is the subset of the S3 client the sink needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Sink buffers written markup and uploads it to S3 on Close.
type Sink struct {
	client      PutObjectAPI
	bucket      string
	key         string
	contentType string
	buf         bytes.Buffer
}

// New creates a sink that uploads to the given bucket and key.
func New(client PutObjectAPI, bucket, key string) *Sink {
	return &Sink{
		client:      client,
		bucket:      bucket,
		key:         key,
		contentType: DefaultContentType,
	}
}

// WithContentType overrides the uploaded object's Content-Type.
func (s *Sink) WithContentType(ct string) *Sink {
	s.contentType = ct
	return s
}

// WriteString appends to the in-memory buffer. It never fails.
func (s *Sink) WriteString(p string) (int, error) {
	return s.buf.WriteString(p)
}

// Len returns the number of buffered bytes.
func (s *Sink) Len() int {
	return s.buf.Len()
}

// Close uploads the buffered document. The buffer is kept intact on
// failure so a Close can be retried by the caller.
func (s *Sink) Close(ctx context.Context) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(s.buf.Bytes()),
		ContentType: aws.String(s.contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 upload of s3://%s/%s failed: %w", s.bucket, s.key, err)
	}
	return nil
}
