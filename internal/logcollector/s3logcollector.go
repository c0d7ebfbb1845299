package logcollector

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"
)

// S3LogCollector fetches logs addressed as s3://bucket/key
type S3LogCollector struct {
	s3 s3iface.S3API
}

func NewS3LogCollector(api s3iface.S3API) *S3LogCollector {
	return &S3LogCollector{
		s3: api,
	}
}

func (c *S3LogCollector) GetLogs(ctx context.Context, source *url.URL) (string, error) {
	bucket, key, err := splitS3URL(source)
	if err != nil {
		return "", err
	}

	logrus.WithField("bucket", bucket).WithField("key", key).Debug("Downloading log object")

	out, err := c.s3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("could not get log object s3://%s/%s: %w", bucket, key, err)
	}

	return readText(out.Body)
}

func splitS3URL(source *url.URL) (string, string, error) {
	bucket := source.Host
	key := strings.TrimPrefix(source.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", source.String())
	}
	return bucket, key, nil
}
