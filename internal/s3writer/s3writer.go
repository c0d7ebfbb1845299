package s3writer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"accesslogstats/internal/entity"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	log "github.com/sirupsen/logrus"
)

type s3Writer struct {
	uploader   s3manageriface.UploaderAPI
	bucketName string
	s3Prefix   string
}

func NewS3Writer(uploader s3manageriface.UploaderAPI, bucketName string, s3Prefix string) Writer {
	return &s3Writer{
		uploader:   uploader,
		bucketName: bucketName,
		s3Prefix:   s3Prefix,
	}
}

func (s *s3Writer) WriteReport(ctx context.Context, report entity.Report) error {
	key := generateKey(s.s3Prefix, report.GeneratedAt, report.RunID)

	err := s.upload(ctx, key, report.Source, strings.NewReader(report.Body))
	if err != nil {
		return fmt.Errorf("could not upload report to S3: %w", err)
	}
	return nil
}

func (s *s3Writer) upload(ctx context.Context, key string, source string, data io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String("text/plain; charset=utf-8"),
		Metadata: map[string]*string{
			"Source": aws.String(source),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload file, %w", err)
	}
	log.WithField("key", key).Info("Report uploaded to S3")

	return nil
}

func generateKey(s3Prefix string, generatedAt time.Time, runID string) string {
	ts := generatedAt.UTC()
	datePart := fmt.Sprintf("year=%04d/month=%02d/day=%02d/hour=%02d", ts.Year(), int(ts.Month()), ts.Day(), ts.Hour())
	filename := fmt.Sprintf("%s.txt", runID)
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s3Prefix, "/"), datePart, filename)
}
