package s3writer

import (
	"context"

	"accesslogstats/internal/entity"
)

// Writer is the interface for archiving rendered reports to S3
type Writer interface {
	WriteReport(ctx context.Context, report entity.Report) error
}
