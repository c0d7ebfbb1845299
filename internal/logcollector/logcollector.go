package logcollector

import (
	"context"
	"net/url"
)

// LogCollector downloads the raw text of an access log
type LogCollector interface {
	GetLogs(ctx context.Context, source *url.URL) (string, error)
}
