package logcollector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// SchemeRouter picks a collector by the scheme of the source URL
type SchemeRouter struct {
	collectors map[string]LogCollector
}

func NewSchemeRouter(httpCollector LogCollector, s3Collector LogCollector) *SchemeRouter {
	return &SchemeRouter{
		collectors: map[string]LogCollector{
			"http":  httpCollector,
			"https": httpCollector,
			"s3":    s3Collector,
		},
	}
}

func (r *SchemeRouter) GetLogs(ctx context.Context, source *url.URL) (string, error) {
	collector, ok := r.collectors[strings.ToLower(source.Scheme)]
	if !ok || collector == nil {
		return "", fmt.Errorf("unsupported URL scheme %q", source.Scheme)
	}
	return collector.GetLogs(ctx, source)
}
