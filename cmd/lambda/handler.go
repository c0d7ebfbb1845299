package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"accesslogstats/internal/entity"
	"accesslogstats/internal/processor"
	"accesslogstats/internal/report"
	"accesslogstats/internal/s3writer"

	log "github.com/sirupsen/logrus"
)

// ReportRequest is the lambda event. An empty URL falls back to LOGSTATS_URL.
type ReportRequest struct {
	URL string `json:"url"`
}

type ReportResponse struct {
	RunID  string   `json:"run_id"`
	Report string   `json:"report"`
	Lines  []string `json:"lines"`
}

type lambdaHandler struct {
	processor  *processor.Processor
	writer     s3writer.Writer
	defaultURL string
	now        func() time.Time
	newRunID   func() string
}

var errNoURL = errors.New("no log URL given in event or LOGSTATS_URL")

// Handler is the handler registered as the lambda function handler
func (lh *lambdaHandler) Handler(ctx context.Context, req ReportRequest) (*ReportResponse, error) {
	source, err := lh.sourceURL(req)
	if err != nil {
		log.WithError(err).Errorf("Invalid request")
		return nil, err
	}

	runID := lh.newRunID()
	logger := log.WithField("run_id", runID).WithField("url", source.Redacted())

	stats, err := lh.processor.Process(ctx, source)
	if err != nil {
		logger.WithError(err).Errorf("Error in Lambda function")
		return nil, fmt.Errorf("error in Lambda function")
	}

	body := report.Render(stats)

	if lh.writer != nil {
		err = lh.writer.WriteReport(ctx, entity.Report{
			RunID:       runID,
			Source:      source.Redacted(),
			GeneratedAt: lh.now(),
			Body:        body,
		})
		if err != nil {
			logger.WithError(err).Errorf("Error archiving report")
			return nil, fmt.Errorf("error in Lambda function")
		}
	}

	return &ReportResponse{
		RunID:  runID,
		Report: body,
		Lines:  report.Lines(stats),
	}, nil
}

func (lh *lambdaHandler) sourceURL(req ReportRequest) (*url.URL, error) {
	raw := req.URL
	if raw == "" {
		raw = lh.defaultURL
	}
	if raw == "" {
		return nil, errNoURL
	}

	source, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid log URL: %w", err)
	}
	if source.Scheme == "" || source.Host == "" {
		return nil, fmt.Errorf("invalid log URL %q, expected an absolute URL", raw)
	}
	return source, nil
}
