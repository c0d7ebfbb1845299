package processor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"accesslogstats/internal/entity"
	"accesslogstats/internal/logcollector"
	"accesslogstats/internal/parser"

	"github.com/sirupsen/logrus"
)

type Processor struct {
	logcollector logcollector.LogCollector
	Parser       parser.Parser
}

func NewProcessor(lc logcollector.LogCollector, p parser.Parser) *Processor {
	return &Processor{
		logcollector: lc,
		Parser:       p,
	}
}

// Process downloads the log at source and accumulates its statistics in a single pass
func (p *Processor) Process(ctx context.Context, source *url.URL) (*entity.Stats, error) {
	data, err := p.logcollector.GetLogs(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("could not get logs: %w", err)
	}

	rows, err := p.Parser.ParseEntries(strings.NewReader(data))
	if err != nil {
		logrus.WithFields(logrus.Fields{"err": err}).Warn("Could not parse entries")
		return nil, fmt.Errorf("could not parse entries: %w", err)
	}

	stats := Aggregate(rows)

	logrus.WithFields(logrus.Fields{
		"total_hits": stats.TotalHits,
		"image_hits": stats.ImageHits,
		"browsers":   stats.Browsers.Len(),
		"hours":      len(stats.Hourly),
	}).Info("Processing logs is finished")

	return stats, nil
}

// Aggregate tallies hits, image hits, browsers and hours over rows
func Aggregate(rows []*entity.LogRow) *entity.Stats {
	stats := entity.NewStats()
	for _, row := range rows {
		addRow(stats, row)
	}
	return stats
}

func addRow(stats *entity.Stats, row *entity.LogRow) {
	stats.TotalHits++

	if HasSuffixFold(row.Path, ImageExtensions) {
		stats.ImageHits++
	}

	if browser, ok := FirstKeyword(row.UserAgent, BrowserKeywords); ok {
		stats.Browsers.Inc(browser)
	}

	if hour, ok := ParseHour(row.Timestamp); ok {
		stats.Hourly[hour]++
	} else {
		logrus.WithField("timestamp", row.Timestamp).Debug("Ignoring malformed timestamp")
	}
}
